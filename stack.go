package main

// stack holds the operand values, top last; all operations that need more
// values than are present fail with ErrStackUnderflow, leaving it untouched.
type stack []int64

const (
	flagTrue  int64 = -1
	flagFalse int64 = 0
)

func truth(b bool) int64 {
	if b {
		return flagTrue
	}
	return flagFalse
}

func (st *stack) push(values ...int64) {
	*st = append(*st, values...)
}

func (st *stack) pop() (int64, error) {
	i := len(*st) - 1
	if i < 0 {
		return 0, ErrStackUnderflow
	}
	val := (*st)[i]
	*st = (*st)[:i]
	return val, nil
}

// pop2 removes the top two values, returning them in push order; so for
// "a b" it returns a, b.
func (st *stack) pop2() (a, b int64, err error) {
	i := len(*st) - 2
	if i < 0 {
		return 0, 0, ErrStackUnderflow
	}
	a, b = (*st)[i], (*st)[i+1]
	*st = (*st)[:i]
	return a, b, nil
}

func (st stack) peek() (int64, error) { return st.peekAt(0) }

func (st stack) peekAt(offset int) (int64, error) {
	i := len(st) - 1 - offset
	if offset < 0 || i < 0 {
		return 0, ErrStackUnderflow
	}
	return st[i], nil
}

func (st *stack) dup() error {
	val, err := st.peek()
	if err == nil {
		st.push(val)
	}
	return err
}

func (st *stack) drop() error {
	_, err := st.pop()
	return err
}

// swap ( a b -- b a )
func (st stack) swap() error {
	i := len(st) - 2
	if i < 0 {
		return ErrStackUnderflow
	}
	st[i], st[i+1] = st[i+1], st[i]
	return nil
}

// over ( a b -- a b a )
func (st *stack) over() error {
	val, err := st.peekAt(1)
	if err == nil {
		st.push(val)
	}
	return err
}

// rot ( a b c -- b c a )
func (st stack) rot() error {
	i := len(st) - 3
	if i < 0 {
		return ErrStackUnderflow
	}
	st[i], st[i+1], st[i+2] = st[i+1], st[i+2], st[i]
	return nil
}
