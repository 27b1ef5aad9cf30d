package main

// ifThen handles "flag if A... [else B...] then": any non-zero flag selects
// A, zero selects B. The chosen branch runs in its own frame, above
// whatever followed "then".
func (vm *VM) ifThen() {
	cond := vm.pop()
	then, els := vm.scanBranches()
	branch := els
	if cond != flagFalse {
		branch = then
	}
	vm.logf("if", "%v => %v", cond, branch)
	if len(branch) > 0 {
		vm.pushFrame("if", reverseTokens(branch))
	}
}

// scanBranches takes words from the current frame up to the "then" matching
// the "if" just dispatched, splitting them at any matching "else". Nested
// conditionals are kept whole within their branch, unless flatConditionals
// is set, in which case the first "else" or "then" word matches.
func (vm *VM) scanBranches() (then, els []string) {
	depth, inElse := 0, false
	for {
		word := vm.expect()
		switch {
		case word == "if" && !vm.flatConditionals:
			depth++
		case word == "then" && depth > 0:
			depth--
		case word == "then":
			return then, els
		case word == "else" && depth == 0 && !inElse:
			inElse = true
			continue
		}
		if inElse {
			els = append(els, word)
		} else {
			then = append(then, word)
		}
	}
}
