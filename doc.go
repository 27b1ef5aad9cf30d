/* Package main: smorth, a minimal Forth-like stack language.

A program is a sequence of words, evaluated left to right against a stack of
signed 64-bit integers and a dictionary of user defined words. Only space and
line feed separate words, any other whitespace is trimmed from their ends, and
everything else (quote marks included) is part of some word.

Each word is resolved in turn:
  - builtin words are dispatched first, so they cannot be redefined
  - otherwise a decimal integer literal is pushed onto the stack
  - otherwise the word is looked up in the dictionary and its body evaluated

Truth values are -1 (TRUE) and 0 (FALSE), so that the bitwise "and", "or" and
"not" double as logical operators. Binary operators take their left operand
from deeper in the stack:

	10 3 -     ( leaves 7 )
	10 3 <     ( leaves 0 )

Words are defined with ":" NAME BODY... ";" and their bodies are kept as
unresolved words, looked up anew every time they run. Redefining a word thus
changes the behavior of every word that calls it:

	: greet ." hello " ;
	: twice greet greet ;
	twice                ( prints "hello hello " )
	: greet ." bye " ;
	twice                ( prints "bye bye " )

Conditionals consume a flag from the stack; any non-zero flag selects the
first branch:

	1 1 = if ." same " else ." different " then

Branches may contain further conditionals; the reference behavior, where a
branch ends at the first "then" or "else" regardless of nesting, is available
with the -flat-if flag.

Output words are "." (print number and a space), "emit" (print a code point),
"cr" (line feed) and ." (print following words up to a lone quote mark word).
Input words are "key" (push one byte, or 0 at end of input) and "read" (push
every remaining code point). Finally, "exit" ends everything with the status
code taken from the stack.

Word calls and branches do not recurse on the host stack: they push frames
onto a heap allocated frame stack, limited by -max-depth. Calls in tail
position reuse their caller's frame, so that a word such as

	: forever 1 . forever ;

runs until cancelled, rather than until the frame limit.

Without file arguments, and with a terminal on stdin, an interactive session
starts; its prompt lists the current stack.
*/
package main
