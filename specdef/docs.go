/*
Package specdef converts a textual grammar specification to grammar.Grammar
tables.

A specification defines one non-terminal per physical line:

	$name := operand operand ...

Blank lines and lines whose first non-whitespace character is ! are ignored.

An operand is either a non-terminal reference ($other-name) or a terminal:
any run of non-whitespace characters. Operands are combined with three
operators:

  - alternation: a | b matches either a or b;
  - concatenation: written as plain adjacency, a b matches a followed by b;
  - repetition: a postfix * attached to an operand (no whitespace before it)
    matches that single operand zero or more times.

Alternation and concatenation associate to the right in a single chain.
Repetition binds tightest, to the immediately preceding operand only, so
a b* c matches a, then any number of b, then c. Starring anything but a
single operand (e.g. a**) is an error.

Terminal text may contain escape sequences introduced by @:

	@_   a literal space
	@@   a literal @
	@|   a literal |
	@*   a literal *
	@$   a literal $

An @ followed by any other character is a warning; the character is kept
literally. An @ at the very end of a token is an error.

A non-terminal may be referenced before the line defining it, including from
its own body. Its table index is assigned at first sight and stays stable.
Every name must be defined exactly once; a second definition line for the
same name is an error.

Parsing is fail-fast: the first syntax, semantic, or capacity error aborts the
whole parse and no partial tables are returned. All conditions are reported as
*farahidi.Error values carrying the source name, line, and column.

An example specification:

	! decimal literals
	$digit   := 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 | 8 | 9
	$number  := $digit $digit* $suffix
	$suffix  := u | l | @_
*/
package specdef
