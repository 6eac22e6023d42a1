/*
Package farahidi is the front end of a small lexer-generator toolkit.

It parses textual grammar specifications written in a regex-like language:
each line defines a named non-terminal as an expression over terminals and
other non-terminals using concatenation (adjacency), alternation (|), and
postfix zero-or-more repetition (*). The result is a set of flat, index-based
tables ready for a downstream automaton builder.

Consists of subpackages:
  - cmd/farahidi: console utility converting a grammar specification to a Go
    source file or JSON dump of the parsed tables;
  - grammar: defines the table structures produced by the parser (non-terminal
    table, expression-node pool, terminal byte pool);
  - specdef: converts a grammar specification to the grammar tables;
  - source: defines the named source text fed to the parser.

Typical usage is:

1. Describe the token grammar in the specification language, one non-terminal
per line:

	$digit  := 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 | 8 | 9
	$number := $digit $digit*

2. Parse it with specdef.ParseString (or the farahidi command-line tool).

3. Feed the resulting grammar.Grammar tables to an automaton builder or code
generator.
*/
package farahidi

import (
	"fmt"
)

// Error classes used by subpackages, each class contains up to 99 error codes:
const (
	SyntaxErrors   = 1   // malformed specification text
	SemanticErrors = 101 // well-formed text with contradictory meaning
	CapacityErrors = 201 // configured table limits exceeded
	EscapeWarnings = 301 // recoverable escape-sequence anomalies
)

// Error is the error type used by farahidi subpackages, for warnings as well
// as fatal conditions.
type Error struct {
	// Code contains non-zero error code.
	Code int

	// Message contains non-empty error message including source name and position information if provided.
	Message string

	// SourceName contains source name that caused this error or empty string.
	SourceName string

	// Line contains line number in source file or 0.
	Line int

	// Col contains column number in source file or 0.
	Col int
}

// SourcePos is used to retrieve source name and position information when
// constructing an error; source.Pos implements this interface.
type SourcePos interface {
	// SourceName returns source file name or empty string.
	SourceName() string
	// Line returns line number or 0.
	Line() int
	// Col returns column number or 0.
	Col() int
}

// NewError creates new Error structure.
// name, line, and col will be added to error message if provided (non-zero).
func NewError(code int, msg, name string, line, col int) *Error {
	if name != "" && line != 0 && col != 0 {
		msg += fmt.Sprintf(" in %s at line %d col %d", name, line, col)
	}
	return &Error{code, msg, name, line, col}
}

// Error simply returns Error.Message.
func (e *Error) Error() string {
	return e.Message
}

// FormatError creates Error structure with no source and position information.
// params will be added to error message using fmt.Sprintf function.
func FormatError(code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, "", 0, 0)
}

// FormatErrorPos creates Error structure with source and position information.
// pos must not be nil.
// params will be added to error message using fmt.Sprintf function.
func FormatErrorPos(pos SourcePos, code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, pos.SourceName(), pos.Line(), pos.Col())
}
