package specdef

import (
	farahidi "github.com/KareemErgawy/al-farahidi"
)

// Syntax error codes:
const (
	NoHeaderError = farahidi.SyntaxErrors + iota
	EmptyNameError
	NoAssignError
	NoBodyError
	StrayOperatorError
	UnterminatedEscapeError
	DoubleRepeatError
	DanglingOperatorError
)

// Semantic error codes:
const (
	RedefinedError = farahidi.SemanticErrors + iota
)

// Capacity error codes:
const (
	NameOverflowError = farahidi.CapacityErrors + iota
	NontermOverflowError
	ExprOverflowError
	TermOverflowError
	LineOverflowError
)

// Warning codes:
const (
	UnknownEscapeWarning = farahidi.EscapeWarnings + iota
)

func noHeaderError(pos farahidi.SourcePos, rest string) *farahidi.Error {
	return farahidi.FormatErrorPos(pos, NoHeaderError, "each line must define a non-terminal, got %q", rest)
}

func emptyNameError(pos farahidi.SourcePos) *farahidi.Error {
	return farahidi.FormatErrorPos(pos, EmptyNameError, "empty non-terminal name")
}

func noAssignError(pos farahidi.SourcePos) *farahidi.Error {
	return farahidi.FormatErrorPos(pos, NoAssignError, "missing \":=\" after non-terminal name")
}

func noBodyError(pos farahidi.SourcePos) *farahidi.Error {
	return farahidi.FormatErrorPos(pos, NoBodyError, "missing non-terminal definition body")
}

func strayOperatorError(pos farahidi.SourcePos, op byte) *farahidi.Error {
	return farahidi.FormatErrorPos(pos, StrayOperatorError, "operator %q without an operand", op)
}

func unterminatedEscapeError(pos farahidi.SourcePos) *farahidi.Error {
	return farahidi.FormatErrorPos(pos, UnterminatedEscapeError, "incomplete escape sequence at the end of a token")
}

func doubleRepeatError(pos farahidi.SourcePos) *farahidi.Error {
	return farahidi.FormatErrorPos(pos, DoubleRepeatError, "repetition must follow a single operand, not another repetition")
}

func danglingOperatorError(pos farahidi.SourcePos) *farahidi.Error {
	return farahidi.FormatErrorPos(pos, DanglingOperatorError, "definition body ends with an operator")
}

func redefinedError(pos farahidi.SourcePos, name string) *farahidi.Error {
	return farahidi.FormatErrorPos(pos, RedefinedError, "re-definition of non-terminal %q", name)
}

func nameOverflowError(pos farahidi.SourcePos, max int) *farahidi.Error {
	return farahidi.FormatErrorPos(pos, NameOverflowError, "non-terminal name is longer than %d bytes", max)
}

func nontermOverflowError(pos farahidi.SourcePos, max int) *farahidi.Error {
	return farahidi.FormatErrorPos(pos, NontermOverflowError, "exceeded the maximum of %d non-terminals", max)
}

func exprOverflowError(pos farahidi.SourcePos, max int) *farahidi.Error {
	return farahidi.FormatErrorPos(pos, ExprOverflowError, "exceeded the maximum of %d expression nodes", max)
}

func termOverflowError(pos farahidi.SourcePos, max int) *farahidi.Error {
	return farahidi.FormatErrorPos(pos, TermOverflowError, "exceeded the maximum of %d terminal pool bytes", max)
}

func lineOverflowError(pos farahidi.SourcePos, max int) *farahidi.Error {
	return farahidi.FormatErrorPos(pos, LineOverflowError, "line is longer than %d bytes", max)
}

func unknownEscapeWarning(pos farahidi.SourcePos, escaped byte) *farahidi.Error {
	return farahidi.FormatErrorPos(pos, UnknownEscapeWarning, "unknown escape sequence %q, copied literally", string([]byte{escapeMarker, escaped}))
}
