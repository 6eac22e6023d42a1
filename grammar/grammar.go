// Package grammar defines the table structures produced by the specification
// parser: the non-terminal table, the expression-node pool, and the terminal
// byte pool. All cross-references between them are integer indices or byte
// offsets, never pointers, so a Grammar can be serialized and embedded as is.
package grammar

import (
	"strings"
)

// NoRef marks an unused operand reference.
const NoRef = -1

// Operator is the operation stored in an expression node.
type Operator int

const (
	// End terminates an expression chain, its right operand is always empty.
	End Operator = iota
	// Alternate matches either operand.
	Alternate
	// Concat matches the left operand followed by the right one.
	Concat
	// Repeat matches the left operand zero or more times, its right operand
	// is always empty.
	Repeat
)

// OperandKind tags what an operand reference points at.
type OperandKind int

const (
	// EmptyOperand is an unused operand slot, its reference is NoRef.
	EmptyOperand OperandKind = iota
	// TermOperand references a terminal by byte offset into the terminal pool.
	TermOperand
	// NontermOperand references an entry of the non-terminal table.
	NontermOperand
	// ExprOperand references a nested node of the expression pool.
	ExprOperand
)

// Operand is one operand slot of an expression node: a kind tag plus an
// index or offset interpreted according to the tag.
type Operand struct {
	Kind OperandKind
	Ref  int
}

// None is the empty operand.
var None = Operand{EmptyOperand, NoRef}

// Expr is one binary node of a body expression. Nodes of one body form a
// right-leaning chain: Right is either a nested continuation or empty.
type Expr struct {
	Op          Operator
	Left, Right Operand
}

// Nonterm is a named grammar symbol.
type Nonterm struct {
	// Name is the symbol name without the $ marker, unique within a grammar.
	Name string

	// Index is the stable position in the non-terminal table, assigned the
	// first time the name is seen and never changed afterwards.
	Index int

	// Complete reports whether the defining line of this symbol has been
	// parsed. A false value after a finished parse would mean a dangling
	// forward reference.
	Complete bool

	// Body is the expression-pool index of the root node of the defining
	// expression, NoRef until Complete.
	Body int
}

// Grammar holds the three tables fully encoding a parsed specification.
type Grammar struct {
	Nonterms []Nonterm
	Exprs    []Expr

	// Terms is the terminal pool: null-terminated strings referenced by the
	// byte offset of their first character. Equal terminals are not deduped.
	Terms []byte
}

// Term returns the terminal string starting at the given pool offset.
func (g *Grammar) Term(off int) string {
	if off < 0 || off >= len(g.Terms) {
		return ""
	}

	end := off
	for end < len(g.Terms) && g.Terms[end] != 0 {
		end++
	}
	return string(g.Terms[off:end])
}

// ExprString renders the expression chain rooted at the given pool index as a
// fully parenthesized string, e.g. "((a*) & (b))" for "a* b".
func (g *Grammar) ExprString(index int) string {
	var b strings.Builder
	g.writeExpr(&b, index)
	return b.String()
}

// NontermString renders one non-terminal definition, e.g. "$pair := (a & (b))".
func (g *Grammar) NontermString(index int) string {
	if index < 0 || index >= len(g.Nonterms) {
		return ""
	}

	nt := g.Nonterms[index]
	if !nt.Complete {
		return "$" + nt.Name + " := ?"
	}
	return "$" + nt.Name + " := " + g.ExprString(nt.Body)
}

func (g *Grammar) writeExpr(b *strings.Builder, index int) {
	if index < 0 || index >= len(g.Exprs) {
		return
	}

	x := g.Exprs[index]
	b.WriteByte('(')
	g.writeOperand(b, x.Left)
	switch x.Op {
	case Alternate:
		b.WriteString(" | ")
	case Concat:
		b.WriteString(" & ")
	case Repeat:
		b.WriteByte('*')
	}
	g.writeOperand(b, x.Right)
	b.WriteByte(')')
}

func (g *Grammar) writeOperand(b *strings.Builder, o Operand) {
	switch o.Kind {
	case ExprOperand:
		g.writeExpr(b, o.Ref)
	case NontermOperand:
		if o.Ref >= 0 && o.Ref < len(g.Nonterms) {
			b.WriteByte('$')
			b.WriteString(g.Nonterms[o.Ref].Name)
		}
	case TermOperand:
		b.WriteString(g.Term(o.Ref))
	}
}
