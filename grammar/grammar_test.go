package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// hand-built tables for $pair := a b | $other
func sampleGrammar() *Grammar {
	return &Grammar{
		Nonterms: []Nonterm{
			{Name: "pair", Index: 0, Complete: true, Body: 0},
			{Name: "other", Index: 1, Complete: false, Body: NoRef},
		},
		Exprs: []Expr{
			{Op: Concat, Left: Operand{TermOperand, 0}, Right: Operand{ExprOperand, 1}},
			{Op: Alternate, Left: Operand{TermOperand, 2}, Right: Operand{ExprOperand, 2}},
			{Op: End, Left: Operand{NontermOperand, 1}, Right: None},
		},
		Terms: []byte("a\x00b\x00"),
	}
}

func TestTerm(t *testing.T) {
	g := sampleGrammar()

	assert.Equal(t, "a", g.Term(0))
	assert.Equal(t, "b", g.Term(2))
	assert.Equal(t, "", g.Term(NoRef))
	assert.Equal(t, "", g.Term(100))
}

func TestExprString(t *testing.T) {
	g := sampleGrammar()

	assert.Equal(t, "(a & (b | ($other)))", g.ExprString(0))
	assert.Equal(t, "($other)", g.ExprString(2))
	assert.Equal(t, "", g.ExprString(NoRef))
}

func TestNontermString(t *testing.T) {
	g := sampleGrammar()

	assert.Equal(t, "$pair := (a & (b | ($other)))", g.NontermString(0))
	assert.Equal(t, "$other := ?", g.NontermString(1))
	assert.Equal(t, "", g.NontermString(2))
}

func TestRepeatExprString(t *testing.T) {
	g := &Grammar{
		Exprs: []Expr{
			{Op: Repeat, Left: Operand{TermOperand, 0}, Right: None},
			{Op: End, Left: Operand{ExprOperand, 0}, Right: None},
		},
		Terms: []byte("a\x00"),
	}

	assert.Equal(t, "(a*)", g.ExprString(0))
	assert.Equal(t, "((a*))", g.ExprString(1))
}
