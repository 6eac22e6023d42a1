package specdef

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	farahidi "github.com/KareemErgawy/al-farahidi"
	"github.com/KareemErgawy/al-farahidi/source"
)

func checkErrorCode(t *testing.T, samples []string, code int) {
	t.Helper()
	for index, src := range samples {
		prefix := "input #" + strconv.Itoa(index)
		g, e := Parse(source.New("string", []byte(src)))

		if code == 0 {
			require.NoError(t, e, prefix)
			require.NotNil(t, g, prefix)
			continue
		}

		require.Error(t, e, prefix)
		assert.Nil(t, g, prefix)
		pe, is := e.(*farahidi.Error)
		require.True(t, is, "%s: *farahidi.Error expected, got %v", prefix, e)
		assert.Equal(t, code, pe.Code, "%s: %s", prefix, pe.Message)
	}
}

func TestNoHeader(t *testing.T) {
	samples := []string{
		"x := y",
		"foo",
		":= x",
	}
	checkErrorCode(t, samples, NoHeaderError)
}

func TestEmptyName(t *testing.T) {
	samples := []string{
		"$ := x",
		"$A := $",
		"$A := a $ b",
	}
	checkErrorCode(t, samples, EmptyNameError)
}

func TestNoAssign(t *testing.T) {
	samples := []string{
		"$A",
		"$A x",
		"$A = x",
		"$A:= x",
		"$A :- x",
	}
	checkErrorCode(t, samples, NoAssignError)
}

func TestNoBody(t *testing.T) {
	samples := []string{
		"$A :=",
		"$A := ",
		"$A :=\t\t",
	}
	checkErrorCode(t, samples, NoBodyError)
}

func TestStrayOperator(t *testing.T) {
	samples := []string{
		"$A := | x",
		"$A := * x",
		"$A := a | | b",
		"$A := a | *",
	}
	checkErrorCode(t, samples, StrayOperatorError)
}

func TestUnterminatedEscape(t *testing.T) {
	samples := []string{
		"$A := @",
		"$A := ab@",
		"$A := x @ y",
	}
	checkErrorCode(t, samples, UnterminatedEscapeError)
}

func TestDanglingOperator(t *testing.T) {
	samples := []string{
		"$A := a |",
		"$A := a b |",
		"$A := a* |",
		"$A := a | b |\t",
	}
	checkErrorCode(t, samples, DanglingOperatorError)
}

func TestDoubleRepeat(t *testing.T) {
	samples := []string{
		"$A := a**",
		"$A := a* *",
		"$A := b $C**",
	}
	checkErrorCode(t, samples, DoubleRepeatError)
}

func TestRedefined(t *testing.T) {
	samples := []string{
		"$A := x\n$A := y",
		"$A := $B\n$B := x\n$B := y",
	}
	checkErrorCode(t, samples, RedefinedError)
}

func TestNameOverflow(t *testing.T) {
	samples := []string{
		"$" + strings.Repeat("a", 65) + " := x",
		"$A := $" + strings.Repeat("a", 65),
		"$A := b $" + strings.Repeat("a", 65) + " c",
	}
	checkErrorCode(t, samples, NameOverflowError)
}

func TestNoError(t *testing.T) {
	samples := []string{
		"$A := x",
		"$A := a b c",
		"$A := a | b | c",
		"$A := a* b $A*",
		"$A := a *",
		"$digit := 0 | 1 | 2\n$number := $digit $digit*",
		"! comment\n\n   \n$A := x\n!trailing comment",
		"$A := @_ @@ @| @* @$",
		"$A := $A x",
		"$A := $B",
	}
	checkErrorCode(t, samples, 0)
}

func parseLimited(t *testing.T, limits Limits, content string) error {
	t.Helper()
	g, e := New(limits).Parse(source.New("string", []byte(content)))
	if e != nil {
		assert.Nil(t, g)
	}
	return e
}

func limitedErrorCode(t *testing.T, e error) int {
	t.Helper()
	require.Error(t, e)
	pe, is := e.(*farahidi.Error)
	require.True(t, is, "*farahidi.Error expected, got %v", e)
	return pe.Code
}

func capLimits() Limits {
	return Limits{
		MaxNonterms:  4,
		MaxNameLen:   8,
		MaxExprs:     16,
		MaxTermBytes: 32,
		MaxLineLen:   40,
	}
}

func TestNontermOverflow(t *testing.T) {
	e := parseLimited(t, capLimits(), "$A := $B $C $D $E")
	assert.Equal(t, NontermOverflowError, limitedErrorCode(t, e))

	// exactly at the limit is fine
	e = parseLimited(t, capLimits(), "$A := $B $C $D")
	assert.NoError(t, e)
}

func TestExprOverflow(t *testing.T) {
	limits := capLimits()
	limits.MaxExprs = 3
	e := parseLimited(t, limits, "$A := a b c d e")
	assert.Equal(t, ExprOverflowError, limitedErrorCode(t, e))
}

func TestTermOverflow(t *testing.T) {
	limits := capLimits()
	limits.MaxTermBytes = 4
	e := parseLimited(t, limits, "$A := abcdefgh")
	assert.Equal(t, TermOverflowError, limitedErrorCode(t, e))
}

func TestLineOverflow(t *testing.T) {
	limits := capLimits()
	e := parseLimited(t, limits, "$A := "+strings.Repeat("x ", 32))
	assert.Equal(t, LineOverflowError, limitedErrorCode(t, e))
}

func TestErrorPosition(t *testing.T) {
	_, e := ParseString("spec", "$A := x\n$A := y")
	pe, is := e.(*farahidi.Error)
	require.True(t, is)
	assert.Equal(t, "spec", pe.SourceName)
	assert.Equal(t, 2, pe.Line)
	assert.Contains(t, pe.Message, "line 2")
}
