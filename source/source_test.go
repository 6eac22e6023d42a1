package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSourceLineCol(t *testing.T) {
	type result struct {
		pos, line, col int
	}
	samples := map[string][]result{
		"": {
			{0, 1, 1},
			{-5, 1, 1},
			{10, 1, 1},
		},
		"ab\ncd\n": {
			{0, 1, 1},
			{1, 1, 2},
			{2, 1, 3},
			{3, 2, 1},
			{5, 2, 3},
			{6, 3, 1},
		},
		"\n\n": {
			{0, 1, 1},
			{1, 2, 1},
			{2, 3, 1},
		},
	}

	for content, results := range samples {
		s := New("sample", []byte(content))
		for _, r := range results {
			line, col := s.LineCol(r.pos)
			assert.Equal(t, r.line, line, "content %q pos %d", content, r.pos)
			assert.Equal(t, r.col, col, "content %q pos %d", content, r.pos)
		}
	}
}

func TestSourceLines(t *testing.T) {
	s := New("sample", []byte("first\nsecond\r\n\nlast"))

	assert.Equal(t, 4, s.LineCount())
	assert.Equal(t, "first", string(s.Line(1)))
	assert.Equal(t, "second", string(s.Line(2)))
	assert.Equal(t, "", string(s.Line(3)))
	assert.Equal(t, "last", string(s.Line(4)))
	assert.Nil(t, s.Line(0))
	assert.Nil(t, s.Line(5))
}

func TestSourceLinesTrailingBreak(t *testing.T) {
	s := New("sample", []byte("only\n"))

	assert.Equal(t, 2, s.LineCount())
	assert.Equal(t, "only", string(s.Line(1)))
	assert.Equal(t, "", string(s.Line(2)))
}

func TestEmptySource(t *testing.T) {
	s := New("empty", nil)

	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 1, s.LineCount())
	assert.Equal(t, "", string(s.Line(1)))
}

func TestPos(t *testing.T) {
	p := NewPos("spec", 3, 7)

	assert.Equal(t, "spec", p.SourceName())
	assert.Equal(t, 3, p.Line())
	assert.Equal(t, 7, p.Col())
}
