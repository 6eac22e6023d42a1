// Package source defines the named source text fed to the specification parser.
package source

import (
	"bytes"
)

// Source is an immutable named piece of specification text with an index of
// physical line starts. The specification language is strictly line oriented,
// so lines are the unit of access.
type Source struct {
	name       string
	content    []byte
	lineStarts []int
}

func New(name string, content []byte) *Source {
	s := &Source{name: name, content: content}
	lineCnt := bytes.Count(content, []byte("\n")) + 1
	s.lineStarts = make([]int, lineCnt)
	j := 1
	for i := 0; i < len(content) && j < lineCnt; i++ {
		if content[i] == '\n' {
			s.lineStarts[j] = i + 1
			j++
		}
	}

	return s
}

func (s *Source) Name() string {
	return s.name
}

func (s *Source) Content() []byte {
	return s.content
}

func (s *Source) Len() int {
	return len(s.content)
}

// LineCount returns the number of physical lines, at least 1 even for empty
// content.
func (s *Source) LineCount() int {
	return len(s.lineStarts)
}

// Line returns the content of 1-based line n without the trailing line break.
// Returns nil if n is out of range.
func (s *Source) Line(n int) []byte {
	if n < 1 || n > len(s.lineStarts) {
		return nil
	}

	start := s.lineStarts[n-1]
	end := len(s.content)
	if n < len(s.lineStarts) {
		end = s.lineStarts[n] - 1
	}
	if end > start && s.content[end-1] == '\r' {
		end--
	}
	return s.content[start:end]
}

// LineCol converts a byte offset into 1-based line and column numbers.
func (s *Source) LineCol(pos int) (line, col int) {
	if pos < 0 {
		pos = 0
	} else if pos > len(s.content) {
		pos = len(s.content)
	}

	lineIndex := s.findLineIndex(pos)
	return lineIndex + 1, pos - s.lineStarts[lineIndex] + 1
}

func (s *Source) findLineIndex(pos int) int {
	leftIndex := 0
	rightIndex := len(s.lineStarts) - 1
	for leftIndex < rightIndex {
		index := (leftIndex + rightIndex + 1) >> 1
		if s.lineStarts[index] <= pos {
			leftIndex = index
		} else {
			rightIndex = index - 1
		}
	}
	return leftIndex
}

// Pos is a fixed position within a named source, used for error reporting.
type Pos struct {
	name      string
	line, col int
}

func NewPos(name string, line, col int) Pos {
	return Pos{name, line, col}
}

func (p Pos) SourceName() string {
	return p.name
}

func (p Pos) Line() int {
	return p.line
}

func (p Pos) Col() int {
	return p.col
}
