package specdef

import (
	farahidi "github.com/KareemErgawy/al-farahidi"
	"github.com/KareemErgawy/al-farahidi/grammar"
	"github.com/KareemErgawy/al-farahidi/source"
)

// Parser converts grammar specifications to grammar tables. The zero value is
// not usable, call New. A Parser is stateless between Parse calls and may be
// reused; every call works on fresh tables.
type Parser struct {
	limits Limits
	warn   func(*farahidi.Error)
}

// New creates a Parser with the given table limits.
func New(limits Limits) *Parser {
	return &Parser{limits: limits}
}

// OnWarning registers a handler for non-fatal anomalies (currently only
// unknown escape sequences). The handler runs synchronously during Parse.
// Without a handler warnings are dropped.
func (p *Parser) OnWarning(h func(*farahidi.Error)) {
	p.warn = h
}

// Parse parses a grammar specification and returns the grammar tables on
// success. Returns nil and *farahidi.Error on the first fatal condition; no
// partial grammar is ever returned.
func (p *Parser) Parse(s *source.Source) (*grammar.Grammar, error) {
	c := newParseContext(p.limits, p.warn, s)
	return c.parse()
}

// ParseString parses a grammar specification using default limits.
// Returns nil and *farahidi.Error on error.
func ParseString(name, content string) (*grammar.Grammar, error) {
	return Parse(source.New(name, []byte(content)))
}

// ParseBytes parses a grammar specification using default limits.
// Returns nil and *farahidi.Error on error.
func ParseBytes(name string, content []byte) (*grammar.Grammar, error) {
	return Parse(source.New(name, content))
}

// Parse parses a grammar specification using default limits.
// Returns nil and *farahidi.Error on error.
func Parse(s *source.Source) (*grammar.Grammar, error) {
	return New(DefaultLimits()).Parse(s)
}

// parseContext threads all mutable parsing state: the current scan position
// and the three append-only tables. Tables are bump-allocated up to their
// limits and nothing is ever freed, except the one-slot give-back at the end
// of each body (see parseBody).
type parseContext struct {
	limits Limits
	warn   func(*farahidi.Error)
	src    *source.Source

	line    []byte // current physical line, no line break
	lineNum int    // 1-based
	cur     int    // byte offset of the scan position within line

	nonterms []grammar.Nonterm
	ntIndex  map[string]int
	exprs    []grammar.Expr
	terms    []byte
}

func newParseContext(limits Limits, warn func(*farahidi.Error), s *source.Source) *parseContext {
	return &parseContext{
		limits:   limits,
		warn:     warn,
		src:      s,
		nonterms: make([]grammar.Nonterm, 0, limits.MaxNonterms),
		ntIndex:  make(map[string]int),
		exprs:    make([]grammar.Expr, 0, limits.MaxExprs),
		terms:    make([]byte, 0, limits.MaxTermBytes),
	}
}

// pos returns the current scan position for error reporting, 1-based.
func (c *parseContext) pos() source.Pos {
	return source.NewPos(c.src.Name(), c.lineNum, c.cur+1)
}

func (c *parseContext) warning(e *farahidi.Error) {
	if c.warn != nil {
		c.warn(e)
	}
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\v' || b == '\f' || b == '\r'
}

func (c *parseContext) skipSpace() {
	for c.cur < len(c.line) && isSpace(c.line[c.cur]) {
		c.cur++
	}
}

func (c *parseContext) atLineEnd() bool {
	return c.cur >= len(c.line)
}

// parse is the specification driver: one definition per physical line, blank
// lines and ! comments skipped, each line fully parsed (forward-reference
// registrations included) before the next one is read.
func (c *parseContext) parse() (*grammar.Grammar, error) {
	for n := 1; n <= c.src.LineCount(); n++ {
		c.line = c.src.Line(n)
		c.lineNum = n
		c.cur = 0

		if len(c.line) > c.limits.MaxLineLen {
			c.cur = c.limits.MaxLineLen
			return nil, lineOverflowError(c.pos(), c.limits.MaxLineLen)
		}

		c.skipSpace()
		if c.atLineEnd() || c.line[c.cur] == '!' {
			continue
		}

		nt, err := c.parseHeader()
		if err != nil {
			return nil, err
		}

		if err = c.parseBody(nt); err != nil {
			return nil, err
		}

		c.nonterms[nt].Complete = true
	}

	return &grammar.Grammar{Nonterms: c.nonterms, Exprs: c.exprs, Terms: c.terms}, nil
}

// parseHeader parses the "$name := " prefix of a definition line and returns
// the non-terminal index to define. The index of a name first seen as a
// forward reference is reused; a name that is already complete is a fatal
// re-definition.
func (c *parseContext) parseHeader() (int, error) {
	if c.line[c.cur] != '$' {
		return 0, noHeaderError(c.pos(), string(c.line[c.cur:]))
	}

	c.cur++
	nameStart := c.cur
	for !c.atLineEnd() && !isSpace(c.line[c.cur]) {
		c.cur++
	}

	name := string(c.line[nameStart:c.cur])
	if name == "" {
		return 0, emptyNameError(c.pos())
	}

	c.skipSpace()
	if c.cur+1 >= len(c.line) || c.line[c.cur] != ':' || c.line[c.cur+1] != '=' {
		return 0, noAssignError(c.pos())
	}

	c.cur += 2
	c.skipSpace()
	if c.atLineEnd() {
		return 0, noBodyError(c.pos())
	}

	index, has := c.ntIndex[name]
	if has {
		if c.nonterms[index].Complete {
			return 0, redefinedError(c.pos(), name)
		}
		return index, nil
	}

	return c.addNonterm(name)
}

// addNonterm registers a name in the non-terminal table. It is the single
// registration point for both definitions and references, so the name and
// table bounds hold no matter where a name is first seen.
func (c *parseContext) addNonterm(name string) (int, error) {
	if len(name) > c.limits.MaxNameLen {
		return 0, nameOverflowError(c.pos(), c.limits.MaxNameLen)
	}
	if len(c.nonterms) >= c.limits.MaxNonterms {
		return 0, nontermOverflowError(c.pos(), c.limits.MaxNonterms)
	}

	index := len(c.nonterms)
	c.nonterms = append(c.nonterms, grammar.Nonterm{Name: name, Index: index, Body: grammar.NoRef})
	c.ntIndex[name] = index
	return index, nil
}

func (c *parseContext) allocExpr() (int, error) {
	if len(c.exprs) >= c.limits.MaxExprs {
		return 0, exprOverflowError(c.pos(), c.limits.MaxExprs)
	}

	c.exprs = append(c.exprs, grammar.Expr{Left: grammar.None, Right: grammar.None})
	return len(c.exprs) - 1, nil
}

// parseBody assembles the expression chain for one body and records its root
// in the non-terminal entry. Each iteration scans one (operand, operator)
// pair into the current node and reserves the next pool slot as the chain
// continuation; the slot reserved by the final iteration is given back.
//
// A Repeat operator needs special handling: repetition binds to the operand
// just scanned, not to the rest of the sequence. The repeat node is finalized
// as unary (empty right operand) and wrapped into a fresh node that carries
// the operator following it in the source, e.g. "a b* c" yields
// (a & ((b*) & (c))), never (a & ((b & (c))*)). The wrapper takes the repeat
// node's place in the chain; for a starred first operand it becomes the body
// root itself.
func (c *parseContext) parseBody(nt int) error {
	cur, err := c.allocExpr()
	if err != nil {
		return err
	}

	c.nonterms[nt].Body = cur
	prev := cur

	for {
		operand, err := c.parseOperand()
		if err != nil {
			return err
		}
		if operand.Kind == grammar.EmptyOperand {
			break
		}

		op := c.parseOperator()
		c.exprs[cur].Op = op
		c.exprs[cur].Left = operand

		if op == grammar.Repeat {
			next := c.parseOperator()
			if next == grammar.Repeat {
				return doubleRepeatError(c.pos())
			}

			wrap, err := c.allocExpr()
			if err != nil {
				return err
			}
			c.exprs[wrap].Op = next
			c.exprs[wrap].Left = grammar.Operand{Kind: grammar.ExprOperand, Ref: cur}
			if prev == cur {
				c.nonterms[nt].Body = wrap
			} else {
				c.exprs[prev].Right = grammar.Operand{Kind: grammar.ExprOperand, Ref: wrap}
			}
			cur = wrap
		}

		next, err := c.allocExpr()
		if err != nil {
			return err
		}
		prev = cur
		c.exprs[prev].Right = grammar.Operand{Kind: grammar.ExprOperand, Ref: next}
		cur = next
	}

	// the continuation slot reserved by the last iteration is unused, give it
	// back and terminate the chain at the previous node
	c.exprs = c.exprs[:len(c.exprs)-1]
	c.exprs[prev].Right = grammar.None
	if op := c.exprs[prev].Op; op != grammar.End && op != grammar.Repeat {
		return danglingOperatorError(c.pos())
	}

	return nil
}

// parseOperand scans one operand from the line remainder: an empty operand at
// end of line, a $name non-terminal reference (registered as incomplete when
// seen for the first time), or a terminal interned into the terminal pool. An
// unescaped trailing repetition marker is not part of the operand; the scan
// retracts so the marker is re-scanned as the following operator.
func (c *parseContext) parseOperand() (grammar.Operand, error) {
	c.skipSpace()
	if c.atLineEnd() {
		return grammar.None, nil
	}

	if b := c.line[c.cur]; b == '|' || b == '*' {
		return grammar.None, strayOperatorError(c.pos(), b)
	}

	start := c.cur
	for !c.atLineEnd() && !isSpace(c.line[c.cur]) {
		c.cur++
	}

	for c.cur-1 > start && c.line[c.cur-1] == '*' && c.line[c.cur-2] != escapeMarker {
		c.cur--
	}

	token := c.line[start:c.cur]
	if token[0] == '$' {
		name := string(token[1:])
		if name == "" {
			return grammar.None, emptyNameError(c.pos())
		}

		index, has := c.ntIndex[name]
		if !has {
			var err error
			index, err = c.addNonterm(name)
			if err != nil {
				return grammar.None, err
			}
		}
		return grammar.Operand{Kind: grammar.NontermOperand, Ref: index}, nil
	}

	off, err := c.internTerm(token)
	if err != nil {
		return grammar.None, err
	}
	return grammar.Operand{Kind: grammar.TermOperand, Ref: off}, nil
}

// internTerm appends one escape-resolved, null-terminated terminal to the
// pool and returns the byte offset of its first character. Identical
// terminals are interned separately on purpose: offsets are the identity of
// a terminal occurrence.
func (c *parseContext) internTerm(token []byte) (int, error) {
	if len(c.terms)+len(token)+1 > c.limits.MaxTermBytes {
		return 0, termOverflowError(c.pos(), c.limits.MaxTermBytes)
	}

	off := len(c.terms)
	terms, ok := appendEscaped(c.terms, token, escapeMarker, escapable, replacements, func(escaped byte) {
		c.warning(unknownEscapeWarning(c.pos(), escaped))
	})
	if !ok {
		return 0, unterminatedEscapeError(c.pos())
	}

	c.terms = append(terms, 0)
	return off, nil
}

// parseOperator scans the operator following an operand. Concatenation has no
// written form: hitting the next operand means Concat and consumes nothing.
func (c *parseContext) parseOperator() grammar.Operator {
	c.skipSpace()
	if c.atLineEnd() {
		return grammar.End
	}

	switch c.line[c.cur] {
	case '|':
		c.cur++
		return grammar.Alternate
	case '*':
		c.cur++
		return grammar.Repeat
	}

	return grammar.Concat
}
