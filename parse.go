package abacus

import (
	"io"
	"strconv"
)

// Expr   = Term { ('+' | '-') Term }
// Term   = Factor { ('*' | '/') Factor }
// Factor = Base [ '**' Factor ]
// Base   = num | '(' Expr ')' | 'sqrt' '(' Expr ')' | '-' Base

// Expr is a parsed expression that can be evaluated.
type Expr struct {
	// n is the root node of the expression.
	n *node
}

// maxDepth bounds operand nesting so that pathological input fails with
// DepthError instead of exhausting the stack. Interactive keypad input stays
// far below it.
const maxDepth = 512

// Parse parses an expression so it can be evaluated.
func Parse(src io.RuneScanner) (*Expr, error) {
	p := parser{scan: lex(src)}
	n, err := p.expr()
	if err != nil {
		return nil, err
	}
	tok, err := p.scan.next()
	if err != nil {
		return nil, err
	}
	switch tok.kind {
	case tokenEOF:
	case tokenClose:
		return nil, &BracketError{Col: tok.pos, Right: tok.text}
	default:
		return nil, &TrailingTokenError{Col: tok.pos, Token: tok.text}
	}
	return &Expr{n: n}, nil
}

// String creates a string representation of the parsed expression with every
// grouping made explicit.
func (e *Expr) String() string {
	return e.n.String()
}

type parser struct {
	scan  *lexer
	depth int
}

// expr parses an addition level: a chain of terms joined by + and -,
// associated left to right.
func (p *parser) expr() (*node, error) {
	n, err := p.term()
	if err != nil {
		return nil, err
	}
	for {
		tok, err := p.scan.next()
		if err != nil {
			return nil, err
		}
		if tok.kind != tokenOp || (tok.text != "+" && tok.text != "-") {
			p.scan.push(tok)
			return n, nil
		}
		rhs, err := p.term()
		if err != nil {
			return nil, err
		}
		kind := nodeAdd
		if tok.text == "-" {
			kind = nodeSub
		}
		n = &node{kind: kind, left: n, right: rhs}
	}
}

// term parses a multiplication level: a chain of factors joined by * and /,
// associated left to right.
func (p *parser) term() (*node, error) {
	n, err := p.factor()
	if err != nil {
		return nil, err
	}
	for {
		tok, err := p.scan.next()
		if err != nil {
			return nil, err
		}
		if tok.kind != tokenOp || (tok.text != "*" && tok.text != "/") {
			p.scan.push(tok)
			return n, nil
		}
		rhs, err := p.factor()
		if err != nil {
			return nil, err
		}
		kind := nodeMul
		if tok.text == "/" {
			kind = nodeDiv
		}
		n = &node{kind: kind, left: n, right: rhs}
	}
}

// factor parses an exponentiation. ** binds its exponent by recursing into
// factor, so chains like 2**3**2 group as 2**(3**2), the same grouping the
// split-at-first-occurrence scan of the original calculator produced.
func (p *parser) factor() (*node, error) {
	n, err := p.base()
	if err != nil {
		return nil, err
	}
	tok, err := p.scan.next()
	if err != nil {
		return nil, err
	}
	if tok.kind != tokenOp || tok.text != "**" {
		p.scan.push(tok)
		return n, nil
	}
	rhs, err := p.factor()
	if err != nil {
		return nil, err
	}
	return &node{kind: nodePow, left: n, right: rhs}, nil
}

// base parses a single operand: a number literal, a parenthesized or sqrt
// group, or a negated base. All operand nesting passes through here, so base
// alone enforces the depth limit.
func (p *parser) base() (*node, error) {
	p.depth++
	defer func() { p.depth-- }()
	tok, err := p.scan.next()
	if err != nil {
		return nil, err
	}
	if p.depth > maxDepth {
		return nil, &DepthError{Col: tok.pos}
	}
	switch tok.kind {
	case tokenNum:
		v, err := strconv.ParseFloat(tok.text, 64)
		if err != nil {
			return nil, &LexError{Text: tok.text, Kind: "number", Col: tok.pos}
		}
		return &node{kind: nodeNum, val: v}, nil
	case tokenIdent:
		if tok.text != "sqrt" {
			return nil, &FuncError{Col: tok.pos, Name: tok.text}
		}
		open, err := p.scan.next()
		if err != nil {
			return nil, err
		}
		if open.kind != tokenOpen {
			return nil, &FuncError{Col: tok.pos, Name: tok.text, Known: true}
		}
		arg, err := p.group(open)
		if err != nil {
			return nil, err
		}
		return &node{kind: nodeSqrt, left: arg}, nil
	case tokenOp:
		if tok.text != "-" {
			return nil, &OperatorError{Col: tok.pos, Operator: tok.text, Unary: true}
		}
		rhs, err := p.base()
		if err != nil {
			return nil, err
		}
		return &node{kind: nodeNeg, left: rhs}, nil
	case tokenOpen:
		return p.group(tok)
	case tokenClose:
		return nil, &EmptyExpressionError{Col: tok.pos, End: tok.text}
	case tokenEOF:
		return nil, &EmptyExpressionError{Col: tok.pos}
	default:
		panic("abacus: unknown token: " + tok.String())
	}
}

// group parses the contents of a parenthesized group up to and including its
// close parenthesis. open is the already-scanned open parenthesis.
func (p *parser) group(open lexToken) (*node, error) {
	n, err := p.expr()
	if err != nil {
		return nil, err
	}
	end, err := p.scan.next()
	if err != nil {
		return nil, err
	}
	switch end.kind {
	case tokenClose:
		return n, nil
	case tokenEOF:
		return nil, &BracketError{Col: end.pos, Left: open.text}
	default:
		return nil, &BracketError{Col: end.pos, Left: open.text, Right: end.text}
	}
}
