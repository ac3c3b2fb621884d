package mathexpr

import (
	"errors"
	"io"
	"strconv"
)

// Formula = Expr EOF .
// Expr    = Prefix { Infix } .
// Prefix  = number | param | field | func Expr<5> | '(' Expr ')' | '-' Expr<4> | '+' Expr<4> .
// Infix   = ('+' | '-') Expr<1> | ('*' | '/' | '%') Expr<2> | '^' Expr<2> | Expr<2> .
//
// Expr<n> is an expression containing only infix operators which bind more
// tightly than n. The last Infix alternative is implied multiplication by a
// term which starts with '(', a number, or an identifier. Identifiers are
// resolved while parsing, so "sin x" is a call and "a x" is a product.

// Binding powers. Higher binds more tightly.
const (
	powerAtom = 0
	powerAdd  = 1
	powerMul  = 2
	powerPow  = 3
	powerNeg  = 4
	powerArg  = 5
)

// TokenSource is a sequence of tokens ending with an EOF token. Lexer is a
// TokenSource.
type TokenSource interface {
	Next() (Token, error)
}

// nud is the rule for a token at the start of an expression.
type nud struct {
	power int
	fn    func(p *parser, power int) (*Node, error)
}

// led is the rule for a token following a complete expression.
type led struct {
	power int
	fn    func(p *parser, power int, left *Node) (*Node, error)
}

var (
	nuds [numTokenKinds]*nud
	leds [numTokenKinds]*led
)

func init() {
	nuds[TokenLParen] = &nud{powerAtom, (*parser).parseGroup}
	nuds[TokenNumber] = &nud{powerAtom, (*parser).parseNumber}
	nuds[TokenIdent] = &nud{powerAtom, (*parser).parseIdent}
	nuds[TokenMinus] = &nud{powerNeg, (*parser).parseNeg}
	nuds[TokenPlus] = &nud{powerNeg, (*parser).parsePlus}

	leds[TokenPlus] = &led{powerAdd, binary(NodeAdd, false)}
	leds[TokenMinus] = &led{powerAdd, binary(NodeSub, false)}
	leds[TokenStar] = &led{powerMul, binary(NodeMul, false)}
	leds[TokenSlash] = &led{powerMul, binary(NodeDiv, false)}
	leds[TokenPercent] = &led{powerMul, binary(NodeMod, false)}
	leds[TokenCaret] = &led{powerPow, binary(NodePow, true)}

	implied := &led{powerMul, (*parser).parseImplied}
	leds[TokenLParen] = implied
	leds[TokenNumber] = implied
	leds[TokenIdent] = implied
}

// parser holds the state of one parse.
type parser struct {
	src TokenSource
	// la is the lookahead token.
	la Token
	// params maps folded parameter names to their indices.
	params map[string]int
	mods   []Module
}

// ParseTokens parses a complete formula from a token source. Identifiers
// resolve first to the named parameters, whose indices in params become
// parameter references, then to constants in mods, then to functions in mods.
// Modules are searched in order.
func ParseTokens(src TokenSource, params []string, mods []Module) (*Node, error) {
	if err := checkConfig(params, mods); err != nil {
		return nil, err
	}
	p := newParser(src, params, mods)
	return p.parse()
}

func newParser(src TokenSource, params []string, mods []Module) *parser {
	p := parser{
		src:    src,
		la:     Token{Kind: TokenEOF, Pos: NoPos},
		params: make(map[string]int, len(params)),
		mods:   mods,
	}
	for i, name := range params {
		p.params[fold(name)] = i
	}
	return &p
}

// parse parses the entire token stream.
func (p *parser) parse() (*Node, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	n, err := p.parseExpr(powerAtom)
	if err != nil {
		return nil, err
	}
	if p.la.Kind != TokenEOF {
		return nil, &SyntaxError{Col: p.la.Pos, Reason: TrailingInput, Found: p.la.describe()}
	}
	return n, nil
}

// parseExpr parses an expression containing only operators which bind more
// tightly than min.
func (p *parser) parseExpr(min int) (*Node, error) {
	d := nuds[p.la.Kind]
	if d == nil {
		return nil, &SyntaxError{Col: p.la.Pos, Reason: ExpressionExpected, Found: p.la.describe()}
	}
	n, err := d.fn(p, d.power)
	if err != nil {
		return nil, err
	}
	for {
		l := leds[p.la.Kind]
		if l == nil || l.power <= min {
			return n, nil
		}
		n, err = l.fn(p, l.power, n)
		if err != nil {
			return nil, err
		}
	}
}

// advance scans the next lookahead token.
func (p *parser) advance() error {
	tok, err := p.src.Next()
	if err != nil {
		if errors.Is(err, io.EOF) {
			// The source ended without an EOF token. Treat that as EOF at
			// the last known position.
			p.la = Token{Kind: TokenEOF, Pos: p.la.Pos}
			return nil
		}
		return err
	}
	p.la = tok
	return nil
}

// expect consumes the lookahead if it has the given kind.
func (p *parser) expect(kind TokenKind) (Token, bool, error) {
	tok := p.la
	if tok.Kind != kind {
		return tok, false, nil
	}
	return tok, true, p.advance()
}

func (p *parser) parseGroup(power int) (*Node, error) {
	open, _, err := p.expect(TokenLParen)
	if err != nil {
		return nil, err
	}
	n, err := p.parseExpr(power)
	if err != nil {
		return nil, err
	}
	end, ok, err := p.expect(TokenRParen)
	if err != nil {
		return nil, err
	}
	if !ok {
		reason := UnexpectedToken
		if end.Kind == TokenEOF {
			reason = UnterminatedGroup
		}
		return nil, &SyntaxError{Col: end.Pos, Reason: reason, Found: end.describe(), Open: open.Pos}
	}
	return n, nil
}

func (p *parser) parseNumber(power int) (*Node, error) {
	tok, _, err := p.expect(TokenNumber)
	if err != nil {
		return nil, err
	}
	v, err := strconv.ParseFloat(tok.Text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		// The lexer only produces digits with at most one point, so this
		// means a token source other than Lexer gave a bad number.
		return nil, &SyntaxError{Col: tok.Pos, Reason: UnexpectedToken, Found: tok.describe()}
	}
	// Out of range literals are infinite, the same as any other overflow.
	return &Node{Kind: NodeConst, Value: v, Name: tok.Text}, nil
}

func (p *parser) parseNeg(power int) (*Node, error) {
	if _, _, err := p.expect(TokenMinus); err != nil {
		return nil, err
	}
	n, err := p.parseExpr(power)
	if err != nil {
		return nil, err
	}
	return &Node{Kind: NodeNeg, Left: n}, nil
}

func (p *parser) parsePlus(power int) (*Node, error) {
	if _, _, err := p.expect(TokenPlus); err != nil {
		return nil, err
	}
	return p.parseExpr(power)
}

// binary creates the rule for a binary operator producing the given kind.
func binary(kind NodeKind, right bool) func(p *parser, power int, left *Node) (*Node, error) {
	return func(p *parser, power int, left *Node) (*Node, error) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if right {
			power--
		}
		rhs, err := p.parseExpr(power)
		if err != nil {
			return nil, err
		}
		return &Node{Kind: kind, Left: left, Right: rhs}, nil
	}
}

// parseImplied parses a term directly following another: 2x -> 2*x.
func (p *parser) parseImplied(power int, left *Node) (*Node, error) {
	rhs, err := p.parseExpr(power)
	if err != nil {
		return nil, err
	}
	return &Node{Kind: NodeMul, Left: left, Right: rhs}, nil
}
