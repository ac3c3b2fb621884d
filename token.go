package mathexpr

import "strconv"

// Token is one lexical unit of a formula.
type Token struct {
	// Kind is the token's kind.
	Kind TokenKind
	// Pos is the rune offset of the first character of the token, counting
	// from 0. The EOF token's position is the number of runes in the input.
	Pos int
	// Text is the source text of Number and Identifier tokens. It is empty
	// for every other kind.
	Text string
}

// NoPos is the position of the lookahead before any token has been read.
const NoPos = -1

func (t Token) String() string {
	if t.Text == "" {
		return t.Kind.String() + "@" + strconv.Itoa(t.Pos)
	}
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Pos)
}

// describe names the token for error messages.
func (t Token) describe() string {
	switch t.Kind {
	case TokenEOF:
		return "end of input"
	case TokenNumber:
		return "number " + strconv.Quote(t.Text)
	case TokenIdent:
		return "identifier " + strconv.Quote(t.Text)
	default:
		return strconv.Quote(t.Kind.symbol())
	}
}

// TokenKind is the kind of a token.
type TokenKind int8

const (
	// TokenEOF ends every token stream.
	TokenEOF TokenKind = iota
	TokenLParen
	TokenRParen
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenPercent
	TokenCaret
	// TokenNumber is a decimal literal like 12 or 1.5.
	TokenNumber
	// TokenIdent is a parameter, constant, or function name.
	TokenIdent

	numTokenKinds
)

var tokenKindNames = [numTokenKinds]string{
	TokenEOF:     "EOF",
	TokenLParen:  "LParen",
	TokenRParen:  "RParen",
	TokenPlus:    "Plus",
	TokenMinus:   "Minus",
	TokenStar:    "Star",
	TokenSlash:   "Slash",
	TokenPercent: "Percent",
	TokenCaret:   "Caret",
	TokenNumber:  "Number",
	TokenIdent:   "Ident",
}

func (k TokenKind) String() string {
	if k < 0 || k >= numTokenKinds {
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
	return tokenKindNames[k]
}

// Punctuation contains the runes which the lexer scans as single-character
// tokens.
const Punctuation = "()+-*/%^"

// punct maps runes in Punctuation to their token kinds.
var punct = map[rune]TokenKind{
	'(': TokenLParen,
	')': TokenRParen,
	'+': TokenPlus,
	'-': TokenMinus,
	'*': TokenStar,
	'/': TokenSlash,
	'%': TokenPercent,
	'^': TokenCaret,
}

// symbol returns the source text of a punctuation kind.
func (k TokenKind) symbol() string {
	for r, v := range punct {
		if v == k {
			return string(r)
		}
	}
	return k.String()
}
