package mathexpr

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// lexState is a state of the lexer's scanning automaton.
type lexState int8

const (
	// stateReadToken decides what the lookahead rune starts.
	stateReadToken lexState = iota
	stateSkipSpace
	stateReadNumber
	// stateReadFraction consumes the decimal point and the digits after it.
	stateReadFraction
	stateReadIdent
	// stateDone follows the EOF token.
	stateDone
)

// Lexer scans a formula into tokens. The token stream always ends with exactly
// one EOF token. A Lexer cannot be rewound and is not safe for concurrent use.
type Lexer struct {
	src io.RuneReader
	// la is the lookahead rune, unless eof is set.
	la  rune
	pos int
	eof bool

	state lexState
	buf   strings.Builder
	start int
	err   error
}

// NewLexer creates a lexer reading from src.
func NewLexer(src io.RuneReader) *Lexer {
	l := &Lexer{src: src, pos: NoPos}
	l.advance()
	return l
}

// Lex scans an entire string, including the final EOF token.
func Lex(src string) ([]Token, error) {
	l := NewLexer(strings.NewReader(src))
	var toks []Token
	for {
		tok, err := l.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return toks, nil
			}
			return toks, err
		}
		toks = append(toks, tok)
	}
}

// Next scans the next token. After the EOF token, the result is io.EOF.
// Once Next returns any other error, it returns that error forever.
func (l *Lexer) Next() (Token, error) {
	for {
		if l.err != nil {
			return Token{}, l.err
		}
		if l.state == stateDone {
			return Token{}, io.EOF
		}
		tok, ok, err := l.step()
		if err != nil {
			l.err = err
			return Token{}, err
		}
		if ok {
			return tok, nil
		}
	}
}

// step runs one transition of the scanner. ok reports whether it produced a
// token.
func (l *Lexer) step() (tok Token, ok bool, err error) {
	switch l.state {
	case stateReadToken:
		switch {
		case l.eof:
			l.state = stateDone
			return Token{Kind: TokenEOF, Pos: l.pos}, true, nil
		case unicode.IsSpace(l.la):
			l.state = stateSkipSpace
		case isDigit(l.la):
			l.state = stateReadNumber
		case unicode.IsLetter(l.la):
			l.state = stateReadIdent
		default:
			k, found := punct[l.la]
			if !found {
				return Token{}, false, &LexError{Col: l.pos, Char: l.la}
			}
			tok = Token{Kind: k, Pos: l.pos}
			l.advance()
			return tok, true, nil
		}
	case stateSkipSpace:
		for !l.eof && unicode.IsSpace(l.la) {
			l.advance()
		}
		l.state = stateReadToken
	case stateReadNumber:
		for !l.eof && isDigit(l.la) {
			l.consume()
		}
		if !l.eof && l.la == '.' {
			l.state = stateReadFraction
			return Token{}, false, nil
		}
		return l.emit(TokenNumber), true, nil
	case stateReadFraction:
		l.consume()
		for !l.eof && isDigit(l.la) {
			l.consume()
		}
		return l.emit(TokenNumber), true, nil
	case stateReadIdent:
		// The first rune is a letter; stateReadToken checked it.
		l.consume()
		for !l.eof && (unicode.IsLetter(l.la) || unicode.IsDigit(l.la)) {
			l.consume()
		}
		return l.emit(TokenIdent), true, nil
	case stateDone:
		return Token{}, false, io.EOF
	default:
		panic("mathexpr: invalid lexer state " + strconv.Itoa(int(l.state)))
	}
	return Token{}, false, nil
}

// advance moves the lookahead to the next rune. Reaching the end of the input
// sets eof; it is a bug to advance past it.
func (l *Lexer) advance() {
	if l.eof {
		panic("mathexpr: advance after EOF")
	}
	r, _, err := l.src.ReadRune()
	l.pos++
	if err != nil {
		l.eof = true
		if !errors.Is(err, io.EOF) {
			l.err = err
		}
		return
	}
	l.la = r
}

// consume appends the lookahead to the token buffer and advances.
func (l *Lexer) consume() {
	if l.buf.Len() == 0 {
		l.start = l.pos
	}
	l.buf.WriteRune(l.la)
	l.advance()
}

// emit creates a token from the buffer and resets the scanner for the next
// token.
func (l *Lexer) emit(kind TokenKind) Token {
	tok := Token{Kind: kind, Pos: l.start, Text: l.buf.String()}
	l.buf.Reset()
	l.state = stateReadToken
	return tok
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// LexError indicates a character that cannot start any token. It implements
// InputError.
type LexError struct {
	// Col is the rune offset of the character.
	Col int
	// Char is the unexpected character.
	Char rune
}

func (err *LexError) Error() string {
	return errpos(err.Col, "unexpected character "+strconv.QuoteRune(err.Char))
}

func (err *LexError) Pos() int {
	return err.Col
}
