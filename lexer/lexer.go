package lexer

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/monkeylang/monkey/token"
)

// Lex scans source and returns every token up to, but not including, the
// end-of-input sentinel. Lexical errors never stop the scan; they are
// collected and returned joined, so one pass reports all of them.
func Lex(source string) ([]token.Token, error) {
	s := New(source)
	tokens := []token.Token{}

	var err error

	for {
		tok, tokErr := s.NextToken()
		err = errors.Join(err, tokErr)
		if tok.Kind == token.EOF {
			return tokens, err
		}
		tokens = append(tokens, tok)
	}
}

// Scanner produces tokens one NextToken call at a time. The cursor is primed
// at construction and only moves forward; a NUL rune stands in for "past end
// of input". A Scanner is not reusable once EOF has been observed.
type Scanner struct {
	source []rune

	position     int  // index of ch
	readPosition int  // index one past ch
	ch           rune // rune under the cursor, 0 past the end
	line         int  // current line number
}

// New decodes input to runes up front, so every cursor access is a direct
// index rather than a walk from the start of the string.
func New(input string) *Scanner {
	s := &Scanner{source: []rune(input), line: 1}
	s.readChar()

	return s
}

type UnexpectedCharacterError struct {
	Line int
	Char rune
}

func (e UnexpectedCharacterError) Error() string {
	return fmt.Sprintf("unexpected character: %c at line %d", e.Char, e.Line)
}

type IntegerOverflowError struct {
	Line   int
	Lexeme string
}

func (e IntegerOverflowError) Error() string {
	return fmt.Sprintf("integer literal %s out of 32-bit range at line %d", e.Lexeme, e.Line)
}

// NextToken skips whitespace and returns the next token in the input.
// Unrecognized characters and out-of-range integer literals yield an ILLEGAL
// token together with a typed error; the scan continues past them. Once the
// input is exhausted every further call returns an EOF token and no error.
func (s *Scanner) NextToken() (token.Token, error) {
	s.skipWhitespace()

	var tok token.Token
	var err error

	switch s.ch {
	case '=':
		tok = s.compound(token.ASSIGN, token.EQ)
	case '!':
		tok = s.compound(token.BANG, token.NOTEQ)
	case '<':
		tok = s.compound(token.LT, token.LTEQ)
	case '>':
		tok = s.compound(token.GT, token.GTEQ)
	case '+':
		tok = s.symbol(token.PLUS)
	case '-':
		tok = s.symbol(token.MINUS)
	case '*':
		tok = s.symbol(token.ASTERISK)
	case '/':
		tok = s.symbol(token.SLASH)
	case '(':
		tok = s.symbol(token.LEFTPAREN)
	case ')':
		tok = s.symbol(token.RIGHTPAREN)
	case '{':
		tok = s.symbol(token.LEFTBRACE)
	case '}':
		tok = s.symbol(token.RIGHTBRACE)
	case ',':
		tok = s.symbol(token.COMMA)
	case ';':
		tok = s.symbol(token.SEMICOLON)
	case 0:
		tok = token.Token{Kind: token.EOF, Lexeme: "", Line: s.line}
	default:
		switch {
		case isDigit(s.ch):
			tok, err = s.readNumber()
		case isLetter(s.ch):
			tok = s.readIdentifier()
		default:
			tok = token.Token{Kind: token.ILLEGAL, Lexeme: string(s.ch), Line: s.line}
			err = UnexpectedCharacterError{Line: s.line, Char: s.ch}
		}
	}

	s.readChar()

	return tok, err
}

func (s *Scanner) skipWhitespace() {
	for s.ch == ' ' || s.ch == '\t' || s.ch == '\n' || s.ch == '\r' {
		if s.ch == '\n' {
			s.line++
		}
		s.readChar()
	}
}

func (s *Scanner) peekChar() rune {
	if s.readPosition >= len(s.source) {
		return 0
	}

	return s.source[s.readPosition]
}

func (s *Scanner) readChar() {
	if s.readPosition >= len(s.source) {
		s.ch = 0
	} else {
		s.ch = s.source[s.readPosition]
	}
	s.position = s.readPosition
	s.readPosition++
}

func (s *Scanner) symbol(kind token.Kind) token.Token {
	return token.Token{Kind: kind, Lexeme: string(s.ch), Line: s.line}
}

// compound emits the doubled form when the next character is '=', consuming
// both characters; otherwise the single-character form. Maximal munch,
// applied locally.
func (s *Scanner) compound(single, doubled token.Kind) token.Token {
	if s.peekChar() != '=' {
		return s.symbol(single)
	}

	lexeme := string(s.ch) + "="
	s.readChar()

	return token.Token{Kind: doubled, Lexeme: lexeme, Line: s.line}
}

// readIdentifier consumes a letter/underscore-led run of letters, digits and
// underscores, leaving the cursor on its last character.
func (s *Scanner) readIdentifier() token.Token {
	start := s.position
	for isLetter(s.peekChar()) || isDigit(s.peekChar()) {
		s.readChar()
	}

	lexeme := string(s.source[start : s.position+1])

	return token.Token{Kind: token.LookupIdent(lexeme), Lexeme: lexeme, Line: s.line}
}

// readNumber consumes a digit run. A run that does not fit int32 yields an
// ILLEGAL token carrying the run, not a dead scanner.
func (s *Scanner) readNumber() (token.Token, error) {
	start := s.position
	for isDigit(s.peekChar()) {
		s.readChar()
	}

	lexeme := string(s.source[start : s.position+1])

	value, err := strconv.ParseInt(lexeme, 10, 32)
	if err != nil {
		return token.Token{Kind: token.ILLEGAL, Lexeme: lexeme, Line: s.line},
			IntegerOverflowError{Line: s.line, Lexeme: lexeme}
	}

	return token.Token{Kind: token.INT, Lexeme: lexeme, Line: s.line, Literal: int32(value)}, nil
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c rune) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}
