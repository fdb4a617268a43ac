package token

import "fmt"

type Kind int

const (
	EOF Kind = iota
	ILLEGAL

	// Identifiers and literals.
	IDENT
	INT

	// Operators.
	ASSIGN
	PLUS
	MINUS
	BANG
	ASTERISK
	SLASH
	LT
	GT
	EQ
	NOTEQ
	LTEQ
	GTEQ

	// Delimiters.
	LEFTPAREN
	RIGHTPAREN
	LEFTBRACE
	RIGHTBRACE
	COMMA
	SEMICOLON

	// Keywords.
	FUNCTION
	LET
	TRUE
	FALSE
	IF
	ELSE
	RETURN
)

var kindNames = [...]string{
	EOF:        "EOF",
	ILLEGAL:    "ILLEGAL",
	IDENT:      "IDENT",
	INT:        "INT",
	ASSIGN:     "ASSIGN",
	PLUS:       "PLUS",
	MINUS:      "MINUS",
	BANG:       "BANG",
	ASTERISK:   "ASTERISK",
	SLASH:      "SLASH",
	LT:         "LT",
	GT:         "GT",
	EQ:         "EQ",
	NOTEQ:      "NOTEQ",
	LTEQ:       "LTEQ",
	GTEQ:       "GTEQ",
	LEFTPAREN:  "LEFTPAREN",
	RIGHTPAREN: "RIGHTPAREN",
	LEFTBRACE:  "LEFTBRACE",
	RIGHTBRACE: "RIGHTBRACE",
	COMMA:      "COMMA",
	SEMICOLON:  "SEMICOLON",
	FUNCTION:   "FUNCTION",
	LET:        "LET",
	TRUE:       "TRUE",
	FALSE:      "FALSE",
	IF:         "IF",
	ELSE:       "ELSE",
	RETURN:     "RETURN",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Token is one lexical unit of source text. Literal holds the decoded
// value for INT tokens; for every other kind the Lexeme is all there is.
type Token struct {
	Kind    Kind
	Lexeme  string
	Line    int
	Literal any
}

func (t Token) String() string {
	switch t.Kind {
	case IDENT:
		return fmt.Sprintf("IDENT(%s)", t.Lexeme)
	case INT:
		return fmt.Sprintf("INT(%v)", t.Literal)
	case ILLEGAL:
		return fmt.Sprintf("ILLEGAL(%q)", t.Lexeme)
	default:
		return t.Kind.String()
	}
}

var keywords = map[string]Kind{
	"fn":     FUNCTION,
	"let":    LET,
	"true":   TRUE,
	"false":  FALSE,
	"if":     IF,
	"else":   ELSE,
	"return": RETURN,
}

// LookupIdent reclassifies an identifier-shaped lexeme as a keyword when it
// is one. Anything not in the keyword table stays IDENT.
func LookupIdent(ident string) Kind {
	if k, ok := keywords[ident]; ok {
		return k
	}
	return IDENT
}
