package formula

import (
	"fmt"
	"unicode"
)

// TokenType defines the token kinds produced by the lexer.
type TokenType int

const (
	TokenEOF     TokenType = iota // end of input
	TokenVar                      // variable name
	TokenTrue                     // constant T
	TokenFalse                    // constant F
	TokenNot                      // ~
	TokenAnd                      // &
	TokenOr                       // |
	TokenImplies                  // ->
	TokenXor                      // +
	TokenIff                      // <->
	TokenNand                     // -&
	TokenNor                      // -|
	TokenLParen                   // (
	TokenRParen                   // )
)

// Token represents a single lexical token with type, value, and position.
type Token struct {
	Type     TokenType
	Value    string // the literal string for this token
	Position int    // the starting byte offset in the original input
}

// Lexer scans a formula string and produces tokens.
type Lexer struct {
	input    string
	position int
	tokens   []Token
}

// NewLexer returns a new Lexer over the given input.
func NewLexer(input string) *Lexer {
	return &Lexer{
		input:  input,
		tokens: make([]Token, 0),
	}
}

// Tokenize processes the entire input and produces the list of tokens,
// terminated by a TokenEOF. Two-character operators (->, <->, -&, -|) are
// scanned as single tokens.
func (l *Lexer) Tokenize() ([]Token, error) {
	for l.position < len(l.input) {
		start := l.position
		switch c := l.input[l.position]; {
		case isWhitespace(c):
			l.position++

		case c == '(':
			l.addToken(TokenLParen, "(", start)
			l.position++

		case c == ')':
			l.addToken(TokenRParen, ")", start)
			l.position++

		case c == '~':
			l.addToken(TokenNot, "~", start)
			l.position++

		case c == '&':
			l.addToken(TokenAnd, "&", start)
			l.position++

		case c == '|':
			l.addToken(TokenOr, "|", start)
			l.position++

		case c == '+':
			l.addToken(TokenXor, "+", start)
			l.position++

		case c == '-':
			if l.position+1 < len(l.input) {
				switch l.input[l.position+1] {
				case '>':
					l.addToken(TokenImplies, "->", start)
					l.position += 2
					continue
				case '&':
					l.addToken(TokenNand, "-&", start)
					l.position += 2
					continue
				case '|':
					l.addToken(TokenNor, "-|", start)
					l.position += 2
					continue
				}
			}
			return nil, fmt.Errorf("incomplete operator %q at position %d (expected ->, -& or -|)", "-", start)

		case c == '<':
			if l.position+2 < len(l.input) && l.input[l.position+1] == '-' && l.input[l.position+2] == '>' {
				l.addToken(TokenIff, "<->", start)
				l.position += 3
				continue
			}
			return nil, fmt.Errorf("incomplete operator %q at position %d (expected <->)", "<", start)

		case isLetter(c):
			if err := l.lexName(start); err != nil {
				return nil, err
			}

		default:
			return nil, fmt.Errorf("unexpected character %q at position %d", c, start)
		}
	}

	l.addToken(TokenEOF, "", l.position)
	return l.tokens, nil
}

// lexName scans a name and classifies it as a constant or a variable.
// T and F are the constants; variable names start with a lowercase letter.
func (l *Lexer) lexName(start int) error {
	for l.position < len(l.input) && isNameChar(l.input[l.position]) {
		l.position++
	}
	name := l.input[start:l.position]
	switch {
	case name == "T":
		l.addToken(TokenTrue, name, start)
	case name == "F":
		l.addToken(TokenFalse, name, start)
	case name[0] >= 'a' && name[0] <= 'z':
		l.addToken(TokenVar, name, start)
	default:
		return fmt.Errorf("invalid variable name %q at position %d (variable names start with a lowercase letter)", name, start)
	}
	return nil
}

// addToken is a helper to append a new token to the lexer's token list.
func (l *Lexer) addToken(tokenType TokenType, value string, pos int) {
	l.tokens = append(l.tokens, Token{
		Type:     tokenType,
		Value:    value,
		Position: pos,
	})
}

func isWhitespace(c byte) bool {
	return unicode.IsSpace(rune(c))
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNameChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}
