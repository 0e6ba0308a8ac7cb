package formula

import "fmt"

// Parse parses the textual form of a formula.
//
// Binding order, loosest to tightest: <->, ->, +, | and -|, & and -&, ~.
// Implication and biconditional associate to the right, the rest to the
// left. Parentheses override. T and F are the truth constants; variable
// names start with a lowercase letter.
func Parse(input string) (Formula, error) {
	tokens, err := NewLexer(input).Tokenize()
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens}
	f, err := p.parseIff()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.Type != TokenEOF {
		return nil, fmt.Errorf("unexpected token %q at position %d", tok.Value, tok.Position)
	}
	return f, nil
}

// MustParse is like Parse but panics on error. It simplifies tests and
// fixed formulas.
func MustParse(input string) Formula {
	f, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return f
}

// parser consumes the token stream produced by the lexer. There is one
// method per binding level.
type parser struct {
	tokens []Token
	pos    int
}

func (p *parser) peek() Token {
	return p.tokens[p.pos]
}

func (p *parser) next() Token {
	tok := p.tokens[p.pos]
	if tok.Type != TokenEOF {
		p.pos++
	}
	return tok
}

func (p *parser) parseIff() (Formula, error) {
	left, err := p.parseImplies()
	if err != nil {
		return nil, err
	}
	if p.peek().Type == TokenIff {
		p.next()
		right, err := p.parseIff()
		if err != nil {
			return nil, err
		}
		return Iff(left, right), nil
	}
	return left, nil
}

func (p *parser) parseImplies() (Formula, error) {
	left, err := p.parseXor()
	if err != nil {
		return nil, err
	}
	if p.peek().Type == TokenImplies {
		p.next()
		right, err := p.parseImplies()
		if err != nil {
			return nil, err
		}
		return Implies(left, right), nil
	}
	return left, nil
}

func (p *parser) parseXor() (Formula, error) {
	left, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	for p.peek().Type == TokenXor {
		p.next()
		right, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		left = Xor(left, right)
	}
	return left, nil
}

func (p *parser) parseOr() (Formula, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek().Type {
		case TokenOr:
			p.next()
			right, err := p.parseAnd()
			if err != nil {
				return nil, err
			}
			left = Or(left, right)
		case TokenNor:
			p.next()
			right, err := p.parseAnd()
			if err != nil {
				return nil, err
			}
			left = Nor(left, right)
		default:
			return left, nil
		}
	}
}

func (p *parser) parseAnd() (Formula, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek().Type {
		case TokenAnd:
			p.next()
			right, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			left = And(left, right)
		case TokenNand:
			p.next()
			right, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			left = Nand(left, right)
		default:
			return left, nil
		}
	}
}

func (p *parser) parseUnary() (Formula, error) {
	if p.peek().Type == TokenNot {
		p.next()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return Not(x), nil
	}
	return p.parseAtom()
}

func (p *parser) parseAtom() (Formula, error) {
	tok := p.next()
	switch tok.Type {
	case TokenTrue:
		return True, nil
	case TokenFalse:
		return False, nil
	case TokenVar:
		return Var(tok.Value), nil
	case TokenLParen:
		f, err := p.parseIff()
		if err != nil {
			return nil, err
		}
		if closing := p.next(); closing.Type != TokenRParen {
			return nil, fmt.Errorf("expected ')' at position %d", closing.Position)
		}
		return f, nil
	case TokenEOF:
		return nil, fmt.Errorf("unexpected end of input at position %d", tok.Position)
	default:
		return nil, fmt.Errorf("unexpected token %q at position %d", tok.Value, tok.Position)
	}
}
