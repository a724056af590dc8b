package tools

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/XiaoConstantine/agentic-go/pkg/errors"
)

// Evaluate computes the value of a restricted arithmetic expression over
// numbers and + - * / ( ). Input is never executed as code; anything
// outside that grammar is rejected.
func Evaluate(expression string) (float64, error) {
	p := &exprParser{input: expression}
	v, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	p.skipSpace()
	if p.pos != len(p.input) {
		return 0, errors.WithFields(
			errors.New(errors.InvalidInput, "unexpected token in expression"),
			errors.Fields{"position": p.pos})
	}
	return v, nil
}

// exprParser is a small recursive-descent parser:
//
//	expr   := term (('+'|'-') term)*
//	term   := factor (('*'|'/') factor)*
//	factor := number | '-' factor | '(' expr ')'
type exprParser struct {
	input string
	pos   int
}

func (p *exprParser) parseExpr() (float64, error) {
	v, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for {
		p.skipSpace()
		switch p.peek() {
		case '+':
			p.pos++
			rhs, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			v += rhs
		case '-':
			p.pos++
			rhs, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			v -= rhs
		default:
			return v, nil
		}
	}
}

func (p *exprParser) parseTerm() (float64, error) {
	v, err := p.parseFactor()
	if err != nil {
		return 0, err
	}
	for {
		p.skipSpace()
		switch p.peek() {
		case '*':
			p.pos++
			rhs, err := p.parseFactor()
			if err != nil {
				return 0, err
			}
			v *= rhs
		case '/':
			p.pos++
			rhs, err := p.parseFactor()
			if err != nil {
				return 0, err
			}
			if rhs == 0 {
				return 0, errors.New(errors.InvalidInput, "division by zero")
			}
			v /= rhs
		default:
			return v, nil
		}
	}
}

func (p *exprParser) parseFactor() (float64, error) {
	p.skipSpace()
	switch c := p.peek(); {
	case c == '-':
		p.pos++
		v, err := p.parseFactor()
		if err != nil {
			return 0, err
		}
		return -v, nil
	case c == '(':
		p.pos++
		v, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		p.skipSpace()
		if p.peek() != ')' {
			return 0, errors.New(errors.InvalidInput, "missing closing parenthesis")
		}
		p.pos++
		return v, nil
	case unicode.IsDigit(rune(c)) || c == '.':
		return p.parseNumber()
	default:
		return 0, errors.WithFields(
			errors.New(errors.InvalidInput, "expected number, '-' or '('"),
			errors.Fields{"position": p.pos})
	}
}

func (p *exprParser) parseNumber() (float64, error) {
	start := p.pos
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if c >= '0' && c <= '9' || c == '.' {
			p.pos++
			continue
		}
		break
	}
	v, err := strconv.ParseFloat(p.input[start:p.pos], 64)
	if err != nil {
		return 0, errors.Wrap(err, errors.InvalidInput, "invalid number literal")
	}
	return v, nil
}

func (p *exprParser) peek() byte {
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

func (p *exprParser) skipSpace() {
	p.pos += len(p.input[p.pos:]) - len(strings.TrimLeft(p.input[p.pos:], " \t"))
}
