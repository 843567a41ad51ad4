package services

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/freshbites/journalsim/internal/apperrors"
)

// EvaluateFormula resolves a small arithmetic expression against generated
// numeric variables. The template language only needs "amount", "partial"
// and "amount - partial", but the evaluator supports + - * / and
// parentheses over the closed, author-authored template set. It never
// executes anything dynamic; an undefined variable is a configuration error.
func EvaluateFormula(formula string, vars map[string]decimal.Decimal) (decimal.Decimal, error) {
	p := &formulaParser{input: formula, vars: vars}
	result, err := p.parseExpression()
	if err != nil {
		return decimal.Zero, err
	}
	p.skipSpaces()
	if p.pos < len(p.input) {
		return decimal.Zero, fmt.Errorf("%w: unexpected %q in formula %q", apperrors.ErrConfiguration, p.input[p.pos:], formula)
	}
	return result, nil
}

// formulaParser is a minimal recursive-descent parser:
//
//	expression = term { ("+" | "-") term }
//	term       = factor { ("*" | "/") factor }
//	factor     = number | variable | "(" expression ")" | "-" factor
type formulaParser struct {
	input string
	pos   int
	vars  map[string]decimal.Decimal
}

func (p *formulaParser) parseExpression() (decimal.Decimal, error) {
	left, err := p.parseTerm()
	if err != nil {
		return decimal.Zero, err
	}
	for {
		p.skipSpaces()
		switch {
		case p.peek() == '+':
			p.pos++
			right, err := p.parseTerm()
			if err != nil {
				return decimal.Zero, err
			}
			left = left.Add(right)
		case p.peek() == '-':
			p.pos++
			right, err := p.parseTerm()
			if err != nil {
				return decimal.Zero, err
			}
			left = left.Sub(right)
		default:
			return left, nil
		}
	}
}

func (p *formulaParser) parseTerm() (decimal.Decimal, error) {
	left, err := p.parseFactor()
	if err != nil {
		return decimal.Zero, err
	}
	for {
		p.skipSpaces()
		switch {
		case p.peek() == '*':
			p.pos++
			right, err := p.parseFactor()
			if err != nil {
				return decimal.Zero, err
			}
			left = left.Mul(right)
		case p.peek() == '/':
			p.pos++
			right, err := p.parseFactor()
			if err != nil {
				return decimal.Zero, err
			}
			if right.IsZero() {
				return decimal.Zero, fmt.Errorf("%w: division by zero in formula %q", apperrors.ErrConfiguration, p.input)
			}
			left = left.Div(right)
		default:
			return left, nil
		}
	}
}

func (p *formulaParser) parseFactor() (decimal.Decimal, error) {
	p.skipSpaces()
	switch {
	case p.peek() == '(':
		p.pos++
		inner, err := p.parseExpression()
		if err != nil {
			return decimal.Zero, err
		}
		p.skipSpaces()
		if p.peek() != ')' {
			return decimal.Zero, fmt.Errorf("%w: missing closing parenthesis in formula %q", apperrors.ErrConfiguration, p.input)
		}
		p.pos++
		return inner, nil
	case p.peek() == '-':
		p.pos++
		inner, err := p.parseFactor()
		if err != nil {
			return decimal.Zero, err
		}
		return inner.Neg(), nil
	case unicode.IsDigit(rune(p.peek())):
		return p.parseNumber()
	case isIdentStart(p.peek()):
		return p.parseVariable()
	default:
		return decimal.Zero, fmt.Errorf("%w: malformed formula %q", apperrors.ErrConfiguration, p.input)
	}
}

func (p *formulaParser) parseNumber() (decimal.Decimal, error) {
	start := p.pos
	for p.pos < len(p.input) && (unicode.IsDigit(rune(p.input[p.pos])) || p.input[p.pos] == '.') {
		p.pos++
	}
	value, err := decimal.NewFromString(p.input[start:p.pos])
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: invalid number %q in formula %q", apperrors.ErrConfiguration, p.input[start:p.pos], p.input)
	}
	return value, nil
}

func (p *formulaParser) parseVariable() (decimal.Decimal, error) {
	start := p.pos
	for p.pos < len(p.input) && isIdentPart(p.input[p.pos]) {
		p.pos++
	}
	name := p.input[start:p.pos]
	value, ok := p.vars[name]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: undefined formula variable %q", apperrors.ErrConfiguration, name)
	}
	return value, nil
}

func (p *formulaParser) skipSpaces() {
	for p.pos < len(p.input) && unicode.IsSpace(rune(p.input[p.pos])) {
		p.pos++
	}
}

// peek returns the current byte, or 0 at end of input.
func (p *formulaParser) peek() byte {
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

func isIdentStart(b byte) bool {
	return b == '_' || ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

func isIdentPart(b byte) bool {
	return isIdentStart(b) || ('0' <= b && b <= '9')
}

// fillTemplate substitutes every {placeholder} in a message or hint template
// with the evaluated value of the expression between the braces. Values are
// rendered without decimals when whole, matching the chat copy ("€400", not
// "€400.00").
func fillTemplate(template string, vars map[string]decimal.Decimal) (string, error) {
	var out strings.Builder
	rest := template
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			out.WriteString(rest)
			return out.String(), nil
		}
		closing := strings.IndexByte(rest[open:], '}')
		if closing < 0 {
			out.WriteString(rest)
			return out.String(), nil
		}
		closing += open
		out.WriteString(rest[:open])
		value, err := EvaluateFormula(rest[open+1:closing], vars)
		if err != nil {
			return "", err
		}
		out.WriteString(formatTemplateValue(value))
		rest = rest[closing+1:]
	}
}

// formatTemplateValue renders whole values without a fraction and anything
// else with two decimals.
func formatTemplateValue(value decimal.Decimal) string {
	if value.Equal(value.Truncate(0)) {
		return value.StringFixed(0)
	}
	return value.StringFixed(2)
}
