package literal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrSyntax indicates the source does not conform to the literal grammar.
var ErrSyntax = errors.New("literal syntax error")

// Parse reads exactly one literal value from src. Trailing whitespace and
// comments are allowed; any other trailing content is an error.
func Parse(src string) (Value, error) {
	p := &parser{src: src, line: 1}
	p.skipSpace()

	v, err := p.parseValue()
	if err != nil {
		return Value{}, err
	}

	p.skipSpace()
	if p.pos < len(p.src) {
		return Value{}, p.errorf("trailing content after literal")
	}

	return v, nil
}

type parser struct {
	src  string
	pos  int
	line int
}

func (p *parser) errorf(format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("%w: line %d: %s", ErrSyntax, p.line, msg)
}

// skipSpace advances past whitespace and # line comments.
func (p *parser) skipSpace() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\r':
			p.pos++
		case '\n':
			p.line++
			p.pos++
		case '#':
			for p.pos < len(p.src) && p.src[p.pos] != '\n' {
				p.pos++
			}
		default:
			return
		}
	}
}

func (p *parser) peek() (byte, bool) {
	if p.pos >= len(p.src) {
		return 0, false
	}
	return p.src[p.pos], true
}

func (p *parser) parseValue() (Value, error) {
	c, ok := p.peek()
	if !ok {
		return Value{}, p.errorf("unexpected end of input")
	}

	switch {
	case c == '[':
		return p.parseList()
	case c == '{':
		return p.parseMap()
	case c == '\'' || c == '"':
		return p.parseString()
	case c == '-' || c == '+' || (c >= '0' && c <= '9'):
		return p.parseNumber()
	default:
		return p.parseWord()
	}
}

// parseWord handles the bare-word literals: both null spellings and both
// boolean spellings.
func (p *parser) parseWord() (Value, error) {
	start := p.pos
	for p.pos < len(p.src) && isWordByte(p.src[p.pos]) {
		p.pos++
	}

	word := p.src[start:p.pos]
	switch word {
	case "None", "null":
		return NullValue(), nil
	case "True", "true":
		return BoolValue(true), nil
	case "False", "false":
		return BoolValue(false), nil
	case "":
		return Value{}, p.errorf("unexpected character %q", p.src[start])
	default:
		return Value{}, p.errorf("unknown word %q", word)
	}
}

func isWordByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_'
}

func (p *parser) parseNumber() (Value, error) {
	start := p.pos
	if c, _ := p.peek(); c == '-' || c == '+' {
		p.pos++
	}
	for p.pos < len(p.src) && isNumberByte(p.src[p.pos]) {
		p.pos++
	}

	lexeme := p.src[start:p.pos]
	f, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		return Value{}, p.errorf("malformed number %q", lexeme)
	}

	return Value{kind: Number, number: f, text: lexeme}, nil
}

func isNumberByte(c byte) bool {
	return c >= '0' && c <= '9' || c == '.' || c == 'e' || c == 'E' || c == '-' || c == '+'
}

func (p *parser) parseString() (Value, error) {
	quote := p.src[p.pos]
	p.pos++

	var sb strings.Builder
	for {
		if p.pos >= len(p.src) {
			return Value{}, p.errorf("unterminated string")
		}

		c := p.src[p.pos]
		switch c {
		case quote:
			p.pos++
			return StringValue(sb.String()), nil
		case '\\':
			p.pos++
			if err := p.parseEscape(&sb); err != nil {
				return Value{}, err
			}
		case '\n':
			return Value{}, p.errorf("unterminated string")
		default:
			sb.WriteByte(c)
			p.pos++
		}
	}
}

func (p *parser) parseEscape(sb *strings.Builder) error {
	if p.pos >= len(p.src) {
		return p.errorf("unterminated escape sequence")
	}

	c := p.src[p.pos]
	p.pos++

	switch c {
	case 'n':
		sb.WriteByte('\n')
	case 't':
		sb.WriteByte('\t')
	case 'r':
		sb.WriteByte('\r')
	case 'b':
		sb.WriteByte('\b')
	case 'f':
		sb.WriteByte('\f')
	case '\\', '\'', '"', '/':
		sb.WriteByte(c)
	case 'u':
		if p.pos+4 > len(p.src) {
			return p.errorf("truncated \\u escape")
		}
		code, err := strconv.ParseUint(p.src[p.pos:p.pos+4], 16, 32)
		if err != nil {
			return p.errorf("bad \\u escape %q", p.src[p.pos:p.pos+4])
		}
		p.pos += 4
		sb.WriteRune(rune(code))
	default:
		return p.errorf("unknown escape \\%c", c)
	}

	return nil
}

func (p *parser) parseList() (Value, error) {
	p.pos++ // consume '['
	var items []Value

	for {
		p.skipSpace()
		c, ok := p.peek()
		if !ok {
			return Value{}, p.errorf("unterminated list")
		}
		if c == ']' {
			p.pos++
			return ListValue(items...), nil
		}

		item, err := p.parseValue()
		if err != nil {
			return Value{}, err
		}
		items = append(items, item)

		p.skipSpace()
		c, ok = p.peek()
		switch {
		case !ok:
			return Value{}, p.errorf("unterminated list")
		case c == ',':
			p.pos++
		case c == ']':
			// closed on next loop
		default:
			return Value{}, p.errorf("expected ',' or ']' in list, got %q", c)
		}
	}
}

func (p *parser) parseMap() (Value, error) {
	p.pos++ // consume '{'
	var entries []MapEntry

	for {
		p.skipSpace()
		c, ok := p.peek()
		if !ok {
			return Value{}, p.errorf("unterminated map")
		}
		if c == '}' {
			p.pos++
			return MapValue(entries...), nil
		}

		if c != '\'' && c != '"' {
			return Value{}, p.errorf("map key must be a quoted string, got %q", c)
		}
		key, err := p.parseString()
		if err != nil {
			return Value{}, err
		}

		p.skipSpace()
		if c, ok := p.peek(); !ok || c != ':' {
			return Value{}, p.errorf("expected ':' after map key %q", key.text)
		}
		p.pos++

		p.skipSpace()
		val, err := p.parseValue()
		if err != nil {
			return Value{}, err
		}
		entries = append(entries, MapEntry{Key: key.text, Value: val})

		p.skipSpace()
		c, ok = p.peek()
		switch {
		case !ok:
			return Value{}, p.errorf("unterminated map")
		case c == ',':
			p.pos++
		case c == '}':
			// closed on next loop
		default:
			return Value{}, p.errorf("expected ',' or '}' in map, got %q", c)
		}
	}
}
