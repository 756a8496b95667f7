package path

import (
	"strconv"
	"strings"
)

// Parse converts path text into an Expr.
//
// The grammar is a dotted/bracketed navigation syntax:
//
//	path      ::= segment (('.' segment) | bracket)*
//	segment   ::= identifier | quoted
//	bracket   ::= '[' (index | '*' | '' | slice) ']'
//	slice     ::= index? ':' index? (':' index?)?
//
// A leading '.' is ignored, bracket segments chain without dots
// ("a[0][1]"), and fields with non-identifier characters may be
// single-quoted with backslash escapes ("'odd.key'"). Malformed text
// yields a *ParseError carrying the text and failing offset.
func Parse(text string) (Expr, error) {
	if text == "" {
		return Expr{}, parseErr(text, 0, ErrEmpty)
	}
	p := &parser{text: text}
	if text[0] == '.' {
		p.i = 1
	}
	var segs []Segment
	for first := true; ; first = false {
		if p.i >= len(text) {
			if first {
				return Expr{}, parseErr(text, p.i, ErrEmpty)
			}
			break
		}
		switch text[p.i] {
		case '[':
			seg, err := p.bracket()
			if err != nil {
				return Expr{}, err
			}
			segs = append(segs, seg)
		case '.':
			if first {
				return Expr{}, parseErr(text, p.i, ErrBadField)
			}
			p.i++
			f, err := p.field()
			if err != nil {
				return Expr{}, err
			}
			segs = append(segs, f)
		default:
			if !first {
				return Expr{}, parseErr(text, p.i, ErrTrailing)
			}
			f, err := p.field()
			if err != nil {
				return Expr{}, err
			}
			segs = append(segs, f)
		}
	}
	return Expr{segs: segs}, nil
}

// MustParse is Parse for static path text; it panics on malformed
// input.
func MustParse(text string) Expr {
	e, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return e
}

type parser struct {
	text string
	i    int
}

func (p *parser) field() (Field, error) {
	if p.i >= len(p.text) {
		return "", parseErr(p.text, p.i, ErrBadField)
	}
	if p.text[p.i] == '\'' {
		return p.quoted()
	}
	start := p.i
	for p.i < len(p.text) {
		c := p.text[p.i]
		if c == '.' || c == '[' {
			break
		}
		if !isIdentChar(c) {
			return "", parseErr(p.text, p.i, ErrBadField)
		}
		p.i++
	}
	name := p.text[start:p.i]
	if name == "" || name[0] >= '0' && name[0] <= '9' {
		return "", parseErr(p.text, start, ErrBadField)
	}
	return Field(name), nil
}

func (p *parser) quoted() (Field, error) {
	start := p.i
	p.i++
	res := make([]byte, 0, len(p.text)-p.i)
	escaped := false
	for p.i < len(p.text) {
		c := p.text[p.i]
		p.i++
		if escaped {
			res = append(res, c)
			escaped = false
			continue
		}
		switch c {
		case '\\':
			escaped = true
		case '\'':
			return Field(res), nil
		default:
			res = append(res, c)
		}
	}
	return "", parseErr(p.text, start, ErrBadField)
}

func (p *parser) bracket() (Segment, error) {
	open := p.i
	p.i++
	end := strings.IndexByte(p.text[p.i:], ']')
	if end == -1 {
		return nil, parseErr(p.text, open, ErrUnterminated)
	}
	body := p.text[p.i : p.i+end]
	bodyOff := p.i
	p.i += end + 1
	// "[]" is shorthand for "[*]"
	if body == "" || body == "*" {
		return Wildcard{}, nil
	}
	if !strings.Contains(body, ":") {
		n, err := strconv.Atoi(body)
		if err != nil {
			return nil, parseErr(p.text, bodyOff, ErrBadIndex)
		}
		return Index(n), nil
	}
	parts := strings.Split(body, ":")
	if len(parts) > 3 {
		return nil, parseErr(p.text, bodyOff, ErrBadSlice)
	}
	s := Slice{}
	bounds := []struct {
		v   *int
		has *bool
	}{
		{&s.Start, &s.HasStart},
		{&s.Stop, &s.HasStop},
		{&s.Step, &s.HasStep},
	}
	off := bodyOff
	for i, part := range parts {
		if part != "" {
			n, err := strconv.Atoi(part)
			if err != nil {
				return nil, parseErr(p.text, off, ErrBadSlice)
			}
			*bounds[i].v = n
			*bounds[i].has = true
		}
		off += len(part) + 1
	}
	if s.HasStep && s.Step == 0 {
		return nil, parseErr(p.text, bodyOff, ErrZeroStep)
	}
	return s, nil
}

func isIdentChar(c byte) bool {
	return c == '_' ||
		c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9'
}
