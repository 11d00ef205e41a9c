// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package token

import "strings"

// posixClasses maps POSIX named classes, as accepted inside "[:name:]", to
// the archetypes they expand to.
var posixClasses = map[string][]Archetype{
	"alnum":  {CharRange('0', '9'), CharRange('A', 'Z'), CharRange('a', 'z')},
	"alpha":  {CharRange('A', 'Z'), CharRange('a', 'z')},
	"blank":  {Character(' '), Character('\t')},
	"cntrl":  {CharRange(0x00, 0x1f), Character(0x7f)},
	"digit":  {CharRange('0', '9')},
	"graph":  {CharRange('!', '~')},
	"lower":  {CharRange('a', 'z')},
	"print":  {CharRange(' ', '~')},
	"punct":  {CharRange('!', '/'), CharRange(':', '@'), CharRange('[', '`'), CharRange('{', '~')},
	"space":  {Character(' '), Character('\t'), Character('\n'), Character('\r'), Character('\v'), Character('\f')},
	"upper":  {CharRange('A', 'Z')},
	"xdigit": {CharRange('0', '9'), CharRange('A', 'F'), CharRange('a', 'f')},
}

func (p *parser) parseClass() ([]Token, error) {
	start := p.pos
	p.pos++ // consume '['
	negated := false
	if p.peek() == '!' || p.peek() == '^' {
		negated = true
		p.pos++
	}
	var archetypes []Archetype
	first := true
	for {
		if p.eof() {
			return nil, p.errorf(start, "unterminated class")
		}
		if p.peek() == ']' && !first {
			break
		}
		first = false
		if strings.HasPrefix(string(p.runes[p.pos:]), "[:") {
			as, err := p.parsePosixClass(start)
			if err != nil {
				return nil, err
			}
			archetypes = append(archetypes, as...)
			continue
		}
		lo, err := p.parseClassRune(start)
		if err != nil {
			return nil, err
		}
		if p.peek() == '-' && p.pos+1 < len(p.runes) && p.runes[p.pos+1] != ']' {
			p.pos++ // consume '-'
			hi, err := p.parseClassRune(start)
			if err != nil {
				return nil, err
			}
			archetypes = append(archetypes, CharRange(lo, hi))
			continue
		}
		archetypes = append(archetypes, Character(lo))
	}
	p.pos++ // consume ']'
	if len(archetypes) == 0 {
		return nil, p.errorf(start, "empty class")
	}
	return []Token{New(&Class{IsNegated: negated, Archetypes: archetypes}, Span{start, p.pos})}, nil
}

func (p *parser) parsePosixClass(start int) ([]Archetype, error) {
	rest := string(p.runes[p.pos+2:])
	end := strings.Index(rest, ":]")
	if end < 0 {
		return nil, p.errorf(start, "unterminated POSIX class")
	}
	name := rest[:end]
	as, ok := posixClasses[name]
	if !ok {
		return nil, p.errorf(start, "unknown POSIX class %q", name)
	}
	p.pos += 2 + end + 2
	return as, nil
}

func (p *parser) parseClassRune(start int) (rune, error) {
	if p.eof() {
		return 0, p.errorf(start, "unterminated class")
	}
	c := p.peek()
	if c == '\\' {
		p.pos++
		if p.eof() {
			return 0, p.errorf(start, "dangling escape in class")
		}
		c = p.peek()
	}
	p.pos++
	return c, nil
}
