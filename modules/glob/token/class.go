// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package token

import "strings"

// Archetype is one member of a Class: either a single character or an
// inclusive character range.
type Archetype struct {
	Low, High rune // Low == High for a single character
}

func Character(r rune) Archetype       { return Archetype{Low: r, High: r} }
func CharRange(lo, hi rune) Archetype  { return Archetype{Low: lo, High: hi} }

func (a Archetype) IsSingle() bool { return a.Low == a.High }

func (a Archetype) Contains(r rune) bool {
	return r >= a.Low && r <= a.High
}

// variance of a single archetype: Invariant if it names exactly one
// character whose case, folded per the ambient platform rule, still names
// only that character; Variant(Closed) for a range, or for a single cased
// character that the platform's case-insensitivity would fold into more
// than one match.
func (a Archetype) variance() Variance {
	if a.IsSingle() {
		if PathsAreCaseInsensitive && hasCasing(string(a.Low)) {
			return Variant(Closed)
		}
		return Invariant(string(a.Low))
	}
	return Variant(Closed)
}

// Class is `[...]`: one character drawn from (or, if IsNegated, excluded
// from) a set of archetypes.
type Class struct {
	IsNegated  bool
	Archetypes []Archetype
}

func (c *Class) isKind() {}

// variance: a negated class always matches an unbounded set of characters
// relative to its archetypes, so it is Variant(Closed) (bounded to one
// character, but not to a known value). A non-negated class reduces via
// disjunctiveVariance over its archetypes, so a class with exactly one
// single-character archetype is Invariant.
func (c *Class) variance() Variance {
	if c.IsNegated {
		return Variant(Closed)
	}
	vs := make([]Variance, len(c.Archetypes))
	for i, a := range c.Archetypes {
		vs[i] = a.variance()
	}
	return disjunctiveVariance(vs)
}

func (c *Class) depth() Boundedness        { return Closed }
func (c *Class) breadth() Boundedness      { return Closed }
func (c *Class) isComponentBoundary() bool { return false }
func (c *Class) isCapturing() bool         { return true }

func renderClass(c *Class) string {
	var b strings.Builder
	b.WriteByte('[')
	if c.IsNegated {
		b.WriteByte('!')
	}
	for _, a := range c.Archetypes {
		if a.IsSingle() {
			b.WriteRune(a.Low)
		} else {
			b.WriteRune(a.Low)
			b.WriteByte('-')
			b.WriteRune(a.High)
		}
	}
	b.WriteByte(']')
	return b.String()
}
