// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package match

import (
	"strings"

	"github.com/globtree/globtree/modules/glob/token"
)

// Matcher is the whole-pattern matcher compiled from a token.Tree: it
// consumes a CandidatePath's components the way modules/wildmatch's token
// interface consumes a []string path, component by component, with a
// dedicated unit for Wildcard.Tree that can span zero or more components.
type Matcher struct {
	units []unit
}

// unit is one element of a compiled Matcher: either a single path
// component matched against a ComponentMatcher, or an open span that may
// consume any number of leading components (Wildcard.Tree).
type unit struct {
	component *ComponentMatcher // nil for a tree span
	isTree    bool
}

// Compile builds a whole-pattern Matcher from every top-level component of
// tree: unlike the walk engine's per-component compilation, which stops at
// the first component-boundary token, a whole-pattern match always needs
// the complete pattern.
func Compile(tree *token.Tree) *Matcher {
	comps := token.Components(tree.Tokens)
	units := make([]unit, len(comps))
	for i, c := range comps {
		if c.IsTree() {
			units[i] = unit{isTree: true}
			continue
		}
		units[i] = unit{component: CompileComponent(c)}
	}
	return &Matcher{units: units}
}

// Match reports whether path matches m in full, returning the captures
// produced by every capturing token across every component, in pattern
// order, plus the whole-match span.
func (m *Matcher) Match(path CandidatePath) (*MatchedText, bool) {
	var caps []Capture
	if !consumeUnits(m.units, path.components, 0, &caps) {
		return nil, false
	}
	return &MatchedText{
		Whole:    Capture{Start: 0, End: len(path.text), Text: path.text},
		Captures: caps,
	}, true
}

// consumeUnits backtracks over units against the leading components of
// comps, tracking byteOffset (the running byte position in the original
// text, for capture ranges) as components are consumed.
func consumeUnits(units []unit, comps []string, byteOffset int, caps *[]Capture) bool {
	if len(units) == 0 {
		return len(comps) == 0
	}
	u := units[0]
	if u.isTree {
		for k := 0; k <= len(comps); k++ {
			off := byteOffset
			for i := 0; i < k; i++ {
				off += len(comps[i])
				if i < k-1 || len(units) > 1 {
					off++ // account for the '/' joining consumed components
				}
			}
			trial := append([]Capture{}, *caps...)
			span := strings.Join(comps[:k], "/")
			trial = append(trial, Capture{Start: byteOffset, End: byteOffset + len(span), Text: span})
			if consumeUnits(units[1:], comps[k:], off, &trial) {
				*caps = trial
				return true
			}
		}
		return false
	}
	if len(comps) == 0 {
		return false
	}
	localCaps, ok := u.component.Match(comps[0])
	if !ok {
		return false
	}
	adjusted := make([]Capture, len(localCaps))
	for i, c := range localCaps {
		adjusted[i] = Capture{Start: byteOffset + c.Start, End: byteOffset + c.End, Text: c.Text}
	}
	*caps = append(*caps, adjusted...)
	nextOffset := byteOffset + len(comps[0])
	if len(comps) > 1 {
		nextOffset++ // the separator consumed between comps[0] and comps[1]
	}
	return consumeUnits(units[1:], comps[1:], nextOffset, caps)
}

// IsAnchoredComponentCount reports how many leading units are plain
// components (not a Wildcard.Tree span), used by the walk engine to compile
// only as many per-component matchers as precede the first component
// boundary.
func (m *Matcher) IsAnchoredComponentCount() int {
	n := 0
	for _, u := range m.units {
		if u.isTree {
			break
		}
		n++
	}
	return n
}

// ComponentAt returns the compiled matcher for unit i, or nil if it is a
// tree span.
func (m *Matcher) ComponentAt(i int) *ComponentMatcher {
	if i < 0 || i >= len(m.units) {
		return nil
	}
	return m.units[i].component
}

// Len reports the number of units (components plus tree spans) in m.
func (m *Matcher) Len() int { return len(m.units) }

// UnitIsTree reports whether unit i is a Wildcard.Tree span.
func (m *Matcher) UnitIsTree(i int) bool {
	return i >= 0 && i < len(m.units) && m.units[i].isTree
}
