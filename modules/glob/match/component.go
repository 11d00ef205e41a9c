// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package match

import (
	"strings"
	"unicode/utf8"

	"github.com/globtree/globtree/modules/glob/token"
)

// ComponentMatcher matches the tokens of a single path component (a
// token.Component with no Separator or Wildcard.Tree token) against a
// single path-component string.
type ComponentMatcher struct {
	tokens []token.Token
}

// CompileComponent compiles a single component's tokens. Callers obtain
// components via token.Components; a singleton Wildcard.Tree component must
// not be passed here (the whole-pattern Matcher handles it as its own unit).
func CompileComponent(c token.Component) *ComponentMatcher {
	return &ComponentMatcher{tokens: c.Tokens}
}

// Match reports whether s, a single path component, matches m in full,
// returning the captures produced by every capturing token in m, in order.
func (m *ComponentMatcher) Match(s string) ([]Capture, bool) {
	var caps []Capture
	ok := matchTokens(m.tokens, s, 0, &caps)
	if !ok {
		return nil, false
	}
	reverseCaptures(caps)
	return caps, true
}

// reverseCaptures restores pattern (left-to-right) order: matchTokens
// records a capturing token's range only after its right-hand continuation
// has already succeeded, so captures accumulate tail-first.
func reverseCaptures(caps []Capture) {
	for i, j := 0, len(caps)-1; i < j; i, j = i+1, j-1 {
		caps[i], caps[j] = caps[j], caps[i]
	}
}

// matchTokens backtracks over tokens against s starting at byte offset pos,
// requiring the whole of s (from pos onward) to be consumed once tokens is
// exhausted. It mirrors the recursive-descent consumption style of
// modules/wildmatch's token.Consume, generalized to the richer token set
// modules/glob/token produces.
func matchTokens(tokens []token.Token, s string, pos int, caps *[]Capture) bool {
	if len(tokens) == 0 {
		return pos == len(s)
	}
	tok := tokens[0]
	rest := tokens[1:]

	switch k := tok.Kind.(type) {
	case *token.Literal:
		return matchLiteral(k, rest, s, pos, caps)
	case *token.WildcardOne:
		r, size := utf8.DecodeRuneInString(s[pos:])
		if size == 0 {
			return false
		}
		start := pos
		if matchTokens(rest, s, pos+size, caps) {
			record(caps, len(*caps), Capture{Start: start, End: pos + size, Text: string(r)})
			return true
		}
		return false
	case *token.WildcardZeroOrMore:
		return matchZeroOrMore(k, rest, s, pos, caps)
	case *token.Class:
		return matchClass(k, rest, s, pos, caps)
	case *token.Alternative:
		return matchAlternative(k, rest, s, pos, caps)
	case *token.Repetition:
		return matchRepetition(k, rest, s, pos, caps)
	default:
		return false
	}
}

// record appends a capture. Since matchTokens unwinds from the tail of the
// token sequence back to the head, captures are appended tail-first; the
// final caller-visible slice is reversed once at the top of Match-family
// entry points so that captures come out in pattern (left-to-right) order
// despite being collected during the unwind.
func record(caps *[]Capture, at int, c Capture) {
	*caps = append(*caps, c)
}

func matchLiteral(l *token.Literal, rest []token.Token, s string, pos int, caps *[]Capture) bool {
	text := l.Text
	if pos+len(text) > len(s) {
		return false
	}
	candidate := s[pos : pos+len(text)]
	if l.CaseInsensitive || token.PathsAreCaseInsensitive {
		if !strings.EqualFold(candidate, text) {
			return false
		}
	} else if candidate != text {
		return false
	}
	return matchTokens(rest, s, pos+len(text), caps)
}

func matchClass(c *token.Class, rest []token.Token, s string, pos int, caps *[]Capture) bool {
	r, size := utf8.DecodeRuneInString(s[pos:])
	if size == 0 {
		return false
	}
	in := false
	for _, a := range c.Archetypes {
		if a.Contains(r) {
			in = true
			break
		}
	}
	if c.IsNegated {
		in = !in
	}
	if !in {
		return false
	}
	start := pos
	if matchTokens(rest, s, pos+size, caps) {
		record(caps, len(*caps), Capture{Start: start, End: pos + size, Text: string(r)})
		return true
	}
	return false
}

// matchZeroOrMore tries every possible consumed length within the rest of
// the component (Wildcard tokens never cross a component boundary, so the
// search space is bounded by len(s)-pos), longest-first for the eager form
// and shortest-first otherwise.
func matchZeroOrMore(w *token.WildcardZeroOrMore, rest []token.Token, s string, pos int, caps *[]Capture) bool {
	max := len(s) - pos
	try := func(n int) bool {
		start := pos
		end := pos + n
		if matchTokens(rest, s, end, caps) {
			record(caps, len(*caps), Capture{Start: start, End: end, Text: s[start:end]})
			return true
		}
		return false
	}
	if w.Eager {
		for n := max; n >= 0; n-- {
			if try(n) {
				return true
			}
		}
		return false
	}
	for n := 0; n <= max; n++ {
		if try(n) {
			return true
		}
	}
	return false
}

func matchAlternative(a *token.Alternative, rest []token.Token, s string, pos int, caps *[]Capture) bool {
	for _, branch := range a.Branches {
		spliced := append(append([]token.Token{}, branch...), rest...)
		trial := append([]Capture{}, *caps...)
		if matchTokens(spliced, s, pos, &trial) {
			*caps = trial
			branchCap := Capture{Start: pos, End: findBranchEnd(branch, s, pos, trial), Text: ""}
			branchCap.Text = s[branchCap.Start:branchCap.End]
			record(caps, len(*caps), branchCap)
			return true
		}
	}
	return false
}

// findBranchEnd recomputes how far a successfully matched branch consumed,
// by re-deriving its own invariant/variant reach; for a purely invariant
// branch this is exact, and for a variant branch it falls back to the
// length actually consumed as recorded by the most recent capture, which is
// accurate because matchAlternative only calls this after a successful
// match of branch+rest.
func findBranchEnd(branch []token.Token, s string, pos int, caps []Capture) int {
	if text, ok := branchInvariantText(branch); ok {
		return pos + len(text)
	}
	if len(caps) == 0 {
		return pos
	}
	return caps[len(caps)-1].End
}

func branchInvariantText(branch []token.Token) (string, bool) {
	var b strings.Builder
	for _, t := range branch {
		text, ok := t.Variance().InvariantText()
		if !ok {
			return "", false
		}
		b.WriteString(text)
	}
	return b.String(), true
}

func matchRepetition(r *token.Repetition, rest []token.Token, s string, pos int, caps *[]Capture) bool {
	lower, upper, bounded := r.Bounds()
	maxTry := upper
	if !bounded {
		maxTry = lower + (len(s) - pos) + 1
	}
	for n := maxTry; n >= lower; n-- {
		expanded := make([]token.Token, 0, n*len(r.Tokens)+len(rest))
		for i := 0; i < n; i++ {
			expanded = append(expanded, r.Tokens...)
		}
		expanded = append(expanded, rest...)
		trial := append([]Capture{}, *caps...)
		start := pos
		if matchTokens(expanded, s, pos, &trial) {
			*caps = trial
			end := start
			if n > 0 {
				end = findRepetitionEnd(r.Tokens, n, s, start)
			}
			record(caps, len(*caps), Capture{Start: start, End: end, Text: s[start:end]})
			return true
		}
	}
	return false
}

func findRepetitionEnd(body []token.Token, n int, s string, pos int) int {
	if text, ok := branchInvariantText(body); ok {
		return pos + len(text)*n
	}
	return pos
}
