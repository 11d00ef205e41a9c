// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package walk

import (
	"github.com/globtree/globtree/modules/glob/match"
	"github.com/globtree/globtree/modules/glob/token"
)

// Residue is what an entry filter decides to do with an entry: emit it as a
// candidate, silently drop it, or drop it and everything beneath it.
type Residue int

const (
	// Filtrate means the entry survives filtering and may still be
	// checked against the pattern for a match.
	Filtrate Residue = iota
	// SkipFile drops this one entry but still descends into it if it is a
	// directory.
	SkipFile
	// SkipSubtree drops this entry and, if it is a directory, prevents
	// descent into it entirely.
	SkipSubtree
)

// FilterFunc decides what to do with a single entry.
type FilterFunc func(Entry) Residue

// Compose combines filters monotonically: the most restrictive residue
// produced by any filter wins (SkipSubtree beats SkipFile beats Filtrate),
// so composing filters can only narrow a walk's results, never widen them.
func Compose(filters ...FilterFunc) FilterFunc {
	return func(e Entry) Residue {
		worst := Filtrate
		for _, f := range filters {
			if f == nil {
				continue
			}
			if r := f(e); r > worst {
				worst = r
			}
		}
		return worst
	}
}

// FilterEntry builds a FilterFunc from a compiled Negation: a directory
// matching the terminal partition is skipped along with its whole subtree;
// any entry matching the non-terminal partition is skipped on its own.
func FilterEntry(neg *match.Negation) FilterFunc {
	return func(e Entry) Residue {
		if neg == nil {
			return Filtrate
		}
		cp := e.ToCandidatePath()
		if e.IsDir() && neg.MatchesTerminal(cp) {
			return SkipSubtree
		}
		if neg.Matches(cp) {
			return SkipFile
		}
		return Filtrate
	}
}

// Not is a convenience wrapper around FilterEntry that parses and compiles
// its patterns directly, for callers that have glob strings rather than
// already-parsed trees.
func Not(patterns ...string) (FilterFunc, error) {
	trees := make([]*token.Tree, len(patterns))
	for i, p := range patterns {
		t, err := token.Parse(p)
		if err != nil {
			return nil, err
		}
		trees[i] = t
	}
	return FilterEntry(match.CompileNegation(trees)), nil
}
