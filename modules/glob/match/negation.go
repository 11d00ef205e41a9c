// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package match

import "github.com/globtree/globtree/modules/glob/token"

// Negation is the compiled form of a set of deny patterns, partitioned up
// front into terminal patterns (those ending in an
// open-depth, open-breadth token, e.g. "target/**") and non-terminal
// patterns. A terminal match against a directory cancels descent into it
// entirely; a non-terminal match only excludes that one entry.
type Negation struct {
	Terminal    []*Matcher
	Nonterminal []*Matcher
}

// CompileNegation partitions trees by token.Tree.IsTerminal and compiles
// each tree into its own Matcher, so that a pattern spanning several path
// components keeps its component structure. A partition with no members
// is an empty slice, which never matches.
func CompileNegation(trees []*token.Tree) *Negation {
	n := &Negation{}
	for _, t := range trees {
		if t.IsTerminal() {
			n.Terminal = append(n.Terminal, Compile(t))
		} else {
			n.Nonterminal = append(n.Nonterminal, Compile(t))
		}
	}
	return n
}

// MatchesTerminal reports whether path is denied by a terminal pattern.
func (n *Negation) MatchesTerminal(path CandidatePath) bool {
	return n != nil && matchesAny(n.Terminal, path)
}

// MatchesNonterminal reports whether path is denied by a non-terminal
// pattern.
func (n *Negation) MatchesNonterminal(path CandidatePath) bool {
	return n != nil && matchesAny(n.Nonterminal, path)
}

func matchesAny(ms []*Matcher, path CandidatePath) bool {
	for _, m := range ms {
		if _, ok := m.Match(path); ok {
			return true
		}
	}
	return false
}

// Matches reports whether path is denied by either partition.
func (n *Negation) Matches(path CandidatePath) bool {
	return n.MatchesTerminal(path) || n.MatchesNonterminal(path)
}
