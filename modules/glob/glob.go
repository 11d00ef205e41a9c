// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// Package glob is the façade tying the lexical parser, matcher compiler and
// walk engine together into the single type most callers need: Glob.
package glob

import (
	"iter"

	"github.com/globtree/globtree/modules/glob/match"
	"github.com/globtree/globtree/modules/glob/token"
	"github.com/globtree/globtree/modules/glob/walk"
	"github.com/globtree/globtree/modules/vfs"
)

// Glob is a parsed and compiled glob expression, ready to match candidate
// paths or walk a directory tree.
type Glob struct {
	tree    *token.Tree
	matcher *match.Matcher
}

// Parse lexes and parses expression, returning a ready-to-use Glob. It
// never returns a partially built Glob: on a malformed expression it
// returns nil and a *token.ParseError.
func Parse(expression string) (*Glob, error) {
	tree, err := token.Parse(expression)
	if err != nil {
		return nil, err
	}
	return &Glob{tree: tree, matcher: match.Compile(tree)}, nil
}

// Tree exposes the parsed token tree, for callers that need to inspect
// variance, boundedness or the invariant prefix directly.
func (g *Glob) Tree() *token.Tree { return g.tree }

// IsMatch reports whether candidate matches g in full.
func (g *Glob) IsMatch(candidate string) bool {
	_, ok := g.matcher.Match(match.NewCandidatePath(candidate))
	return ok
}

// Match reports whether candidate matches g, returning the captures
// produced by every capturing token on success.
func (g *Glob) Match(candidate string) (*match.MatchedText, bool) {
	return g.matcher.Match(match.NewCandidatePath(candidate))
}

// IsTerminal reports whether g, used as a negation pattern, prunes whole
// subtrees rather than individual entries (see token.Tree.IsTerminal).
func (g *Glob) IsTerminal() bool {
	return g.tree.IsTerminal()
}

// Walk walks root with the default WalkBehavior and no filters.
func (g *Glob) Walk(root string) iter.Seq2[walk.Entry, error] {
	return g.WalkWithBehavior(root, walk.DefaultWalkBehavior())
}

// WalkWithBehavior walks root, applying behavior and every given filter
// (composed monotonically, per walk.Compose).
func (g *Glob) WalkWithBehavior(root string, behavior walk.WalkBehavior, filters ...walk.FilterFunc) iter.Seq2[walk.Entry, error] {
	return walk.Walk(vfs.NewVFS(root), ".", g.tree, behavior, filters...)
}

// Any combines several glob strings into one synthetic Glob whose branches
// are each pattern in turn, useful for building a single negation list out
// of several deny patterns (see token.Any).
func Any(expressions ...string) (*Glob, error) {
	trees := make([]*token.Tree, len(expressions))
	for i, e := range expressions {
		t, err := token.Parse(e)
		if err != nil {
			return nil, err
		}
		trees[i] = t
	}
	tree := token.Any(trees...)
	return &Glob{tree: tree, matcher: match.Compile(tree)}, nil
}
