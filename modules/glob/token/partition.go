// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package token

import "strings"

// invariantPrefixUpperBound returns the index just past the last token of
// the longest leading run of tokens that (a) are all Invariant and (b) ends
// on a complete component boundary (a Separator; a Wildcard.Tree is never
// Invariant, so the run always stops before one).
// A partial literal run preceding a wildcard within the same component does
// not count: it names part of a directory entry, not a complete path
// segment a walker could join directly.
func invariantPrefixUpperBound(tokens []Token) int {
	complete := 0
	for i, tok := range tokens {
		if !tok.Variance().IsInvariant() {
			break
		}
		if tok.IsComponentBoundary() {
			complete = i + 1
		}
	}
	return complete
}

// InvariantPrefixPath concatenates the invariant text of the leading
// complete-component run of tokens, per invariantPrefixUpperBound. The
// result, when non-empty, always ends in "/".
func InvariantPrefixPath(tokens []Token) string {
	upper := invariantPrefixUpperBound(tokens)
	var b strings.Builder
	for _, tok := range tokens[:upper] {
		text, _ := tok.Variance().InvariantText()
		b.WriteString(text)
	}
	return b.String()
}

// Partition splits t into an invariant prefix path (a filesystem path a
// walker can join onto its root directly, descending no further than this
// into the tree) and a residual Tree of the remaining, variant tokens. The
// residual's leading token, if a rooted Wildcard.Tree, is unrooted: once its
// preceding literal path has been consumed as the prefix, the residual no
// longer needs to anchor to the start of an absolute path.
func Partition(t *Tree) (prefixPath string, residual *Tree) {
	upper := invariantPrefixUpperBound(t.Tokens)
	prefixPath = InvariantPrefixPath(t.Tokens)
	residualTokens := Unroot(t.Tokens[upper:])
	return prefixPath, &Tree{Expression: t.Expression, Tokens: residualTokens}
}

// PrefixComponentCount reports how many complete path components a prefix
// path produced by Partition spans. The walk engine does not call it: it
// starts its depth count at the prefix directory itself, so depth bounds
// already apply below the invariant prefix.
func PrefixComponentCount(prefixPath string) int {
	if prefixPath == "" {
		return 0
	}
	trimmed := strings.TrimPrefix(strings.TrimSuffix(prefixPath, "/"), "/")
	if trimmed == "" {
		return 0
	}
	return strings.Count(trimmed, "/") + 1
}
