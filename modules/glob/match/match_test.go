// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/globtree/globtree/modules/glob/token"
)

func compile(t *testing.T, expression string) *Matcher {
	t.Helper()
	tree, err := token.Parse(expression)
	require.NoError(t, err)
	return Compile(tree)
}

func TestMatcherLiteralPath(t *testing.T) {
	m := compile(t, "src/lib.rs")
	_, ok := m.Match(NewCandidatePath("src/lib.rs"))
	assert.True(t, ok)
	_, ok = m.Match(NewCandidatePath("src/main.rs"))
	assert.False(t, ok)
}

func TestMatcherTreeWildcardMatchesAnyDepth(t *testing.T) {
	m := compile(t, "**/*.rs")
	cases := map[string]bool{
		"lib.rs":         true,
		"src/lib.rs":     true,
		"src/a/b/lib.rs": true,
		"src/lib.md":     false,
	}
	for path, want := range cases {
		_, ok := m.Match(NewCandidatePath(path))
		assert.Equal(t, want, ok, "path %q", path)
	}
}

func TestMatcherAlternativeExtensions(t *testing.T) {
	m := compile(t, "*.{md,rs}")
	_, ok := m.Match(NewCandidatePath("README.md"))
	assert.True(t, ok)
	_, ok = m.Match(NewCandidatePath("glob.rs"))
	assert.True(t, ok)
	_, ok = m.Match(NewCandidatePath("glob.go"))
	assert.False(t, ok)
}

func TestMatcherCaptureOrder(t *testing.T) {
	m := compile(t, "?-*")
	matched, ok := m.Match(NewCandidatePath("a-bcd"))
	require.True(t, ok)
	require.Len(t, matched.Captures, 2)
	assert.Equal(t, "a", matched.Captures[0].Text)
	assert.Equal(t, "bcd", matched.Captures[1].Text)
}

func TestMatcherClassNegation(t *testing.T) {
	m := compile(t, "[!a-z]")
	_, ok := m.Match(NewCandidatePath("Z"))
	assert.True(t, ok)
	_, ok = m.Match(NewCandidatePath("z"))
	assert.False(t, ok)
}

func TestNegationTerminalPrunesSubtree(t *testing.T) {
	terminal, err := token.Parse("tests/**")
	require.NoError(t, err)
	n := CompileNegation([]*token.Tree{terminal})

	assert.True(t, n.MatchesTerminal(NewCandidatePath("tests")))
	assert.False(t, n.MatchesNonterminal(NewCandidatePath("tests")))
}

func TestNegationNonterminalExcludesSingleEntry(t *testing.T) {
	nonterminal, err := token.Parse("*.log")
	require.NoError(t, err)
	n := CompileNegation([]*token.Tree{nonterminal})

	assert.True(t, n.Matches(NewCandidatePath("debug.log")))
	assert.False(t, n.MatchesTerminal(NewCandidatePath("debug.log")))
}
