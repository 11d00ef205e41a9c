// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package glob_test

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/globtree/globtree/modules/glob"
)

func TestParseAndIsMatch(t *testing.T) {
	g, err := glob.Parse("src/*.rs")
	require.NoError(t, err)
	assert.True(t, g.IsMatch("src/lib.rs"))
	assert.False(t, g.IsMatch("src/lib.md"))
}

func TestParseRejectsMalformedExpression(t *testing.T) {
	_, err := glob.Parse("a**b")
	require.Error(t, err)
}

func TestMatchReturnsCaptures(t *testing.T) {
	g, err := glob.Parse("?-*")
	require.NoError(t, err)
	matched, ok := g.Match("a-bcd")
	require.True(t, ok)
	require.Len(t, matched.Captures, 2)
	assert.Equal(t, "a", matched.Captures[0].Text)
	assert.Equal(t, "bcd", matched.Captures[1].Text)
}

func TestIsTerminalReflectsTreeWildcardSuffix(t *testing.T) {
	terminal, err := glob.Parse("target/**")
	require.NoError(t, err)
	assert.True(t, terminal.IsTerminal())

	nonterminal, err := glob.Parse("*.log")
	require.NoError(t, err)
	assert.False(t, nonterminal.IsTerminal())
}

func TestTreeExposesVarianceAndRootedness(t *testing.T) {
	g, err := glob.Parse("foo/**")
	require.NoError(t, err)
	tree := g.Tree()
	assert.False(t, tree.Variance().IsInvariant())
	assert.False(t, tree.IsRooted())
}

func TestWalkYieldsMatchesUnderRoot(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "src", "lib.rs"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "src", "lib.md"), []byte("x"), 0o644))

	g, err := glob.Parse("**/*.rs")
	require.NoError(t, err)

	var got []string
	for e, err := range g.Walk(root) {
		require.NoError(t, err)
		got = append(got, e.Path())
	}
	sort.Strings(got)
	assert.Equal(t, []string{"src/lib.rs"}, got)
}

func TestAnyCombinesPatternsIntoOneBranchSet(t *testing.T) {
	g, err := glob.Any("*.md", "*.rs")
	require.NoError(t, err)
	assert.True(t, g.IsMatch("README.md"))
	assert.True(t, g.IsMatch("lib.rs"))
	assert.False(t, g.IsMatch("lib.go"))
}
