// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCaseFlagGroups(t *testing.T) {
	tree, err := Parse("(?-i)../foo/(?i)**/bar/**(?-i)/baz/*(?i)qux")
	require.NoError(t, err)

	var literals []*Literal
	for _, tok := range tree.Tokens {
		if l, ok := tok.Kind.(*Literal); ok {
			literals = append(literals, l)
		}
	}
	require.Len(t, literals, 5)

	wantText := []string{"..", "foo", "bar", "baz", "qux"}
	wantCase := []bool{false, false, true, false, true}
	for i, l := range literals {
		assert.Equal(t, wantText[i], l.Text)
		assert.Equal(t, wantCase[i], l.CaseInsensitive)
	}
}

func TestParseTreeWildcardRootedness(t *testing.T) {
	tree, err := Parse("**")
	require.NoError(t, err)
	require.Len(t, tree.Tokens, 1)
	wt, ok := tree.Tokens[0].Kind.(*WildcardTree)
	require.True(t, ok)
	assert.True(t, wt.IsRooted)
	assert.True(t, tree.IsRooted())
}

func TestParseAdjacentWildcardsRejected(t *testing.T) {
	_, err := Parse("*$")
	assert.Error(t, err)
	_, err = Parse("$$")
	assert.Error(t, err)
}

func TestParseUnboundedTreeWildcardMustTouchBoundary(t *testing.T) {
	_, err := Parse("**x")
	assert.Error(t, err)
}

func TestParseRepetitionDefaultBounds(t *testing.T) {
	tree, err := Parse("<ab>")
	require.NoError(t, err)
	require.Len(t, tree.Tokens, 1)
	rep, ok := tree.Tokens[0].Kind.(*Repetition)
	require.True(t, ok)
	lower, _, ok := rep.Bounds()
	assert.Equal(t, 0, lower)
	assert.False(t, ok)
}

func TestParseRepetitionExplicitBounds(t *testing.T) {
	tree, err := Parse("<ab:2,4>")
	require.NoError(t, err)
	rep := tree.Tokens[0].Kind.(*Repetition)
	lower, upper, ok := rep.Bounds()
	assert.Equal(t, 2, lower)
	assert.True(t, ok)
	assert.Equal(t, 4, upper)
}

func TestParseTreeWildcardBetweenLiteralsRejected(t *testing.T) {
	_, err := Parse("a**b")
	assert.Error(t, err)
}

func TestParseAlternativeAndClass(t *testing.T) {
	tree, err := Parse("{foo,b[a-z]r}")
	require.NoError(t, err)
	require.Len(t, tree.Tokens, 1)
	alt, ok := tree.Tokens[0].Kind.(*Alternative)
	require.True(t, ok)
	require.Len(t, alt.Branches, 2)
}
