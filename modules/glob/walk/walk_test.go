// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package walk_test

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/globtree/globtree/modules/glob/token"
	"github.com/globtree/globtree/modules/glob/walk"
	"github.com/globtree/globtree/modules/vfs"
)

// buildTree lays out the worked-example directory tree:
//
//	doc/guide.md
//	src/glob.rs
//	src/lib.rs
//	tests/harness/mod.rs
//	tests/walk.rs
//	README.md
func buildTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	files := []string{
		"doc/guide.md",
		"src/glob.rs",
		"src/lib.rs",
		"tests/harness/mod.rs",
		"tests/walk.rs",
		"README.md",
	}
	for _, f := range files {
		full := filepath.Join(root, f)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte("x"), 0o644))
	}
	return root
}

func paths(t *testing.T, root, pattern string, behavior walk.WalkBehavior, filters ...walk.FilterFunc) []string {
	t.Helper()
	tree, err := token.Parse(pattern)
	require.NoError(t, err)
	fsys := vfs.NewVFS(root)
	var got []string
	for e, err := range walk.Walk(fsys, ".", tree, behavior, filters...) {
		require.NoError(t, err)
		got = append(got, e.Path())
	}
	sort.Strings(got)
	return got
}

func TestWalkTreeWildcardVisitsEveryEntry(t *testing.T) {
	root := buildTree(t)
	got := paths(t, root, "**", walk.DefaultWalkBehavior())
	assert.ElementsMatch(t, []string{
		"", // the walk root itself
		"doc", "doc/guide.md",
		"src", "src/glob.rs", "src/lib.rs",
		"tests", "tests/harness", "tests/harness/mod.rs", "tests/walk.rs",
		"README.md",
	}, got)
}

func TestWalkNotExcludesTerminalSubtree(t *testing.T) {
	root := buildTree(t)
	notFilter, err := walk.Not("tests/**")
	require.NoError(t, err)
	got := paths(t, root, "**", walk.DefaultWalkBehavior(), notFilter)
	assert.ElementsMatch(t, []string{
		"", // the walk root itself
		"doc", "doc/guide.md",
		"src", "src/glob.rs", "src/lib.rs",
		"README.md",
	}, got)
	for _, p := range got {
		assert.NotContains(t, p, "tests")
	}
}

func TestWalkDepthBoundsDescent(t *testing.T) {
	root := buildTree(t)
	behavior := walk.DefaultWalkBehavior()
	behavior.Depth = 1
	got := paths(t, root, "**", behavior)
	assert.ElementsMatch(t, []string{
		"", // the walk root itself, exempt from the depth bound
		"doc", "src", "tests", "README.md",
		"doc/guide.md", "src/glob.rs", "src/lib.rs", "tests/harness", "tests/walk.rs",
	}, got)
	for _, p := range got {
		assert.NotContains(t, p, "harness/mod.rs")
	}
}

func TestWalkLiteralPatternMatchesSingleFile(t *testing.T) {
	root := buildTree(t)
	got := paths(t, root, "src/lib.rs", walk.DefaultWalkBehavior())
	assert.Equal(t, []string{"src/lib.rs"}, got)
}

func TestWalkExtensionAlternativeExcludingHarness(t *testing.T) {
	root := buildTree(t)
	notFilter, err := walk.Not("**/harness/**")
	require.NoError(t, err)
	got := paths(t, root, "**/*.{md,rs}", walk.DefaultWalkBehavior(), notFilter)
	assert.ElementsMatch(t, []string{
		"doc/guide.md", "src/glob.rs", "src/lib.rs", "tests/walk.rs", "README.md",
	}, got)
	for _, p := range got {
		assert.NotContains(t, p, "harness")
	}
}

func TestWalkNonexistentRootYieldsIOError(t *testing.T) {
	root := buildTree(t)
	tree, err := token.Parse("**")
	require.NoError(t, err)
	fsys := vfs.NewVFS(filepath.Join(root, "does-not-exist"))
	var sawErr bool
	for _, werr := range walk.Walk(fsys, ".", tree, walk.DefaultWalkBehavior()) {
		if werr != nil {
			sawErr = true
			var ioErr *walk.Error
			require.ErrorAs(t, werr, &ioErr)
			assert.Equal(t, walk.IOErrorKind, ioErr.Kind)
		}
	}
	assert.True(t, sawErr)
}
