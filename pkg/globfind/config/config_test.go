// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/globtree/globtree/modules/glob/token"
	"github.com/globtree/globtree/modules/glob/walk"
	"github.com/globtree/globtree/pkg/globfind/config"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := config.Load(dir, "")
	require.NoError(t, err)
	assert.Equal(t, walk.DefaultWalkBehavior(), cfg.WalkBehavior())
	assert.Empty(t, cfg.Ignore)
}

func TestLoadDecodesDepthAndSymlinksAndIgnore(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.FileName)
	body := "depth = 2\nfollow_symlinks = true\nignore = [\"*.log\", \"\", \"tmp/**\"]\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := config.Load(dir, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"*.log", "tmp/**"}, cfg.Ignore)

	b := cfg.WalkBehavior()
	assert.Equal(t, 2, b.Depth)
	assert.Equal(t, walk.ReadTarget, b.Link)
}

func TestLoadRejectsMalformedToml(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.FileName)
	require.NoError(t, os.WriteFile(path, []byte("not = [valid"), 0o644))

	_, err := config.Load(dir, "")
	assert.Error(t, err)
}

func TestApplyCaseOverrideSetsPackageState(t *testing.T) {
	original := token.PathsAreCaseInsensitive
	defer func() { token.PathsAreCaseInsensitive = original }()

	insensitive := true
	cfg := &config.Config{CaseInsensitive: &insensitive}
	cfg.ApplyCaseOverride()
	assert.True(t, token.PathsAreCaseInsensitive)

	sensitive := false
	cfg = &config.Config{CaseInsensitive: &sensitive}
	cfg.ApplyCaseOverride()
	assert.False(t, token.PathsAreCaseInsensitive)
}
