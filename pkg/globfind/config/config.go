// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// Package config loads globfind's optional .globfind.toml, supplying
// defaults for WalkBehavior and a standing list of negation patterns.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/globtree/globtree/modules/glob/token"
	"github.com/globtree/globtree/modules/glob/walk"
)

const FileName = ".globfind.toml"

// Config is the decoded shape of .globfind.toml.
type Config struct {
	Depth           int      `toml:"depth"`
	FollowSymlinks  bool     `toml:"follow_symlinks"`
	CaseInsensitive *bool    `toml:"case_insensitive"`
	Ignore          []string `toml:"ignore"`
}

// Load reads path (if non-empty) or dir/.globfind.toml; a missing file is
// not an error and yields a Config with Depth -1 (unset) and no other
// settings, which gives walk.DefaultWalkBehavior semantics.
func Load(dir, path string) (*Config, error) {
	if path == "" {
		path = filepath.Join(dir, FileName)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{Depth: -1}, nil
		}
		return nil, err
	}
	cfg := &Config{Depth: -1}
	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, err
	}
	cfg.Ignore = nonEmpty(cfg.Ignore)
	return cfg, nil
}

// nonEmpty returns the non-empty strings in all, dropping blank lines a
// hand-edited ignore list can pick up.
func nonEmpty(all []string) []string {
	var ne []string
	for _, s := range all {
		if s != "" {
			ne = append(ne, s)
		}
	}
	return ne
}

// WalkBehavior converts the config's [depth]/[follow_symlinks] settings
// into a walk.WalkBehavior, falling back to walk.DefaultWalkBehavior's
// values where the config left them unset.
func (c *Config) WalkBehavior() walk.WalkBehavior {
	b := walk.DefaultWalkBehavior()
	if c.Depth >= 0 {
		b.Depth = c.Depth
	}
	if c.FollowSymlinks {
		b.Link = walk.ReadTarget
	}
	return b
}

// ApplyCaseOverride sets the package-level token.PathsAreCaseInsensitive
// rule from the config, when the config states one explicitly; otherwise
// the host platform's default stands.
func (c *Config) ApplyCaseOverride() {
	if c.CaseInsensitive != nil {
		token.PathsAreCaseInsensitive = *c.CaseInsensitive
	}
}
