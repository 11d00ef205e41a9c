// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package cache_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/globtree/globtree/pkg/globfind/cache"
)

func TestWriteThenReadRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matches.ndjson.zst")
	records := []cache.Record{
		{Path: "src/lib.rs", IsDir: false},
		{Path: "src", IsDir: true},
		{Path: "README.md", IsDir: false},
	}

	err := cache.Write(path, func(emit func(cache.Record) error) error {
		for _, r := range records {
			if err := emit(r); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)

	got, err := cache.Read(path)
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestReadMissingFileErrors(t *testing.T) {
	_, err := cache.Read(filepath.Join(t.TempDir(), "does-not-exist.zst"))
	assert.Error(t, err)
}

func TestWritePropagatesEmitError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matches.ndjson.zst")
	boom := assert.AnError
	err := cache.Write(path, func(emit func(cache.Record) error) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
}
