// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// Package cache persists the matched-path set from one globfind walk as a
// zstd-compressed NDJSON stream and decodes it again with Read. globfind
// walk only writes this file (--cache-write); no globfind command reads it
// back in place of walking.
package cache

import (
	"bufio"
	"encoding/json"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
)

// Record is one matched entry persisted to the cache.
type Record struct {
	Path  string `json:"path"`
	IsDir bool   `json:"is_dir"`
}

// Write streams records to path as zstd-compressed NDJSON.
func Write(path string, records iterFunc) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	zw, err := zstd.NewWriter(f)
	if err != nil {
		return err
	}
	defer zw.Close()

	bw := bufio.NewWriter(zw)
	enc := json.NewEncoder(bw)
	if err := records(func(r Record) error {
		return enc.Encode(r)
	}); err != nil {
		return err
	}
	return bw.Flush()
}

// iterFunc lets Write accept a push-style producer (such as the globfind
// CLI's runWalk) without this package importing the walk package, keeping the
// cache concern decoupled from the walk engine it is caching.
type iterFunc func(emit func(Record) error) error

// Read decodes every record from a cache file written by Write.
func Read(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	zr, err := zstd.NewReader(f)
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	dec := json.NewDecoder(zr)
	var records []Record
	for {
		var r Record
		if err := dec.Decode(&r); err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		records = append(records, r)
	}
	return records, nil
}
