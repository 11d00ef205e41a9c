// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// Package fingerprint computes content digests for matched files, the way
// --hash fingerprints a matched set for before/after comparisons.
package fingerprint

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"io"
	"os"

	"github.com/zeebo/blake3"
	"golang.org/x/sync/errgroup"
)

const DigestSize = 32

// Digest is a BLAKE3 content digest.
type Digest [DigestSize]byte

func (d Digest) String() string { return hex.EncodeToString(d[:]) }

func (d Digest) MarshalJSON() ([]byte, error) {
	b, err := json.Marshal(d.String())
	return b, err
}

func (d *Digest) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return err
	}
	copy(d[:], raw)
	return nil
}

// File computes path's BLAKE3 digest.
func File(path string) (Digest, error) {
	f, err := os.Open(path)
	if err != nil {
		return Digest{}, err
	}
	defer f.Close()
	h := blake3.New()
	if _, err := io.Copy(h, f); err != nil {
		return Digest{}, err
	}
	var d Digest
	copy(d[:], h.Sum(nil))
	return d, nil
}

// Result pairs a matched path with its digest, or the error encountered
// computing it.
type Result struct {
	Path   string
	Digest Digest
	Err    error
}

// Many fans digest computation for every given path out across a bounded
// pool of goroutines, built on errgroup rather than a hand-rolled WaitGroup
// and error channel.
func Many(ctx context.Context, paths []string, concurrency int) ([]Result, error) {
	if concurrency <= 0 {
		concurrency = 1
	}
	results := make([]Result, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, p := range paths {
		i, p := i, p
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			d, err := File(p)
			results[i] = Result{Path: p, Digest: d, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
