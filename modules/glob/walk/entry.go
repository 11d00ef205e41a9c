// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package walk

import (
	"io/fs"

	"github.com/globtree/globtree/modules/glob/match"
)

// Entry is one directory entry visited during a walk that survived every
// filter and matched the pattern.
type Entry struct {
	relPath  string
	dirEntry fs.DirEntry
	depth    int
	matched  *match.MatchedText
}

// Path is the entry's path relative to the root given to Walk, including
// the invariant prefix consumed by Partition.
func (e Entry) Path() string { return e.relPath }

// IsDir reports whether the entry is a directory.
func (e Entry) IsDir() bool { return e.dirEntry != nil && e.dirEntry.IsDir() }

// Depth is the entry's depth below the walk root, after pivot shifting; the
// walk root's own entry (see Walk) reports -1, since it is the reference
// point depth is measured relative to, not one level below itself.
func (e Entry) Depth() int { return e.depth }

// Info returns the entry's fs.FileInfo, as exposed by its fs.DirEntry.
func (e Entry) Info() (fs.FileInfo, error) {
	if e.dirEntry == nil {
		return nil, fs.ErrInvalid
	}
	return e.dirEntry.Info()
}

// Matched is the whole-pattern match captured for this entry. It is the
// match of the pattern left after the invariant prefix, so its offsets
// index Path() with that prefix removed.
func (e Entry) Matched() *match.MatchedText { return e.matched }

// ToCandidatePath returns the match.CandidatePath form of this entry's
// relative path, letting callers re-run matchers or negations against it
// without re-deriving the path-component split.
func (e Entry) ToCandidatePath() match.CandidatePath {
	return match.NewCandidatePath(e.relPath)
}
