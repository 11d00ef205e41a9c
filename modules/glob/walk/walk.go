// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package walk

import (
	"io/fs"
	"iter"
	"path"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/sirupsen/logrus"

	"github.com/globtree/globtree/modules/glob/match"
	"github.com/globtree/globtree/modules/glob/token"
	"github.com/globtree/globtree/modules/vfs"
)

// visitedKey identifies a directory by device and inode, used to detect
// reentrant symlink cycles under LinkBehavior ReadTarget.
type visitedKey struct {
	dev, ino uint64
}

// Walk returns a pull-based iterator over fsys rooted at root, yielding
// every entry that matches pattern and survives the given filters, applied
// in the order given via Compose. The walk never buffers more than the
// current path's worth of directory entries; cancelling mid-walk (the
// yield function returning false, per iter.Seq2's contract) stops
// descending the instant it is observed, never after.
//
// Walk partitions pattern's invariant prefix off the front and descends
// straight to it: the pivot depth reported by Entry is relative to that
// prefix, not to root, while Entry.Path is relative to root with the prefix
// included (filters see the same path). The walk root itself (the prefix-shifted directory,
// before any of its children are read) is tested against pattern too, so a
// pattern like "**" yields the root along with everything beneath it.
func Walk(fsys vfs.VFS, root string, pattern *token.Tree, behavior WalkBehavior, filters ...FilterFunc) iter.Seq2[Entry, error] {
	prefixPath, residual := token.Partition(pattern)
	m := match.Compile(residual)
	anchored := m.IsAnchoredComponentCount()
	composed := Compose(filters...)
	walkRoot := root
	if prefixPath != "" {
		walkRoot = fsys.Join(root, prefixPath)
	}
	// m matches paths below the prefix; filters and callers see the prefix.
	withPrefix := func(e Entry) Entry {
		if prefixPath != "" {
			e.relPath = path.Join(prefixPath, e.relPath)
		}
		return e
	}
	filter := func(e Entry) Residue { return composed(withPrefix(e)) }

	return func(yield func(Entry, error) bool) {
		emit := func(e Entry, err error) bool {
			if err == nil {
				e = withPrefix(e)
			}
			return yield(e, err)
		}
		if !yieldRoot(fsys, walkRoot, filter, m, emit) {
			return
		}
		visited := mapset.NewThreadUnsafeSet[visitedKey]()
		walkDir(fsys, walkRoot, walkRoot, nil, 0, behavior, m, anchored, filter, visited, emit)
	}
}

// yieldRoot tests the walk root itself against m, independent of any depth
// bound (behavior.Depth governs descent below the root, not the root
// entry). The root has no fs.DirEntry of its own the way its children do
// (it is given as a directory path, not discovered via a ReadDir of its
// parent), so its Entry's fs.DirEntry is synthesized from Stat instead.
func yieldRoot(fsys vfs.VFS, walkRoot string, filter FilterFunc, m *match.Matcher, yield func(Entry, error) bool) bool {
	info, err := fsys.Stat(walkRoot)
	if err != nil {
		return yield(Entry{}, &Error{Kind: IOErrorKind, Path: walkRoot, Err: err})
	}
	entry := Entry{relPath: "", dirEntry: fs.FileInfoToDirEntry(info), depth: -1}
	if filter(entry) != Filtrate {
		return true
	}
	mt, ok := m.Match(match.NewCandidatePath(""))
	if !ok {
		return true
	}
	entry.matched = mt
	return yield(entry, nil)
}

// walkDir visits the children of dir (an absolute path), where relPath
// components are dir's path relative to walkRoot and depth is len(relPath).
// It returns false the instant yield asks to stop, propagating that signal
// back out through every enclosing call so descent halts immediately.
func walkDir(
	fsys vfs.VFS,
	walkRoot, dir string,
	relComponents []string,
	depth int,
	behavior WalkBehavior,
	m *match.Matcher,
	anchored int,
	filter FilterFunc,
	visited mapset.Set[visitedKey],
	yield func(Entry, error) bool,
) bool {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return yield(Entry{}, &Error{Kind: IOErrorKind, Path: dir, Err: err})
	}
	for _, de := range entries {
		name := de.Name()
		relPath := strings.Join(append(append([]string{}, relComponents...), name), "/")
		isDir := de.IsDir()
		childPath := fsys.Join(dir, name)

		var linkKey visitedKey
		tracked := false
		if behavior.Link == ReadTarget && de.Type()&fs.ModeSymlink != 0 {
			info, err := fsys.Stat(childPath) // Stat follows the link
			if err != nil {
				if !yield(Entry{}, &Error{Kind: IOErrorKind, Path: childPath, Err: err}) {
					return false
				}
				continue
			}
			isDir = info.IsDir()
			if key, ok := deviceInode(info); ok {
				if visited.Contains(key) {
					if !yield(Entry{}, &Error{Kind: LinkCycleKind, Root: walkRoot, Leaf: relPath}) {
						return false
					}
					continue
				}
				linkKey, tracked = key, true
			}
		}

		entry := Entry{relPath: relPath, dirEntry: de, depth: depth}

		if depth < anchored {
			if cm := m.ComponentAt(depth); cm != nil {
				if _, ok := cm.Match(name); !ok {
					logPruneDepth(relPath, depth)
					continue // prune: neither emitted nor descended into
				}
			}
		}

		res := filter(entry)
		if res == SkipSubtree {
			continue
		}

		if res == Filtrate {
			if mt, ok := m.Match(match.NewCandidatePath(relPath)); ok {
				entry.matched = mt
				if !yield(entry, nil) {
					return false
				}
			}
		}

		if isDir && depth+1 <= behavior.Depth {
			// A followed link's target stays in visited only while the walk
			// is beneath it, so visited holds the current walk path's links.
			if tracked {
				visited.Add(linkKey)
			}
			cont := walkDir(fsys, walkRoot, childPath, append(relComponents, name), depth+1, behavior, m, anchored, filter, visited, yield)
			if tracked {
				visited.Remove(linkKey)
			}
			if !cont {
				return false
			}
		}
	}
	return true
}

// logPruneDepth exists to keep the walk engine's single logging call site
// easy to find. It logs at logrus Trace level; the CLI's --debug flag only
// raises logrus to Debug level, so globfind never prints these lines.
func logPruneDepth(path string, depth int) {
	logrus.WithFields(logrus.Fields{"path": path, "depth": depth}).Trace("glob: walk: pruned")
}
