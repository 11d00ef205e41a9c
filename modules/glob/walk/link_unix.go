// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

//go:build unix

package walk

import (
	"io/fs"
	"syscall"
)

// deviceInode extracts the (device, inode) pair identifying info's
// underlying file, used to detect a symlink target already on the current
// walk path. ok is false on platforms or filesystems where this
// information isn't available, in which case cycle detection is simply
// skipped for that entry rather than failing the walk.
func deviceInode(info fs.FileInfo) (visitedKey, bool) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return visitedKey{}, false
	}
	return visitedKey{dev: uint64(stat.Dev), ino: stat.Ino}, true
}
