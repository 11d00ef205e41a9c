// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

//go:build !unix

package walk

import "io/fs"

// deviceInode has no portable implementation outside unix-like platforms;
// cycle detection under LinkBehavior ReadTarget is unavailable there.
func deviceInode(info fs.FileInfo) (visitedKey, bool) {
	return visitedKey{}, false
}
