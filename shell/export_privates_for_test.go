// SPDX-License-Identifier: MIT

package shell

import "github.com/katalvlaran/matshell/matrix"

// Insert_TestOnly exposes the insert helper used by the commands.
func Insert_TestOnly(s *Session, tag string, m *matrix.Matrix) error {
	return s.insert(tag, m)
}
