// SPDX-License-Identifier: MIT

package shell

import (
	"fmt"

	"github.com/google/shlex"
)

// Tokenize splits line into words using POSIX shell quoting, so names with
// spaces can be given as "my matrix". Comments after '#' are dropped.
// An empty or blank line yields no tokens.
func Tokenize(line string) ([]string, error) {
	toks, err := shlex.Split(line)
	if err != nil {
		return nil, fmt.Errorf("tokenize: %w: %w", ErrUsage, err)
	}

	return toks, nil
}
