// SPDX-License-Identifier: MIT

package shell

import (
	"errors"
	"fmt"
)

var (
	// ErrExit is returned by Exec for the exit command.
	ErrExit = errors.New("shell: exit requested")

	// ErrUnknownCommand is returned for a verb the shell does not know.
	ErrUnknownCommand = errors.New("shell: not a command in this application")

	// ErrUsage is returned for wrong arity or malformed arguments.
	ErrUsage = errors.New("shell: usage")

	// ErrBootstrap wraps any failure of the startup sequence.
	ErrBootstrap = errors.New("shell: bootstrap failed")
)

// shellErrorf wraps an underlying error with the given command tag.
func shellErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// usageErrorf reports a usage problem for cmd.
func usageErrorf(c *command, format string, args ...any) error {
	return fmt.Errorf("%s: %s (usage: %s): %w", c.name, fmt.Sprintf(format, args...), c.usage, ErrUsage)
}
