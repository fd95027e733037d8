// SPDX-License-Identifier: MIT

package shell

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/katalvlaran/matshell/codec"
	"github.com/katalvlaran/matshell/matrix"
	"github.com/katalvlaran/matshell/registry"
)

// command is one entry of the dispatch table. args is the exact number of
// operands after the verb.
type command struct {
	name    string
	usage   string
	summary string
	args    int
	run     func(s *Session, args []string) error
}

// commandTable lists commands in help order.
func commandTable() []*command {
	return []*command{
		{name: "create", usage: "create <name> <rows> <cols>", summary: "allocate a zeroed matrix", args: 3, run: (*Session).cmdCreate},
		{name: "random", usage: "random <name> <low> <high>", summary: "fill a matrix with values in [low, high]", args: 3, run: (*Session).cmdRandom},
		{name: "shift", usage: "shift <name> <l|r> <amount>", summary: "bitwise shift every element", args: 3, run: (*Session).cmdShift},
		{name: "add", usage: "add <a> <b> <result>", summary: "store a + b in a new matrix", args: 3, run: (*Session).cmdAdd},
		{name: "duplicate", usage: "duplicate <src> <dest>", summary: "copy src into a new matrix", args: 2, run: (*Session).cmdDuplicate},
		{name: "equal", usage: "equal <a> <b>", summary: "compare two matrices", args: 2, run: (*Session).cmdEqual},
		{name: "display", usage: "display <name>", summary: "print a matrix", args: 1, run: (*Session).cmdDisplay},
		{name: "read", usage: "read <file>", summary: "load a matrix file", args: 1, run: (*Session).cmdRead},
		{name: "write", usage: "write <name>", summary: "save a matrix to the data directory", args: 1, run: (*Session).cmdWrite},
		{name: "list", usage: "list", summary: "show occupied slots", args: 0, run: (*Session).cmdList},
		{name: "stats", usage: "stats", summary: "show registry and shell counters", args: 0, run: (*Session).cmdStats},
		{name: "help", usage: "help", summary: "show this text", args: 0, run: (*Session).cmdHelp},
		{name: "exit", usage: "exit", summary: "leave the shell", args: 0, run: (*Session).cmdExit},
	}
}

func (s *Session) cmdCreate(args []string) error {
	c := s.commands["create"]
	rows, err := parseUint32(c, "rows", args[1])
	if err != nil {
		return err
	}
	cols, err := parseUint32(c, "cols", args[2])
	if err != nil {
		return err
	}

	m, err := matrix.New(args[0], rows, cols)
	if err != nil {
		return shellErrorf(c.name, err)
	}
	if err = s.insert(c.name, m); err != nil {
		return err
	}
	s.printf("Created Matrix (%s,%d,%d)", m.Name(), m.Rows(), m.Cols())

	return nil
}

func (s *Session) cmdRandom(args []string) error {
	c := s.commands["random"]
	low, err := parseUint32(c, "low", args[1])
	if err != nil {
		return err
	}
	high, err := parseUint32(c, "high", args[2])
	if err != nil {
		return err
	}
	m, err := s.reg.Lookup(args[0])
	if err != nil {
		return shellErrorf(c.name, err)
	}
	if err = matrix.Randomize(m, low, high, s.rng); err != nil {
		return shellErrorf(c.name, err)
	}
	s.printf("Matrix (%s) is randomized between %d %d", m.Name(), low, high)

	return nil
}

func (s *Session) cmdShift(args []string) error {
	c := s.commands["shift"]
	dir, err := matrix.ParseDirection(args[1])
	if err != nil {
		return usageErrorf(c, "direction %q", args[1])
	}
	amount, err := strconv.ParseUint(args[2], 10, 0)
	if err != nil {
		return usageErrorf(c, "amount %q", args[2])
	}
	m, err := s.reg.Lookup(args[0])
	if err != nil {
		return shellErrorf(c.name, err)
	}
	if err = matrix.Shift(m, dir, uint(amount)); err != nil {
		return shellErrorf(c.name, err)
	}
	s.printf("Matrix (%s) has been shifted %s by %d", m.Name(), dir, amount)

	return nil
}

// cmdAdd computes a + b into a fresh matrix shaped like a, then inserts it.
// Inserting last keeps a and b alive even if the insert evicts one of them.
func (s *Session) cmdAdd(args []string) error {
	c := s.commands["add"]
	a, err := s.reg.Lookup(args[0])
	if err != nil {
		return shellErrorf(c.name, err)
	}
	b, err := s.reg.Lookup(args[1])
	if err != nil {
		return shellErrorf(c.name, err)
	}
	res, err := matrix.New(args[2], a.Rows(), a.Cols())
	if err != nil {
		return shellErrorf(c.name, err)
	}
	if err = matrix.Add(a, b, res); err != nil {
		res.Release()
		return shellErrorf(c.name, fmt.Errorf("%s with %s into %s: %w", a.Name(), b.Name(), res.Name(), err))
	}
	if err = s.insert(c.name, res); err != nil {
		return err
	}
	s.printf("Addition of %s and %s into %s finished", args[0], args[1], res.Name())

	return nil
}

// cmdDuplicate copies src into a fresh matrix, then inserts it.
func (s *Session) cmdDuplicate(args []string) error {
	c := s.commands["duplicate"]
	src, err := s.reg.Lookup(args[0])
	if err != nil {
		return shellErrorf(c.name, err)
	}
	dest, err := matrix.New(args[1], src.Rows(), src.Cols())
	if err != nil {
		return shellErrorf(c.name, err)
	}
	if err = matrix.Duplicate(src, dest); err != nil {
		dest.Release()
		return shellErrorf(c.name, err)
	}
	if err = s.insert(c.name, dest); err != nil {
		return err
	}
	s.printf("Duplication of %s into %s finished", args[0], dest.Name())

	return nil
}

func (s *Session) cmdEqual(args []string) error {
	c := s.commands["equal"]
	a, err := s.reg.Lookup(args[0])
	if err != nil {
		return shellErrorf(c.name, err)
	}
	b, err := s.reg.Lookup(args[1])
	if err != nil {
		return shellErrorf(c.name, err)
	}
	if matrix.Equal(a, b) {
		s.printf("SAME DATA IN BOTH")
	} else {
		s.printf("DIFFERENT DATA IN BOTH")
	}

	return nil
}

func (s *Session) cmdDisplay(args []string) error {
	m, err := s.reg.Lookup(args[0])
	if err != nil {
		return shellErrorf("display", err)
	}

	return matrix.Display(s.out, m)
}

func (s *Session) cmdRead(args []string) error {
	path := s.path(args[0])
	m, err := codec.ReadFile(path)
	if err != nil {
		return shellErrorf("read", err)
	}
	if err = s.insert("read", m); err != nil {
		return err
	}
	s.printf("Matrix (%s) is read from %s", m.Name(), path)

	return nil
}

func (s *Session) cmdWrite(args []string) error {
	m, err := s.reg.Lookup(args[0])
	if err != nil {
		return shellErrorf("write", err)
	}
	path := s.path(m.Name())
	if err = codec.WriteFile(path, m); err != nil {
		return shellErrorf("write", err)
	}
	s.printf("Matrix (%s) is written to %s", m.Name(), path)

	return nil
}

func (s *Session) cmdList(_ []string) error {
	fmt.Fprintln(s.out, headerStyle.Render(fmt.Sprintf("%-5s %-50s %s", "SLOT", "NAME", "DIM")))
	entries := s.reg.Entries()
	for _, e := range entries {
		fmt.Fprintf(s.out, "%-5d %-50s (%d,%d)\n", e.Slot, e.Matrix.Name(), e.Matrix.Rows(), e.Matrix.Cols())
	}
	fmt.Fprintln(s.out, mutedStyle.Render(fmt.Sprintf("%d of %d slots used, next slot %d",
		len(entries), s.reg.Cap(), s.reg.Cursor()%uint64(s.reg.Cap()))))

	return nil
}

func (s *Session) cmdStats(_ []string) error {
	samples, err := gatherSamples(s.prom)
	if err != nil {
		return shellErrorf("stats", err)
	}
	fmt.Fprintln(s.out, headerStyle.Render("METRICS"))

	return writeSamples(s.out, samples)
}

func (s *Session) cmdHelp(_ []string) error {
	fmt.Fprintln(s.out, headerStyle.Render("COMMANDS"))
	for _, c := range s.order {
		fmt.Fprintf(s.out, "  %-30s %s\n", c.usage, mutedStyle.Render(c.summary))
	}

	return nil
}

func (s *Session) cmdExit(_ []string) error {
	return ErrExit
}

// insert hands m to the registry. A refused matrix is released unless a slot
// already owns it.
func (s *Session) insert(tag string, m *matrix.Matrix) error {
	slot, err := s.reg.Insert(m)
	if err != nil {
		if !errors.Is(err, registry.ErrAlreadyOwned) {
			m.Release()
		}
		return shellErrorf(tag, err)
	}
	s.logger.Debug("matrix inserted", "name", m.Name(), "slot", slot)

	return nil
}

func parseUint32(c *command, field, v string) (uint32, error) {
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return 0, usageErrorf(c, "%s %q is not an unsigned 32-bit integer", field, v)
	}

	return uint32(n), nil
}
