// SPDX-License-Identifier: MIT

package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/matshell/codec"
	"github.com/katalvlaran/matshell/config"
	"github.com/katalvlaran/matshell/matrix"
	"github.com/katalvlaran/matshell/registry"
)

// Bootstrap matrix parameters.
const (
	BootstrapName = "temp_mat"
	bootstrapDim  = 5
	bootstrapLow  = 10
	bootstrapHigh = 15
)

// Session is one interactive shell bound to its own registry.
// It is not safe for concurrent use.
type Session struct {
	reg      *registry.Registry
	prom     *prometheus.Registry
	commands map[string]*command
	order    []*command
	counter  *prometheus.CounterVec
	out      io.Writer
	logger   *slog.Logger
	rng      matrix.Source
	dataDir  string
	prompt   string
	textfile string
	closed   bool
}

// New builds a Session from cfg, writing all command output to out.
//
// Implementation:
//   - Stage 1: validate cfg and gather options.
//   - Stage 2: create a private prometheus registry, the matrix registry and
//     the command counter.
//   - Stage 3: seed the generator from cfg.Seed, or the clock when it is 0.
func New(cfg *config.Config, out io.Writer, opts ...Option) (*Session, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, shellErrorf("New", err)
	}
	o := gatherOptions(opts)

	prom := prometheus.NewRegistry()
	reg, err := registry.New(cfg.Capacity,
		registry.WithLogger(o.logger),
		registry.WithMetrics(prom),
	)
	if err != nil {
		return nil, shellErrorf("New", err)
	}
	counter := newCommandCounter()
	if err = prom.Register(counter); err != nil {
		return nil, shellErrorf("New", err)
	}

	src := o.source
	if src == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		src = rand.New(rand.NewPCG(seed, seed))
	}

	s := &Session{
		reg:      reg,
		prom:     prom,
		counter:  counter,
		out:      out,
		logger:   o.logger,
		rng:      src,
		dataDir:  cfg.DataDir,
		prompt:   cfg.Prompt,
		textfile: cfg.MetricsTextfile,
	}
	s.order = commandTable()
	s.commands = make(map[string]*command, len(s.order))
	for _, c := range s.order {
		s.commands[c.name] = c
	}

	return s, nil
}

// Registry returns the registry owned by the session.
func (s *Session) Registry() *registry.Registry { return s.reg }

// Gatherer exposes the session metrics.
func (s *Session) Gatherer() prometheus.Gatherer { return s.prom }

// Bootstrap creates a 5x5 matrix named temp_mat, inserts it, fills it with
// values in [10,15] and writes it to <data_dir>/temp_mat.
// Every failure is wrapped in ErrBootstrap.
func (s *Session) Bootstrap() error {
	m, err := matrix.New(BootstrapName, bootstrapDim, bootstrapDim)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBootstrap, err)
	}
	if _, err = s.reg.Insert(m); err != nil {
		m.Release()
		return fmt.Errorf("%w: %w", ErrBootstrap, err)
	}
	if err = matrix.Randomize(m, bootstrapLow, bootstrapHigh, s.rng); err != nil {
		return fmt.Errorf("%w: %w", ErrBootstrap, err)
	}
	path := s.path(BootstrapName)
	if err = codec.WriteFile(path, m); err != nil {
		return fmt.Errorf("%w: %w", ErrBootstrap, err)
	}
	s.logger.Info("bootstrap matrix written", "name", BootstrapName, "path", path)

	return nil
}

// Run reads commands from in until exit, end of input, or ctx is done.
// Command failures are printed and do not stop the loop. Run returns nil on
// exit or EOF, ctx.Err() on cancellation, or the read error.
//
// Lines are read on a separate goroutine so cancellation is observed while
// the prompt is idle. Commands still run one at a time on the caller's
// goroutine; a reader blocked in Read is left behind until in yields.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	lines := make(chan string)
	readErr := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)

	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-done:
				return
			}
		}
		readErr <- sc.Err()
	}()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := io.WriteString(s.out, s.prompt); err != nil {
			return err
		}

		var line string
		select {
		case <-ctx.Done():
			return ctx.Err()
		case l, ok := <-lines:
			if !ok {
				return <-readErr
			}
			line = l
		}

		err := s.Exec(line)
		if errors.Is(err, ErrExit) {
			return nil
		}
		if err != nil {
			s.report(err)
		}
	}
}

// Exec tokenizes and runs one command line. A blank line is a no-op.
func (s *Session) Exec(line string) error {
	args, err := Tokenize(line)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return nil
	}

	c, ok := s.commands[args[0]]
	if !ok {
		s.counter.WithLabelValues("unknown", resultError).Inc()
		return fmt.Errorf("%q: %w", args[0], ErrUnknownCommand)
	}
	if len(args)-1 != c.args {
		s.counter.WithLabelValues(c.name, resultError).Inc()
		return usageErrorf(c, "want %d arguments, got %d", c.args, len(args)-1)
	}

	if err = c.run(s, args[1:]); err != nil {
		if !errors.Is(err, ErrExit) {
			s.counter.WithLabelValues(c.name, resultError).Inc()
			s.logger.Debug("command failed", "command", c.name, "error", err)
		}
		return err
	}
	s.counter.WithLabelValues(c.name, resultOK).Inc()

	return nil
}

// Close tears the registry down and, when metrics_textfile is configured,
// writes the session metrics there. It is safe to call more than once.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.reg.Teardown()
	if s.textfile == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(s.textfile, s.prom); err != nil {
		return shellErrorf("Close", err)
	}

	return nil
}

// path resolves a file name against the data directory.
func (s *Session) path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}

	return filepath.Join(s.dataDir, name)
}

// report prints err in the error style.
func (s *Session) report(err error) {
	fmt.Fprintln(s.out, errorStyle.Render("error: "+err.Error()))
}

// printf writes one formatted line in the ok style.
func (s *Session) printf(format string, args ...any) {
	fmt.Fprintln(s.out, okStyle.Render(fmt.Sprintf(format, args...)))
}
