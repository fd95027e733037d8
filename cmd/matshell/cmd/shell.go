package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/matshell/shell"
)

var (
	shellCapacity int
	shellDataDir  string
	shellSeed     uint64
	shellNoBoot   bool
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start the interactive matrix shell",
	Long: `Start the interactive matrix shell.

Unless bootstrap is disabled, a 5x5 matrix named temp_mat is created,
filled with values in [10,15] and written to <data_dir>/temp_mat before
the first prompt. Type "help" at the prompt for the command list.`,
	Args: cobra.NoArgs,
	RunE: runShell,
}

func init() {
	shellCmd.Flags().IntVar(&shellCapacity, "capacity", 0, "registry slot count (overrides config)")
	shellCmd.Flags().StringVar(&shellDataDir, "data-dir", "", "directory for matrix files (overrides config)")
	shellCmd.Flags().Uint64Var(&shellSeed, "seed", 0, "random seed, 0 = time based (overrides config)")
	shellCmd.Flags().BoolVar(&shellNoBoot, "no-bootstrap", false, "skip creating temp_mat at startup")
	rootCmd.AddCommand(shellCmd)
}

func runShell(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		printError("load config", err)
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("capacity") {
		cfg.Capacity = shellCapacity
	}
	if flags.Changed("data-dir") {
		cfg.DataDir = shellDataDir
	}
	if flags.Changed("seed") {
		cfg.Seed = shellSeed
	}
	if shellNoBoot {
		cfg.Bootstrap = false
	}

	logger := newLogger(cfg)
	sess, err := shell.New(cfg, cmd.OutOrStdout(), shell.WithLogger(logger))
	if err != nil {
		printError("start shell", err)
		return err
	}
	defer func() {
		if cerr := sess.Close(); cerr != nil {
			logger.Error("shutdown", "error", cerr)
		}
	}()

	if cfg.Bootstrap {
		if err = sess.Bootstrap(); err != nil {
			printError("bootstrap", err)
			return err
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Debug("shell ready", "capacity", cfg.Capacity, "data_dir", cfg.DataDir)
	err = sess.Run(ctx, cmd.InOrStdin())
	if errors.Is(err, context.Canceled) {
		return nil
	}

	return err
}
