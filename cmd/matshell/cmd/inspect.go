package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/matshell/codec"
	"github.com/katalvlaran/matshell/matrix"
)

var inspectHeaderOnly bool

var inspectCmd = &cobra.Command{
	Use:   "inspect FILE",
	Short: "Decode a matrix file and print it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if inspectHeaderOnly {
			return inspectHeader(cmd, args[0])
		}
		m, err := codec.ReadFile(args[0])
		if err != nil {
			printError("inspect", err)
			return err
		}
		defer m.Release()

		return matrix.Display(cmd.OutOrStdout(), m)
	},
}

func init() {
	inspectCmd.Flags().BoolVar(&inspectHeaderOnly, "header", false, "print only the decoded header")
	rootCmd.AddCommand(inspectCmd)
}

func inspectHeader(cmd *cobra.Command, path string) error {
	f, err := os.Open(path)
	if err != nil {
		printError("inspect", err)
		return err
	}
	defer f.Close()

	h, err := codec.NewDecoder(f).DecodeHeader()
	if err != nil {
		printError("inspect", err)
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "name:         %s\n", h.Name)
	fmt.Fprintf(out, "name_length:  %d\n", h.NameLength)
	fmt.Fprintf(out, "dim:          (%d,%d)\n", h.Rows, h.Cols)
	fmt.Fprintf(out, "elements:     %d\n", h.Elements())
	fmt.Fprintf(out, "encoded size: %d bytes\n", h.EncodedSize())

	return nil
}
