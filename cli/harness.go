// Package cli provides the thin cobra harness around the lexer: argument
// parsing and result printing only, no scanning logic of its own.
package cli

import (
	"github.com/spf13/cobra"
)

// Exit codes returned through RunError
const (
	ExitSuccess          = 0
	ExitInvalidArguments = 1
	ExitIOError          = 2
	ExitLexError         = 3
)

// RunError carries an exit code alongside the underlying error so main can
// exit with the right status.
type RunError struct {
	Code int
	Err  error
}

func (e *RunError) Error() string {
	return e.Err.Error()
}

func (e *RunError) Unwrap() error {
	return e.Err
}

// Harness wires the cmin subcommands onto a cobra root command.
type Harness struct {
	rootCmd *cobra.Command
}

// NewHarness creates the cmin CLI.
func NewHarness(version string) *Harness {
	rootCmd := &cobra.Command{
		Use:           "cmin",
		Short:         "Lexical scanner for the cmin language",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	h := &Harness{rootCmd: rootCmd}

	rootCmd.AddCommand(newScanCommand())
	rootCmd.AddCommand(newIdentsCommand())

	return h
}

// Execute runs the CLI.
func (h *Harness) Execute() error {
	return h.rootCmd.Execute()
}

// GetRootCommand returns the root cobra command for customization.
func (h *Harness) GetRootCommand() *cobra.Command {
	return h.rootCmd
}
