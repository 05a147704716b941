package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/cminlang/cmin/lexer"
)

// newScanCommand builds the scan subcommand: tokenize a file and print the
// token stream. With --watch the file is re-tokenized from scratch on every
// change; there is no incremental re-scan.
func newScanCommand() *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "scan <file>",
		Short: "Tokenize a source file and print the token stream",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			if err := scanFile(cmd.OutOrStdout(), path); err != nil {
				if !watch {
					return err
				}
				// In watch mode a broken file is reported, not fatal;
				// the next write may fix it
				fmt.Fprintln(cmd.ErrOrStderr(), err)
			}

			if !watch {
				return nil
			}
			return watchFile(cmd, path)
		},
	}

	cmd.Flags().BoolVar(&watch, "watch", false, "Re-tokenize the file whenever it changes")

	return cmd
}

// scanFile tokenizes one file and prints every token except EOF.
func scanFile(out io.Writer, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return &RunError{Code: ExitIOError, Err: fmt.Errorf("reading file: %w", err)}
	}

	result, err := lexer.Tokenize(string(content))
	if err != nil {
		return &RunError{Code: ExitLexError, Err: err}
	}

	for _, token := range result.Tokens {
		if token.Type == lexer.EOF {
			continue
		}
		fmt.Fprintf(out, "%-13s %q at %d:%d\n",
			token.Type, token.Lexeme, token.Pos.Line, token.Pos.Column)
	}

	return nil
}

// watchFile re-runs scanFile on every write to path until the watcher is
// torn down. The directory is watched rather than the file itself so that
// editors which replace the file on save keep triggering events.
func watchFile(cmd *cobra.Command, path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return &RunError{Code: ExitIOError, Err: fmt.Errorf("creating watcher: %w", err)}
	}
	defer watcher.Close()

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return &RunError{Code: ExitIOError, Err: fmt.Errorf("watching %s: %w", dir, err)}
	}

	target, err := filepath.Abs(path)
	if err != nil {
		return &RunError{Code: ExitIOError, Err: err}
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "watching %s\n", path)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			name, err := filepath.Abs(event.Name)
			if err != nil || name != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				fmt.Fprintf(cmd.ErrOrStderr(), "-- %s changed --\n", path)
				if err := scanFile(cmd.OutOrStdout(), path); err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), err)
				}
			}

		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "watch error: %v\n", werr)
		}
	}
}
