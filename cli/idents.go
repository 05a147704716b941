package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/spf13/cobra"

	"github.com/cminlang/cmin/lexer"
)

// newIdentsCommand builds the idents subcommand: print the identifier
// occurrence table for a source file.
func newIdentsCommand() *cobra.Command {
	var find string

	cmd := &cobra.Command{
		Use:   "idents <file>",
		Short: "Print the identifier occurrence table for a source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(args[0])
			if err != nil {
				return &RunError{Code: ExitIOError, Err: fmt.Errorf("reading file: %w", err)}
			}

			result, err := lexer.Tokenize(string(content))
			if err != nil {
				return &RunError{Code: ExitLexError, Err: err}
			}

			out := cmd.OutOrStdout()
			if find != "" {
				return findIdentifier(out, result.Idents, find)
			}

			for _, entry := range result.Idents.Identifiers() {
				printEntry(out, entry)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&find, "find", "", "Look up a single identifier; suggests the closest match when absent")

	return cmd
}

// findIdentifier looks up one identifier and falls back to fuzzy ranking
// for a "did you mean" suggestion when it was never scanned.
func findIdentifier(out io.Writer, idents *lexer.Occurrences, name string) error {
	if entry, ok := idents.Lookup(name); ok {
		printEntry(out, entry)
		return nil
	}

	err := fmt.Errorf("identifier %q not found", name)
	if suggestion := closestMatch(name, idents.Lexemes()); suggestion != "" {
		err = fmt.Errorf("identifier %q not found, did you mean %q?", name, suggestion)
	}
	return &RunError{Code: ExitInvalidArguments, Err: err}
}

// closestMatch finds the closest identifier match using fuzzy ranking.
func closestMatch(target string, candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}

	ranks := fuzzy.RankFindFold(target, candidates)
	if len(ranks) > 0 {
		return ranks[0].Target
	}

	return ""
}

func printEntry(out io.Writer, entry *lexer.OccurrenceEntry) {
	fmt.Fprintf(out, "Identifier: %s\n", entry.Lexeme)
	fmt.Fprintf(out, "  First seen at: line %d, column %d\n",
		entry.FirstSeen.Line, entry.FirstSeen.Column)
	fmt.Fprintf(out, "  Occurrences: %d\n", len(entry.Locations))
}
