package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"minicheck/internal/diagfmt"
	"minicheck/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.mini",
	Short: "Tokenize a Mini source file",
	Long:  `Tokenize breaks down a Mini source file into its constituent tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	result, err := driver.Tokenize(filePath, maxDiagnostics)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "ERROR - cannot open %s\n", filePath)
		return errCheckFailed
	}

	// Diagnostics go to stderr so the token stream stays pipeable.
	if result.Bag.Len() > 0 {
		result.Bag.Sort()
		opts := diagfmt.PrettyOpts{
			Color:     shouldColor(cmd, os.Stderr),
			Context:   2,
			ShowNotes: true,
		}
		diagfmt.Pretty(cmd.ErrOrStderr(), result.Bag, result.FileSet, opts)
	}

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(cmd.OutOrStdout(), result.Tokens, result.FileSet)
	case "json":
		return diagfmt.FormatTokensJSON(cmd.OutOrStdout(), result.Tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
