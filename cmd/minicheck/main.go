package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"minicheck/internal/driver"
	"minicheck/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "minicheck [flags] <source_file>...",
	Short: "Mini language grammar checker",
	Long: `minicheck validates that source files conform to the Mini grammar
(a begin/end program of assignment statements) and reports the first
violation with its exact source position.`,
	Args:          cobra.ArbitraryArgs,
	RunE:          runCheck,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	// Version feeds the automatic --version flag.
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", driver.DefaultMaxDiagnostics, "maximum number of diagnostics to show")

	if err := rootCmd.Execute(); err != nil {
		if err != errCheckFailed {
			rootCmd.PrintErrln("Error:", err)
		}
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// shouldColor resolves the --color flag against the destination stream.
func shouldColor(cmd *cobra.Command, f *os.File) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(f))
}
