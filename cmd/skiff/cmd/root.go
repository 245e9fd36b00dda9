package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pacer/skiff/internal/script/lexer"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "skiff",
	Short: "Frontend tools for the Skiff scripting language",
	Long: `skiff runs the Skiff language frontend over a source file.

The frontend stops after syntactic analysis: it can print the token stream
produced by the tokenizer, or the abstract syntax tree produced by the
parser. It never evaluates the program.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}

		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
		slog.SetDefault(slog.New(handler))
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}

	return err
}

// reportDiagnostics renders one-line diagnostics to stderr and returns a
// non-nil error when any were found.
func reportDiagnostics(path string, errs []lexer.Error) error {
	if len(errs) == 0 {
		return nil
	}

	for _, e := range errs {
		pos := e.GetRange().Start
		fmt.Fprintf(os.Stderr, "%s:%d:%d: %s\n", path, pos.Line+1, pos.Character+1, e.GetError())
	}

	return fmt.Errorf("%d error(s) in %s", len(errs), path)
}
