package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/pacer/skiff/internal/script"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a source file and print its AST",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	program, errs, err := script.ParseFile(args[0])
	if err != nil {
		return err
	}

	slog.Debug("parsed", "file", args[0], "statements", len(program.Body), "errors", len(errs))

	if err := reportDiagnostics(args[0], errs); err != nil {
		return err
	}

	fmt.Println(program)

	return nil
}
