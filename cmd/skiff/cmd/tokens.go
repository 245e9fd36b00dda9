package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pacer/skiff/internal/script/lexer"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Print the token stream of a source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

// tokenReport is the JSON shape of one token; positions are 1-based for
// human consumption.
type tokenReport struct {
	Kind  string `json:"kind"`
	Value string `json:"value"`
	Line  int    `json:"line"`
	Col   int    `json:"col"`
}

func runTokens(cmd *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	tokens, errs := lexer.Tokenize(content)
	slog.Debug("tokenized", "file", args[0], "tokens", len(tokens), "errors", len(errs))

	report := make([]tokenReport, 0, len(tokens))
	for _, token := range tokens {
		if token.ID == lexer.Eof {
			break
		}

		report = append(report, tokenReport{
			Kind:  token.ID.String(),
			Value: string(token.Value),
			Line:  token.Range.Start.Line + 1,
			Col:   token.Range.Start.Character + 1,
		})
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(out))

	return reportDiagnostics(args[0], errs)
}
