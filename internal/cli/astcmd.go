package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdparse"
	"github.com/yaklabco/gomdparse/internal/logging"
	"github.com/yaklabco/gomdparse/pkg/ast"
	"github.com/yaklabco/gomdparse/pkg/diag"
)

func newASTCommand() *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "ast [file]",
		Short: "Parse Markdown and print the syntax tree as JSON",
		Long: `Parse a Markdown file and print its syntax tree as JSON.

Each element is a four-field object (name, attrs, children, meta) and
plain text appears as a bare string. Parse messages are included in the
envelope alongside the overall status.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAST(cmd, args, flags)
		},
	}

	addOptionFlags(cmd, flags)

	return cmd
}

// astEnvelope is the JSON shape emitted by the ast command.
type astEnvelope struct {
	Status   diag.Status    `json:"status"`
	AST      []*ast.Node    `json:"ast"`
	Messages []diag.Message `json:"messages"`
}

func runAST(cmd *cobra.Command, args []string, flags *renderFlags) error {
	opts, err := resolveOptions(cmd, flags)
	if err != nil {
		return err
	}

	input, name, err := readInput(args)
	if err != nil {
		return err
	}

	result, err := gomdparse.Parse(input, opts)
	if err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}

	logging.FromContext(cmd.Context()).Debug("parsed",
		logging.FieldInput, name,
		logging.FieldStatus, result.Status,
		logging.FieldBlocks, len(result.Nodes),
		logging.FieldMessages, len(result.Messages),
	)

	data, err := encodeAST(result)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), string(data))

	if result.Status == diag.StatusError {
		return ErrParseIssuesFound
	}
	return nil
}

// encodeAST serializes a parse result as the JSON envelope, newline
// terminated.
func encodeAST(result *gomdparse.Result) ([]byte, error) {
	envelope := astEnvelope{
		Status:   result.Status,
		AST:      result.Nodes,
		Messages: result.Messages,
	}

	data, err := json.MarshalIndent(envelope, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode syntax tree: %w", err)
	}
	return append(data, '\n'), nil
}
