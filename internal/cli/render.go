package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdparse"
	"github.com/yaklabco/gomdparse/internal/configloader"
	"github.com/yaklabco/gomdparse/internal/logging"
	"github.com/yaklabco/gomdparse/internal/ui/pretty"
	"github.com/yaklabco/gomdparse/pkg/config"
	"github.com/yaklabco/gomdparse/pkg/diag"
	"github.com/yaklabco/gomdparse/pkg/fsutil"
)

type renderFlags struct {
	output          string
	format          string
	gfm             bool
	breaks          bool
	smartypants     bool
	pureLinks       bool
	gfmTables       bool
	detectLanguage  bool
	codeClassPrefix string
	timeout         int
}

func newRenderCommand() *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render Markdown to HTML",
		Long:  renderLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, flags)
		},
	}

	addOptionFlags(cmd, flags)
	cmd.Flags().StringVarP(&flags.output, "output", "o", "",
		"write output to file instead of stdout")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "html",
		"output format: html or json")

	return cmd
}

const renderLongDescription = `Render a Markdown file to HTML.

Reads from the given file, or from stdin when no file (or "-") is given.
The HTML goes to stdout; parse messages go to stderr with their line
numbers. The exit code is 1 when any error or warning was reported.

Examples:
  gomdparse render README.md             # Render a file
  cat doc.md | gomdparse render          # Render stdin
  gomdparse render doc.md -o doc.html    # Write to a file
  gomdparse render --smartypants=false x.md  # Keep straight quotes`

// addOptionFlags registers the parse option flags shared by render and ast.
func addOptionFlags(cmd *cobra.Command, flags *renderFlags) {
	cmd.Flags().BoolVar(&flags.gfm, "gfm", true, "enable GitHub Flavored Markdown extensions")
	cmd.Flags().BoolVar(&flags.breaks, "breaks", false, "render every newline in a paragraph as a hard break (requires GFM)")
	cmd.Flags().BoolVar(&flags.smartypants, "smartypants", true, "convert quotes and dashes to typographic forms")
	cmd.Flags().BoolVar(&flags.pureLinks, "pure-links", true, "turn bare URLs into links")
	cmd.Flags().BoolVar(&flags.gfmTables, "gfm-tables", false, "recognize tables without a preceding blank line")
	cmd.Flags().BoolVar(&flags.detectLanguage, "detect-code-language", false, "detect the language of unlabeled code blocks")
	cmd.Flags().StringVar(&flags.codeClassPrefix, "code-class-prefix", "", "space-separated class prefixes for code blocks")
	cmd.Flags().IntVar(&flags.timeout, "timeout", config.DefaultTimeoutMillis, "parse timeout in milliseconds")
}

func runRender(cmd *cobra.Command, args []string, flags *renderFlags) error {
	logger := logging.FromContext(cmd.Context())

	opts, err := resolveOptions(cmd, flags)
	if err != nil {
		return err
	}

	input, name, err := readInput(args)
	if err != nil {
		return err
	}

	logger.Debug("rendering",
		logging.FieldInput, name,
		logging.FieldFormat, flags.format,
		logging.FieldGFM, opts.GFM,
		logging.FieldSmartypants, opts.Smartypants,
		logging.FieldTimeout, opts.TimeoutMillis,
	)

	var payload []byte
	var status diag.Status

	switch flags.format {
	case "html":
		doc, err := gomdparse.Render(input, opts)
		if err != nil {
			return fmt.Errorf("render %s: %w", name, err)
		}
		payload = []byte(doc.HTML)
		status = doc.Status
		printMessages(cmd, doc.Status, doc.Messages)
	case "json":
		// JSON output carries the messages inside the envelope.
		result, err := gomdparse.Parse(input, opts)
		if err != nil {
			return fmt.Errorf("parse %s: %w", name, err)
		}
		payload, err = encodeAST(result)
		if err != nil {
			return err
		}
		status = result.Status
	default:
		return fmt.Errorf("unknown output format %q: want html or json", flags.format)
	}

	logger.Debug("parsed", logging.FieldStatus, status)

	if flags.output != "" {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		if err := fsutil.WriteAtomic(ctx, flags.output, payload, fsutil.DefaultFileMode); err != nil {
			return &ioError{err: fmt.Errorf("write %s: %w", flags.output, err)}
		}
		logger.Debug("wrote output", logging.FieldOutput, flags.output)
	} else {
		fmt.Fprint(cmd.OutOrStdout(), string(payload))
	}

	if status == diag.StatusError {
		return ErrParseIssuesFound
	}
	return nil
}

// resolveOptions loads file-based options and overlays any flags the
// user set explicitly.
func resolveOptions(cmd *cobra.Command, flags *renderFlags) (*config.Options, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	loadResult, err := configloader.Load(configloader.LoadOptions{
		ExplicitPath: configPath,
	})
	if err != nil {
		return nil, &configError{err: errors.Join(errors.New("failed to load configuration"), err)}
	}
	if loadResult.LoadedFrom != "" {
		logging.Default().Debug("loaded configuration", logging.FieldPath, loadResult.LoadedFrom)
	}

	opts := loadResult.Options

	// Flags beat file config, but only when actually given.
	set := cmd.Flags().Changed
	if set("gfm") {
		opts.GFM = flags.gfm
	}
	if set("breaks") {
		opts.Breaks = flags.breaks
	}
	if set("smartypants") {
		opts.Smartypants = flags.smartypants
	}
	if set("pure-links") {
		opts.PureLinks = flags.pureLinks
	}
	if set("gfm-tables") {
		opts.GFMTables = flags.gfmTables
	}
	if set("detect-code-language") {
		opts.DetectCodeLanguage = flags.detectLanguage
	}
	if set("code-class-prefix") {
		opts.CodeClassPrefix = flags.codeClassPrefix
	}
	if set("timeout") {
		opts.TimeoutMillis = flags.timeout
	}

	if err := opts.Validate(); err != nil {
		return nil, &configError{err: err}
	}
	return opts, nil
}

// readInput returns the Markdown source and a display name for it.
func readInput(args []string) (string, string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", &ioError{err: fmt.Errorf("read stdin: %w", err)}
		}
		return string(data), "stdin", nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", &ioError{err: fmt.Errorf("read %s: %w", args[0], err)}
	}
	return string(data), args[0], nil
}

// printMessages writes parse messages and a status summary to stderr
// with color when enabled.
func printMessages(cmd *cobra.Command, status diag.Status, messages []diag.Message) {
	if len(messages) == 0 {
		return
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	out := cmd.ErrOrStderr()
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, out))
	styles.PrintMessages(out, messages)
	styles.PrintStatus(out, status, len(messages))
}
