// Package gomdparse converts Markdown source text into a structured,
// language-agnostic AST, and optionally serializes that tree to HTML.
// Parsing is error-tolerant: local syntax defects become severity-tagged
// messages and the full AST is still returned. Independent top-level
// blocks are parsed concurrently under a fail-fast timeout; only
// infrastructure faults (a unit panic, or the timeout) surface as Go
// errors with no AST.
package gomdparse

import (
	"context"

	"github.com/yaklabco/gomdparse/internal/logging"
	"github.com/yaklabco/gomdparse/pkg/ast"
	"github.com/yaklabco/gomdparse/pkg/config"
	"github.com/yaklabco/gomdparse/pkg/diag"
	"github.com/yaklabco/gomdparse/pkg/parser"
	"github.com/yaklabco/gomdparse/pkg/render"
	"github.com/yaklabco/gomdparse/pkg/schedule"
)

// Result is the outcome of a parse: the overall status, the ordered
// document nodes, and the line-sorted message list.
type Result struct {
	Status   diag.Status
	Nodes    []*ast.Node
	Messages []diag.Message
}

// Document is the outcome of a render.
type Document struct {
	Status   diag.Status
	HTML     string
	Messages []diag.Message
}

// Parse converts input into an AST using the default scheduler bounded
// by the options timeout. Nil options select the defaults.
func Parse(input string, opts *config.Options) (*Result, error) {
	return ParseWith(context.Background(), input, opts, nil)
}

// ParseWith parses with an explicit context and scheduler. A nil
// scheduler selects a pool bounded by the options timeout; callers may
// substitute any other dispatch strategy, such as schedule.Serial.
func ParseWith(ctx context.Context, input string, opts *config.Options, sched schedule.Scheduler) (*Result, error) {
	if opts == nil {
		opts = config.NewOptions()
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if sched == nil {
		sched = schedule.NewPool(opts.Timeout())
	}

	pctx := parser.NewContext(opts)
	blocks := parser.ScanDocument(input, pctx)

	// One unit per top-level block. Each unit exclusively owns its
	// subtree and its own message list; units never share block state,
	// and messages are merged strictly after the join.
	units := make([][]*ast.Node, len(blocks))
	unitCtxs := make([]*parser.Context, len(blocks))
	tasks := make([]schedule.Task, len(blocks))
	for i, block := range blocks {
		unitCtxs[i] = pctx.Split()
		tasks[i] = func() error {
			units[i] = parser.AssembleBlock(block, unitCtxs[i])
			return nil
		}
	}

	if err := sched.Run(ctx, tasks); err != nil {
		return nil, err
	}

	var nodes []*ast.Node
	for _, unit := range units {
		nodes = append(nodes, unit...)
	}
	for _, unitCtx := range unitCtxs {
		pctx.Join(unitCtx)
	}

	return &Result{
		Status:   pctx.Status(),
		Nodes:    nodes,
		Messages: pctx.Messages(),
	}, nil
}

// Render composes Parse with the HTML serializer.
func Render(input string, opts *config.Options) (*Document, error) {
	return RenderWith(context.Background(), input, opts, nil)
}

// RenderWith renders with an explicit context and scheduler.
func RenderWith(ctx context.Context, input string, opts *config.Options, sched schedule.Scheduler) (*Document, error) {
	result, err := ParseWith(ctx, input, opts, sched)
	if err != nil {
		return nil, err
	}
	return &Document{
		Status:   result.Status,
		HTML:     render.HTML(result.Nodes),
		Messages: result.Messages,
	}, nil
}

// RenderHTML is the convenience entry point that always succeeds for the
// caller: every collected message is logged and only the rendered output
// is returned. Terminal faults are logged and yield an empty string.
func RenderHTML(input string, opts *config.Options) string {
	doc, err := Render(input, opts)
	if err != nil {
		logging.Default().Error("render failed", logging.FieldError, err)
		return ""
	}
	for _, m := range doc.Messages {
		logMessage(m)
	}
	return doc.HTML
}

func logMessage(m diag.Message) {
	logger := logging.Default()
	switch m.Severity {
	case diag.SeverityError:
		logger.Error(m.Text, logging.FieldLine, m.Line)
	case diag.SeverityWarning:
		logger.Warn(m.Text, logging.FieldLine, m.Line)
	default:
		logger.Info(m.Text, logging.FieldLine, m.Line)
	}
}
