// Package app implements the application layer for zlock.
package app

import (
	"context"
	"io"

	"go.trai.ch/zerr"
	"go.trai.ch/zlock/internal/adapters/detector"
	"go.trai.ch/zlock/internal/adapters/report"
	"go.trai.ch/zlock/internal/core/domain"
	"go.trai.ch/zlock/internal/core/ports"
	"go.trai.ch/zlock/internal/engine/reconciler"
)

// App ties request loading, reconciliation and reporting together.
type App struct {
	loader     ports.ConfigLoader
	reconciler *reconciler.Reconciler
	renderer   ports.Renderer
	logger     ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	rec *reconciler.Reconciler,
	renderer ports.Renderer,
	log ports.Logger,
) *App {
	return &App{
		loader:     loader,
		reconciler: rec,
		renderer:   renderer,
		logger:     log,
	}
}

// RunOptions configures how a result is reported.
type RunOptions struct {
	// Output is the report format: auto, json, compact, yaml or text.
	Output string
	// LogJSON switches diagnostics on stderr to JSON lines.
	LogJSON bool
}

// Overrides carries request fields set explicitly on the command line.
// Nil fields leave the loaded value alone.
type Overrides struct {
	Names   []string
	State   *domain.State
	Type    *domain.PackageType
	Repo    *string
	Message *string
	DryRun  *bool
	Binary  *string
}

// Apply copies every set field onto req.
func (o Overrides) Apply(req *domain.Request) {
	if len(o.Names) > 0 {
		req.Names = o.Names
	}
	if o.State != nil {
		req.State = *o.State
	}
	if o.Type != nil {
		req.Options.Type = *o.Type
	}
	if o.Repo != nil {
		req.Options.Repo = *o.Repo
	}
	if o.Message != nil {
		req.Options.Message = *o.Message
	}
	if o.DryRun != nil {
		req.DryRun = *o.DryRun
	}
	if o.Binary != nil {
		req.Binary = *o.Binary
	}
}

// Run reconciles req and writes the report to w.
func (a *App) Run(ctx context.Context, w io.Writer, req domain.Request, opts RunOptions) error {
	a.configureLogger(opts)

	format := detector.ResolveFormat(detector.DetectFormat(), opts.Output)
	if err := validateFormat(format); err != nil {
		return err
	}

	result, err := a.reconciler.Reconcile(ctx, req)
	if err != nil {
		return zerr.Wrap(err, domain.ErrReconcileFailed.Error())
	}

	return a.renderer.Render(w, format, result)
}

// Apply loads the request file at path, lets overrides win over its values,
// then behaves like Run.
func (a *App) Apply(ctx context.Context, w io.Writer, path string, overrides Overrides, opts RunOptions) error {
	a.configureLogger(opts)

	req, err := a.loader.Load(path)
	if err != nil {
		return err
	}
	overrides.Apply(req)

	return a.Run(ctx, w, *req, opts)
}

// RunModule executes one run of the configuration-management module protocol.
// The arguments file is JSON; the result is one compact JSON object on w.
// On failure a {"failed": true, "msg": ...} object is written instead and
// ErrModuleFailed is returned.
func (a *App) RunModule(ctx context.Context, w io.Writer, argsPath string) error {
	result, err := a.module(ctx, argsPath)
	if err != nil {
		a.logger.Error(err)
		if renderErr := a.renderer.RenderFailure(w, err); renderErr != nil {
			return renderErr
		}
		return domain.ErrModuleFailed
	}

	return a.renderer.Render(w, report.FormatCompact, result)
}

func (a *App) module(ctx context.Context, argsPath string) (*domain.Result, error) {
	req, err := a.loader.Load(argsPath)
	if err != nil {
		return nil, err
	}
	return a.reconciler.Reconcile(ctx, *req)
}

func (a *App) configureLogger(opts RunOptions) {
	if l, ok := a.logger.(interface{ SetJSON(bool) }); ok && opts.LogJSON {
		l.SetJSON(true)
	}
}

func validateFormat(format string) error {
	switch format {
	case report.FormatJSON, report.FormatCompact, report.FormatYAML, report.FormatText:
		return nil
	default:
		return zerr.With(domain.ErrUnknownOutputFormat, "format", format)
	}
}
