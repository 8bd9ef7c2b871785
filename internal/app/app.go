// Package app implements the application layer for snodelist.
package app

import (
	"context"
	"io"
	"os"
	"strings"

	"go.trai.ch/snodelist/internal/core/domain"
	"go.trai.ch/snodelist/internal/core/ports"
	"go.trai.ch/snodelist/internal/engine/lineformat"
	"go.trai.ch/snodelist/internal/engine/machinefile"
	"go.trai.ch/snodelist/internal/engine/taskcount"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	hosts        ports.HostListFactory
	sources      ports.SourceReader
	logger       ports.Logger
	stdout       io.Writer
}

// New creates a new App instance writing to os.Stdout.
func New(
	loader ports.ConfigLoader,
	hosts ports.HostListFactory,
	sources ports.SourceReader,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		hosts:        hosts,
		sources:      sources,
		logger:       log,
		stdout:       os.Stdout,
	}
}

// WithOutput redirects tool output to w.
func (a *App) WithOutput(w io.Writer) *App {
	a.stdout = w
	return a
}

// LoadDefaults reads the defaults file at path, or the default location when
// path is empty.
func (a *App) LoadDefaults(path string) (domain.Defaults, error) {
	return a.configLoader.Load(path)
}

// Run prints the host list or machine file selected by opts.Mode.
func (a *App) Run(ctx context.Context, opts domain.Options) error {
	switch opts.Mode {
	case domain.ModeMachinefile:
		return a.runMachinefile(ctx, opts)
	case domain.ModeExpand, domain.ModeCompress:
		return a.runHostList(ctx, opts)
	default:
		return zerr.With(domain.ErrUnknownMode, "mode", opts.Mode.String())
	}
}

func (a *App) runMachinefile(ctx context.Context, opts domain.Options) (err error) {
	nodeList, err := a.requireEnv(opts.NodeListEnv)
	if err != nil {
		return err
	}
	tasks, err := a.requireEnv(opts.TaskCountEnv)
	if err != nil {
		return err
	}

	tmpl, err := lineformat.Parse(opts.Format)
	if err != nil {
		return err
	}

	hl, err := a.hosts.NewHostList(nodeList)
	if err != nil {
		return zerr.With(err, "variable", opts.NodeListEnv)
	}
	defer closeHostList(hl, &err)

	if hl.Count() == 0 {
		return nil
	}

	gen := machinefile.NewGenerator(tmpl, opts.NoRepeats)
	if err := gen.Run(ctx, a.stdout, hl, taskcount.New(tasks)); err != nil {
		return zerr.With(err, "variable", opts.TaskCountEnv)
	}
	return nil
}

func (a *App) runHostList(ctx context.Context, opts domain.Options) (err error) {
	hl, err := a.hosts.NewHostList("")
	if err != nil {
		return err
	}
	defer closeHostList(hl, &err)

	sources := opts.Sources
	if len(sources) == 0 {
		sources = []domain.Source{{Kind: domain.SourceEnv, Value: domain.DefaultNodeListEnv}}
	}

	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return err
		}
		exprs, err := a.sources.Read(src)
		if err != nil {
			return err
		}
		for _, expr := range exprs {
			if err := hl.Push(expr); err != nil {
				return err
			}
		}
	}

	if hl.Count() == 0 {
		return nil
	}
	if opts.Unique {
		hl.Uniq()
	}

	var out string
	if opts.Mode == domain.ModeCompress {
		out = hl.RangedString()
	} else {
		names := make([]string, 0, hl.Count())
		for name, ok := hl.Shift(); ok; name, ok = hl.Shift() {
			names = append(names, name)
		}
		out = strings.Join(names, opts.Delimiter)
	}

	if _, err := io.WriteString(a.stdout, out+"\n"); err != nil {
		return zerr.Wrap(err, domain.ErrWriteFailed.Error())
	}
	return nil
}

func (a *App) requireEnv(name string) (string, error) {
	value, ok := a.sources.Lookup(name)
	if !ok || value == "" {
		return "", zerr.With(domain.ErrMissingEnv, "variable", name)
	}
	return value, nil
}

func closeHostList(hl ports.HostList, errp *error) {
	if cerr := hl.Close(); cerr != nil && *errp == nil {
		*errp = cerr
	}
}
