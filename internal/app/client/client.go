// Package client backs the escuela CLI. Commands work on the materias
// document directly, or through a running server when one is configured.
package client

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"escuela/internal/app/client/config"
	"escuela/internal/domain/debt"
	"escuela/internal/domain/materia"
	"escuela/internal/infrastructure/storage/jsonfile"
	"escuela/internal/infrastructure/storage/memory"

	"golang.org/x/exp/slog"
)

type Mode string

const (
	ModeFile   Mode = "file"
	ModeDryRun Mode = "dry-run"
	ModeRemote Mode = "remote"
)

type Options struct {
	// DryRun runs every command against an in-memory copy of the document.
	DryRun bool
}

type App struct {
	config   *config.Config
	log      *slog.Logger
	mode     Mode
	materias materia.Servicer
	debts    debt.Lookup
}

func New(ctx context.Context, cfg *config.Config, log *slog.Logger, opts Options) (*App, error) {
	app := &App{
		config: cfg,
		log:    log,
	}

	switch {
	case cfg.IsRemote():
		remote := NewHTTPClient(cfg, log)
		if err := remote.HealthCheck(ctx); err != nil {
			return nil, fmt.Errorf("check server %s: %w", cfg.ServerAddress, err)
		}
		app.mode = ModeRemote
		app.materias = remote
		app.debts = remote
		return app, nil
	case opts.DryRun:
		doc, err := snapshot(ctx, cfg.MateriasFile, log)
		if err != nil {
			return nil, err
		}
		app.mode = ModeDryRun
		app.materias = materia.NewService(doc, log)
	default:
		app.mode = ModeFile
		app.materias = materia.NewService(jsonfile.New[materia.Materia](cfg.MateriasFile, log), log)
	}

	app.debts = debt.NewMockService(debt.DefaultTable(), log)
	return app, nil
}

// snapshot copies the current document into memory without creating it.
func snapshot(ctx context.Context, path string, log *slog.Logger) (*memory.Document[materia.Materia], error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return memory.New[materia.Materia](), nil
	}

	items, err := jsonfile.New[materia.Materia](path, log).Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return memory.Seed(items...), nil
}

func (a *App) Mode() Mode {
	return a.mode
}

func (a *App) Materias() materia.Servicer {
	return a.materias
}

func (a *App) Debts() debt.Lookup {
	return a.debts
}

type appKey struct{}

// WithApp stores app in ctx for the commands.
func WithApp(ctx context.Context, app *App) context.Context {
	return context.WithValue(ctx, appKey{}, app)
}

// FromContext returns the App stored by WithApp.
func FromContext(ctx context.Context) (*App, error) {
	app, ok := ctx.Value(appKey{}).(*App)
	if !ok || app == nil {
		return nil, errors.New("application is not initialized")
	}
	return app, nil
}
