// Package server assembles the storage, the services and the HTTP API of the
// escuela backend.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"escuela/internal/app/server/api"
	"escuela/internal/app/server/config"
	"escuela/internal/domain/debt"
	"escuela/internal/domain/materia"
	"escuela/internal/domain/student"
	"escuela/internal/infrastructure/storage/jsonfile"
	"escuela/internal/infrastructure/storage/postgres"
	"escuela/internal/infrastructure/storage/sqlite"

	"golang.org/x/exp/slog"
)

type App struct {
	cfg     *config.Config
	log     *slog.Logger
	handler http.Handler
	closers []func() error
}

// New wires every dependency. Student routes are only mounted when a
// database URI is configured.
func New(ctx context.Context, cfg *config.Config, log *slog.Logger) (*App, error) {
	app := &App{cfg: cfg, log: log}

	materias := materia.NewService(jsonfile.New[materia.Materia](cfg.Storage.MateriasFile, log), log)

	students, err := app.openStudents(ctx)
	if err != nil {
		return nil, err
	}

	app.handler = api.New(api.Deps{
		Materias: materias,
		Students: students,
		Debts:    debt.NewMockService(debt.DefaultTable(), log),
	}, log)

	return app, nil
}

func (a *App) openStudents(ctx context.Context) (student.Servicer, error) {
	uri := a.cfg.DB.DatabaseURI
	switch {
	case uri == "":
		return nil, nil
	case strings.HasPrefix(uri, sqlite.Scheme):
		st, err := sqlite.New(a.cfg)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		a.closers = append(a.closers, st.Close)
		a.log.Info("student storage ready", "driver", "sqlite3")
		return student.NewService(sqlite.NewStudentRepository(st.DB(), a.log), a.log), nil
	default:
		st, err := postgres.New(ctx, a.cfg)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		a.closers = append(a.closers, st.Close)
		a.log.Info("student storage ready", "driver", "postgres")
		return student.NewService(postgres.NewStudentRepository(st, a.log), a.log), nil
	}
}

func (a *App) Handler() http.Handler {
	return a.handler
}

// Run serves until ctx is cancelled, then shuts the server down gracefully.
func (a *App) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              a.cfg.Server.RunAddress,
		Handler:           a.handler,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	a.log.Info("escuela backend listening", "address", srv.Addr, "materias_file", a.cfg.Storage.MateriasFile)
	return runServer(ctx, srv, a.cfg.Server.ShutdownTimeout)
}

func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c())
	}
	return errors.Join(errs...)
}

func runServer(ctx context.Context, srv *http.Server, timeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
