package migration

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"escuela/internal/app/server/config"

	"github.com/golang-migrate/migrate/v4"
	// Blank imports register the database drivers and the file source.
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// Migrator is the subset of *migrate.Migrate the package needs.
type Migrator interface {
	Up() error
	Close() (error, error)
}

// MigrationEngine builds a Migrator. Tests swap it to stay off disk and network.
type MigrationEngine func(sourceURL, databaseURL string) (Migrator, error)

type Migration struct {
	cfg    *config.Config
	engine MigrationEngine
}

func NewMigration(conf *config.Config, engine MigrationEngine) *Migration {
	if engine == nil {
		engine = DefaultEngine
	}
	return &Migration{
		cfg:    conf,
		engine: engine,
	}
}

func DefaultEngine(sourceURL, databaseURL string) (Migrator, error) {
	return migrate.New(sourceURL, databaseURL)
}

// Dialect returns the migration directory name for a database URI.
func Dialect(databaseURI string) (string, error) {
	switch {
	case strings.HasPrefix(databaseURI, "postgres://"), strings.HasPrefix(databaseURI, "postgresql://"):
		return "postgres", nil
	case strings.HasPrefix(databaseURI, "sqlite3://"):
		return "sqlite3", nil
	default:
		return "", fmt.Errorf("unsupported database uri scheme: %q", databaseURI)
	}
}

// Up applies every pending migration of the configured dialect.
func (mg *Migration) Up() (err error) {
	dialect, err := Dialect(mg.cfg.DB.DatabaseURI)
	if err != nil {
		return err
	}

	source := "file://" + path.Join(mg.cfg.DB.Migrations, dialect)
	m, err := mg.engine(source, mg.cfg.DB.DatabaseURI)
	if err != nil {
		return err
	}
	defer func() {
		serr, dberr := m.Close()
		if serr != nil {
			if err != nil {
				err = fmt.Errorf("%w; migration source error: %v", err, serr)
			} else {
				err = serr
			}
		}
		if dberr != nil {
			if err != nil {
				err = fmt.Errorf("%w; migration database error: %v", err, dberr)
			} else {
				err = dberr
			}
		}
	}()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up: %w", err)
	}
	return nil
}
