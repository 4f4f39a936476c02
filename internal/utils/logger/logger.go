package logger

import (
	"io"
	"os"

	"escuela/internal/app/server/config"

	"golang.org/x/exp/slog"
)

// New returns the stdout logger for the given environment: colored text
// locally, JSON everywhere else. Only prod drops debug records.
func New(env string) *slog.Logger {
	return NewWriter(os.Stdout, env, "")
}

// NewWriter is New with an explicit destination. A non-empty level such as
// "warn" overrides the environment default.
func NewWriter(out io.Writer, env, level string) *slog.Logger {
	lvl := slog.LevelInfo
	if env == config.EnvLocal || env == config.EnvDev {
		lvl = slog.LevelDebug
	}
	if level != "" {
		var parsed slog.Level
		if err := parsed.UnmarshalText([]byte(level)); err == nil {
			lvl = parsed
		}
	}

	if env == config.EnvLocal {
		return setupPrettySlog(out, lvl)
	}
	return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: lvl}))
}

func setupPrettySlog(out io.Writer, level slog.Level) *slog.Logger {
	opts := PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: level,
		},
	}

	handler := opts.NewPrettyHandler(out)

	return slog.New(handler)
}

// Err builds the attribute used for errors across the code base.
func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}
