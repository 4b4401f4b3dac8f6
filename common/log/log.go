package log

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"go.opentelemetry.io/contrib/bridges/otelslog"

	"github.com/git-pranav2004/getdeal/common/config"
)

// Global slog logger instance
var L *slog.Logger

// Output is where Init writes records outside production.
var Output io.Writer = os.Stdout

// Init configures L from the config and installs it as the slog default.
// Production sends records through the OTel log bridge; every other
// environment writes to stdout in LOG_FORMAT.
func Init(cfg *config.Config) error {
	if L != nil {
		slog.Warn("Logger already initialized")
		return nil
	}

	L = slog.New(newHandler(cfg, Output))
	slog.SetDefault(L)

	L.Info("Logger initialized and set as default",
		slog.String("environment", cfg.Environment),
		slog.String("level", ParseLevel(cfg.LogLevel).String()))
	return nil
}

func newHandler(cfg *config.Config, w io.Writer) slog.Handler {
	if cfg.IsProduction() {
		return otelslog.NewHandler(cfg.ServiceName)
	}

	handlerOpts := &slog.HandlerOptions{
		AddSource: true,
		Level:     ParseLevel(cfg.LogLevel),
	}
	if strings.ToLower(cfg.LogFormat) == "text" {
		return slog.NewTextHandler(w, handlerOpts)
	}
	return slog.NewJSONHandler(w, handlerOpts)
}

// ParseLevel maps a config level name to a slog level; unknown names are info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
