package globals

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/git-pranav2004/getdeal/common/config"
	"github.com/git-pranav2004/getdeal/common/log"
)

var (
	cfg    *config.Config
	logger *slog.Logger
	// once ensures that initialization logic runs exactly once.
	once sync.Once
	err  error
)

// Init loads configuration and initializes logging exactly once.
// Telemetry is started separately by the caller because it owns a shutdown func.
func Init() error {
	once.Do(func() {
		cfg, err = config.LoadConfig()
		if err != nil {
			err = fmt.Errorf("failed to load config during init: %w", err)
			return
		}

		if initErr := log.Init(cfg); initErr != nil {
			err = fmt.Errorf("failed to initialize logger during init: %w", initErr)
			fmt.Printf("CRITICAL: Logger initialization failed: %v\n", err)
			return
		}
		logger = log.L
	})

	return err
}

// Cfg returns the loaded configuration, panicking if Init hasn't been successfully called.
func Cfg() *config.Config {
	if cfg == nil {
		panic("configuration not initialized: call globals.Init() first and check error")
	}
	return cfg
}

// Logger returns the initialized logger. Before Init it returns slog.Default(),
// so packages constructed in tests log through the standard handler.
func Logger() *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}
