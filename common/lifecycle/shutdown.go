package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/git-pranav2004/getdeal/common/config"
)

// Task is one step of the ordered shutdown sequence.
type Task struct {
	Name     string
	Timeout  time.Duration
	Shutdown func(context.Context) error
}

// WaitForGracefulShutdown blocks until SIGINT/SIGTERM arrives or ctx is done,
// then stops the server followed by telemetry using the configured timeouts.
func WaitForGracefulShutdown(ctx context.Context, cfg *config.Config, server Shutdowner, telemetryShutdown func(context.Context) error) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	logger := logrus.StandardLogger()
	select {
	case sig := <-quit:
		logger.WithField("signal", sig.String()).Info("Received shutdown signal, initiating graceful shutdown...")
	case <-ctx.Done():
		logger.Info("Context done, initiating graceful shutdown...")
	}

	var serverShutdown func(context.Context) error
	if server != nil {
		serverShutdown = server.Shutdown
	}

	return Run(cfg.ShutdownTotalTimeout(), []Task{
		{Name: "server", Timeout: cfg.ShutdownServerTimeout(), Shutdown: serverShutdown},
		{Name: "telemetry", Timeout: cfg.ShutdownOtelTimeout(), Shutdown: telemetryShutdown},
	})
}

// Run executes tasks in order, each bounded by its own timeout and all of them
// by total. Processing stops once the total deadline has passed.
func Run(total time.Duration, tasks []Task) error {
	logger := logrus.StandardLogger()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), total)
	defer cancel()

	var shutdownErrs error
	for _, task := range tasks {
		if task.Shutdown == nil {
			logger.Debugf("Skipping shutdown for %s (nil function)", task.Name)
			continue
		}

		taskCtx, taskCancel := context.WithTimeout(shutdownCtx, task.Timeout)
		logger.Infof("Attempting to shut down %s (timeout: %s)...", task.Name, task.Timeout)
		if err := task.Shutdown(taskCtx); err != nil {
			logger.WithError(err).Errorf("Error during %s shutdown", task.Name)
			shutdownErrs = errors.Join(shutdownErrs, fmt.Errorf("%s shutdown error: %w", task.Name, err))
			if errors.Is(err, context.DeadlineExceeded) {
				logger.Warnf("%s shutdown timed out after %s", task.Name, task.Timeout)
			}
		} else {
			logger.Infof("%s shutdown complete", task.Name)
		}
		taskCancel()

		if shutdownCtx.Err() != nil {
			logger.Warnf("Overall shutdown timeout (%s) exceeded during %s shutdown. Aborting further steps.", total, task.Name)
			if !errors.Is(shutdownErrs, context.DeadlineExceeded) {
				shutdownErrs = errors.Join(shutdownErrs, fmt.Errorf("overall shutdown timeout exceeded: %w", shutdownCtx.Err()))
			}
			break
		}
	}

	if shutdownErrs != nil {
		logger.WithError(shutdownErrs).Error("Application shutdown completed with errors")
		return shutdownErrs
	}
	logger.Info("Application shutdown completed successfully")
	return nil
}
