package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/hiroshi-tamura/file-agent/internal/infrastructure/config"
	"github.com/hiroshi-tamura/file-agent/internal/infrastructure/logging"
	"github.com/hiroshi-tamura/file-agent/internal/infrastructure/server"
)

// shutdownTimeout bounds the drain of in-flight requests; a hung filesystem
// operation must not wedge a restart.
const shutdownTimeout = 5 * time.Second

func main() {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)

	for {
		cfg, logger := load()

		srv := server.New(cfg, logger)
		serveErr := make(chan error, 1)
		go func() { serveErr <- srv.Run() }()

		reload := false
		select {
		case sig := <-signals:
			reload = sig == syscall.SIGHUP
			if reload {
				logger.Info("reload requested, restarting server")
			}
			shutdown(srv, logger)

		case err := <-serveErr:
			if err != nil {
				logger.Error("API server failed to start", zap.Error(err))
				portDiagnostics(logger, cfg.Settings.Port)
			} else {
				logger.Error("API server stopped unexpectedly")
			}
			// Stay alive without a working API, mirroring the tray
			// behavior of the desktop build: the operator frees the
			// port or edits the config, then SIGHUPs to retry.
			sig := <-signals
			reload = sig == syscall.SIGHUP
		}

		logger.Sync()
		if !reload {
			return
		}
	}
}

// load reads (or generates) the configuration beside the executable and
// builds the logger its [Logging] section asks for.
func load() (*config.Config, *logging.Logger) {
	path := config.Path()
	cfg, err := config.LoadOrCreate(path)
	if err != nil {
		fallback := logging.NewDefault()
		fallback.Fatal("failed to load configuration",
			zap.String("path", path),
			zap.Error(err),
		)
	}

	logger, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
	})
	if err != nil {
		logger = logging.NewDefault()
		logger.Warn("invalid logging configuration, using defaults", zap.Error(err))
	}

	// The token and its digest are deliberately absent here.
	logger.Info("configuration loaded",
		zap.String("path", path),
		zap.Uint16("port", cfg.Settings.Port),
	)
	return cfg, logger
}

// shutdown drains the server within the fixed timeout.
func shutdown(srv *server.Server, logger *logging.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown did not complete cleanly", zap.Error(err))
	}
}

// portDiagnostics names the platform commands that find and free a busy
// port, the most common reason the agent cannot bind.
func portDiagnostics(logger *logging.Logger, port uint16) {
	inspect := fmt.Sprintf("lsof -i :%d", port)
	terminate := "kill <pid>"
	if runtime.GOOS == "windows" {
		inspect = fmt.Sprintf("netstat -ano | findstr :%d", port)
		terminate = "taskkill /PID <pid> /F"
	}

	logger.Error("port may already be in use",
		zap.Uint16("port", port),
		zap.String("inspect", inspect),
		zap.String("terminate", terminate),
	)
	logger.Info("free the port or change it in " + config.FileName + ", then send SIGHUP to retry")
}
