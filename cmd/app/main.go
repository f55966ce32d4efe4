package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"logistics/cmd"
	"logistics/internal/pkg/tracing"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"golang.org/x/sync/errgroup"
)

func main() {
	envErr := godotenv.Load(".env")

	configs, err := cmd.LoadConfig(os.Getenv)
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger := cmd.NewLogger(configs, os.Stdout)
	if envErr != nil {
		logger.Warn("No .env file loaded, using process environment", "error", envErr)
	}

	if err := run(configs, logger); err != nil {
		log.Fatalf("Application stopped with error: %v", err)
	}
	logger.Info("Server stopped")
}

// run owns every resource that needs cleanup, so its defers always execute
// before main decides the exit code.
func run(configs cmd.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Init(ctx, tracing.Config{
		Enabled:     configs.OTelEnabled,
		ServiceName: configs.OTelServiceName,
	}, logger)
	if err != nil {
		return fmt.Errorf("initialize tracing: %w", err)
	}

	app, err := cmd.NewCompositionRoot(configs, logger)
	if err != nil {
		return errors.Join(fmt.Errorf("build application: %w", err), shutdownTracing(context.Background()))
	}

	e, err := app.CreateRouter(ctx)
	if err != nil {
		return errors.Join(fmt.Errorf("build router: %w", err), shutdownTracing(context.Background()))
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		return errors.Join(fmt.Errorf("start jobs: %w", err), shutdownTracing(context.Background()))
	}
	defer jobManager.StopAll()

	return serve(ctx, e, configs, shutdownTracing)
}

func serve(ctx context.Context, e *echo.Echo, configs cmd.Config, shutdownTracing func(context.Context) error) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		addr := fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)
		e.Logger.Infof("Listening on %s", addr)
		if err := e.Start(addr); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), configs.ShutdownTimeout)
		defer cancel()

		return errors.Join(e.Shutdown(shutdownCtx), shutdownTracing(shutdownCtx))
	})

	return g.Wait()
}
