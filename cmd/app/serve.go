package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"deliverydesk/cmd"
	httpadapter "deliverydesk/internal/adapters/in/http"
	"deliverydesk/internal/core/application/usecases/commands"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(c *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			app, err := cmd.NewCompositionRoot(ctx, config, logger)
			if err != nil {
				log.Fatalf("failed to build application: %v", err)
			}
			defer func() {
				if err := app.Close(); err != nil {
					logger.Error("Failed to close database", "error", err)
				}
			}()

			// Selectors stay empty until the load completes; a failure is logged by the handler.
			loadHandler := app.CreateLoadReferenceDataCommandHandler()
			go func() {
				_ = loadHandler.Handle(ctx, commands.NewLoadReferenceDataCommand())
			}()

			jobManager := app.CreateJobManager()
			if err = jobManager.StartAll(); err != nil {
				return err
			}
			defer jobManager.StopAll()

			e, err := httpadapter.NewRouter(ctx, app.CreateServer(), logger)
			if err != nil {
				log.Fatalf("failed to build router: %v", err)
			}

			go func() {
				addr := fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)
				if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatalf("http server stopped: %v", err)
				}
			}()

			<-ctx.Done()
			logger.Info("Shutting down")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return e.Shutdown(shutdownCtx)
		},
	}
}
