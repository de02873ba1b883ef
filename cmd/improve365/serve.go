package improve365

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/perihassanzadeh/improve365/internal/logger"
	"github.com/perihassanzadeh/improve365/internal/scheduler"
	"github.com/perihassanzadeh/improve365/internal/server/handlers"
	"github.com/perihassanzadeh/improve365/internal/server/router"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the HTTP API and run the streak scheduler",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return withStore(ctx, func(e *env) error {
			addr := e.cfg.Server.Addr
			if serveAddr != "" {
				addr = serveAddr
			}

			sched := scheduler.NewScheduler(e.cfg.Scheduler.StreakCron, e.store, logger.Named(e.logger, "scheduler"))
			if err := sched.Start(); err != nil {
				return err
			}
			defer sched.Stop()

			h := handlers.NewTrackerHandler(e.store, newIdentityProvider(e), timeNow, logger.Named(e.logger, "handlers"))
			srv := &http.Server{
				Addr:         addr,
				Handler:      router.New(h, logger.Named(e.logger, "router")),
				ReadTimeout:  e.cfg.Server.ReadTimeout,
				WriteTimeout: e.cfg.Server.WriteTimeout,
				IdleTimeout:  e.cfg.Server.IdleTimeout,
			}

			errCh := make(chan error, 1)
			go func() {
				e.logger.Info("server starting", zap.String("addr", addr))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				if err != nil {
					return fmt.Errorf("http server: %w", err)
				}
				return nil
			case <-ctx.Done():
				e.logger.Info("shutdown signal received")
			}

			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), e.cfg.Server.ShutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				e.logger.Error("graceful shutdown failed", zap.Error(err))
				return err
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides server.addr)")
}
