package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/aromadata/aromadata/internal/config"
	"github.com/aromadata/aromadata/internal/server"
	"github.com/aromadata/aromadata/pkg/constants"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd(a *app) *cobra.Command {
	var (
		serverConfigPath string
		address          string
		maxRequestSize   string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard and its JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			serverConf, err := server.LoadConfig(serverConfigPath)
			if err != nil {
				return err
			}
			if address != "" {
				serverConf.Address = address
			}
			if maxRequestSize != "" {
				size, err := server.ParseSize(maxRequestSize)
				if err != nil {
					return fmt.Errorf("invalid --max-request-size: %w", err)
				}
				serverConf.SetRequestSizeBytes(size)
			}

			// The server config may carry its own logging section.
			logger := a.logger
			if merged, ok := mergeLogging(a.conf.Logging, serverConf.Logging); ok {
				if logger, err = initializeLogger(merged, a.logLevel); err != nil {
					return fmt.Errorf("failed to initialize server logger: %w", err)
				}
				defer func() {
					_ = logger.Sync()
				}()
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			listener, err := net.Listen("tcp", serverConf.Address)
			if err != nil {
				return fmt.Errorf("failed to listen on %s: %w", serverConf.Address, err)
			}

			return serve(ctx, a, logger, listener, serverConf)
		},
	}

	cmd.Flags().StringVar(&serverConfigPath, "server-config", constants.DefaultServerConfigFile, "path to server configuration file")
	cmd.Flags().StringVar(&address, "addr", "", "listen address override")
	cmd.Flags().StringVar(&maxRequestSize, "max-request-size", "", "request body limit override, e.g. 64K")
	return cmd
}

// mergeLogging overlays the non-empty fields of override on base. It reports
// false when override sets nothing.
func mergeLogging(base, override config.LoggingConfig) (config.LoggingConfig, bool) {
	if override == (config.LoggingConfig{}) {
		return base, false
	}
	if override.Level != "" {
		base.Level = override.Level
	}
	if override.Format != "" {
		base.Format = override.Format
	}
	if override.OutputFile != "" {
		base.OutputFile = override.OutputFile
	}
	return base, true
}

// serve runs the simulator and the HTTP server on listener until ctx is done,
// then shuts both down.
func serve(ctx context.Context, a *app, logger *zap.Logger, listener net.Listener, serverConf *server.Config) error {
	sim := a.newSimulator()
	if err := sim.Start(ctx); err != nil {
		return err
	}
	defer sim.Stop()

	srv := &http.Server{
		Handler: server.NewHandler(logger, sim.Cell(), serverConf.RequestSizeBytes(), a.version),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("dashboard listening",
			zap.String("op", "cmd.serve"),
			zap.String("address", listener.Addr().String()),
			zap.String("version", a.version),
		)
		errCh <- srv.Serve(listener)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverConf.ShutdownTimeout)
	defer cancel()

	logger.Info("shutting down dashboard",
		zap.String("op", "cmd.serve"),
	)
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}
