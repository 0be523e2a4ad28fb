// internal/commands/serve.go
package commands

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"blogsmith-mcp/internal/logging"
	"blogsmith-mcp/internal/server"
)

// shutdownTimeout bounds how long in-flight requests get during shutdown.
const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server over SSE and streamable HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		srv := server.New(*cfg)

		httpServer := &http.Server{
			Addr:    cfg.Addr(),
			Handler: srv.Router(),
		}

		errCh := make(chan error, 1)
		go func() {
			errCh <- httpServer.ListenAndServe()
		}()

		color.Green("%s %s listening on %s", server.Name, appVersion, cfg.Addr())
		color.Cyan("  streaming:   %s (messages at %s)", server.SSEPath, server.MessagePath)
		color.Cyan("  single-shot: %s", server.MCPPath)
		logging.LogEvent("server started on %s", cfg.Addr())

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		case sig := <-sigCh:
			logging.LogEvent("received %s, shutting down", sig)
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return httpServer.Shutdown(ctx)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
