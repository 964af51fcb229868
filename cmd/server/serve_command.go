package main

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"directory/internal/directory"
	"directory/internal/logging"
	mcpserver "directory/internal/mcp"
	"directory/internal/middleware"
)

//go:embed static
var staticFS embed.FS

func newServeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the directory page",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger := logging.New(os.Stdout, cfg.LogLevel)

			a, err := newApp(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			defer func() {
				closeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				a.close(closeCtx)
			}()

			handler := directory.NewHandler(a.svc, logger)
			mcpSrv := mcpserver.NewServer(a.svc)

			// HTTP router
			mux := http.NewServeMux()

			// Static files
			sub, err := fs.Sub(staticFS, "static")
			if err != nil {
				return fmt.Errorf("static fs: %w", err)
			}
			mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(sub))))

			// Web UI
			mux.HandleFunc("GET /", handler.HomePage)

			// REST API endpoints
			mux.HandleFunc("GET /api/directory", handler.GetDirectory)
			mux.HandleFunc("GET /api/loads", handler.ListLoads)
			mux.HandleFunc("GET /api/loads/{id}", handler.GetLoad)

			// MCP endpoint (HTTP transport)
			mcpHTTP := server.NewStreamableHTTPServer(mcpSrv)
			mux.Handle("POST /mcp", mcpHTTP)
			mux.Handle("GET /mcp", mcpHTTP)
			mux.Handle("DELETE /mcp", mcpHTTP)

			mux.Handle("GET /metrics", a.metrics.Handler())
			mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				w.Write([]byte("ok"))
			})

			srv := &http.Server{
				Addr:         ":" + cfg.Port,
				Handler:      middleware.Logging(logger, mux),
				ReadTimeout:  15 * time.Second,
				WriteTimeout: 30 * time.Second,
				IdleTimeout:  60 * time.Second,
			}

			// Graceful shutdown
			go func() {
				<-cmd.Context().Done()

				logger.Info("shutting down server...")
				shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer shutdownCancel()

				if err := srv.Shutdown(shutdownCtx); err != nil {
					logger.Error("server shutdown error", "error", err)
				}
			}()

			logger.Info("server starting", "port", cfg.Port)
			logger.Info("endpoints available",
				"web", "http://localhost:"+cfg.Port,
				"api", "http://localhost:"+cfg.Port+"/api/directory",
				"mcp", "http://localhost:"+cfg.Port+"/mcp",
			)

			if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("server error: %w", err)
			}

			logger.Info("server stopped")
			return nil
		},
	}
}
