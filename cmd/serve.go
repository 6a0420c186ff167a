package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/solidview/internal/principles"
	"github.com/ziadkadry99/solidview/internal/render"
	"github.com/ziadkadry99/solidview/internal/server"
	"github.com/ziadkadry99/solidview/internal/site"
	"github.com/ziadkadry99/solidview/internal/viewer"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the SOLID principles viewer over HTTP",
	Long: `Loads all six documents, renders them, and starts the web viewer.
If any document fails to load the viewer still starts and shows an error
page on every route until it is restarted.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "port to listen on (overrides config)")
	serveCmd.Flags().Bool("open", false, "open the viewer in a browser")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if port, _ := cmd.Flags().GetInt("port"); port > 0 {
		cfg.Server.Port = port
	}

	logger, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer logger.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r, err := render.New(render.Options{
		HighlightStyle: cfg.Render.HighlightStyle,
		Href:           principles.RouteHref,
	})
	if err != nil {
		return err
	}

	deps := server.Deps{
		HighlightCSS: r.Stylesheet(),
		Mermaid:      cfg.Mermaid,
		Logger:       logger.Logger,
	}

	docs, err := loadDocuments(ctx, cfg, logger)
	if err == nil {
		deps.Viewer, err = viewer.New(docs, r, principles.RouteHref)
	}
	if err != nil {
		logger.Error("documents unavailable, serving error page", "error", err)
		deps.LoadErr = err
	} else {
		deps.Search = site.BuildSearchIndex(docs, principles.RouteHref)
	}

	srv, err := server.New(server.Config{
		Port:     cfg.Server.Port,
		AllowAll: cfg.Server.AllowAllOrigins,
		SiteName: site.DefaultSiteName,
	}, deps)
	if err != nil {
		return err
	}

	go func() {
		<-ctx.Done()
		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("shutdown", "error", err)
		}
	}()

	if open, _ := cmd.Flags().GetBool("open"); open {
		server.OpenBrowser(srv.URL())
	}

	fmt.Fprintf(os.Stderr, "solidview %s serving on %s\n", Version, srv.URL())
	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
