package cmd

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jsinelofficial/metamask-dashboard/config"
	"github.com/jsinelofficial/metamask-dashboard/dashboard"
	"github.com/jsinelofficial/metamask-dashboard/handler"
	"github.com/jsinelofficial/metamask-dashboard/middleware"
	"github.com/jsinelofficial/metamask-dashboard/upstream"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard and the tweet proxy",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := setup()
		return serve(cfg)
	},
}

// NewRouter registers every route on a gorilla/mux router
func NewRouter(cfg config.Config, dash *dashboard.Dashboard) *mux.Router {
	proxy := handler.NewProxyHandler(upstream.NewClient(cfg.Upstream.BaseURL, nil), cfg.Upstream)
	dh := handler.NewDashboardHandler(dash)

	r := mux.NewRouter()
	r.Use(middleware.RequestLogger)
	r.Use(middleware.CORS)

	// mux only runs middleware on a matched route, so every route accepts
	// OPTIONS for the CORS pre-flight to be answered.
	r.HandleFunc("/health", handler.HealthCheck).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/tweets", proxy.GetTweets).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/activity", dh.ListActivity).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/stats", dh.GetStats).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/refresh", dh.Refresh).Methods("POST", "OPTIONS")
	r.HandleFunc("/", dh.ServePage).Methods("GET")

	return r
}

func serve(cfg config.Config) error {
	dash, err := newDashboard(cfg)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:         cfg.Address(),
		Handler:      NewRouter(cfg, dash),
		ReadTimeout:  time.Duration(cfg.WebServer.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WebServer.WriteTimeout) * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().
			Str("address", server.Addr).
			Str("mode", cfg.Dashboard.Mode).
			Int("competitors", len(cfg.Competitors)).
			Msg("Starting server")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// In live mode the proxy is this server, so load only once it is listening
	if cfg.Dashboard.RefreshOnStart {
		go dash.Refresh(context.Background())
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.WebServer.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
		return err
	}

	log.Info().Msg("Server stopped gracefully")
	return nil
}
