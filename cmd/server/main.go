package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/cracktacoshop/site/internal/careers"
	"github.com/cracktacoshop/site/internal/config"
	"github.com/cracktacoshop/site/internal/geo"
	"github.com/cracktacoshop/site/internal/location"
	"github.com/cracktacoshop/site/internal/logging"
	"github.com/cracktacoshop/site/internal/web"
	"github.com/joho/godotenv"
	"github.com/oschwald/geoip2-golang"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	// Load and validate configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup structured logging based on config
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"locations", len(location.Catalog),
		"mail_configured", cfg.SMTP.Configured(),
		"rate_limit_enabled", cfg.Rate.Enabled,
	)

	// Optional GeoIP database for server-side nearest-store lookups.
	// Missing or broken databases degrade the lookup, not the site.
	var geoDB *geoip2.Reader
	if cfg.Geo.GeoIPDB != "" {
		geoDB, err = geo.OpenGeoIP(cfg.Geo.GeoIPDB)
		if err != nil {
			slog.Warn("geoip database unavailable, nearest lookups degraded",
				"path", cfg.Geo.GeoIPDB,
				"error", err,
			)
			geoDB = nil
		} else {
			defer geoDB.Close()
			slog.Info("geoip database loaded", "path", cfg.Geo.GeoIPDB)
		}
	}

	// Careers mail relay. An unconfigured transport is allowed; the
	// endpoint reports the configuration error per request.
	relay := careers.NewSMTPRelay(careers.SMTPOptions{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.User,
		Password: cfg.SMTP.Pass,
		Secure:   cfg.SMTP.ImplicitTLS(),
		From:     cfg.SMTP.From,
		To:       cfg.Careers.To,
	})
	careersSvc := careers.NewService(relay, cfg.Careers.MaxResumeBytes)

	server := web.NewServer(cfg, careersSvc, geoDB)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	slog.Info("server starting", "addr", cfg.Server.Addr())
	if err := server.Start(); err != nil {
		slog.Info("server stopped", "error", err)
	}
}
