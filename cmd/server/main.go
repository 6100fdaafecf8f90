package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/harrylevesque/storefront/internal"
	"github.com/harrylevesque/storefront/internal/api"
	"github.com/harrylevesque/storefront/internal/auth"
	"github.com/harrylevesque/storefront/internal/backend"
	"github.com/harrylevesque/storefront/internal/crypto"
	"github.com/harrylevesque/storefront/internal/utils"
	"github.com/harrylevesque/storefront/internal/views"
)

const shutdownTimeout = 5 * time.Second

func init() {
	if _, err := os.Lstat(".env"); err == nil {
		if err = godotenv.Load(".env"); err != nil {
			log.Fatal(err)
		}
	}
}

func main() {
	configPath := flag.String("config", "", "Path to config.json (default: nearest config.json)")
	addr := flag.String("addr", "", "Listen address, overrides the configured one")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, *configPath, *addr); err != nil {
		log.Fatal(err)
	}
}

func loadConfig(path string) (internal.Config, error) {
	if path == "" {
		return internal.LoadConfig()
	}
	return internal.Load(path)
}

func run(ctx context.Context, configPath, addr string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if addr != "" {
		cfg.Addr = addr
	}

	logger, err := utils.NewLogger(cfg.LogFile)
	if err != nil {
		return err
	}
	defer logger.Close()

	secret := []byte(cfg.SessionSecret)
	if len(secret) == 0 {
		logger.Warn("SESSION_SECRET is not set; sessions will not survive a restart")
		secret = crypto.MustRandom(32)
	}
	tokens, err := auth.NewCookieStore(secret, cfg.SecureCookies)
	if err != nil {
		return fmt.Errorf("session store: %w", err)
	}

	client := backend.New(cfg.APIBaseURL, cfg.RequestTimeout)
	svc := auth.NewService(client, tokens, logger)

	renderer, err := views.NewRenderer()
	if err != nil {
		return fmt.Errorf("parse templates: %w", err)
	}

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      api.NewRouter(api.NewHandlers(renderer, svc, logger), logger),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Infof("Server running on %s (backend %s)", cfg.Addr, client.BaseURL())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server stopped unexpectedly: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
