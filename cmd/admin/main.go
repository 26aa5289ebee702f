package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrijs2005/wevraa-admin/internal/client/apiclient"
	"github.com/dmitrijs2005/wevraa-admin/internal/client/cli"
	"github.com/dmitrijs2005/wevraa-admin/internal/client/config"
	"github.com/dmitrijs2005/wevraa-admin/internal/client/credentials"
	"github.com/dmitrijs2005/wevraa-admin/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/wevraa-admin/internal/client/repositories/rediskv"
	"github.com/dmitrijs2005/wevraa-admin/internal/client/services"
	"github.com/dmitrijs2005/wevraa-admin/internal/cryptox"
	"github.com/dmitrijs2005/wevraa-admin/internal/filex"
	"github.com/dmitrijs2005/wevraa-admin/internal/logging"
)

// credentialSalt is fixed so a sealed store can be reopened with the same passphrase.
var credentialSalt = []byte("wevraa-admin/credentials/v1")

func main() {
	if err := run(); err != nil {
		log.Fatalf("%v", err)
	}
}

func run() error {
	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		return err
	}

	ctx := context.Background()

	logger := logging.New(cfg.LogLevel, os.Stderr)

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Warn(ctx, "close credential store", "error", err)
		}
	}()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())

	client := apiclient.New(
		apiclient.Prefix(cfg.APIBaseURL, cfg.APIVersion),
		store,
		apiclient.WithTimeout(cfg.RequestTimeout),
		apiclient.WithLogger(logger.With("component", "apiclient")),
		apiclient.WithMetrics(apiclient.NewMetrics(reg)),
	)

	if cfg.MetricsAddr != "" {
		srv := &http.Server{
			Addr:              cfg.MetricsAddr,
			Handler:           metricsHandler(reg),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			logger.Info(ctx, "metrics listening", "addr", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "metrics server", "error", err)
			}
		}()
		defer shutdown(srv)
	}

	app := cli.NewApp(services.New(client, logger), logger, os.Stdin, os.Stdout)
	app.Run(ctx)
	return nil
}

// openStore builds the credential store selected by cfg. The returned
// func releases the backend.
func openStore(ctx context.Context, cfg *config.Config) (credentials.Store, func() error, error) {
	var opts []credentials.Option
	if cfg.CredentialKey != "" {
		sealer, err := cryptox.NewPassphraseSealer(cfg.CredentialKey, credentialSalt)
		if err != nil {
			return nil, nil, fmt.Errorf("credential sealer: %w", err)
		}
		opts = append(opts, credentials.WithSealer(sealer))
	}

	switch cfg.CredentialStore {
	case config.StoreSQLite:
		path, err := filex.EnsureParentDir(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		repo, err := metadata.Open(ctx, path)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return credentials.NewKVStore(repo, opts...), repo.Close, nil

	case config.StoreRedis:
		rc, err := rediskv.Connect(ctx, rediskv.Config{Addr: cfg.RedisAddr, DB: cfg.RedisDB})
		if err != nil {
			return nil, nil, err
		}
		return credentials.NewKVStore(rediskv.NewRepository(rc, ""), opts...), rc.Close, nil

	default:
		return credentials.NewMemoryStore(opts...), func() error { return nil }, nil
	}
}

func metricsHandler(reg *prometheus.Registry) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	return mux
}

func shutdown(srv *http.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
}
