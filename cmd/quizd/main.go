package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	api "github.com/docquiz/docquiz/internal/api/http"
	"github.com/docquiz/docquiz/internal/config"
	"github.com/docquiz/docquiz/internal/docs"
	"github.com/docquiz/docquiz/internal/logging"
	"github.com/docquiz/docquiz/internal/render"
)

func main() {
	cfg := config.FromEnv()

	log, err := logging.New(cfg.LogMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger init failed: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	provider, err := docs.NewGoogleProvider(ctx, cfg.FetchTimeout, docs.CredentialOptions(cfg.Credential)...)
	if err != nil {
		log.Fatalw("docs client init failed", "error", err)
	}

	r := api.NewRouter(provider, render.New(), log, cfg.CORSOrigins)

	log.Infow("listening", "addr", cfg.HTTPAddr, "fetch_timeout", cfg.FetchTimeout)
	if err := http.ListenAndServe(cfg.HTTPAddr, r); err != nil {
		log.Fatalw("server stopped", "error", err)
	}
}
