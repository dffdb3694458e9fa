// Package web parses web command flags and runs the draft preview server.
package web

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/louisbranch/postforge/internal/compose/theme"
	"github.com/louisbranch/postforge/internal/draft"
	"github.com/louisbranch/postforge/internal/draft/storage/sqlite"
	platformcmd "github.com/louisbranch/postforge/internal/platform/cmd"
	"github.com/louisbranch/postforge/internal/web"
)

// Config holds the web command configuration.
type Config struct {
	DBPath   string `env:"POSTFORGE_DB_PATH"        envDefault:"postforge.db"`
	HTTPAddr string `env:"POSTFORGE_WEB_HTTP_ADDR"  envDefault:"localhost:8086"`
}

// ParseConfig loads environment defaults and parses flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "path to the draft database")
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the draft preview web server.
func Run(ctx context.Context, cfg Config) error {
	return platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceWeb, func(ctx context.Context) error {
		store, err := sqlite.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open draft store: %w", err)
		}
		defer func() {
			if err := store.Close(); err != nil {
				log.Printf("close draft store: %v", err)
			}
		}()

		themes := theme.NewManager()
		drafts := draft.NewService(store, themes)

		server, err := web.NewServer(web.Config{HTTPAddr: cfg.HTTPAddr}, drafts, themes)
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}
