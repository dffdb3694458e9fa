// Package mcp parses MCP command flags and runs the composition MCP server
// on stdio or HTTP.
package mcp

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/louisbranch/postforge/internal/compose/theme"
	"github.com/louisbranch/postforge/internal/draft"
	"github.com/louisbranch/postforge/internal/draft/storage/sqlite"
	"github.com/louisbranch/postforge/internal/linkedin"
	"github.com/louisbranch/postforge/internal/mcp/service"
	platformcmd "github.com/louisbranch/postforge/internal/platform/cmd"
)

// Config holds MCP command configuration.
type Config struct {
	DBPath    string `env:"POSTFORGE_DB_PATH"        envDefault:"postforge.db"`
	HTTPAddr  string `env:"POSTFORGE_MCP_HTTP_ADDR"  envDefault:"localhost:8081"`
	Transport string `env:"POSTFORGE_MCP_TRANSPORT"  envDefault:"stdio"`
}

// ParseConfig loads environment defaults and parses flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "path to the draft database")
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP server address (for HTTP transport)")
	fs.StringVar(&cfg.Transport, "transport", cfg.Transport, "Transport type: stdio or http")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run opens the draft store, wires the tool dependencies, and serves MCP
// until the context ends.
func Run(ctx context.Context, cfg Config) error {
	return platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceMCP, func(ctx context.Context) error {
		store, err := sqlite.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open draft store: %w", err)
		}
		defer func() {
			if err := store.Close(); err != nil {
				log.Printf("close draft store: %v", err)
			}
		}()

		licfg, err := linkedin.LoadConfigFromEnv()
		if err != nil {
			return fmt.Errorf("load linkedin config: %w", err)
		}
		if !licfg.Configured() {
			log.Printf("linkedin publishing disabled, missing: %v", licfg.Missing())
		}

		themes := theme.NewManager()
		deps := service.Deps{
			Drafts:    draft.NewService(store, themes),
			Themes:    themes,
			Publisher: linkedin.NewClient(licfg),
		}
		return service.Run(ctx, deps, service.Config{
			Transport: service.TransportKind(cfg.Transport),
			HTTPAddr:  cfg.HTTPAddr,
		})
	})
}
