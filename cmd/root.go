// Package cmd wires the organon CLI: config loading, engine construction,
// and the sector/cell/status subcommands.
package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	application "github.com/organlabs/organon/internal/catalog/application"
	"github.com/organlabs/organon/internal/composition"
	"github.com/organlabs/organon/internal/config"
	"github.com/organlabs/organon/internal/log"
	"github.com/organlabs/organon/internal/tracing"
)

var (
	version    = "dev"
	cfgFile    string
	debug      bool
	cfg        config.Config
	logCleanup func()
)

var rootCmd = &cobra.Command{
	Use:          "organon",
	Short:        "Compose sector architectures from a cell/tissue/organ catalog",
	Long:         `Organon composes business sector architectures from a catalog of cells, tissues, and organs, deriving connections, capabilities, and status reports for the active composition.`,
	Version:      version,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/organon/config.yaml)")
	rootCmd.PersistentFlags().String("catalog", "",
		"path to an external catalog file (default: built-in catalog)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"log debug output to stderr")

	_ = viper.BindPFlag("catalog_path", rootCmd.PersistentFlags().Lookup("catalog"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("catalog_path", defaults.CatalogPath)
	viper.SetDefault("default_sector", defaults.DefaultSector)
	viper.SetDefault("allow_undeclared_cells", defaults.AllowUndeclaredCells)
	viper.SetDefault("auto_reload", defaults.AutoReload)
	viper.SetDefault("log_file", defaults.LogFile)
	viper.SetDefault("tracing.enabled", defaults.Tracing.Enabled)
	viper.SetDefault("tracing.exporter", defaults.Tracing.Exporter)
	viper.SetDefault("tracing.otlp_endpoint", defaults.Tracing.OTLPEndpoint)
	viper.SetDefault("tracing.sample_rate", defaults.Tracing.SampleRate)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .organon/config.yaml (current directory)
		// 2. ~/.config/organon/config.yaml (user config)
		if _, err := os.Stat(".organon/config.yaml"); err == nil {
			viper.SetConfigFile(".organon/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "organon"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create default at .organon/config.yaml
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			defaultPath := ".organon/config.yaml"
			if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
				viper.SetConfigFile(defaultPath)
				_ = viper.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	_ = viper.Unmarshal(&cfg)

	switch {
	case debug:
		log.InitWithWriter(os.Stderr)
	case cfg.LogFile != "":
		cleanup, err := log.Init(cfg.LogFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "organon: opening log file: %v\n", err)
			break
		}
		logCleanup = cleanup
	}
}

// engine bundles the per-invocation runtime: catalog service, tracing
// provider, and a composition session.
type engine struct {
	catalogs *application.CatalogService
	tracing  *tracing.Provider
	session  *composition.Session
}

// newEngine constructs the runtime from the resolved config.
func newEngine() (*engine, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	catalogs, err := application.NewCatalogService(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	tcfg := cfg.Tracing
	if tcfg.Enabled && tcfg.Exporter == "file" && tcfg.FilePath == "" {
		tcfg.FilePath = config.DefaultTracesFilePath()
	}
	provider, err := tracing.NewProvider(tcfg)
	if err != nil {
		return nil, fmt.Errorf("initializing tracing: %w", err)
	}

	session := composition.NewSession(catalogs.Catalog(),
		composition.WithAllowUndeclaredCells(cfg.AllowUndeclaredCells),
		composition.WithTracer(provider.Tracer()),
	)

	return &engine{catalogs: catalogs, tracing: provider, session: session}, nil
}

// reload re-reads the catalog and replaces the session, carrying the active
// sector forward when it still exists.
func (e *engine) reload(ctx context.Context) error {
	if err := e.catalogs.Reload(); err != nil {
		return err
	}

	previous := e.session.ActiveSector()
	e.session.Close()
	e.session = composition.NewSession(e.catalogs.Catalog(),
		composition.WithAllowUndeclaredCells(cfg.AllowUndeclaredCells),
		composition.WithTracer(e.tracing.Tracer()),
	)

	if previous != nil {
		if _, err := e.session.InitializeForSector(ctx, previous.ID()); err != nil {
			return fmt.Errorf("re-initializing sector after reload: %w", err)
		}
	}
	return nil
}

func (e *engine) close(ctx context.Context) {
	e.session.Close()
	if err := e.tracing.Shutdown(ctx); err != nil {
		log.ErrorErr(log.CatTrace, "tracing shutdown failed", err)
	}
}

// Execute runs the root command
func Execute() error {
	defer func() {
		if logCleanup != nil {
			logCleanup()
		}
	}()
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
