package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-parser/internal/config"
	"github.com/jonathan/resume-parser/internal/server"
)

var (
	servePort   int
	serveConfig string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server exposing POST /parse and, when a database is
configured, GET /documents endpoints for stored parse results.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "Path to JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	portSet := cmd != nil && cmd.Flags().Changed("port")
	cfg, err := resolveServeConfig(portSet)
	if err != nil {
		return err
	}

	srv, err := server.New(server.Config{
		Port:        cfg.Port,
		DatabaseURL: cfg.DatabaseURL,
		JWTSecret:   cfg.JWTSecret,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

// resolveServeConfig layers the serve settings: environment first, then the
// --port flag when it was explicitly set, then the config file for anything
// still unset, and finally the flag default. Seeding the flag's default
// before the merge would silently mask a port from the config file.
func resolveServeConfig(portSet bool) (config.Config, error) {
	cfg := config.Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
	}
	if portSet {
		cfg.Port = servePort
	}

	if serveConfig != "" {
		fileCfg, err := config.LoadConfig(serveConfig)
		if err != nil {
			return config.Config{}, err
		}
		if err := fileCfg.Validate(); err != nil {
			return config.Config{}, err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}

	if cfg.Port == 0 {
		cfg.Port = servePort
	}
	return cfg, nil
}
