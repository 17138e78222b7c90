// Package main implements the lesson-plan-api server: a web form that sends
// lesson plan parameters to a language model and exports the result as PDF.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/phrazzld/lesson-plan-api/internal/config"
	"github.com/phrazzld/lesson-plan-api/internal/platform/logger"
	"github.com/spf13/cobra"
)

// version is set at build time via ldflags.
var version = "dev"

// defaultEnvFile is loaded when present; a missing default file is not an error.
const defaultEnvFile = ".env"

type serveOptions struct {
	configFile string
	envFile    string
	port       int
	portSet    bool
}

func newRootCmd() *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "lesson-plan-api",
		Short: "Serve the lesson plan generator",
		Long: `lesson-plan-api serves a form that collects lesson plan parameters,
sends them to a language model and returns the generated plan. Plans can be
downloaded as a PDF.

Configuration is read from lesson-plan-api.yaml (or --config), then from
LESSONPLAN_* environment variables. A .env file is loaded first when present.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.portSet = cmd.Flags().Changed("port")
			return runServer(cmd.Context(), opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file (default: ./lesson-plan-api.yaml)")
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", defaultEnvFile, "dotenv file loaded before configuration")
	cmd.Flags().IntVar(&opts.port, "port", 0, "listen port (overrides server.port)")

	cmd.AddCommand(newVersionCmd())

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of lesson-plan-api",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "lesson-plan-api %s\n", version)
		},
	}
}

// runServer loads configuration, sets up logging and runs the application
// until the context is cancelled or a shutdown signal arrives.
func runServer(ctx context.Context, opts *serveOptions) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"llm_provider", cfg.LLM.Provider)

	app, err := newApplication(ctx, cfg, l)
	if err != nil {
		l.Error("Failed to initialize application", "error", err)
		return err
	}

	return app.Run(ctx)
}

// loadConfig applies the dotenv file, the config file and environment
// variables, then the --port override.
func loadConfig(opts *serveOptions) (*config.Config, error) {
	if err := loadEnvFile(opts.envFile); err != nil {
		return nil, err
	}

	cfg, err := config.LoadFile(opts.configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if opts.portSet {
		cfg.Server.Port = opts.port
		if err := config.Validate(cfg); err != nil {
			return nil, fmt.Errorf("invalid --port: %w", err)
		}
	}

	return cfg, nil
}

// loadEnvFile never overrides variables already present in the environment.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if err == nil {
		slog.Debug("loaded environment file", "path", path)
		return nil
	}
	if path == defaultEnvFile && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("failed to load environment file %s: %w", path, err)
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
