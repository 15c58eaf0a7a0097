// internal/cli/root.go
package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ammerola/stockroom/internal/console"
	"github.com/ammerola/stockroom/internal/core/services"
	"github.com/ammerola/stockroom/internal/pkg/config"
	"github.com/ammerola/stockroom/internal/pkg/logger"
)

// Build information injected at compile time
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func newRootCmd() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:           "inventory",
		Short:         "Track products and stock on hand",
		Long:          "An interactive in-memory inventory: add and remove products, adjust stock and report the total stock value.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConsole(cmd, configFile)
		},
	}
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "path to a config file (yaml, json or toml)")
	cmd.AddCommand(newVersionCmd())
	return cmd
}

func runConsole(cmd *cobra.Command, configFile string) error {
	ctx := cmd.Context()

	// Temporary logger until configuration is loaded
	bootLogger := logger.NewLogger(cmd.ErrOrStderr(), logger.LogConfig{Level: "warn", Format: "text"})

	cfg, err := config.Load(bootLogger, configFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, closer, err := logger.SetupLogger(logger.LogConfig{
		Level:          cfg.App.LogLevel,
		Format:         cfg.App.LogFormat,
		Output:         cfg.App.LogOutput,
		AddSource:      cfg.App.LogLevel == "debug",
		ServiceName:    cfg.App.Name,
		ServiceVersion: cfg.App.Version,
		Environment:    cfg.App.Environment,
	})
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}
	defer closer.Close()

	log.InfoContext(ctx, "starting inventory console",
		slog.String("version", Version),
		slog.String("build_time", BuildTime),
		slog.String("environment", cfg.App.Environment))

	manager := services.NewInventoryManager(log)
	c := console.New(manager, cmd.InOrStdin(), cmd.OutOrStdout(), console.Options{
		Prompt: cfg.Console.Prompt,
		Color:  cfg.Console.Color,
	}, log)

	return c.Run(ctx)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "inventory %s (built %s)\n", Version, BuildTime)
		},
	}
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
