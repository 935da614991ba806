package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"dockhand/internal/config"
	"dockhand/internal/docker"
	"dockhand/internal/tui/controller"
	"dockhand/pkg/logging"
)

// rootCmd represents the base command when called without any subcommands.
// Running it with no subcommand starts the dashboard.
var rootCmd = &cobra.Command{
	Use:   "dockhand [host]",
	Short: "A terminal dashboard for the Docker engine",
	Long: `dockhand is an interactive terminal dashboard for a Docker engine.
It shows the engine's containers, images, networks, and volumes in
tabbed views that refresh in the background, and lets you start, stop,
delete, and inspect resources without leaving the terminal.

The engine endpoint is taken from the optional host argument, falling
back to the config file and then the environment (DOCKER_HOST).`,
	Args: cobra.MaximumNArgs(1),
	// SilenceUsage prevents printing usage on errors we handle ourselves
	// (e.g. a failed engine connection)
	SilenceUsage: true,
	RunE:         runDashboard,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "dockhand version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
}

// runDashboard loads configuration, connects to the engine (failing fast
// when it is unreachable), and hands control to the TUI until quit.
func runDashboard(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	host := cfg.Host
	if len(args) == 1 {
		host = args[0]
	}

	logPath, err := logging.InitForTUI(logging.ParseLevel(cfg.LogLevel))
	if err != nil {
		return fmt.Errorf("initializing logging: %w", err)
	}
	defer logging.Close()
	logging.Info("CLI", "logging to %s", logPath)

	client, err := docker.Connect(ctxOrBackground(cmd.Context()), host)
	if err != nil {
		return err
	}
	defer client.Close()

	return controller.RunDashboard(client, cfg)
}

// ctxOrBackground guards against cobra handing us a nil context in tests.
func ctxOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
