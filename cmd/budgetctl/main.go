// Command budgetctl runs the budgeting engine over a JSON export of records
// and budgets, without a database or the API server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "dev"

// app carries the configuration shared by every subcommand.
type app struct {
	v       *viper.Viper
	cfgFile string
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "budgetctl",
		Short: "Compare budgets against spending from a JSON export",
		Long: `budgetctl loads an export of records and budgets and prints the same
budget comparison, insights and monthly trend the API serves.

Settings come from flags, BUDGETCTL_* environment variables or a config file.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.initConfig,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: $HOME/.config/budgetctl/config.yaml)")
	flags.String("data", "export.json", "path to the JSON export")
	flags.String("currency", "USD", "currency of the ledger to report on")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")

	_ = a.v.BindPFlag("data", flags.Lookup("data"))
	_ = a.v.BindPFlag("currency", flags.Lookup("currency"))
	_ = a.v.BindPFlag("log.level", flags.Lookup("log-level"))

	root.AddCommand(a.compareCmd())
	root.AddCommand(a.insightsCmd())
	root.AddCommand(a.monthsCmd())
	root.AddCommand(a.checkCmd())
	root.AddCommand(versionCmd())

	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (a *app) initConfig(_ *cobra.Command, _ []string) error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			a.v.AddConfigPath(filepath.Join(home, ".config", "budgetctl"))
		}
		a.v.AddConfigPath(".")
		a.v.SetConfigName("budgetctl")
		a.v.SetConfigType("yaml")
	}

	a.v.SetEnvPrefix("BUDGETCTL")
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	return a.setupLogging()
}

func (a *app) setupLogging() error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(a.v.GetString("log.level"))); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "budgetctl", version)
		},
	}
}
