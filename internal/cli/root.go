package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
)

// Execute runs the root command with the provided context
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

// newRootCmd creates the root command
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "throng",
		Short: "Throng - run a command per input item with bounded concurrency",
		Long: `Throng runs a unit of work for every input item under a concurrency
cap, cancelling outstanding work as soon as the answer of a search is
determined. Items are read one per line from stdin or a file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd)
		},
	}

	// Define persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.throng.yaml)")
	rootCmd.PersistentFlags().StringP("file", "f", "", "read items from file instead of stdin")
	rootCmd.PersistentFlags().IntP("limit", "l", 0, "concurrency limit (0 uses the configured default)")
	rootCmd.PersistentFlags().StringP("profile", "P", "", "named settings profile from the config file")
	rootCmd.PersistentFlags().StringP("output", "o", "", "output format (json, yaml, table)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output with debug logging")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	rootCmd.PersistentFlags().Duration("timeout", 30*time.Second, "timeout per item")

	// Bind flags to viper
	viper.BindPFlag("file", rootCmd.PersistentFlags().Lookup("file"))
	viper.BindPFlag("limit", rootCmd.PersistentFlags().Lookup("limit"))
	viper.BindPFlag("profile", rootCmd.PersistentFlags().Lookup("profile"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("no-color", rootCmd.PersistentFlags().Lookup("no-color"))
	viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))

	// Add subcommands
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newFilterCmd())
	rootCmd.AddCommand(newFindCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// initConfig initializes configuration and logging
func initConfig(cmd *cobra.Command) error {
	// Initialize viper configuration
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Search for config in home directory
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".throng")
	}

	// Read environment variables
	viper.SetEnvPrefix("THRONG")
	viper.AutomaticEnv()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Setup structured logging
	setupLogging(cmd)

	return nil
}

// setupLogging configures structured logging with slog
func setupLogging(cmd *cobra.Command) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	noColor, _ := cmd.Flags().GetBool("no-color")

	// Set log level based on verbose flag
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: logLevel,
	}

	var handler slog.Handler
	if noColor {
		// Use JSON handler for no-color mode
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		// Use text handler for colored output
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	if verbose {
		slog.Debug("verbose logging enabled")
		if viper.ConfigFileUsed() != "" {
			slog.Debug("loaded configuration", "file", viper.ConfigFileUsed())
		}
	}
}
