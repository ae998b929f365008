/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/ssargent/charseq/pkg/api"
	"github.com/ssargent/charseq/pkg/config"
	"github.com/ssargent/charseq/pkg/di"
	"github.com/ssargent/charseq/pkg/logging"
)

var container *di.Container

// SetContainer injects the dependency container used by store and server commands
func SetContainer(c *di.Container) {
	container = c
}

type configKey struct{}

// NewRootCmd builds the charseq command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "charseq",
		Short: "charseq - text sequences and binary codecs",
		Long: `charseq works with immutable UTF-16 text sequences and fixed-width
binary encodings. It can dump bytes as hex, encode and decode integers,
join and compare texts, keep texts in a local store and serve all of it
over a REST API.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := logging.Setup(cfg.Logging.Level, cfg.Logging.Format); err != nil {
				return err
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(context.WithValue(ctx, configKey{}, cfg))
			return nil
		},
	}

	rootCmd.PersistentFlags().String("config", "", "Path to config file (default: OS-specific location)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringP("data-dir", "d", "", "Data directory for the text store")

	rootCmd.AddCommand(
		newHexCmd(),
		newEncodeCmd(),
		newDecodeCmd(),
		newConcatCmd(),
		newCompareCmd(),
		newPutCmd(),
		newGetCmd(),
		newDeleteCmd(),
		newListCmd(),
		newServeCmd(),
		newConfigCmd(),
	)
	return rootCmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the config file named by --config, or the default file if
// it exists, and applies flag overrides on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")

	var (
		cfg *config.Config
		err error
	)
	switch {
	case configPath != "":
		cfg, err = config.LoadConfig(configPath)
	case config.ConfigExists(config.GetDefaultConfigPath()):
		cfg, err = config.LoadConfig(config.GetDefaultConfigPath())
	default:
		cfg = config.DefaultConfig()
	}
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("data-dir") {
		cfg.DataDir, _ = cmd.Flags().GetString("data-dir")
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level, _ = cmd.Flags().GetString("log-level")
	}
	return cfg, cfg.Validate()
}

func configFrom(cmd *cobra.Command) *config.Config {
	if cfg, ok := cmd.Context().Value(configKey{}).(*config.Config); ok {
		return cfg
	}
	return config.DefaultConfig()
}

// withStore opens the configured text store, runs fn and closes the store
func withStore(cmd *cobra.Command, fn func(store api.TextStore) error) error {
	if container == nil {
		return errors.New("dependency container not initialized")
	}

	cfg := configFrom(cmd)
	if err := os.MkdirAll(cfg.DataDir, 0750); err != nil {
		return errors.Wrap(err, "failed to create data dir")
	}

	store, err := container.GetStoreOpener().OpenStore(cfg.DataDir)
	if err != nil {
		return errors.Wrap(err, "failed to open store")
	}
	defer func() {
		if err := store.Close(); err != nil {
			logrus.WithError(err).Warn("failed to close store")
		}
	}()

	return fn(store)
}
