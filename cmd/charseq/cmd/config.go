package cmd

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/ssargent/charseq/pkg/config"
)

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the charseq configuration file",
	}
	configCmd.AddCommand(newConfigInitCmd())
	return configCmd
}

func newConfigInitCmd() *cobra.Command {
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a configuration file with a generated API key",
		Long: `Write a configuration file with default settings and a freshly
generated API key. The file format follows the extension: .toml writes TOML,
anything else writes YAML.

Examples:
  charseq config init
  charseq config init --config ./charseq.toml --data-dir ./texts`,
		Args: cobra.NoArgs,
		// The file may not exist yet, so skip loading it.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			dataDir, _ := cmd.Flags().GetString("data-dir")
			force, _ := cmd.Flags().GetBool("force")
			printKey, _ := cmd.Flags().GetBool("print-key")

			if configPath == "" {
				configPath = config.GetDefaultConfigPath()
			}
			if config.ConfigExists(configPath) && !force {
				return errors.Newf("config already exists at %s (use --force to overwrite)", configPath)
			}

			cfg, err := config.BootstrapConfig(configPath, dataDir)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Configuration written to %s\n", configPath)
			fmt.Fprintf(out, "Data directory: %s\n", cfg.DataDir)
			if printKey {
				fmt.Fprintf(out, "API key: %s\n", cfg.Security.APIKey)
			}
			return nil
		},
	}
	initCmd.Flags().Bool("force", false, "Overwrite an existing config file")
	initCmd.Flags().Bool("print-key", false, "Print the generated API key")
	return initCmd
}
