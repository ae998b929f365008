/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/ssargent/charseq/pkg/api"
)

func newServeCmd() *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the REST API server",
		Long: `Start the charseq REST API server. Settings come from the config file;
flags given here override it. An empty API key disables authentication.

Examples:
  charseq serve
  charseq serve --port 9000 --bind 0.0.0.0 --api-key mysecretkey`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFrom(cmd)
			if cmd.Flags().Changed("port") {
				cfg.Port, _ = cmd.Flags().GetInt("port")
			}
			if cmd.Flags().Changed("bind") {
				cfg.Bind, _ = cmd.Flags().GetString("bind")
			}
			if cmd.Flags().Changed("api-key") {
				cfg.Security.APIKey, _ = cmd.Flags().GetString("api-key")
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			serverConfig := api.ServerConfig{
				Bind:            cfg.Bind,
				Port:            cfg.Port,
				APIKey:          cfg.Security.APIKey,
				BuilderCapacity: cfg.Builder.InitialCapacity,
			}

			return withStore(cmd, func(store api.TextStore) error {
				logrus.WithFields(logrus.Fields{
					"data_dir": cfg.DataDir,
					"auth":     serverConfig.APIKey != "",
				}).Info("serving text store")

				starter := container.GetServerFactory().CreateServerStarter(logrus.StandardLogger())
				return starter.StartServer(ctx, store, serverConfig)
			})
		},
	}

	serveCmd.Flags().IntP("port", "p", 8080, "Port to listen on")
	serveCmd.Flags().String("bind", "127.0.0.1", "Address to bind server to")
	serveCmd.Flags().String("api-key", "", "API key required in the X-API-Key header")
	return serveCmd
}
