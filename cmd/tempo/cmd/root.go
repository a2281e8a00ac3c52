package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"tempo/internal/client"
	"tempo/internal/store"
)

var (
	configPath string
	serverURL  string
	token      string

	apiClient *client.Client
	appStore  *store.Store
)

var rootCmd = &cobra.Command{
	Use:   "tempo",
	Short: "Track time against a folder tree of projects",
	Long: `tempo is a personal time tracker. Projects (modules) live in nested
folders; logged time rolls up through the tree so every folder shows the
total hours spent anywhere beneath it.

Commands talk to a tempo server; configure the server URL and access
token in the config file or via TEMPO_SERVER_URL / TEMPO_TOKEN.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		cfg, err := client.LoadConfig(configPath)
		if err != nil {
			return err
		}
		if serverURL != "" {
			cfg.ServerURL = serverURL
		}
		if token != "" {
			cfg.Token = token
		}

		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelWarn,
		}))

		apiClient = client.New(cfg.ServerURL, cfg.Token, logger)
		session := client.NewTokenSession(cfg.Token)
		appStore = store.New(apiClient, session, logger)
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", client.DefaultConfigPath(), "path to the config file")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "server URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "access token (overrides config)")
}
