package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/animebay/animebay-scraper/catalog"
	"github.com/animebay/animebay-scraper/internal/config"
	"github.com/animebay/animebay-scraper/models"
	"github.com/animebay/animebay-scraper/store"
)

var (
	flagConfig    string
	flagDebug     bool
	flagUserID    string
	flagUserName  string
	flagUserEmail string
)

// set by PersistentPreRunE, closed by PersistentPostRunE
var site *catalog.Catalog

var rootCmd = &cobra.Command{
	Use:               "animebay",
	Short:             "Browse witanime from the terminal",
	Long:              `animebay scrapes the witanime catalog, decodes its video servers and prints JSON.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRunE: func(*cobra.Command, []string) error {
		if site == nil {
			return nil
		}
		return site.Close()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", defaultConfig(), "TOML config file")
	rootCmd.PersistentFlags().BoolVarP(&flagDebug, "debug", "x", false, "Debug logging to stderr")
	rootCmd.PersistentFlags().StringVar(&flagUserID, "user-id", os.Getenv("ANIMEBAY_USER_ID"), "Signed in user of comment and profile commands")
	rootCmd.PersistentFlags().StringVar(&flagUserName, "user-name", "", "Display name of the signed in user")
	rootCmd.PersistentFlags().StringVar(&flagUserEmail, "user-email", "", "Email of the signed in user")

	rootCmd.AddCommand(searchCmd, latestCmd, scheduleCmd, detailsCmd, episodesCmd, serversCmd, downloadsCmd, commentsCmd, profileCmd)
}

func defaultConfig() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "animebay", "config.toml")
}

func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagDebug {
		cfg.LogLevel = "debug"
	}

	handler := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: flagDebug,
		TimeFormat:      "15:04:05",
		Prefix:          "animebay",
		Level:           log.Level(cfg.Level()),
	})
	logger := slog.New(handler)
	slog.SetDefault(logger)

	var auth store.StaticAuth
	if flagUserID != "" {
		auth.User = &models.User{
			ID:          flagUserID,
			Email:       flagUserEmail,
			DisplayName: flagUserName,
		}
	}

	site, err = catalog.Open(cmd.Context(), cfg, auth, logger)
	if err != nil {
		return fmt.Errorf("opening catalog: %w", err)
	}

	return nil
}

func output(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
