// Package cli holds the faceit-stats command tree.
package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/openfrag/faceit-stats/internal/config"
	"github.com/openfrag/faceit-stats/internal/faceit"
	"github.com/openfrag/faceit-stats/internal/logic"
)

// envFile is the dotenv file loaded before configuration is read.
var envFile string

var rootCmd = &cobra.Command{
	Use:   "faceit-stats",
	Short: "FACEIT CS2 player stats and stream overlay",
	Long:  "Aggregate a FACEIT player's recent CS2 matches and serve them as a web page, OBS overlay and JSON API.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", envFile, err)
		}
		return nil
	},
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the environment")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(lookupCmd)
}

// newLogger builds the process logger for cfg.Env.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// newStatsService wires the FACEIT client into the stats pipeline.
func newStatsService(cfg *config.Config, logger *zap.Logger) logic.PlayerStatsService {
	client := faceit.NewClient(faceit.ClientConfig{
		BaseURL: cfg.BaseURL,
		Token:   cfg.APIToken,
		Timeout: cfg.UpstreamTimeout,
		Logger:  logger,
	})

	return logic.NewPlayerStatsService(logic.StatsConfig{
		Sessions:       func() logic.FaceitSession { return client.NewSession() },
		Logger:         logger,
		Game:           cfg.GameID,
		DefaultRegion:  cfg.DefaultRegion,
		HistoryLimit:   cfg.MatchHistoryLimit,
		MaxConcurrency: cfg.MaxConcurrentExtractions,
		Timeout:        cfg.LookupTimeout,
	})
}
