package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/openfrag/faceit-stats/internal/config"
	"github.com/openfrag/faceit-stats/internal/models"
)

// lookup command flags.
var (
	// lookupRegion is the ranking region (EU, NA, SA, OCE, SEA).
	lookupRegion string
	// lookupJSON prints the raw result instead of a table.
	lookupJSON bool
	// lookupVerbose enables info-level logging to stderr.
	lookupVerbose bool
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <nickname>",
	Short: "Print a player's recent-match summary",
	Long: `Resolves a FACEIT nickname, aggregates the player's recent CS2 matches
and prints the summary.

Examples:
  faceit-stats lookup s1mple
  faceit-stats lookup ZywOo --region EU --json`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

func init() {
	lookupCmd.Flags().StringVar(&lookupRegion, "region", "", "ranking region (default from DEFAULT_REGION)")
	lookupCmd.Flags().BoolVar(&lookupJSON, "json", false, "print JSON instead of a table")
	lookupCmd.Flags().BoolVarP(&lookupVerbose, "verbose", "v", false, "log upstream activity to stderr")
}

func runLookup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	level := zapcore.WarnLevel
	if lookupVerbose {
		level = zapcore.InfoLevel
	}
	zcfg := zap.NewDevelopmentConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	logger, err := zcfg.Build()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	stats, err := newStatsService(cfg, logger).GetPlayerStats(cmd.Context(), args[0], lookupRegion)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if lookupJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(stats)
	}
	printStatsTable(out, stats)
	return nil
}

// printStatsTable writes a two-column summary table.
func printStatsTable(w io.Writer, s *models.AggregateResult) {
	table := tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))

	rank := "unranked"
	if s.Rank != nil {
		rank = "#" + strconv.Itoa(*s.Rank)
	}

	table.Header("STAT", s.Nickname)
	table.Append("ELO", strconv.Itoa(s.Elo))
	table.Append("RANK ("+s.Region+")", rank)
	table.Append("AVG KILLS", strconv.Itoa(s.AvgKills))
	table.Append("K/D", fmt.Sprintf("%.2f", s.KDRatio))
	table.Append("HS%", strconv.Itoa(s.HSPercentage)+"%")
	table.Append("ACES", strconv.Itoa(s.Ace))
	table.Append("KNIFE KILLS", strconv.Itoa(s.KnifeKills))
	table.Append("MATCHES", strconv.Itoa(s.MatchesAnalyzed))
	table.Render()
}
