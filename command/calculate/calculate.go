package calculate

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	ccfg "prod-stats/connectors/config"
	ccsv "prod-stats/connectors/csv"
	"prod-stats/domain/production"
)

// Run executes the calculate subcommand: for every imported section, rebuild
// the date-grouped store from data/<section>.csv and precompute the report
// CSVs the dashboard can serve statically — one leaderboard per recognized
// window plus a per date x shift summary.
func Run(args []string) error {
	fs := flag.NewFlagSet("calculate", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 0 {
		return fmt.Errorf("calculate: no arguments expected")
	}

	cfg, err := ccfg.Load(ccfg.Resolve())
	if err != nil {
		return err
	}

	for _, section := range cfg.Sections {
		records, err := ccsv.ReadProductionCSV(filepath.Join(cfg.DataDir, section.Key+".csv"))
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				slog.Warn("calculate.not_imported", "section", section.Key)
				continue
			}
			return err
		}
		store := production.NewStore(records)

		for _, days := range production.WindowSizes {
			board, ok := production.BuildLeaderboard(store, days)
			if !ok {
				slog.Info("calculate.no_data", "section", section.Key, "window", days)
				continue
			}
			name := fmt.Sprintf("%s_machine_performance_%d.csv", section.Key, days)
			if err := ccsv.WriteLeaderboardCSV(filepath.Join(cfg.DataDir, name), board); err != nil {
				return err
			}
		}

		summary := filepath.Join(cfg.DataDir, section.Key+"_daily_summary.csv")
		if err := ccsv.WriteDailySummaryCSV(summary, store); err != nil {
			return err
		}
		slog.Info("calculate.section_done", "section", section.Key, "dates", len(store.Dates()))
	}
	return nil
}
