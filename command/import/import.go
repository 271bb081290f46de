package cmdimport

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	lo "github.com/samber/lo"

	ccfg "prod-stats/connectors/config"
	ccsv "prod-stats/connectors/csv"
	"prod-stats/connectors/sheets"
	"prod-stats/domain/config"
	"prod-stats/domain/production"
)

// Run executes the import subcommand: fetch every configured section's sheet
// tab, normalize the rows, and persist one CSV per section under the data
// directory. A failed or empty fetch is not fatal; the section just comes out
// with no rows, same as a genuinely empty sheet.
func Run(args []string) error {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	sectionFilter := fs.String("section", "", "Comma-separated list of section keys to import (optional)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := ccfg.Load(ccfg.Resolve())
	if err != nil {
		return err
	}

	client, err := buildClient(cfg)
	if err != nil {
		return err
	}

	sections := cfg.Sections
	if *sectionFilter != "" {
		wanted := lo.SliceToMap(strings.Split(*sectionFilter, ","), func(s string) (string, struct{}) {
			return strings.TrimSpace(s), struct{}{}
		})
		sections = lo.Filter(sections, func(s config.Section, _ int) bool {
			_, ok := wanted[s.Key]
			return ok
		})
	}
	if len(sections) == 0 {
		return fmt.Errorf("import: no sections to import")
	}

	ctx := context.Background()
	for _, section := range sections {
		if section.Exclude {
			slog.Info("import.skip", "section", section.Key)
			continue
		}
		rows, err := client.Values(ctx, section.SheetID, section.Range)
		if err != nil {
			// Degrade to "no rows": aggregation must behave the same whether
			// the fetch failed or the sheet was empty.
			slog.Warn("import.fetch_failed", "section", section.Key, "err", err)
			rows = nil
		}
		records := production.NormalizeRows(rows)
		path := filepath.Join(cfg.DataDir, section.Key+".csv")
		if err := ccsv.WriteProductionCSV(path, records); err != nil {
			return err
		}
		slog.Info("import.section_done", "section", section.Key, "rows", len(rows), "records", len(records))
	}
	return nil
}

// buildClient picks the auth mode: service account key when configured,
// otherwise an API key read from the configured env var.
func buildClient(cfg *config.Config) (*sheets.Client, error) {
	if cfg.Sheets.ServiceAccountFile != "" {
		keyJSON, err := os.ReadFile(cfg.Sheets.ServiceAccountFile)
		if err != nil {
			return nil, fmt.Errorf("read service account key: %w", err)
		}
		return sheets.NewServiceAccountClient(context.Background(), keyJSON)
	}
	envName := cfg.Sheets.APIKeyEnv
	if envName == "" {
		envName = "SHEETS_API_KEY"
	}
	apiKey := os.Getenv(envName)
	if apiKey == "" {
		return nil, fmt.Errorf("no sheets credentials: set %s or sheets.service_account_file", envName)
	}
	return sheets.NewClient(apiKey), nil
}
