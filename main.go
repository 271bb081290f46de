package main

import (
	"fmt"
	"log/slog"
	"os"

	cmdcalculate "prod-stats/command/calculate"
	cmdimport "prod-stats/command/import"
	cmdweb "prod-stats/command/web"
)

// Production dashboard stats for multi-section factory report sheets.
// Usage:
//   SHEETS_API_KEY=xxx prod-stats import [-section imd,refill]
//   prod-stats calculate
//   prod-stats web [-addr :8080] [-ui ./ui/dist]
// Notes:
// - import fetches each configured section tab (DATE | MACHINE | SHIFT |
//   TARGET | ACTUAL | EXTRA/LESS | PERCENT | ITEMS) and writes normalized
//   CSVs under the data directory.
// - calculate precomputes leaderboards and daily summaries from the imports.
// - web serves table/matrix/ranking/breakdown queries as JSON.

func main() {
	args := os.Args
	// Initialize slog logger (text to stderr, INFO level for now)
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	slog.SetDefault(slog.New(h))

	if len(args) > 1 {
		sub := args[1]
		rest := append([]string{}, args[2:]...)
		switch sub {
		case "import":
			if err := cmdimport.Run(rest); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			return
		case "calculate":
			if err := cmdcalculate.Run(rest); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			return
		case "web":
			if err := cmdweb.Run(rest); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			return
		}
	}
	fmt.Fprintln(os.Stderr, "usage: prod-stats import [-section <list>] | calculate | web [-addr :8080] [-ui ./ui/dist]\nENV: set CONFIG_PATH to point to a YAML config file (default ./config.yml)")
	os.Exit(2)
}
