package web

import (
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/labstack/echo/v4"
	lo "github.com/samber/lo"

	ccfg "prod-stats/connectors/config"
	ccsv "prod-stats/connectors/csv"
	"prod-stats/domain/config"
	"prod-stats/domain/production"
)

// Run starts the Echo web server exposing the aggregation engine as JSON APIs
// over the imported section CSVs, plus an optional SPA dashboard.
//
// Usage:
//
//	prod-stats web [-addr :8080] [-ui ./ui/dist]
//
// Endpoints:
//
//	GET  /api/sections                        -> configured sections
//	GET  /api/sections/:key/dates             -> canonical dates, ascending
//	GET  /api/sections/:key/table?date=       -> interleaved table rows (latest date if omitted)
//	GET  /api/sections/:key/matrix?from=&to=  -> date x machine x shift pivot
//	GET  /api/sections/:key/ranking?days=     -> leaderboard, days in {10,15,30,60}
//	GET  /api/sections/:key/breakdown?date=&shift= -> pie fractions + legend
//	POST /api/sections/:key/reload            -> rebuild the section store from disk
//
// When -ui points to a built Vite app (index.html exists), static files are
// served at / and unknown routes fall back to index.html for SPA routing.
func Run(args []string) error {
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	addr := fs.String("addr", ":8080", "http listen address (host:port)")
	uiDir := fs.String("ui", "./ui/dist", "directory containing built UI (Vite dist)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := ccfg.Load(ccfg.Resolve())
	if err != nil {
		return err
	}

	srv := &server{cfg: cfg, stores: map[string]*production.Store{}}
	for _, section := range cfg.Sections {
		if err := srv.reload(section.Key); err != nil {
			slog.Warn("web.load_failed", "section", section.Key, "err", err)
		}
	}

	e := echo.New()

	api := e.Group("/api")
	api.GET("/sections", srv.handleSections)
	api.GET("/sections/:key/dates", srv.handleDates)
	api.GET("/sections/:key/table", srv.handleTable)
	api.GET("/sections/:key/matrix", srv.handleMatrix)
	api.GET("/sections/:key/ranking", srv.handleRanking)
	api.GET("/sections/:key/breakdown", srv.handleBreakdown)
	api.POST("/sections/:key/reload", srv.handleReload)

	// Static UI (optional)
	indexPath := filepath.Join(*uiDir, "index.html")
	if fi, err := os.Stat(indexPath); err == nil && !fi.IsDir() {
		e.Static("/", *uiDir)
		e.GET("/", func(c echo.Context) error { return c.File(indexPath) })

		// Fallback to index.html for non-API 404s (SPA routing)
		e.HTTPErrorHandler = func(err error, c echo.Context) {
			if he, ok := err.(*echo.HTTPError); ok && he.Code == http.StatusNotFound {
				if !strings.HasPrefix(c.Request().URL.Path, "/api") {
					_ = c.File(indexPath)
					return
				}
			}
			e.DefaultHTTPErrorHandler(err, c)
		}
	}

	return e.Start(*addr)
}

// server holds one immutable store per section. Reload builds a fresh store
// and swaps the pointer under the lock; queries read whichever store is
// current and never see a partially loaded dataset.
type server struct {
	cfg    *config.Config
	mu     sync.RWMutex
	stores map[string]*production.Store
}

func (s *server) store(key string) (*production.Store, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.stores[key]
	return st, ok
}

func (s *server) reload(key string) error {
	section, ok := s.cfg.SectionByKey(key)
	if !ok {
		return errors.New("unknown section " + key)
	}
	records, err := ccsv.ReadProductionCSV(filepath.Join(s.cfg.DataDir, section.Key+".csv"))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	store := production.NewStore(records)

	s.mu.Lock()
	s.stores[key] = store
	s.mu.Unlock()
	return nil
}

func (s *server) handleSections(c echo.Context) error {
	type sectionOut struct {
		Key   string `json:"key"`
		Label string `json:"label"`
	}
	out := lo.Map(s.cfg.Sections, func(sec config.Section, _ int) sectionOut {
		return sectionOut{Key: sec.Key, Label: sec.Label}
	})
	return c.JSON(http.StatusOK, out)
}

func (s *server) handleDates(c echo.Context) error {
	store, ok := s.store(c.Param("key"))
	if !ok {
		return sectionNotFound(c)
	}
	return c.JSON(http.StatusOK, store.Dates())
}

func (s *server) handleTable(c echo.Context) error {
	store, ok := s.store(c.Param("key"))
	if !ok {
		return sectionNotFound(c)
	}
	day, ok := production.ParseDay(c.QueryParam("date"))
	if !ok {
		// Default to the latest available date, the view the dashboard opens on.
		if day, ok = store.Latest(); !ok {
			return c.JSON(http.StatusOK, map[string]any{"date": nil, "rows": []production.Record{}})
		}
	}
	rows := production.InterleaveByMachine(store.Records(day))
	return c.JSON(http.StatusOK, map[string]any{"date": day, "rows": rows})
}

func (s *server) handleMatrix(c echo.Context) error {
	store, ok := s.store(c.Param("key"))
	if !ok {
		return sectionNotFound(c)
	}
	m := production.BuildMatrixFromBounds(store, c.QueryParam("from"), c.QueryParam("to"))
	return c.JSON(http.StatusOK, m)
}

func (s *server) handleRanking(c echo.Context) error {
	store, ok := s.store(c.Param("key"))
	if !ok {
		return sectionNotFound(c)
	}
	days, err := strconv.Atoi(c.QueryParam("days"))
	if err != nil || !production.ValidWindow(days) {
		return c.JSON(http.StatusBadRequest, map[string]any{
			"error": "days must be one of 10, 15, 30, 60",
		})
	}
	board, ok := production.BuildLeaderboard(store, days)
	if !ok {
		return c.JSON(http.StatusOK, map[string]any{"no_data": true})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"window_days":  board.WindowDays,
		"window_label": board.WindowLabel(),
		"from":         board.From,
		"to":           board.To,
		"entries":      board.Entries,
	})
}

func (s *server) handleBreakdown(c echo.Context) error {
	store, ok := s.store(c.Param("key"))
	if !ok {
		return sectionNotFound(c)
	}
	day, ok := production.ParseDay(c.QueryParam("date"))
	if !ok {
		return c.JSON(http.StatusOK, map[string]any{"no_data": true})
	}
	shift := production.CanonicalShift(c.QueryParam("shift"))
	if shift == production.ShiftOther {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "shift must be A or B"})
	}
	slices := production.BuildBreakdown(production.ShiftRecords(store, day, shift))
	if len(slices) == 0 {
		return c.JSON(http.StatusOK, map[string]any{"no_data": true})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"slices": slices,
		"legend": production.LegendOrder(slices),
	})
}

func (s *server) handleReload(c echo.Context) error {
	key := c.Param("key")
	if _, ok := s.cfg.SectionByKey(key); !ok {
		return sectionNotFound(c)
	}
	if err := s.reload(key); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"reloaded": key})
}

func sectionNotFound(c echo.Context) error {
	return c.JSON(http.StatusNotFound, map[string]any{"error": "unknown section"})
}
