package csv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"prod-stats/domain/production"
)

var productionHeaders = []string{"date", "machine", "shift", "target", "actual", "variance", "percent", "items"}

// WriteProductionCSV persists normalized records for one section. Dates are
// written in their canonical YYYY-MM-DD form so the file re-reads cleanly.
func WriteProductionCSV(path string, records []production.Record) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	defer w.Flush()
	if err := w.Write(productionHeaders); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			r.Date.String(),
			r.Machine,
			r.Shift,
			formatNumber(r.Target),
			formatNumber(r.Actual),
			formatNumber(r.Variance),
			formatNumber(r.Percent),
			r.Items,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

// ReadProductionCSV loads a section's persisted records. The header row is
// validated for the expected columns; data rows go back through the row
// normalizer, so hand-edited files with bad dates degrade the same way raw
// sheet rows do.
func ReadProductionCSV(path string) ([]production.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	head, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	idx := indexMap(head)
	for _, col := range productionHeaders {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("%s missing column %s", filepath.Base(path), col)
		}
	}

	var records []production.Record
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		cells := make([]string, len(productionHeaders))
		for i, col := range productionHeaders {
			if j := idx[col]; j < len(rec) {
				cells[i] = rec[j]
			}
		}
		if normalized, ok := production.NormalizeRow(cells); ok {
			records = append(records, normalized)
		}
	}
	return records, nil
}

func indexMap(headers []string) map[string]int {
	m := map[string]int{}
	for i, h := range headers {
		m[strings.TrimSpace(strings.ToLower(h))] = i
	}
	return m
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
