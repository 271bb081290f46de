package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/oauth2/google"
)

const (
	baseURL        = "https://sheets.googleapis.com/v4/spreadsheets"
	readonlyScope  = "https://www.googleapis.com/auth/spreadsheets.readonly"
	requestTimeout = 30 * time.Second
)

// Client reads value ranges from the Google Sheets API. It authenticates
// either with an API key (public sheets) or a service account key; the
// service account path exchanges a signed JWT for access tokens via the
// oauth2 token source, which caches and refreshes them.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates an API-key client for publicly readable sheets.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// NewServiceAccountClient creates a client authenticating with a service
// account JSON key (read-only Sheets scope).
func NewServiceAccountClient(ctx context.Context, keyJSON []byte) (*Client, error) {
	cfg, err := google.JWTConfigFromJSON(keyJSON, readonlyScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse service account JSON: %w", err)
	}
	hc := cfg.Client(ctx)
	hc.Timeout = requestTimeout
	return &Client{baseURL: baseURL, httpClient: hc}, nil
}

// valuesResponse models the values.get payload. Cells arrive as strings or
// numbers depending on the sheet's formatting.
type valuesResponse struct {
	Range  string  `json:"range"`
	Values [][]any `json:"values"`
}

// Values fetches one A1-notation range of a spreadsheet and returns the rows
// as strings, first row included (callers treat it as the header). An empty
// sheet yields an empty slice, not an error.
func (c *Client) Values(ctx context.Context, spreadsheetID, readRange string) ([][]string, error) {
	u := fmt.Sprintf("%s/%s/values/%s", c.baseURL, spreadsheetID, url.PathEscape(readRange))
	if c.apiKey != "" {
		u += "?key=" + url.QueryEscape(c.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sheets request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("sheets API error: %d %s", resp.StatusCode, string(body))
	}

	var vr valuesResponse
	if err := json.NewDecoder(resp.Body).Decode(&vr); err != nil {
		return nil, fmt.Errorf("failed to decode values response: %w", err)
	}

	rows := make([][]string, 0, len(vr.Values))
	for _, raw := range vr.Values {
		row := make([]string, len(raw))
		for i, cell := range raw {
			row[i] = cellString(cell)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// cellString renders a JSON cell value as text. Numbers keep their shortest
// representation so "100" does not become "100.000000".
func cellString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case nil:
		return ""
	}
	return fmt.Sprintf("%v", v)
}
