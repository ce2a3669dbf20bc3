package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// DefaultBaseURL is the Google Sheets v4 REST endpoint.
const DefaultBaseURL = "https://sheets.googleapis.com"

// Store fetches a named table as raw rows. Rows are ordered lists of cell
// strings and may be ragged or empty; row 0, when present, is the header.
// Successive calls carry no transactional guarantee between them.
type Store interface {
	Table(ctx context.Context, name, cellRange string) ([][]string, error)
}

// Client reads spreadsheet values over the Sheets v4 REST API using an API
// key. It performs no caching and no retries; a failed fetch aborts the
// request that needed it.
type Client struct {
	baseURL       string
	spreadsheetID string
	apiKey        string
	http          *http.Client
}

func NewClient(baseURL, spreadsheetID, apiKey string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:       baseURL,
		spreadsheetID: spreadsheetID,
		apiKey:        apiKey,
		http:          &http.Client{Timeout: timeout},
	}
}

// Table fetches one sheet. cellRange narrows the columns (e.g. "A:G"); an
// empty range fetches the whole sheet.
func (c *Client) Table(ctx context.Context, name, cellRange string) ([][]string, error) {
	rng := name
	if cellRange != "" {
		rng = name + "!" + cellRange
	}
	endpoint := fmt.Sprintf("%s/v4/spreadsheets/%s/values/%s?key=%s",
		c.baseURL,
		url.PathEscape(c.spreadsheetID),
		url.PathEscape(rng),
		url.QueryEscape(c.apiKey),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("sheets: build request for %q: %w", name, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sheets: fetch %q: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sheets: fetch %q: unexpected status %d", name, resp.StatusCode)
	}

	var body struct {
		Values [][]string `json:"values"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("sheets: decode %q: %w", name, err)
	}
	return body.Values, nil
}
