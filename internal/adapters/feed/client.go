package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/internal/domain/rank"
)

// Default client configuration constants.
const (
	defaultTable   = "contest_live"
	defaultLimit   = 500
	defaultTimeout = 30 * time.Second
	restPrefix     = "/rest/v1/"
)

// selectFields is the fixed column set requested from the endpoint.
const selectFields = "account_id,customer_name,country,plan,equity,open_pnl,pct_change,time_taken_hours,updated_at"

// Fetcher retrieves one ordered snapshot per refresh cycle.
type Fetcher interface {
	// Fetch issues a single read and returns the snapshot sorted by
	// percent change descending, nulls last.
	Fetch(ctx context.Context) ([]model.Entrant, error)
}

// Client implements Fetcher against a PostgREST-style read endpoint.
type Client struct {
	baseURL    string
	apiKey     string
	table      string
	limit      int
	httpClient *http.Client
}

// NewClient creates a feed client with configuration options.
func NewClient(opts ...Option) *Client {
	c := &Client{
		table:      defaultTable,
		limit:      defaultLimit,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// row mirrors one JSON object returned by the endpoint. Nullable
// columns decode into pointers; unknown fields are ignored.
type row struct {
	AccountID      string   `json:"account_id"`
	CustomerName   string   `json:"customer_name"`
	Country        string   `json:"country"`
	Plan           string   `json:"plan"`
	Equity         *float64 `json:"equity"`
	OpenPnL        *float64 `json:"open_pnl"`
	PctChange      *float64 `json:"pct_change"`
	TimeTakenHours *float64 `json:"time_taken_hours"`
	UpdatedAt      string   `json:"updated_at"`
}

// Fetch issues the read and normalizes rows into the fixed Entrant
// shape. The server already orders by pct_change descending nulls
// last; the result is re-sorted with the same rule so ranking never
// depends on the remote honoring the order parameter.
func (c *Client) Fetch(ctx context.Context) ([]model.Entrant, error) {
	if strings.TrimSpace(c.baseURL) == "" || strings.TrimSpace(c.apiKey) == "" {
		return nil, ErrMissingConfig
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %w", ErrFetch, err)
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		// Drain so the connection can be reused; the body is not reported
		// because error payloads may echo request headers.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("%w: unexpected status %d", ErrFetch, resp.StatusCode)
	}

	var rows []row
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("%w: decode body: %w", ErrFetch, err)
	}

	entrants := make([]model.Entrant, 0, len(rows))
	for _, r := range rows {
		entrants = append(entrants, r.normalize())
	}
	rank.SortByPctChange(entrants)
	return entrants, nil
}

// endpoint builds the PostgREST query URL with the fixed field list,
// server-side ordering and row cap.
func (c *Client) endpoint() string {
	q := url.Values{}
	q.Set("select", selectFields)
	q.Set("order", "pct_change.desc.nullslast")
	q.Set("limit", strconv.Itoa(c.limit))
	return strings.TrimRight(c.baseURL, "/") + restPrefix + c.table + "?" + q.Encode()
}

// normalize converts a decoded row to the fixed Entrant shape with
// defaulted nulls. PctChange and TimeTakenHours keep their nil-ness
// so ranking can push missing values to the tail.
func (r row) normalize() model.Entrant {
	e := model.Entrant{
		AccountID:      strings.TrimSpace(r.AccountID),
		CustomerName:   r.CustomerName,
		Country:        r.Country,
		Plan:           r.Plan,
		PctChange:      r.PctChange,
		TimeTakenHours: r.TimeTakenHours,
	}
	if r.Equity != nil {
		e.Equity = *r.Equity
	}
	if r.OpenPnL != nil {
		e.OpenPnL = *r.OpenPnL
	}
	if ts, err := time.Parse(time.RFC3339, r.UpdatedAt); err == nil {
		e.UpdatedAt = ts
	}
	return e
}
