// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	service "github.com/okian/podium/internal/app"
	"github.com/okian/podium/internal/domain/countdown"
	"github.com/okian/podium/internal/domain/country"
	"github.com/okian/podium/internal/domain/model"
)

// Dependencies required by HTTP handlers. Using an interface bundle
// keeps the handler layer loosely coupled to the service package.
type Dependencies interface {
	// TopN returns the first n standings of the current snapshot.
	TopN(ctx context.Context, n int) ([]model.Standing, error)

	// Standing returns one account's current row.
	Standing(ctx context.Context, accountID string) (model.Standing, error)

	// Countdown reports the contest reset target and remaining time.
	Countdown() (service.CountdownStatus, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler      *HealthHandler
	statsHandler       *StatsHandler
	leaderboardHandler *LeaderboardHandler
	standingHandler    *StandingHandler
	countdownHandler   *CountdownHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, maxLimit int) *Server {
	return &Server{
		healthHandler:      NewHealthHandler(),
		statsHandler:       NewStatsHandler(statsProvider),
		leaderboardHandler: NewLeaderboardHandler(deps, maxLimit),
		standingHandler:    NewStandingHandler(deps),
		countdownHandler:   NewCountdownHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/leaderboard", MetricsMiddleware(s.leaderboardHandler.HandleGetLeaderboard, "leaderboard"))
	mux.HandleFunc("/standing/", MetricsMiddleware(s.standingHandler.HandleGetStanding, "standing"))
	mux.HandleFunc("/countdown", MetricsMiddleware(s.countdownHandler.HandleGetCountdown, "countdown"))
}

// standingResponse is the JSON shape of one leaderboard row. The free
// text country is resolved to a flag code here, at the presentation
// boundary; unresolvable names pass through unchanged.
type standingResponse struct {
	Rank         int      `json:"rank"`
	AccountID    string   `json:"account_id"`
	CustomerName string   `json:"customer_name"`
	Country      string   `json:"country"`
	CountryCode  string   `json:"country_code"`
	Plan         string   `json:"plan"`
	Equity       float64  `json:"equity"`
	OpenPnL      float64  `json:"open_pnl"`
	PctChange    *float64 `json:"pct_change"`
	TimeTaken    string   `json:"time_taken"`
	Movement     string   `json:"movement"`
	PrevRank     *int     `json:"prev_rank,omitempty"`
	Prize        string   `json:"prize,omitempty"`
	UpdatedAt    string   `json:"updated_at,omitempty"`
}

func toStandingResponse(st model.Standing) standingResponse {
	resp := standingResponse{
		Rank:         st.Rank,
		AccountID:    st.AccountID,
		CustomerName: st.CustomerName,
		Country:      st.Country,
		CountryCode:  country.Resolve(st.Country),
		Plan:         st.Plan,
		Equity:       st.Equity,
		OpenPnL:      st.OpenPnL,
		PctChange:    st.PctChange,
		Movement:     string(st.Movement),
		Prize:        st.Prize,
	}
	if st.TimeTakenHours != nil {
		resp.TimeTaken = countdown.FormatHours(*st.TimeTakenHours)
	}
	if st.PrevRank >= 0 {
		prev := st.PrevRank
		resp.PrevRank = &prev
	}
	if !st.UpdatedAt.IsZero() {
		resp.UpdatedAt = st.UpdatedAt.Format(time.RFC3339)
	}
	return resp
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
