// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"time"

	"github.com/okian/podium/internal/domain/countdown"
)

// CountdownHandler handles contest reset countdown requests.
type CountdownHandler struct {
	deps Dependencies
}

// NewCountdownHandler creates a new countdown handler.
func NewCountdownHandler(deps Dependencies) *CountdownHandler {
	return &CountdownHandler{deps: deps}
}

// countdownResponse is the JSON shape of the reset countdown.
type countdownResponse struct {
	Target           string `json:"target"`
	RemainingSeconds int64  `json:"remaining_seconds"`
	Days             int    `json:"days"`
	Hours            int    `json:"hours"`
	Minutes          int    `json:"minutes"`
	Seconds          int    `json:"seconds"`
	Display          string `json:"display"`
}

// HandleGetCountdown handles GET /countdown requests.
func (h *CountdownHandler) HandleGetCountdown(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_countdown"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	status, err := h.deps.Countdown()
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, "not_ready", Wrap(op, err))
		return
	}
	days, hours, mins, secs := countdown.Remaining(status.Remaining)
	writeJSON(w, http.StatusOK, countdownResponse{
		Target:           status.Target.Format(time.RFC3339),
		RemainingSeconds: int64(status.Remaining / time.Second),
		Days:             days,
		Hours:            hours,
		Minutes:          mins,
		Seconds:          secs,
		Display:          status.Display,
	})
}
