// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"errors"
	"net/http"
	"strings"

	service "github.com/okian/podium/internal/app"
)

// StandingHandler handles single-account standing requests.
type StandingHandler struct {
	deps Dependencies
}

// NewStandingHandler creates a new standing handler.
func NewStandingHandler(deps Dependencies) *StandingHandler {
	return &StandingHandler{deps: deps}
}

// HandleGetStanding handles GET /standing/{account_id} requests.
func (h *StandingHandler) HandleGetStanding(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_standing"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	accountID := strings.TrimPrefix(r.URL.Path, "/standing/")
	if accountID == "" || strings.Contains(accountID, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	st, err := h.deps.Standing(r.Context(), accountID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, toStandingResponse(st))
}
