package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// GetPlayerStats returns the aggregated recent-match stats for a nickname
// @Summary Get Player Stats
// @Description Aggregate the last 20 CS2 matches of a FACEIT player
// @Tags Player
// @Produce json
// @Param nickname path string true "FACEIT nickname"
// @Param region query string false "Ranking region (EU, NA, SA, OCE, SEA)"
// @Success 200 {object} models.AggregateResult "Player Stats"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 502 {object} map[string]string "Upstream Failure"
// @Router /api/v1/players/{nickname}/stats [get]
func (h *Handler) GetPlayerStats(w http.ResponseWriter, r *http.Request) {
	q, err := h.parseQuery(chi.URLParam(r, "nickname"), r.URL.Query().Get("region"))
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	stats, err := h.playerStats.GetPlayerStats(r.Context(), q.Nickname, q.Region)
	if err != nil {
		status, msg := lookupStatus(err)
		if status != http.StatusNotFound {
			h.logger.Errorw("Failed to get player stats", "nickname", q.Nickname, "region", q.Region, "error", err)
		}
		h.errorResponse(w, status, msg)
		return
	}

	h.jsonResponse(w, http.StatusOK, stats)
}
