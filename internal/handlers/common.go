package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/openfrag/faceit-stats/internal/logic"
)

// statsQuery is the validated input of every stats surface.
type statsQuery struct {
	Nickname string `validate:"required,max=64"`
	Region   string `validate:"required,oneof=EU NA SA OCE SEA"`
}

// parseQuery normalises and validates a nickname/region pair.
func (h *Handler) parseQuery(nickname, region string) (statsQuery, error) {
	q := statsQuery{
		Nickname: strings.TrimSpace(nickname),
		Region:   strings.ToUpper(strings.TrimSpace(region)),
	}
	if q.Region == "" {
		q.Region = h.defaultRegion
	}
	if err := h.validator.Struct(q); err != nil {
		return q, err
	}
	return q, nil
}

// validationMessage turns a validator error into a short user-facing text.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		switch verrs[0].Field() {
		case "Nickname":
			return "Nickname is required (max 64 characters)"
		case "Region":
			return "Region must be one of EU, NA, SA, OCE, SEA"
		}
	}
	return "Invalid request"
}

// lookupStatus maps a stats lookup error to an HTTP status and message.
func lookupStatus(err error) (int, string) {
	switch {
	case errors.Is(err, logic.ErrPlayerNotFound), errors.Is(err, logic.ErrNoMatchData):
		return http.StatusNotFound, "Player not found"
	default:
		return http.StatusBadGateway, "Failed to fetch player stats"
	}
}

// Health check endpoint
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
	})
}

func (h *Handler) jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) errorResponse(w http.ResponseWriter, status int, message string) {
	h.jsonResponse(w, status, map[string]string{"error": message})
}
