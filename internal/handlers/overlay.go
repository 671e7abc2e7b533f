package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/openfrag/faceit-stats/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// indexPage is the data behind index.html.
type indexPage struct {
	Nickname string
	Region   string
	Regions  []string
	Stats    *models.AggregateResult
	Error    string
}

var regions = []string{"EU", "NA", "SA", "OCE", "SEA"}

// Index renders the lookup form. A POST submits nickname and region and
// renders the result below the form.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	page := indexPage{Region: h.defaultRegion, Regions: regions}

	if r.Method != http.MethodPost {
		h.render(w, http.StatusOK, "index.html", page)
		return
	}

	if err := r.ParseForm(); err != nil {
		page.Error = "Invalid form submission"
		h.render(w, http.StatusBadRequest, "index.html", page)
		return
	}
	page.Nickname = r.PostFormValue("nickname")
	if region := r.PostFormValue("region"); region != "" {
		page.Region = region
	}

	q, err := h.parseQuery(page.Nickname, page.Region)
	if err != nil {
		page.Error = validationMessage(err)
		h.render(w, http.StatusBadRequest, "index.html", page)
		return
	}
	page.Nickname, page.Region = q.Nickname, q.Region

	stats, err := h.playerStats.GetPlayerStats(r.Context(), q.Nickname, q.Region)
	if err != nil {
		status, msg := lookupStatus(err)
		if status != http.StatusNotFound {
			h.logger.Errorw("Failed to get player stats", "nickname", q.Nickname, "region", q.Region, "error", err)
		}
		page.Error = msg
		h.render(w, status, "index.html", page)
		return
	}

	page.Stats = stats
	h.render(w, http.StatusOK, "index.html", page)
}

// OBSView renders the stream overlay for /obs/{nickname}/{region}.
func (h *Handler) OBSView(w http.ResponseWriter, r *http.Request) {
	q, err := h.parseQuery(chi.URLParam(r, "nickname"), chi.URLParam(r, "region"))
	if err != nil {
		http.Error(w, validationMessage(err), http.StatusBadRequest)
		return
	}

	stats, err := h.playerStats.GetPlayerStats(r.Context(), q.Nickname, q.Region)
	if err != nil {
		status, msg := lookupStatus(err)
		if status != http.StatusNotFound {
			h.logger.Errorw("Failed to get overlay stats", "nickname", q.Nickname, "region", q.Region, "error", err)
		}
		http.Error(w, msg, status)
		return
	}

	h.render(w, http.StatusOK, "obs.html", stats)
}

// render executes into a buffer first so a template error can still
// produce a clean 500.
func (h *Handler) render(w http.ResponseWriter, status int, name string, data interface{}) {
	var buf bytes.Buffer
	if err := h.templates.ExecuteTemplate(&buf, name, data); err != nil {
		h.logger.Errorw("Template render failed", "template", name, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}
