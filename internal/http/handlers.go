package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"wahlboard/internal/view"
)

// handleDashboard renders the main dashboard page.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if s.templates == nil {
		slog.ErrorContext(r.Context(), "Templates not loaded", "url", r.URL.Path)
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}

	defaults := view.DefaultControls(s.data)
	data := struct {
		States       []string
		DefaultState string
		MinTopN      int
		MaxTopN      int
		DatasetEmpty bool
	}{
		States:       s.data.States(),
		DefaultState: defaults.State,
		MinTopN:      2,
		MaxTopN:      6,
		DatasetEmpty: s.data.Empty(),
	}

	if err := s.templates.ExecuteTemplate(w, "dashboard.html", data); err != nil {
		slog.ErrorContext(r.Context(), "Dashboard template execution failed", "error", err, "template", "dashboard.html")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// handleSummary renders the KPI cards partial for the current controls.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	page := view.Render(s.parseControls(r), s.data)
	data := struct {
		Cards []view.Card
		Err   string
	}{Cards: page.Cards, Err: page.Err}

	if s.templates == nil {
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}
	if err := s.templates.ExecuteTemplate(w, "summary_cards.html", data); err != nil {
		slog.ErrorContext(r.Context(), "Summary template execution failed", "error", err, "template", "summary_cards.html")
		_, _ = w.Write([]byte(`<div class="alert alert-danger">Error rendering summary</div>`))
	}
}

// handleChart returns the chart specification as JSON for the frontend
// chart renderer.
func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	page := view.Render(s.parseControls(r), s.data)
	resp := struct {
		view.ChartSpec
		Error string `json:"error,omitempty"`
	}{ChartSpec: page.Chart, Error: page.Err}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.ErrorContext(r.Context(), "Chart spec encoding failed", "error", err)
	}
}
