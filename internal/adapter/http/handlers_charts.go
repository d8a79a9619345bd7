package adapthttp

import (
	"net/http"

	"weightlog/internal/app"
)

// handleChartWindow returns the trailing 7-day series and axis bounds for
// the selected day: the renderer contract as JSON. Absent points are null,
// never zero.
func (s *Server) handleChartWindow(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	s.mu.Lock()
	window := app.BuildChartWindow(s.journal, s.session.Selected())
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, window)
}
