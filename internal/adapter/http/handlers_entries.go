package adapthttp

import "net/http"

func (s *Server) handleEntriesRecent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	limit := intQuery(r, "limit", 14)

	s.mu.Lock()
	items := s.journal.RecentWindow(limit)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}
