// Package adapthttp is the driving HTTP adapter: a JSON API over the
// journal session for the browser front-end, plus static file serving for
// that front-end itself.
package adapthttp

import (
	"net/http"
	"sync"

	"weightlog/internal/app"
)

// Server routes requests to the application session. Session state is
// mutated by exactly one request at a time; the mutex stands in for the
// single event-loop thread the front-end runs on.
type Server struct {
	mu         sync.Mutex
	session    *app.Session
	journal    *app.Journal
	recognizer *app.Recognizer
	webDir     string
}

// New creates a Server wired to the given session and journal. The gesture
// config sets the swipe thresholds applied to gestures reported by clients.
func New(session *app.Session, journal *app.Journal, gesture app.GestureConfig, webDir string) *Server {
	return &Server{
		session:    session,
		journal:    journal,
		recognizer: app.NewRecognizer(gesture),
		webDir:     webDir,
	}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	api.HandleFunc("/session", s.handleSession)
	api.HandleFunc("/session/navigate", s.handleNavigate)
	api.HandleFunc("/session/jump", s.handleJump)
	api.HandleFunc("/session/weight", s.handleWeight)
	api.HandleFunc("/session/gesture", s.handleGesture)

	api.HandleFunc("/entries/recent", s.handleEntriesRecent)
	api.HandleFunc("/charts/window", s.handleChartWindow)

	root := http.NewServeMux()
	root.Handle("/api/", http.StripPrefix("/api", api))
	root.Handle("/", spaFromDisk(s.webDir))

	return s.loggingMiddleware(withNoCache(root))
}
