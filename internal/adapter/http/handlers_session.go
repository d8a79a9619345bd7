package adapthttp

import (
	"errors"
	"net/http"
	"time"

	"weightlog/internal/app"
	"weightlog/internal/domain"
)

func noticeString(n app.Notice) string {
	switch n {
	case app.NoticeSaved:
		return "saved"
	case app.NoticeInvalid:
		return "invalid"
	case app.NoticeBlocked:
		return "blocked"
	default:
		return ""
	}
}

// sessionPayload builds the client view of the session. Callers hold s.mu.
func (s *Server) sessionPayload() map[string]any {
	day := s.session.Selected()
	payload := map[string]any{
		"selectedDay": day.String(),
		"label":       day.Label(),
		"staged":      s.session.Staged(),
		"notice":      noticeString(s.session.Notice()),
	}
	if e, ok := s.session.CurrentEntry(); ok {
		payload["entry"] = e
	} else {
		payload["entry"] = nil
	}
	return payload
}

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	s.mu.Lock()
	payload := s.sessionPayload()
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, payload)
}

func (s *Server) handleNavigate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var body struct {
		Direction string `json:"direction"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var res app.Result
	switch body.Direction {
	case "prev":
		res = s.session.NavigatePrev(r.Context())
	case "next":
		res = s.session.NavigateNext(r.Context())
	default:
		writeError(w, http.StatusBadRequest, errors.New(`direction must be "prev" or "next"`))
		return
	}
	s.writeTransition(w, res)
}

func (s *Server) handleJump(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var body struct {
		Day string `json:"day"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	day, err := domain.ParseDate(body.Day)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.writeTransition(w, s.session.JumpTo(r.Context(), day))
}

func (s *Server) handleWeight(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var body struct {
		Text string `json:"text"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.SetStaged(body.Text)
	writeJSON(w, http.StatusOK, s.sessionPayload())
}

// handleGesture classifies a finished pointer gesture with the same
// recognizer and thresholds every front-end shares, then applies the
// resulting navigation.
func (s *Server) handleGesture(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var body struct {
		Dx        float64 `json:"dx"`
		Dy        float64 `json:"dy"`
		ElapsedMs int64   `json:"elapsedMs"`
		Cancelled bool    `json:"cancelled"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	action := app.GestureSnapBack
	if !body.Cancelled {
		start := time.Now()
		s.recognizer.Begin(0, 0, start)
		s.recognizer.Move(body.Dx, body.Dy)
		action = s.recognizer.End(start.Add(time.Duration(body.ElapsedMs) * time.Millisecond))
	} else {
		s.recognizer.Cancel()
	}

	var res app.Result
	switch action {
	case app.GesturePrev:
		res = s.session.NavigatePrev(r.Context())
	case app.GestureNext:
		res = s.session.NavigateNext(r.Context())
	}

	payload := s.transitionPayload(res)
	payload["action"] = gestureString(action)
	writeJSON(w, http.StatusOK, payload)
}

func gestureString(a app.GestureAction) string {
	switch a {
	case app.GesturePrev:
		return "prev"
	case app.GestureNext:
		return "next"
	default:
		return "snap-back"
	}
}

// transitionPayload packages a navigation result with the new session view
// and the recomputed chart window. Callers hold s.mu.
func (s *Server) transitionPayload(res app.Result) map[string]any {
	return map[string]any{
		"moved":   res.Moved,
		"saved":   res.Saved,
		"session": s.sessionPayload(),
		"chart":   app.BuildChartWindow(s.journal, s.session.Selected()),
	}
}

func (s *Server) writeTransition(w http.ResponseWriter, res app.Result) {
	if res.Err != nil && !errors.Is(res.Err, app.ErrFutureDay) {
		// Repository write failure: the transition happened, report both.
		payload := s.transitionPayload(res)
		payload["error"] = res.Err.Error()
		writeJSON(w, http.StatusInternalServerError, payload)
		return
	}
	writeJSON(w, http.StatusOK, s.transitionPayload(res))
}
