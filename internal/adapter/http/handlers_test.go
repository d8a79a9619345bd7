package adapthttp

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"weightlog/internal/adapter/memory"
	"weightlog/internal/app"
	"weightlog/internal/domain"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	journal := app.NewJournal(memory.New())
	session := app.NewSession(journal)
	return New(session, journal, app.DefaultGestureConfig(), t.TempDir()).Handler()
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	out := map[string]any{}
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("bad response body %q: %v", w.Body.String(), err)
		}
	}
	return w, out
}

func TestHealth(t *testing.T) {
	h := newTestHandler(t)
	w, out := doJSON(t, h, http.MethodGet, "/api/health", nil)
	if w.Code != http.StatusOK || out["ok"] != true {
		t.Errorf("unexpected health response: %d %v", w.Code, out)
	}
}

func TestSession_InitialState(t *testing.T) {
	h := newTestHandler(t)
	w, out := doJSON(t, h, http.MethodGet, "/api/session", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if out["selectedDay"] != domain.Today().String() {
		t.Errorf("selectedDay = %v; want today", out["selectedDay"])
	}
	if out["staged"] != "" {
		t.Errorf("staged = %v; want empty", out["staged"])
	}
	if out["entry"] != nil {
		t.Errorf("entry = %v; want null", out["entry"])
	}
}

func TestNavigate_AutoSaves(t *testing.T) {
	h := newTestHandler(t)

	w, _ := doJSON(t, h, http.MethodPut, "/api/session/weight", map[string]any{"text": "180,2"})
	if w.Code != http.StatusOK {
		t.Fatalf("stage weight: status = %d", w.Code)
	}

	w, out := doJSON(t, h, http.MethodPost, "/api/session/navigate", map[string]any{"direction": "prev"})
	if w.Code != http.StatusOK {
		t.Fatalf("navigate: status = %d", w.Code)
	}
	if out["moved"] != true || out["saved"] != true {
		t.Errorf("expected moved+saved, got %v", out)
	}

	session := out["session"].(map[string]any)
	if session["selectedDay"] != domain.Today().Shift(-1).String() {
		t.Errorf("selectedDay = %v; want yesterday", session["selectedDay"])
	}
	if session["notice"] != "saved" {
		t.Errorf("notice = %v; want saved", session["notice"])
	}

	// Moving back to today re-hydrates the staged input from the entry.
	_, out = doJSON(t, h, http.MethodPost, "/api/session/navigate", map[string]any{"direction": "next"})
	session = out["session"].(map[string]any)
	if session["staged"] != "180.2" {
		t.Errorf("staged = %v; want 180.2", session["staged"])
	}
	entry := session["entry"].(map[string]any)
	if entry["weight"] != 180.2 {
		t.Errorf("entry weight = %v; want 180.2", entry["weight"])
	}
}

func TestNavigate_NextBlockedAtToday(t *testing.T) {
	h := newTestHandler(t)
	w, out := doJSON(t, h, http.MethodPost, "/api/session/navigate", map[string]any{"direction": "next"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if out["moved"] != false {
		t.Errorf("expected moved=false, got %v", out["moved"])
	}
	session := out["session"].(map[string]any)
	if session["notice"] != "blocked" {
		t.Errorf("notice = %v; want blocked", session["notice"])
	}
	if session["selectedDay"] != domain.Today().String() {
		t.Errorf("selectedDay changed: %v", session["selectedDay"])
	}
}

func TestNavigate_BadDirection(t *testing.T) {
	h := newTestHandler(t)
	w, _ := doJSON(t, h, http.MethodPost, "/api/session/navigate", map[string]any{"direction": "up"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d; want 400", w.Code)
	}
}

func TestJump(t *testing.T) {
	h := newTestHandler(t)
	target := domain.Today().Shift(-30)

	w, out := doJSON(t, h, http.MethodPost, "/api/session/jump", map[string]any{"day": target.String()})
	if w.Code != http.StatusOK || out["moved"] != true {
		t.Fatalf("jump failed: %d %v", w.Code, out)
	}
	session := out["session"].(map[string]any)
	if session["selectedDay"] != target.String() {
		t.Errorf("selectedDay = %v; want %v", session["selectedDay"], target)
	}
}

func TestJump_FutureBlocked(t *testing.T) {
	h := newTestHandler(t)
	future := domain.Today().Shift(2)

	w, out := doJSON(t, h, http.MethodPost, "/api/session/jump", map[string]any{"day": future.String()})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if out["moved"] != false {
		t.Errorf("future jump moved: %v", out)
	}
}

func TestJump_BadDay(t *testing.T) {
	h := newTestHandler(t)
	w, _ := doJSON(t, h, http.MethodPost, "/api/session/jump", map[string]any{"day": "someday"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d; want 400", w.Code)
	}
}

func TestGesture_CommitsPrev(t *testing.T) {
	h := newTestHandler(t)
	w, out := doJSON(t, h, http.MethodPost, "/api/session/gesture",
		map[string]any{"dx": 80, "dy": 5, "elapsedMs": 200})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if out["action"] != "prev" || out["moved"] != true {
		t.Errorf("expected a committed prev, got %v", out)
	}
}

func TestGesture_SlowSnapsBack(t *testing.T) {
	h := newTestHandler(t)
	w, out := doJSON(t, h, http.MethodPost, "/api/session/gesture",
		map[string]any{"dx": -80, "dy": 5, "elapsedMs": 600})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if out["action"] != "snap-back" || out["moved"] != false {
		t.Errorf("expected a snap-back, got %v", out)
	}
}

func TestGesture_Cancelled(t *testing.T) {
	h := newTestHandler(t)
	_, out := doJSON(t, h, http.MethodPost, "/api/session/gesture",
		map[string]any{"dx": 80, "dy": 5, "elapsedMs": 100, "cancelled": true})
	if out["action"] != "snap-back" || out["moved"] != false {
		t.Errorf("cancelled gesture must snap back, got %v", out)
	}
}

func TestChartWindow(t *testing.T) {
	h := newTestHandler(t)
	w, out := doJSON(t, h, http.MethodGet, "/api/charts/window", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	labels := out["labels"].([]any)
	values := out["values"].([]any)
	if len(labels) != 7 || len(values) != 7 {
		t.Fatalf("expected 7 points, got %d/%d", len(labels), len(values))
	}
	for i, v := range values {
		if v != nil {
			t.Errorf("value %d = %v; want null", i, v)
		}
	}
	if out["yMax"] != 1.2 {
		t.Errorf("yMax = %v; want 1.2", out["yMax"])
	}
}

func TestEntriesRecent(t *testing.T) {
	h := newTestHandler(t)
	doJSON(t, h, http.MethodPut, "/api/session/weight", map[string]any{"text": "180"})
	doJSON(t, h, http.MethodPost, "/api/session/navigate", map[string]any{"direction": "prev"})

	w, out := doJSON(t, h, http.MethodGet, "/api/entries/recent?limit=5", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	items := out["items"].([]any)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
}

func TestMethodNotAllowed(t *testing.T) {
	h := newTestHandler(t)
	tests := []struct {
		method, path string
	}{
		{http.MethodPost, "/api/session"},
		{http.MethodGet, "/api/session/navigate"},
		{http.MethodGet, "/api/session/jump"},
		{http.MethodPost, "/api/session/weight"},
		{http.MethodGet, "/api/session/gesture"},
		{http.MethodPost, "/api/charts/window"},
		{http.MethodPut, "/api/entries/recent"},
	}
	for _, tc := range tests {
		w, _ := doJSON(t, h, tc.method, tc.path, nil)
		if w.Code != http.StatusMethodNotAllowed {
			t.Errorf("%s %s: status = %d; want 405", tc.method, tc.path, w.Code)
		}
	}
}
