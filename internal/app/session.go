package app

import (
	"context"
	"errors"
	"strings"

	"weightlog/internal/domain"
)

// ErrFutureDay is returned when a navigation targets a day after today.
var ErrFutureDay = errors.New("cannot navigate into the future")

// Notice is the user-visible signal raised by the most recent transition.
// Rendering layers show it as a short status hint and clear it after a
// timer or on the next edit; it never blocks a state transition.
type Notice int

const (
	// NoticeNone means nothing to report.
	NoticeNone Notice = iota
	// NoticeSaved means the staged weight was committed for the day left.
	NoticeSaved
	// NoticeInvalid means the staged text did not parse and was not saved.
	NoticeInvalid
	// NoticeBlocked means a navigation into the future was rejected.
	NoticeBlocked
)

// Result describes the outcome of a navigation attempt.
type Result struct {
	Moved  bool
	Saved  bool
	Notice Notice
	// Err is a repository write failure from the auto-save; the transition
	// itself still happened.
	Err error
}

// Session owns the selected day and the staged input text for it. It is the
// navigation state machine: a single Viewing(selectedDay) state whose
// transitions are NavigatePrev, NavigateNext and JumpTo. Every successful
// transition away from a day first attempts to commit the staged weight for
// the day being left.
type Session struct {
	journal  *Journal
	selected domain.Date
	staged   string
	notice   Notice
}

// NewSession creates a Session viewing today, with the staged input
// re-hydrated from the journal.
func NewSession(journal *Journal) *Session {
	s := &Session{journal: journal, selected: domain.Today()}
	s.rehydrate()
	return s
}

// Selected returns the currently selected day.
func (s *Session) Selected() domain.Date { return s.selected }

// Staged returns the raw input text staged for the selected day.
func (s *Session) Staged() string { return s.staged }

// SetStaged replaces the staged input text. Editing clears any notice.
func (s *Session) SetStaged(text string) {
	s.staged = text
	s.notice = NoticeNone
}

// Notice returns the signal raised by the last transition.
func (s *Session) Notice() Notice { return s.notice }

// ClearNotice resets the notice, typically from a rendering-layer timer.
func (s *Session) ClearNotice() { s.notice = NoticeNone }

// CurrentEntry returns the journal entry for the selected day, if any.
func (s *Session) CurrentEntry() (domain.Entry, bool) {
	return s.journal.Find(s.selected)
}

// NavigatePrev moves the selection one day back. The past has no lower
// bound, so it always succeeds.
func (s *Session) NavigatePrev(ctx context.Context) Result {
	return s.moveTo(ctx, s.selected.Shift(-1), false)
}

// NavigateNext moves the selection one day forward. Moving past today is
// rejected and raises NoticeBlocked.
func (s *Session) NavigateNext(ctx context.Context) Result {
	candidate := s.selected.Shift(1)
	if candidate.IsFuture() {
		s.notice = NoticeBlocked
		return Result{Notice: NoticeBlocked, Err: ErrFutureDay}
	}
	return s.moveTo(ctx, candidate, false)
}

// JumpTo replaces the selected day, e.g. from a date picker. Future days
// are rejected under the same rule as NavigateNext; on success any notice
// is cleared.
func (s *Session) JumpTo(ctx context.Context, day domain.Date) Result {
	if day.IsFuture() {
		s.notice = NoticeBlocked
		return Result{Notice: NoticeBlocked, Err: ErrFutureDay}
	}
	return s.moveTo(ctx, day, true)
}

// moveTo commits the staged weight for the day being left, then selects day
// and re-hydrates the staged input from the journal.
func (s *Session) moveTo(ctx context.Context, day domain.Date, clearNotice bool) Result {
	res := s.commitStaged(ctx)
	res.Moved = true

	s.selected = day
	s.rehydrate()

	if clearNotice {
		res.Notice = NoticeNone
	}
	s.notice = res.Notice
	return res
}

// commitStaged saves the staged weight for the selected day. Empty text is
// a silent no-op; unparseable text saves nothing and raises NoticeInvalid.
func (s *Session) commitStaged(ctx context.Context) Result {
	if strings.TrimSpace(s.staged) == "" {
		return Result{}
	}
	w, err := domain.ParseWeight(s.staged)
	if err != nil {
		return Result{Notice: NoticeInvalid}
	}
	if err := s.journal.Upsert(ctx, s.selected, w); err != nil {
		return Result{Saved: true, Notice: NoticeSaved, Err: err}
	}
	return Result{Saved: true, Notice: NoticeSaved}
}

func (s *Session) rehydrate() {
	if e, ok := s.journal.Find(s.selected); ok {
		s.staged = domain.FormatWeight(e.Weight)
		return
	}
	s.staged = ""
}
