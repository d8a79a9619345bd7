package app

import "time"

// Axis is the movement axis a gesture locks onto.
type Axis int

const (
	// AxisNone means the gesture is still inside the dead zone.
	AxisNone Axis = iota
	// AxisHorizontal locks the gesture to day navigation.
	AxisHorizontal
	// AxisVertical hands the gesture to native scrolling.
	AxisVertical
)

// GestureAction is the outcome of a finished gesture.
type GestureAction int

const (
	// GestureNone means no gesture was in progress.
	GestureNone GestureAction = iota
	// GestureSnapBack resets the view without navigating.
	GestureSnapBack
	// GesturePrev is a committed rightward swipe (reveal the previous day).
	GesturePrev
	// GestureNext is a committed leftward swipe.
	GestureNext
)

// GestureConfig holds the recognizer thresholds. Units are whatever
// coordinate space the input events use; the defaults suit pixels, the
// terminal front-end substitutes cell-scale values.
type GestureConfig struct {
	// DeadZone is the travel below which no axis is locked.
	DeadZone float64
	// MinDistance is the horizontal travel required to commit.
	MinDistance float64
	// MaxCrossTravel is the vertical travel tolerated in a commit.
	MaxCrossTravel float64
	// MaxDuration is the longest press-to-release time for a commit.
	MaxDuration time.Duration
}

// DefaultGestureConfig returns the pointer/touch thresholds.
func DefaultGestureConfig() GestureConfig {
	return GestureConfig{
		DeadZone:       10,
		MinDistance:    70,
		MaxCrossTravel: 90,
		MaxDuration:    450 * time.Millisecond,
	}
}

// MoveState is the live result of a gesture move event.
type MoveState struct {
	// Axis is the locked axis, or AxisNone inside the dead zone.
	Axis Axis
	// OffsetX is the horizontal drag-follow offset; meaningful only while
	// the axis is horizontal.
	OffsetX float64
	// SuppressScroll reports whether the platform's default scroll handling
	// must be prevented for this event.
	SuppressScroll bool
}

// Recognizer classifies a single-touch press-move-release sequence into
// day-navigation swipes. One gesture at a time: a Begin while a gesture is
// active is ignored, so multi-touch never takes part.
type Recognizer struct {
	cfg GestureConfig

	active    bool
	startX    float64
	startY    float64
	startedAt time.Time
	dx        float64
	dy        float64
	axis      Axis
}

// NewRecognizer creates a Recognizer with the given thresholds.
func NewRecognizer(cfg GestureConfig) *Recognizer {
	return &Recognizer{cfg: cfg}
}

// Active reports whether a gesture is in progress.
func (r *Recognizer) Active() bool { return r.active }

// Begin starts a gesture at the given coordinates and instant. Ignored if a
// gesture is already active.
func (r *Recognizer) Begin(x, y float64, at time.Time) {
	if r.active {
		return
	}
	*r = Recognizer{cfg: r.cfg, active: true, startX: x, startY: y, startedAt: at}
}

// Move updates the gesture with the current pointer position. The axis
// locks the first time travel on either axis leaves the dead zone, and the
// lock is permanent for the remainder of the gesture.
func (r *Recognizer) Move(x, y float64) MoveState {
	if !r.active {
		return MoveState{}
	}
	r.dx = x - r.startX
	r.dy = y - r.startY

	if r.axis == AxisNone {
		if abs(r.dx) < r.cfg.DeadZone && abs(r.dy) < r.cfg.DeadZone {
			return MoveState{}
		}
		if abs(r.dx) > abs(r.dy) {
			r.axis = AxisHorizontal
		} else {
			r.axis = AxisVertical
		}
	}

	st := MoveState{Axis: r.axis}
	if r.axis == AxisHorizontal {
		st.OffsetX = r.dx
		st.SuppressScroll = true
	}
	return st
}

// End finishes the gesture and returns the action to take. A swipe commits
// when it was quick enough, travelled far enough horizontally and stayed
// within the vertical tolerance; anything else snaps back.
func (r *Recognizer) End(at time.Time) GestureAction {
	if !r.active {
		return GestureNone
	}
	dx, dy := r.dx, r.dy
	elapsed := at.Sub(r.startedAt)
	r.reset()

	if elapsed <= r.cfg.MaxDuration && abs(dx) >= r.cfg.MinDistance && abs(dy) <= r.cfg.MaxCrossTravel {
		if dx > 0 {
			return GesturePrev
		}
		return GestureNext
	}
	return GestureSnapBack
}

// Cancel aborts the gesture, e.g. when the platform interrupts the touch.
// The caller snaps the view back; no navigation is committed and no axis
// lock survives.
func (r *Recognizer) Cancel() {
	r.reset()
}

func (r *Recognizer) reset() {
	*r = Recognizer{cfg: r.cfg}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
