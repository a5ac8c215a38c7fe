package session

import "time"

// CompletionDelay separates the final match from the win screen.
const CompletionDelay = 500 * time.Millisecond

// FeedbackDuration is how long a feedback message stays up.
const FeedbackDuration = 1500 * time.Millisecond

// TimerKind says what a Timer does when it fires.
type TimerKind int

const (
	TimerResolve TimerKind = iota
	TimerComplete
	TimerClearFeedback
)

// String returns the timer kind name.
func (k TimerKind) String() string {
	switch k {
	case TimerResolve:
		return "resolve"
	case TimerComplete:
		return "complete"
	case TimerClearFeedback:
		return "clear-feedback"
	default:
		return "unknown"
	}
}

// Timer is a one-shot callback request. The caller schedules it with any
// mechanism it likes and hands it back to Controller.Fire after After.
// Timers are never cancelled; stale ones are recognized by Generation.
type Timer struct {
	After      time.Duration
	Kind       TimerKind
	Generation uint64
	Seq        uint64 // Feedback sequence, for TimerClearFeedback
}
