package weather

import "errors"

// FetchFailedMessage is the only error text a user ever sees.
const FetchFailedMessage = "Failed to fetch weather data"

// ErrFetchFailed collapses every fetch or decode failure.
var ErrFetchFailed = errors.New(FetchFailedMessage)

// Phase tags which variant a UIState holds.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseError
	PhaseLoaded
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseError:
		return "error"
	case PhaseLoaded:
		return "loaded"
	default:
		return "unknown"
	}
}

// UIState is exactly one of Loading, Error(message) or Loaded(snapshot).
// The zero value is Loading.
type UIState struct {
	phase    Phase
	message  string
	snapshot Snapshot
}

// Loading is the state before the fetch resolves.
func Loading() UIState {
	return UIState{phase: PhaseLoading}
}

// Failed is the error state carrying a user-facing message.
func Failed(message string) UIState {
	return UIState{phase: PhaseError, message: message}
}

// Loaded holds a decoded snapshot.
func Loaded(s Snapshot) UIState {
	return UIState{phase: PhaseLoaded, snapshot: s}
}

func (s UIState) Phase() Phase {
	return s.phase
}

// Message is empty unless the state is an error.
func (s UIState) Message() string {
	return s.message
}

// Snapshot reports the snapshot and whether the state is Loaded.
func (s UIState) Snapshot() (Snapshot, bool) {
	if s.phase != PhaseLoaded {
		return Snapshot{}, false
	}
	return s.snapshot, true
}
