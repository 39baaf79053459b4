package projects

// Mode is the operating mode of the Provider: which store backs reads and writes.
type Mode int

const (
	// ModeLoading is the state before the initial fetch settles
	ModeLoading Mode = iota
	// ModeBackendActive serves every operation from the backend API
	ModeBackendActive
	// ModeLocalFallback serves every operation from durable local storage
	ModeLocalFallback
)

func (m Mode) String() string {
	switch m {
	case ModeLoading:
		return "loading"
	case ModeBackendActive:
		return "backend_active"
	case ModeLocalFallback:
		return "local_fallback"
	default:
		return "unknown"
	}
}

// Event is an outcome reported to Transition.
type Event int

const (
	EventLoadSucceeded Event = iota
	EventLoadFailed
	EventMutationFailed
)

func (e Event) String() string {
	switch e {
	case EventLoadSucceeded:
		return "load_succeeded"
	case EventLoadFailed:
		return "load_failed"
	case EventMutationFailed:
		return "mutation_failed"
	default:
		return "unknown"
	}
}

// Transition is the single mode transition function. LocalFallback is terminal
// for the process lifetime: local-only writes are never silently abandoned by
// switching back to the backend.
func Transition(mode Mode, event Event) Mode {
	switch mode {
	case ModeLoading:
		switch event {
		case EventLoadSucceeded:
			return ModeBackendActive
		case EventLoadFailed:
			return ModeLocalFallback
		}
	case ModeBackendActive:
		if event == EventMutationFailed {
			return ModeLocalFallback
		}
	}
	return mode
}
