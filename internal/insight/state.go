package insight

import "sync"

// RequestState is a state in the AI-insight request lifecycle.
type RequestState string

// Lifecycle states: idle → loading → {idle on success, error on failure};
// error → loading on retry.
const (
	StateIdle    RequestState = "idle"
	StateLoading RequestState = "loading"
	StateError   RequestState = "error"
)

// StateMachine tracks one view's AI-insight request lifecycle,
// independent of any rendering framework. It enforces the transition
// contract: a second request while loading is suppressed, and retry is only
// meaningful from the error state.
type StateMachine struct {
	mu    sync.Mutex
	state RequestState
}

// NewStateMachine starts in StateIdle.
func NewStateMachine() *StateMachine {
	return &StateMachine{state: StateIdle}
}

// State returns the current state.
func (m *StateMachine) State() RequestState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Start transitions idle → loading. It returns false while a request is
// already in flight, telling the caller to suppress the duplicate
// invocation.
func (m *StateMachine) Start() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == StateLoading {
		return false
	}
	m.state = StateLoading
	return true
}

// Succeed transitions loading → idle.
func (m *StateMachine) Succeed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == StateLoading {
		m.state = StateIdle
	}
}

// Fail transitions loading → error.
func (m *StateMachine) Fail() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == StateLoading {
		m.state = StateError
	}
}

// Retry transitions error → loading. It returns false from any other
// state: retry is a user action only offered on failure.
func (m *StateMachine) Retry() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != StateError {
		return false
	}
	m.state = StateLoading
	return true
}
