package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/bft-labs/wqsuite/internal/ports"
)

// State represents the lifecycle state of the suite runtime.
type State int

const (
	StateStopped State = iota
	StateStarting
	StateRunning
	StateStopping
	StateCrashed
)

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case StateStopped:
		return "Stopped"
	case StateStarting:
		return "Starting"
	case StateRunning:
		return "Running"
	case StateStopping:
		return "Stopping"
	case StateCrashed:
		return "Crashed"
	default:
		return "Unknown"
	}
}

// ErrInvalidTransition is returned for a state change the lifecycle does
// not allow.
type ErrInvalidTransition struct {
	From, To State
}

func (e ErrInvalidTransition) Error() string {
	return fmt.Sprintf("invalid lifecycle transition %s -> %s", e.From, e.To)
}

// EventEmitter is called when lifecycle state changes.
type EventEmitter interface {
	OnStateChange(previous, current State, reason string)
}

// Lifecycle manages the state machine of the background runtime (standards
// watcher and report janitor). Sessions have their own open/closed state.
type Lifecycle struct {
	mu           sync.RWMutex
	state        State
	cancel       context.CancelFunc
	logger       ports.Logger
	eventEmitter EventEmitter
}

// NewLifecycle creates a new lifecycle manager.
func NewLifecycle(logger ports.Logger, emitter EventEmitter) *Lifecycle {
	return &Lifecycle{
		state:        StateStopped,
		logger:       logger,
		eventEmitter: emitter,
	}
}

// State returns the current lifecycle state.
func (l *Lifecycle) State() State {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state
}

var transitions = map[State][]State{
	StateStopped:  {StateStarting},
	StateStarting: {StateRunning, StateStopping, StateCrashed},
	StateRunning:  {StateStopping, StateCrashed},
	StateStopping: {StateStopped, StateCrashed},
	StateCrashed:  {StateStarting, StateStopped},
}

// TransitionTo attempts to transition to a new state.
func (l *Lifecycle) TransitionTo(newState State, reason string) error {
	l.mu.Lock()
	oldState := l.state
	allowed := false
	for _, s := range transitions[oldState] {
		if s == newState {
			allowed = true
			break
		}
	}
	if !allowed {
		l.mu.Unlock()
		return ErrInvalidTransition{From: oldState, To: newState}
	}
	l.state = newState
	l.mu.Unlock()

	// Emit event outside of lock
	if l.eventEmitter != nil {
		l.eventEmitter.OnStateChange(oldState, newState, reason)
	}

	l.logger.Info("state transition",
		ports.String("from", oldState.String()),
		ports.String("to", newState.String()),
		ports.String("reason", reason),
	)
	return nil
}

// CanStart returns true if the runtime can be started.
func (l *Lifecycle) CanStart() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state == StateStopped || l.state == StateCrashed
}

// CanStop returns true if the runtime can be stopped.
func (l *Lifecycle) CanStop() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state == StateRunning || l.state == StateStarting
}

// SetCancel stores the cancel function of the runtime context.
func (l *Lifecycle) SetCancel(cancel context.CancelFunc) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cancel = cancel
}

// Cancel cancels the runtime context.
func (l *Lifecycle) Cancel() {
	l.mu.Lock()
	cancel := l.cancel
	l.cancel = nil
	l.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}
