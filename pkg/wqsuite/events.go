package wqsuite

import "github.com/bft-labs/wqsuite/internal/app"

// State is the lifecycle state of a Suite's background runtime.
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
	return app.State(s).String()
}

// StateChangeEvent reports a lifecycle transition.
type StateChangeEvent struct {
	Previous State
	Current  State
	Reason   string
}

// StandardsReloadedEvent reports a successful standards reload.
type StandardsReloadedEvent struct {
	Path       string
	Parameters int
}

// EventHandler receives suite events.
type EventHandler interface {
	OnStateChange(event StateChangeEvent)
	OnStandardsReloaded(event StandardsReloadedEvent)
}

// BaseEventHandler provides no-op implementations for embedding.
type BaseEventHandler struct{}

func (BaseEventHandler) OnStateChange(StateChangeEvent)             {}
func (BaseEventHandler) OnStandardsReloaded(StandardsReloadedEvent) {}

// eventEmitterWrapper adapts EventHandler to the internal emitter interface.
type eventEmitterWrapper struct {
	handler EventHandler
}

func (e *eventEmitterWrapper) OnStateChange(previous, current app.State, reason string) {
	if e.handler == nil {
		return
	}
	e.handler.OnStateChange(StateChangeEvent{
		Previous: State(previous),
		Current:  State(current),
		Reason:   reason,
	})
}

func (e *eventEmitterWrapper) onReload(path string, parameters int) {
	if e.handler == nil {
		return
	}
	e.handler.OnStandardsReloaded(StandardsReloadedEvent{Path: path, Parameters: parameters})
}
