package app

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/bft-labs/wqsuite/pkg/log"
)

// mockEmitter tracks state change events for testing.
type mockEmitter struct {
	mu     sync.Mutex
	events []stateChangeEvent
}

type stateChangeEvent struct {
	previous State
	current  State
	reason   string
}

func (m *mockEmitter) OnStateChange(previous, current State, reason string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, stateChangeEvent{previous, current, reason})
}

func (m *mockEmitter) Events() []stateChangeEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]stateChangeEvent{}, m.events...)
}

func TestNewLifecycle(t *testing.T) {
	l := NewLifecycle(log.NewNoopLogger(), nil)
	if l.State() != StateStopped {
		t.Errorf("initial state = %v, want StateStopped", l.State())
	}
}

func TestState_String(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateStopped, "Stopped"},
		{StateStarting, "Starting"},
		{StateRunning, "Running"},
		{StateStopping, "Stopping"},
		{StateCrashed, "Crashed"},
		{State(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %s, want %s", tt.state, got, tt.want)
		}
	}
}

func TestLifecycle_TransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    State
		to      State
		wantErr bool
	}{
		{"stopped to starting", StateStopped, StateStarting, false},
		{"starting to running", StateStarting, StateRunning, false},
		{"starting to stopping", StateStarting, StateStopping, false},
		{"starting to crashed", StateStarting, StateCrashed, false},
		{"running to stopping", StateRunning, StateStopping, false},
		{"stopping to stopped", StateStopping, StateStopped, false},
		{"crashed to starting", StateCrashed, StateStarting, false},
		{"crashed to stopped", StateCrashed, StateStopped, false},

		{"stopped to running", StateStopped, StateRunning, true},
		{"stopped to stopping", StateStopped, StateStopping, true},
		{"running to starting", StateRunning, StateStarting, true},
		{"running to stopped", StateRunning, StateStopped, true},
		{"stopping to running", StateStopping, StateRunning, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLifecycle(log.NewNoopLogger(), nil)
			l.state = tt.from

			err := l.TransitionTo(tt.to, "test")
			if (err != nil) != tt.wantErr {
				t.Fatalf("TransitionTo() error = %v, wantErr %v", err, tt.wantErr)
			}
			want := tt.to
			if tt.wantErr {
				want = tt.from
				var invalid ErrInvalidTransition
				if !errors.As(err, &invalid) || invalid.From != tt.from || invalid.To != tt.to {
					t.Errorf("error = %v, want ErrInvalidTransition{%v, %v}", err, tt.from, tt.to)
				}
			}
			if l.State() != want {
				t.Errorf("state = %v, want %v", l.State(), want)
			}
		})
	}
}

func TestLifecycle_TransitionTo_EmitsEvents(t *testing.T) {
	emitter := &mockEmitter{}
	l := NewLifecycle(log.NewNoopLogger(), emitter)

	_ = l.TransitionTo(StateStarting, "start test")
	_ = l.TransitionTo(StateRunning, "running test")
	_ = l.TransitionTo(StateStarting, "rejected")

	events := emitter.Events()
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].previous != StateStopped || events[0].current != StateStarting {
		t.Errorf("event 0: got %v->%v, want Stopped->Starting", events[0].previous, events[0].current)
	}
	if events[1].reason != "running test" {
		t.Errorf("event 1 reason = %q", events[1].reason)
	}
}

func TestLifecycle_CanStartCanStop(t *testing.T) {
	tests := []struct {
		state     State
		wantStart bool
		wantStop  bool
	}{
		{StateStopped, true, false},
		{StateStarting, false, true},
		{StateRunning, false, true},
		{StateStopping, false, false},
		{StateCrashed, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			l := NewLifecycle(log.NewNoopLogger(), nil)
			l.state = tt.state
			if got := l.CanStart(); got != tt.wantStart {
				t.Errorf("CanStart() = %v, want %v", got, tt.wantStart)
			}
			if got := l.CanStop(); got != tt.wantStop {
				t.Errorf("CanStop() = %v, want %v", got, tt.wantStop)
			}
		})
	}
}

func TestLifecycle_SetCancel_And_Cancel(t *testing.T) {
	l := NewLifecycle(log.NewNoopLogger(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	l.SetCancel(cancel)

	select {
	case <-ctx.Done():
		t.Fatal("context canceled before Cancel()")
	default:
	}

	l.Cancel()
	select {
	case <-ctx.Done():
	default:
		t.Error("context should be canceled after Cancel()")
	}

	// Second call is a no-op.
	l.Cancel()
}

func TestLifecycle_Concurrency(t *testing.T) {
	l := NewLifecycle(log.NewNoopLogger(), nil)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = l.State()
				_ = l.CanStart()
				_ = l.CanStop()
			}
		}()
	}
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = l.TransitionTo(StateStarting, "test")
			_ = l.TransitionTo(StateRunning, "test")
		}()
	}
	wg.Wait()

	if s := l.State(); s != StateRunning {
		t.Errorf("state = %v, want Running", s)
	}
}
