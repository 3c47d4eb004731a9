package workflows

import "fmt"

// State is a stage of a render pass.
type State string

const (
	StateStart       State = "START"
	StateValidating  State = "VALIDATING"
	StateRendering   State = "RENDERING"
	StateSerializing State = "SERIALIZING"
	StateDone        State = "DONE"
	StateFailed      State = "FAILED"
)

// StateMachine enforces render pass transitions
type StateMachine struct {
	allowedTransitions map[State][]State
}

// NewStateMachine creates a new state machine with allowed transitions
func NewStateMachine() *StateMachine {
	return &StateMachine{
		allowedTransitions: map[State][]State{
			StateStart:       {StateValidating},
			StateValidating:  {StateRendering, StateFailed},
			StateRendering:   {StateSerializing, StateFailed},
			StateSerializing: {StateDone, StateFailed},
			StateDone:        {},
			StateFailed:      {},
		},
	}
}

// CanTransition checks if a state transition is allowed
func (sm *StateMachine) CanTransition(from, to State) bool {
	for _, allowedTo := range sm.allowedTransitions[from] {
		if allowedTo == to {
			return true
		}
	}
	return false
}

// GetAllowedTransitions returns the allowed next states for a given state
func (sm *StateMachine) GetAllowedTransitions(from State) []State {
	allowed, exists := sm.allowedTransitions[from]
	if !exists {
		return []State{}
	}
	return allowed
}

// IsTerminal reports whether no transition leaves s.
func (sm *StateMachine) IsTerminal(s State) bool {
	allowed, exists := sm.allowedTransitions[s]
	return exists && len(allowed) == 0
}

// Run tracks one pass through the machine.
type Run struct {
	machine *StateMachine
	state   State
	history []State
}

// Start begins a run in StateStart.
func (sm *StateMachine) Start() *Run {
	return &Run{machine: sm, state: StateStart, history: []State{StateStart}}
}

func (r *Run) State() State { return r.state }

// History lists every state the run has entered, in order.
func (r *Run) History() []State {
	out := make([]State, len(r.history))
	copy(out, r.history)
	return out
}

// Enter moves the run to next.
func (r *Run) Enter(next State) error {
	if !r.machine.CanTransition(r.state, next) {
		return fmt.Errorf("invalid transition %s -> %s", r.state, next)
	}
	r.state = next
	r.history = append(r.history, next)
	return nil
}

// Fail moves the run to StateFailed when it is still in flight.
func (r *Run) Fail() {
	if r.machine.CanTransition(r.state, StateFailed) {
		r.state = StateFailed
		r.history = append(r.history, StateFailed)
	}
}
