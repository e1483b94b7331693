// internal/state/state.go
package state

import "go-sketch/pkg/canvas"

// State is one mode of the demo app.
type State interface {
	Enter()
	Update(dt float64)
	Draw(ctx canvas.Context)
	Exit()
}

// Machine switches between states, running their exit and enter hooks.
type Machine struct {
	current State
}

func NewMachine() *Machine {
	return &Machine{}
}

// SetState leaves the current state (if any) and enters newState.
func (m *Machine) SetState(newState State) {
	if m.current != nil {
		m.current.Exit()
	}
	m.current = newState
	if m.current != nil {
		m.current.Enter()
	}
}

// Current returns the active state, or nil.
func (m *Machine) Current() State { return m.current }

// Update advances the active state.
func (m *Machine) Update(dt float64) {
	if m.current != nil {
		m.current.Update(dt)
	}
}

// Draw lets the active state paint overlays.
func (m *Machine) Draw(ctx canvas.Context) {
	if m.current != nil {
		m.current.Draw(ctx)
	}
}
