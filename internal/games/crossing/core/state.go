package core

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// State is the phase of a crossing session.
type State uint8

const (
	StateInitialising State = iota // Level built, waiting for the first frame
	StateRunning                   // Simulation running
	StateLevelWon                  // All gems collected, waiting for continue
	StateGameOver                  // Player hit, waiting for restart
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateInitialising:
		return "initialising"
	case StateRunning:
		return "running"
	case StateLevelWon:
		return "level-won"
	case StateGameOver:
		return "game-over"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// ErrInvalidTransition is returned when a transition is not allowed from the
// current state.
var ErrInvalidTransition = errors.New("invalid state transition")

// Machine tracks the session state, the input gates and the timers that
// depend on it.
//
// Input is accepted only when both gates are open: the state gate (open in
// Running only) and the grace gate (open once strictly more than the grace
// period has elapsed since the last reset). Elapsed time is counted in whole
// nanoseconds so that repeated frame deltas add up exactly.
type Machine struct {
	state        State
	inputEnabled bool
	gracePeriod  time.Duration
	graceElapsed time.Duration
	blinkElapsed time.Duration
}

// NewMachine returns a machine in StateInitialising with a grace period of
// gracePeriod seconds.
func NewMachine(gracePeriod float64) *Machine {
	m := &Machine{gracePeriod: seconds(gracePeriod)}
	m.enter(StateInitialising)
	return m
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Start moves Initialising to Running.
func (m *Machine) Start() error {
	return m.transition(StateRunning)
}

// Lose moves Running to GameOver.
func (m *Machine) Lose() error {
	return m.transition(StateGameOver)
}

// Win moves Running to LevelWon.
func (m *Machine) Win() error {
	return m.transition(StateLevelWon)
}

// Continue moves LevelWon to Initialising for the next level.
func (m *Machine) Continue() error {
	if m.state != StateLevelWon {
		return fmt.Errorf("%w: continue from %s", ErrInvalidTransition, m.state)
	}
	return m.transition(StateInitialising)
}

// Restart moves GameOver to Initialising for the first level.
func (m *Machine) Restart() error {
	if m.state != StateGameOver {
		return fmt.Errorf("%w: restart from %s", ErrInvalidTransition, m.state)
	}
	return m.transition(StateInitialising)
}

// transition checks the edge and runs the entry actions of the target.
func (m *Machine) transition(to State) error {
	allowed := false
	switch m.state {
	case StateInitialising:
		allowed = to == StateRunning
	case StateRunning:
		allowed = to == StateGameOver || to == StateLevelWon
	case StateLevelWon, StateGameOver:
		allowed = to == StateInitialising
	}
	if !allowed {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, m.state, to)
	}
	m.enter(to)
	return nil
}

func (m *Machine) enter(s State) {
	m.state = s
	switch s {
	case StateInitialising:
		m.inputEnabled = false
		m.graceElapsed = 0
		m.blinkElapsed = 0
	case StateRunning:
		m.inputEnabled = true
	case StateLevelWon, StateGameOver:
		m.inputEnabled = false
		m.blinkElapsed = 0
	}
}

// Advance runs the timers for dt seconds: the grace timer while a level is
// starting or running, the blink timer in the end states.
func (m *Machine) Advance(dt float64) {
	switch m.state {
	case StateInitialising, StateRunning:
		m.graceElapsed += seconds(dt)
	case StateLevelWon, StateGameOver:
		m.blinkElapsed += seconds(dt)
	}
}

// InputAllowed reports whether player moves are accepted right now.
func (m *Machine) InputAllowed() bool {
	return m.inputEnabled && m.graceElapsed > m.gracePeriod
}

// GraceElapsed returns the time elapsed since the last reset.
func (m *Machine) GraceElapsed() time.Duration {
	return m.graceElapsed
}

// GraceRemaining returns the seconds left in the grace period.
func (m *Machine) GraceRemaining() float64 {
	return max(0, m.gracePeriod-m.graceElapsed).Seconds()
}

// BlinkOn reports whether an end-state message is in its visible half-cycle.
func (m *Machine) BlinkOn(interval float64) bool {
	step := seconds(interval)
	if step <= 0 {
		return true
	}
	return (m.blinkElapsed/step)%2 == 0
}

// seconds converts a frame delta to a Duration, rounded to the nanosecond.
func seconds(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}
