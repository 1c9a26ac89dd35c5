package core_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-crossing/internal/games/crossing/core"
)

func TestMachineStartsInitialising(t *testing.T) {
	m := core.NewMachine(2)

	if m.State() != core.StateInitialising {
		t.Errorf("new machine state = %s, expected initialising", m.State())
	}
	if m.InputAllowed() {
		t.Error("input should be disabled in initialising")
	}
}

func TestMachineTransitions(t *testing.T) {
	tests := []struct {
		name  string
		setup func(m *core.Machine)
		op    func(m *core.Machine) error
		ok    bool
		after core.State
	}{
		{"start from initialising", func(m *core.Machine) {}, (*core.Machine).Start, true, core.StateRunning},
		{"lose from running", startMachine, (*core.Machine).Lose, true, core.StateGameOver},
		{"win from running", startMachine, (*core.Machine).Win, true, core.StateLevelWon},
		{"continue from level won", winMachine, (*core.Machine).Continue, true, core.StateInitialising},
		{"restart from game over", loseMachine, (*core.Machine).Restart, true, core.StateInitialising},

		{"lose from initialising", func(m *core.Machine) {}, (*core.Machine).Lose, false, core.StateInitialising},
		{"win from initialising", func(m *core.Machine) {}, (*core.Machine).Win, false, core.StateInitialising},
		{"start from running", startMachine, (*core.Machine).Start, false, core.StateRunning},
		{"continue from running", startMachine, (*core.Machine).Continue, false, core.StateRunning},
		{"restart from running", startMachine, (*core.Machine).Restart, false, core.StateRunning},
		{"continue from game over", loseMachine, (*core.Machine).Continue, false, core.StateGameOver},
		{"restart from level won", winMachine, (*core.Machine).Restart, false, core.StateLevelWon},
		{"lose from game over", loseMachine, (*core.Machine).Lose, false, core.StateGameOver},
		{"win from level won", winMachine, (*core.Machine).Win, false, core.StateLevelWon},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := core.NewMachine(2)
			tc.setup(m)
			err := tc.op(m)
			if tc.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tc.ok && !errors.Is(err, core.ErrInvalidTransition) {
				t.Fatalf("expected ErrInvalidTransition, got %v", err)
			}
			if m.State() != tc.after {
				t.Errorf("state = %s, expected %s", m.State(), tc.after)
			}
		})
	}
}

func startMachine(m *core.Machine) {
	_ = m.Start()
}

func winMachine(m *core.Machine) {
	_ = m.Start()
	_ = m.Win()
}

func loseMachine(m *core.Machine) {
	_ = m.Start()
	_ = m.Lose()
}

func TestMachineGracePeriodBoundary(t *testing.T) {
	m := core.NewMachine(2)
	_ = m.Start()

	for i := 0; i < 20; i++ {
		if m.InputAllowed() {
			t.Fatalf("input allowed after %d frames", i)
		}
		m.Advance(0.1)
	}
	// Exactly 2.0s elapsed: still inside the grace period
	if m.InputAllowed() {
		t.Error("input should stay disabled at exactly the grace period")
	}
	if m.GraceRemaining() != 0 {
		t.Errorf("GraceRemaining() = %f, expected 0", m.GraceRemaining())
	}

	m.Advance(0.001)
	if !m.InputAllowed() {
		t.Error("input should be allowed once the grace period has passed")
	}
}

func TestMachineGraceNeedsRunning(t *testing.T) {
	m := core.NewMachine(2)
	m.Advance(0.1)
	for i := 0; i < 30; i++ {
		m.Advance(0.1)
	}

	if m.InputAllowed() {
		t.Error("input should be disabled before the machine starts running")
	}
	_ = m.Start()
	if !m.InputAllowed() {
		t.Error("input should be allowed once running with the grace period spent")
	}
}

func TestMachineEndStatesDisableInput(t *testing.T) {
	for _, end := range []func(*core.Machine){winMachine, loseMachine} {
		m := core.NewMachine(0)
		end(m)
		m.Advance(1)
		if m.InputAllowed() {
			t.Errorf("input should be disabled in %s", m.State())
		}
	}
}

func TestMachineResetClearsGrace(t *testing.T) {
	m := core.NewMachine(2)
	_ = m.Start()
	m.Advance(3)
	_ = m.Lose()
	_ = m.Restart()

	if m.GraceElapsed() != 0 {
		t.Errorf("GraceElapsed() = %v after restart, expected 0", m.GraceElapsed())
	}
	_ = m.Start()
	if m.InputAllowed() {
		t.Error("grace period should apply again after restart")
	}
}

func TestMachineBlink(t *testing.T) {
	m := core.NewMachine(2)
	loseMachine(m)

	expected := []bool{true, true, false, false, true, true}
	for i, want := range expected {
		if got := m.BlinkOn(0.5); got != want {
			t.Errorf("step %d: BlinkOn() = %v, expected %v", i, got, want)
		}
		m.Advance(0.25)
	}

	if !m.BlinkOn(0) {
		t.Error("BlinkOn() with a zero interval should always be visible")
	}
}

func TestStateString(t *testing.T) {
	tests := map[core.State]string{
		core.StateInitialising: "initialising",
		core.StateRunning:      "running",
		core.StateLevelWon:     "level-won",
		core.StateGameOver:     "game-over",
		core.State(9):          "state(9)",
	}
	for s, want := range tests {
		if s.String() != want {
			t.Errorf("String() = %q, expected %q", s.String(), want)
		}
	}
}
