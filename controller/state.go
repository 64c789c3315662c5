package controller

import (
	"fmt"

	"lampmc/cell"
)

// The value loaded into the motion timer
const InitialTimerValue = 10

// State is the complete state of the controller.
//
// State only holds value types, so assigning it copies every cell.
type State struct {
	Button cell.Cell[bool]
	Timer  cell.Cell[int]
	Mode   cell.Cell[Mode]
}

// Create the reset state of the correct controller
func NewState() State {
	return VariantCorrect.Reset()
}

// Returns an independent copy of the state
func (s State) Copy() State {
	return State{
		Button: cell.New(s.Button.Current(), s.Button.Previous()),
		Timer:  cell.New(s.Timer.Current(), s.Timer.Previous()),
		Mode:   cell.New(s.Mode.Current(), s.Mode.Previous()),
	}
}

// The lamp output for the current mode and timer
func (s State) Lamp() int {
	return Lamp(s.Mode.Current(), s.Timer.Current())
}

// Fingerprint identifies a controller state.
// Two states with the same fingerprint behave identically for every future input.
type Fingerprint struct {
	Button, PrevButton bool
	Timer, PrevTimer   int
	Mode, PrevMode     Mode
}

func (s State) Fingerprint() Fingerprint {
	return Fingerprint{
		Button:     s.Button.Current(),
		PrevButton: s.Button.Previous(),
		Timer:      s.Timer.Current(),
		PrevTimer:  s.Timer.Previous(),
		Mode:       s.Mode.Current(),
		PrevMode:   s.Mode.Previous(),
	}
}

func (s State) String() string {
	return fmt.Sprintf("mode=%v timer=%v button=%v lamp=%v", s.Mode.Current(), s.Timer.Current(), s.Button.Current(), s.Lamp())
}
