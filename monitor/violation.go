package monitor

import "fmt"

// Property identifies a runtime-checked property of the controller
type Property string

const (
	// The pulse equals the raw press and not the previous button level
	PulseMatchesEdge Property = "A1"
	// The button cell holds the raw press after detection
	ButtonTracksPress Property = "A2"
	// A held button never produces a second pulse
	NoRepeatWhileHeld Property = "A3"
	// The lamp is off in Idle
	IdleLampOff Property = "B1"
	// The lamp is on in SteadyOn
	SteadyLampOn Property = "B2"
	// The lamp is on in Motion exactly while the timer runs
	MotionLampFollowsTimer Property = "B3"
	// The timer stays within [0, InitialTimerValue]
	TimerInRange Property = "C1"
	// The timer is 0 in Idle
	IdleTimerZero Property = "C2"
)

// All properties in evaluation order
var Properties = []Property{
	PulseMatchesEdge, ButtonTracksPress, NoRepeatWhileHeld,
	IdleLampOff, SteadyLampOn, MotionLampFollowsTimer,
	TimerInRange, IdleTimerZero,
}

// Violation describes the first property found broken during a tick.
//
// A nil *Violation means that all properties hold.
type Violation struct {
	Property Property
	// The index of the tick that broke the property
	Tick        int
	Explanation string
}

func (v Violation) String() string {
	return fmt.Sprintf("%v at tick %v: %v", v.Property, v.Tick, v.Explanation)
}
