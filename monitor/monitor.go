package monitor

import (
	"fmt"

	"lampmc/cell"
	"lampmc/controller"
)

// Edge is what the edge detector monitors observe during a tick
type Edge struct {
	Tick  int
	Press bool
	Pulse bool
	// The raw press of the previous tick. Ignored on tick 0.
	Prior bool
	// The button cell after the detector updated it
	Button cell.Cell[bool]
}

// Output is what the output and safety monitors observe after the controller step
type Output struct {
	Tick  int
	Mode  controller.Mode
	Timer int
	Lamp  int
}

// A rule returns an explanation if the property is broken and an empty string otherwise
type rule[O any] struct {
	property Property
	check    func(O) string
}

var edgeRules = []rule[Edge]{
	{PulseMatchesEdge, func(e Edge) string {
		expected := e.Press && !e.Button.Previous()
		if e.Pulse != expected {
			return fmt.Sprintf("pulse=%v but press=%v and previous button=%v give %v", e.Pulse, e.Press, e.Button.Previous(), expected)
		}
		return ""
	}},
	{ButtonTracksPress, func(e Edge) string {
		if e.Button.Current() != e.Press {
			return fmt.Sprintf("button cell holds %v after detecting press=%v", e.Button.Current(), e.Press)
		}
		return ""
	}},
	{NoRepeatWhileHeld, func(e Edge) string {
		if e.Tick > 0 && e.Prior && e.Press && e.Pulse {
			return fmt.Sprintf("button held since tick %v but a pulse was produced", e.Tick-1)
		}
		return ""
	}},
}

var outputRules = []rule[Output]{
	{IdleLampOff, func(o Output) string {
		if o.Mode == controller.Idle && o.Lamp != 0 {
			return fmt.Sprintf("lamp=%v in Idle", o.Lamp)
		}
		return ""
	}},
	{SteadyLampOn, func(o Output) string {
		if o.Mode == controller.SteadyOn && o.Lamp != 1 {
			return fmt.Sprintf("lamp=%v in SteadyOn", o.Lamp)
		}
		return ""
	}},
	{MotionLampFollowsTimer, func(o Output) string {
		if o.Mode != controller.Motion {
			return ""
		}
		if (o.Lamp == 1) != (o.Timer > 0) {
			return fmt.Sprintf("lamp=%v in Motion with timer=%v", o.Lamp, o.Timer)
		}
		return ""
	}},
}

var safetyRules = []rule[Output]{
	{TimerInRange, func(o Output) string {
		if o.Timer < 0 || o.Timer > controller.InitialTimerValue {
			return fmt.Sprintf("timer=%v outside [0, %v]", o.Timer, controller.InitialTimerValue)
		}
		return ""
	}},
	{IdleTimerZero, func(o Output) string {
		if o.Mode == controller.Idle && o.Timer != 0 {
			return fmt.Sprintf("timer=%v in Idle", o.Timer)
		}
		return ""
	}},
}

func evaluate[O any](tick int, rules []rule[O], o O) *Violation {
	for _, r := range rules {
		if explanation := r.check(o); explanation != "" {
			return &Violation{
				Property:    r.property,
				Tick:        tick,
				Explanation: explanation,
			}
		}
	}
	return nil
}

// CheckEdge evaluates A1, A2 and A3 in order and returns the first violation.
//
// A1 and A2 restate the detector's own contract and only fail if the detector changes.
func CheckEdge(e Edge) *Violation {
	return evaluate(e.Tick, edgeRules, e)
}

// CheckOutput evaluates B1, B2 and B3 in order and returns the first violation
func CheckOutput(o Output) *Violation {
	return evaluate(o.Tick, outputRules, o)
}

// CheckSafety evaluates C1 and C2 in order and returns the first violation
func CheckSafety(o Output) *Violation {
	return evaluate(o.Tick, safetyRules, o)
}
