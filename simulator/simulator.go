package simulator

import (
	"lampmc/controller"
	"lampmc/monitor"
)

// Simulates the lamp controller one tick at a time while checking the properties.
//
// Each tick runs the edge detector, the edge monitors, the controller step and finally the output and safety monitors.
// The first violation found ends the tick.
type Simulator struct {
	variant controller.Variant
}

// Create a simulator for the provided controller variant
func New(variant controller.Variant) Simulator {
	return Simulator{variant: variant}
}

func (s Simulator) Variant() controller.Variant {
	return s.variant
}

// The state the controller starts in
func (s Simulator) Reset() controller.State {
	return s.variant.Reset()
}

// Execute tick k with the provided inputs.
//
// prior is the raw press of tick k-1 and is ignored when k is 0.
// The state is passed by value and the caller's state is never modified.
//
// If an edge property is broken the returned state is the state after edge detection, and the controller step has not run.
// Returns the new state, the press pulse and the violation, or nil if all properties hold.
func (s Simulator) Tick(state controller.State, k int, press, motion, prior bool) (controller.State, bool, *monitor.Violation) {
	state = state.Copy()

	pulse := s.variant.Detect(press, &state.Button)
	if v := monitor.CheckEdge(monitor.Edge{
		Tick:   k,
		Press:  press,
		Pulse:  pulse,
		Prior:  prior,
		Button: state.Button,
	}); v != nil {
		return state, pulse, v
	}

	s.variant.Step(pulse, motion, &state.Timer, &state.Mode)

	out := monitor.Output{
		Tick:  k,
		Mode:  state.Mode.Current(),
		Timer: state.Timer.Current(),
		Lamp:  state.Lamp(),
	}
	if v := monitor.CheckOutput(out); v != nil {
		return state, pulse, v
	}
	if v := monitor.CheckSafety(out); v != nil {
		return state, pulse, v
	}
	return state, pulse, nil
}

// Tick runs one tick of the correct controller. See Simulator.Tick.
func Tick(state controller.State, k int, press, motion, prior bool) (controller.State, bool, *monitor.Violation) {
	return New(controller.VariantCorrect).Tick(state, k, press, motion, prior)
}
