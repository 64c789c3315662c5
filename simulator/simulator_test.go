package simulator

import (
	"testing"

	"lampmc/controller"
	"lampmc/monitor"
)

func in(press, motion bool) controller.Input {
	return controller.Input{Press: press, Motion: motion}
}

func TestTickFirstPress(t *testing.T) {
	s, pulse, v := Tick(controller.NewState(), 0, true, false, false)
	if v != nil {
		t.Fatalf("Unexpected violation: %v", v)
	}
	if !pulse {
		t.Errorf("Expected a pulse on the first press")
	}
	if s.Mode.Current() != controller.SteadyOn || s.Timer.Current() != controller.InitialTimerValue || s.Lamp() != 1 {
		t.Errorf("Expected SteadyOn with timer 10 and lamp 1. Got %v", s)
	}
}

func TestTickHeldButton(t *testing.T) {
	records, v := New(controller.VariantCorrect).Replay([]controller.Input{in(true, false), in(true, false)})
	if v != nil {
		t.Fatalf("Unexpected violation: %v", v)
	}
	last := records[1]
	if last.Pulse {
		t.Errorf("Holding the button must not produce a second pulse")
	}
	if last.State.Mode.Current() != controller.SteadyOn || last.State.Timer.Current() != controller.InitialTimerValue || last.Lamp() != 1 {
		t.Errorf("Expected the lamp to stay in SteadyOn with timer 10. Got %v", last.State)
	}
}

func TestTickMotionTimeout(t *testing.T) {
	trace := []controller.Input{in(true, false), in(false, false), in(true, false)}
	for i := 0; i < 11; i++ {
		trace = append(trace, in(false, false))
	}
	records, v := New(controller.VariantCorrect).Replay(trace)
	if v != nil {
		t.Fatalf("Unexpected violation: %v", v)
	}
	if records[2].State.Mode.Current() != controller.Motion {
		t.Fatalf("Expected Motion after the second press. Got %v", records[2].State)
	}
	for i := 1; i <= 11; i++ {
		r := records[2+i]
		switch {
		case i < 10:
			if r.State.Mode.Current() != controller.Motion || r.State.Timer.Current() != controller.InitialTimerValue-i || r.Lamp() != 1 {
				t.Errorf("Release tick %v: expected Motion with timer %v. Got %v", i, controller.InitialTimerValue-i, r.State)
			}
		default:
			if r.State.Mode.Current() != controller.Idle || r.State.Timer.Current() != 0 || r.Lamp() != 0 {
				t.Errorf("Release tick %v: expected Idle with the lamp off. Got %v", i, r.State)
			}
		}
	}
}

func TestTickDoesNotModifyInput(t *testing.T) {
	s := controller.NewState()
	s, _, _ = Tick(s, 0, true, false, false)
	before := s.Fingerprint()
	Tick(s, 1, false, true, true)
	Tick(s, 1, true, true, true)
	if s.Fingerprint() != before {
		t.Errorf("Tick modified the provided state")
	}
}

func TestEdgeViolationSkipsStep(t *testing.T) {
	sim := New(controller.VariantLevelButton)
	s, _, v := sim.Tick(sim.Reset(), 0, true, false, false)
	if v != nil {
		t.Fatalf("Unexpected violation on the first press: %v", v)
	}
	next, pulse, v := sim.Tick(s, 1, true, false, true)
	if v == nil || v.Property != monitor.PulseMatchesEdge || v.Tick != 1 {
		t.Fatalf("Expected A1 at tick 1. Got %v", v)
	}
	if !pulse {
		t.Errorf("Expected the faulty pulse to be returned")
	}
	// The controller step must not have run: SteadyOn would have moved to Motion
	if next.Mode.Current() != controller.SteadyOn || next.Mode.Previous() != controller.Idle {
		t.Errorf("Controller stepped after an edge violation: %v", next)
	}
}

// Every input sequence of length 6 is run on the correct controller.
// No property may fail and the lamp must follow the mode and timer.
func TestReachableStatesHoldInvariants(t *testing.T) {
	const length = 6
	symbols := controller.Inputs()
	total := 1
	for i := 0; i < length; i++ {
		total *= len(symbols)
	}
	sim := New(controller.VariantCorrect)
	for n := 0; n < total; n++ {
		trace := make([]controller.Input, length)
		rest := n
		for i := range trace {
			trace[i] = symbols[rest%len(symbols)]
			rest /= len(symbols)
		}
		records, v := sim.Replay(trace)
		if v != nil {
			t.Fatalf("Trace %v broke %v", trace, v)
		}
		for k, r := range records {
			timer := r.State.Timer.Current()
			mode := r.State.Mode.Current()
			if timer < 0 || timer > controller.InitialTimerValue {
				t.Fatalf("Trace %v: timer %v out of range at tick %v", trace, timer, k)
			}
			if mode == controller.Idle && timer != 0 {
				t.Fatalf("Trace %v: Idle with timer %v at tick %v", trace, timer, k)
			}
			if k > 0 && trace[k-1].Press && trace[k].Press && r.Pulse {
				t.Fatalf("Trace %v: pulse while held at tick %v", trace, k)
			}
		}
	}
}

func TestReplayStopsAtViolation(t *testing.T) {
	sim := New(controller.VariantLegacyIdleTimer)
	records, v := sim.Replay([]controller.Input{in(false, false), in(true, false)})
	if v == nil || v.Property != monitor.IdleTimerZero || v.Tick != 0 {
		t.Fatalf("Expected C2 at tick 0. Got %v", v)
	}
	if len(records) != 1 {
		t.Errorf("Expected the replay to stop after the first tick. Got %v records", len(records))
	}
}
