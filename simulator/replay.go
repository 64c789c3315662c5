package simulator

import (
	"lampmc/controller"
	"lampmc/monitor"
)

// The observable outcome of one replayed tick
type Record struct {
	Tick  int
	Input controller.Input
	Pulse bool
	State controller.State
}

func (r Record) Lamp() int {
	return r.State.Lamp()
}

// Replay executes the trace from the reset state.
//
// Replaying stops at the first violation. The tick that broke the property is included as the last record.
// Returns the records of the executed ticks and the violation, or nil if the whole trace was executed without one.
func (s Simulator) Replay(trace []controller.Input) ([]Record, *monitor.Violation) {
	records := make([]Record, 0, len(trace))
	state := s.Reset()
	prior := false
	for k, in := range trace {
		next, pulse, v := s.Tick(state, k, in.Press, in.Motion, prior)
		records = append(records, Record{
			Tick:  k,
			Input: in,
			Pulse: pulse,
			State: next,
		})
		if v != nil {
			return records, v
		}
		state = next
		prior = in.Press
	}
	return records, nil
}
