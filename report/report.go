package report

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"lampmc/controller"
	"lampmc/monitor"
	"lampmc/simulator"
)

var ErrInvalidTrace = errors.New("report: invalid trace")

// Formats the trace as comma separated symbols, e.g. "TF,FF,TT"
func FormatTrace(trace []controller.Input) string {
	symbols := make([]string, len(trace))
	for i, in := range trace {
		symbols[i] = in.String()
	}
	return strings.Join(symbols, ",")
}

// Parses a trace written by FormatTrace.
//
// Each symbol is two characters, press then motion, using T/F or 1/0. Whitespace around symbols is ignored.
// The empty string is the empty trace.
func ParseTrace(s string) ([]controller.Input, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return []controller.Input{}, nil
	}
	parts := strings.Split(s, ",")
	trace := make([]controller.Input, 0, len(parts))
	for i, part := range parts {
		part = strings.ToUpper(strings.TrimSpace(part))
		if len(part) != 2 {
			return nil, fmt.Errorf("%w: symbol %v %q must have two characters", ErrInvalidTrace, i, part)
		}
		press, err := parseLevel(part[0])
		if err != nil {
			return nil, fmt.Errorf("%w: symbol %v %q: %v", ErrInvalidTrace, i, part, err)
		}
		motion, err := parseLevel(part[1])
		if err != nil {
			return nil, fmt.Errorf("%w: symbol %v %q: %v", ErrInvalidTrace, i, part, err)
		}
		trace = append(trace, controller.Input{Press: press, Motion: motion})
	}
	return trace, nil
}

func parseLevel(c byte) (bool, error) {
	switch c {
	case 'T', '1':
		return true, nil
	case 'F', '0':
		return false, nil
	}
	return false, fmt.Errorf("unknown level %q", c)
}

// Names of all checked properties, e.g. "A1,A2,...,C2"
func PropertyList() string {
	names := make([]string, len(monitor.Properties))
	for i, p := range monitor.Properties {
		names[i] = string(p)
	}
	return strings.Join(names, ",")
}

// Write the outcome of a search.
//
// If v is nil the bounded negative result for the horizon is written.
// Otherwise the violated property, the first bad tick, the inputs up to and including that tick and the explanation are written.
func Write(w io.Writer, trace []controller.Input, v *monitor.Violation, horizon int) error {
	if v == nil {
		_, err := fmt.Fprintf(w, "NO COUNTEREXAMPLE FOUND up to H=%v for properties %v\nbounded result; not a proof beyond H.\n", horizon, PropertyList())
		return err
	}
	prefix := trace
	if v.Tick+1 < len(trace) {
		prefix = trace[:v.Tick+1]
	}
	_, err := fmt.Fprintf(w, "VIOLATION: %v\nfirst_bad_tick: k=%v\ninputs[0..k]: %v\nexplanation: %v\n", v.Property, v.Tick, FormatTrace(prefix), v.Explanation)
	return err
}

// Returns the text written by Write
func String(trace []controller.Input, v *monitor.Violation, horizon int) string {
	var buffer bytes.Buffer
	_ = Write(&buffer, trace, v, horizon)
	return buffer.String()
}

// Write a table with one row per replayed tick followed by the violation, if any
func WriteReplay(w io.Writer, records []simulator.Record, v *monitor.Violation) error {
	wrt := tabwriter.NewWriter(w, 4, 4, 1, ' ', 0)
	fmt.Fprintln(wrt, "k\tinput\tpulse\tmode\ttimer\tlamp\t")
	for _, r := range records {
		fmt.Fprintf(wrt, "%v\t%v\t%v\t%v\t%v\t%v\t\n", r.Tick, r.Input, r.Pulse, r.State.Mode.Current(), r.State.Timer.Current(), r.Lamp())
	}
	if err := wrt.Flush(); err != nil {
		return err
	}
	if v != nil {
		_, err := fmt.Fprintf(w, "VIOLATION: %v\n", v)
		return err
	}
	return nil
}
