package rpc

import (
	"errors"
	"fmt"
	"math"
	"time"

	"google.golang.org/protobuf/types/known/structpb"

	"lampmc/monitor"
	"lampmc/report"
	"lampmc/search"
	"lampmc/simulator"
)

var ErrInvalidField = errors.New("rpc: invalid field")

// CheckRequest configures a remote check. Zero values select the defaults.
type CheckRequest struct {
	Horizon int
	Workers int
	Variant string
}

// CheckResponse is the outcome of a remote check
type CheckResponse struct {
	RunID   string
	Variant string
	Horizon int
	Found   bool
	// The counterexample in the format of report.FormatTrace. Empty if none was found.
	Trace     string
	Violation *monitor.Violation
	Stats     search.Stats
	Elapsed   time.Duration
}

// ReplayRequest replays a trace on a controller variant
type ReplayRequest struct {
	Variant string
	Trace   string
}

// ReplayTick is one replayed tick
type ReplayTick struct {
	Tick  int
	Input string
	Pulse bool
	Mode  string
	Timer int
	Lamp  int
}

// ReplayResponse holds the replayed ticks and the violation that stopped the replay, if any
type ReplayResponse struct {
	Ticks     []ReplayTick
	Violation *monitor.Violation
}

func (r CheckRequest) encode() (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]interface{}{
		"horizon": r.Horizon,
		"workers": r.Workers,
		"variant": r.Variant,
	})
}

func decodeCheckRequest(s *structpb.Struct) (CheckRequest, error) {
	horizon, err := intField(s, "horizon")
	if err != nil {
		return CheckRequest{}, err
	}
	workers, err := intField(s, "workers")
	if err != nil {
		return CheckRequest{}, err
	}
	variant, err := stringField(s, "variant")
	if err != nil {
		return CheckRequest{}, err
	}
	return CheckRequest{Horizon: horizon, Workers: workers, Variant: variant}, nil
}

func encodeCheckResponse(res *search.Result) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]interface{}{
		"run_id":    res.RunID,
		"variant":   res.Variant.String(),
		"horizon":   res.Horizon,
		"found":     res.Found,
		"trace":     report.FormatTrace(res.Trace),
		"violation": violationValue(res.Violation),
		"stats": map[string]interface{}{
			"expanded":  res.Stats.Expanded,
			"generated": res.Stats.Generated,
			"pruned":    res.Stats.Pruned,
			"states":    res.Stats.States,
			"depth":     res.Stats.Depth,
		},
		"elapsed": res.Elapsed.String(),
	})
}

func decodeCheckResponse(s *structpb.Struct) (*CheckResponse, error) {
	fields := s.GetFields()
	elapsed, err := time.ParseDuration(fields["elapsed"].GetStringValue())
	if err != nil {
		return nil, fmt.Errorf("%w: elapsed: %v", ErrInvalidField, err)
	}
	stats := fields["stats"].GetStructValue()
	return &CheckResponse{
		RunID:     fields["run_id"].GetStringValue(),
		Variant:   fields["variant"].GetStringValue(),
		Horizon:   int(fields["horizon"].GetNumberValue()),
		Found:     fields["found"].GetBoolValue(),
		Trace:     fields["trace"].GetStringValue(),
		Violation: decodeViolation(fields["violation"]),
		Stats: search.Stats{
			Expanded:  int(stats.GetFields()["expanded"].GetNumberValue()),
			Generated: int(stats.GetFields()["generated"].GetNumberValue()),
			Pruned:    int(stats.GetFields()["pruned"].GetNumberValue()),
			States:    int(stats.GetFields()["states"].GetNumberValue()),
			Depth:     int(stats.GetFields()["depth"].GetNumberValue()),
		},
		Elapsed: elapsed,
	}, nil
}

func (r ReplayRequest) encode() (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]interface{}{
		"variant": r.Variant,
		"trace":   r.Trace,
	})
}

func decodeReplayRequest(s *structpb.Struct) (ReplayRequest, error) {
	variant, err := stringField(s, "variant")
	if err != nil {
		return ReplayRequest{}, err
	}
	trace, err := stringField(s, "trace")
	if err != nil {
		return ReplayRequest{}, err
	}
	return ReplayRequest{Variant: variant, Trace: trace}, nil
}

func encodeReplayResponse(records []simulator.Record, v *monitor.Violation) (*structpb.Struct, error) {
	ticks := make([]interface{}, len(records))
	for i, r := range records {
		ticks[i] = map[string]interface{}{
			"tick":  r.Tick,
			"input": r.Input.String(),
			"pulse": r.Pulse,
			"mode":  r.State.Mode.Current().String(),
			"timer": r.State.Timer.Current(),
			"lamp":  r.Lamp(),
		}
	}
	return structpb.NewStruct(map[string]interface{}{
		"ticks":     ticks,
		"violation": violationValue(v),
	})
}

func decodeReplayResponse(s *structpb.Struct) *ReplayResponse {
	fields := s.GetFields()
	values := fields["ticks"].GetListValue().GetValues()
	ticks := make([]ReplayTick, len(values))
	for i, value := range values {
		f := value.GetStructValue().GetFields()
		ticks[i] = ReplayTick{
			Tick:  int(f["tick"].GetNumberValue()),
			Input: f["input"].GetStringValue(),
			Pulse: f["pulse"].GetBoolValue(),
			Mode:  f["mode"].GetStringValue(),
			Timer: int(f["timer"].GetNumberValue()),
			Lamp:  int(f["lamp"].GetNumberValue()),
		}
	}
	return &ReplayResponse{
		Ticks:     ticks,
		Violation: decodeViolation(fields["violation"]),
	}
}

// A missing violation is encoded as a null value
func violationValue(v *monitor.Violation) interface{} {
	if v == nil {
		return nil
	}
	return map[string]interface{}{
		"property":    string(v.Property),
		"tick":        v.Tick,
		"explanation": v.Explanation,
	}
}

func decodeViolation(value *structpb.Value) *monitor.Violation {
	s := value.GetStructValue()
	if s == nil {
		return nil
	}
	f := s.GetFields()
	return &monitor.Violation{
		Property:    monitor.Property(f["property"].GetStringValue()),
		Tick:        int(f["tick"].GetNumberValue()),
		Explanation: f["explanation"].GetStringValue(),
	}
}

// Returns 0 if the field is missing or null
func intField(s *structpb.Struct, name string) (int, error) {
	value, ok := s.GetFields()[name]
	if !ok {
		return 0, nil
	}
	switch k := value.GetKind().(type) {
	case *structpb.Value_NullValue:
		return 0, nil
	case *structpb.Value_NumberValue:
		if k.NumberValue != math.Trunc(k.NumberValue) || math.Abs(k.NumberValue) > math.MaxInt32 {
			return 0, fmt.Errorf("%w: %v must be an integer, got %v", ErrInvalidField, name, k.NumberValue)
		}
		return int(k.NumberValue), nil
	}
	return 0, fmt.Errorf("%w: %v must be a number", ErrInvalidField, name)
}

// Returns the empty string if the field is missing or null
func stringField(s *structpb.Struct, name string) (string, error) {
	value, ok := s.GetFields()[name]
	if !ok {
		return "", nil
	}
	switch k := value.GetKind().(type) {
	case *structpb.Value_NullValue:
		return "", nil
	case *structpb.Value_StringValue:
		return k.StringValue, nil
	}
	return "", fmt.Errorf("%w: %v must be a string", ErrInvalidField, name)
}
