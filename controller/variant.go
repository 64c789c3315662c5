package controller

import (
	"errors"
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"lampmc/cell"
)

// Variant selects an implementation of the controller.
//
// Every variant except VariantCorrect contains a deliberate fault.
// They are used to show that the checker finds the fault and reports the shortest run exposing it.
type Variant int

const (
	// The controller as designed
	VariantCorrect Variant = iota
	// Leaving Motion for Idle does not clear the timer
	VariantSkipIdleEntryReset
	// Idle reloads the timer every tick and the controller starts with a loaded timer
	VariantLegacyIdleTimer
	// The edge detector passes the raw button level through instead of the rising edge
	VariantLevelButton
)

var ErrUnknownVariant = errors.New("controller: unknown variant")

var variantNames = map[Variant]string{
	VariantCorrect:            "correct",
	VariantSkipIdleEntryReset: "skip-idle-entry-reset",
	VariantLegacyIdleTimer:    "legacy-idle-timer",
	VariantLevelButton:        "level-button",
}

// Returns all variants ordered by value
func Variants() []Variant {
	out := maps.Keys(variantNames)
	slices.Sort(out)
	return out
}

// Returns the variant with the provided name.
// The empty string selects VariantCorrect.
func ParseVariant(name string) (Variant, error) {
	if name == "" {
		return VariantCorrect, nil
	}
	for v, n := range variantNames {
		if n == name {
			return v, nil
		}
	}
	return VariantCorrect, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
}

func (v Variant) String() string {
	if name, ok := variantNames[v]; ok {
		return name
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// Reset returns the state the controller starts in
func (v Variant) Reset() State {
	timer := 0
	if v == VariantLegacyIdleTimer {
		timer = InitialTimerValue
	}
	return State{
		Button: cell.New(false, false),
		Timer:  cell.New(timer, timer),
		Mode:   cell.New(Idle, Idle),
	}
}

// Detect is the edge detector of the variant. See Detect.
func (v Variant) Detect(press bool, button *cell.Cell[bool]) bool {
	button.Set(press)
	if v == VariantLevelButton {
		return press
	}
	return press && !button.Previous()
}

// Step is the transition function of the variant. See Step.
//
// The transition is chosen from the mode at the start of the tick.
func (v Variant) Step(pulse, motion bool, timer *cell.Cell[int], mode *cell.Cell[Mode]) {
	switch mode.Current() {
	case Idle:
		switch {
		case v == VariantLegacyIdleTimer:
			timer.Set(InitialTimerValue)
		case pulse:
			timer.Set(InitialTimerValue)
		default:
			timer.Set(0)
		}
		if pulse {
			mode.Set(SteadyOn)
		}

	case SteadyOn:
		if pulse {
			mode.Set(Motion)
		}

	case Motion:
		if motion {
			timer.Set(InitialTimerValue)
		} else {
			timer.Set(max(timer.Current()-1, 0))
		}
		if pulse || timer.Current() == 0 {
			mode.Set(Idle)
			if v.clearsTimerOnIdle() && timer.Current() != 0 {
				timer.Set(0)
			}
		}
	}
}

func (v Variant) clearsTimerOnIdle() bool {
	return v != VariantSkipIdleEntryReset && v != VariantLegacyIdleTimer
}
