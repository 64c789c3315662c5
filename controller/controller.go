package controller

import "lampmc/cell"

// Detect updates the button cell with the raw button level and returns the press pulse.
//
// The pulse is true only on a rising edge, i.e. when the button is pressed now and was released on the previous tick.
func Detect(press bool, button *cell.Cell[bool]) bool {
	return VariantCorrect.Detect(press, button)
}

// Step advances the mode and the motion timer by one tick.
func Step(pulse, motion bool, timer *cell.Cell[int], mode *cell.Cell[Mode]) {
	VariantCorrect.Step(pulse, motion, timer, mode)
}

// Lamp returns the lamp output, 1 for on and 0 for off.
//
// The output is derived from the mode and timer and is never stored.
func Lamp(mode Mode, timer int) int {
	switch mode {
	case SteadyOn:
		return 1
	case Motion:
		if timer > 0 {
			return 1
		}
	}
	return 0
}
