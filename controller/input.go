package controller

// Input is the symbol consumed by the controller in one tick
type Input struct {
	// The raw level of the button. A held button stays true across ticks.
	Press bool
	// True if the motion sensor fired during the tick
	Motion bool
}

// The four input symbols in enumeration order.
// The order decides which counterexample is reported when several of the same length exist.
var inputs = [4]Input{
	{Press: false, Motion: false},
	{Press: false, Motion: true},
	{Press: true, Motion: false},
	{Press: true, Motion: true},
}

// Returns every input symbol in enumeration order: FF, FT, TF, TT
func Inputs() []Input {
	out := make([]Input, len(inputs))
	copy(out, inputs[:])
	return out
}

// Compact representation of the symbol, press first and motion second. E.g. "TF"
func (in Input) String() string {
	return flag(in.Press) + flag(in.Motion)
}

func flag(b bool) string {
	if b {
		return "T"
	}
	return "F"
}
