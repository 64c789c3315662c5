package controller

import "fmt"

// Mode is the operating mode of the lamp controller
type Mode int

const (
	// The lamp is off and the timer is held at 0
	Idle Mode = iota
	// The lamp is on until the button is pressed again
	SteadyOn
	// The lamp is on while the motion timer has not expired
	Motion
)

func (m Mode) String() string {
	switch m {
	case Idle:
		return "Idle"
	case SteadyOn:
		return "SteadyOn"
	case Motion:
		return "Motion"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}
