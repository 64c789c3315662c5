package cell

// Cell stores the current value of a variable together with the value it held before the last update.
//
// A Cell is a plain value. Assigning or copying it yields an independent cell.
// The zero value is a cell where both current and previous are the zero value of T.
type Cell[T comparable] struct {
	current  T
	previous T
}

// Create a cell holding the provided current and previous values
func New[T comparable](current, previous T) Cell[T] {
	return Cell[T]{
		current:  current,
		previous: previous,
	}
}

// Set the current value. The old current value becomes the previous value.
func (c *Cell[T]) Set(v T) {
	c.previous = c.current
	c.current = v
}

func (c Cell[T]) Current() T {
	return c.current
}

func (c Cell[T]) Previous() T {
	return c.previous
}

// Returns true if the current value differs from the previous value
func (c Cell[T]) Changed() bool {
	return c.current != c.previous
}
