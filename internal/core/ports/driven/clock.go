package driven

import "time"

// Clock supplies the wall-clock time an analysis run classifies against.
// Services read it exactly once per run.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

// Now returns the function's result.
func (f ClockFunc) Now() time.Time { return f() }
