package field

import "errors"

var (
	// ErrSurfaceUnavailable is returned by Start when there is nothing to draw on.
	ErrSurfaceUnavailable = errors.New("field: surface unavailable")

	// ErrInvalidParams indicates a Params value that cannot drive a simulation.
	ErrInvalidParams = errors.New("field: invalid parameters")
)
