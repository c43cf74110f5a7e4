package routing

import (
	"errors"
	"fmt"
)

// ErrNoRoute reports that both stations exist but no path connects them.
// This is an expected outcome on a disconnected graph.
var ErrNoRoute = errors.New("routing: no route found")

// UnknownStationError reports a query endpoint absent from the graph. It
// is recoverable: the caller can offer fuzzy suggestions.
type UnknownStationError struct {
	Station string
}

func (e *UnknownStationError) Error() string {
	return fmt.Sprintf("routing: unknown station %q", e.Station)
}
