package grid

import "fmt"

// ValidationError reports an out-of-domain strategy parameter. It is raised
// synchronously at initialization, before any candle is processed; a run is
// never started with silently corrected parameters.
type ValidationError struct {
	Param  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Param, e.Reason)
}

func invalid(param, format string, args ...any) *ValidationError {
	return &ValidationError{Param: param, Reason: fmt.Sprintf(format, args...)}
}
