package if97

import "fmt"

// OutOfRange reports an input outside the IF97 validity envelope for the
// selected region or the global envelope.
type OutOfRange struct {
	Variable string
	Value    float64
	Min, Max float64
}

func (e *OutOfRange) Error() string {
	return fmt.Sprintf("if97: %s=%g outside valid range [%g, %g]", e.Variable, e.Value, e.Min, e.Max)
}

// NoRegion reports that the classifier could not place an input point in
// any of the five basic regions.
type NoRegion struct {
	Kind   string // "T,p" | "p,h" | "p,s" | "h,s"
	Inputs [2]float64
}

func (e *NoRegion) Error() string {
	return fmt.Sprintf("if97: no region for (%s) = (%g, %g)", e.Kind, e.Inputs[0], e.Inputs[1])
}

// ConvergenceFailure reports that an iterative refiner (region 3 Newton
// step, a saturation iterate, or a generalized backward solve) failed to
// meet its tolerance.
type ConvergenceFailure struct {
	Operation    string
	LastResidual float64
	Iterations   int
	Seed         float64
}

func (e *ConvergenceFailure) Error() string {
	return fmt.Sprintf("if97: %s failed to converge after %d iterations (residual=%g, seed=%g)",
		e.Operation, e.Iterations, e.LastResidual, e.Seed)
}

// InvalidPair reports that the caller asked for a property pair the
// library does not support directly.
type InvalidPair struct {
	Kind string
}

func (e *InvalidPair) Error() string {
	return fmt.Sprintf("if97: unsupported input pair %q", e.Kind)
}
