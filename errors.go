package bezier

import "errors"

var (
	// ErrNoRatioExists is returned when the A-B:B-C projection ratio is
	// requested for a curve order other than 2 or 3. It is also returned by
	// curve fitting for unsupported orders.
	ErrNoRatioExists = errors.New("projection ratio only exists for quadratic and cubic curves")

	// ErrParameterRange is returned when a curve parameter must lie strictly
	// between 0 and 1 but doesn't.
	ErrParameterRange = errors.New("parameter must be strictly between 0 and 1")
)
