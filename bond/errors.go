package bond

import "errors"

var (
	// ErrInvalidDateOrder reports an accrual window whose issue date falls
	// after its first interest date.
	ErrInvalidDateOrder = errors.New("issue date after first interest date")

	// ErrYieldNoConvergence reports a yield solve that exhausted its
	// iteration budget or hit a vanishing derivative.
	ErrYieldNoConvergence = errors.New("yield solver did not converge")

	// ErrYieldOutOfRange reports a converged yield outside the 0-100
	// percent band.
	ErrYieldOutOfRange = errors.New("solved yield outside 0-100 percent")

	// ErrInvalidPriceFormat reports a malformed 32nds price quote.
	ErrInvalidPriceFormat = errors.New("invalid price quote")
)
