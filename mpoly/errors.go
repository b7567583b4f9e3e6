package mpoly

import "errors"

// Every contract violation of this package is reported with one of these
// sentinels, possibly wrapped with context. Match them with errors.Is.
var (
	ErrEmptyMonomial     = errors.New("mpoly: monomial must have at least one exponent")
	ErrNegativeExponent  = errors.New("mpoly: negative exponent")
	ErrDimensionMismatch = errors.New("mpoly: dimension mismatch")
	ErrUnknownOrder      = errors.New("mpoly: unknown monomial ordering")
	ErrNotDivisible      = errors.New("mpoly: monomial is not divisible")
	ErrDivisionByZero    = errors.New("mpoly: division by zero")
	ErrZeroPolynomial    = errors.New("mpoly: zero polynomial has no leading term")
	ErrNotUnivariate     = errors.New("mpoly: polynomials are not univariate in a common indeterminate")
	ErrLengthMismatch    = errors.New("mpoly: coefficients and exponents differ in length")
	ErrRingMismatch      = errors.New("mpoly: polynomials belong to different rings")
	ErrTooFewNames       = errors.New("mpoly: fewer variable names than indeterminates")
	ErrInvalidName       = errors.New("mpoly: invalid variable name")
)
