package algebra

import "errors"

// Error kinds surfaced by constructors and by Simplify. Match with
// errors.Is; the concrete error may carry operation context.
var (
	// ErrDivisionByZero reports a zero denominator or zero divisor:
	// Rat with q == 0, or a negative integer exponent applied to a base
	// that simplifies to zero.
	ErrDivisionByZero = errors.New("algebra: division by zero")

	// ErrInvalidRadical reports a radical with index < 2, or an
	// even-index radical of a negative radicand.
	ErrInvalidRadical = errors.New("algebra: invalid radical")
)
