package field

import "errors"

// Field is a commutative field with elements of type E.
// Implementations never mutate their arguments.
type Field[E any] interface {
	Zero() E
	One() E

	Add(a, b E) E
	Sub(a, b E) E
	Mul(a, b E) E
	Neg(a E) E
	// Inverse panics on zero; callers check IsZero first.
	Inverse(a E) E

	Equals(a, b E) bool
	IsZero(a E) bool
	// Cmp is a total order on canonical representatives. It carries no
	// algebraic meaning and is used only to break ties deterministically.
	Cmp(a, b E) int

	FromInt64(v int64) E
	Format(a E) string
}

var ErrNotInvertible = errors.New("field: element is not invertible")

// IsOne reports whether a is the multiplicative identity.
func IsOne[E any](f Field[E], a E) bool {
	return f.Equals(a, f.One())
}

// IsNegOne reports whether a is the additive inverse of one.
func IsNegOne[E any](f Field[E], a E) bool {
	return f.Equals(a, f.Neg(f.One()))
}

// Div returns a / b. b must be nonzero.
func Div[E any](f Field[E], a, b E) E {
	return f.Mul(a, f.Inverse(b))
}
