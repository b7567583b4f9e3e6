package mpoly

import (
	"fmt"
	"strconv"
	"strings"
)

// Monomial is an exponent vector over a fixed number of indeterminates.
// Values are immutable: every operation returns a new Monomial.
type Monomial struct {
	exps []int
}

// NewMonomial copies exps into a Monomial. At least one exponent is
// required and none may be negative.
func NewMonomial(exps ...int) (Monomial, error) {
	if len(exps) == 0 {
		return Monomial{}, ErrEmptyMonomial
	}

	inner := make([]int, len(exps))
	for i, e := range exps {
		if e < 0 {
			return Monomial{}, fmt.Errorf("%w: exponent %d at position %d", ErrNegativeExponent, e, i)
		}

		inner[i] = e
	}

	return Monomial{exps: inner}, nil
}

// One returns the constant monomial of dimension dim.
func One(dim int) (Monomial, error) {
	if dim <= 0 {
		return Monomial{}, ErrEmptyMonomial
	}

	return Monomial{exps: make([]int, dim)}, nil
}

// Variable returns the monomial x_i of dimension dim.
func Variable(dim, i int) (Monomial, error) {
	m, err := One(dim)
	if err != nil {
		return Monomial{}, err
	}

	if i < 0 || i >= dim {
		return Monomial{}, fmt.Errorf("%w: variable %d of %d", ErrDimensionMismatch, i, dim)
	}

	m.exps[i] = 1

	return m, nil
}

func (m Monomial) Dim() int {
	return len(m.exps)
}

// Degree is the total degree, the sum of the exponents.
func (m Monomial) Degree() int {
	deg := 0
	for _, e := range m.exps {
		deg += e
	}

	return deg
}

// Exponent returns the exponent of the i-th indeterminate.
func (m Monomial) Exponent(i int) int {
	return m.exps[i]
}

// Exponents returns a copy of the exponent vector.
func (m Monomial) Exponents() []int {
	cpy := make([]int, len(m.exps))
	copy(cpy, m.exps)

	return cpy
}

func (m Monomial) IsConstant() bool {
	for _, e := range m.exps {
		if e != 0 {
			return false
		}
	}

	return true
}

// Equals reports whether m and o have the same exponents. Monomials of
// different dimension are never equal.
func (m Monomial) Equals(o Monomial) bool {
	if len(m.exps) != len(o.exps) {
		return false
	}

	for i := range m.exps {
		if m.exps[i] != o.exps[i] {
			return false
		}
	}

	return true
}

func checkDims(m, o Monomial) error {
	if len(m.exps) != len(o.exps) {
		return fmt.Errorf("%w: %d != %d", ErrDimensionMismatch, len(m.exps), len(o.exps))
	}

	return nil
}

// Combine computes m[i] + scale*o[i] for every position. scale=1 is the
// product, scale=-1 the quotient.
func (m Monomial) Combine(o Monomial, scale int) (Monomial, error) {
	if err := checkDims(m, o); err != nil {
		return Monomial{}, err
	}

	out := make([]int, len(m.exps))
	for i := range m.exps {
		out[i] = m.exps[i] + scale*o.exps[i]
		if out[i] < 0 {
			return Monomial{}, fmt.Errorf("%w: %v by %v", ErrNotDivisible, m, o)
		}
	}

	return Monomial{exps: out}, nil
}

// mul assumes equal dimensions.
func (m Monomial) mul(o Monomial) Monomial {
	out := make([]int, len(m.exps))
	for i := range m.exps {
		out[i] = m.exps[i] + o.exps[i]
	}

	return Monomial{exps: out}
}

func (m Monomial) Mul(o Monomial) (Monomial, error) {
	return m.Combine(o, 1)
}

// Quo returns m/o, failing with ErrNotDivisible when o does not divide m.
func (m Monomial) Quo(o Monomial) (Monomial, error) {
	return m.Combine(o, -1)
}

// Pow returns m^k, k >= 0.
func (m Monomial) Pow(k int) (Monomial, error) {
	if k < 0 {
		return Monomial{}, fmt.Errorf("%w: power %d", ErrNegativeExponent, k)
	}

	return m.Combine(m, k-1)
}

// DivisibleBy reports whether every exponent of m is at least the
// corresponding exponent of o. Monomials of different dimension never
// divide each other; callers that must reject them use Quo, which returns
// ErrDimensionMismatch.
func (m Monomial) DivisibleBy(o Monomial) bool {
	if len(m.exps) != len(o.exps) {
		return false
	}

	for i := range m.exps {
		if m.exps[i] < o.exps[i] {
			return false
		}
	}

	return true
}

// LCM is the componentwise maximum of the exponents.
func (m Monomial) LCM(o Monomial) (Monomial, error) {
	if err := checkDims(m, o); err != nil {
		return Monomial{}, err
	}

	out := make([]int, len(m.exps))
	for i := range m.exps {
		out[i] = max(m.exps[i], o.exps[i])
	}

	return Monomial{exps: out}, nil
}

// String prints the raw exponent vector, e.g. [2 0 1].
func (m Monomial) String() string {
	bldr := strings.Builder{}
	bldr.WriteByte('[')

	for i, e := range m.exps {
		if i > 0 {
			bldr.WriteByte(' ')
		}

		bldr.WriteString(strconv.Itoa(e))
	}

	bldr.WriteByte(']')

	return bldr.String()
}
