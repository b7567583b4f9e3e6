package field

import "math/big"

// Rationals is the field Q with exact math/big arithmetic.
// Every operation returns a freshly allocated value.
type Rationals struct{}

var _ Field[*big.Rat] = Rationals{}

func NewRationals() Rationals { return Rationals{} }

func (Rationals) Zero() *big.Rat { return new(big.Rat) }
func (Rationals) One() *big.Rat  { return big.NewRat(1, 1) }

func (Rationals) Add(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(a, b) }
func (Rationals) Sub(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(a, b) }
func (Rationals) Mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }
func (Rationals) Neg(a *big.Rat) *big.Rat    { return new(big.Rat).Neg(a) }

func (Rationals) Inverse(a *big.Rat) *big.Rat {
	if a.Sign() == 0 {
		panic("zero has no inverse")
	}

	return new(big.Rat).Inv(a)
}

func (Rationals) Equals(a, b *big.Rat) bool { return a.Cmp(b) == 0 }
func (Rationals) IsZero(a *big.Rat) bool    { return a.Sign() == 0 }
func (Rationals) Cmp(a, b *big.Rat) int     { return a.Cmp(b) }

func (Rationals) FromInt64(v int64) *big.Rat { return new(big.Rat).SetInt64(v) }

// Format prints integers without a denominator, everything else as a/b.
func (Rationals) Format(a *big.Rat) string {
	return a.RatString()
}

// Rat is a shorthand for the rational num/den.
func Rat(num, den int64) *big.Rat {
	return big.NewRat(num, den)
}
