package field

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"

	"github.com/tuneinsight/lattigo/v6/ring"
	"lukechampine.com/uint128"
)

// PrimeField is GF(p) for a prime p < 2^63. Elements are canonical
// representatives in [0, p).
type PrimeField struct {
	prime     uint64
	generator uint64
	factors   []uint64
}

var (
	ErrPrimeTooLarge = errors.New("field: supporting up to 63-bit prime")
	ErrNotPrime      = errors.New("field: only prime fields are supported, please use a prime order")
)

const maxBitUsage = 63

var _ Field[uint64] = (*PrimeField)(nil)

func NewPrimeField(prime uint64) (*PrimeField, error) {
	if prime > (1 << maxBitUsage) {
		return nil, ErrPrimeTooLarge
	}

	b := (&big.Int{}).SetUint64(prime)
	// ProbablyPrime is exact for 64-bit inputs, a single round is enough.
	if !b.ProbablyPrime(1) {
		return nil, ErrNotPrime
	}

	g, factors, err := ring.PrimitiveRoot(prime, nil)
	if err != nil {
		return nil, fmt.Errorf("field: primitive root of %d: %w", prime, err)
	}

	return &PrimeField{
		prime:     prime,
		generator: g,
		factors:   factors,
	}, nil
}

func (f *PrimeField) Modulus() uint64 {
	return f.prime
}

// Generator returns a primitive root of the multiplicative group.
func (f *PrimeField) Generator() uint64 {
	return f.generator
}

// Factors returns the distinct prime factors of p-1.
func (f *PrimeField) Factors() []uint64 {
	return f.factors
}

func (f *PrimeField) Zero() uint64 { return 0 }
func (f *PrimeField) One() uint64  { return 1 }

func (f *PrimeField) Reduce(val uint64) uint64 {
	return val % f.prime
}

func (f *PrimeField) FromInt64(v int64) uint64 {
	if v >= 0 {
		return f.Reduce(uint64(v))
	}

	// -(math.MinInt64) overflows int64, so negate v+1 first.
	return f.Neg(f.Reduce(uint64(-(v+1)) + 1))
}

// FromRat maps num/den to num * den^-1 mod p.
func (f *PrimeField) FromRat(r *big.Rat) (uint64, error) {
	mod := (&big.Int{}).SetUint64(f.prime)

	num := (&big.Int{}).Mod(r.Num(), mod)
	den := (&big.Int{}).Mod(r.Denom(), mod)
	if den.Sign() == 0 {
		return 0, fmt.Errorf("%w: denominator %s vanishes mod %d", ErrNotInvertible, r.Denom(), f.prime)
	}

	return f.Mul(num.Uint64(), f.Inverse(den.Uint64())), nil
}

func (f *PrimeField) Add(a, b uint64) uint64 {
	tmp := a + b // can't overflow since adding two integers smaller than 2^63.
	if tmp >= f.prime {
		tmp -= f.prime
	}

	return tmp
}

func (f *PrimeField) Sub(a, b uint64) uint64 {
	if a < b {
		return f.prime - (b - a)
	}

	return a - b
}

// Mul returns a * b (mod field prime).
func (f *PrimeField) Mul(a, b uint64) uint64 {
	if a == 0 || b == 0 {
		return 0
	}

	return fieldMul(a, b, f.prime)
}

func fieldMul(a, b uint64, mod uint64) uint64 {
	_, rem := uint128.From64(a).Mul64(b).QuoRem64(mod)

	return rem
}

// https://en.wikipedia.org/wiki/Exponentiation_by_squaring
func (f *PrimeField) Pow(base, exp uint64) uint64 {
	mod := f.prime

	x := uint64(1)
	for exp > 0 {
		if exp%2 == 1 {
			x = fieldMul(x, base, mod)
		}

		base = fieldMul(base, base, mod)
		exp /= 2
	}

	return x % mod
}

func (f *PrimeField) Inverse(e uint64) uint64 {
	// Fermat's little theorem: a^(p-1) = 1 (mod p), thus a^(p-2) is the inverse of a.
	if f.Reduce(e) == 0 {
		panic("zero has no inverse")
	}

	return f.Pow(e, f.prime-2)
}

func (f *PrimeField) Neg(e uint64) uint64 {
	if e == 0 {
		return 0
	}

	return f.prime - e
}

func (f *PrimeField) Equals(a, b uint64) bool {
	mod := f.prime
	return (a % mod) == (b % mod)
}

func (f *PrimeField) IsZero(a uint64) bool {
	return a%f.prime == 0
}

func (f *PrimeField) Cmp(a, b uint64) int {
	a, b = f.Reduce(a), f.Reduce(b)

	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Format prints the centered representative, so p-1 prints as -1.
func (f *PrimeField) Format(a uint64) string {
	a = f.Reduce(a)
	if a > f.prime/2 {
		return "-" + strconv.FormatUint(f.prime-a, 10)
	}

	return strconv.FormatUint(a, 10)
}
