package field

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const largePrime = 9191248642791733759

func TestNewPrimeField(t *testing.T) {
	a := assert.New(t)

	_, err := NewPrimeField(158)
	a.ErrorIs(err, ErrNotPrime)

	_, err = NewPrimeField(1<<63 + 1)
	a.ErrorIs(err, ErrPrimeTooLarge)

	f, err := NewPrimeField(157)
	a.NoError(err)
	a.Equal(uint64(157), f.Modulus())
}

func TestGenerator(t *testing.T) {
	a := assert.New(t)

	for _, p := range []uint64{157, 65537} {
		f, err := NewPrimeField(p)
		require.NoError(t, err)

		g := f.Generator()
		a.Equal(uint64(1), f.Pow(g, p-1))

		a.NotEmpty(f.Factors())
		for _, q := range f.Factors() {
			a.Zero((p-1)%q)
			a.NotEqual(uint64(1), f.Pow(g, (p-1)/q), "g=%d is not primitive mod %d", g, p)
		}
	}
}

func TestCorrectOps(t *testing.T) {
	a := assert.New(t)

	f, err := NewPrimeField(largePrime) // p > 2^62
	a.NoError(err)

	n := f.Reduce(uint64((1 << 63) - 1))

	mod := (&big.Int{}).SetUint64(largePrime)
	e2 := (&big.Int{}).SetUint64(n)
	e2.Mul(e2, e2)
	e2.Mod(e2, mod)

	a.Equal(e2.Uint64(), f.Mul(n, n))
	a.Equal(uint64(1), f.Mul(n, f.Inverse(n)))
	a.True(f.IsZero(f.Add(n, f.Neg(n))))
	a.Equal(f.Sub(0, n), f.Neg(n))
}

func TestPrimeFromInt64(t *testing.T) {
	a := assert.New(t)

	f, err := NewPrimeField(157)
	require.NoError(t, err)

	a.Equal(uint64(156), f.FromInt64(-1))
	a.Equal(uint64(3), f.FromInt64(160))
	a.Equal(uint64(0), f.FromInt64(-157))
	a.True(IsNegOne[uint64](f, f.FromInt64(-1)))

	// must not overflow.
	minInt := f.FromInt64(-1 << 63)
	a.True(f.IsZero(f.Add(minInt, f.Reduce(1<<63))))
}

func TestPrimeFromRat(t *testing.T) {
	a := assert.New(t)

	f, err := NewPrimeField(157)
	require.NoError(t, err)

	half, err := f.FromRat(Rat(1, 2))
	a.NoError(err)
	a.Equal(uint64(1), f.Mul(half, 2))

	neg, err := f.FromRat(Rat(-3, 1))
	a.NoError(err)
	a.Equal(uint64(154), neg)

	_, err = f.FromRat(Rat(1, 157))
	a.ErrorIs(err, ErrNotInvertible)
}

func TestPrimeFormat(t *testing.T) {
	a := assert.New(t)

	f, err := NewPrimeField(157)
	require.NoError(t, err)

	a.Equal("5", f.Format(5))
	a.Equal("-1", f.Format(156))
	a.Equal("78", f.Format(78))
	a.Equal("-78", f.Format(79))
	a.Equal(-1, f.Cmp(3, 5))
	a.Equal(0, f.Cmp(3, 160))
}

func TestRationals(t *testing.T) {
	a := assert.New(t)

	q := NewRationals()
	x := Rat(2, 3)
	y := Rat(-1, 6)

	a.Equal("1/2", q.Format(q.Add(x, y)))
	a.Equal("5/6", q.Format(q.Sub(x, y)))
	a.Equal("-1/9", q.Format(q.Mul(x, y)))
	a.Equal("-6", q.Format(q.Inverse(y)))
	a.Equal("-4", q.Format(Div[*big.Rat](q, x, y)))
	a.True(IsOne[*big.Rat](q, q.Mul(x, q.Inverse(x))))
	a.True(IsNegOne[*big.Rat](q, q.FromInt64(-1)))

	// operands are never mutated.
	a.Equal("2/3", x.RatString())
	a.Equal("-1/6", y.RatString())

	a.Panics(func() { q.Inverse(q.Zero()) })
}

func FuzzInverse(f *testing.F) {
	testcases := []uint64{1, 54347, 4534523, 021310, 1<<63 - 1}
	for _, tc := range testcases {
		f.Add(tc) // Use f.Add to provide a seed corpus
	}

	fld, err := NewPrimeField(largePrime)
	if err != nil {
		f.FailNow()
	}

	f.Fuzz(func(t *testing.T, num uint64) {
		e1 := fld.Reduce(num)
		if e1 == 0 {
			t.Skip()
		}

		res := fld.Mul(e1, fld.Inverse(e1))
		if res != 1 {
			t.Fatalf("expected 1, got %d", res)
		}
	})
}

func FuzzNegate(f *testing.F) {
	testcases := []uint64{1, 54347, 4534523, 021310, 1<<63 - 1}
	for _, tc := range testcases {
		f.Add(tc) // Use f.Add to provide a seed corpus
	}

	fld, err := NewPrimeField(largePrime)
	if err != nil {
		f.FailNow()
	}

	f.Fuzz(func(t *testing.T, num uint64) {
		e1 := fld.Reduce(num)
		ne1 := fld.Neg(e1)

		if fld.Add(ne1, e1) != uint64(0) {
			t.Fatalf("expected 0, got %d", fld.Add(ne1, e1))
		}
	})
}

func BenchmarkMulMod(b *testing.B) {
	f, err := NewPrimeField(largePrime)
	if err != nil {
		b.FailNow()
	}

	e1 := f.Reduce((1 << 63) - 2)
	e2 := f.Reduce((1 << 60) + 312)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.Mul(e1, e2)
	}
}

func BenchmarkMulModBig(b *testing.B) {
	mod := (&big.Int{}).SetUint64(largePrime)

	b1 := big.NewInt((1 << 63) - 2)
	b2 := big.NewInt((1 << 60) + 312)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b1.Mul(b1, b2)
		b1.Mod(b1, mod)
	}
}
