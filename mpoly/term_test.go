package mpoly

import (
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func qterm(t testing.TB, num, den int64, exps ...int) Term[*big.Rat] {
	t.Helper()

	return NewTerm(big.NewRat(num, den), mono(t, exps...))
}

func TestFormatTerm(t *testing.T) {
	r := newQRing(t, Lex)
	names := []string{"x", "y", "z"}

	tests := []struct {
		term Term[*big.Rat]
		want string
	}{
		{qterm(t, 1, 1, 2, 1, 0), "x^2*y"},
		{qterm(t, -1, 1, 1, 0, 0), "-x"},
		{qterm(t, 3, 1, 1, 2, 0), "3*x*y^2"},
		{qterm(t, -3, 4, 0, 0, 5), "-3/4*z^5"},
		{qterm(t, -1, 2, 0, 0, 0), "-1/2"},
		{qterm(t, 1, 1, 0, 0, 0), "1"},
		{qterm(t, -1, 1, 0, 0, 0), "-1"},
		{qterm(t, 0, 1, 1, 1, 1), "0"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, r.FormatTerm(tt.term, names))
	}

	assert.Equal(t, "-yy^3", r.FormatTerm(qterm(t, -1, 1, 0, 0, 0, 0, 3), nil))
}

func TestDefaultNames(t *testing.T) {
	want := []string{"x", "y", "z", "xx", "yy", "zz", "xxx"}
	assert.Empty(t, cmp.Diff(want, DefaultNames(7)))
	assert.Empty(t, DefaultNames(0))
}

func TestTermOps(t *testing.T) {
	a := assert.New(t)
	r := newQRing(t, Lex)

	t1 := qterm(t, 2, 1, 2, 1)
	t2 := qterm(t, 3, 1, 1, 3)

	t.Run("divisibility", func(t *testing.T) {
		a.True(t1.DivisibleBy(qterm(t, 5, 1, 1, 1)))
		a.False(t1.DivisibleBy(t2))
		a.True(t1.DivisibleBy(qterm(t, 1, 1, 0, 0)))
	})

	t.Run("lcm", func(t *testing.T) {
		l, err := r.LCM(t1, t2)
		a.NoError(err)
		a.True(r.TermEquals(qterm(t, 1, 1, 2, 3), l))

		_, err = r.LCM(t1, qterm(t, 1, 1, 1))
		a.ErrorIs(err, ErrDimensionMismatch)
	})

	t.Run("mulQuo", func(t *testing.T) {
		p, err := r.MulTerms(t1, t2)
		a.NoError(err)
		a.True(r.TermEquals(qterm(t, 6, 1, 3, 4), p))

		q, err := r.QuoTerms(p, t2)
		a.NoError(err)
		a.True(r.TermEquals(t1, q))

		_, err = r.QuoTerms(t1, t2)
		a.ErrorIs(err, ErrNotDivisible)

		_, err = r.QuoTerms(t1, qterm(t, 0, 1, 0, 0))
		a.ErrorIs(err, ErrDivisionByZero)
	})

	t.Run("scalars", func(t *testing.T) {
		a.True(r.TermEquals(qterm(t, 1, 1, 2, 1), r.ScaleTerm(t1, big.NewRat(1, 2))))

		d, err := r.DivTermScalar(t1, big.NewRat(4, 1))
		a.NoError(err)
		a.True(r.TermEquals(qterm(t, 1, 2, 2, 1), d))

		_, err = r.DivTermScalar(t1, big.NewRat(0, 1))
		a.ErrorIs(err, ErrDivisionByZero)
	})

	t.Run("pow", func(t *testing.T) {
		p, err := r.PowTerm(t1, 3)
		a.NoError(err)
		a.True(r.TermEquals(qterm(t, 8, 1, 6, 3), p))

		p, err = r.PowTerm(t1, 0)
		a.NoError(err)
		a.True(r.TermEquals(qterm(t, 1, 1, 0, 0), p))
	})

	t.Run("add", func(t *testing.T) {
		same, err := r.AddTerms(t1, qterm(t, 5, 1, 2, 1), nil)
		a.NoError(err)
		a.True(same.EqualsTerm(qterm(t, 7, 1, 2, 1)))

		promoted, err := r.AddTerms(t1, t2, nil)
		a.NoError(err)
		a.Equal(2, promoted.Len())
		a.Equal("2*x^2*y + 3*x*y^3", promoted.String())

		cancelled, err := r.SubTerms(t1, t1, nil)
		a.NoError(err)
		a.True(cancelled.IsZero())

		_, err = r.AddTerms(t1, qterm(t, 1, 1, 1, 1, 1), nil)
		a.ErrorIs(err, ErrDimensionMismatch)

		_, err = r.AddTerms(qterm(t, 0, 1, 1, 0), qterm(t, 1, 1, 1), nil)
		a.ErrorIs(err, ErrDimensionMismatch)
	})

	t.Run("compare", func(t *testing.T) {
		c, err := r.CompareTerms(t1, t2)
		a.NoError(err)
		a.Equal(1, c)

		c, err = r.CompareTerms(qterm(t, 1, 1, 2, 1), t1)
		a.NoError(err)
		a.Equal(-1, c)

		_, err = r.CompareTerms(t1, qterm(t, 1, 1, 1))
		a.ErrorIs(err, ErrDimensionMismatch)
	})
}
