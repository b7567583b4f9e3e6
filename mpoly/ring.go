package mpoly

import (
	"fmt"

	"github.com/jonathanmweiss/go-groebner/field"
)

// Ring is a multivariate polynomial ring over a coefficient field with a
// fixed monomial ordering. A Ring is immutable; every Polynomial keeps a
// pointer to the Ring that built it and reads the ordering from it.
type Ring[E any] struct {
	fld   field.Field[E]
	order Order
}

func NewRing[E any](f field.Field[E], order Order) (*Ring[E], error) {
	if !order.valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownOrder, order)
	}

	return &Ring[E]{fld: f, order: order}, nil
}

func (r *Ring[E]) Field() field.Field[E] { return r.fld }
func (r *Ring[E]) Order() Order          { return r.order }

// Zero returns the zero polynomial.
func (r *Ring[E]) Zero() *Polynomial[E] {
	return &Polynomial[E]{r: r}
}

// NewPolynomial builds a normalized polynomial from aligned coefficient and
// exponent sequences. Terms with a zero coefficient are dropped. names may
// be empty, in which case DefaultNames is used for display.
func (r *Ring[E]) NewPolynomial(coeffs []E, exps [][]int, names []string) (*Polynomial[E], error) {
	if len(coeffs) != len(exps) {
		return nil, fmt.Errorf("%w: %d coefficients, %d exponent vectors", ErrLengthMismatch, len(coeffs), len(exps))
	}

	p := &Polynomial[E]{r: r, names: names, terms: make([]Term[E], 0, len(coeffs))}

	dim := -1
	// zero terms are dropped, but their exponents must still be valid.
	for i, c := range coeffs {
		m, err := NewMonomial(exps[i]...)
		if err != nil {
			return nil, fmt.Errorf("term %d: %w", i, err)
		}

		if dim >= 0 && m.Dim() != dim {
			return nil, fmt.Errorf("term %d: %w: %d != %d", i, ErrDimensionMismatch, m.Dim(), dim)
		}

		dim = m.Dim()
		if r.fld.IsZero(c) {
			continue
		}

		p.terms = append(p.terms, Term[E]{Coeff: r.canon(c), Mono: m})
	}

	if len(names) > 0 && len(names) < dim {
		return nil, fmt.Errorf("%w: %d names, %d indeterminates", ErrTooFewNames, len(names), dim)
	}

	p.normalize()

	return p, nil
}

// Constant returns c as a polynomial of dimension dim.
func (r *Ring[E]) Constant(c E, dim int, names []string) (*Polynomial[E], error) {
	return r.NewPolynomial([]E{c}, [][]int{make([]int, dim)}, names)
}

// FromTerms builds a normalized polynomial from terms of equal dimension.
func (r *Ring[E]) FromTerms(terms []Term[E], names []string) (*Polynomial[E], error) {
	coeffs := make([]E, len(terms))
	exps := make([][]int, len(terms))

	for i, t := range terms {
		coeffs[i] = t.Coeff
		exps[i] = t.Mono.exps
	}

	return r.NewPolynomial(coeffs, exps, names)
}

func (r *Ring[E]) owns(polys ...*Polynomial[E]) error {
	for _, p := range polys {
		if p.r != r {
			return ErrRingMismatch
		}
	}

	return nil
}

// canon returns the canonical representative of c, detached from the
// caller's value.
func (r *Ring[E]) canon(c E) E {
	return r.fld.Mul(c, r.fld.One())
}
