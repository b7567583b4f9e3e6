// Package groebner computes Gröbner bases of polynomial ideals with
// Buchberger's algorithm followed by basis minimalization and reduction.
package groebner

import (
	"errors"
	"fmt"

	"github.com/jonathanmweiss/go-groebner/mpoly"
	"go.uber.org/zap"
)

type Option func(*options)

type options struct {
	log   *zap.Logger
	monic bool
}

// WithLogger sets the logger used by the engine. Pairs and new basis
// elements are logged at debug level.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// WithMonic makes Reduce divide every element of the reduced basis by its
// leading coefficient.
func WithMonic(monic bool) Option {
	return func(o *options) {
		o.monic = monic
	}
}

// Engine runs basis computations over a single ring. All polynomials
// handed to an Engine must have been built by that ring, so the monomial
// ordering cannot change during a computation.
type Engine[E any] struct {
	ring  *mpoly.Ring[E]
	log   *zap.Logger
	monic bool
}

func NewEngine[E any](r *mpoly.Ring[E], opts ...Option) *Engine[E] {
	o := options{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	return &Engine[E]{
		ring:  r,
		log:   o.log.With(zap.Stringer("order", r.Order())),
		monic: o.monic,
	}
}

func (e *Engine[E]) Ring() *mpoly.Ring[E] { return e.ring }

var ErrEmptyBasis = errors.New("groebner: empty basis")

// SPoly returns L/lead(p)*p - L/lead(q)*q where L is the least common
// multiple of the leading monomials. The leading terms cancel.
func (e *Engine[E]) SPoly(p, q *mpoly.Polynomial[E]) (*mpoly.Polynomial[E], error) {
	if err := e.check(p, q); err != nil {
		return nil, err
	}

	lp, err := p.Lead()
	if err != nil {
		return nil, err
	}

	lq, err := q.Lead()
	if err != nil {
		return nil, err
	}

	lcm, err := e.ring.LCM(lp, lq)
	if err != nil {
		return nil, err
	}

	fp, err := e.ring.QuoTerms(lcm, lp)
	if err != nil {
		return nil, err
	}

	fq, err := e.ring.QuoTerms(lcm, lq)
	if err != nil {
		return nil, err
	}

	a, err := p.MulTerm(fp)
	if err != nil {
		return nil, err
	}

	b, err := q.MulTerm(fq)
	if err != nil {
		return nil, err
	}

	return a.Sub(b)
}

// GroebnerBasis returns the reduced basis of the ideal generated by gens.
func (e *Engine[E]) GroebnerBasis(gens []*mpoly.Polynomial[E]) ([]*mpoly.Polynomial[E], error) {
	basis, err := e.Buchberger(gens)
	if err != nil {
		return nil, err
	}

	return e.Reduce(basis)
}

// IsMember reports whether p reduces to zero modulo basis. When basis is a
// Gröbner basis this decides ideal membership.
func (e *Engine[E]) IsMember(p *mpoly.Polynomial[E], basis []*mpoly.Polynomial[E]) (bool, error) {
	if len(basis) == 0 {
		return false, ErrEmptyBasis
	}

	rem, _, err := e.ring.MultiDiv(p, basis)
	if err != nil {
		return false, err
	}

	return rem.IsZero(), nil
}

func (e *Engine[E]) check(polys ...*mpoly.Polynomial[E]) error {
	dim := -1
	for i, p := range polys {
		if p.Ring() != e.ring {
			return fmt.Errorf("polynomial %d: %w", i, mpoly.ErrRingMismatch)
		}

		if p.IsZero() {
			continue
		}

		if dim >= 0 && p.Dim() != dim {
			return fmt.Errorf("polynomial %d: %w: %d != %d", i, mpoly.ErrDimensionMismatch, p.Dim(), dim)
		}

		dim = p.Dim()
	}

	return nil
}
