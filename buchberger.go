package groebner

import (
	"github.com/jonathanmweiss/go-groebner/mpoly"
	"go.uber.org/zap"
)

type pair struct {
	i, j int
}

// Buchberger returns a Gröbner basis of the ideal generated by gens. The
// result starts with the nonzero generators, in order, followed by every
// S-polynomial remainder that was added; it is neither minimal nor
// reduced. gens is not modified.
func (e *Engine[E]) Buchberger(gens []*mpoly.Polynomial[E]) ([]*mpoly.Polynomial[E], error) {
	if err := e.check(gens...); err != nil {
		return nil, err
	}

	basis := make([]*mpoly.Polynomial[E], 0, len(gens))
	for _, g := range gens {
		if g.IsZero() {
			e.log.Debug("dropping zero generator")
			continue
		}

		basis = append(basis, g.Copy())
	}

	if len(basis) == 0 {
		return nil, ErrEmptyBasis
	}

	pairs := make([]pair, 0, len(basis)*(len(basis)-1)/2)
	for i := range basis {
		for j := i + 1; j < len(basis); j++ {
			pairs = append(pairs, pair{i, j})
		}
	}

	processed := 0
	for len(pairs) > 0 {
		pr := pairs[len(pairs)-1]
		pairs = pairs[:len(pairs)-1]
		processed++

		e.log.Debug("pair", zap.Int("i", pr.i), zap.Int("j", pr.j))

		s, err := e.SPoly(basis[pr.i], basis[pr.j])
		if err != nil {
			return nil, err
		}

		rem, _, err := e.ring.MultiDiv(s, basis)
		if err != nil {
			return nil, err
		}

		if rem.IsZero() {
			continue
		}

		k := len(basis)
		for i := 0; i < k; i++ {
			pairs = append(pairs, pair{i, k})
		}

		basis = append(basis, rem)

		e.log.Debug("new basis element",
			zap.Int("i", pr.i),
			zap.Int("j", pr.j),
			zap.Int("index", k),
			zap.Stringer("poly", rem),
		)
	}

	e.log.Info("buchberger done",
		zap.Int("generators", len(gens)),
		zap.Int("basis", len(basis)),
		zap.Int("pairs", processed),
	)

	return basis, nil
}

// Reduce minimalizes basis, dropping every element whose leading term is
// divisible by the leading term of another remaining element, then divides
// each remaining element once by all the others and keeps the nonzero
// remainders. basis is not modified.
func (e *Engine[E]) Reduce(basis []*mpoly.Polynomial[E]) ([]*mpoly.Polynomial[E], error) {
	if err := e.check(basis...); err != nil {
		return nil, err
	}

	pending := make([]*mpoly.Polynomial[E], 0, len(basis))
	for _, g := range basis {
		if !g.IsZero() {
			pending = append(pending, g)
		}
	}

	if len(pending) == 0 {
		return nil, ErrEmptyBasis
	}

	minimal := make([]*mpoly.Polynomial[E], 0, len(pending))
	for len(pending) > 0 {
		p := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		if !leadDivisibleByAny(p, pending) && !leadDivisibleByAny(p, minimal) {
			minimal = append(minimal, p)
		}
	}

	reduced := make([]*mpoly.Polynomial[E], 0, len(minimal))
	others := make([]*mpoly.Polynomial[E], 0, len(minimal))
	for i, g := range minimal {
		others = append(others[:0], minimal[:i]...)
		others = append(others, minimal[i+1:]...)

		rem, _, err := e.ring.MultiDiv(g, others)
		if err != nil {
			return nil, err
		}

		if rem.IsZero() {
			continue
		}

		if e.monic {
			rem = rem.Monic()
		}

		reduced = append(reduced, rem)
	}

	e.log.Info("basis reduced",
		zap.Int("input", len(basis)),
		zap.Int("minimal", len(minimal)),
		zap.Int("reduced", len(reduced)),
	)

	return reduced, nil
}

// leadDivisibleByAny assumes nonzero polynomials.
func leadDivisibleByAny[E any](p *mpoly.Polynomial[E], polys []*mpoly.Polynomial[E]) bool {
	lp, _ := p.Lead()
	for _, q := range polys {
		lq, _ := q.Lead()
		if lp.DivisibleBy(lq) {
			return true
		}
	}

	return false
}
