package mpoly

import "fmt"

// LongDiv is Euclidean division of univariate polynomials: it returns q, rem
// with a = q*b + rem and deg(rem) < deg(b). Both operands must depend on the
// same single indeterminate and have equal dimension.
func (r *Ring[E]) LongDiv(a, b *Polynomial[E]) (q, rem *Polynomial[E], err error) {
	if err := r.owns(a, b); err != nil {
		return nil, nil, err
	}

	if b.IsZero() {
		return nil, nil, ErrDivisionByZero
	}

	if a.IsZero() {
		return r.Zero(), r.Zero(), nil
	}

	if a.Dim() != b.Dim() {
		return nil, nil, fmt.Errorf("%w: %d != %d", ErrDimensionMismatch, a.Dim(), b.Dim())
	}

	va, okA := a.variable()
	vb, okB := b.variable()
	if !okA || !okB || (va >= 0 && vb >= 0 && va != vb) {
		return nil, nil, ErrNotUnivariate
	}

	lead := b.terms[0]

	q = &Polynomial[E]{r: r, names: a.sharedNames(b)}
	rem = a.Copy()

	for !rem.IsZero() && rem.Degree() >= b.Degree() {
		t, err := r.QuoTerms(rem.terms[0], lead)
		if err != nil {
			return nil, nil, err
		}

		q.accumulate(t, false)
		rem.subMulTerm(b, t)
	}

	return q, rem, nil
}

// MultiDiv divides p by the ordered divisors and returns the remainder and
// one quotient per divisor, such that p = sum(quos[i]*divisors[i]) + rem.
//
// After every reduction step the scan restarts from the first divisor, so
// the result depends on the order of divisors. A leading term that no
// divisor's leading term divides moves to the remainder.
func (r *Ring[E]) MultiDiv(p *Polynomial[E], divisors []*Polynomial[E]) (rem *Polynomial[E], quos []*Polynomial[E], err error) {
	if err := r.owns(p); err != nil {
		return nil, nil, err
	}

	if err := r.owns(divisors...); err != nil {
		return nil, nil, err
	}

	quos = make([]*Polynomial[E], len(divisors))
	for i, g := range divisors {
		if g.IsZero() {
			return nil, nil, fmt.Errorf("divisor %d: %w", i, ErrDivisionByZero)
		}

		if !p.IsZero() && g.Dim() != p.Dim() {
			return nil, nil, fmt.Errorf("divisor %d: %w: %d != %d", i, ErrDimensionMismatch, g.Dim(), p.Dim())
		}

		if g.Dim() != divisors[0].Dim() {
			return nil, nil, fmt.Errorf("divisor %d: %w: %d != %d", i, ErrDimensionMismatch, g.Dim(), divisors[0].Dim())
		}

		quos[i] = &Polynomial[E]{r: r, names: g.names}
	}

	rem = &Polynomial[E]{r: r, names: p.names}
	work := p.Copy()

	for !work.IsZero() {
		lt := work.terms[0]

		divided := false
		for i, g := range divisors {
			if !lt.DivisibleBy(g.terms[0]) {
				continue
			}

			t, err := r.QuoTerms(lt, g.terms[0])
			if err != nil {
				return nil, nil, err
			}

			quos[i].accumulate(t, false)
			work.subMulTerm(g, t)
			divided = true

			break
		}

		if !divided {
			rem.accumulate(lt, false)
			work.dropLead()
		}
	}

	return rem, quos, nil
}
