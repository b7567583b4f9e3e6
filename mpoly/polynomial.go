package mpoly

import (
	"fmt"
	"slices"
	"strings"
)

// Polynomial is a normalized, ordered sequence of terms: descending under
// the ring's ordering, one term per monomial, no zero coefficients. The
// empty sequence is the zero polynomial.
//
// Every exported method leaves its receiver untouched and returns a new
// normalized polynomial.
type Polynomial[E any] struct {
	r *Ring[E]
	// display names, shared between polynomials and never mutated.
	names []string
	terms []Term[E]
}

func (p *Polynomial[E]) Ring() *Ring[E] { return p.r }

// Names returns the display names of the indeterminates, or DefaultNames
// when none were supplied.
func (p *Polynomial[E]) Names() []string {
	if len(p.names) >= p.Dim() {
		return p.names
	}

	return DefaultNames(p.Dim())
}

// Terms returns the terms in descending order. The coefficients are
// detached from p.
func (p *Polynomial[E]) Terms() []Term[E] {
	return p.cloneTerms()
}

func (p *Polynomial[E]) cloneTerms() []Term[E] {
	out := make([]Term[E], len(p.terms))
	for i, t := range p.terms {
		out[i] = Term[E]{Coeff: p.r.canon(t.Coeff), Mono: t.Mono}
	}

	return out
}

func (p *Polynomial[E]) Len() int { return len(p.terms) }

func (p *Polynomial[E]) IsZero() bool { return len(p.terms) == 0 }

// Lead returns the leading term.
func (p *Polynomial[E]) Lead() (Term[E], error) {
	if len(p.terms) == 0 {
		return Term[E]{}, ErrZeroPolynomial
	}

	t := p.terms[0]

	return Term[E]{Coeff: p.r.canon(t.Coeff), Mono: t.Mono}, nil
}

// Degree is the total degree of the leading term, 0 for the zero polynomial.
func (p *Polynomial[E]) Degree() int {
	if len(p.terms) == 0 {
		return 0
	}

	return p.terms[0].Degree()
}

// Dim is the number of indeterminates, 0 for the zero polynomial.
func (p *Polynomial[E]) Dim() int {
	if len(p.terms) == 0 {
		return 0
	}

	return p.terms[0].Dim()
}

// IsUnivariate reports whether at most one indeterminate appears with a
// nonzero exponent.
func (p *Polynomial[E]) IsUnivariate() bool {
	_, ok := p.variable()
	return ok
}

// variable returns the single indeterminate p depends on, -1 for constants.
func (p *Polynomial[E]) variable() (int, bool) {
	idx := -1
	for _, t := range p.terms {
		for i, e := range t.Mono.exps {
			if e == 0 || i == idx {
				continue
			}

			if idx >= 0 {
				return 0, false
			}

			idx = i
		}
	}

	return idx, true
}

// Copy returns a deep copy; no coefficient is shared with p.
func (p *Polynomial[E]) Copy() *Polynomial[E] {
	return &Polynomial[E]{r: p.r, names: p.names, terms: p.cloneTerms()}
}

// normalize sorts descending, merges equal monomials and drops zeros.
func (p *Polynomial[E]) normalize() {
	r := p.r
	slices.SortStableFunc(p.terms, func(a, b Term[E]) int {
		return r.compareTerms(b, a)
	})

	out := p.terms[:0]
	for _, t := range p.terms {
		if n := len(out); n > 0 && out[n-1].Mono.Equals(t.Mono) {
			out[n-1].Coeff = r.fld.Add(out[n-1].Coeff, t.Coeff)
			continue
		}

		out = append(out, t)
	}

	p.terms = out
	p.dropZeros()
}

func (p *Polynomial[E]) dropZeros() {
	fld := p.r.fld
	p.terms = slices.DeleteFunc(p.terms, func(t Term[E]) bool {
		return fld.IsZero(t.Coeff)
	})
}

// accumulate adds t (or -t) into p in place, keeping p normalized.
// t must have p's dimension.
func (p *Polynomial[E]) accumulate(t Term[E], negate bool) {
	fld := p.r.fld
	if fld.IsZero(t.Coeff) {
		return
	}

	if negate {
		t.Coeff = fld.Neg(t.Coeff)
	} else {
		t.Coeff = p.r.canon(t.Coeff)
	}

	// terms are descending, so compare the target against each element.
	i, found := slices.BinarySearchFunc(p.terms, t.Mono, func(e Term[E], m Monomial) int {
		return p.r.order.cmp(m, e.Mono)
	})

	if !found {
		p.terms = slices.Insert(p.terms, i, t)
		return
	}

	sum := fld.Add(p.terms[i].Coeff, t.Coeff)
	if fld.IsZero(sum) {
		p.terms = slices.Delete(p.terms, i, i+1)
		return
	}

	p.terms[i].Coeff = sum
}

// subMulTerm computes p -= g*t in place.
func (p *Polynomial[E]) subMulTerm(g *Polynomial[E], t Term[E]) {
	for _, s := range g.terms {
		p.accumulate(p.r.mulTerms(s, t), true)
	}
}

func (p *Polynomial[E]) dropLead() {
	p.terms = slices.Delete(p.terms, 0, 1)
}

func (p *Polynomial[E]) sharedNames(q *Polynomial[E]) []string {
	if len(p.names) > 0 {
		return p.names
	}

	return q.names
}

func (p *Polynomial[E]) compatible(q *Polynomial[E]) error {
	if p.r != q.r {
		return ErrRingMismatch
	}

	if !p.IsZero() && !q.IsZero() && p.Dim() != q.Dim() {
		return fmt.Errorf("%w: %d != %d", ErrDimensionMismatch, p.Dim(), q.Dim())
	}

	return nil
}

// checkTerm validates t against p and returns it with a canonical
// coefficient.
func (p *Polynomial[E]) checkTerm(t Term[E]) (Term[E], error) {
	if t.Dim() == 0 {
		return t, ErrEmptyMonomial
	}

	if !p.IsZero() && p.Dim() != t.Dim() {
		return t, fmt.Errorf("%w: %d != %d", ErrDimensionMismatch, p.Dim(), t.Dim())
	}

	return Term[E]{Coeff: p.r.canon(t.Coeff), Mono: t.Mono}, nil
}

func (p *Polynomial[E]) add(q *Polynomial[E], negate bool) (*Polynomial[E], error) {
	if err := p.compatible(q); err != nil {
		return nil, err
	}

	out := p.Copy()
	out.names = p.sharedNames(q)

	for _, t := range q.terms {
		out.accumulate(t, negate)
	}

	return out, nil
}

func (p *Polynomial[E]) Add(q *Polynomial[E]) (*Polynomial[E], error) {
	return p.add(q, false)
}

func (p *Polynomial[E]) Sub(q *Polynomial[E]) (*Polynomial[E], error) {
	return p.add(q, true)
}

func (p *Polynomial[E]) AddTerm(t Term[E]) (*Polynomial[E], error) {
	t, err := p.checkTerm(t)
	if err != nil {
		return nil, err
	}

	out := p.Copy()
	out.accumulate(t, false)

	return out, nil
}

func (p *Polynomial[E]) SubTerm(t Term[E]) (*Polynomial[E], error) {
	t, err := p.checkTerm(t)
	if err != nil {
		return nil, err
	}

	out := p.Copy()
	out.accumulate(t, true)

	return out, nil
}

// AddScalar adds the constant c. p must have at least one term, since the
// dimension of the constant is taken from it.
func (p *Polynomial[E]) AddScalar(c E) (*Polynomial[E], error) {
	if p.IsZero() {
		return nil, fmt.Errorf("cannot infer dimension of a scalar: %w", ErrZeroPolynomial)
	}

	return p.AddTerm(Term[E]{Coeff: c, Mono: Monomial{exps: make([]int, p.Dim())}})
}

func (p *Polynomial[E]) SubScalar(c E) (*Polynomial[E], error) {
	return p.AddScalar(p.r.fld.Neg(c))
}

// Mul distributes: every term of p is multiplied by every term of q.
func (p *Polynomial[E]) Mul(q *Polynomial[E]) (*Polynomial[E], error) {
	if err := p.compatible(q); err != nil {
		return nil, err
	}

	out := &Polynomial[E]{r: p.r, names: p.sharedNames(q)}
	for _, t := range q.terms {
		for _, s := range p.terms {
			out.accumulate(p.r.mulTerms(s, t), false)
		}
	}

	return out, nil
}

func (p *Polynomial[E]) MulTerm(t Term[E]) (*Polynomial[E], error) {
	t, err := p.checkTerm(t)
	if err != nil {
		return nil, err
	}

	out := &Polynomial[E]{r: p.r, names: p.names}
	for _, s := range p.terms {
		out.accumulate(p.r.mulTerms(s, t), false)
	}

	return out, nil
}

// Scale multiplies every coefficient by c.
func (p *Polynomial[E]) Scale(c E) *Polynomial[E] {
	out := &Polynomial[E]{r: p.r, names: p.names, terms: make([]Term[E], len(p.terms))}
	for i, t := range p.terms {
		out.terms[i] = p.r.ScaleTerm(t, c)
	}

	out.dropZeros()

	return out
}

// DivTerm divides every term by t. Every monomial of p must be divisible
// by t's monomial.
func (p *Polynomial[E]) DivTerm(t Term[E]) (*Polynomial[E], error) {
	t, err := p.checkTerm(t)
	if err != nil {
		return nil, err
	}

	out := &Polynomial[E]{r: p.r, names: p.names, terms: make([]Term[E], len(p.terms))}
	for i, s := range p.terms {
		q, err := p.r.QuoTerms(s, t)
		if err != nil {
			return nil, err
		}

		out.terms[i] = q
	}

	// monomial orderings are compatible with multiplication, the order of
	// the terms is preserved.
	return out, nil
}

func (p *Polynomial[E]) DivScalar(c E) (*Polynomial[E], error) {
	if p.r.fld.IsZero(c) {
		return nil, ErrDivisionByZero
	}

	return p.Scale(p.r.fld.Inverse(c)), nil
}

func (p *Polynomial[E]) Neg() *Polynomial[E] {
	return p.Scale(p.r.fld.Neg(p.r.fld.One()))
}

// Pow returns p^k for k >= 0.
func (p *Polynomial[E]) Pow(k int) (*Polynomial[E], error) {
	if k < 0 {
		return nil, fmt.Errorf("%w: power %d", ErrNegativeExponent, k)
	}

	if p.IsZero() {
		if k == 0 {
			return nil, fmt.Errorf("zero to the power zero: %w", ErrZeroPolynomial)
		}

		return p.Copy(), nil
	}

	result, err := p.r.Constant(p.r.fld.One(), p.Dim(), p.names)
	if err != nil {
		return nil, err
	}

	base := p
	for k > 0 {
		if k%2 == 1 {
			if result, err = result.Mul(base); err != nil {
				return nil, err
			}
		}

		k /= 2
		if k > 0 {
			if base, err = base.Mul(base); err != nil {
				return nil, err
			}
		}
	}

	return result, nil
}

// Monic divides p by its leading coefficient. The zero polynomial is
// returned unchanged.
func (p *Polynomial[E]) Monic() *Polynomial[E] {
	if p.IsZero() {
		return p.Copy()
	}

	return p.Scale(p.r.fld.Inverse(p.terms[0].Coeff))
}

// Equals compares the term sequences pairwise.
func (p *Polynomial[E]) Equals(q *Polynomial[E]) bool {
	if p.r != q.r || len(p.terms) != len(q.terms) {
		return false
	}

	for i := range p.terms {
		if !p.r.TermEquals(p.terms[i], q.terms[i]) {
			return false
		}
	}

	return true
}

// EqualsScalar reports whether p is the constant c. The zero polynomial
// equals the zero scalar whatever its dimension.
func (p *Polynomial[E]) EqualsScalar(c E) bool {
	fld := p.r.fld
	if fld.IsZero(c) {
		return p.IsZero()
	}

	return len(p.terms) == 1 && p.terms[0].Mono.IsConstant() && fld.Equals(p.terms[0].Coeff, c)
}

// EqualsTerm reports whether p consists of exactly the term t.
func (p *Polynomial[E]) EqualsTerm(t Term[E]) bool {
	if p.r.fld.IsZero(t.Coeff) {
		return p.IsZero()
	}

	return len(p.terms) == 1 && p.r.TermEquals(p.terms[0], t)
}

// String renders the sum of the terms, e.g. x^2 - 2*y + 1.
func (p *Polynomial[E]) String() string {
	if p.IsZero() {
		return "0"
	}

	names := p.Names()
	bldr := strings.Builder{}

	for i, t := range p.terms {
		s := p.r.FormatTerm(t, names)

		switch {
		case i == 0:
			bldr.WriteString(s)
		case strings.HasPrefix(s, "-"):
			bldr.WriteString(" - ")
			bldr.WriteString(s[1:])
		default:
			bldr.WriteString(" + ")
			bldr.WriteString(s)
		}
	}

	return bldr.String()
}
