package mpoly

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jonathanmweiss/go-groebner/field"
)

// Term is a coefficient times a monomial. Terms are values; neither the
// monomial nor the coefficient is mutated once built.
type Term[E any] struct {
	Coeff E
	Mono  Monomial
}

func NewTerm[E any](coeff E, mono Monomial) Term[E] {
	return Term[E]{Coeff: coeff, Mono: mono}
}

func (t Term[E]) Dim() int    { return t.Mono.Dim() }
func (t Term[E]) Degree() int { return t.Mono.Degree() }

// DivisibleBy reports whether o's monomial divides t's monomial.
func (t Term[E]) DivisibleBy(o Term[E]) bool {
	return t.Mono.DivisibleBy(o.Mono)
}

// CompareTerms orders by monomial under the ring's ordering, then by
// coefficient.
func (r *Ring[E]) CompareTerms(a, b Term[E]) (int, error) {
	c, err := r.order.Compare(a.Mono, b.Mono)
	if err != nil {
		return 0, err
	}

	if c != 0 {
		return c, nil
	}

	return r.fld.Cmp(a.Coeff, b.Coeff), nil
}

func (r *Ring[E]) compareTerms(a, b Term[E]) int {
	if c := r.order.cmp(a.Mono, b.Mono); c != 0 {
		return c
	}

	return r.fld.Cmp(a.Coeff, b.Coeff)
}

// TermEquals compares coefficient and monomial. Two zero terms are equal
// whatever their monomials.
func (r *Ring[E]) TermEquals(a, b Term[E]) bool {
	if r.fld.IsZero(a.Coeff) && r.fld.IsZero(b.Coeff) {
		return true
	}

	return r.fld.Equals(a.Coeff, b.Coeff) && a.Mono.Equals(b.Mono)
}

func (r *Ring[E]) MulTerms(a, b Term[E]) (Term[E], error) {
	m, err := a.Mono.Mul(b.Mono)
	if err != nil {
		return Term[E]{}, err
	}

	return Term[E]{Coeff: r.fld.Mul(a.Coeff, b.Coeff), Mono: m}, nil
}

func (r *Ring[E]) mulTerms(a, b Term[E]) Term[E] {
	return Term[E]{Coeff: r.fld.Mul(a.Coeff, b.Coeff), Mono: a.Mono.mul(b.Mono)}
}

// QuoTerms returns a/b. b's monomial must divide a's.
func (r *Ring[E]) QuoTerms(a, b Term[E]) (Term[E], error) {
	if r.fld.IsZero(b.Coeff) {
		return Term[E]{}, ErrDivisionByZero
	}

	m, err := a.Mono.Quo(b.Mono)
	if err != nil {
		return Term[E]{}, err
	}

	return Term[E]{Coeff: field.Div(r.fld, a.Coeff, b.Coeff), Mono: m}, nil
}

func (r *Ring[E]) ScaleTerm(t Term[E], c E) Term[E] {
	return Term[E]{Coeff: r.fld.Mul(t.Coeff, c), Mono: t.Mono}
}

// DivTermScalar divides t's coefficient by c.
func (r *Ring[E]) DivTermScalar(t Term[E], c E) (Term[E], error) {
	if r.fld.IsZero(c) {
		return Term[E]{}, ErrDivisionByZero
	}

	return Term[E]{Coeff: field.Div(r.fld, t.Coeff, c), Mono: t.Mono}, nil
}

func (r *Ring[E]) NegTerm(t Term[E]) Term[E] {
	return Term[E]{Coeff: r.fld.Neg(t.Coeff), Mono: t.Mono}
}

// PowTerm returns t^k for k >= 0.
func (r *Ring[E]) PowTerm(t Term[E], k int) (Term[E], error) {
	m, err := t.Mono.Pow(k)
	if err != nil {
		return Term[E]{}, err
	}

	c := r.fld.One()
	for i := 0; i < k; i++ {
		c = r.fld.Mul(c, t.Coeff)
	}

	return Term[E]{Coeff: c, Mono: m}, nil
}

// LCM returns the least common multiple of the monomials of a and b, with
// coefficient one.
func (r *Ring[E]) LCM(a, b Term[E]) (Term[E], error) {
	m, err := a.Mono.LCM(b.Mono)
	if err != nil {
		return Term[E]{}, err
	}

	return Term[E]{Coeff: r.fld.One(), Mono: m}, nil
}

// AddTerms returns a+b. Terms with equal monomials accumulate into at most
// one term; different monomials of the same dimension yield two terms.
func (r *Ring[E]) AddTerms(a, b Term[E], names []string) (*Polynomial[E], error) {
	return r.FromTerms([]Term[E]{a, b}, names)
}

func (r *Ring[E]) SubTerms(a, b Term[E], names []string) (*Polynomial[E], error) {
	return r.AddTerms(a, r.NegTerm(b), names)
}

// FormatTerm renders t as e.g. -3*x^2*z. A coefficient of one is omitted
// and minus one becomes a unary minus. names may be empty.
func (r *Ring[E]) FormatTerm(t Term[E], names []string) string {
	f := r.fld
	if f.IsZero(t.Coeff) {
		return "0"
	}

	if len(names) < t.Dim() {
		names = DefaultNames(t.Dim())
	}

	bldr := strings.Builder{}

	prefix := ""
	switch {
	case field.IsOne(f, t.Coeff):
	case field.IsNegOne(f, t.Coeff):
		prefix = "-"
	default:
		prefix = f.Format(t.Coeff)
	}

	bldr.WriteString(prefix)

	wroteFactor := false
	for i := 0; i < t.Dim(); i++ {
		e := t.Mono.Exponent(i)
		if e == 0 {
			continue
		}

		if wroteFactor || (prefix != "" && prefix != "-") {
			bldr.WriteByte('*')
		}

		bldr.WriteString(names[i])
		if e > 1 {
			bldr.WriteByte('^')
			bldr.WriteString(strconv.Itoa(e))
		}

		wroteFactor = true
	}

	if !wroteFactor {
		// constant term: the coefficient itself.
		return f.Format(t.Coeff)
	}

	return bldr.String()
}

// DefaultNames returns x, y, z, xx, yy, zz, xxx, ... for dim indeterminates.
func DefaultNames(dim int) []string {
	chars := [...]string{"x", "y", "z"}

	names := make([]string, dim)
	for i := range names {
		names[i] = strings.Repeat(chars[i%3], i/3+1)
	}

	return names
}

// ValidateNames checks that every name is nonempty, contains no blank or
// operator character, and appears once.
func ValidateNames(names []string) error {
	seen := make(map[string]int, len(names))
	for i, name := range names {
		if err := validateName(i, name); err != nil {
			return err
		}

		if j, ok := seen[name]; ok {
			return fmt.Errorf("%w: %q at positions %d and %d", ErrInvalidName, name, j, i)
		}

		seen[name] = i
	}

	return nil
}

func validateName(i int, name string) error {
	if name == "" || strings.ContainsAny(name, " \t\n*^+-,") {
		return fmt.Errorf("%w: %q at position %d", ErrInvalidName, name, i)
	}

	return nil
}
