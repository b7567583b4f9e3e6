package mpoly

import "strings"

// Symbols returns one indeterminate per name in a comma-separated list, so
// that polynomials can be built with ordinary arithmetic:
//
//	xs, _ := r.Symbols("x, y")
//	x, y := xs[0], xs[1]
func (r *Ring[E]) Symbols(list string) ([]*Polynomial[E], error) {
	parts := strings.Split(list, ",")

	names := make([]string, len(parts))
	for i, part := range parts {
		names[i] = strings.TrimSpace(part)
	}

	if err := ValidateNames(names); err != nil {
		return nil, err
	}

	vars := make([]*Polynomial[E], len(names))
	for i := range names {
		m, err := Variable(len(names), i)
		if err != nil {
			return nil, err
		}

		vars[i] = &Polynomial[E]{
			r:     r,
			names: names,
			terms: []Term[E]{{Coeff: r.fld.One(), Mono: m}},
		}
	}

	return vars, nil
}
