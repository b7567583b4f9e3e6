package mpoly

import "fmt"

// Order selects a monomial ordering. Under every ordering "greater" means
// leading.
type Order int

const (
	// Lex compares exponents from the first indeterminate on; the first
	// larger exponent wins.
	Lex Order = iota
	// DegLex compares total degree first and falls back to Lex on ties.
	DegLex
	// DegRevLex compares total degree first; on ties the first differing
	// exponent from the last indeterminate backwards decides, and the
	// smaller exponent wins.
	DegRevLex
)

var orderNames = [...]string{
	Lex:       "lex",
	DegLex:    "deglex",
	DegRevLex: "degrevlex",
}

// ParseOrder maps "lex", "deglex" and "degrevlex" to their Order.
func ParseOrder(name string) (Order, error) {
	for o, n := range orderNames {
		if n == name {
			return Order(o), nil
		}
	}

	return 0, fmt.Errorf("%w: %q, accepted orders are lex, deglex, degrevlex", ErrUnknownOrder, name)
}

func (o Order) valid() bool {
	return o >= Lex && o <= DegRevLex
}

func (o Order) String() string {
	if !o.valid() {
		return fmt.Sprintf("Order(%d)", int(o))
	}

	return orderNames[o]
}

// Compare returns -1, 0 or 1 as a is smaller than, equal to or greater
// than b under o.
func (o Order) Compare(a, b Monomial) (int, error) {
	if !o.valid() {
		return 0, fmt.Errorf("%w: %v", ErrUnknownOrder, o)
	}

	if err := checkDims(a, b); err != nil {
		return 0, err
	}

	return o.cmp(a, b), nil
}

// cmp assumes a valid order and equal dimensions.
func (o Order) cmp(a, b Monomial) int {
	switch o {
	case Lex:
		return lexCmp(a, b)
	case DegLex:
		if c := intCmp(a.Degree(), b.Degree()); c != 0 {
			return c
		}

		return lexCmp(a, b)
	default:
		if c := intCmp(a.Degree(), b.Degree()); c != 0 {
			return c
		}

		for i := len(a.exps) - 1; i >= 0; i-- {
			if c := intCmp(a.exps[i], b.exps[i]); c != 0 {
				return -c
			}
		}

		return 0
	}
}

func lexCmp(a, b Monomial) int {
	for i := range a.exps {
		if c := intCmp(a.exps[i], b.exps[i]); c != 0 {
			return c
		}
	}

	return 0
}

func intCmp(x, y int) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}
