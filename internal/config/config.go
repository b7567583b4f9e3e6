// Package config loads polynomial systems from YAML files.
package config

import (
	"errors"
	"fmt"
	"math/big"
	"os"

	"github.com/jonathanmweiss/go-groebner/field"
	"github.com/jonathanmweiss/go-groebner/mpoly"
	"gopkg.in/yaml.v3"
)

const (
	FieldRational = "rational"
	FieldPrime    = "prime"
)

// DefaultModulus is the Fermat prime 2^16+1.
const DefaultModulus = 65537

var ErrInvalidSystem = errors.New("config: invalid system")

// System is a set of generators together with the ring they live in.
//
//	name: cyclic
//	order: lex
//	field: rational
//	variables: [x, y]
//	polynomials:
//	  - terms:
//	      - {coeff: "1", exps: [3, 0]}
//	      - {coeff: "-2", exps: [1, 1]}
type System struct {
	Name      string   `yaml:"name"`
	Order     string   `yaml:"order"`
	Field     string   `yaml:"field"`
	Modulus   uint64   `yaml:"modulus"`
	Monic     bool     `yaml:"monic"`
	Variables []string `yaml:"variables"`

	Polynomials []Polynomial `yaml:"polynomials"`
}

type Polynomial struct {
	Terms []Term `yaml:"terms"`
}

// Term is one coefficient with one exponent per variable. Coeff accepts
// anything big.Rat.SetString does: "3", "-1/2", "0.25".
type Term struct {
	Coeff string `yaml:"coeff"`
	Exps  []int  `yaml:"exps"`
}

// DefaultSystem returns an empty system over the rationals under lex.
func DefaultSystem() *System {
	return &System{
		Order:   mpoly.Lex.String(),
		Field:   FieldRational,
		Modulus: DefaultModulus,
	}
}

// Load reads a system from a YAML file and validates it. Fields missing
// from the file keep the values of DefaultSystem.
func Load(path string) (*System, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read system: %w", err)
	}

	return Parse(data)
}

func Parse(data []byte) (*System, error) {
	sys := DefaultSystem()
	if err := yaml.Unmarshal(data, sys); err != nil {
		return nil, fmt.Errorf("failed to parse system: %w", err)
	}

	if err := sys.Validate(); err != nil {
		return nil, err
	}

	return sys, nil
}

// Marshal renders the system back to YAML.
func (s *System) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}

func (s *System) Validate() error {
	if _, err := mpoly.ParseOrder(s.Order); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSystem, err)
	}

	switch s.Field {
	case FieldRational:
	case FieldPrime:
		if _, err := field.NewPrimeField(s.Modulus); err != nil {
			return fmt.Errorf("%w: modulus %d: %w", ErrInvalidSystem, s.Modulus, err)
		}
	default:
		return fmt.Errorf("%w: unknown field %q (valid: %s, %s)", ErrInvalidSystem, s.Field, FieldRational, FieldPrime)
	}

	if len(s.Variables) == 0 {
		return fmt.Errorf("%w: no variables", ErrInvalidSystem)
	}

	if err := mpoly.ValidateNames(s.Variables); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSystem, err)
	}

	if len(s.Polynomials) == 0 {
		return fmt.Errorf("%w: no polynomials", ErrInvalidSystem)
	}

	for i, p := range s.Polynomials {
		for j, t := range p.Terms {
			if len(t.Exps) != len(s.Variables) {
				return fmt.Errorf("%w: polynomial %d term %d: %d exponents for %d variables",
					ErrInvalidSystem, i, j, len(t.Exps), len(s.Variables))
			}

			if _, ok := new(big.Rat).SetString(t.Coeff); !ok {
				return fmt.Errorf("%w: polynomial %d term %d: bad coefficient %q", ErrInvalidSystem, i, j, t.Coeff)
			}
		}
	}

	return nil
}

// Rationals builds the generators over Q.
func (s *System) Rationals() (*mpoly.Ring[*big.Rat], []*mpoly.Polynomial[*big.Rat], error) {
	return build[*big.Rat](s, field.NewRationals(), func(r *big.Rat) (*big.Rat, error) {
		return r, nil
	})
}

// Prime builds the generators over GF(Modulus). Rational coefficients are
// mapped with PrimeField.FromRat.
func (s *System) Prime() (*mpoly.Ring[uint64], []*mpoly.Polynomial[uint64], error) {
	f, err := field.NewPrimeField(s.Modulus)
	if err != nil {
		return nil, nil, err
	}

	return build[uint64](s, f, f.FromRat)
}

func build[E any](s *System, f field.Field[E], conv func(*big.Rat) (E, error)) (*mpoly.Ring[E], []*mpoly.Polynomial[E], error) {
	order, err := mpoly.ParseOrder(s.Order)
	if err != nil {
		return nil, nil, err
	}

	r, err := mpoly.NewRing(f, order)
	if err != nil {
		return nil, nil, err
	}

	gens := make([]*mpoly.Polynomial[E], len(s.Polynomials))
	for i, p := range s.Polynomials {
		coeffs := make([]E, len(p.Terms))
		exps := make([][]int, len(p.Terms))

		for j, t := range p.Terms {
			rat, ok := new(big.Rat).SetString(t.Coeff)
			if !ok {
				return nil, nil, fmt.Errorf("%w: polynomial %d term %d: bad coefficient %q", ErrInvalidSystem, i, j, t.Coeff)
			}

			if coeffs[j], err = conv(rat); err != nil {
				return nil, nil, fmt.Errorf("polynomial %d term %d: %w", i, j, err)
			}

			exps[j] = t.Exps
		}

		if gens[i], err = r.NewPolynomial(coeffs, exps, s.Variables); err != nil {
			return nil, nil, fmt.Errorf("polynomial %d: %w", i, err)
		}
	}

	return r, gens, nil
}
