package config

func term(coeff string, exps ...int) Term {
	return Term{Coeff: coeff, Exps: exps}
}

// Samples returns two small systems over the rationals: a curve pair in
// x, y and a symmetric system in x, y, z with finitely many solutions.
func Samples() []*System {
	twoVars := DefaultSystem()
	twoVars.Name = "two-variables"
	twoVars.Variables = []string{"x", "y"}
	twoVars.Polynomials = []Polynomial{
		{Terms: []Term{term("1", 3, 0), term("-2", 1, 1)}},
		{Terms: []Term{term("1", 2, 1), term("-2", 0, 2), term("1", 1, 0)}},
	}

	threeVars := DefaultSystem()
	threeVars.Name = "three-variables"
	threeVars.Variables = []string{"x", "y", "z"}
	threeVars.Polynomials = []Polynomial{
		{Terms: []Term{term("1", 2, 0, 0), term("1", 0, 1, 0), term("1", 0, 0, 1), term("-1", 0, 0, 0)}},
		{Terms: []Term{term("1", 1, 0, 0), term("1", 0, 2, 0), term("1", 0, 0, 1), term("-1", 0, 0, 0)}},
		{Terms: []Term{term("1", 1, 0, 0), term("1", 0, 1, 0), term("1", 0, 0, 2), term("-1", 0, 0, 0)}},
	}

	return []*System{twoVars, threeVars}
}
