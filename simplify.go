package algebra

import (
	"math/big"
	"sort"
)

// Simplify maps an expression to its canonical form, applying the rewrite
// rules bottom-up. The result is a new tree; the input is never mutated.
// Simplify is idempotent: simplifying a canonical form returns a
// structurally equal tree.
//
// Simplify fails with ErrDivisionByZero when a zero divisor arises (a
// negative integer exponent over a base that simplifies to zero); the
// failure aborts the whole simplification, no partial result is returned.
func Simplify(e Expr) (Expr, error) {
	switch v := e.(type) {
	case *Integer, *Variable:
		return e, nil
	case *Rational, *Radical:
		// Reduced at construction; nothing left to do.
		return e, nil
	case *Power:
		base, err := Simplify(v.base)
		if err != nil {
			return nil, err
		}
		exp, err := Simplify(v.exp)
		if err != nil {
			return nil, err
		}
		return powerOf(base, exp)
	case *Product:
		return simplifyProduct(v.factors)
	case *Sum:
		return simplifySum(v.terms)
	}
	return e, nil
}

// isNumericLiteral reports whether e is an Integer, Rational, or Radical.
// These are the factors the product folder combines arithmetically.
func isNumericLiteral(e Expr) bool {
	switch e.(type) {
	case *Integer, *Rational, *Radical:
		return true
	}
	return false
}

func isIntegerValue(e Expr, v int64) bool {
	n, ok := e.(*Integer)
	return ok && n.val.Cmp(big.NewInt(v)) == 0
}

// ============================================================
// Power rules
// ============================================================

// powerOf applies the power rewrite rules to an already-simplified base
// and exponent.
func powerOf(base, exp Expr) (Expr, error) {
	if n, ok := exp.(*Integer); ok {
		if n.val.Sign() == 0 {
			// x^0 = 1, including 0^0 by policy.
			return Int(1), nil
		}
		if n.val.Cmp(intOne) == 0 {
			return base, nil
		}
	}

	// (b^e1)^e2 = b^(e1*e2). The inner base is canonical and therefore
	// not itself a Power, so this recursion is depth one.
	if inner, ok := base.(*Power); ok {
		merged, err := simplifyProduct([]Expr{inner.exp, exp})
		if err != nil {
			return nil, err
		}
		return powerOf(inner.base, merged)
	}

	if isIntegerValue(base, 1) {
		return Int(1), nil
	}

	// Exact evaluation for numeric bases with integer exponents.
	// Non-integer exponents are never evaluated, even when an exact root
	// exists: representation kinds do not coerce.
	if n, ok := exp.(*Integer); ok {
		switch b := base.(type) {
		case *Integer, *Rational:
			v, _ := numericValue(base)
			r, err := ratPow(v, n.val)
			if err != nil {
				return nil, err
			}
			return numberExpr(r), nil
		case *Radical:
			if n.val.Sign() >= 0 {
				return radPow(b, n.val)
			}
			// A reciprocal radical has no reduced Radical shape;
			// it stays a symbolic Power.
		}
	}

	return &Power{base: base, exp: exp}, nil
}

// ============================================================
// Product rules
// ============================================================

func simplifyProduct(factors []Expr) (Expr, error) {
	flat := make([]Expr, 0, len(factors))
	for _, f := range factors {
		s, err := Simplify(f)
		if err != nil {
			return nil, err
		}
		if inner, ok := s.(*Product); ok {
			flat = append(flat, inner.factors...)
		} else {
			flat = append(flat, s)
		}
	}
	return combineFactors(flat)
}

// combineFactors folds a flat list of canonical factors into a canonical
// product.
func combineFactors(flat []Expr) (Expr, error) {
	flat = splitMixedRadicals(flat)

	num := new(big.Rat).Set(ratOne)
	var rad *Radical // all remaining radicals share one index
	var syms []Expr
	for _, f := range flat {
		switch v := f.(type) {
		case *Integer, *Rational:
			r, _ := numericValue(f)
			num = ratMul(num, r)
		case *Radical:
			if rad == nil {
				rad = v
				continue
			}
			prod, err := radMul(rad, v)
			if err != nil {
				return nil, err
			}
			if collapsed, ok := numericValue(prod); ok {
				num = ratMul(num, collapsed)
				rad = nil
			} else {
				rad = prod.(*Radical)
			}
		default:
			syms = append(syms, f)
		}
	}

	// Annihilator: a zero factor collapses the whole product.
	if num.Sign() == 0 {
		return Int(0), nil
	}

	// Group symbolic factors by base and add exponents.
	type group struct {
		base Expr
		exps []Expr
	}
	var groups []*group
	for _, s := range syms {
		base, exp := s, Expr(Int(1))
		if p, ok := s.(*Power); ok {
			base, exp = p.base, p.exp
		}
		placed := false
		for _, g := range groups {
			if Equal(g.base, base) {
				g.exps = append(g.exps, exp)
				placed = true
				break
			}
		}
		if !placed {
			groups = append(groups, &group{base: base, exps: []Expr{exp}})
		}
	}

	merged := make([]Expr, 0, len(groups))
	rerun := false
	for _, g := range groups {
		if len(g.exps) == 1 {
			if isIntegerValue(g.exps[0], 1) {
				merged = append(merged, g.base)
			} else {
				merged = append(merged, &Power{base: g.base, exp: g.exps[0]})
			}
			continue
		}
		expSum, err := simplifySum(g.exps)
		if err != nil {
			return nil, err
		}
		f, err := powerOf(g.base, expSum)
		if err != nil {
			return nil, err
		}
		merged = append(merged, f)
		if isNumericLiteral(f) {
			rerun = true
		}
	}

	// A merge that collapsed to a literal (x^2 * x^-2 -> 1) re-enters the
	// fold so the literal lands in the numeric factor.
	if rerun {
		all := make([]Expr, 0, len(merged)+2)
		all = append(all, numberExpr(num))
		if rad != nil {
			all = append(all, rad)
		}
		all = append(all, merged...)
		return combineFactors(all)
	}

	var numeric Expr
	switch {
	case rad != nil:
		numeric = radScale(rad, num)
	case num.Cmp(ratOne) != 0:
		numeric = numberExpr(num)
	}

	out := merged
	if numeric != nil {
		out = append([]Expr{numeric}, out...)
	}
	switch len(out) {
	case 0:
		return Int(1), nil
	case 1:
		return out[0], nil
	}
	sort.SliceStable(out, func(i, j int) bool { return Compare(out[i], out[j]) < 0 })
	return &Product{factors: out}, nil
}

// splitMixedRadicals rewrites radical factors as fractional powers when
// the list carries more than one distinct root index. No cross-index
// algebra is attempted; the radicals become Power(radicand, 1/index)
// factors with their rational coefficients left for the numeric fold.
func splitMixedRadicals(flat []Expr) []Expr {
	index := 0
	mixed := false
	for _, f := range flat {
		if r, ok := f.(*Radical); ok {
			if index == 0 {
				index = r.index
			} else if r.index != index {
				mixed = true
				break
			}
		}
	}
	if !mixed {
		return flat
	}
	out := make([]Expr, 0, len(flat)+2)
	for _, f := range flat {
		r, ok := f.(*Radical)
		if !ok {
			out = append(out, f)
			continue
		}
		out = append(out,
			numberExpr(r.coeff),
			&Power{
				base: &Integer{val: new(big.Int).Set(r.radicand)},
				exp:  numberExpr(big.NewRat(1, int64(r.index))),
			},
		)
	}
	return out
}

// ============================================================
// Sum rules
// ============================================================

func simplifySum(terms []Expr) (Expr, error) {
	flat := make([]Expr, 0, len(terms))
	for _, t := range terms {
		s, err := Simplify(t)
		if err != nil {
			return nil, err
		}
		if inner, ok := s.(*Sum); ok {
			flat = append(flat, inner.terms...)
		} else {
			flat = append(flat, s)
		}
	}
	return combineTerms(flat)
}

// radAccum accumulates the coefficients of radical values sharing one
// (index, radicand) shape.
type radAccum struct {
	index    int
	radicand *big.Int
	coeff    *big.Rat
}

func foldRadical(accs []*radAccum, index int, radicand *big.Int, coeff *big.Rat) []*radAccum {
	for _, a := range accs {
		if a.index == index && a.radicand.Cmp(radicand) == 0 {
			a.coeff = ratAdd(a.coeff, coeff)
			return accs
		}
	}
	return append(accs, &radAccum{
		index:    index,
		radicand: new(big.Int).Set(radicand),
		coeff:    new(big.Rat).Set(coeff),
	})
}

// combineTerms folds a flat list of canonical terms into a canonical sum.
func combineTerms(flat []Expr) (Expr, error) {
	num := new(big.Rat) // Integer/Rational literals fold to one value
	var rads []*radAccum

	// Like terms share a symbolic shape; coefficients merge per numeric
	// class (rational with rational, radical with identical radical).
	type group struct {
		shape Expr
		rat   *big.Rat
		rads  []*radAccum
	}
	var groups []*group

	for _, t := range flat {
		if v, ok := numericValue(t); ok {
			num = ratAdd(num, v)
			continue
		}
		if r, ok := t.(*Radical); ok {
			rads = foldRadical(rads, r.index, r.radicand, r.coeff)
			continue
		}

		coeff, shape := splitTerm(t)
		var g *group
		for _, cand := range groups {
			if Equal(cand.shape, shape) {
				g = cand
				break
			}
		}
		if g == nil {
			g = &group{shape: shape, rat: new(big.Rat)}
			groups = append(groups, g)
		}
		switch c := coeff.(type) {
		case nil:
			g.rat = ratAdd(g.rat, ratOne)
		case *Radical:
			g.rads = foldRadical(g.rads, c.index, c.radicand, c.coeff)
		default:
			v, _ := numericValue(coeff)
			g.rat = ratAdd(g.rat, v)
		}
	}

	var out []Expr
	if num.Sign() != 0 {
		out = append(out, numberExpr(num))
	}
	for _, a := range rads {
		if a.coeff.Sign() == 0 {
			continue
		}
		out = append(out, &Radical{coeff: a.coeff, index: a.index, radicand: a.radicand})
	}
	for _, g := range groups {
		if g.rat.Sign() != 0 {
			if g.rat.Cmp(ratOne) == 0 {
				out = append(out, g.shape)
			} else {
				out = append(out, scaleShape(numberExpr(g.rat), g.shape))
			}
		}
		for _, a := range g.rads {
			if a.coeff.Sign() == 0 {
				continue
			}
			c := &Radical{coeff: a.coeff, index: a.index, radicand: a.radicand}
			out = append(out, scaleShape(c, g.shape))
		}
	}

	switch len(out) {
	case 0:
		return Int(0), nil
	case 1:
		return out[0], nil
	}
	sort.SliceStable(out, func(i, j int) bool { return Compare(out[i], out[j]) < 0 })
	return &Sum{terms: out}, nil
}

// splitTerm separates a canonical non-numeric term into its leading
// numeric coefficient and its symbolic shape. A nil coefficient means 1.
// In a canonical product the single numeric literal, if any, sorts first.
func splitTerm(t Expr) (coeff, shape Expr) {
	p, ok := t.(*Product)
	if !ok || !isNumericLiteral(p.factors[0]) {
		return nil, t
	}
	rest := p.factors[1:]
	if len(rest) == 1 {
		return p.factors[0], rest[0]
	}
	return p.factors[0], &Product{factors: rest}
}

// scaleShape rebuilds coefficient*shape as a canonical product. Numeric
// kinds rank below symbolic kinds, so prepending keeps sorted order.
func scaleShape(coeff, shape Expr) Expr {
	if p, ok := shape.(*Product); ok {
		factors := make([]Expr, 0, len(p.factors)+1)
		factors = append(factors, coeff)
		factors = append(factors, p.factors...)
		return &Product{factors: factors}
	}
	return &Product{factors: []Expr{coeff, shape}}
}
