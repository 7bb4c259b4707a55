package algebra

import (
	"fmt"
	"math/big"
)

// Radical reduction and arithmetic. The reduced shape is
// coeff * radicand^(1/index) with the radicand free of perfect
// index-th-power factors; reduction extracts the largest such factor by
// trial division up to the index-th root of the radicand. Cross-index
// arithmetic is a non-goal: the simplifier falls back to fractional
// powers instead of inventing a richer equivalence.

// reduceRadical normalizes coeff * radicand^(1/index) into canonical
// form. It takes ownership of both arguments.
func reduceRadical(coeff *big.Rat, index int, radicand *big.Int) (Expr, error) {
	if index < 2 {
		return nil, fmt.Errorf("radical index %d: %w", index, ErrInvalidRadical)
	}
	switch radicand.Sign() {
	case 0:
		return Int(0), nil
	case -1:
		if index%2 == 0 {
			return nil, fmt.Errorf("even-index radical of %s: %w", radicand.String(), ErrInvalidRadical)
		}
		// Odd roots of negatives are real: pull -1 out as a coefficient.
		radicand = new(big.Int).Neg(radicand)
		coeff = new(big.Rat).Neg(coeff)
	}

	idx := big.NewInt(int64(index))
	root := big.NewInt(1)
	p := big.NewInt(2)
	pk := new(big.Int)
	rem := new(big.Int)
	for {
		pk.Exp(p, idx, nil)
		if pk.Cmp(radicand) > 0 {
			break
		}
		if rem.Mod(radicand, pk).Sign() == 0 {
			radicand = new(big.Int).Div(radicand, pk)
			root.Mul(root, p)
			continue // the same prime may divide again
		}
		p.Add(p, intOne)
	}

	coeff = ratMul(coeff, new(big.Rat).SetInt(root))
	if coeff.Sign() == 0 {
		return Int(0), nil
	}
	if radicand.Cmp(intOne) == 0 {
		return numberExpr(coeff), nil
	}
	return &Radical{coeff: coeff, index: index, radicand: radicand}, nil
}

// radMul multiplies two radicals of equal index by multiplying radicands
// and re-reducing. The result may collapse to an Integer or Rational.
// Callers must route differing indices through the fractional-power
// fallback instead.
func radMul(a, b *Radical) (Expr, error) {
	if a.index != b.index {
		return nil, fmt.Errorf("radMul across indices %d and %d: %w", a.index, b.index, ErrInvalidRadical)
	}
	return reduceRadical(
		ratMul(a.coeff, b.coeff),
		a.index,
		new(big.Int).Mul(a.radicand, b.radicand),
	)
}

// radScale multiplies a radical by an exact rational value.
func radScale(r *Radical, k *big.Rat) Expr {
	c := ratMul(r.coeff, k)
	if c.Sign() == 0 {
		return Int(0)
	}
	return &Radical{coeff: c, index: r.index, radicand: new(big.Int).Set(r.radicand)}
}

// radPow raises a radical to a non-negative integer power:
// (c * k^(1/n))^e = c^e * k^(e div n) * k^((e mod n)/n).
// The leftover radicand power may itself contain a perfect n-th power,
// so the result is re-reduced.
func radPow(r *Radical, exp *big.Int) (Expr, error) {
	if exp.Sign() < 0 {
		return nil, fmt.Errorf("radPow with negative exponent %s: %w", exp.String(), ErrInvalidRadical)
	}
	idx := big.NewInt(int64(r.index))
	q, m := new(big.Int).DivMod(exp, idx, new(big.Int))

	coeff, err := ratPow(r.coeff, exp) // coeff is never zero
	if err != nil {
		return nil, err
	}
	coeff = ratMul(coeff, new(big.Rat).SetInt(new(big.Int).Exp(r.radicand, q, nil)))
	if m.Sign() == 0 {
		return numberExpr(coeff), nil
	}
	return reduceRadical(coeff, r.index, new(big.Int).Exp(r.radicand, m, nil))
}
