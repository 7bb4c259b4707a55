package algebra

import (
	"fmt"
	"math/big"
)

// Exact fraction arithmetic for the rewrite engine. Values flow through
// big.Rat, which keeps every result reduced with the sign on the
// numerator (big.Rat reduces via Euclidean GCD internally); numberExpr
// maps a value back to the node invariant: whole numbers become Integer,
// everything else Rational with den > 1.

var (
	ratZero   = big.NewRat(0, 1)
	ratOne    = big.NewRat(1, 1)
	ratNegOne = big.NewRat(-1, 1)
	intOne    = big.NewInt(1)
)

// numberExpr converts an exact rational value to its canonical node.
func numberExpr(v *big.Rat) Expr {
	if v.IsInt() {
		return &Integer{val: new(big.Int).Set(v.Num())}
	}
	return &Rational{
		num: new(big.Int).Set(v.Num()),
		den: new(big.Int).Set(v.Denom()),
	}
}

// numericValue extracts the exact value of an Integer or Rational node.
// Radicals are numeric literals too, but irrational: they never have a
// rational value and are handled by the radical routines instead.
func numericValue(e Expr) (*big.Rat, bool) {
	switch v := e.(type) {
	case *Integer:
		return new(big.Rat).SetInt(v.val), true
	case *Rational:
		return new(big.Rat).SetFrac(v.num, v.den), true
	}
	return nil, false
}

func ratAdd(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(a, b) }
func ratSub(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(a, b) }
func ratMul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }

// ratDiv divides two exact values. Fails with ErrDivisionByZero on a zero
// divisor; this is the only failing operation in rational arithmetic.
func ratDiv(a, b *big.Rat) (*big.Rat, error) {
	if b.Sign() == 0 {
		return nil, fmt.Errorf("divide %s by zero: %w", a.RatString(), ErrDivisionByZero)
	}
	return new(big.Rat).Quo(a, b), nil
}

// ratPow raises an exact value to an integer power. A negative exponent
// over zero fails with ErrDivisionByZero.
func ratPow(base *big.Rat, exp *big.Int) (*big.Rat, error) {
	if exp.Sign() < 0 {
		if base.Sign() == 0 {
			return nil, fmt.Errorf("0^%s: %w", exp.String(), ErrDivisionByZero)
		}
		pos, err := ratPow(base, new(big.Int).Neg(exp))
		if err != nil {
			return nil, err
		}
		return new(big.Rat).Inv(pos), nil
	}
	num := new(big.Int).Exp(base.Num(), exp, nil)
	den := new(big.Int).Exp(base.Denom(), exp, nil)
	return new(big.Rat).SetFrac(num, den), nil
}
