package algebra

import (
	"fmt"
	"math/big"
	"strings"
)

// ============================================================
// Integer — arbitrary-precision integer
// ============================================================

type Integer struct{ val *big.Int }

// Int constructs an integer node.
func Int(v int64) *Integer { return &Integer{val: big.NewInt(v)} }

// IntFromBig constructs an integer node from a big.Int. The value is
// copied; the caller keeps ownership of v.
func IntFromBig(v *big.Int) *Integer { return &Integer{val: new(big.Int).Set(v)} }

func (n *Integer) Kind() Kind     { return KindInteger }
func (n *Integer) isExpr()        {}
func (n *Integer) String() string { return n.val.String() }

// Value returns a copy of the integer value.
func (n *Integer) Value() *big.Int { return new(big.Int).Set(n.val) }

// Sign reports -1, 0, or +1.
func (n *Integer) Sign() int { return n.val.Sign() }

// ============================================================
// Rational — reduced fraction, never a whole number
// ============================================================

// Rational is a fraction in lowest terms with den > 1 and the sign on the
// numerator. A fraction that reduces to a whole number is never stored as
// a Rational; the constructors collapse it to an Integer.
type Rational struct{ num, den *big.Int }

// Rat constructs the reduced form of p/q. Returns an *Integer when the
// reduced denominator is 1, otherwise a *Rational. Fails with
// ErrDivisionByZero when q == 0.
func Rat(p, q int64) (Expr, error) {
	return RatFromBig(big.NewInt(p), big.NewInt(q))
}

// RatFromBig is Rat over big.Int operands. Both values are copied.
func RatFromBig(p, q *big.Int) (Expr, error) {
	if q.Sign() == 0 {
		return nil, fmt.Errorf("reduce %v/0: %w", p, ErrDivisionByZero)
	}
	return numberExpr(new(big.Rat).SetFrac(p, q)), nil
}

func (r *Rational) Kind() Kind     { return KindRational }
func (r *Rational) isExpr()        {}
func (r *Rational) String() string { return r.num.String() + "/" + r.den.String() }

// Num returns a copy of the numerator. The sign of the fraction lives here.
func (r *Rational) Num() *big.Int { return new(big.Int).Set(r.num) }

// Den returns a copy of the denominator; always > 1.
func (r *Rational) Den() *big.Int { return new(big.Int).Set(r.den) }

// Value returns the fraction as a big.Rat copy.
func (r *Rational) Value() *big.Rat { return new(big.Rat).SetFrac(r.num, r.den) }

// ============================================================
// Radical — coeff * radicand^(1/index), fully reduced
// ============================================================

// Radical is coeff * index-th-root(radicand) with a non-zero rational
// coefficient, index >= 2, and radicand > 1 containing no perfect
// index-th-power factor. Anything outside that shape collapses at
// construction: radicand 1 to the coefficient, radicand 0 or coefficient
// 0 to Integer(0).
type Radical struct {
	coeff    *big.Rat
	index    int
	radicand *big.Int
}

// Root constructs the reduced form of coeff * radicand^(1/index).
// The largest perfect index-th-power divisor of the radicand is extracted
// into the coefficient. Fails with ErrInvalidRadical when index < 2 or
// when an even index meets a negative radicand; an odd index of a
// negative radicand is permitted and factors -1 into the coefficient.
func Root(coeff *big.Rat, index int, radicand *big.Int) (Expr, error) {
	return reduceRadical(new(big.Rat).Set(coeff), index, new(big.Int).Set(radicand))
}

// Sqrt is shorthand for Root(1, 2, n).
func Sqrt(n int64) (Expr, error) {
	return Root(big.NewRat(1, 1), 2, big.NewInt(n))
}

func (r *Radical) Kind() Kind { return KindRadical }
func (r *Radical) isExpr()    {}

func (r *Radical) String() string {
	var sb strings.Builder
	switch {
	case r.coeff.Cmp(ratNegOne) == 0:
		sb.WriteString("-")
	case r.coeff.Cmp(ratOne) != 0:
		sb.WriteString(r.coeff.RatString())
		sb.WriteString("*")
	}
	if r.index == 2 {
		sb.WriteString("√")
		sb.WriteString(r.radicand.String())
	} else {
		fmt.Fprintf(&sb, "%s^(1/%d)", r.radicand.String(), r.index)
	}
	return sb.String()
}

// Coeff returns a copy of the rational coefficient; never zero.
func (r *Radical) Coeff() *big.Rat { return new(big.Rat).Set(r.coeff) }

// Index returns the root index; always >= 2.
func (r *Radical) Index() int { return r.index }

// Radicand returns a copy of the radicand; always > 1 and free of
// perfect index-th-power factors.
func (r *Radical) Radicand() *big.Int { return new(big.Int).Set(r.radicand) }

// ============================================================
// Variable — opaque symbol
// ============================================================

type Variable struct{ name string }

// Var constructs a variable node. The symbol is opaque to arithmetic.
func Var(name string) *Variable { return &Variable{name: name} }

func (v *Variable) Kind() Kind     { return KindVariable }
func (v *Variable) isExpr()        {}
func (v *Variable) String() string { return v.name }
func (v *Variable) Name() string   { return v.name }

// ============================================================
// Power — base^exponent
// ============================================================

type Power struct{ base, exp Expr }

// PowerOf constructs a power node. No normalization happens here;
// Simplify collapses exponent 0 and 1 and nested powers.
func PowerOf(base, exp Expr) *Power { return &Power{base: base, exp: exp} }

func (p *Power) Kind() Kind { return KindPower }
func (p *Power) isExpr()    {}

func (p *Power) String() string {
	return parenString(p.base) + "^" + parenString(p.exp)
}

func (p *Power) Base() Expr { return p.base }
func (p *Power) Exp() Expr  { return p.exp }

// ============================================================
// Product — ordered factors
// ============================================================

type Product struct{ factors []Expr }

// ProductOf constructs a product node over the given factors. Flattening,
// folding, and ordering happen in Simplify.
func ProductOf(factors ...Expr) *Product {
	return &Product{factors: append([]Expr(nil), factors...)}
}

func (m *Product) Kind() Kind { return KindProduct }
func (m *Product) isExpr()    {}

func (m *Product) String() string {
	if len(m.factors) == 0 {
		return "1"
	}
	parts := make([]string, len(m.factors))
	for i, f := range m.factors {
		parts[i] = parenString(f)
	}
	return strings.Join(parts, "*")
}

// Factors returns a copy of the factor list.
func (m *Product) Factors() []Expr { return append([]Expr(nil), m.factors...) }

// ============================================================
// Sum — ordered terms
// ============================================================

type Sum struct{ terms []Expr }

// SumOf constructs a sum node over the given terms. Flattening, folding,
// and ordering happen in Simplify.
func SumOf(terms ...Expr) *Sum {
	return &Sum{terms: append([]Expr(nil), terms...)}
}

func (a *Sum) Kind() Kind { return KindSum }
func (a *Sum) isExpr()    {}

func (a *Sum) String() string {
	if len(a.terms) == 0 {
		return "0"
	}
	parts := make([]string, len(a.terms))
	for i, t := range a.terms {
		parts[i] = t.String()
	}
	return strings.Join(parts, " + ")
}

// Terms returns a copy of the term list.
func (a *Sum) Terms() []Expr { return append([]Expr(nil), a.terms...) }

// parenString wraps composite children so debug output stays unambiguous.
func parenString(e Expr) string {
	switch e.Kind() {
	case KindSum, KindProduct, KindPower, KindRational:
		return "(" + e.String() + ")"
	}
	return e.String()
}
