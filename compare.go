package algebra

import "strings"

// Canonical ordering and structural equality. The order is total and
// deterministic: node kind rank first (the Kind declaration order), then
// a per-kind tie-break. Sum and Product rely on this order for canonical
// child placement, so the ordering laws (antisymmetry, transitivity) are
// load-bearing for idempotence and are tested exhaustively.

// Compare reports the canonical order of a and b: a negative result means
// a sorts before b, zero means the trees are structurally identical.
func Compare(a, b Expr) int {
	if a.Kind() != b.Kind() {
		if a.Kind() < b.Kind() {
			return -1
		}
		return 1
	}
	switch x := a.(type) {
	case *Integer:
		return x.val.Cmp(b.(*Integer).val)
	case *Rational:
		y := b.(*Rational)
		// Reduced fractions are value-unique, so numeric order is total.
		if c := x.num.Cmp(y.num); c != 0 {
			return c
		}
		return x.den.Cmp(y.den)
	case *Radical:
		y := b.(*Radical)
		if x.index != y.index {
			if x.index < y.index {
				return -1
			}
			return 1
		}
		if c := x.radicand.Cmp(y.radicand); c != 0 {
			return c
		}
		return x.coeff.Cmp(y.coeff)
	case *Variable:
		return strings.Compare(x.name, b.(*Variable).name)
	case *Power:
		y := b.(*Power)
		if c := Compare(x.base, y.base); c != 0 {
			return c
		}
		return Compare(x.exp, y.exp)
	case *Product:
		return compareChildren(x.factors, b.(*Product).factors)
	case *Sum:
		return compareChildren(x.terms, b.(*Sum).terms)
	}
	return 0
}

func compareChildren(a, b []Expr) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// Equal reports structural equality of two expressions.
//
// Equal is defined only over canonical forms: simplify both arguments
// first. It never re-simplifies, so two unsimplified trees that denote
// the same value may compare unequal. Two canonical trees of different
// node kinds always compare unequal, even when they denote the same real
// number (a Radical is never equal to a fractional Power of the same
// value); the kernel does not decide mathematical equivalence across
// representations.
func Equal(a, b Expr) bool { return Compare(a, b) == 0 }
