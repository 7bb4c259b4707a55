// Package algebra provides a deterministic symbolic algebra kernel for Go.
//
// Design goals:
//   - Exact arithmetic only (math/big), no floating point anywhere
//   - Every expression reduces to a single canonical form via Simplify
//   - Structural equality, defined over canonical forms only
//   - Purely functional: no shared mutable state, safe for concurrent use
//
// Expressions are immutable trees built bottom-up from the node
// constructors (Int, Rat, Root, Var, SumOf, ProductOf, PowerOf). Simplify
// maps any tree to its canonical form; Equal compares two canonical trees
// structurally. Mathematically equivalent values held in different node
// kinds (a Rational versus a Radical, a Radical versus a fractional
// Power) deliberately compare as unequal: the kernel never coerces one
// representation into another.
package algebra

// Kind identifies the variant of an expression node. The declaration
// order is the canonical rank used to sort Sum terms and Product factors.
type Kind int

const (
	KindInteger Kind = iota
	KindRational
	KindRadical
	KindVariable
	KindPower
	KindProduct
	KindSum
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindRational:
		return "rational"
	case KindRadical:
		return "radical"
	case KindVariable:
		return "variable"
	case KindPower:
		return "power"
	case KindProduct:
		return "product"
	case KindSum:
		return "sum"
	}
	return "unknown"
}

// Expr is an algebraic expression node. The implementing set is closed:
// *Integer, *Rational, *Radical, *Variable, *Power, *Product, and *Sum.
// All nodes are immutable once constructed.
type Expr interface {
	// Kind reports the node variant.
	Kind() Kind

	// String renders a compact debug form. It is not a formatter:
	// pretty-printing is a collaborator concern outside this package.
	String() string

	isExpr()
}
