// Package equality implements the memoized alpha-beta equivalence
// decision procedure: a worklist of term pairs, each reduced to weak-head
// normal form and checked for congruence modulo a union-find that
// memoizes both reductions and verdicts already established.
package equality

import (
	"fmt"

	"fmcore/internal/fmhash"
	"fmcore/internal/hoas"
	"fmcore/internal/term"
	"fmcore/internal/unionfind"
)

type pair struct {
	x, y  *term.Term
	depth int
}

// Equal decides whether a and b are equivalent under defs: alpha-equal up
// to beta reduction through global definitions, with erasure, names, and
// annotation bookkeeping ignored throughout.
func Equal(defs hoas.Definitions, a, b *term.Term) bool {
	eq := unionfind.New()
	work := []pair{{a, b, 0}}

	for len(work) > 0 {
		p := work[len(work)-1]
		work = work[:len(work)-1]

		xr := hoas.Reduce(defs, p.x)
		yr := hoas.Reduce(defs, p.y)

		same := congruent(eq, xr, yr)

		eq.Equate(wideKey(p.x), wideKey(xr))
		eq.Equate(wideKey(p.y), wideKey(yr))
		eq.Equate(wideKey(xr), wideKey(yr))

		if same {
			continue
		}

		if xr.Tag != yr.Tag {
			return false
		}

		switch xr.Tag {
		case term.Var:
			if xr.Index != yr.Index {
				return false
			}
		case term.Ref:
			if xr.Name != yr.Name {
				return false
			}
		case term.Typ:
			// no children, already congruent by tag
		case term.All:
			work = append(work, pair{xr.BindType, yr.BindType, p.depth + 1})
			xBody := openBinder(xr.Body, p.depth, true)
			yBody := openBinder(yr.Body, p.depth, true)
			work = append(work, pair{xBody, yBody, p.depth + 2})
		case term.Lam:
			xBody := openBinder(xr.Body, p.depth, false)
			yBody := openBinder(yr.Body, p.depth, false)
			work = append(work, pair{xBody, yBody, p.depth + 1})
		case term.App:
			work = append(work, pair{xr.Fun, yr.Fun, p.depth})
			work = append(work, pair{xr.Arg, yr.Arg, p.depth})
		case term.Let:
			work = append(work, pair{xr.Expr, yr.Expr, p.depth})
			xBody := openBinder(xr.Body, p.depth, false)
			yBody := openBinder(yr.Body, p.depth, false)
			work = append(work, pair{xBody, yBody, p.depth + 1})
		case term.Ann:
			work = append(work, pair{xr.Value, yr.Value, p.depth})
		default:
			return false
		}
	}

	return true
}

// openBinder substitutes fresh reference markers for a binder's
// parameters so the body can be compared as a closed term without
// variable-capture concerns. A plain Lam/Let body has one parameter at
// index 0; an All body has two, self at index 1 and the argument at
// index 0, opened innermost-first so the index shift from removing the
// argument binder lands self back at index 0 for its own substitution.
func openBinder(body *term.Term, depth int, isAll bool) *term.Term {
	if !isAll {
		return term.Subst(freshRef(depth), 0, body)
	}
	withArg := term.Subst(freshRef(depth+1), 0, body)
	return term.Subst(freshRef(depth), 0, withArg)
}

func freshRef(depth int) *term.Term {
	return term.NewRef(fmt.Sprintf("%%%d", depth))
}

// congruent reports whether x and y are either already known-equivalent
// by the memoized union-find, or have matching outermost constructors
// with all relevant children recursively congruent. Names, erasure
// flags, and the Ann done-flag never participate: Ann compares only its
// inner value, never its declared type.
func congruent(eq *unionfind.UnionFind, x, y *term.Term) bool {
	if eq.IsEquivalent(wideKey(x), wideKey(y)) {
		return true
	}
	if x.Tag != y.Tag {
		return false
	}
	switch x.Tag {
	case term.Var:
		return x.Index == y.Index
	case term.Ref:
		return x.Name == y.Name
	case term.Typ:
		return true
	case term.All:
		return congruent(eq, x.BindType, y.BindType) && congruent(eq, x.Body, y.Body)
	case term.Lam:
		return congruent(eq, x.Body, y.Body)
	case term.App:
		return congruent(eq, x.Fun, y.Fun) && congruent(eq, x.Arg, y.Arg)
	case term.Let:
		return congruent(eq, x.Expr, y.Expr) && congruent(eq, x.Body, y.Body)
	case term.Ann:
		return congruent(eq, x.Value, y.Value)
	default:
		return false
	}
}

// wideKey computes the union-find memoization key for t: the same
// tag-plus-children composition that produces t.Hash, but folded through
// a 64-bit hash instead of fmhash.Combine's 32-bit mix-and-truncate. Using
// the narrower Hash directly as a union-find key would let a 32-bit
// collision between unrelated subterms be memoized as a proof of
// equality; widening the key all but eliminates that risk without
// changing the term model's public 32-bit Hash field.
func wideKey(t *term.Term) uint64 {
	switch t.Tag {
	case term.Var:
		return fmhash.WideKey(fmhash.TagVar, fmhash.Hash(t.Index))
	case term.Ref:
		return fmhash.WideKey(fmhash.TagRef, fmhash.String(t.Name))
	case term.Typ:
		return fmhash.WideKey(fmhash.TagTyp, 0)
	case term.All:
		return fmhash.WideKey(fmhash.TagAll, t.BindType.Hash, t.Body.Hash)
	case term.Lam:
		return fmhash.WideKey(fmhash.TagLam, t.Body.Hash)
	case term.App:
		return fmhash.WideKey(fmhash.TagApp, t.Fun.Hash, t.Arg.Hash)
	case term.Let:
		return fmhash.WideKey(fmhash.TagLet, t.Expr.Hash, t.Body.Hash)
	case term.Ann:
		return fmhash.WideKey(fmhash.TagAnn, t.Type.Hash, t.Value.Hash)
	default:
		return 0
	}
}
