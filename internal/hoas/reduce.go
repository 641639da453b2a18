package hoas

import "fmcore/internal/term"

// Definitions is the minimal capability the reducer needs from a module:
// looking up the body a global name was defined to. It intentionally does
// not import the module package, so this package has no dependency in
// that direction — callers hand in whatever satisfies the interface.
type Definitions interface {
	Body(name string) (*term.Term, bool)
}

// erasedSentinel stands in for an erased lambda's parameter: it is never
// actually accessible, since the whole point of erasure is that the
// argument's value cannot influence reduction.
var erasedSentinel = Ref("<erased>")

// reduceHOAS computes the weak-head normal form of v under defs, per the
// reduction rules: Ref resolution chases aliases and otherwise unfolds
// through ToHOAS; erased application and erased-lambda bodies never look
// at the erased side; Let and Ann are transparent to reduction.
func reduceHOAS(defs Definitions, v *Value) *Value {
	for {
		if v == nil {
			return nil
		}
		switch v.kind {
		case kindBound, kindFree:
			return v
		}

		switch v.tag {
		case term.Ref:
			body, ok := defs.Body(v.name)
			if !ok {
				return v
			}
			if body.Tag == term.Ref {
				v = Ref(body.Name)
				continue
			}
			v = ToHOAS(body, nil)
			continue

		case term.App:
			fn := reduceHOAS(defs, v.fn)
			if v.erased {
				v = fn
				continue
			}
			if fn.kind == kindStruct && fn.tag == term.Lam {
				v = fn.lam(v.arg)
				continue
			}
			return &Value{kind: kindStruct, tag: term.App, erased: v.erased, fn: fn, arg: v.arg}

		case term.Lam:
			if v.erased {
				v = v.lam(erasedSentinel)
				continue
			}
			return v

		case term.Let:
			v = v.let(v.expr)
			continue

		case term.Ann:
			v = v.val
			continue

		default:
			return v
		}
	}
}

// Reduce computes the weak-head normal form of t under defs, as an
// indexed term: ToHOAS, reduce, FromHOAS.
func Reduce(defs Definitions, t *term.Term) *term.Term {
	return FromHOAS(0, reduceHOAS(defs, ToHOAS(t, nil)))
}
