// Package hoas bridges the indexed term representation to a higher-order
// closure representation used only for the duration of a single reduction.
// Bound parameters become direct Go values instead of indices, so beta
// reduction is a plain function call; free variables that existed before
// the bridge was entered are carried as residual markers and re-indexed
// on the way back out.
package hoas

import "fmcore/internal/term"

// kind distinguishes the handful of HOAS value shapes from the plain
// structural mirror of term.Tag.
type kind uint8

const (
	kindStruct kind = iota // mirrors a term.Tag structural node
	kindBound              // a binder's own parameter, tagged with the depth it was created at
	kindFree               // a variable free in the original indexed term, residual index carried through
)

// Value is a higher-order term: either a direct mirror of a term.Term
// constructor (with any sub-binders represented as Go closures instead of
// indices) or one of the two marker kinds used to round-trip variables.
type Value struct {
	kind kind

	// kindBound / kindFree
	level int // kindBound: depth at creation. kindFree: residual index.

	// kindStruct
	tag term.Tag

	name string // Ref, Lam, Let name hint

	erased bool
	self   string
	bind   string

	// All's bind-type is scoped under the self binder alone, so it too is
	// kept as a closure (taking the self marker) rather than eagerly
	// converted — there is no concrete self value until FromHOAS rebuilds
	// the term and manufactures one.
	bindTypeFn func(self *Value) *Value
	// Lam body and All body are represented as closures so that applying
	// them is a direct function call with no re-substitution.
	lam func(arg *Value) *Value
	all func(self, arg *Value) *Value

	fn, arg *Value

	expr *Value
	let  func(x *Value) *Value

	done bool
	typ  *Value
	val  *Value
}

// Ref builds a free-standing Ref value, used for the erased-parameter
// sentinel and for definitions the module does not know about.
func Ref(name string) *Value {
	return &Value{kind: kindStruct, tag: term.Ref, name: name}
}

// typVal builds the sole Type value.
func typVal() *Value { return &Value{kind: kindStruct, tag: term.Typ} }

// ToHOAS converts an indexed term into its higher-order representation.
// stack holds the HOAS values already bound for enclosing binders,
// innermost last; a Var whose index falls off the end of stack is free in
// t and is carried through as a kindFree marker with the residual index.
func ToHOAS(t *term.Term, stack []*Value) *Value {
	if t == nil {
		return nil
	}
	switch t.Tag {
	case term.Var:
		if t.Index < len(stack) {
			return stack[len(stack)-1-t.Index]
		}
		return &Value{kind: kindFree, level: t.Index - len(stack)}
	case term.Ref:
		return Ref(t.Name)
	case term.Typ:
		return typVal()
	case term.All:
		bindType, body := t.BindType, t.Body
		return &Value{
			kind: kindStruct, tag: term.All, erased: t.Erased, self: t.Self, bind: t.Bind,
			bindTypeFn: func(selfV *Value) *Value {
				inner := append(append([]*Value{}, stack...), selfV)
				return ToHOAS(bindType, inner)
			},
			all: func(selfV, argV *Value) *Value {
				inner := append(append([]*Value{}, stack...), selfV, argV)
				return ToHOAS(body, inner)
			},
		}
	case term.Lam:
		body := t.Body
		return &Value{
			kind: kindStruct, tag: term.Lam, erased: t.Erased, name: t.Name,
			lam: func(argV *Value) *Value {
				inner := append(append([]*Value{}, stack...), argV)
				return ToHOAS(body, inner)
			},
		}
	case term.App:
		return &Value{
			kind: kindStruct, tag: term.App, erased: t.Erased,
			fn: ToHOAS(t.Fun, stack), arg: ToHOAS(t.Arg, stack),
		}
	case term.Let:
		body := t.Body
		return &Value{
			kind: kindStruct, tag: term.Let, name: t.Name,
			expr: ToHOAS(t.Expr, stack),
			let: func(xV *Value) *Value {
				inner := append(append([]*Value{}, stack...), xV)
				return ToHOAS(body, inner)
			},
		}
	case term.Ann:
		return &Value{
			kind: kindStruct, tag: term.Ann, done: t.Done,
			typ: ToHOAS(t.Type, stack), val: ToHOAS(t.Value, stack),
		}
	default:
		return nil
	}
}

// FromHOAS re-indexes a HOAS value back into the indexed representation,
// issuing a fresh bound-parameter marker at the current depth for every
// binder it opens and converting that marker back into the matching Var
// the moment it is encountered again deeper in the tree.
func FromHOAS(depth int, v *Value) *term.Term {
	if v == nil {
		return nil
	}
	switch v.kind {
	case kindBound:
		return term.NewVar(depth - v.level - 1)
	case kindFree:
		return term.NewVar(v.level + depth)
	}

	switch v.tag {
	case term.Ref:
		return term.NewRef(v.name)
	case term.Typ:
		return term.NewTyp()
	case term.All:
		selfMark := &Value{kind: kindBound, level: depth}
		bindType := FromHOAS(depth+1, v.bindTypeFn(selfMark))
		argMark := &Value{kind: kindBound, level: depth + 1}
		body := FromHOAS(depth+2, v.all(selfMark, argMark))
		return term.NewAll(v.erased, v.self, v.bind, bindType, body)
	case term.Lam:
		argMark := &Value{kind: kindBound, level: depth}
		body := FromHOAS(depth+1, v.lam(argMark))
		return term.NewLam(v.erased, v.name, body)
	case term.App:
		return term.NewApp(v.erased, FromHOAS(depth, v.fn), FromHOAS(depth, v.arg))
	case term.Let:
		expr := FromHOAS(depth, v.expr)
		argMark := &Value{kind: kindBound, level: depth}
		body := FromHOAS(depth+1, v.let(argMark))
		return term.NewLet(v.name, expr, body)
	case term.Ann:
		return term.NewAnn(v.done, FromHOAS(depth, v.typ), FromHOAS(depth, v.val))
	default:
		return nil
	}
}
