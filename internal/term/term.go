// Package term implements the tagged term representation described by the
// data model: every node carries a precomputed structural content hash,
// rebuilt on every construction so congruence checks can compare hashes
// instead of walking trees.
package term

import (
	"fmt"
	"strings"

	"fmcore/internal/fmhash"
)

// Tag identifies which of the eight term constructors a Term holds.
type Tag uint8

const (
	Var Tag = iota + 1
	Ref
	Typ
	All
	Lam
	App
	Let
	Ann
)

func (t Tag) String() string {
	switch t {
	case Var:
		return "Var"
	case Ref:
		return "Ref"
	case Typ:
		return "Type"
	case All:
		return "All"
	case Lam:
		return "Lam"
	case App:
		return "App"
	case Let:
		return "Let"
	case Ann:
		return "Ann"
	default:
		return "?"
	}
}

// Term is an immutable node in the term tree. Only the fields relevant to
// its Tag are meaningful; Hash is always the canonical composition of the
// relevant fields per the hash-composition rules in the data model. Names,
// erasure flags, and the Ann Done flag never participate in Hash, so two
// alpha-equivalent terms that differ only in binder name hints, or two
// terms differing only in erasure/annotation bookkeeping, hash the same.
type Term struct {
	Tag  Tag
	Hash fmhash.Hash

	Index int // Var: de-Bruijn index

	Name string // Ref: referenced name. Lam, Let: binder name hint.

	Erased bool // All, Lam, App: erasure marker

	Self     string // All: self-binder name hint
	Bind     string // All: argument-binder name hint
	BindType *Term  // All: type of the bound argument
	Body     *Term  // All, Lam, Let: body under the binder(s)

	Fun *Term // App: function being applied
	Arg *Term // App: argument

	Expr *Term // Let: bound expression

	Done  bool  // Ann: whether the annotation has already been checked
	Type  *Term // Ann: declared type
	Value *Term // Ann: annotated term
}

// NewVar builds a Var node for de-Bruijn index i.
func NewVar(i int) *Term {
	return &Term{Tag: Var, Index: i, Hash: fmhash.Combine(fmhash.TagVar, fmhash.Hash(i))}
}

// NewRef builds a Ref node for the global name n.
func NewRef(n string) *Term {
	return &Term{Tag: Ref, Name: n, Hash: fmhash.Combine(fmhash.TagRef, fmhash.String(n))}
}

// NewTyp builds the sole Type node.
func NewTyp() *Term {
	return &Term{Tag: Typ, Hash: fmhash.Combine(fmhash.TagTyp, 0)}
}

// NewAll builds a dependent function type binding self and bind in turn.
func NewAll(erased bool, self, bind string, bindType, body *Term) *Term {
	return &Term{
		Tag: All, Erased: erased, Self: self, Bind: bind,
		BindType: bindType, Body: body,
		Hash: fmhash.Combine(fmhash.TagAll, fmhash.Combine(bindType.Hash, body.Hash)),
	}
}

// NewLam builds a lambda abstraction.
func NewLam(erased bool, name string, body *Term) *Term {
	return &Term{
		Tag: Lam, Erased: erased, Name: name, Body: body,
		Hash: fmhash.Combine(fmhash.TagLam, body.Hash),
	}
}

// NewApp builds a function application.
func NewApp(erased bool, fn, arg *Term) *Term {
	return &Term{
		Tag: App, Erased: erased, Fun: fn, Arg: arg,
		Hash: fmhash.Combine(fmhash.TagApp, fmhash.Combine(fn.Hash, arg.Hash)),
	}
}

// NewLet builds a let-binding.
func NewLet(name string, expr, body *Term) *Term {
	return &Term{
		Tag: Let, Name: name, Expr: expr, Body: body,
		Hash: fmhash.Combine(fmhash.TagLet, fmhash.Combine(expr.Hash, body.Hash)),
	}
}

// NewAnn builds a type annotation. done marks whether the annotation has
// already been verified (skipping re-checking during inference).
func NewAnn(done bool, typ, value *Term) *Term {
	return &Term{
		Tag: Ann, Done: done, Type: typ, Value: value,
		Hash: fmhash.Combine(fmhash.TagAnn, fmhash.Combine(typ.Hash, value.Hash)),
	}
}

// String renders t in a form close to the parser's concrete syntax, used
// in error messages. Variables print as their de-Bruijn index (#i), which
// the parser does not accept, so the output does not round-trip through
// the parser. There is no separate pretty-printer beyond this.
func (t *Term) String() string {
	var b strings.Builder
	t.write(&b)
	return b.String()
}

func (t *Term) write(b *strings.Builder) {
	if t == nil {
		b.WriteString("<nil>")
		return
	}
	switch t.Tag {
	case Var:
		fmt.Fprintf(b, "#%d", t.Index)
	case Ref:
		b.WriteString(t.Name)
	case Typ:
		b.WriteString("Type")
	case All:
		open, close := "(", ")"
		if t.Erased {
			open, close = "<", ">"
		}
		if t.Self != "" {
			b.WriteString(t.Self)
		}
		fmt.Fprintf(b, "%s%s: ", open, t.Bind)
		t.BindType.write(b)
		b.WriteString(close)
		b.WriteString(" -> ")
		t.Body.write(b)
	case Lam:
		open, close := "(", ")"
		if t.Erased {
			open, close = "<", ">"
		}
		b.WriteString(open)
		b.WriteString(t.Name)
		b.WriteString(close)
		b.WriteString(" => ")
		t.Body.write(b)
	case App:
		open, close := "(", ")"
		if t.Erased {
			open, close = "<", ">"
		}
		t.Fun.write(b)
		b.WriteString(open)
		t.Arg.write(b)
		b.WriteString(close)
	case Let:
		fmt.Fprintf(b, "let %s = ", t.Name)
		t.Expr.write(b)
		b.WriteString("; ")
		t.Body.write(b)
	case Ann:
		t.Value.write(b)
		b.WriteString(" :: ")
		t.Type.write(b)
	default:
		b.WriteString("<bad term>")
	}
}
