// Package check implements the bidirectional type checker: Check verifies
// a term against an expected type, Infer synthesizes a type for a term
// that carries enough information to do so without one.
package check

import (
	"fmcore/internal/equality"
	"fmcore/internal/hoas"
	"fmcore/internal/term"
)

// Env is everything the checker needs from the surrounding module: the
// reduction rules' view of global bodies, plus the declared type of any
// global reference. It composes hoas.Definitions rather than duplicating
// its method, so a module satisfies both with one Body implementation.
type Env interface {
	hoas.Definitions
	DeclaredType(name string) (*term.Term, bool)
}

// Check verifies that t has type expected under ctx, per the bidirectional
// rules: a Lam is checked structurally against a reduced All using the
// self-type substitution; everything else falls back to Infer followed by
// an equality check against expected.
func Check(env Env, ctx Context, names Names, expected, t *term.Term) error {
	if t.Tag == term.Lam {
		return checkLam(env, ctx, names, expected, t)
	}
	inferred, err := Infer(env, ctx, names, t)
	if err != nil {
		return err
	}
	if !equality.Equal(env, expected, inferred) {
		return errUnexpectedType(expected, inferred, t, ctx, names)
	}
	return nil
}

// checkLam implements the Lam-against-All rule. The bind-type and body
// type both reference the self binder; self is instantiated with t
// itself (the whole lambda), which is the self-type mechanism that lets a
// function's own type refer to the function as a value.
func checkLam(env Env, ctx Context, names Names, expected, t *term.Term) error {
	red := hoas.Reduce(env, expected)
	if red.Tag != term.All {
		return errLambdaNonFunction()
	}
	if t.Erased != red.Erased {
		return errErasureMismatch()
	}

	argType := term.Subst(t, 0, red.BindType)
	bodyCtx := ctx.Extend(argType)
	bodyNames := names.Extend(t.Name)
	bodyExpected := term.Subst(term.Shift(1, 0, t), 1, red.Body)

	return Check(env, bodyCtx, bodyNames, bodyExpected, t.Body)
}

// Infer synthesizes a type for t under ctx, per the bidirectional rules.
func Infer(env Env, ctx Context, names Names, t *term.Term) (*term.Term, error) {
	switch t.Tag {
	case term.Var:
		if t.Index < 0 || t.Index >= len(ctx) {
			return nil, errUnboundVariable(t.Index)
		}
		return term.Shift(t.Index+1, 0, ctx[t.Index]), nil

	case term.Ref:
		declared, ok := env.DeclaredType(t.Name)
		if !ok {
			return nil, errUndefinedReference(t.Name)
		}
		return declared, nil

	case term.Typ:
		// Type-in-Type: the checker does not track universe levels.
		return term.NewTyp(), nil

	case term.App:
		return inferApp(env, ctx, names, t)

	case term.Let:
		xType, err := Infer(env, ctx, names, t.Expr)
		if err != nil {
			return nil, err
		}
		bodyType, err := Infer(env, ctx.Extend(xType), names.Extend(t.Name), t.Body)
		if err != nil {
			return nil, err
		}
		return term.Subst(t.Expr, 0, bodyType), nil

	case term.All:
		return inferAll(env, ctx, names, t)

	case term.Ann:
		if t.Done {
			return t.Type, nil
		}
		if err := Check(env, ctx, names, t.Type, t.Value); err != nil {
			return nil, err
		}
		return t.Type, nil

	case term.Lam:
		return nil, errCantInferType()

	default:
		return nil, errCantInferType()
	}
}

// inferApp infers the type of a function application: f's type must
// reduce to a dependent function type; a is checked against the
// self-instantiated argument type, and the result type substitutes self
// with f and the argument with a into the body type.
func inferApp(env Env, ctx Context, names Names, t *term.Term) (*term.Term, error) {
	fnType, err := Infer(env, ctx, names, t.Fun)
	if err != nil {
		return nil, err
	}
	red := hoas.Reduce(env, fnType)
	if red.Tag != term.All {
		return nil, errNonFunctionApplication()
	}
	if t.Erased != red.Erased {
		return nil, errErasureMismatch()
	}

	argType := term.Subst(t.Fun, 0, red.BindType)
	if err := Check(env, ctx, names, argType, t.Arg); err != nil {
		return nil, err
	}

	bodyAfterSelf := term.Subst(term.Shift(1, 0, t.Fun), 1, red.Body)
	return term.Subst(t.Arg, 0, bodyAfterSelf), nil
}

// inferAll implements dependent-function-type formation: self's type is
// the All term itself (wrapped in a pre-verified annotation so Var lookup
// returns it directly), the bind-type is inferred under that extension,
// and the body is checked against Type under self and the bind.
func inferAll(env Env, ctx Context, names Names, t *term.Term) (*term.Term, error) {
	selfType := term.NewAnn(true, term.NewTyp(), t)
	selfCtx := ctx.Extend(selfType)
	selfNames := names.Extend(t.Self)

	if _, err := Infer(env, selfCtx, selfNames, t.BindType); err != nil {
		return nil, err
	}

	bodyCtx := selfCtx.Extend(t.BindType)
	bodyNames := selfNames.Extend(t.Bind)
	if err := Check(env, bodyCtx, bodyNames, term.NewTyp(), t.Body); err != nil {
		return nil, err
	}

	return term.NewTyp(), nil
}
