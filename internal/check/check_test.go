package check

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fmcore/internal/term"
)

// emptyEnv has no global definitions; every scenario below is closed.
type emptyEnv struct{}

func (emptyEnv) Body(name string) (*term.Term, bool)         { return nil, false }
func (emptyEnv) DeclaredType(name string) (*term.Term, bool) { return nil, false }

func lam(name string, body *term.Term) *term.Term {
	return term.NewLam(false, name, body)
}

func all(self, bind string, bindType, body *term.Term) *term.Term {
	return term.NewAll(false, self, bind, bindType, body)
}

func app(fn, arg *term.Term) *term.Term {
	return term.NewApp(false, fn, arg)
}

func TestCheckIdentity(t *testing.T) {
	// identity : (A : Type) -> (a : A) -> A
	declType := all("", "A", term.NewTyp(), all("", "a", term.NewVar(1), term.NewVar(2)))
	body := lam("A", lam("a", term.NewVar(0)))

	err := Check(emptyEnv{}, nil, nil, declType, body)
	assert.NoError(t, err)
}

func TestCheckConst(t *testing.T) {
	// const : (A:Type)->(B:Type)->(a:A)->(b:B)->A
	declType := all("", "A", term.NewTyp(),
		all("", "B", term.NewTyp(),
			all("", "a", term.NewVar(3),
				all("", "b", term.NewVar(3), term.NewVar(6)))))
	body := lam("A", lam("B", lam("a", lam("b", term.NewVar(1)))))

	err := Check(emptyEnv{}, nil, nil, declType, body)
	assert.NoError(t, err)
}

func applyTwiceType() *term.Term {
	innerFuncType := all("", "x", term.NewVar(2), term.NewVar(3))
	return all("", "A", term.NewTyp(),
		all("", "f", innerFuncType,
			all("", "x", term.NewVar(3), term.NewVar(4))))
}

func TestCheckApplyTwiceSucceeds(t *testing.T) {
	declType := applyTwiceType()
	// (A) => (f) => (x) => f(f(x))
	body := lam("A", lam("f", lam("x",
		app(term.NewVar(1), app(term.NewVar(1), term.NewVar(0))))))

	err := Check(emptyEnv{}, nil, nil, declType, body)
	assert.NoError(t, err)
}

func TestCheckApplyTwiceBadBodyFails(t *testing.T) {
	declType := applyTwiceType()
	// (A) => (f) => (x) => f(x)(x) -- f(x) has type A, not a function.
	body := lam("A", lam("f", lam("x",
		app(app(term.NewVar(1), term.NewVar(0)), term.NewVar(0)))))

	err := Check(emptyEnv{}, nil, nil, declType, body)
	assert.Error(t, err)
	te, ok := err.(*TypeError)
	assert.True(t, ok)
	assert.Contains(t, te.Message, "Non-function application")
}

func TestCheckBadSelfApplicationFails(t *testing.T) {
	// bad : (A : Type) -> A, body (A) => A -- A used as a value of type A,
	// but A's own inferred type is Type.
	declType := all("", "A", term.NewTyp(), term.NewVar(0))
	body := lam("A", term.NewVar(0))

	err := Check(emptyEnv{}, nil, nil, declType, body)
	assert.Error(t, err)
	te, ok := err.(*TypeError)
	assert.True(t, ok)
	assert.Contains(t, te.Message, "Unexpected type")
}

func TestCheckShadowing(t *testing.T) {
	// shadow : (A:Type) -> (A:Type) -> A, body (A) => (A) => A -- the inner
	// A shadows the outer; the result refers to the inner binder (index 0).
	declType := all("", "A", term.NewTyp(), all("", "A", term.NewTyp(), term.NewVar(0)))
	body := lam("A", lam("A", term.NewVar(0)))

	err := Check(emptyEnv{}, nil, nil, declType, body)
	assert.NoError(t, err)
}

func TestCheckUnboundVariable(t *testing.T) {
	err := Check(emptyEnv{}, nil, nil, term.NewTyp(), term.NewVar(0))
	assert.Error(t, err)
	te, ok := err.(*TypeError)
	assert.True(t, ok)
	assert.Contains(t, te.Message, "Unbound variable")
}

func TestCheckUndefinedReference(t *testing.T) {
	err := Check(emptyEnv{}, nil, nil, term.NewTyp(), term.NewRef("nope"))
	assert.Error(t, err)
	te, ok := err.(*TypeError)
	assert.True(t, ok)
	assert.Contains(t, te.Message, "Undefined Reference")
}

func TestCheckLambdaAgainstNonFunctionFails(t *testing.T) {
	err := Check(emptyEnv{}, nil, nil, term.NewTyp(), lam("x", term.NewVar(0)))
	assert.Error(t, err)
	te, ok := err.(*TypeError)
	assert.True(t, ok)
	assert.Contains(t, te.Message, "Lambda has a non-function type")
}

func TestCheckErasureMismatchFails(t *testing.T) {
	declType := term.NewAll(false, "", "a", term.NewTyp(), term.NewVar(1))
	erasedLam := term.NewLam(true, "a", term.NewVar(0))

	err := Check(emptyEnv{}, nil, nil, declType, erasedLam)
	assert.Error(t, err)
	te, ok := err.(*TypeError)
	assert.True(t, ok)
	assert.Contains(t, te.Message, "Erasure mismatch")
}

func TestInferCantInferLambda(t *testing.T) {
	_, err := Infer(emptyEnv{}, nil, nil, lam("x", term.NewVar(0)))
	assert.Error(t, err)
	te, ok := err.(*TypeError)
	assert.True(t, ok)
	assert.Contains(t, te.Message, "Can't infer type")
}
