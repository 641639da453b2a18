package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fmcore/internal/term"
)

func TestParseTermType(t *testing.T) {
	tm, err := ParseTerm("Type")
	assert.NoError(t, err)
	assert.Equal(t, term.Typ, tm.Tag)
}

func TestParseTermIdentityType(t *testing.T) {
	tm, err := ParseTerm("(A : Type) -> (a : A) -> A")
	assert.NoError(t, err)
	assert.Equal(t, term.All, tm.Tag)
	assert.Equal(t, term.Typ, tm.BindType.Tag)
	assert.Equal(t, term.All, tm.Body.Tag)
	assert.Equal(t, term.Var, tm.Body.BindType.Tag)
	assert.Equal(t, 1, tm.Body.BindType.Index)
	assert.Equal(t, term.Var, tm.Body.Body.Tag)
	assert.Equal(t, 2, tm.Body.Body.Index)
}

func TestParseTermIdentityBody(t *testing.T) {
	tm, err := ParseTerm("(A) => (a) => a")
	assert.NoError(t, err)
	assert.Equal(t, term.Lam, tm.Tag)
	assert.Equal(t, "A", tm.Name)
	assert.Equal(t, term.Lam, tm.Body.Tag)
	assert.Equal(t, term.Var, tm.Body.Body.Tag)
	assert.Equal(t, 0, tm.Body.Body.Index)
}

func TestParseTermNonDependentArrow(t *testing.T) {
	tm, err := ParseTerm("Type -> Type")
	assert.NoError(t, err)
	assert.Equal(t, term.All, tm.Tag)
	assert.Equal(t, "", tm.Self)
	assert.Equal(t, "", tm.Bind)
}

func TestParseTermErasedForms(t *testing.T) {
	tm, err := ParseTerm("<A : Type> -> Type")
	assert.NoError(t, err)
	assert.Equal(t, term.All, tm.Tag)
	assert.True(t, tm.Erased)

	lam, err := ParseTerm("<x> => x")
	assert.NoError(t, err)
	assert.Equal(t, term.Lam, lam.Tag)
	assert.True(t, lam.Erased)
}

func TestParseTermSelfNamedAll(t *testing.T) {
	tm, err := ParseTerm("s(n : Type) -> Type")
	assert.NoError(t, err)
	assert.Equal(t, term.All, tm.Tag)
	assert.Equal(t, "s", tm.Self)
	assert.Equal(t, "n", tm.Bind)
}

func TestParseTermApplication(t *testing.T) {
	tm, err := ParseTerm("f(x)")
	assert.NoError(t, err)
	assert.Equal(t, term.App, tm.Tag)
	assert.False(t, tm.Erased)
	assert.Equal(t, "f", tm.Fun.Name)
	assert.Equal(t, "x", tm.Arg.Name)
}

func TestParseTermErasedApplication(t *testing.T) {
	tm, err := ParseTerm("f<x>")
	assert.NoError(t, err)
	assert.Equal(t, term.App, tm.Tag)
	assert.True(t, tm.Erased)
}

func TestParseTermPipeApplication(t *testing.T) {
	tm, err := ParseTerm("f|x;")
	assert.NoError(t, err)
	assert.Equal(t, term.App, tm.Tag)
	assert.False(t, tm.Erased)
}

func TestParseTermLet(t *testing.T) {
	tm, err := ParseTerm("let x = Type; x")
	assert.NoError(t, err)
	assert.Equal(t, term.Let, tm.Tag)
	assert.Equal(t, term.Typ, tm.Expr.Tag)
	assert.Equal(t, term.Var, tm.Body.Tag)
	assert.Equal(t, 0, tm.Body.Index)
}

func TestParseTermAnnotation(t *testing.T) {
	tm, err := ParseTerm("Type :: Type")
	assert.NoError(t, err)
	assert.Equal(t, term.Ann, tm.Tag)
	assert.False(t, tm.Done)
}

func TestParseTermGrouping(t *testing.T) {
	tm, err := ParseTerm("(Type)")
	assert.NoError(t, err)
	assert.Equal(t, term.Typ, tm.Tag)
}

func TestParseTermShadowing(t *testing.T) {
	tm, err := ParseTerm("(A) => (A) => A")
	assert.NoError(t, err)
	assert.Equal(t, term.Lam, tm.Tag)
	assert.Equal(t, term.Lam, tm.Body.Tag)
	assert.Equal(t, term.Var, tm.Body.Body.Tag)
	assert.Equal(t, 0, tm.Body.Body.Index, "the inner A must shadow the outer")
}

func TestParseTermFreeReference(t *testing.T) {
	tm, err := ParseTerm("undefined_name")
	assert.NoError(t, err)
	assert.Equal(t, term.Ref, tm.Tag)
	assert.Equal(t, "undefined_name", tm.Name)
}

func TestParseTermNoParse(t *testing.T) {
	_, err := ParseTerm("(A :")
	assert.Error(t, err)
	_, ok := err.(*NoParseError)
	assert.True(t, ok)
}

func TestParseTermExpectedEOF(t *testing.T) {
	_, err := ParseTerm("Type Type")
	assert.Error(t, err)
	_, ok := err.(*ExpectedEOFError)
	assert.True(t, ok)
}

func TestParseModuleMultipleDefinitions(t *testing.T) {
	src := `
identity : (A : Type) -> (a : A) -> A
(A) => (a) => a

always_type : Type
Type
`
	defs, err := ParseModule(src)
	assert.NoError(t, err)
	assert.Len(t, defs, 2)
	assert.Equal(t, "identity", defs[0].Name)
	assert.Equal(t, "always_type", defs[1].Name)
}

func TestParseModuleCommentsAreSkipped(t *testing.T) {
	src := `
// leading comment
unit : Type -- trailing comment
/* block */ Type {- nested style -}
`
	defs, err := ParseModule(src)
	assert.NoError(t, err)
	assert.Len(t, defs, 1)
	assert.Equal(t, "unit", defs[0].Name)
}
