package term

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShiftLeavesBoundVarsAlone(t *testing.T) {
	// (x) => #0 -- the Var refers to the Lam's own binder, below depth 1.
	lam := NewLam(false, "x", NewVar(0))
	shifted := Shift(5, 0, lam)
	assert.Equal(t, 0, shifted.Body.Index)
}

func TestShiftFreeVar(t *testing.T) {
	v := NewVar(2)
	shifted := Shift(3, 0, v)
	assert.Equal(t, 5, shifted.Index)
}

func TestShiftRespectsDepth(t *testing.T) {
	v := NewVar(1)
	// depth 2 means indices below 2 are untouched.
	shifted := Shift(10, 2, v)
	assert.Equal(t, 1, shifted.Index)
}

func TestSubstReplacesExactDepth(t *testing.T) {
	replacement := NewRef("X")
	result := Subst(replacement, 0, NewVar(0))
	assert.Equal(t, Ref, result.Tag)
	assert.Equal(t, "X", result.Name)
}

func TestSubstDecrementsHigherIndices(t *testing.T) {
	result := Subst(NewRef("X"), 0, NewVar(3))
	assert.Equal(t, Var, result.Tag)
	assert.Equal(t, 2, result.Index)
}

func TestSubstLeavesLowerIndicesAlone(t *testing.T) {
	result := Subst(NewRef("X"), 2, NewVar(0))
	assert.Equal(t, 0, result.Index)
}

func TestSubstUnderLamShiftsReplacement(t *testing.T) {
	// (x) => #1, substituting depth 1 (the free reference to the outer
	// binder) with a Var(0) from one scope out: under the Lam, that
	// replacement must be shifted by 1.
	body := NewVar(1)
	lam := NewLam(false, "x", body)
	result := Subst(NewVar(0), 0, lam)
	assert.Equal(t, Var, result.Body.Tag)
	assert.Equal(t, 1, result.Body.Index)
}

func TestSubstBetaLawHashMatchesReduction(t *testing.T) {
	// subst(a, 0, b) where b references its own binder at index 0.
	body := NewVar(0)
	arg := NewRef("A")
	result := Subst(arg, 0, body)
	assert.Equal(t, NewRef("A").Hash, result.Hash)
}
