package module

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromSourceBuildsModule(t *testing.T) {
	src := `
identity : (A : Type) -> (a : A) -> A
(A) => (a) => a
`
	m, err := FromSource(src)
	assert.NoError(t, err)
	assert.Len(t, m.Definitions(), 1)

	results := Check(m)
	assert.True(t, OK(results))
}

func TestFromSourceRejectsDuplicateNames(t *testing.T) {
	src := `
a : Type
Type

a : Type
Type
`
	_, err := FromSource(src)
	assert.Error(t, err)
}

func TestFromSourcePropagatesParseErrors(t *testing.T) {
	_, err := FromSource("not ( valid")
	assert.Error(t, err)
}
