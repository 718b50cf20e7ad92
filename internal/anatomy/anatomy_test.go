package anatomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	data := []byte(`
surfaces:
  - Molar
  - Tongue
entries:
  Molar:
    title: First molar
    description: Large grinding tooth at the back of the arch.
`)
	tbl, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"Molar", "Tongue"}, tbl.Surfaces)

	e := tbl.Lookup("Molar")
	assert.Equal(t, "First molar", e.Title)
	assert.Contains(t, e.Description, "grinding")
}

func TestLookupUnknownName(t *testing.T) {
	tbl, err := Parse([]byte("surfaces: []"))
	require.NoError(t, err)
	e := tbl.Lookup("Uvula")
	assert.Equal(t, "Uvula", e.Title)
	assert.NotEmpty(t, e.Description)
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse([]byte("surfaces: {not: a list"))
	assert.Error(t, err)
}

func TestBuiltinCoversPlaceholder(t *testing.T) {
	tbl := Builtin()
	assert.Len(t, tbl.Surfaces, placeholderTeeth+1)
	assert.Equal(t, "Gums", tbl.Surfaces[len(tbl.Surfaces)-1])
}
