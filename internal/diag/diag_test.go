package diag

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError(t *testing.T) {
	e := Errorf(CodeMissingField, 7, "missing required field '%s' on %s", "name", "Space")
	assert.Equal(t, "Error [in line 7]: missing required field 'name' on Space", e.Error())

	e = Errorf(CodeUnknownField, 2, "unexpected field 'nmae' in object 'Space'").WithSuggestion("name")
	assert.Equal(t, "Error [in line 2]: unexpected field 'nmae' in object 'Space' (did you mean 'name'?)", e.Error())

	wrapped := fmt.Errorf("loading: %w", e)
	assert.Equal(t, CodeUnknownField, CodeOf(wrapped))
	assert.Equal(t, CodeUnknown, CodeOf(errors.New("plain")))
	assert.Equal(t, "unknown-field", CodeUnknownField.String())
}

func TestSuggest(t *testing.T) {
	keywords := []string{"Substance", "Material", "Construction", "Surface", "Space"}

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"typo", "Matrial", "Material"},
		{"swapped letters", "Spaec", "Space"},
		{"abbreviation", "Constr", "Construction"},
		{"nothing close", "Luminaire", ""},
		{"empty name", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Suggest(tt.in, keywords))
		})
	}
	assert.Equal(t, "", Suggest("anything", nil))
}

func TestList(t *testing.T) {
	var l List
	assert.NoError(t, l.Err())
	assert.False(t, l.HasErrors())

	l.Add(Errorf(CodeSyntax, 5, "second"))
	l.Warn(Errorf(CodeDuplicate, 1, "warned"))
	l.Add(errors.New("no line"))
	l.Add(nil)

	require.Equal(t, 3, l.Len())
	assert.True(t, l.HasErrors())
	assert.Len(t, l.Errors(), 2)
	assert.Len(t, l.Warnings(), 1)
	assert.Equal(t, CodeUnknown, l.Errors()[1].Code)

	l.SortByLine()
	lines := []int{}
	for _, e := range l.Entries() {
		lines = append(lines, e.Err.Line)
	}
	assert.Equal(t, []int{0, 1, 5}, lines)

	err := l.Err()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Error [in line 5]: second")
	assert.NotContains(t, err.Error(), "warned")
}

func TestHCL(t *testing.T) {
	src := []byte("Building {\n  name: \"b\"\n  n_storeys: 2\n}\n")
	var l List
	l.Add(Errorf(CodeSyntax, 3, "fields must be separated by commas, found 'n_storeys'"))
	l.Warn(Errorf(CodeDuplicate, 99, "out of range"))

	diags := l.HCL("model.simple", src)
	require.Len(t, diags, 2)
	assert.Equal(t, hcl.DiagError, diags[0].Severity)
	assert.Equal(t, "syntax", diags[0].Summary)
	require.NotNil(t, diags[0].Subject)
	assert.Equal(t, 3, diags[0].Subject.Start.Line)
	assert.Equal(t, "  n_storeys: 2", string(src[diags[0].Subject.Start.Byte:diags[0].Subject.End.Byte]))
	assert.Equal(t, hcl.DiagWarning, diags[1].Severity)
	assert.Nil(t, diags[1].Subject)

	var out bytes.Buffer
	require.NoError(t, Write(&out, "model.simple", src, &l, 80, false))
	assert.Contains(t, out.String(), "on model.simple line 3")
	assert.Contains(t, out.String(), "fields must be separated by commas")
}
