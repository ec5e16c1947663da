package searchtext_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/pos-saas-api/pkg/searchtext"
)

func TestFold(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Café", "cafe"},
		{"AZÚCAR", "azucar"},
		{"ñoño", "nono"},
		{"sin tildes", "sin tildes"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, searchtext.Fold(tc.in), "Fold(%q)", tc.in)
	}
}

func TestMatches(t *testing.T) {
	assert.True(t, searchtext.Matches("Café molido 500g", "cafe"))
	assert.True(t, searchtext.Matches("Café molido 500g", "CAFÉ"))
	assert.True(t, searchtext.Matches("Azúcar refinada", "azuc"))
	assert.True(t, searchtext.Matches("cualquier cosa", ""), "query vacío coincide con todo")
	assert.False(t, searchtext.Matches("Sal de mar", "cafe"))
}
