package sec

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/potluckapp/potluck/internal/storage/db"
)

func TestAuthorizeRecipe(t *testing.T) {
	t.Parallel()

	const (
		alice uint64 = 1
		bob   uint64 = 2
	)
	recipe := db.Recipe{ID: 100, Title: "Soup", Owner: alice}

	tests := []struct {
		name      string
		recipe    db.Recipe
		found     bool
		requester uint64
		want      Decision
	}{
		{
			name:      "owner may mutate",
			recipe:    recipe,
			found:     true,
			requester: alice,
			want:      Allow,
		},
		{
			name:      "non-owner is forbidden",
			recipe:    recipe,
			found:     true,
			requester: bob,
			want:      Forbidden,
		},
		{
			name:      "missing recipe is not found for the owner",
			found:     false,
			requester: alice,
			want:      NotFound,
		},
		{
			name:      "missing recipe is not found for anyone else",
			found:     false,
			requester: bob,
			want:      NotFound,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, test.want, AuthorizeRecipe(test.recipe, test.found, test.requester))
		})
	}
}

func TestDecisionString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "allow", Allow.String())
	assert.Equal(t, "forbidden", Forbidden.String())
	assert.Equal(t, "not found", NotFound.String())
}
