package storage

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDB(t *testing.T) {
	t.Parallel()

	store, err := NewDB(t.Context(), filepath.Join(t.TempDir(), "db.sqlite"), slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	owner, err := store.CreateUser(t.Context(), "test_owner", []byte("hash"))
	require.NoError(t, err)

	t.Run("UserCRUD", func(t *testing.T) {
		t.Parallel()

		user, err := store.CreateUser(t.Context(), "user_crud_test", []byte("foobar"))
		require.NoError(t, err)
		assert.NotZero(t, user.ID)
		assert.Equal(t, "user_crud_test", user.Name)
		assert.Equal(t, []byte("foobar"), user.PasswordHash)

		actual, err := store.GetUser(t.Context(), user.ID)
		require.NoError(t, err)
		assert.Equal(t, user, actual)

		_, err = store.GetUser(t.Context(), 0)
		require.ErrorIs(t, err, ErrNotFound)

		actual, err = store.GetUserByName(t.Context(), user.Name)
		require.NoError(t, err)
		assert.Equal(t, user, actual)

		_, err = store.GetUserByName(t.Context(), "not a real user")
		require.ErrorIs(t, err, ErrNotFound)

		_, err = store.CreateUser(t.Context(), user.Name, []byte("other"))
		require.ErrorIs(t, err, ErrAlreadyExists)

		_, err = store.CreateUser(t.Context(), "ab", []byte{})
		require.ErrorIs(t, err, ErrInvalidUsername)

		_, err = store.CreateUser(t.Context(), "invalid/name", []byte{})
		require.ErrorIs(t, err, ErrInvalidUsername)

		err = store.DeleteUser(t.Context(), user.ID)
		require.NoError(t, err)
		_, err = store.GetUserByName(t.Context(), user.Name)
		require.ErrorIs(t, err, ErrNotFound)

		err = store.DeleteUser(t.Context(), user.ID)
		require.NoError(t, err)
	})

	t.Run("RecipeCRUD", func(t *testing.T) {
		t.Parallel()

		fields := RecipeFields{
			Title:        "Soup",
			Ingredients:  []string{"salt", "water"},
			Instructions: "Boil the water. Add the salt.",
		}
		recipe, err := store.CreateRecipe(t.Context(), owner.ID, fields)
		require.NoError(t, err)
		assert.NotZero(t, recipe.ID)
		assert.Equal(t, owner.ID, recipe.Owner)

		actual, err := store.GetRecipe(t.Context(), recipe.ID)
		require.NoError(t, err)
		assert.Equal(t, recipe, actual)

		list, err := actual.IngredientList()
		require.NoError(t, err)
		assert.Equal(t, []string{"salt", "water"}, list)

		_, err = store.GetRecipe(t.Context(), 0)
		require.ErrorIs(t, err, ErrNotFound)

		fields.Title = "Salty Soup"
		fields.Ingredients = []string{"water", "salt", "pepper"}
		err = store.UpdateRecipe(t.Context(), recipe.ID, fields)
		require.NoError(t, err)

		actual, err = store.GetRecipe(t.Context(), recipe.ID)
		require.NoError(t, err)
		assert.Equal(t, "Salty Soup", actual.Title)
		assert.Equal(t, owner.ID, actual.Owner) // owner never changes on update

		list, err = actual.IngredientList()
		require.NoError(t, err)
		assert.Equal(t, []string{"water", "salt", "pepper"}, list)

		err = store.DeleteRecipe(t.Context(), recipe.ID)
		require.NoError(t, err)
		_, err = store.GetRecipe(t.Context(), recipe.ID)
		require.ErrorIs(t, err, ErrNotFound)

		err = store.DeleteRecipe(t.Context(), recipe.ID)
		require.NoError(t, err)
	})

	t.Run("ListRecipes", func(t *testing.T) {
		t.Parallel()

		lister, err := store.CreateUser(t.Context(), "recipe_lister", []byte("hash"))
		require.NoError(t, err)

		mine, err := store.ListRecipesByOwner(t.Context(), lister.ID)
		require.NoError(t, err)
		assert.Empty(t, mine)

		first, err := store.CreateRecipe(t.Context(), lister.ID, RecipeFields{Title: "First"})
		require.NoError(t, err)
		second, err := store.CreateRecipe(t.Context(), lister.ID, RecipeFields{Title: "Second"})
		require.NoError(t, err)

		mine, err = store.ListRecipesByOwner(t.Context(), lister.ID)
		require.NoError(t, err)
		require.Len(t, mine, 2)
		// Newest first.
		assert.Equal(t, second.ID, mine[0].ID)
		assert.Equal(t, first.ID, mine[1].ID)

		all, err := store.ListRecipes(t.Context())
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(all), 2)
	})

	t.Run("DeleteUserCascades", func(t *testing.T) {
		t.Parallel()

		user, err := store.CreateUser(t.Context(), "cascade_test", []byte("hash"))
		require.NoError(t, err)
		recipe, err := store.CreateRecipe(t.Context(), user.ID, RecipeFields{Title: "Orphan"})
		require.NoError(t, err)

		err = store.DeleteUser(t.Context(), user.ID)
		require.NoError(t, err)

		_, err = store.GetRecipe(t.Context(), recipe.ID)
		require.ErrorIs(t, err, ErrNotFound)
	})
}
