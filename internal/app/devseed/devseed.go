// Package devseed populates a development store with demo users and recipes.
package devseed

import (
	"context"
	"errors"
	"log/slog"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/potluckapp/potluck/internal/sec"
	"github.com/potluckapp/potluck/internal/storage"
)

// Password is the shared password for every seeded demo account.
const Password = "potluck-dev"

var demoUsers = []string{"demo_alice", "demo_bob"}

const recipesPerUser = 3

// Seed creates the demo users with a handful of generated recipes each. Users
// that already exist are left alone, so re-running in dev mode is harmless.
func Seed(ctx context.Context, logger *slog.Logger, store storage.Store) error {
	faker := gofakeit.New(0)

	hash, err := sec.HashPassword(Password)
	if err != nil {
		return err
	}

	for _, name := range demoUsers {
		if _, err := store.GetUserByName(ctx, name); err == nil {
			continue
		} else if !errors.Is(err, storage.ErrNotFound) {
			return err
		}

		user, err := store.CreateUser(ctx, name, hash)
		if err != nil {
			return err
		}

		for range recipesPerUser {
			_, err := store.CreateRecipe(ctx, user.ID, storage.RecipeFields{
				Title:        faker.Dinner(),
				Ingredients:  []string{faker.Vegetable(), faker.Fruit(), "salt"},
				Instructions: faker.Sentence(12),
			})
			if err != nil {
				return err
			}
		}

		logger.InfoContext(ctx, "seeded demo user",
			slog.String("name", name),
			slog.String("password", Password),
		)
	}
	return nil
}
