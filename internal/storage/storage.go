// Package storage provides the state management for users and recipes.
package storage

import (
	"context"

	"github.com/potluckapp/potluck/internal/storage/db"
)

const (
	// ErrNotFound is returned when a user or recipe cannot be found.
	ErrNotFound Error = "not found"
	// ErrAlreadyExists is returned if a unique user already exists.
	ErrAlreadyExists Error = "already exists"
	// ErrInvalidUsername is returned when a username fails validation.
	ErrInvalidUsername Error = "username must be 3-64 characters, alphanumeric and underscores only"
	// ErrInternal is returned for any other type of error.
	ErrInternal Error = "internal error"
)

// Error is an error type returned by the storage implementation.
type Error string

// Error satisfies [error].
func (e Error) Error() string { return string(e) }

// RecipeFields are the caller-settable fields of a recipe. The owner is set
// once at creation and is never part of an update.
type RecipeFields struct {
	Title        string
	Image        string
	Ingredients  []string
	Instructions string
}

// Users are the methods on a storage implementation that are responsible for
// accessing and modifying users.
type Users interface {
	// CreateUser creates a user with the given display name and password
	// hash and returns the stored record. An [ErrAlreadyExists] is returned
	// if the name is already taken, an [ErrInvalidUsername] if the name
	// fails validation.
	CreateUser(ctx context.Context, name string, passwordHash []byte) (db.User, error)
	// GetUser returns a single user with the specified ID. An [ErrNotFound]
	// is returned if the user ID does not exist.
	GetUser(ctx context.Context, userID uint64) (db.User, error)
	// GetUserByName returns a single user with the specified display name.
	// An [ErrNotFound] is returned if the name does not exist.
	GetUserByName(ctx context.Context, name string) (db.User, error)
	// DeleteUser removes a user and all recipes they own. Note that this is
	// a hard delete; data is not recoverable.
	DeleteUser(ctx context.Context, userID uint64) error
}

// Recipes are the methods on a storage implementation that are responsible
// for accessing and modifying recipes.
type Recipes interface {
	// CreateRecipe creates a recipe owned by the given user and returns the
	// stored record.
	CreateRecipe(ctx context.Context, owner uint64, fields RecipeFields) (db.Recipe, error)
	// GetRecipe returns a single recipe with the specified ID. An
	// [ErrNotFound] is returned if the recipe ID does not exist.
	GetRecipe(ctx context.Context, recipeID uint64) (db.Recipe, error)
	// ListRecipes returns every recipe in the shared feed, newest first.
	ListRecipes(ctx context.Context) ([]db.Recipe, error)
	// ListRecipesByOwner returns the recipes owned by the given user,
	// newest first.
	ListRecipesByOwner(ctx context.Context, owner uint64) ([]db.Recipe, error)
	// UpdateRecipe replaces the caller-settable fields of a recipe. The
	// owner column is never touched.
	UpdateRecipe(ctx context.Context, recipeID uint64, fields RecipeFields) error
	// DeleteRecipe removes a recipe. Deleting an unknown ID is not an error.
	DeleteRecipe(ctx context.Context, recipeID uint64) error
}

// Store is the combination interface for [Users] and [Recipes].
type Store interface {
	Users
	Recipes
	// Close releases any resources held by the store. An error is returned
	// if the store cannot be cleanly closed.
	Close() error
}
