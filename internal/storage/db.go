package storage

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"math/rand/v2"
	"regexp"

	"github.com/influxdata/influxdb/pkg/snowflake"

	"github.com/potluckapp/potluck/internal/storage/db"
)

// Username validation constraints.
const (
	minUsernameLen = 3
	maxUsernameLen = 64
)

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// validateUsername validates that a username meets the requirements:
// 3-64 characters, alphanumeric and underscores only.
func validateUsername(name string) bool {
	return len(name) >= minUsernameLen &&
		len(name) <= maxUsernameLen &&
		usernameRegex.MatchString(name)
}

// DB is a [Store] backed by a SQLite database.
type DB struct {
	ids     *snowflake.Generator
	db      *sql.DB
	queries *db.Queries
}

// NewDB initializes a DB at the given path and migrates it to the current
// schema.
func NewDB(ctx context.Context, dbPath string, logger *slog.Logger) (*DB, error) {
	handle, err := db.Open(ctx, logger, dbPath)
	if err != nil {
		return nil, err
	}
	return &DB{
		ids:     snowflake.New(rand.IntN(1023)), //nolint:gosec,mnd // this isn't for crypto
		db:      handle,
		queries: db.New(handle),
	}, nil
}

// Close satisfies the [Store] interface.
func (d *DB) Close() error {
	return d.db.Close()
}

// CreateUser satisfies the [Users] interface.
func (d *DB) CreateUser(ctx context.Context, name string, passwordHash []byte) (db.User, error) {
	if !validateUsername(name) {
		return db.User{}, ErrInvalidUsername
	}
	user, err := d.queries.CreateUser(ctx, db.CreateUserParams{
		ID:           d.ids.Next(),
		Name:         name,
		PasswordHash: passwordHash,
	})
	// The insert is a no-op returning zero rows when the name is taken.
	if errors.Is(err, sql.ErrNoRows) {
		return db.User{}, ErrAlreadyExists
	}
	return user, err
}

// GetUser satisfies the [Users] interface.
func (d *DB) GetUser(ctx context.Context, userID uint64) (db.User, error) {
	user, err := d.queries.GetUser(ctx, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return user, ErrNotFound
	}
	return user, err
}

// GetUserByName satisfies the [Users] interface.
func (d *DB) GetUserByName(ctx context.Context, name string) (db.User, error) {
	user, err := d.queries.GetUserByName(ctx, name)
	if errors.Is(err, sql.ErrNoRows) {
		return user, ErrNotFound
	}
	return user, err
}

// DeleteUser satisfies the [Users] interface.
func (d *DB) DeleteUser(ctx context.Context, userID uint64) error {
	return d.queries.DeleteUser(ctx, userID)
}

// CreateRecipe satisfies the [Recipes] interface.
func (d *DB) CreateRecipe(ctx context.Context, owner uint64, fields RecipeFields) (db.Recipe, error) {
	encoded, err := db.EncodeIngredients(fields.Ingredients)
	if err != nil {
		return db.Recipe{}, err
	}
	return d.queries.CreateRecipe(ctx, db.CreateRecipeParams{
		ID:           d.ids.Next(),
		Title:        fields.Title,
		Image:        fields.Image,
		Owner:        owner,
		Ingredients:  encoded,
		Instructions: fields.Instructions,
	})
}

// GetRecipe satisfies the [Recipes] interface.
func (d *DB) GetRecipe(ctx context.Context, recipeID uint64) (db.Recipe, error) {
	recipe, err := d.queries.GetRecipe(ctx, recipeID)
	if errors.Is(err, sql.ErrNoRows) {
		return recipe, ErrNotFound
	}
	return recipe, err
}

// ListRecipes satisfies the [Recipes] interface.
func (d *DB) ListRecipes(ctx context.Context) ([]db.Recipe, error) {
	return d.queries.ListRecipes(ctx)
}

// ListRecipesByOwner satisfies the [Recipes] interface.
func (d *DB) ListRecipesByOwner(ctx context.Context, owner uint64) ([]db.Recipe, error) {
	return d.queries.ListRecipesByOwner(ctx, owner)
}

// UpdateRecipe satisfies the [Recipes] interface.
func (d *DB) UpdateRecipe(ctx context.Context, recipeID uint64, fields RecipeFields) error {
	encoded, err := db.EncodeIngredients(fields.Ingredients)
	if err != nil {
		return err
	}
	return d.queries.UpdateRecipe(ctx, db.UpdateRecipeParams{
		Title:        fields.Title,
		Image:        fields.Image,
		Ingredients:  encoded,
		Instructions: fields.Instructions,
		ID:           recipeID,
	})
}

// DeleteRecipe satisfies the [Recipes] interface.
func (d *DB) DeleteRecipe(ctx context.Context, recipeID uint64) error {
	return d.queries.DeleteRecipe(ctx, recipeID)
}

var _ Store = (*DB)(nil)
