package sec

import "github.com/potluckapp/potluck/internal/storage/db"

// Decision is the outcome of an ownership check on a mutating recipe
// operation.
type Decision int

const (
	// Allow permits the operation; the requester owns the recipe.
	Allow Decision = iota
	// Forbidden aborts the operation; the recipe exists but belongs to
	// another user.
	Forbidden
	// NotFound aborts the operation; the recipe ID did not resolve.
	NotFound
)

// String satisfies [fmt.Stringer].
func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case Forbidden:
		return "forbidden"
	case NotFound:
		return "not found"
	default:
		return "unknown"
	}
}

// AuthorizeRecipe decides whether the requesting user may mutate a recipe.
// found reports whether the recipe ID resolved to a record at all; it is
// checked before ownership so a non-owner probing a dead ID sees not-found,
// never forbidden. The same decision applies to edit-view, edit-submit, and
// delete.
func AuthorizeRecipe(recipe db.Recipe, found bool, requester uint64) Decision {
	if !found {
		return NotFound
	}
	if recipe.Owner != requester {
		return Forbidden
	}
	return Allow
}
