// Package sec provides the authentication and authorization primitives for
// the web application.
//
// # Authentication
//
// Logged-in browsers carry an opaque session token in a cookie. Tokens map to
// user IDs through [Sessions], an in-memory server-side store; credentials
// are validated against bcrypt password hashes held by the storage layer.
// Resolving a request to a user ([Authenticate]) is a pure decision separate
// from how the caller responds to an anonymous request (redirect for pages,
// 401 for mutating endpoints).
//
// # Authorization
//
// Recipes are owned by the user that created them, permanently. Every
// mutating recipe operation runs [AuthorizeRecipe] after authentication; the
// three-way [Decision] checks existence before ownership so probing an
// unknown ID never reveals whether it belongs to someone else.
//
// # Components
//
//   - [HashPassword], [ComparePassword]: bcrypt password hashing utilities
//   - [Sessions]: session token lifecycle (create, resolve, destroy)
//   - [Authenticate]: resolves a request's cookie to a user record
//   - [AuthorizeRecipe]: ownership decision for mutating recipe operations
package sec
