// Package service contains the application use cases for the author
// resource. It coordinates domain validation with the persistence
// interfaces in internal/store and is called by the HTTP handlers in
// internal/api.
//
// Expected conditions are returned as sentinel errors so the API layer can
// map them to status codes:
//   - store.ErrAuthorNotFound (matches store.ErrNotFound) for a missing author
//   - errors matching domain.ErrValidation for invalid names
//
// Any other failure is wrapped in an AuthorServiceError.
//
// Read-modify-write operations such as Update run inside
// store.RunInTransaction when the service was built with a *sql.DB. The
// in-memory store has no database and its operations are already
// serialized by its own lock.
package service
