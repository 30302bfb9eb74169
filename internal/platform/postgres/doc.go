// Package postgres provides the PostgreSQL implementation of the
// store.AuthorStore interface together with the embedded goose migrations
// that create its schema. Queries run through database/sql on the pgx
// stdlib driver.
package postgres
