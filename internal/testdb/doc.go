// Package testdb provides helpers for tests that run against a real
// PostgreSQL database. Such tests are guarded by the "integration" build
// tag and skip themselves when no database URL is configured.
package testdb
