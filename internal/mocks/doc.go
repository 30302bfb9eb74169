// Package mocks provides hand-written test doubles for the author service
// and store interfaces. Each mock records its calls and returns either the
// result of a per-method function field or a fixed default.
package mocks
