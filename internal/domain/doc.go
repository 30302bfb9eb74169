// Package domain contains the Author entity and its validation rules.
// It has no dependencies on storage or transport; the store and api layers
// build on the types and sentinel errors defined here.
package domain
