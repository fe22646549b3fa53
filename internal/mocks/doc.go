// Package mocks provides centralized mock implementations for testing.
//
// Instead of defining inline mocks in individual test files, these
// standardized implementations can be reused across test packages. Each mock
// offers per-method function fields for custom behavior and a map-backed
// default implementation for the common cases.
package mocks
