// Package apperrors defines structured application error types,
// allowing for a clear distinction between error classes (configuration,
// input domain, etc.) and for carrying the data needed to handle them.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// Error types are value types checked with errors.As via the Is* helpers.
package apperrors
