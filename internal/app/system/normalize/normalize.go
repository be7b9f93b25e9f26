// Package normalize provides canonicalization helpers for user-supplied
// identity fields. Values are normalized once at the write path so that
// uniqueness checks and indexes compare like with like.
package normalize

import "strings"

// Email trims surrounding whitespace and lowercases the address.
// Email addresses are case-insensitive for our purposes, so the
// canonical form is always lowercase.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims surrounding whitespace but preserves case.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// Role trims and lowercases a role value so it can be compared against
// the known role set.
func Role(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// QueryParam trims surrounding whitespace from a free-text query
// parameter, preserving case.
func QueryParam(s string) string {
	return strings.TrimSpace(s)
}
