// SPDX-License-Identifier: MIT

// Package chain: domain types.
// This file contains ONLY the Chain type, the footprint helper and the
// per-token parse types. Errors and options live in dedicated files
// (errors.go, options.go).
package chain

import "unsafe"

// Chain is a generic owning sequence of T stored in one exactly-sized buffer.
//   - data is the exclusively owned buffer; nil in the empty state.
//   - size is the occupied size in bytes (element count × Footprint[T]()).
//     Element counts are always derived from it, never stored.
//   - opts carries bounds mode, parse policy and logger.
//   - parse converts tokens during population; nil selects DefaultParse.
//
// The zero value is an empty chain with default options.
// A Chain is not safe for concurrent mutation.
type Chain[T any] struct {
	data  []T          // owned contiguous storage (len == size / Footprint[T]())
	size  int          // occupied size in bytes; 0 ⇔ data == nil
	opts  Options      // resolved configuration
	parse ParseFunc[T] // token conversion; nil ⇒ DefaultParse[T]
}

// Footprint returns the storage size in bytes of one element of T.
// Zero-sized types report 1 so that element counts remain derivable from
// the occupied size.
// Complexity: O(1).
func Footprint[T any]() int {
	var zero T
	if n := int(unsafe.Sizeof(zero)); n > 0 {
		return n
	}

	return 1
}

// ParseFunc converts one token into a value of T.
type ParseFunc[T any] func(token string) (T, error)

// TokenResult is the explicit outcome of converting one token.
// On failure Value is the zero value of T and Err is non-nil.
type TokenResult[T any] struct {
	Index int    // zero-based token position
	Token string // raw token text
	Value T      // converted value (zero on failure)
	Err   error  // conversion error, nil on success
}

// OK reports whether the token converted successfully.
func (r TokenResult[T]) OK() bool { return r.Err == nil }
