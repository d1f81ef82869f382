// SPDX-License-Identifier: MIT
// Package chain: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the chain
// package. Public operations return these sentinels (wrapped with method
// context) and tests check them via errors.Is. No operation panics on a
// user-triggered error condition; panics are reserved for nonsensical
// option values (programmer error, see options.go).

package chain

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "chain: ..." for easy grepping across logs.
// Detection sites wrap with chainErrorf so the message carries the method and
// index ("Chain.At(10): chain: index out of range"); callers still match the
// sentinel with errors.Is.

var (
	// ErrOutOfRange indicates that an index is outside the bounds enforced by
	// the chain's BoundsMode. Public indexers (At/Ref/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("chain: index out of range")

	// ErrBeyondStorage is reported under BoundsLegacy when an index passes the
	// raw occupied-size check but addresses no stored element. It wraps
	// ErrOutOfRange, so errors.Is(err, ErrOutOfRange) holds for both.
	ErrBeyondStorage = fmt.Errorf("chain: index passes size check but is beyond storage: %w", ErrOutOfRange)

	// ErrNilChain indicates that a nil *Chain receiver was used.
	ErrNilChain = errors.New("chain: nil receiver")

	// ErrParse marks a token that could not be converted into the element type.
	// Every *TokenError matches it.
	ErrParse = errors.New("chain: token does not parse")

	// ErrRead indicates that the underlying reader failed before a full line
	// was obtained (io.EOF on an empty stream is returned unwrapped instead).
	ErrRead = errors.New("chain: read failed")

	// ErrUnknownMode indicates that a textual bounds mode or parse policy name
	// is not recognized (see ParseBoundsMode / ParseParsePolicy).
	ErrUnknownMode = errors.New("chain: unknown mode")
)

// chainErrorf wraps a sentinel with a uniform Chain context and the index.
// Keep method tags in constants (impl_chain.go) for grep-ability.
func chainErrorf(method string, index int, err error) error {
	return fmt.Errorf("Chain.%s(%d): %w", method, index, err)
}

// TokenError describes one token that failed to convert during population.
// It matches ErrParse and the underlying conversion error via errors.Is.
type TokenError struct {
	Index int    // zero-based token position in the line
	Token string // raw token text
	Err   error  // conversion failure reported by the ParseFunc
}

// Error implements the error interface.
func (e *TokenError) Error() string {
	return fmt.Sprintf("chain: token %d (%q) does not parse: %v", e.Index, e.Token, e.Err)
}

// Unwrap exposes both ErrParse and the conversion cause to errors.Is/As.
func (e *TokenError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}
