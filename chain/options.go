// SPDX-License-Identifier: MIT

// Package chain: functional configuration for bounds checking, text
// population and logging. This file defines:
//   - BoundsMode / ParsePolicy enumerations and their textual names,
//   - documented defaults (constants),
//   - Option / Options (functional options with internal state),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - The zero Options value equals the defaults, so a zero Chain is usable.
//
// Notes:
//   - Bounds policy:
//   - BoundsElements checks an index against the element count.
//   - BoundsLegacy checks it against the occupied size in bytes, the older
//     looser rule. Indices admitted by that check but not
//     backed by storage are refused with ErrBeyondStorage.
//   - Parse policy:
//   - ParseSilent is the default: unparsable tokens become the
//     zero value of T and the caller is not told (a warning is logged).
//   - ParseSkip drops unparsable tokens.
//   - ParseStrict refuses the whole line and keeps the previous contents.
package chain

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// BoundsMode selects the quantity indexed access is checked against.
type BoundsMode int

const (
	// BoundsElements admits 0 <= i < Len().
	BoundsElements BoundsMode = iota

	// BoundsLegacy admits 0 <= i < Size(), the older check
	// against the raw occupied size.
	BoundsLegacy
)

// ParsePolicy selects how population reacts to tokens that do not parse.
type ParsePolicy int

const (
	// ParseSilent stores the zero value of T for a failed token.
	ParseSilent ParsePolicy = iota

	// ParseSkip drops failed tokens; the element count shrinks accordingly.
	ParseSkip

	// ParseStrict fails the population and leaves the chain untouched.
	ParseStrict
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultBoundsMode checks indices against the element count.
	DefaultBoundsMode = BoundsElements

	// DefaultParsePolicy keeps the silent best-effort conversion.
	DefaultParsePolicy = ParseSilent
)

// ---------- Textual names ----------

const (
	nameBoundsElements = "elements"
	nameBoundsLegacy   = "legacy"

	nameParseSilent = "silent"
	nameParseSkip   = "skip"
	nameParseStrict = "strict"
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicBoundsModeInvalid  = "chain: WithBounds: unknown bounds mode"
	panicParsePolicyInvalid = "chain: WithParsePolicy: unknown parse policy"
	panicLoggerNil          = "chain: WithLogger: logger must not be nil"
)

// String returns the textual name of the mode.
func (m BoundsMode) String() string {
	switch m {
	case BoundsElements:
		return nameBoundsElements
	case BoundsLegacy:
		return nameBoundsLegacy
	default:
		return fmt.Sprintf("BoundsMode(%d)", int(m))
	}
}

// valid reports whether m is one of the declared modes.
func (m BoundsMode) valid() bool {
	return m == BoundsElements || m == BoundsLegacy
}

// ParseBoundsMode maps a textual name ("elements", "legacy") to a BoundsMode.
// Matching is case-insensitive; an empty name yields DefaultBoundsMode.
func ParseBoundsMode(s string) (BoundsMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", nameBoundsElements:
		return BoundsElements, nil
	case nameBoundsLegacy:
		return BoundsLegacy, nil
	default:
		return DefaultBoundsMode, fmt.Errorf("bounds mode %q: %w", s, ErrUnknownMode)
	}
}

// String returns the textual name of the policy.
func (p ParsePolicy) String() string {
	switch p {
	case ParseSilent:
		return nameParseSilent
	case ParseSkip:
		return nameParseSkip
	case ParseStrict:
		return nameParseStrict
	default:
		return fmt.Sprintf("ParsePolicy(%d)", int(p))
	}
}

// valid reports whether p is one of the declared policies.
func (p ParsePolicy) valid() bool {
	return p == ParseSilent || p == ParseSkip || p == ParseStrict
}

// ParseParsePolicy maps a textual name ("silent", "skip", "strict") to a
// ParsePolicy. Matching is case-insensitive; an empty name yields
// DefaultParsePolicy.
func ParseParsePolicy(s string) (ParsePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", nameParseSilent:
		return ParseSilent, nil
	case nameParseSkip:
		return ParseSkip, nil
	case nameParseStrict:
		return ParseStrict, nil
	default:
		return DefaultParsePolicy, fmt.Errorf("parse policy %q: %w", s, ErrUnknownMode)
	}
}

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options holds the resolved configuration of a Chain. Fields are unexported;
// use the WithX constructors and the accessor methods.
type Options struct {
	bounds BoundsMode  // index check policy
	policy ParsePolicy // population policy for unparsable tokens
	logger *zap.Logger // nil means zap.NewNop()
}

// WithBounds selects the bounds mode used by At/Ref/Set.
// Panics if m is not a declared BoundsMode.
func WithBounds(m BoundsMode) Option {
	if !m.valid() {
		panic(panicBoundsModeInvalid)
	}

	return func(o *Options) { o.bounds = m }
}

// WithLegacyBounds is shorthand for WithBounds(BoundsLegacy).
func WithLegacyBounds() Option {
	return WithBounds(BoundsLegacy)
}

// WithParsePolicy selects how ReadChain/ParseLine treat unparsable tokens.
// Panics if p is not a declared ParsePolicy.
func WithParsePolicy(p ParsePolicy) Option {
	if !p.valid() {
		panic(panicParsePolicyInvalid)
	}

	return func(o *Options) { o.policy = p }
}

// WithLogger attaches a zap logger. Reallocations and populate summaries are
// logged at debug level, silently converted tokens at warn level.
// Panics on a nil logger.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

// Bounds returns the configured bounds mode.
func (o Options) Bounds() BoundsMode { return o.bounds }

// Policy returns the configured parse policy.
func (o Options) Policy() ParsePolicy { return o.policy }

// log returns the configured logger or a no-op logger.
func (o Options) log() *zap.Logger {
	if o.logger == nil {
		return zap.NewNop()
	}

	return o.logger
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		bounds: DefaultBoundsMode,
		policy: DefaultParsePolicy,
	}
}

// gatherOptions applies opts over the defaults in order; later options win.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
