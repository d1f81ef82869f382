// SPDX-License-Identifier: MIT

// Package chain - Chain storage, ownership & value semantics.
//
// Purpose:
//   - Own exactly one contiguous buffer of T, sized to the element count.
//   - Keep the occupied size (bytes) as the single bookkeeping quantity and
//     derive every element count from it.
//   - Provide explicit copy (Clone/Assign) and move (Move/MoveAssign)
//     semantics so that no two live chains ever share a buffer.
//
// Complexity quicksheet:
//   - New/Of: O(1); Clone: O(n); Move: O(1); Assign: O(n); MoveAssign: O(1);
//     Release: O(1); Size/Len: O(1).
package chain

import "go.uber.org/zap"

// ---------- error context tags ----------

const (
	ctxAt       = "At"        // method tag used in error wrappers
	ctxRef      = "Ref"       // method tag used in error wrappers
	ctxSet      = "Set"       // method tag used in error wrappers
	ctxRead     = "ReadChain" // method tag used in error wrappers
	ctxPopulate = "ParseLine" // method tag used in error wrappers
)

// New creates an empty chain: occupied size 0, no buffer.
// Complexity: O(len(opts)).
func New[T any](opts ...Option) *Chain[T] {
	return &Chain[T]{opts: gatherOptions(opts...)}
}

// Of creates a chain holding exactly one element v.
// MAIN DESCRIPTION:
//   - Allocates a one-element buffer initialized to v.
//
// Behavior highlights:
//   - Size() reports Footprint[T]() (one element's bytes), not 1.
//
// Complexity:
//   - Time O(1), Space O(1).
func Of[T any](v T, opts ...Option) *Chain[T] {
	c := New[T](opts...)
	c.data = []T{v}
	c.size = Footprint[T]()

	return c
}

// fromBuffer adopts buf without copying. For internal use only: the caller
// guarantees buf is not referenced anywhere else.
func fromBuffer[T any](buf []T, opts Options, parse ParseFunc[T]) *Chain[T] {
	c := &Chain[T]{opts: opts, parse: parse}
	if len(buf) == 0 {
		return c
	}
	c.data = buf
	c.size = len(buf) * Footprint[T]()

	return c
}

// count derives the element count from the occupied size. Nil-safe.
func (c *Chain[T]) count() int {
	if c == nil {
		return 0
	}

	return c.size / Footprint[T]()
}

// elems returns the logical element range. Nil-safe.
func (c *Chain[T]) elems() []T {
	if c == nil {
		return nil
	}

	return c.data[:c.count()]
}

// Clone returns an independent copy: a freshly allocated buffer with the same
// element count and values, plus the same options and parser.
// MAIN DESCRIPTION:
//   - Value-semantic copy; the source is not touched.
//
// Implementation:
//   - Stage 1: derive the element count from the occupied size.
//   - Stage 2: allocate an exactly-sized buffer and copy the elements.
//
// Behavior highlights:
//   - An empty (or nil) source yields an empty chain.
//   - Mutating the clone never changes the source and vice versa.
//
// Complexity:
//   - Time O(n), Space O(n).
func (c *Chain[T]) Clone() *Chain[T] {
	if c == nil {
		return New[T]()
	}
	n := c.count()
	if n == 0 {
		return fromBuffer[T](nil, c.opts, c.parse)
	}
	buf := make([]T, n)
	copy(buf, c.data[:n])

	return fromBuffer(buf, c.opts, c.parse)
}

// Move transfers the buffer and occupied size into a new chain in O(1) and
// leaves c empty (size 0, no buffer). Options and parser travel with the
// buffer. A nil receiver yields an empty chain.
func (c *Chain[T]) Move() *Chain[T] {
	if c == nil {
		return New[T]()
	}
	out := &Chain[T]{data: c.data, size: c.size, opts: c.opts, parse: c.parse}
	c.data, c.size = nil, 0

	return out
}

// Assign copies src's elements into c and returns c.
// MAIN DESCRIPTION:
//   - Copy-assignment with buffer reuse.
//
// Implementation:
//   - Stage 1: identity guard (self-assignment is a no-op).
//   - Stage 2: reallocate only when the element counts differ.
//   - Stage 3: copy src's elements over c's buffer.
//
// Behavior highlights:
//   - When counts match, c keeps its buffer; any *T obtained from Ref stays
//     valid and observes the new values.
//   - c keeps its own options and parser.
//   - A nil src is treated as an empty chain.
//
// Complexity:
//   - Time O(n), Space O(n) only on reallocation.
func (c *Chain[T]) Assign(src *Chain[T]) *Chain[T] {
	if c == nil || c == src {
		return c
	}
	n := src.count()
	if c.count() != n {
		c.opts.log().Debug("chain: reallocating on assign",
			zap.Int("from", c.count()), zap.Int("to", n))
		c.data = nil
		if n > 0 {
			c.data = make([]T, n)
		}
		c.size = n * Footprint[T]()
	}
	copy(c.data, src.elems())

	return c
}

// MoveAssign exchanges buffers and sizes with src, then releases what used to
// be c's buffer (now held by src) immediately. src ends empty.
// Self-move-assignment is a no-op; a nil src is an empty chain, so c is
// released. c keeps its own options.
// Complexity: O(1).
func (c *Chain[T]) MoveAssign(src *Chain[T]) *Chain[T] {
	if c == nil || c == src {
		return c
	}
	if src == nil {
		c.Release()

		return c
	}
	c.data, src.data = src.data, c.data
	c.size, src.size = src.size, c.size
	src.Release()

	return c
}

// Release drops the owned buffer and returns the chain to the empty state.
// Safe to call repeatedly and on an empty or nil chain.
func (c *Chain[T]) Release() {
	if c == nil {
		return
	}
	c.data = nil
	c.size = 0
}

// Size returns the occupied size in bytes (element count × Footprint[T]()).
// Callers wanting the element count use Len.
// Complexity: O(1).
func (c *Chain[T]) Size() int {
	if c == nil {
		return 0
	}

	return c.size
}

// Len returns the element count, derived as Size() / Footprint[T]().
// Complexity: O(1).
func (c *Chain[T]) Len() int {
	return c.count()
}

// Footprint returns Footprint[T]() for the chain's element type.
func (c *Chain[T]) Footprint() int {
	return Footprint[T]()
}

// IsEmpty reports whether the chain holds no buffer.
func (c *Chain[T]) IsEmpty() bool {
	return c.Size() == 0
}

// Values returns a copy of the elements in order; nil for an empty chain.
// Complexity: O(n).
func (c *Chain[T]) Values() []T {
	src := c.elems()
	if len(src) == 0 {
		return nil
	}
	out := make([]T, len(src))
	copy(out, src)

	return out
}

// Options returns the chain's resolved configuration.
func (c *Chain[T]) Options() Options {
	if c == nil {
		return defaultOptions()
	}

	return c.opts
}

// SetParser installs the token conversion used by ReadChain/ParseLine and
// returns c. A nil p restores DefaultParse.
func (c *Chain[T]) SetParser(p ParseFunc[T]) *Chain[T] {
	if c != nil {
		c.parse = p
	}

	return c
}

// parser returns the installed ParseFunc or DefaultParse.
func (c *Chain[T]) parser() ParseFunc[T] {
	if c == nil || c.parse == nil {
		return DefaultParse[T]
	}

	return c.parse
}
