// SPDX-License-Identifier: MIT

// Package chain - indexed access & concatenation.
//
// Indexed access never panics: an index outside the bounds selected by the
// chain's BoundsMode yields ErrOutOfRange, and under BoundsLegacy an index
// that passes the raw size check but is not backed by storage yields
// ErrBeyondStorage. Concatenation always allocates a new exactly-sized
// buffer and never mutates its operands.
package chain

import "go.uber.org/zap"

// locate resolves index i to the address of the stored element.
// Stage 1 (Validate): check i against the bound chosen by BoundsMode.
// Stage 2 (Guard): refuse indices the storage does not cover.
// Complexity: O(1).
func (c *Chain[T]) locate(method string, i int) (*T, error) {
	if c == nil {
		return nil, chainErrorf(method, i, ErrNilChain)
	}
	bound := c.count()
	if c.opts.bounds == BoundsLegacy {
		bound = c.size // raw occupied size
	}
	if i < 0 || i >= bound {
		return nil, chainErrorf(method, i, ErrOutOfRange)
	}
	if i >= len(c.data) {
		c.opts.log().Warn("chain: index admitted by legacy bounds is beyond storage",
			zap.Int("index", i), zap.Int("size", c.size), zap.Int("len", len(c.data)))

		return nil, chainErrorf(method, i, ErrBeyondStorage)
	}

	return &c.data[i], nil
}

// At returns the element at index i (read-only access).
// Errors: ErrOutOfRange, ErrBeyondStorage (legacy bounds), ErrNilChain.
// Complexity: O(1).
func (c *Chain[T]) At(i int) (T, error) {
	p, err := c.locate(ctxAt, i)
	if err != nil {
		var zero T
		return zero, err
	}

	return *p, nil
}

// Ref returns a pointer to the element at index i (mutable access).
// The pointer is valid until the next operation that replaces the buffer
// (Assign with a different count, MoveAssign, ReadChain, ParseLine, Release).
// Errors are the same as At.
func (c *Chain[T]) Ref(i int) (*T, error) {
	return c.locate(ctxRef, i)
}

// Set assigns v at index i.
// Errors are the same as At.
func (c *Chain[T]) Set(i int, v T) error {
	p, err := c.locate(ctxSet, i)
	if err != nil {
		return err
	}
	*p = v

	return nil
}

// Concat returns a new chain holding c's elements followed by rhs's elements.
// MAIN DESCRIPTION:
//   - Both element counts are derived from the occupied sizes; the result
//     buffer is allocated to their sum and the ranges copied in order.
//
// Behavior highlights:
//   - Neither operand is mutated; the result aliases neither.
//   - Result Size() == c.Size() + rhs.Size().
//   - The result inherits c's options and parser; nil operands count as empty.
//
// Complexity:
//   - Time O(n+m), Space O(n+m).
func (c *Chain[T]) Concat(rhs *Chain[T]) *Chain[T] {
	left, right := c.elems(), rhs.elems()
	opts, parse := c.Options(), ParseFunc[T](nil)
	if c != nil {
		parse = c.parse
	}
	total := len(left) + len(right)
	if total == 0 {
		return fromBuffer[T](nil, opts, parse)
	}
	buf := make([]T, total)
	copy(buf, left)
	copy(buf[len(left):], right)
	opts.log().Debug("chain: concatenated",
		zap.Int("left", len(left)), zap.Int("right", len(right)))

	return fromBuffer(buf, opts, parse)
}

// ConcatValue returns c concatenated with a single-element chain holding v.
// Equivalent to c.Concat(Of(v)); c is not mutated.
func (c *Chain[T]) ConcatValue(v T) *Chain[T] {
	return c.Concat(Of(v))
}
