// SPDX-License-Identifier: MIT
// Package chain_test contains test helpers for lvlchain/chain.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities for Chain.
//   - Keep magic numbers and literals out of test bodies.

package chain_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/lvlchain/chain"
	"github.com/stretchr/testify/require"
)

// Common input lines used across chain tests.
const (
	LineInts     = "10 30 -1 2"
	LineInts2    = "5 6 7"
	LineFooBar   = "foo bar"
	LineBaz      = "baz"
	LineMixed    = "1 x 3"
	LineEmpty    = ""
	RenderedInts = "10 30 -1 2 \n"
	RenderedNone = "\n"
)

// mustParse builds a chain of T from line with the given options.
func mustParse[T any](t testing.TB, line string, opts ...chain.Option) *chain.Chain[T] {
	t.Helper()
	c := chain.New[T](opts...)
	require.NoError(t, c.ParseLine(line))

	return c
}

// requireValues compares the chain's elements against want with a readable diff.
func requireValues[T any](t testing.TB, want []T, c *chain.Chain[T]) {
	t.Helper()
	if diff := cmp.Diff(want, c.Values()); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
}

// requireConsistent asserts the size/count bookkeeping invariants.
func requireConsistent[T any](t testing.TB, c *chain.Chain[T]) {
	t.Helper()
	fp := chain.Footprint[T]()
	require.Zero(t, c.Size()%fp, "size must be a whole number of elements")
	require.Equal(t, c.Size()/fp, c.Len())
	require.Equal(t, c.Len(), len(c.Values()))
	require.Equal(t, c.Size() == 0, c.IsEmpty())
}

// lines joins input lines with '\n' terminators, as typed at a terminal.
func lines(ls ...string) *strings.Reader {
	return strings.NewReader(strings.Join(ls, "\n") + "\n")
}
