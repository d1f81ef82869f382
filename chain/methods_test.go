package chain_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvlchain/chain"
	"github.com/stretchr/testify/require"
)

// TestAtSetOutOfRange ensures indexers return ErrOutOfRange on invalid access.
func TestAtSetOutOfRange(t *testing.T) {
	c := mustParse[int](t, "1 2 3")

	_, err := c.At(-1) // negative index
	require.ErrorIs(t, err, chain.ErrOutOfRange)

	_, err = c.At(3) // one past the end
	require.ErrorIs(t, err, chain.ErrOutOfRange)

	_, err = c.At(10) // element-count bound refuses 10
	require.ErrorIs(t, err, chain.ErrOutOfRange)
	require.NotErrorIs(t, err, chain.ErrBeyondStorage)
	require.EqualError(t, err, "Chain.At(10): chain: index out of range")

	err = c.Set(3, 9)
	require.ErrorIs(t, err, chain.ErrOutOfRange)

	_, err = c.Ref(-2)
	require.ErrorIs(t, err, chain.ErrOutOfRange)

	_, err = chain.New[int]().At(0) // empty chain has no valid index
	require.ErrorIs(t, err, chain.ErrOutOfRange)
}

// TestAtSetRef validates Set followed by At and mutation through Ref.
func TestAtSetRef(t *testing.T) {
	c := mustParse[int](t, LineInts)

	v, err := c.At(2)
	require.NoError(t, err)
	require.Equal(t, -1, v) // scenario: chain[2] == -1

	require.NoError(t, c.Set(1, 31))
	p, err := c.Ref(3)
	require.NoError(t, err)
	*p = 3

	require.Equal(t, "10 31 -1 3 \n", c.String())
}

// TestLegacyBounds documents the raw occupied-size check: with 3 ints the
// legacy bound is 3×Footprint[int](), so index 10 passes the check but is not
// backed by storage, while an index at the raw bound is refused outright.
func TestLegacyBounds(t *testing.T) {
	c := mustParse[int](t, "1 2 3", chain.WithLegacyBounds())
	rawBound := c.Size()
	require.Equal(t, 3*chain.Footprint[int](), rawBound)

	v, err := c.At(2) // in range under both rules
	require.NoError(t, err)
	require.Equal(t, 3, v)

	_, err = c.At(10) // passes raw check, beyond storage
	require.ErrorIs(t, err, chain.ErrBeyondStorage)
	require.ErrorIs(t, err, chain.ErrOutOfRange) // still an out-of-range condition

	_, err = c.At(rawBound) // fails the raw check itself
	require.ErrorIs(t, err, chain.ErrOutOfRange)
	require.NotErrorIs(t, err, chain.ErrBeyondStorage)

	err = c.Set(5, 0)
	require.ErrorIs(t, err, chain.ErrBeyondStorage)
	require.Equal(t, "1 2 3 \n", c.String()) // nothing written
}

// TestLegacyBoundsSingleByteElements shows the two rules coincide when the
// footprint is one byte.
func TestLegacyBoundsSingleByteElements(t *testing.T) {
	c := mustParse[uint8](t, "7 8 9", chain.WithLegacyBounds())
	require.Equal(t, c.Len(), c.Size())

	_, err := c.At(3)
	require.ErrorIs(t, err, chain.ErrOutOfRange)
	require.NotErrorIs(t, err, chain.ErrBeyondStorage)
}

// TestNilReceiverIndexing ensures nil chains report ErrNilChain.
func TestNilReceiverIndexing(t *testing.T) {
	var c *chain.Chain[int]

	_, err := c.At(0)
	require.ErrorIs(t, err, chain.ErrNilChain)
	require.ErrorIs(t, c.Set(0, 1), chain.ErrNilChain)
}

// TestConcatOrderAndSize checks order, size additivity and operand immutability.
func TestConcatOrderAndSize(t *testing.T) {
	a := mustParse[string](t, LineFooBar)
	b := mustParse[string](t, LineBaz)

	ab := a.Concat(b)

	require.Equal(t, "foo bar baz \n", ab.String())
	require.Equal(t, 3, ab.Len())
	require.Equal(t, a.Size()+b.Size(), ab.Size())
	require.Equal(t, "foo bar \n", a.String()) // operands untouched
	require.Equal(t, "baz \n", b.String())
	requireConsistent(t, ab)

	require.NoError(t, ab.Set(0, "zzz")) // result aliases neither operand
	require.Equal(t, "foo bar \n", a.String())
}

// TestConcatEmptyOperands covers empty and nil operands.
func TestConcatEmptyOperands(t *testing.T) {
	a := mustParse[int](t, LineInts)
	empty := chain.New[int]()

	require.Equal(t, RenderedInts, a.Concat(empty).String())
	require.Equal(t, RenderedInts, empty.Concat(a).String())
	require.Equal(t, RenderedInts, a.Concat(nil).String())
	require.True(t, empty.Concat(empty).IsEmpty())

	var nilChain *chain.Chain[int]
	require.Equal(t, RenderedInts, nilChain.Concat(a).String())
}

// TestConcatValue verifies appending a single value produces a new chain.
func TestConcatValue(t *testing.T) {
	d := mustParse[string](t, "foo bar baz")

	e := d.ConcatValue("hi_there")

	require.Equal(t, "foo bar baz hi_there \n", e.String())
	require.Equal(t, d.Size()+chain.Footprint[string](), e.Size())
	require.Equal(t, "foo bar baz \n", d.String())
	require.Equal(t, "7 \n", chain.New[int]().ConcatValue(7).String())
}

// TestConcatInheritsLeftOptions checks the result carries the left operand's options.
func TestConcatInheritsLeftOptions(t *testing.T) {
	a := mustParse[int](t, "1", chain.WithLegacyBounds())
	b := mustParse[int](t, "2")

	ab := a.Concat(b)
	require.Equal(t, chain.BoundsLegacy, ab.Options().Bounds())

	_, err := ab.At(5)
	require.True(t, errors.Is(err, chain.ErrBeyondStorage))
}
