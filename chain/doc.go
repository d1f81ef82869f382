// Package chain provides Chain[T], a generic owning sequence container that
// keeps its elements in one exactly-sized contiguous buffer.
//
// What & Why:
//
//	A Chain reports its size as the occupied storage in bytes
//	(element count × Footprint[T]()), not as the element count. Every
//	count it needs internally (rendering, concatenation, population) is
//	derived by dividing that size by the footprint. Populating and
//	concatenating operations reallocate to exactly the needed size; there
//	is no amortized growth.
//
// Value semantics:
//
//	Clone      – deep copy into a fresh buffer
//	Move       – O(1) ownership transfer into a new chain, source emptied
//	Assign     – copy-assignment, reusing the buffer when counts match
//	MoveAssign – swap, release the old destination buffer, source emptied
//	Release    – drop the buffer (idempotent)
//
// Indexed access (At, Ref, Set) returns ErrOutOfRange instead of aborting.
// WithLegacyBounds selects the older, looser check against the byte
// size; indices it admits beyond the stored elements yield ErrBeyondStorage.
//
// Text population (ReadChain, ParseLine) splits one line on single spaces
// and converts each token with a ParseFunc. WithParsePolicy chooses whether
// unparsable tokens become zero values (default), are dropped, or fail the
// whole line.
//
// Rendering writes "e0 e1 ... eN-1 \n"; an empty chain renders as "\n".
//
// Complexity:
//
//	Size/Len/At/Set/Move/MoveAssign are O(1); Clone/Assign/Concat/String are O(n).
package chain
