// SPDX-License-Identifier: MIT

package chain

import (
	"fmt"
	"io"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtElem = "%v "
	_fmtEnd  = "\n"
)

// Compile-time assertions for io.WriterTo & fmt.Stringer conformance.
var (
	_ io.WriterTo  = (*Chain[int])(nil)
	_ fmt.Stringer = (*Chain[int])(nil)
)

// String renders every element followed by a single space, then a newline.
// An empty chain renders as "\n".
// Complexity: O(n).
func (c *Chain[T]) String() string {
	var sb strings.Builder
	for _, v := range c.elems() { // count derived from the occupied size
		fmt.Fprintf(&sb, _fmtElem, v)
	}
	sb.WriteString(_fmtEnd)

	return sb.String()
}

// WriteTo writes the rendered form (see String) to w.
func (c *Chain[T]) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, c.String())

	return int64(n), err
}
