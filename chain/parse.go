// SPDX-License-Identifier: MIT

// Package chain - tokenizing and per-token conversion.
//
// A line is split on single spaces, so the token count is always the number
// of spaces plus one. Leading, trailing or repeated spaces yield empty tokens;
// lines are expected to use single-space separation without padding.
package chain

import (
	"encoding"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const tokenSep = " "

// errTrailing reports input left over after a scanned value.
var errTrailing = errors.New("trailing characters after value")

// Tokenize splits line on single spaces. An empty line is one empty token.
func Tokenize(line string) []string {
	return strings.Split(line, tokenSep)
}

// CountTokens returns the number of tokens Tokenize would produce:
// the count of spaces plus one.
func CountTokens(line string) int {
	return strings.Count(line, tokenSep) + 1
}

// DefaultParse converts token into T.
//   - string and []byte take the token verbatim.
//   - bool, signed/unsigned integers and floats use strconv (base 10 for
//     integers) with the bit size of the target type.
//   - types whose pointer implements encoding.TextUnmarshaler use it.
//   - anything else goes through fmt.Fscan, and trailing input is an error.
//
// On failure the zero value of T is returned together with the error.
func DefaultParse[T any](token string) (T, error) {
	var v T
	var err error
	switch p := any(&v).(type) {
	case *string:
		*p = token
	case *[]byte:
		*p = []byte(token)
	case *bool:
		*p, err = strconv.ParseBool(token)
	case *int:
		var n int64
		n, err = strconv.ParseInt(token, 10, strconv.IntSize)
		*p = int(n)
	case *int8:
		var n int64
		n, err = strconv.ParseInt(token, 10, 8)
		*p = int8(n)
	case *int16:
		var n int64
		n, err = strconv.ParseInt(token, 10, 16)
		*p = int16(n)
	case *int32:
		var n int64
		n, err = strconv.ParseInt(token, 10, 32)
		*p = int32(n)
	case *int64:
		*p, err = strconv.ParseInt(token, 10, 64)
	case *uint:
		var n uint64
		n, err = strconv.ParseUint(token, 10, strconv.IntSize)
		*p = uint(n)
	case *uint8:
		var n uint64
		n, err = strconv.ParseUint(token, 10, 8)
		*p = uint8(n)
	case *uint16:
		var n uint64
		n, err = strconv.ParseUint(token, 10, 16)
		*p = uint16(n)
	case *uint32:
		var n uint64
		n, err = strconv.ParseUint(token, 10, 32)
		*p = uint32(n)
	case *uint64:
		*p, err = strconv.ParseUint(token, 10, 64)
	case *float32:
		var f float64
		f, err = strconv.ParseFloat(token, 32)
		*p = float32(f)
	case *float64:
		*p, err = strconv.ParseFloat(token, 64)
	case encoding.TextUnmarshaler:
		err = p.UnmarshalText([]byte(token))
	default:
		err = scanToken(token, p)
	}
	if err != nil {
		var zero T
		return zero, err
	}

	return v, nil
}

// scanToken scans one value from token into dst and rejects leftovers.
func scanToken(token string, dst any) error {
	r := strings.NewReader(token)
	if _, err := fmt.Fscan(r, dst); err != nil {
		return err
	}
	if r.Len() > 0 {
		return fmt.Errorf("%w: %q", errTrailing, token[len(token)-r.Len():])
	}

	return nil
}

// ParseTokens converts every token with p (DefaultParse[T] when p is nil) and
// reports one TokenResult per token, in order. It never stops early.
// Complexity: O(len(tokens)) conversions.
func ParseTokens[T any](tokens []string, p ParseFunc[T]) []TokenResult[T] {
	if p == nil {
		p = DefaultParse[T]
	}
	out := make([]TokenResult[T], len(tokens))
	for i, tok := range tokens {
		v, err := p(tok)
		if err != nil {
			var zero T
			v = zero
		}
		out[i] = TokenResult[T]{Index: i, Token: tok, Value: v, Err: err}
	}

	return out
}
