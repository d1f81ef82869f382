// SPDX-License-Identifier: MIT

// Package chain - population from line-oriented text.
//
// ReadChain reads exactly one line and replaces the chain's contents with the
// converted tokens. The new buffer is sized to the number of stored values
// and Size() becomes that count times Footprint[T]().
//
// Policy summary (see options.go):
//   - ParseSilent/ParseSkip discard the current buffer before reading, even
//     when the line turns out empty or the read fails.
//   - ParseStrict parses first and commits only when every token converted;
//     on failure the previous contents are kept.
package chain

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"
)

// ReadChain reads one line from r and repopulates the chain from it.
// MAIN DESCRIPTION:
//   - Blocking read of one line; no byte past the line terminator is consumed,
//     so successive calls on the same reader see successive lines.
//
// Implementation:
//   - Stage 1: discard the buffer (silent/skip policies).
//   - Stage 2: read up to '\n'; drop a trailing '\r'.
//   - Stage 3: delegate to ParseLine.
//
// Errors:
//   - io.EOF (unwrapped) when the reader is exhausted before any byte.
//   - ErrRead wrapping the reader's error otherwise.
//   - Parse errors under ParseStrict (see ParseLine).
func (c *Chain[T]) ReadChain(r io.Reader) error {
	if c == nil {
		return chainErrorf(ctxRead, 0, ErrNilChain)
	}
	if c.opts.policy != ParseStrict {
		c.Release()
	}
	line, err := readLine(r)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return io.EOF
		}

		return fmt.Errorf("Chain.%s: %w: %w", ctxRead, ErrRead, err)
	}

	return c.ParseLine(line)
}

// ParseLine replaces the chain's contents with the values parsed from line.
// Under ParseStrict an aggregated error is returned when any token fails
// (every entry is a *TokenError matching ErrParse) and the chain is left
// unchanged. Other policies never fail.
// Complexity: O(len(line)).
func (c *Chain[T]) ParseLine(line string) error {
	if c == nil {
		return chainErrorf(ctxPopulate, 0, ErrNilChain)
	}
	results := ParseTokens(Tokenize(line), c.parser())

	return c.populate(results)
}

// populate applies the parse policy to results and commits the new buffer.
func (c *Chain[T]) populate(results []TokenResult[T]) error {
	log := c.opts.log()
	var merr *multierror.Error
	buf := make([]T, 0, len(results))
	for _, res := range results {
		if res.OK() {
			buf = append(buf, res.Value)
			continue
		}
		terr := &TokenError{Index: res.Index, Token: res.Token, Err: res.Err}
		switch c.opts.policy {
		case ParseStrict:
			merr = multierror.Append(merr, terr)
		case ParseSkip:
			log.Debug("chain: dropping token", zap.Error(terr))
		default:
			log.Warn("chain: token stored as zero value", zap.Error(terr))
			buf = append(buf, res.Value)
		}
	}
	if err := merr.ErrorOrNil(); err != nil {
		return fmt.Errorf("Chain.%s: %w", ctxPopulate, err)
	}

	c.Release()
	if len(buf) > 0 {
		c.data = slices.Clip(buf)
		c.size = len(buf) * Footprint[T]()
	}
	log.Debug("chain: populated",
		zap.Int("tokens", len(results)), zap.Int("elements", len(buf)), zap.Int("size", c.size))

	return nil
}

// readLine returns the next line of r without its terminator. It reads one
// byte at a time (through io.ByteReader when available) so nothing beyond
// '\n' is consumed. A final unterminated line is returned with a nil error;
// io.EOF is returned only when no byte was available.
func readLine(r io.Reader) (string, error) {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = &byteReader{r: r}
	}
	var sb strings.Builder
	read := 0
	for {
		b, err := br.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) && read > 0 {
				break
			}

			return "", err
		}
		read++
		if b == '\n' {
			break
		}
		sb.WriteByte(b)
	}

	return strings.TrimSuffix(sb.String(), "\r"), nil
}

// byteReader adapts an io.Reader to io.ByteReader without read-ahead.
type byteReader struct {
	r   io.Reader
	buf [1]byte
}

// ReadByte reads exactly one byte from the wrapped reader.
func (b *byteReader) ReadByte() (byte, error) {
	n, err := io.ReadFull(b.r, b.buf[:])
	if n == 1 {
		return b.buf[0], nil
	}

	return 0, err
}
