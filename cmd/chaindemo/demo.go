package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/lvlchain/chain"
	"go.uber.org/zap"
)

// demo runs the walkthroughs against one input and one output stream.
// The input is buffered once so successive reads see successive lines.
type demo struct {
	in   *bufio.Reader
	out  io.Writer
	log  *zap.Logger
	opts []chain.Option
}

func newDemo(in io.Reader, out io.Writer, log *zap.Logger, opts ...chain.Option) *demo {
	if log == nil {
		log = zap.NewNop()
	}

	return &demo{in: bufio.NewReader(in), out: out, log: log, opts: opts}
}

// read fills c from the next input line. An exhausted input leaves c empty
// and is not an error, matching an empty line at a terminal.
func read[T any](d *demo, c *chain.Chain[T]) error {
	err := c.ReadChain(d.in)
	if errors.Is(err, io.EOF) {
		d.log.Debug("input exhausted; chain left empty")
		return nil
	}

	return err
}

// part1 walks through construction, copy and move with chains of int.
func (d *demo) part1() error {
	a, b := chain.New[int](d.opts...), chain.New[int](d.opts...)
	fmt.Fprintln(d.out, a.Size(), b.Size())

	c7 := chain.Of(7, d.opts...)
	fmt.Fprint(d.out, "d contains ", c7, "\n")
	fmt.Fprintln(d.out, c7.Size())

	if err := read(d, a); err != nil {
		return err
	}
	fmt.Fprint(d.out, "a contains: ", a)

	if err := read(d, b); err != nil {
		return err
	}
	fmt.Fprint(d.out, "b contains: ", b)

	c := a.Clone()
	fmt.Fprint(d.out, "Copy constructor called. c was created and should match a. c contains: ", c, "\n")
	fmt.Fprint(d.out, " And a should be unchanged. a contains: ", a, "\n")

	a.Assign(b)
	fmt.Fprint(d.out, "Copy Assignment operator called. a should match b now. a contains: ", a, "\n")

	e := c.Move()
	fmt.Fprint(d.out, "Move constructor for e called. c should have been destroyed. c contains: ", c, "\n")
	fmt.Fprint(d.out, "e was created. e should hold what c used to hold. e contains: ", e, "\n")

	a.MoveAssign(e)
	fmt.Fprint(d.out, "Move assignment operator called. e should have been destroyed. e contains: ", e, "\n")
	fmt.Fprint(d.out, "a should hold what e used to hold. a contains: ", a, "\n")

	return nil
}

// part2 walks through concatenation and indexing with chains of string.
// Indexing a[2], b[1] and b[0] requires at least three and two elements;
// otherwise the returned error matches chain.ErrOutOfRange.
func (d *demo) part2() error {
	a, b := chain.New[string](d.opts...), chain.New[string](d.opts...)

	if err := read(d, a); err != nil {
		return err
	}
	fmt.Fprint(d.out, "a contains ", a)
	fmt.Fprintln(d.out, "a is size", a.Size())

	if err := read(d, b); err != nil {
		return err
	}
	fmt.Fprint(d.out, "b contains ", b)
	fmt.Fprintln(d.out, "b is size", b.Size())

	fmt.Fprint(d.out, a.Concat(b), "\n")

	dd := a.Concat(b)
	fmt.Fprint(d.out, "d created. d contains: ", dd, "\n")

	fmt.Fprint(d.out, dd.ConcatValue("hi_there"), "\n")

	third, err := a.At(2)
	if err != nil {
		return err
	}
	fmt.Fprintln(d.out, third)

	if err := b.Set(1, "b_string"); err != nil {
		return err
	}
	fmt.Fprint(d.out, b)

	if err := b.Set(0, "a_string"); err != nil {
		return err
	}
	fmt.Fprint(d.out, b)

	return nil
}
