package chain_test

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlchain/chain"
)

// ExampleChain demonstrates population, copy, move and size reporting.
func ExampleChain() {
	// 1) Populate from one line of input.
	a := chain.New[int]()
	_ = a.ReadChain(strings.NewReader("10 30 -1 2\n"))
	fmt.Printf("a: %q\n", a.String())

	// 2) Size is reported in bytes; Len in elements.
	fmt.Println(a.Size() == 4*chain.Footprint[int](), a.Len())

	// 3) Copy, then move the copy away.
	c := a.Clone()
	e := c.Move()
	fmt.Printf("c: %q e: %q\n", c.String(), e.String())

	// Output:
	// a: "10 30 -1 2 \n"
	// true 4
	// c: "\n" e: "10 30 -1 2 \n"
}

// ExampleChain_Concat concatenates string chains and appends a value.
func ExampleChain_Concat() {
	a, b := chain.New[string](), chain.New[string]()
	_ = a.ParseLine("foo bar")
	_ = b.ParseLine("baz")

	d := a.Concat(b)
	fmt.Printf("%q %d\n", d.String(), d.Len())
	fmt.Printf("%q\n", d.ConcatValue("hi_there").String())

	// Output:
	// "foo bar baz \n" 3
	// "foo bar baz hi_there \n"
}

// ExampleChain_At shows bounds-checked access returning an error.
func ExampleChain_At() {
	c := chain.New[int]()
	_ = c.ParseLine("1 2 3")

	v, _ := c.At(2)
	fmt.Println(v)

	_, err := c.At(10)
	fmt.Println(errors.Is(err, chain.ErrOutOfRange))

	// Output:
	// 3
	// true
}

// ExampleWithParsePolicy compares the three parse policies on a bad token.
func ExampleWithParsePolicy() {
	for _, p := range []chain.ParsePolicy{chain.ParseSilent, chain.ParseSkip, chain.ParseStrict} {
		c := chain.New[int](chain.WithParsePolicy(p))
		err := c.ParseLine("1 x 3")
		fmt.Println(p, c.Values(), errors.Is(err, chain.ErrParse))
	}

	// Output:
	// silent [1 0 3] false
	// skip [1 3] false
	// strict [] true
}
