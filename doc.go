// Package lvlchain is a small generic container library built around one type:
// chain.Chain[T], an owning sequence that keeps its elements in a single
// exactly-sized contiguous buffer.
//
// What is in the box?
//
//   - chain/          — Chain[T]: construct, clone, move, assign, concatenate,
//     bounds-checked indexing, population from a line of text, rendering.
//   - cmd/chaindemo/  — a console walkthrough that reads chains from stdin.
//
// A Chain reports its size as occupied bytes (element count × footprint),
// and derives element counts from that figure. Indexing returns errors
// instead of aborting; population reports every token explicitly and lets
// the caller choose whether bad tokens become zero values, are dropped, or
// fail the line.
//
// Quick example:
//
//	c := chain.New[int]()
//	_ = c.ParseLine("10 30 -1 2")
//	fmt.Print(c)          // 10 30 -1 2
//	v, _ := c.At(2)       // -1
//	fmt.Println(c.Size()) // 4 × chain.Footprint[int]()
//
//	go get github.com/katalvlaran/lvlchain/chain
package lvlchain
