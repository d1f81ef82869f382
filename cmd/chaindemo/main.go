// SPDX-License-Identifier: MIT

// Package main implements chaindemo, a console harness for lvlchain/chain.
// It reads chains from standard input one line at a time and prints them,
// walking through construction, copy, move, concatenation and indexing.
//
// An out-of-range index is fatal: the harness prints
// "Error: Index is out of range." to standard output and exits with status 1.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/lvlchain/chain"
)

const (
	msgOutOfRange  = "Error: Index is out of range."
	exitOutOfRange = 1
	exitFailure    = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes one invocation and returns the process exit status.
// The out-of-range message goes to out; other failures go to errOut.
func run(args []string, in io.Reader, out, errOut io.Writer) int {
	a := newApp()
	defer a.sync()

	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	if err := cmd.Execute(); err != nil {
		if errors.Is(err, chain.ErrOutOfRange) {
			fmt.Fprintln(out, msgOutOfRange)

			return exitOutOfRange
		}
		fmt.Fprintln(errOut, "Error:", err)

		return exitFailure
	}

	return 0
}
