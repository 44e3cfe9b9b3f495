// check is a command-line front end for the analyzer. It reads a program in
// tokenized wire form (one token per line), runs the combined grammar,
// scoping and type analysis, and reports the outcome.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/susji/minic/analyze"
	"github.com/susji/minic/wire"
	"github.com/xyproto/env/v2"
)

func fatal(f string, va ...interface{}) {
	fmt.Fprintf(os.Stderr, "fatal: "+f+"\n", va...)
	os.Exit(1)
}

func warn(f string, va ...interface{}) {
	fmt.Fprintf(os.Stderr, "warning: "+f+"\n", va...)
}

func main() {
	dofile := flag.String("file", "", "read wire tokens from a file instead of stdin")
	dumptoks := flag.Bool("dumptoks", false, "dump the decoded token stream")
	flag.Parse()

	var in io.Reader = os.Stdin
	if *dofile != "" {
		f, err := os.Open(*dofile)
		if err != nil {
			fatal("cannot open %s: %s", *dofile, err)
		}
		defer f.Close()
		in = f
	}

	toks, err := wire.DecodeReader(in)
	if err != nil {
		fatal("decoding tokens: %s", err)
	}
	if *dumptoks {
		fmt.Print(toks)
	}

	a := analyze.New()
	cerr := a.Check(toks)
	if !env.Bool("MINIC_NOWARN") {
		for _, w := range a.Warnings() {
			warn("%s", w)
		}
	}
	if cerr != nil {
		var ae *analyze.Error
		if errors.As(cerr, &ae) {
			fmt.Fprintf(os.Stderr, "%s: %s\n", ae.Phase, ae)
		} else {
			fmt.Fprintf(os.Stderr, "error: %s\n", cerr)
		}
		os.Exit(1)
	}
	if env.Bool("MINIC_DEBUG") {
		for name, t := range a.Table() {
			fmt.Fprintf(os.Stderr, "[] %s: %s\n", name, t)
		}
	}
	fmt.Println("success")
}
