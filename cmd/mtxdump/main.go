package main

import (
	"flag"
	"fmt"
	"os"

	"mtx"
)

var csc = flag.Bool("csc", false, "decode as compressed sparse column instead of row")

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [-csc] <matrix market file>\n", os.Args[0])
		os.Exit(1)
	}
	path := flag.Arg(0)

	if *csc {
		m, err := mtx.DecodeCSC[uint32, float64](path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		m.Dump(os.Stdout)
		return
	}

	m, err := mtx.DecodeCSR[uint32, float64](path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	m.Dump(os.Stdout)
}
