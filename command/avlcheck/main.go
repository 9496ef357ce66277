// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "integer", HasArg: getoptions.NO_ARGUMENT, Short: 'i'},
		{Long: "print", HasArg: getoptions.NO_ARGUMENT, Short: 'p'},
		{Long: "depth", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'd'},
		{Long: "json", HasArg: getoptions.NO_ARGUMENT, Short: 'j'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		fmt.Printf("%s: version: %s\n", program, version)
		return
	}

	if len(options["help"]) > 0 {
		usage(program)
		return
	}

	verbose := len(options["verbose"]) > 0

	depth := 0
	if n := len(options["depth"]); n > 1 {
		exitwithstatus.Message("%s: only one depth option is allowed, %d were detected", program, n)
	} else if 1 == n {
		depth, err = strconv.Atoi(options["depth"][0])
		if nil != err || depth < 0 {
			exitwithstatus.Message("%s: invalid depth: %q", program, options["depth"][0])
		}
	}

	// no file arguments means read from stdin
	if 0 == len(arguments) {
		arguments = []string{"-"}
	}

	keys := make([]string, 0, 1024)
	for _, name := range arguments {
		if verbose {
			fmt.Fprintf(os.Stderr, "reading: %s\n", name)
		}
		k, err := readKeysFrom(name)
		if nil != err {
			exitwithstatus.Message("%s: file: %q  error: %s", program, name, err)
		}
		keys = append(keys, k...)
	}

	var r *report
	if len(options["integer"]) > 0 {
		integers, err := parseIntegers(keys)
		if nil != err {
			exitwithstatus.Message("%s: %s", program, err)
		}
		r = measure(integers, len(keys))
	} else {
		r = measure(keys, len(keys))
	}

	if len(options["json"]) > 0 {
		if err := printJson(os.Stdout, r); nil != err {
			exitwithstatus.Message("%s: json error: %s", program, err)
		}
	} else {
		r.write(os.Stdout)
	}

	if len(options["print"]) > 0 {
		r.draw(os.Stdout, depth)
	}
}

func usage(program string) {
	fmt.Printf("usage: %s [--help] [--verbose] [--integer] [--print [--depth=N]] [--json] [FILE...]\n", program)
	fmt.Printf("\n")
	fmt.Printf("read keys one per line from each FILE (or stdin for none or \"-\")\n")
	fmt.Printf("and compare the shape of an AVL tree with an unbalanced binary\n")
	fmt.Printf("search tree built from the same insert sequence\n")
	fmt.Printf("blank lines and lines starting with \"#\" are ignored\n")
}
