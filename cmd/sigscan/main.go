/*
 * sigscan - PowerPC signature scanner command-line tool.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	getopt "github.com/pborman/getopt/v2"

	"github.com/nx-mii/miibridge/sigconfig"
	"github.com/nx-mii/miibridge/sigscan"
	"github.com/nx-mii/miibridge/sigscan/console"
)

func usage(prog string) {
	fmt.Fprintf(os.Stderr,
		"Usage:\n"+
			"  %s run --text <file> --sigs <file.toml> [--base 0xADDR]\n"+
			"  %s repl --text <file> --sigs <file.toml> [--base 0xADDR]\n",
		prog, prog)
}

func main() {
	optText := getopt.StringLong("text", 't', "", ".text section file")
	optSigs := getopt.StringLong("sigs", 's', "", "Signature set TOML file")
	optBase := getopt.StringLong("base", 'b', "0x80000000", "Effective base address of .text")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	args := getopt.Args()
	if len(args) < 1 {
		usage(os.Args[0])
		os.Exit(1)
	}

	if *optText == "" || *optSigs == "" {
		usage(os.Args[0])
		os.Exit(1)
	}

	base, err := parseBase(*optBase)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	text, err := os.ReadFile(*optText)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read %s: %v\n", *optText, err)
		os.Exit(1)
	}

	sigs, err := sigconfig.Load(*optSigs)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	scanner := sigscan.New(sigs, nil)

	switch args[0] {
	case "run":
		for _, m := range scanner.Scan(base, text) {
			fmt.Println(console.FormatMatch(m))
		}
	case "repl":
		console.Run(scanner, sigs, base, text)
	default:
		usage(os.Args[0])
		os.Exit(1)
	}
}

func parseBase(s string) (uintptr, error) {
	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid base address %q", s)
	}
	return uintptr(v), nil
}
