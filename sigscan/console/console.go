/*
 * sigscan - Interactive console for running a signature scan.
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

// Package console is a small interactive front end for package sigscan,
// built the way the command/reader package wraps peterh/liner: a
// Prompt/AppendHistory loop dispatching through a verb table, with tab
// completion over the verb names.
package console

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"github.com/nx-mii/miibridge/sigscan"
	"github.com/nx-mii/miibridge/util/hex"
)

// verb is one console command: a handler taking the remaining words of
// the input line.
type verb struct {
	help string
	run  func(c *console, args []string)
}

type console struct {
	scanner *sigscan.Scanner
	sigs    []sigscan.Signature
	base    uintptr
	text    []byte
	verbs   map[string]verb
	quit    bool
}

// Run starts the interactive console over scanner/sigs/base/text and
// blocks until the user quits.
func Run(scanner *sigscan.Scanner, sigs []sigscan.Signature, base uintptr, text []byte) {
	c := &console{scanner: scanner, sigs: sigs, base: base, text: text}
	c.verbs = map[string]verb{
		"scan": {"scan - run the signature scan and print every match", (*console).cmdScan},
		"list": {"list - print the names of every loaded signature", (*console).cmdList},
		"show": {"show <name> - print the words of one loaded signature", (*console).cmdShow},
		"quit": {"quit - exit the console", (*console).cmdQuit},
		"help": {"help - print this message", (*console).cmdHelp},
	}

	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(func(partial string) []string {
		var out []string
		for name := range c.verbs {
			if strings.HasPrefix(name, partial) {
				out = append(out, name)
			}
		}
		return out
	})

	for !c.quit {
		input, err := line.Prompt("sigscan> ")
		if err == nil {
			line.AppendHistory(input)
			c.dispatch(input)
			continue
		}

		if errors.Is(err, liner.ErrPromptAborted) {
			return
		}
		slog.Error("error reading line: " + err.Error())
		return
	}
}

func (c *console) dispatch(input string) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return
	}
	v, ok := c.verbs[fields[0]]
	if !ok {
		fmt.Printf("unknown command %q, try \"help\"\n", fields[0])
		return
	}
	v.run(c, fields[1:])
}

func (c *console) cmdScan(_ []string) {
	matches := c.scanner.Scan(c.base, c.text)
	if len(matches) == 0 {
		fmt.Println("no matches")
		return
	}
	for _, m := range matches {
		fmt.Println(FormatMatch(m))
	}
}

func (c *console) cmdList(_ []string) {
	for _, s := range c.sigs {
		fmt.Printf("%s (%d words, %s)\n", s.Name, len(s.Words), resolveModeName(s.ResolveMode))
	}
}

func (c *console) cmdShow(args []string) {
	if len(args) != 1 {
		fmt.Println("usage: show <name>")
		return
	}
	for _, s := range c.sigs {
		if s.Name != args[0] {
			continue
		}
		fmt.Printf("%s: %s, %d words\n", s.Name, resolveModeName(s.ResolveMode), len(s.Words))
		for i, w := range s.Words {
			fmt.Printf("  [%d] value=%#08x mask=%#08x\n", i, w.Value, w.Mask)
		}
		return
	}
	fmt.Printf("no such signature %q\n", args[0])
}

func (c *console) cmdQuit(_ []string) {
	c.quit = true
}

func (c *console) cmdHelp(_ []string) {
	for _, v := range c.verbs {
		fmt.Println(v.help)
	}
}

func resolveModeName(m sigscan.ResolveMode) string {
	switch m {
	case sigscan.Direct:
		return "direct"
	case sigscan.BranchTarget:
		return "branch_target"
	case sigscan.FunctionStart:
		return "function_start"
	default:
		return "unknown(" + strconv.Itoa(int(m)) + ")"
	}
}

// FormatMatch renders one sigscan.Match as a single printable line.
func FormatMatch(m sigscan.Match) string {
	var eff, phys strings.Builder
	hex.FormatUintptr(&eff, m.EffectiveAddress)
	hex.FormatUintptr(&phys, m.PhysicalAddress)
	name := "?"
	if m.Signature != nil {
		name = m.Signature.Name
	}
	return fmt.Sprintf("%-40s eff=%s phys=%s", name, eff.String(), phys.String())
}
