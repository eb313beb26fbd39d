/*
 * sigconfig - TOML loader for signature-scanner definitions.
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

// Package sigconfig loads signature-scanner definitions from a TOML file,
// so signature sets can be authored and versioned as data instead of Go
// source. See Load for the expected schema.
package sigconfig

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/nx-mii/miibridge/sigscan"
)

// maxWords mirrors the fixed-size word array the original signature
// format was built around; it bounds signature length but costs nothing
// in this slice-based port.
const maxWords = 16

// word is the TOML shape of one sigscan.Word.
type word struct {
	Value uint32 `toml:"value"`
	Mask  uint32 `toml:"mask"`
}

// signature is the TOML shape of one [[signature]] table.
type signature struct {
	Name            string `toml:"name"`
	Resolve         string `toml:"resolve"`
	BranchWordIndex int    `toml:"branch_word_index"`
	Words           []word `toml:"words"`
}

// file is the top-level document shape: a list of signature tables.
type file struct {
	Signature []signature `toml:"signature"`
}

// Load reads and validates a signature-set TOML file at path, returning
// the decoded signatures ready for sigscan.New.
func Load(path string) ([]sigscan.Signature, error) {
	var doc file
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		return nil, fmt.Errorf("sigconfig: decode %s: %w", path, err)
	}

	out := make([]sigscan.Signature, 0, len(doc.Signature))
	for _, s := range doc.Signature {
		sig, err := s.toSignature()
		if err != nil {
			return nil, fmt.Errorf("sigconfig: signature %q: %w", s.Name, err)
		}
		out = append(out, sig)
	}
	return out, nil
}

func (s signature) toSignature() (sigscan.Signature, error) {
	if s.Name == "" {
		return sigscan.Signature{}, fmt.Errorf("missing name")
	}
	if len(s.Words) == 0 {
		return sigscan.Signature{}, fmt.Errorf("must have at least one word")
	}
	if len(s.Words) > maxWords {
		return sigscan.Signature{}, fmt.Errorf("has %d words, exceeds limit of %d", len(s.Words), maxWords)
	}

	mode, err := parseResolveMode(s.Resolve)
	if err != nil {
		return sigscan.Signature{}, err
	}
	if mode == sigscan.BranchTarget && (s.BranchWordIndex < 0 || s.BranchWordIndex >= len(s.Words)) {
		return sigscan.Signature{}, fmt.Errorf("branch_word_index %d out of range for %d words", s.BranchWordIndex, len(s.Words))
	}

	words := make([]sigscan.Word, len(s.Words))
	for i, w := range s.Words {
		words[i] = sigscan.Word{Value: w.Value, Mask: w.Mask}
	}

	return sigscan.Signature{
		Name:            s.Name,
		Words:           words,
		ResolveMode:     mode,
		BranchWordIndex: s.BranchWordIndex,
	}, nil
}

func parseResolveMode(s string) (sigscan.ResolveMode, error) {
	switch s {
	case "direct", "":
		return sigscan.Direct, nil
	case "branch_target":
		return sigscan.BranchTarget, nil
	case "function_start":
		return sigscan.FunctionStart, nil
	default:
		return 0, fmt.Errorf("unknown resolve mode %q", s)
	}
}
