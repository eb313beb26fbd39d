/*
 * sigconfig - Signature-set loader test cases.
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

package sigconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nx-mii/miibridge/sigscan"
)

func writeTemp(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sigs.toml")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestLoadValidDocument(t *testing.T) {
	path := writeTemp(t, `
[[signature]]
name = "FFLiMiiDataCore_GetLinearGaugeValue"
resolve = "branch_target"
branch_word_index = 3
words = [
  { value = 0x7C0802A6, mask = 0xFFFFFFFF },
  { value = 0x9421FFF0, mask = 0xFFFF0000 },
  { value = 0x3C600000, mask = 0xFFFF0000 },
  { value = 0x48000001, mask = 0xFC000003 },
]

[[signature]]
name = "simple_direct"
resolve = "direct"
words = [ { value = 0x60000000, mask = 0xFFFFFFFF } ]
`)

	sigs, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(sigs) != 2 {
		t.Fatalf("expected 2 signatures, got %d", len(sigs))
	}
	if sigs[0].Name != "FFLiMiiDataCore_GetLinearGaugeValue" || sigs[0].ResolveMode != sigscan.BranchTarget || sigs[0].BranchWordIndex != 3 {
		t.Errorf("signature 0 decoded wrong: %+v", sigs[0])
	}
	if len(sigs[0].Words) != 4 || sigs[0].Words[0].Value != 0x7C0802A6 {
		t.Errorf("signature 0 words decoded wrong: %+v", sigs[0].Words)
	}
	if sigs[1].ResolveMode != sigscan.Direct {
		t.Errorf("signature 1 should parse to Direct, got %v", sigs[1].ResolveMode)
	}
}

func TestLoadRejectsUnknownResolveMode(t *testing.T) {
	path := writeTemp(t, `
[[signature]]
name = "bad"
resolve = "sideways"
words = [ { value = 1, mask = 1 } ]
`)
	if _, err := Load(path); err == nil {
		t.Error("expected error for unknown resolve mode")
	}
}

func TestLoadRejectsBranchWordIndexOutOfRange(t *testing.T) {
	path := writeTemp(t, `
[[signature]]
name = "bad"
resolve = "branch_target"
branch_word_index = 5
words = [ { value = 1, mask = 1 } ]
`)
	if _, err := Load(path); err == nil {
		t.Error("expected error for out-of-range branch_word_index")
	}
}

func TestLoadRejectsEmptyWords(t *testing.T) {
	path := writeTemp(t, `
[[signature]]
name = "bad"
resolve = "direct"
words = []
`)
	if _, err := Load(path); err == nil {
		t.Error("expected error for signature with no words")
	}
}

func TestLoadRejectsTooManyWords(t *testing.T) {
	body := "[[signature]]\nname = \"toolong\"\nresolve = \"direct\"\nwords = [\n"
	for i := 0; i < 17; i++ {
		body += "  { value = 0, mask = 0 },\n"
	}
	body += "]\n"
	path := writeTemp(t, body)
	if _, err := Load(path); err == nil {
		t.Error("expected error for signature exceeding the word limit")
	}
}
