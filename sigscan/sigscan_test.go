/*
 * sigscan - Signature scanner test cases.
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

package sigscan

import (
	"encoding/binary"
	"testing"
)

func putBE32(b []byte, off int, v uint32) {
	binary.BigEndian.PutUint32(b[off:], v)
}

// bl encodes a PowerPC BL instruction at address pc branching to target.
func bl(pc, target uint32) uint32 {
	offset := int32(target) - int32(pc)
	li := uint32(offset>>2) & 0x00FFFFFF
	return (18 << 26) | (li << 2) | 0x1 // opcode=18, AA=0, LK=1
}

func TestDecodeBLTargetForwardAndBackward(t *testing.T) {
	text := make([]byte, 0x100)
	const base = uintptr(0x80004000)

	putBE32(text, 0x10, bl(0x80004010, 0x80004040)) // forward branch
	putBE32(text, 0x50, bl(0x80004050, 0x80004000)) // backward branch

	if target, ok := decodeBLTarget(text, base, base+0x10); !ok || target != base+0x40 {
		t.Errorf("forward BL: got (%#x,%v), want (%#x,true)", target, ok, base+0x40)
	}
	if target, ok := decodeBLTarget(text, base, base+0x50); !ok || target != base {
		t.Errorf("backward BL: got (%#x,%v), want (%#x,true)", target, ok, base)
	}
}

func TestDecodeBLTargetRejectsNonBL(t *testing.T) {
	text := make([]byte, 0x10)
	putBE32(text, 0, 0x60000000) // nop (ori r0,r0,0)
	if _, ok := decodeBLTarget(text, 0x1000, 0x1000); ok {
		t.Error("expected decode to reject a non-branch instruction")
	}

	// A plain B (LK=0, same opcode) must also be rejected.
	putBE32(text, 0, bl(0, 0x40)&^0x1)
	if _, ok := decodeBLTarget(text, 0x1000, 0x1000); ok {
		t.Error("expected decode to reject a B with LK clear")
	}
}

func TestWalkBackToPrologueMfsprThenStwu(t *testing.T) {
	text := make([]byte, 0x100)
	const base = uintptr(0x80002000)
	putBE32(text, 0x20, prologueMfsprLR)
	putBE32(text, 0x24, 0x9421FFC0) // stwu r1,-64(r1)
	putBE32(text, 0x28, 0x7C8802A6) // some unrelated instruction further in
	putBE32(text, 0x2C, 0x38000000)

	start, ok := walkBackToPrologue(text, base, base+uintptr(len(text)), base+0x2C)
	if !ok || start != base+0x20 {
		t.Errorf("mfspr/stwu prologue: got (%#x,%v), want (%#x,true)", start, ok, base+0x20)
	}
}

func TestWalkBackToPrologueStwuThenStmwThenMfspr(t *testing.T) {
	text := make([]byte, 0x100)
	const base = uintptr(0x80002000)
	putBE32(text, 0x30, 0x9421FFE0) // stwu r1,-32(r1)
	putBE32(text, 0x34, 0xBD81000C) // stmw r12,12(r1)
	putBE32(text, 0x38, prologueMfsprLR)
	putBE32(text, 0x3C, 0x90010024)

	start, ok := walkBackToPrologue(text, base, base+uintptr(len(text)), base+0x3C)
	if !ok || start != base+0x30 {
		t.Errorf("stwu/stmw/mfspr prologue: got (%#x,%v), want (%#x,true)", start, ok, base+0x30)
	}
}

func TestWalkBackToPrologueFailsBeyondWindow(t *testing.T) {
	text := make([]byte, 0x200)
	const base = uintptr(0x80002000)
	putBE32(text, 0x00, prologueMfsprLR)
	putBE32(text, 0x04, 0x9421FFC0)

	// 40 instructions past the prologue: outside the 32-instruction walk.
	if _, ok := walkBackToPrologue(text, base, base+uintptr(len(text)), base+0xA0); ok {
		t.Error("expected walk-back to fail when the prologue is outside the window")
	}
}

func TestScanDirectResolveMatchesLiteralWords(t *testing.T) {
	text := make([]byte, 0x40)
	const base = uintptr(0x80010000)
	putBE32(text, 0x10, 0x7C0802A6)
	putBE32(text, 0x14, 0x9421FFC0)

	sig := Signature{
		Name: "prologue_literal",
		Words: []Word{
			{Value: 0x7C0802A6, Mask: 0xFFFFFFFF},
			{Value: 0x94210000, Mask: 0xFFFF0000},
		},
		ResolveMode: Direct,
	}
	s := New([]Signature{sig}, nil)
	matches := s.Scan(base, text)
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if matches[0].EffectiveAddress != base+0x10 {
		t.Errorf("got address %#x, want %#x", matches[0].EffectiveAddress, base+0x10)
	}
	if matches[0].PhysicalAddress != matches[0].EffectiveAddress {
		t.Errorf("identity toPhys expected, got %#x", matches[0].PhysicalAddress)
	}
}

// TestScanBranchTargetResolvesThroughBL covers a signature whose final
// word is a BL (compared on opcode and LK only), resolved to its branch
// target.
func TestScanBranchTargetResolvesThroughBL(t *testing.T) {
	text := make([]byte, 0x80)
	const base = uintptr(0x80020000)
	// A recognizable setup instruction followed by a BL to a known callee.
	putBE32(text, 0x20, 0x3C60DEAD) // lis r3, 0xDEAD (immediate is a wildcard)
	putBE32(text, 0x24, bl(uint32(base)+0x24, uint32(base)+0x60))

	sig := Signature{
		Name: "calls_known_callee",
		Words: []Word{
			{Value: 0x3C600000, Mask: 0xFFFF0000}, // lis r3, imm (any imm)
			{Value: 18 << 26 | 0x1, Mask: (0x3F << 26) | 0x1}, // any BL
		},
		ResolveMode:     BranchTarget,
		BranchWordIndex: 1,
	}
	s := New([]Signature{sig}, nil)
	matches := s.Scan(base, text)
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if matches[0].EffectiveAddress != base+0x60 {
		t.Errorf("got branch target %#x, want %#x", matches[0].EffectiveAddress, base+0x60)
	}
}

// TestScanFunctionStartWalksBackToPrologue covers a signature that
// matches somewhere inside a function body and must resolve to the
// function's entry point.
func TestScanFunctionStartWalksBackToPrologue(t *testing.T) {
	text := make([]byte, 0x100)
	const base = uintptr(0x80030000)
	putBE32(text, 0x10, prologueMfsprLR)
	putBE32(text, 0x14, 0x9421FFC0)
	// A distinctive body instruction 6 words into the function.
	putBE32(text, 0x28, 0x3BE00005) // li r31, 5

	sig := Signature{
		Name:        "body_marker",
		Words:       []Word{{Value: 0x3BE00005, Mask: 0xFFFFFFFF}},
		ResolveMode: FunctionStart,
	}
	s := New([]Signature{sig}, nil)
	matches := s.Scan(base, text)
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if matches[0].EffectiveAddress != base+0x10 {
		t.Errorf("got entry %#x, want prologue at %#x", matches[0].EffectiveAddress, base+0x10)
	}
}

func TestScanRespectsToPhysicalTranslation(t *testing.T) {
	text := make([]byte, 0x10)
	const base = uintptr(0x80040000)
	putBE32(text, 0, 0x60000000)

	sig := Signature{Name: "nop", Words: []Word{{Value: 0x60000000, Mask: 0xFFFFFFFF}}, ResolveMode: Direct}
	s := New([]Signature{sig}, func(eff uintptr) uintptr { return eff - 0x80000000 })
	matches := s.Scan(base, text)
	if len(matches) != 1 || matches[0].PhysicalAddress != 0x40000 {
		t.Fatalf("expected translated physical address 0x40000, got %+v", matches)
	}
}

func TestScanEmptySignatureListReturnsNoMatches(t *testing.T) {
	s := New(nil, nil)
	if matches := s.Scan(0x1000, make([]byte, 16)); matches != nil {
		t.Errorf("expected nil matches, got %v", matches)
	}
}
