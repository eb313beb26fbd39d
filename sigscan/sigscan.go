/*
 * sigscan - PowerPC masked-word signature scanner.
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

// Package sigscan locates function entry points in a big-endian PowerPC
// .text section by masked-word pattern matching. A signature is a run of
// 32-bit words, each with a value and a compare mask; wildcard bits are
// zero in the mask. Once a pattern hits, the match is resolved to a
// function entry three ways: the hit itself, the target of a BL
// instruction inside the pattern, or by walking backward to the nearest
// recognized function prologue.
package sigscan

import (
	"encoding/binary"
)

// ResolveMode selects how a pattern hit becomes a function entry address.
type ResolveMode int

const (
	// Direct: the match's start address is the entry point.
	Direct ResolveMode = iota
	// BranchTarget: the pattern contains a BL instruction; its branch
	// target is the entry point.
	BranchTarget
	// FunctionStart: the pattern is inside a function body; walk
	// backward to the nearest recognized prologue.
	FunctionStart
)

// Word is one 32-bit element of a signature: value is compared against
// the text only where mask has a 1 bit.
type Word struct {
	Value uint32
	Mask  uint32
}

// Signature describes one pattern to scan for.
type Signature struct {
	Name            string
	Words           []Word
	ResolveMode     ResolveMode
	BranchWordIndex int // only meaningful when ResolveMode == BranchTarget
}

// Match is one resolved hit.
type Match struct {
	Signature        *Signature
	EffectiveAddress uintptr
	PhysicalAddress  uintptr
}

// ToPhysicalFunc translates an effective (virtual) address to a physical
// one. A nil function passed to New defaults to the identity function,
// suitable for scanning a host-resident buffer in tests.
type ToPhysicalFunc func(uintptr) uintptr

// Scanner holds a fixed signature set and an address translator.
type Scanner struct {
	signatures []Signature
	maxWords   int
	toPhys     ToPhysicalFunc
}

// New builds a Scanner over signatures. toPhys may be nil, in which case
// physical addresses equal effective addresses.
func New(signatures []Signature, toPhys ToPhysicalFunc) *Scanner {
	s := &Scanner{signatures: signatures, toPhys: toPhys}
	if s.toPhys == nil {
		s.toPhys = func(addr uintptr) uintptr { return addr }
	}
	for i := range signatures {
		if n := len(signatures[i].Words); n > s.maxWords {
			s.maxWords = n
		}
	}
	return s
}

func loadBE32(b []byte) uint32 {
	return binary.BigEndian.Uint32(b)
}

// tryMatchAt performs the full masked word-by-word compare starting at
// byte offset off within text.
func tryMatchAt(text []byte, off int, sig *Signature) bool {
	for w, word := range sig.Words {
		got := loadBE32(text[off+w*4:])
		if (got^word.Value)&word.Mask != 0 {
			return false
		}
	}
	return true
}

// decodeBLTarget decodes a PowerPC BL (branch-with-link) instruction at
// effective address blEff and returns its absolute branch target. It
// returns false if the instruction is not a BL (wrong opcode, or LK
// clear).
func decodeBLTarget(text []byte, textBase, blEff uintptr) (uintptr, bool) {
	off := int(blEff - textBase)
	instr := loadBE32(text[off:])

	if (instr>>26)&0x3F != 0x12 { // opcode 18: branch family
		return 0, false
	}
	if instr&0x1 != 0x1 { // LK clear: plain B, not BL
		return 0, false
	}

	li := (instr >> 2) & 0x00FFFFFF // 24-bit signed word-offset field
	if li&0x00800000 != 0 {
		li |= 0xFF000000 // sign-extend
	}
	offset := int32(li) << 2
	return blEff + uintptr(offset), true
}

const (
	prologueMfsprLR  = 0x7C0802A6 // mfspr r0, LR
	prologueStwuMask = 0xFFFF0000
	prologueStwuVal  = 0x94210000 // stwu r1, -imm(r1)
	prologueStmwMask = 0xFC000000
	prologueStmwVal  = 0xBC000000 // stmw rN, disp(r1)
	maxPrologueWalk  = 32
)

// walkBackToPrologue scans backward from anyInstrEff for up to 32
// instructions, looking for one of three PowerPC function-prologue
// idioms: mfspr-then-stwu, stwu-then-mfspr, or stwu-then-stmw-then-mfspr.
// The scan never reads before textBase.
func walkBackToPrologue(text []byte, textBase, textEnd, anyInstrEff uintptr) (uintptr, bool) {
	for i := 0; i < maxPrologueWalk; i++ {
		addr := anyInstrEff - uintptr(i)*4
		if addr < textBase {
			break
		}
		off := int(addr - textBase)
		insn := loadBE32(text[off:])

		if insn == prologueMfsprLR {
			if nextOff := off + 4; nextOff+4 <= len(text) {
				next := loadBE32(text[nextOff:])
				if next&prologueStwuMask == prologueStwuVal {
					return addr, true
				}
			}
		}

		if insn&prologueStwuMask == prologueStwuVal {
			nextOff := off + 4
			if nextOff+4 > len(text) {
				continue
			}
			next := loadBE32(text[nextOff:])
			if next == prologueMfsprLR {
				return addr, true
			}
			if next&prologueStmwMask == prologueStmwVal {
				next2Off := off + 8
				if next2Off+4 <= len(text) {
					next2 := loadBE32(text[next2Off:])
					if next2 == prologueMfsprLR {
						return addr, true
					}
				}
			}
		}
	}
	return 0, false
}

// resolveHit computes the final entry-point effective address for a hit
// at hitEff, according to sig's ResolveMode.
func resolveHit(text []byte, textBase, textEnd, hitEff uintptr, sig *Signature) (uintptr, bool) {
	switch sig.ResolveMode {
	case Direct:
		return hitEff, true
	case BranchTarget:
		blEff := hitEff + uintptr(sig.BranchWordIndex)*4
		return decodeBLTarget(text, textBase, blEff)
	case FunctionStart:
		if start, ok := walkBackToPrologue(text, textBase, textEnd, hitEff); ok {
			return start, true
		}
		// No recognizable prologue within the walk window; fall back to
		// the hit address itself rather than dropping the match.
		return hitEff, true
	default:
		return 0, false
	}
}

// Scan performs a single pass over text (the .text section contents,
// starting at effective address textBase) and returns every resolved
// signature match. Matching advances 4 bytes at a time, as required by
// fixed-width PowerPC instructions.
func (s *Scanner) Scan(textBase uintptr, text []byte) []Match {
	if len(s.signatures) == 0 || textBase == 0 || len(text) < 4 {
		return nil
	}

	textEnd := textBase + uintptr(len(text))
	var matches []Match

	for cur := 0; cur+4 <= len(text); cur += 4 {
		for i := range s.signatures {
			sig := &s.signatures[i]
			patBytes := len(sig.Words) * 4
			if cur+patBytes > len(text) {
				continue
			}

			// Anchor check: compare only the last word first, since a
			// mismatch there is by far the most common outcome and is
			// cheaper than a full word-by-word compare.
			lastOff := cur + (len(sig.Words)-1)*4
			lastWord := sig.Words[len(sig.Words)-1]
			gotLast := loadBE32(text[lastOff:])
			if (gotLast^lastWord.Value)&lastWord.Mask != 0 {
				continue
			}

			if !tryMatchAt(text, cur, sig) {
				continue
			}

			hitEff := textBase + uintptr(cur)
			resolvedEff, ok := resolveHit(text, textBase, textEnd, hitEff, sig)
			if !ok {
				continue
			}

			phys := s.toPhys(resolvedEff)
			if phys == 0 {
				continue
			}

			matches = append(matches, Match{
				Signature:        sig,
				EffectiveAddress: resolvedEff,
				PhysicalAddress:  phys,
			})
		}
	}
	return matches
}
