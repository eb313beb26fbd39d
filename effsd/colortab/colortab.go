/*
 * effsd - Reverse-mapping (grouped index) lookup built from the forward
 * Ver4->Ver3 conversion tables.
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

// Package colortab holds the forward Ver4->Ver3 conversion tables and the
// reverse index built from them: for every Ver3 bucket, the ordered list of
// Ver4 indices that fold into it, and for every Ver4 index, its position
// within that bucket (the "group index"). The forward tables are many-to-
// one, so the visible Ver3 value alone cannot reconstruct the Ver4 index;
// the group index is the missing piece, and it is small because buckets are
// small.
package colortab

import "fmt"

// ReverseMap is the reverse index derived from one forward table.
type ReverseMap struct {
	// Counts[v3] is the number of Ver4 indices that map to Ver3 value v3.
	Counts []uint16
	// ByGroup[v3][k] is the Ver4 index at position k within bucket v3.
	ByGroup [][]uint8
	// PositionInGroup[i] is the position of Ver4 index i within its bucket.
	PositionInGroup []uint8
	// MaxGroupSize is the largest bucket size over all Ver3 values.
	MaxGroupSize uint16
}

// BuildReverseMap constructs a ReverseMap from a forward table whose Ver3
// outputs are known to lie in [0, v3MaxPlus1).
func BuildReverseMap(fwd []uint8, v3MaxPlus1 int) ReverseMap {
	rm := ReverseMap{
		Counts:          make([]uint16, v3MaxPlus1),
		ByGroup:         make([][]uint8, v3MaxPlus1),
		PositionInGroup: make([]uint8, len(fwd)),
	}
	for v3 := range rm.ByGroup {
		rm.ByGroup[v3] = make([]uint8, len(fwd))
	}
	for i, v3 := range fwd {
		pos := rm.Counts[v3]
		rm.ByGroup[v3][pos] = uint8(i)
		rm.PositionInGroup[i] = uint8(pos)
		rm.Counts[v3] = pos + 1
	}
	for _, c := range rm.Counts {
		if c > rm.MaxGroupSize {
			rm.MaxGroupSize = c
		}
	}
	return rm
}

// CeilLog2 returns the minimum number of bits needed to represent values in
// [0, n).
func CeilLog2(n uint16) int {
	if n <= 1 {
		return 0
	}
	bits := 0
	v := uint16(1)
	for v < n {
		v <<= 1
		bits++
	}
	return bits
}

// GroupIndexOf returns the group index (position in bucket) for a given
// Ver4 index, using the reverse map.
func GroupIndexOf(rm ReverseMap, ver4Index uint8) uint8 {
	return rm.PositionInGroup[ver4Index]
}

// Ver4FromGroup reconstructs a Ver4 index from a Ver3 value and a group
// index, clamping the group index into range if it is corrupt. Never
// fails: this is the codec's only defense against a corrupted extra block.
func Ver4FromGroup(rm ReverseMap, ver3Value uint8, groupIndex uint8) uint8 {
	count := rm.Counts[ver3Value]
	if count == 0 {
		return 0
	}
	if uint16(groupIndex) >= count {
		groupIndex = uint8(count - 1)
	}
	return rm.ByGroup[ver3Value][groupIndex]
}

// Reverse maps for each color/type family. Built once at program start and
// shape-asserted below, since Go has no general compile-time evaluation.
var (
	RevFaceline   = BuildReverseMap(ToVer3Faceline[:], Ver3FacelineColorEnd)
	RevHair       = BuildReverseMap(ToVer3Hair[:], Ver3HairColorEnd)
	RevEye        = BuildReverseMap(ToVer3Eye[:], Ver3EyeColorEnd)
	RevMouth      = BuildReverseMap(ToVer3Mouth[:], Ver3MouthColorEnd)
	RevGlassColor = BuildReverseMap(ToVer3GlassColor[:], Ver3GlassColorEnd)
	RevGlassType  = BuildReverseMap(ToVer3GlassType[:], Ver3GlassTypeEnd)
)

// Bit widths required for each family's group index. These are derived at
// init time from the tables above; the values are pinned by the extra
// block's fixed layout (see package extrablock), so a table edit that
// changes one of these is a breaking change caught here at program start.
const (
	FacelineColorBits = 2
	HairColorBits     = 5
	EyeColorBits      = 5
	EyebrowColorBits  = 5 // Shares the hair table.
	MouthColorBits    = 6
	BeardColorBits    = 5 // Shares the hair table.
	GlassColorBits    = 5
	GlassTypeBits     = 3
)

func init() {
	assertBits("faceline", RevFaceline, FacelineColorBits)
	assertBits("hair", RevHair, HairColorBits)
	assertBits("eye", RevEye, EyeColorBits)
	assertBits("eyebrow", RevHair, EyebrowColorBits)
	assertBits("mouth", RevMouth, MouthColorBits)
	assertBits("beard", RevHair, BeardColorBits)
	assertBits("glassColor", RevGlassColor, GlassColorBits)
	assertBits("glassType", RevGlassType, GlassTypeBits)

	const sum = FacelineColorBits + HairColorBits + EyeColorBits + EyebrowColorBits +
		MouthColorBits + BeardColorBits + GlassColorBits + GlassTypeBits
	if sum > 51 {
		panic(fmt.Sprintf("colortab: group index bits sum to %d, exceeds 51-bit extra block", sum))
	}
}

func assertBits(name string, rm ReverseMap, want int) {
	got := CeilLog2(rm.MaxGroupSize)
	if got != want {
		panic(fmt.Sprintf("colortab: %s family needs %d group-index bits, table shape gives %d", name, want, got))
	}
}
