/*
 * effsd - 51-bit extra-data block codec.
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

// Package extrablock packs the eight Ver4 group indices into a 7-byte
// (51-bit, 36 used) contiguous block, and unpacks them again. The block has
// no framing; its schema is entirely fixed by the order and widths below.
// The high 15 bits are reserved for future use (e.g. a checksum) and are
// always written zero.
package extrablock

import (
	"github.com/nx-mii/miibridge/effsd/bitio"
	"github.com/nx-mii/miibridge/effsd/colortab"
)

// TotalBits is the full extra-data block size; Bytes is its byte length.
const (
	TotalBits = 51
	Bytes     = (TotalBits + 7) / 8 // 7
)

// Block is the raw 7-byte extra-data payload.
type Block [Bytes]byte

// GroupIndices holds the eight per-family group indices that Pack computes
// and Unpack consumes.
type GroupIndices struct {
	FaceGI       uint8
	HairGI       uint8
	EyeGI        uint8
	BrowGI       uint8
	MouthGI      uint8
	BeardGI      uint8
	GlassColorGI uint8
	GlassTypeGI  uint8
}

// Encode packs the group indices into the low 36 bits of a new Block, in
// the fixed order: faceline, hair, eye, eyebrow, mouth, beard, glass color,
// glass type. The high 15 bits remain zero.
func Encode(gi GroupIndices) Block {
	var b Block
	bit := 0
	bitio.PutBits(b[:], bit, colortab.FacelineColorBits, uint64(gi.FaceGI))
	bit += colortab.FacelineColorBits
	bitio.PutBits(b[:], bit, colortab.HairColorBits, uint64(gi.HairGI))
	bit += colortab.HairColorBits
	bitio.PutBits(b[:], bit, colortab.EyeColorBits, uint64(gi.EyeGI))
	bit += colortab.EyeColorBits
	bitio.PutBits(b[:], bit, colortab.EyebrowColorBits, uint64(gi.BrowGI))
	bit += colortab.EyebrowColorBits
	bitio.PutBits(b[:], bit, colortab.MouthColorBits, uint64(gi.MouthGI))
	bit += colortab.MouthColorBits
	bitio.PutBits(b[:], bit, colortab.BeardColorBits, uint64(gi.BeardGI))
	bit += colortab.BeardColorBits
	bitio.PutBits(b[:], bit, colortab.GlassColorBits, uint64(gi.GlassColorGI))
	bit += colortab.GlassColorBits
	bitio.PutBits(b[:], bit, colortab.GlassTypeBits, uint64(gi.GlassTypeGI))
	return b
}

// Decode is the dual of Encode: it reads the same widths in the same
// order. The block is self-describing only via this fixed schema.
func Decode(b Block) GroupIndices {
	var gi GroupIndices
	bit := 0
	gi.FaceGI = uint8(bitio.GetBits(b[:], bit, colortab.FacelineColorBits))
	bit += colortab.FacelineColorBits
	gi.HairGI = uint8(bitio.GetBits(b[:], bit, colortab.HairColorBits))
	bit += colortab.HairColorBits
	gi.EyeGI = uint8(bitio.GetBits(b[:], bit, colortab.EyeColorBits))
	bit += colortab.EyeColorBits
	gi.BrowGI = uint8(bitio.GetBits(b[:], bit, colortab.EyebrowColorBits))
	bit += colortab.EyebrowColorBits
	gi.MouthGI = uint8(bitio.GetBits(b[:], bit, colortab.MouthColorBits))
	bit += colortab.MouthColorBits
	gi.BeardGI = uint8(bitio.GetBits(b[:], bit, colortab.BeardColorBits))
	bit += colortab.BeardColorBits
	gi.GlassColorGI = uint8(bitio.GetBits(b[:], bit, colortab.GlassColorBits))
	bit += colortab.GlassColorBits
	gi.GlassTypeGI = uint8(bitio.GetBits(b[:], bit, colortab.GlassTypeBits))
	return gi
}
