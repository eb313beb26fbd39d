/*
 * effsd - Ver3 ("3DS/Wii U") Mii record: visible attributes plus the
 * eleven spare/reserved/padding bit-fields used to carry the Ver4 extra
 * block.
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

// Package ver3 models the 72-byte legacy Mii record. Go has no portable
// bitfield struct, so Record stores the 72 raw bytes and exposes named
// accessors backed by package bitio; the bit offset and width of each
// accessor below reproduces the canonical little-endian layout of
// Ver3MiiDataCore. Record never interprets host byte order: callers on a
// big-endian source must byte-swap before constructing one (see effsd's
// package doc).
package ver3

import (
	"errors"

	"github.com/nx-mii/miibridge/effsd/bitio"
	"github.com/nx-mii/miibridge/effsd/extrablock"
)

// Size is the length in bytes of a Ver3 record core (FFLiMiiDataCore,
// stopping before creatorName).
const Size = 72

// ErrShortRecord is returned by NewFromBytes when the input is not exactly
// Size bytes.
var ErrShortRecord = errors.New("ver3: record must be exactly 72 bytes")

// Record is a 72-byte Ver3 Mii record core, addressed bit-by-bit.
type Record struct {
	raw [Size]byte
}

// NewFromBytes copies b (which must be exactly Size bytes, already
// canonicalized to little-endian) into a new Record.
func NewFromBytes(b []byte) (*Record, error) {
	if len(b) != Size {
		return nil, ErrShortRecord
	}
	r := &Record{}
	copy(r.raw[:], b)
	return r, nil
}

// Bytes returns the record's backing 72-byte buffer.
func (r *Record) Bytes() []byte { return r.raw[:] }

// Bit offsets and widths of every field this package touches, in the
// record's canonical little-endian layout. Visible attributes keep their
// full field width; the eleven spare fields are listed in the fixed order
// the shuttle (Gather/Scatter) uses.
const (
	offFaceColor    = 389
	widFaceColor    = 3
	offHairColor    = 408
	widHairColor    = 3
	offEyeColor     = 422
	widEyeColor     = 3
	offEyebrowColor = 453
	widEyebrowColor = 3
	offMouthColor   = 502
	widMouthColor   = 3
	offBeardColor   = 531
	widBeardColor   = 3
	offGlassColor   = 548
	widGlassColor   = 3
	offGlassType    = 544
	widGlassType    = 4

	offReserved0    = 14
	widReserved0    = 2
	offAuthorType   = 24
	widAuthorType   = 4
	offReserved1    = 31
	widReserved1    = 1
	offReserved2a   = 176
	widReserved2a   = 8
	offReserved2b   = 184
	widReserved2b   = 8
	offPadding0     = 207
	widPadding0     = 1
	offPadding1     = 412
	widPadding1     = 4
	offPadding2     = 446
	widPadding2     = 2
	offPadding3     = 463
	widPadding3     = 1
	offPadding4     = 478
	widPadding4     = 2
	offPadding5     = 494
	widPadding5     = 2
	offPadding6     = 520
	widPadding6     = 8
	offPadding7     = 543
	widPadding7     = 1
	offPadding8     = 575
	widPadding8     = 1
	offRoomIndex    = 16
	widRoomIndex    = 4
	offPositionRoom = 20
	widPositionRoom = 4
)

func (r *Record) get(off, width int) uint8 { return uint8(bitio.GetBits(r.raw[:], off, width)) }
func (r *Record) set(off, width int, v uint8) {
	bitio.PutBits(r.raw[:], off, width, uint64(v))
}

// Visible attributes (component E overwrites these on Pack).

func (r *Record) FaceColor() uint8        { return r.get(offFaceColor, widFaceColor) }
func (r *Record) SetFaceColor(v uint8)    { r.set(offFaceColor, widFaceColor, v) }
func (r *Record) HairColor() uint8        { return r.get(offHairColor, widHairColor) }
func (r *Record) SetHairColor(v uint8)    { r.set(offHairColor, widHairColor, v) }
func (r *Record) EyeColor() uint8         { return r.get(offEyeColor, widEyeColor) }
func (r *Record) SetEyeColor(v uint8)     { r.set(offEyeColor, widEyeColor, v) }
func (r *Record) EyebrowColor() uint8     { return r.get(offEyebrowColor, widEyebrowColor) }
func (r *Record) SetEyebrowColor(v uint8) { r.set(offEyebrowColor, widEyebrowColor, v) }
func (r *Record) MouthColor() uint8       { return r.get(offMouthColor, widMouthColor) }
func (r *Record) SetMouthColor(v uint8)   { r.set(offMouthColor, widMouthColor, v) }
func (r *Record) BeardColor() uint8       { return r.get(offBeardColor, widBeardColor) }
func (r *Record) SetBeardColor(v uint8)   { r.set(offBeardColor, widBeardColor, v) }
func (r *Record) GlassColor() uint8       { return r.get(offGlassColor, widGlassColor) }
func (r *Record) SetGlassColor(v uint8)   { r.set(offGlassColor, widGlassColor, v) }
func (r *Record) GlassType() uint8        { return r.get(offGlassType, widGlassType) }
func (r *Record) SetGlassType(v uint8)    { r.set(offGlassType, widGlassType, v) }

// RoomIndex and PositionInRoom are nominally 4-bit fields (legacy
// verification allows up to 9); the piggyback shuttle below only ever
// writes 3-bit values into them.
func (r *Record) RoomIndex() uint8            { return r.get(offRoomIndex, widRoomIndex) }
func (r *Record) PositionInRoom() uint8       { return r.get(offPositionRoom, widPositionRoom) }
func (r *Record) setRoomIndex(v uint8)        { r.set(offRoomIndex, widRoomIndex, v) }
func (r *Record) setPositionInRoom(v uint8)   { r.set(offPositionRoom, widPositionRoom, v) }

// Gather extracts the contiguous 51-bit extra block from the record's
// eleven spare fields, in this fixed order: reserved_0, authorType, reserved_1, reserved_2[0..1],
// padding_0..8, roomIndex (low 3 bits), positionInRoom (low 3 bits).
func (r *Record) Gather() extrablock.Block {
	var b extrablock.Block
	bit := 0
	put := func(off, width int) {
		bitio.PutBits(b[:], bit, width, uint64(r.get(off, width)))
		bit += width
	}
	put(offReserved0, widReserved0)
	put(offAuthorType, widAuthorType)
	put(offReserved1, widReserved1)
	put(offReserved2a, widReserved2a)
	put(offReserved2b, widReserved2b)
	put(offPadding0, widPadding0)
	put(offPadding1, widPadding1)
	put(offPadding2, widPadding2)
	put(offPadding3, widPadding3)
	put(offPadding4, widPadding4)
	put(offPadding5, widPadding5)
	put(offPadding6, widPadding6)
	put(offPadding7, widPadding7)
	put(offPadding8, widPadding8)

	// Only 3 bits (0-7) of roomIndex/positionInRoom are used by the
	// piggyback; legacy verification rejects values > 9 for these fields.
	bitio.PutBits(b[:], bit, 3, uint64(r.RoomIndex()&0x7))
	bit += 3
	bitio.PutBits(b[:], bit, 3, uint64(r.PositionInRoom()&0x7))
	bit += 3

	return b
}

// Scatter writes the 51-bit extra block back into the record's spare
// fields, in the same order Gather reads them. It never touches any bit
// outside the eleven named fields (plus the low 3 bits of roomIndex and
// positionInRoom).
func (r *Record) Scatter(b extrablock.Block) {
	bit := 0
	take := func(off, width int) {
		r.set(off, width, uint8(bitio.GetBits(b[:], bit, width)))
		bit += width
	}
	take(offReserved0, widReserved0)
	// authorType is logically unused by legacy consumers; we still
	// round-trip it through the shuttle like every other spare bit.
	take(offAuthorType, widAuthorType)
	take(offReserved1, widReserved1)
	take(offReserved2a, widReserved2a)
	take(offReserved2b, widReserved2b)
	take(offPadding0, widPadding0)
	take(offPadding1, widPadding1)
	take(offPadding2, widPadding2)
	take(offPadding3, widPadding3)
	take(offPadding4, widPadding4)
	take(offPadding5, widPadding5)
	take(offPadding6, widPadding6)
	take(offPadding7, widPadding7)
	take(offPadding8, widPadding8)

	r.setRoomIndex(uint8(bitio.GetBits(b[:], bit, 3)))
	bit += 3
	r.setPositionInRoom(uint8(bitio.GetBits(b[:], bit, 3)))
	bit += 3
}
