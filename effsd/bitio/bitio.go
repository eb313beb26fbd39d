/*
 * effsd - LSB-first bit I/O over a byte buffer.
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

// Package bitio reads and writes arbitrary-width fields over a byte buffer,
// LSB-first: bit 0 of the value lands on the lowest-numbered target bit.
// There are no alignment requirements on the offset or width, and the
// buffer's byte order is irrelevant since it is treated as a flat bit
// stream.
package bitio

// PutBits writes the low width bits of value into dst starting at bit
// offset bitOff. width must be in [0,64]. Bits outside [bitOff,
// bitOff+width) are left untouched.
func PutBits(dst []byte, bitOff, width int, value uint64) {
	bit := bitOff
	for i := 0; i < width; i, bit = i+1, bit+1 {
		byteIndex := bit >> 3
		bitIndex := uint(bit & 7)
		mask := byte(1) << bitIndex
		if (value>>uint(i))&1 != 0 {
			dst[byteIndex] |= mask
		} else {
			dst[byteIndex] &^= mask
		}
	}
}

// GetBits reads width bits starting at bit offset bitOff from src,
// LSB-first, and returns them right-aligned in the result.
func GetBits(src []byte, bitOff, width int) uint64 {
	var out uint64
	bit := bitOff
	for i := 0; i < width; i, bit = i+1, bit+1 {
		byteIndex := bit >> 3
		bitIndex := uint(bit & 7)
		mask := byte(1) << bitIndex
		if src[byteIndex]&mask != 0 {
			out |= uint64(1) << uint(i)
		}
	}
	return out
}
