/*
 * effsd - Ver4/NX (Switch) Mii color/type extension fields.
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

// Package ver4 describes the Switch/"Ver4" Mii extension fields. This is a
// pure intermediate representation; nothing in this package is stored to
// disk directly, it is embedded inside a Ver3 record by package effsd.
package ver4

// Fields holds the eight Ver4 attribute indices. Each has a wider range
// than the Ver3 visible field it is derived from.
type Fields struct {
	FacelineColor uint8 // [0,10)
	HairColor     uint8 // [0,100)
	EyeColor      uint8 // [0,100)
	EyebrowColor  uint8 // [0,100)
	MouthColor    uint8 // [0,100)
	BeardColor    uint8 // [0,100)
	GlassColor    uint8 // [0,100)
	GlassType     uint8 // [0,20)
}
