/*
 * effsd - Ver4->Ver3 forward color/type conversion tables.
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

package colortab

// Number of Ver4 indices for the "common" color families (hair, eye,
// mouth, beard, glass color) and the narrower faceline/glass-type families.
const (
	CommonColorEnd   = 100
	FacelineColorEnd = 10
	GlassTypeEnd     = 20
)

// Ver3 bucket counts (the number of distinct legacy values each family's
// forward table can produce).
const (
	Ver3HairColorEnd     = 8
	Ver3EyeColorEnd      = 6
	Ver3MouthColorEnd    = 5
	Ver3GlassColorEnd    = 6
	Ver3FacelineColorEnd = 6
	Ver3GlassTypeEnd     = 9
)

// ToVer3Hair maps a Ver4 hair/eyebrow/beard color index to its Ver3 bucket.
// The hair table is reused for eyebrow and beard per the original format.
var ToVer3Hair = [CommonColorEnd]uint8{
	/* 0:  */ 0, 1, 2, 3, 4, 5, 6, 7, 0, 4, 3, 5, 4, 5, 6, 2, 0, 6, 4, 3, 2, 2, 7, 3, 2, 2,
	/* 26: */ 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 4, 4, 4, 4, 4, 4, 4, 0, 0, 4, 4,
	/* 52: */ 4, 4, 4, 4, 0, 0, 0, 5, 4, 4, 4, 4, 4, 5, 5, 5, 4, 4, 7, 4, 4, 4, 4, 5, 7, 5,
	/* 78: */ 7, 7, 7, 7, 7, 6, 7, 7, 7, 7, 7, 3, 7, 7, 7, 7, 7, 0, 4, 4, 4, 4,
}

// ToVer3Eye maps a Ver4 eye color index to its Ver3 bucket.
var ToVer3Eye = [CommonColorEnd]uint8{
	/* 0:  */ 0, 2, 2, 2, 1, 3, 2, 3, 0, 1, 2, 3, 4, 5, 2, 2, 4, 2, 1, 2, 2, 2, 2, 2, 2, 2,
	/* 26: */ 2, 1, 2, 2, 2, 2, 2, 2, 2, 2, 2, 1, 0, 0, 4, 4, 4, 4, 4, 4, 4, 1, 0, 4, 4, 4,
	/* 52: */ 4, 4, 4, 4, 0, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 3, 3, 3,
	/* 78: */ 3, 3, 3, 3, 3, 2, 2, 3, 3, 3, 3, 2, 2, 2, 2, 2, 1, 1, 1, 1, 1, 1,
}

// ToVer3Mouth maps a Ver4 mouth color index to its Ver3 bucket.
var ToVer3Mouth = [CommonColorEnd]uint8{
	/* 0:  */ 4, 4, 4, 4, 4, 4, 4, 3, 4, 4, 4, 4, 4, 4, 4, 1, 4, 4, 4, 0, 1, 2, 3, 4, 4, 2,
	/* 26: */ 3, 3, 4, 4, 4, 4, 1, 4, 4, 2, 3, 3, 4, 4, 4, 4, 4, 4, 4, 3, 3, 3, 4, 4, 4, 3,
	/* 52: */ 3, 3, 3, 3, 4, 4, 4, 4, 4, 3, 3, 3, 3, 4, 4, 4, 4, 3, 3, 3, 3, 3, 3, 4, 4, 3,
	/* 78: */ 3, 3, 3, 3, 3, 4, 3, 3, 3, 3, 3, 4, 0, 3, 3, 3, 3, 4, 3, 3, 3, 3,
}

// ToVer3GlassColor maps a Ver4 glass color index to its Ver3 bucket.
var ToVer3GlassColor = [CommonColorEnd]uint8{
	/* 0:  */ 0, 1, 1, 1, 5, 1, 1, 4, 0, 5, 1, 1, 3, 5, 1, 2, 3, 4, 5, 4, 2, 2, 4, 4, 2, 2,
	/* 26: */ 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3,
	/* 52: */ 3, 3, 3, 3, 0, 0, 0, 5, 5, 5, 5, 5, 5, 0, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 4,
	/* 78: */ 5, 5, 5, 5, 5, 1, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 5, 5, 5, 5, 5, 5,
}

// ToVer3Faceline maps a Ver4 faceline color index to its Ver3 bucket.
var ToVer3Faceline = [FacelineColorEnd]uint8{
	0, 1, 2, 3, 4, 5, 0, 1, 5, 5,
}

// ToVer3GlassType maps a Ver4 glass type index to its Ver3 bucket.
var ToVer3GlassType = [GlassTypeEnd]uint8{
	0, 1, 2, 3, 4, 5, 6, 7, 8, 1, 2, 1, 3, 7, 7, 6, 7, 8, 7, 7,
}
