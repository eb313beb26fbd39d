/*
 * effsd - Ver3/Ver4 Mii color bridge.
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

// Package effsd losslessly embeds a Ver4 (Switch) Mii's extended
// color/glass-type fields into the spare bits of a Ver3 (3DS/Wii U) Mii
// record, and recovers them again. Every component is a pure function
// over in-memory values; the package keeps no state beyond the read-only
// color tables built at init time in package colortab.
//
// Record bytes are always the canonical little-endian layout described in
// package ver3. Callers reading a record from a big-endian source must
// byte-swap the relevant multi-byte fields before calling Pack or Unpack;
// this package never inspects host byte order.
package effsd

import (
	"github.com/nx-mii/miibridge/effsd/colortab"
	"github.com/nx-mii/miibridge/effsd/extrablock"
	"github.com/nx-mii/miibridge/effsd/ver3"
	"github.com/nx-mii/miibridge/effsd/ver4"
)

// Pack writes fields into r: the eight visible Ver3 color/type attributes
// are overwritten with the nearest Ver3-representable bucket, and the
// precise Ver4 values are piggybacked into r's spare bit-fields so that a
// later Unpack recovers fields exactly.
func Pack(fields ver4.Fields, r *ver3.Record) {
	r.SetFaceColor(colortab.ToVer3Faceline[fields.FacelineColor])
	r.SetHairColor(colortab.ToVer3Hair[fields.HairColor])
	r.SetEyeColor(colortab.ToVer3Eye[fields.EyeColor])
	r.SetEyebrowColor(colortab.ToVer3Hair[fields.EyebrowColor])
	r.SetMouthColor(colortab.ToVer3Mouth[fields.MouthColor])
	r.SetBeardColor(colortab.ToVer3Hair[fields.BeardColor])
	r.SetGlassColor(colortab.ToVer3GlassColor[fields.GlassColor])
	r.SetGlassType(colortab.ToVer3GlassType[fields.GlassType])

	gi := extrablock.GroupIndices{
		FaceGI:       colortab.GroupIndexOf(colortab.RevFaceline, fields.FacelineColor),
		HairGI:       colortab.GroupIndexOf(colortab.RevHair, fields.HairColor),
		EyeGI:        colortab.GroupIndexOf(colortab.RevEye, fields.EyeColor),
		BrowGI:       colortab.GroupIndexOf(colortab.RevHair, fields.EyebrowColor),
		MouthGI:      colortab.GroupIndexOf(colortab.RevMouth, fields.MouthColor),
		BeardGI:      colortab.GroupIndexOf(colortab.RevHair, fields.BeardColor),
		GlassColorGI: colortab.GroupIndexOf(colortab.RevGlassColor, fields.GlassColor),
		GlassTypeGI:  colortab.GroupIndexOf(colortab.RevGlassType, fields.GlassType),
	}
	r.Scatter(extrablock.Encode(gi))
}

// Unpack recovers the exact Ver4 fields previously embedded by Pack. The
// result is undefined if r was never packed by this package, or was
// mutated afterwards in a way that touched its spare bit-fields.
func Unpack(r *ver3.Record) ver4.Fields {
	gi := extrablock.Decode(r.Gather())

	return ver4.Fields{
		FacelineColor: colortab.Ver4FromGroup(colortab.RevFaceline, r.FaceColor(), gi.FaceGI),
		HairColor:     colortab.Ver4FromGroup(colortab.RevHair, r.HairColor(), gi.HairGI),
		EyeColor:      colortab.Ver4FromGroup(colortab.RevEye, r.EyeColor(), gi.EyeGI),
		EyebrowColor:  colortab.Ver4FromGroup(colortab.RevHair, r.EyebrowColor(), gi.BrowGI),
		MouthColor:    colortab.Ver4FromGroup(colortab.RevMouth, r.MouthColor(), gi.MouthGI),
		BeardColor:    colortab.Ver4FromGroup(colortab.RevHair, r.BeardColor(), gi.BeardGI),
		GlassColor:    colortab.Ver4FromGroup(colortab.RevGlassColor, r.GlassColor(), gi.GlassColorGI),
		GlassType:     colortab.Ver4FromGroup(colortab.RevGlassType, r.GlassType(), gi.GlassTypeGI),
	}
}
