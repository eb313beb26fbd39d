/*
 * effsd - Pack/Unpack round-trip test cases.
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

package effsd

import (
	"testing"

	"github.com/nx-mii/miibridge/effsd/ver3"
	"github.com/nx-mii/miibridge/effsd/ver4"
)

func zeroRecord(t *testing.T) *ver3.Record {
	t.Helper()
	r, err := ver3.NewFromBytes(make([]byte, ver3.Size))
	if err != nil {
		t.Fatalf("NewFromBytes: %v", err)
	}
	return r
}

// TestPackUnpackWorkedExample reproduces the documented worked example: an
// all-zero Ver3 record packed with the maximum value in every Ver4 field
// unpacks back to exactly those values.
func TestPackUnpackWorkedExample(t *testing.T) {
	in := ver4.Fields{
		FacelineColor: 9,
		HairColor:     99,
		EyeColor:      99,
		EyebrowColor:  99,
		MouthColor:    99,
		BeardColor:    99,
		GlassColor:    99,
		GlassType:     19,
	}
	r := zeroRecord(t)
	Pack(in, r)
	out := Unpack(r)
	if out != in {
		t.Errorf("worked example round trip: got %+v, want %+v", out, in)
	}
}

// TestPackUnpackRoundTripExhaustive exercises every representable value of
// every Ver4 field independently, holding the others at zero.
func TestPackUnpackRoundTripExhaustive(t *testing.T) {
	check := func(name string, set func(v uint8) ver4.Fields) {
		t.Run(name, func(t *testing.T) {
			var maxVal uint8 = 99
			if name == "faceline" {
				maxVal = 9
			}
			if name == "glassType" {
				maxVal = 19
			}
			for v := uint8(0); v <= maxVal; v++ {
				in := set(v)
				r := zeroRecord(t)
				Pack(in, r)
				out := Unpack(r)
				if out != in {
					t.Fatalf("%s=%d: round trip got %+v, want %+v", name, v, out, in)
				}
			}
		})
	}
	check("faceline", func(v uint8) ver4.Fields { return ver4.Fields{FacelineColor: v} })
	check("hair", func(v uint8) ver4.Fields { return ver4.Fields{HairColor: v} })
	check("eye", func(v uint8) ver4.Fields { return ver4.Fields{EyeColor: v} })
	check("eyebrow", func(v uint8) ver4.Fields { return ver4.Fields{EyebrowColor: v} })
	check("mouth", func(v uint8) ver4.Fields { return ver4.Fields{MouthColor: v} })
	check("beard", func(v uint8) ver4.Fields { return ver4.Fields{BeardColor: v} })
	check("glassColor", func(v uint8) ver4.Fields { return ver4.Fields{GlassColor: v} })
	check("glassType", func(v uint8) ver4.Fields { return ver4.Fields{GlassType: v} })
}

// TestPackDoesNotDisturbUnrelatedBytes checks that bytes 46 and 47, which
// lie outside the visible fields and the eleven spare fields Pack writes,
// come out of Pack unchanged.
func TestPackDoesNotDisturbUnrelatedBytes(t *testing.T) {
	raw := make([]byte, ver3.Size)
	for i := range raw {
		raw[i] = byte(i) // distinct pattern so any stray write is visible
	}
	r, err := ver3.NewFromBytes(raw)
	if err != nil {
		t.Fatalf("NewFromBytes: %v", err)
	}
	before := make([]byte, ver3.Size)
	copy(before, r.Bytes())

	Pack(ver4.Fields{FacelineColor: 9, HairColor: 99, EyeColor: 99, EyebrowColor: 99,
		MouthColor: 99, BeardColor: 99, GlassColor: 99, GlassType: 19}, r)

	// Byte 46 (height) and 47 (build) sit outside every touched field;
	// they must survive Pack untouched.
	if r.Bytes()[46] != before[46] || r.Bytes()[47] != before[47] {
		t.Errorf("Pack touched unrelated bytes 46/47: got %d/%d, want %d/%d",
			r.Bytes()[46], r.Bytes()[47], before[46], before[47])
	}
}
