// Copyright (C) 2020 Yaron Gvili and Gvili Tech Ltd.
//
// See the accompanying LICENSE.txt file for licensing information.

package swifft

import (
	"github.com/SnellerInc/swifft/internal/zvec"
)

// maxWidth is the widest supported vector, in 16-bit lanes.
const maxWidth = 32

// fftKernel transforms m 8-byte groups of input and sign into N*m
// coefficients, o groups at a time. Each group of 8 bytes is expanded
// through the lookup table into eight 8-lane contributions, twiddled by
// the multiplier table, and run through three layers of radix-2
// butterflies with power-of-two twiddles between layers. The
// interleaved qReduce/shift schedule keeps every lane inside int16; see
// the table comments in tables.go for the ranges involved.
func fftKernel(o int, input, sign []byte, m int, fftout []int16) {
	w := 8 * o
	in := input[:8*m]
	sg := sign[:8*m]
	out := fftout[:N*m]

	var v [8][maxWidth]int16
	for i := 0; i < m/o; i++ {
		for j := 0; j < o; j++ {
			for k := 0; k < 8; k++ {
				h := int(sg[8*j+k])<<8 | int(in[8*j+k])
				row := fftTable[h*8 : h*8+8]
				if k == 0 {
					// multiplier row 0 is all ones
					copy(v[0][8*j:8*j+8], row)
					continue
				}
				mul := multipliers[8*k : 8*k+8]
				for l := 0; l < 8; l++ {
					v[k][8*j+l] = row[l] * mul[l]
				}
			}
		}
		in, sg = in[w:], sg[w:]

		v0, v1, v2, v3 := v[0][:w], v[1][:w], v[2][:w], v[3][:w]
		v4, v5, v6, v7 := v[4][:w], v[5][:w], v[6][:w], v[7][:w]

		zvec.AddSub(v0, v1)
		zvec.AddSub(v2, v3)
		zvec.AddSub(v4, v5)
		zvec.AddSub(v6, v7)

		zvec.QReduce(v2)
		zvec.Shift(v3, 4)
		zvec.QReduce(v6)
		zvec.Shift(v7, 4)

		zvec.AddSub(v0, v2)
		zvec.AddSub(v1, v3)
		zvec.AddSub(v4, v6)
		zvec.AddSub(v5, v7)

		zvec.QReduce(v4)
		zvec.Shift(v5, 2)
		zvec.Shift(v6, 4)
		zvec.Shift(v7, 6)

		zvec.AddSub(v0, v4)
		zvec.AddSub(v1, v5)
		zvec.AddSub(v2, v6)
		zvec.AddSub(v3, v7)

		for k := 0; k < 8; k++ {
			zvec.QReduce(v[k][:w])
		}

		// scatter so that fftout is laid out identically at every
		// width: 8 coefficients per group, groups in input order
		for j := 0; j < o; j++ {
			for k := 0; k < 8; k++ {
				copy(out[:8], v[k][8*j:8*j+8])
				out = out[8:]
			}
		}
	}
}

// fftsumKernel accumulates the key-weighted FFT coefficients into N
// canonical output lanes. Each term is qReduced so the 32-term sums
// stay far from the int16 limits; safeMult handles the lone 256*128
// overflow case.
func fftsumKernel(o int, key, fftout []int16, m int, out []int16) {
	w := 8 * o
	nacc := 8 / o
	key = key[:N*m]
	fftout = fftout[:N*m]

	var acc [8][maxWidth]int16
	for i := 0; i < m; i++ {
		for j := 0; j < nacc; j++ {
			base := (i*nacc + j) * w
			f := fftout[base : base+w]
			k := key[base : base+w]
			a := acc[j][:w]
			for l := range a {
				a[l] += zvec.QReduce16(zvec.SafeMult16(f[l], k[l]))
			}
		}
	}
	for j := 0; j < nacc; j++ {
		a := acc[j][:w]
		zvec.ModP(a)
		copy(out[j*w:j*w+w], a)
	}
}
