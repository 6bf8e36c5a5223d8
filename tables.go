// Copyright (C) 2020 Yaron Gvili and Gvili Tech Ltd.
//
// See the accompanying LICENSE.txt file for licensing information.

package swifft

// omega = 42 generates the multiplicative subgroup of order 2N in
// Z/257Z; omega^8 = 2, which is what turns the butterfly twiddles into
// the power-of-two shifts in the FFT kernel.
const omega = 42

// multipliers[8k+j] holds the centered representative of
// omega^(rev3(k)*(2j+1)). The bit-reversed row index matches the order
// in which the butterfly network emits DFT coefficients, so that
// coefficient 8k+j of a group is the transform at frequency j+8k.
// Row 0 is the identity and is skipped by the FFT kernel.
var multipliers = [N]int16{
	1, 1, 1, 1, 1, 1, 1, 1,
	-60, -120, 17, 34, 68, -121, 15, 30,
	-35, 44, -70, 88, 117, -81, -23, 95,
	44, 117, 95, -92, -11, 35, -88, 23,
	42, 72, 50, 49, 84, -113, 100, 98,
	50, 98, 79, 124, 58, 52, -42, 113,
	72, 84, 98, -57, 62, -99, 13, 58,
	49, -57, 124, 118, 104, -100, -62, -59,
}

// fftTable[(sign<<8|data)*8 : ...+8] holds, for each output lane j, the
// centered sum of (-1)^sign_c * bit_c(data) * 2^(c(2j+1)) over the 8
// bits of one input byte: the byte's aggregate contribution to the
// group transform before the cross-byte butterflies. Both this table
// and the multipliers store centered values in [-128, 128], which keeps
// the product and the butterfly layers inside int16.
var fftTable [256 * 256 * 8]int16

func init() {
	// powers of omega; bit c of an input byte lands 8c positions into
	// the transform, and omega^8 = 2, so its per-lane factor is
	// omega^(8c(2j+1))
	var omegaPow [2 * N]int16
	omegaPow[0] = 1
	for i := 1; i < len(omegaPow); i++ {
		omegaPow[i] = int16(int32(omegaPow[i-1]) * omega % P)
	}
	for s := 0; s < 256; s++ {
		for d := 0; d < 256; d++ {
			row := fftTable[(s<<8|d)*8:]
			for j := 0; j < 8; j++ {
				acc := 0
				for c := 0; c < 8; c++ {
					if d>>c&1 == 0 {
						continue
					}
					t := int(omegaPow[8*c*(2*j+1)%(2*N)])
					if s>>c&1 == 1 {
						acc -= t
					} else {
						acc += t
					}
				}
				row[j] = center(acc)
			}
		}
	}
}

// center reduces x mod P to the representative in [-128, 128].
func center(x int) int16 {
	x %= P
	if x < 0 {
		x += P
	}
	if x > P/2 {
		x -= P
	}
	return int16(x)
}
