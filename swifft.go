// Copyright (C) 2020 Yaron Gvili and Gvili Tech Ltd.
//
// See the accompanying LICENSE.txt file for licensing information.

// Package swifft implements the SWIFFT compression function, a provably
// one-way, additively-homomorphic hash based on lattice assumptions.
//
// SWIFFT maps a 2048-bit input block (optionally with a parallel sign
// block that negates individual bit contributions) to 64 elements of
// Z/257Z, stored one per int16 lane of an Output. Outputs compose under
// element-wise arithmetic mod 257: for inputs x and y with disjoint bit
// support, the hash of x^y equals the lane-wise sum of the hashes of x
// and y. An Output can also be reduced to a 64-byte Compact digest for
// storage or comparison; compact digests do not compose.
//
// All functions are pure and safe for concurrent use on disjoint
// buffers. The package-level entry points use the widest vector backend
// the host advertises; see Backends.
package swifft

// Fundamental parameters of the transform. The input is treated as M
// groups of 64 bits; each group is transformed by a 64-point FFT over
// Z/257Z and combined with the key by an inner product.
const (
	N = 64  // FFT size; number of output elements
	M = 32  // input groups per block
	P = 257 // field modulus

	InputSize   = 256 // input and sign block size in bytes
	OutputSize  = 128 // output block size in bytes (N int16 lanes)
	CompactSize = 64  // compact digest size in bytes

	// Alignment is the buffer alignment native SIMD kernels would
	// require. The emulated backends in this package accept any
	// alignment.
	Alignment = 64
)

// Input is one 2048-bit input block. The same type carries sign blocks:
// a 1-bit in a sign block negates the contribution of the matching
// input bit. ZeroSign is the canonical all-positive sign block.
type Input [InputSize]byte

// Output is a hash value: N elements of Z/257Z in canonical form, each
// lane in [0, 256]. Outputs are composable with Add, Sub, Mul and the
// Const variants.
type Output [N]int16

// Compact is the 512-bit base-256 reduction of an Output. It is not
// composable with other compact digests.
type Compact [CompactSize]byte

// ZeroSign is the all-zero sign block.
var ZeroSign Input

// Compute hashes one input block with an all-zero sign block.
func Compute(in *Input, out *Output) {
	defaultBackend.Compute(in, out)
}

// ComputeSigned hashes one input block with a caller-supplied sign
// block.
func ComputeSigned(in, sign *Input, out *Output) {
	defaultBackend.ComputeSigned(in, sign, out)
}

// ComputeMultiple hashes len(in) independent input blocks.
// It panics unless len(out) == len(in).
func ComputeMultiple(in []Input, out []Output) {
	defaultBackend.ComputeMultiple(in, out)
}

// ComputeMultipleSigned hashes len(in) independent signed input blocks.
// It panics unless len(sign) == len(in) and len(out) == len(in).
func ComputeMultipleSigned(in, sign []Input, out []Output) {
	defaultBackend.ComputeMultipleSigned(in, sign, out)
}

// FFT computes the FFT phase over m 8-byte groups of input and sign,
// writing N*m coefficients to fftout. The one-shot path uses m = M;
// arbitrary m is accepted as long as it is a multiple of the backend's
// group count.
func FFT(input, sign []byte, m int, fftout []int16) {
	defaultBackend.FFT(input, sign, m, fftout)
}

// FFTSum combines N*m FFT coefficients with an N*m-entry key into N
// canonical output lanes.
func FFTSum(key, fftout []int16, m int, out []int16) {
	defaultBackend.FFTSum(key, fftout, m, out)
}

// FFTMultiple runs the FFT phase for nblocks consecutive blocks of
// 8*m input and sign bytes each.
func FFTMultiple(nblocks int, input, sign []byte, m int, fftout []int16) {
	defaultBackend.FFTMultiple(nblocks, input, sign, m, fftout)
}

// FFTSumMultiple runs the keyed-sum phase for nblocks consecutive
// blocks of N*m coefficients each, against the same key.
func FFTSumMultiple(nblocks int, key, fftout []int16, m int, out []int16) {
	defaultBackend.FFTSumMultiple(nblocks, key, fftout, m, out)
}
