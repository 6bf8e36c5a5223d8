// Copyright (C) 2020 Yaron Gvili and Gvili Tech Ltd.
//
// See the accompanying LICENSE.txt file for licensing information.

package swifft

import (
	"golang.org/x/sys/cpu"
)

// A Backend computes every SWIFFT primitive at a fixed vector width.
// All backends produce bit-identical results; wider backends process
// more 8-byte input groups per butterfly pass. The group count must
// divide m in FFT calls, so the one-shot path (m = M = 32) works with
// every backend.
type Backend struct {
	name string
	o    int // 8-byte input groups per vector
}

// Name returns the backend identifier.
func (b *Backend) Name() string { return b.name }

// Width returns the backend's vector width in 16-bit lanes.
func (b *Backend) Width() int { return 8 * b.o }

var (
	scalarBackend = &Backend{name: "scalar", o: 1}
	avx2Backend   = &Backend{name: "avx2", o: 2}
	avx512Backend = &Backend{name: "avx512", o: 4}

	backendList = []*Backend{scalarBackend, avx2Backend, avx512Backend}

	defaultBackend = scalarBackend
)

func init() {
	// Pick the widest layout whose matching instruction set the host
	// advertises. The kernels are emulated, so this is a layout choice
	// rather than a hard requirement, but it keeps block batching
	// aligned with what the hardware would do natively.
	switch {
	case cpu.X86.HasAVX512F:
		defaultBackend = avx512Backend
	case cpu.X86.HasAVX2:
		defaultBackend = avx2Backend
	}
}

// Backends returns all compiled backends, narrowest first. Every
// backend is available on every host.
func Backends() []*Backend {
	return backendList
}

// Default returns the backend used by the package-level entry points.
func Default() *Backend {
	return defaultBackend
}

// FFT computes the FFT phase over m 8-byte groups of input and sign,
// writing N*m coefficients to fftout. m must be a multiple of the
// backend's group count.
func (b *Backend) FFT(input, sign []byte, m int, fftout []int16) {
	if m%b.o != 0 {
		panic("swifft: m is not a multiple of the backend group count")
	}
	fftKernel(b.o, input, sign, m, fftout)
}

// FFTSum combines N*m FFT coefficients with an N*m-entry key into N
// canonical output lanes.
func (b *Backend) FFTSum(key, fftout []int16, m int, out []int16) {
	fftsumKernel(b.o, key, fftout, m, out[:N])
}

// FFTMultiple runs the FFT phase for nblocks consecutive blocks of
// 8*m bytes each.
func (b *Backend) FFTMultiple(nblocks int, input, sign []byte, m int, fftout []int16) {
	for i := 0; i < nblocks; i++ {
		b.FFT(input[i*8*m:], sign[i*8*m:], m, fftout[i*N*m:])
	}
}

// FFTSumMultiple runs the keyed-sum phase for nblocks consecutive
// blocks of N*m coefficients each, against the same key.
func (b *Backend) FFTSumMultiple(nblocks int, key, fftout []int16, m int, out []int16) {
	for i := 0; i < nblocks; i++ {
		b.FFTSum(key, fftout[i*N*m:], m, out[i*N:])
	}
}

// compute is the shared one-shot body: FFT into a stack scratch, then
// the keyed sum with the built-in key.
func (b *Backend) compute(in, sign *Input, out *Output) {
	var fftout [N * M]int16
	fftKernel(b.o, in[:], sign[:], M, fftout[:])
	fftsumKernel(b.o, PIKey[:], fftout[:], M, out[:])
}

// Compute hashes one input block with an all-zero sign block.
func (b *Backend) Compute(in *Input, out *Output) {
	b.compute(in, &ZeroSign, out)
}

// ComputeSigned hashes one input block with a caller-supplied sign
// block.
func (b *Backend) ComputeSigned(in, sign *Input, out *Output) {
	b.compute(in, sign, out)
}

// ComputeMultiple hashes len(in) independent input blocks.
func (b *Backend) ComputeMultiple(in []Input, out []Output) {
	if len(out) != len(in) {
		panic("swifft: input/output block count mismatch")
	}
	for i := range in {
		b.compute(&in[i], &ZeroSign, &out[i])
	}
}

// Compact reduces one hash block to its 64-byte base-256 form. The
// compaction is lane-width independent, so every backend produces the
// same digest.
func (b *Backend) Compact(out *Output, digest *Compact) {
	compactBlock(out, digest)
}

// CompactMultiple compacts len(out) hash blocks into digest.
// It panics unless len(digest) == len(out).
func (b *Backend) CompactMultiple(out []Output, digest []Compact) {
	CompactMultiple(out, digest)
}

// ComputeMultipleSigned hashes len(in) independent signed input blocks.
func (b *Backend) ComputeMultipleSigned(in, sign []Input, out []Output) {
	if len(sign) != len(in) || len(out) != len(in) {
		panic("swifft: input/sign/output block count mismatch")
	}
	for i := range in {
		b.compute(&in[i], &sign[i], &out[i])
	}
}
