// Copyright (C) 2020 Yaron Gvili and Gvili Tech Ltd.
//
// See the accompanying LICENSE.txt file for licensing information.

package swifft

import (
	"github.com/SnellerInc/swifft/internal/zvec"
)

// Element-wise algebra over Output. Every operation that can leave a
// lane outside [0, 256] ends in a modP, so composed hashes stay in
// canonical form and compare equal to directly-computed ones.

// ConstSet sets every element to v mod 257.
func (o *Output) ConstSet(v int16) {
	v = zvec.ModP16(v)
	for i := range o {
		o[i] = v
	}
}

// ConstAdd adds v to every element mod 257.
func (o *Output) ConstAdd(v int16) {
	for i := range o {
		o[i] = zvec.ModP16(o[i] + v)
	}
}

// ConstSub subtracts v from every element mod 257.
func (o *Output) ConstSub(v int16) {
	for i := range o {
		o[i] = zvec.ModP16(o[i] - v)
	}
}

// ConstMul multiplies every element by v mod 257. The operand must be
// small enough that lane*v fits in 16 bits.
func (o *Output) ConstMul(v int16) {
	for i := range o {
		o[i] = zvec.ModP16(o[i] * v)
	}
}

// Set copies x into o.
func (o *Output) Set(x *Output) {
	*o = *x
}

// Add adds x element-wise mod 257.
func (o *Output) Add(x *Output) {
	for i := range o {
		o[i] = zvec.ModP16(o[i] + x[i])
	}
}

// Sub subtracts x element-wise mod 257.
func (o *Output) Sub(x *Output) {
	for i := range o {
		o[i] = zvec.ModP16(o[i] - x[i])
	}
}

// Mul multiplies by x element-wise mod 257.
func (o *Output) Mul(x *Output) {
	for i := range o {
		o[i] = zvec.ModP16(o[i] * x[i])
	}
}

// ConstSetMultiple applies ConstSet per block with a per-block operand.
// It panics unless len(operand) == len(out).
func ConstSetMultiple(out []Output, operand []int16) {
	if len(operand) != len(out) {
		panic("swifft: block/operand count mismatch")
	}
	for i := range out {
		out[i].ConstSet(operand[i])
	}
}

// ConstAddMultiple applies ConstAdd per block with a per-block operand.
func ConstAddMultiple(out []Output, operand []int16) {
	if len(operand) != len(out) {
		panic("swifft: block/operand count mismatch")
	}
	for i := range out {
		out[i].ConstAdd(operand[i])
	}
}

// ConstSubMultiple applies ConstSub per block with a per-block operand.
func ConstSubMultiple(out []Output, operand []int16) {
	if len(operand) != len(out) {
		panic("swifft: block/operand count mismatch")
	}
	for i := range out {
		out[i].ConstSub(operand[i])
	}
}

// ConstMulMultiple applies ConstMul per block with a per-block operand.
func ConstMulMultiple(out []Output, operand []int16) {
	if len(operand) != len(out) {
		panic("swifft: block/operand count mismatch")
	}
	for i := range out {
		out[i].ConstMul(operand[i])
	}
}

// SetMultiple copies operand blocks into out blocks.
func SetMultiple(out, operand []Output) {
	if len(operand) != len(out) {
		panic("swifft: block count mismatch")
	}
	copy(out, operand)
}

// AddMultiple adds operand blocks into out blocks element-wise mod 257.
func AddMultiple(out, operand []Output) {
	if len(operand) != len(out) {
		panic("swifft: block count mismatch")
	}
	for i := range out {
		out[i].Add(&operand[i])
	}
}

// SubMultiple subtracts operand blocks from out blocks element-wise
// mod 257.
func SubMultiple(out, operand []Output) {
	if len(operand) != len(out) {
		panic("swifft: block count mismatch")
	}
	for i := range out {
		out[i].Sub(&operand[i])
	}
}

// MulMultiple multiplies out blocks by operand blocks element-wise
// mod 257.
func MulMultiple(out, operand []Output) {
	if len(operand) != len(out) {
		panic("swifft: block count mismatch")
	}
	for i := range out {
		out[i].Mul(&operand[i])
	}
}
