// Copyright (C) 2020 Yaron Gvili and Gvili Tech Ltd.
//
// See the accompanying LICENSE.txt file for licensing information.

// Package zvec provides lane-wise arithmetic on vectors of 16-bit
// integers over the ring Z/257Z.
//
// A vector is an ordinary []int16; callers choose the lane width by
// slicing. Every function is branch-free per lane so that the same
// inputs produce the same outputs at every width.
package zvec

// QReduce16 reduces x mod 257 into the range [-127, 383]:
// (x mod 256) - floor(x/256).
func QReduce16(x int16) int16 {
	return (x & 255) - (x >> 8)
}

// Shift16 multiplies x by 2^s mod 257 while reducing its range by
// roughly 8-s bits: ((x << s) & 255) - (x >> (8-s)). s must be in [0,8).
func Shift16(x int16, s uint) int16 {
	return ((x << s) & 255) - (x >> (8 - s))
}

// eqMask returns all-ones if x == y and zero otherwise, without
// branching on lane values: d|-d has the sign bit set exactly when
// d != 0, and the arithmetic shift smears it across the lane.
func eqMask(x, y int16) int16 {
	d := x ^ y
	return ^((d | -d) >> 15)
}

// ModP16 reduces x into the canonical range [0, 256]. The representative
// -1 left by the double qReduce is fixed up to 256 with a lane mask
// rather than a branch, so composed results stay identical across
// backends.
func ModP16(x int16) int16 {
	t := QReduce16(QReduce16(x))
	return t ^ (eqMask(t, -1) & -257)
}

// SafeMult16 multiplies v (after a qReduce) by u mod 257. Intended for
// v in [-127, 383] and u in [-128, 128]; the only 16-bit overflow in
// that domain is 256*128 = 32768, which wraps to -32768 and is corrected
// by subtracting the comparison mask.
func SafeMult16(v, u int16) int16 {
	v = QReduce16(v)
	m := v * u
	return m - (eqMask(v, 256) & eqMask(u, 128))
}

// QReduce applies QReduce16 to every lane of v in place.
func QReduce(v []int16) {
	for i := range v {
		v[i] = QReduce16(v[i])
	}
}

// Shift applies Shift16 to every lane of v in place.
func Shift(v []int16, s uint) {
	for i := range v {
		v[i] = Shift16(v[i], s)
	}
}

// ModP applies ModP16 to every lane of v in place.
func ModP(v []int16) {
	for i := range v {
		v[i] = ModP16(v[i])
	}
}

// AddSub replaces (a, b) with (a+b, a-b) lane-wise.
func AddSub(a, b []int16) {
	for i := range a {
		x, y := a[i], b[i]
		b[i] = x - y
		a[i] = x + y
	}
}
