// Copyright (C) 2020 Yaron Gvili and Gvili Tech Ltd.
//
// See the accompanying LICENSE.txt file for licensing information.

package swifft

import (
	"fmt"
	"strings"
)

// Blocks print as big-endian numbers: the whole array reversed, in
// space-separated groups of eight elements (sixteen bytes for a
// Compact), wrapped in braces.

// String formats the input block as hex.
func (in *Input) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i := len(in) - 1; i >= 0; i-- {
		fmt.Fprintf(&b, "%02X", in[i])
		if i > 0 && i%8 == 0 {
			b.WriteByte(' ')
		}
	}
	b.WriteByte('}')
	return b.String()
}

// String formats the hash value as hex, one 16-bit group per element.
func (o *Output) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i := len(o) - 1; i >= 0; i-- {
		fmt.Fprintf(&b, "%04X", uint16(o[i]))
		if i > 0 && i%8 == 0 {
			b.WriteByte(' ')
		}
	}
	b.WriteByte('}')
	return b.String()
}

// String formats the compact digest as hex.
func (c *Compact) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i := len(c) - 1; i >= 0; i-- {
		fmt.Fprintf(&b, "%02X", c[i])
		if i > 0 && i%16 == 0 {
			b.WriteByte(' ')
		}
	}
	b.WriteByte('}')
	return b.String()
}

// Bytes returns the little-endian byte form of the hash value, its
// 128-byte wire layout. In canonical form the high byte of a lane is
// nonzero only for the value 256.
func (o *Output) Bytes() [OutputSize]byte {
	var b [OutputSize]byte
	for i, v := range o {
		b[2*i] = byte(v)
		b[2*i+1] = byte(uint16(v) >> 8)
	}
	return b
}
