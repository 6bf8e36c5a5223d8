// Copyright (C) 2020 Yaron Gvili and Gvili Tech Ltd.
//
// See the accompanying LICENSE.txt file for licensing information.

//go:build !swifftdebug

package swifft

// assertCanonical is compiled out of release builds; canonical form is
// the caller's responsibility there.
func assertCanonical(o *Output) {}
