// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package state

import "strconv"

// Value is the value of one property. Object names, masks, booleans and
// enumerations all fit in 64 bits.
type Value uint64

// Bool converts a boolean into a Value.
func Bool(b bool) Value {
	if b {
		return 1
	}
	return 0
}

// Int32 converts a signed 32-bit integer into a Value without sign extension.
func Int32(i int32) Value {
	return Value(uint32(i))
}

// Bool reports whether v is non-zero.
func (v Value) Bool() bool {
	return v != 0
}

// Uint32 returns the low 32 bits of v.
func (v Value) Uint32() uint32 {
	return uint32(v)
}

// Int32 returns the low 32 bits of v as a signed integer.
func (v Value) Int32() int32 {
	return int32(uint32(v))
}

// FormatDecimal formats v as an unsigned decimal number.
func FormatDecimal(v Value) string {
	return strconv.FormatUint(uint64(v), 10)
}

// FormatHex formats v as a 0x-prefixed hexadecimal number.
func FormatHex(v Value) string {
	return "0x" + strconv.FormatUint(uint64(v), 16)
}

// FormatBool formats v as true or false.
func FormatBool(v Value) string {
	return strconv.FormatBool(v.Bool())
}

// FormatInt32 formats v as a signed 32-bit decimal number.
func FormatInt32(v Value) string {
	return strconv.FormatInt(int64(v.Int32()), 10)
}
