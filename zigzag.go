// Copyright The Prometheus Authors
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package zigzag implements the zigzag mapping between signed and unsigned
// integers of the same width:
//
//	+0 <-> 0
//	-1 <-> 1
//	+1 <-> 2
//	-2 <-> 3
//	+2 <-> 4
//
// Small magnitudes of either sign map to small unsigned values, which is
// what variable-length integer codecs want to see. It is the same format
// used by protocol buffers. The format is described at
// https://protobuf.dev/programming-guides/encoding/#signed-ints
package zigzag

import "unsafe"

// Signed is the set of signed integer types the codec covers.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the set of unsigned integer types the codec covers.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Encode maps a signed integer to an unsigned integer of the same width.
// If x >= 0, the result is 2*x.
// If x < 0, the result is -2*x - 1.
// The formulae above are in terms of ideal integers, with no overflow: the
// shift/xor form is exact over the whole domain, including the minimum value
// of S, where negating would wrap.
//
// U must be the same width as S. The fixed-width functions below pair the
// types correctly and are the preferred surface.
func Encode[U Unsigned, S Signed](x S) U {
	return U(x<<1) ^ U(x>>(unsafe.Sizeof(x)*8-1))
}

// Decode maps a zigzag-encoded unsigned integer back to the signed integer
// it was encoded from.
// If u%2 == 0, the result is u/2.
// If u%2 == 1, the result is -(u+1)/2.
//
// S must be the same width as U.
func Decode[S Signed, U Unsigned](u U) S {
	return S(u>>1) ^ -S(u&1)
}

// Encode8 zigzag-encodes an 8-bit signed integer.
func Encode8(x int8) uint8 { return Encode[uint8](x) }

// Encode16 zigzag-encodes a 16-bit signed integer.
func Encode16(x int16) uint16 { return Encode[uint16](x) }

// Encode32 zigzag-encodes a 32-bit signed integer.
func Encode32(x int32) uint32 { return Encode[uint32](x) }

// Encode64 zigzag-encodes a 64-bit signed integer.
func Encode64(x int64) uint64 { return Encode[uint64](x) }

// EncodeInt zigzag-encodes a word-sized signed integer.
func EncodeInt(x int) uint { return Encode[uint](x) }

// Decode8 inverts Encode8.
func Decode8(u uint8) int8 { return Decode[int8](u) }

// Decode16 inverts Encode16.
func Decode16(u uint16) int16 { return Decode[int16](u) }

// Decode32 inverts Encode32.
func Decode32(u uint32) int32 { return Decode[int32](u) }

// Decode64 inverts Encode64.
func Decode64(u uint64) int64 { return Decode[int64](u) }

// DecodeInt inverts EncodeInt.
func DecodeInt(u uint) int { return Decode[int](u) }
