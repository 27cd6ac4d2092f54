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

package zigzag

import (
	num "github.com/shabbyrobe/go-num"
)

var (
	one128  = num.U128From64(1)
	ones128 = num.U128FromRaw(^uint64(0), ^uint64(0))
)

// Encode128 extends the codec to the 128-bit width using num.I128/num.U128.
//
// The sign mask x>>127 of the native shift/xor form is either all zeros or
// all ones, so XOR with it is either the identity or the complement of x<<1.
// This stays exact at the minimum I128, which maps to the maximum U128.
func Encode128(x num.I128) num.U128 {
	u := x.AsU128().Lsh(1)
	if x.Sign() < 0 {
		u = u.Xor(ones128)
	}
	return u
}

// Decode128 inverts Encode128.
func Decode128(u num.U128) num.I128 {
	s := u.Rsh(1)
	if u.And(one128) == one128 {
		s = s.Xor(ones128)
	}
	return s.AsI128()
}
