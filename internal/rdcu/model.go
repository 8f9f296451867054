/*
   Copyright Mycophonic.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

//nolint:gosec // Integer conversions mirror the RDCU reference implementation's fixed-width arithmetic.
package rdcu

// MaxWeight is the weight scale ModelUpdater blends on: weight 0 trusts the
// decoded sample entirely, weight MaxWeight trusts the prior model entirely.
const MaxWeight = 16

// roundFwd and roundInv implement the lossy-rounding pair used both to fold
// the prior model into the reconstructed sample and to re-derive the
// blended next-step model from it.
func roundFwd(v uint32, shift uint8) uint32 { return v >> shift }
func roundInv(v uint32, shift uint8) uint32 { return v << shift }

// UpdateModel reconstructs one sample from a decoded, escape-resolved
// codeword d and blends the next-step model value.
//
// m is the prior model value (0 outside model compression modes); weight is
// in [0, MaxWeight] and controls how much of the next model comes from the
// freshly reconstructed sample versus the prior model; round is the
// lossy-rounding shift (0 for lossless); maxDataBits bounds the sample and
// model width.
//
// weight == MaxWeight is idempotent (nextModel == m); weight == 0 makes
// nextModel track the reconstructed sample exactly.
func UpdateModel(d, m uint32, weight, round, maxDataBits uint8) (sample, nextModel uint32) {
	mask := dataBitsMask(maxDataBits)

	// Mask x to max_data_bits low bits; overflow on the add is intended.
	x := uint32(Remap(d)+int32(roundFwd(m, round))) & mask

	sampleU := roundInv(x, round) & mask

	rf := roundFwd(sampleU, round)
	ri := roundInv(rf, round) & mask

	next := (uint64(ri)*uint64(MaxWeight-weight) + uint64(m)*uint64(weight)) / MaxWeight

	return sampleU, uint32(next)
}
