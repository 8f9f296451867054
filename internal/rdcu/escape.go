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

// EscapeKind selects which outlier-escape policy wraps a base codeword.
type EscapeKind uint8

const (
	// EscapeNormal passes the base codeword through unchanged.
	EscapeNormal EscapeKind = iota
	// EscapeZero reserves codeword 0 as a signal that a raw max_data_bits
	// follow-up carries the true value.
	EscapeZero
	// EscapeMulti treats any codeword at or above the outlier threshold as
	// a signal that a variable-width raw follow-up carries the true value.
	EscapeMulti
)

// Decode applies the escape policy to a base codeword v already decoded
// from br, reading any follow-up bits the policy requires.
func (kind EscapeKind) Decode(br *BitReader, v uint32, maxDataBits uint8, outlier uint32) (uint32, error) {
	switch kind {
	case EscapeNormal:
		return v, nil
	case EscapeZero:
		return decodeZeroEscape(br, v, maxDataBits, outlier)
	case EscapeMulti:
		return decodeMultiEscape(br, v, maxDataBits, outlier)
	default:
		panic("rdcu: EscapeKind.Decode: unknown kind")
	}
}

// decodeZeroEscape implements the zero-escape policy: codeword 0 signals
// that a raw max_data_bits follow-up carries the true value; otherwise the
// base codeword itself is the raw value. Either way, the raw value is then
// decremented by one, wrapping modulo 2^max_data_bits — this single final
// decrement (not an escape-branch-only adjustment) is what reproduces the
// reference decoder's worked examples bit-for-bit.
func decodeZeroEscape(br *BitReader, v uint32, maxDataBits uint8, outlier uint32) (uint32, error) {
	raw := v

	if v == 0 {
		followUp, err := br.Read(maxDataBits)
		if err != nil {
			return 0, err
		}

		if followUp != 0 && followUp < outlier {
			return 0, ErrEscapeCorrupt
		}

		raw = followUp
	}

	return (raw - 1) & dataBitsMask(maxDataBits), nil
}

// decodeMultiEscape implements the multi-escape policy: a base codeword at
// or above outlier signals a raw follow-up of width 2*(v-outlier+1) bits,
// capped at round_up_even(max_data_bits). Follow-ups wider than 2 bits must
// have at least one of their top two bits set, guarding against a corrupt
// stream claiming an implausibly large escape for a small value; the
// narrowest (2-bit) follow-up is exempt from that check since it has no
// room to distinguish a legitimate small value from all-zero high bits.
func decodeMultiEscape(br *BitReader, v uint32, maxDataBits uint8, outlier uint32) (uint32, error) {
	if v < outlier {
		return v, nil
	}

	width := 2 * (v - outlier + 1)
	limit := uint32(roundUpEven(maxDataBits))

	if width > limit {
		return 0, ErrEscapeCorrupt
	}

	followUp, err := br.Read(uint8(width))
	if err != nil {
		return 0, err
	}

	if width > 2 {
		highBits := followUp >> (width - 2)
		if highBits == 0 {
			return 0, ErrEscapeCorrupt
		}
	}

	return followUp + outlier, nil
}

func roundUpEven(n uint8) uint8 {
	if n%2 != 0 {
		return n + 1
	}

	return n
}

// dataBitsMask returns a mask with the low n bits set (n in [1,32]).
func dataBitsMask(n uint8) uint32 {
	if n >= 32 {
		return 0xFFFFFFFF
	}

	return (uint32(1) << n) - 1
}
