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

package rdcu

import (
	"errors"
	"testing"
)

func TestSelectPrimitive(t *testing.T) {
	cases := []struct {
		m    uint32
		want Primitive
	}{
		{1, PrimitiveRice},
		{2, PrimitiveRice},
		{16, PrimitiveRice},
		{3, PrimitiveGolomb},
		{5, PrimitiveGolomb},
		{0, PrimitiveGolomb},
	}

	for _, c := range cases {
		if got := SelectPrimitive(c.m); got != c.want {
			t.Errorf("SelectPrimitive(%d) = %v, want %v", c.m, got, c.want)
		}
	}
}

func TestDecodeUnary(t *testing.T) {
	// 0b1110... terminates after three ones: value=3, consumed=4.
	br := NewBitReader([]byte{0xE0, 0x00})

	value, consumed, err := DecodeUnary(br, 32)
	if err != nil {
		t.Fatalf("DecodeUnary: %v", err)
	}

	if value != 3 || consumed != 4 {
		t.Fatalf("DecodeUnary = (%d, %d), want (3, 4)", value, consumed)
	}
}

func TestDecodeUnaryTooLong(t *testing.T) {
	br := NewBitReader([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0x00})

	if _, _, err := DecodeUnary(br, 8); !errors.Is(err, ErrCodewordTooLong) {
		t.Fatalf("DecodeUnary over max_cw_len = %v, want ErrCodewordTooLong", err)
	}
}

func TestDecodeRice(t *testing.T) {
	// k=1: stream 0b10000000... -> q=1 (one leading one), r=0 -> value=2.
	br := NewBitReader([]byte{0x80, 0x00, 0x00, 0x00})

	value, consumed, err := DecodeRice(br, 1, 32)
	if err != nil {
		t.Fatalf("DecodeRice: %v", err)
	}

	if value != 2 || consumed != 3 {
		t.Fatalf("DecodeRice(k=1) = (%d, %d), want (2, 3)", value, consumed)
	}
}

// TestDecodeGolomb exercises m=3 (k=1, cutoff=1), a non-power-of-two
// parameter that forces the peek-then-conditionally-advance branch: the
// short (k-bit) codeword must consume one fewer bit than the long one, so
// an implementation that unconditionally reads k+1 bits would corrupt the
// cursor for every short codeword that follows.
func TestDecodeGolomb(t *testing.T) {
	cases := []struct {
		name    string
		data    []byte
		m       uint32
		value   uint32
		consumed uint8
	}{
		{"long codeword, q=0", []byte{0x40, 0x00, 0x00, 0x00}, 3, 1, 3},
		{"long codeword, q=1", []byte{0xA0, 0x00, 0x00, 0x00}, 3, 4, 4},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			br := NewBitReader(c.data)

			value, consumed, err := DecodeGolomb(br, c.m, 32)
			if err != nil {
				t.Fatalf("DecodeGolomb: %v", err)
			}

			if value != c.value || consumed != c.consumed {
				t.Fatalf("DecodeGolomb = (%d, %d), want (%d, %d)", value, consumed, c.value, c.consumed)
			}
		})
	}
}

func TestDecodeGolombShortCodewordDoesNotOverconsume(t *testing.T) {
	// m=3, k=1, cutoff=1. q=0, then peek(2) must choose the k-bit (short)
	// branch whenever r1 < cutoff, i.e. the top of the two peeked bits is 0.
	// Bits: 0 (q terminator) 0 (r1=0, short branch) 1 (next codeword's q=1) 0
	// ... — decoding must stop after 2 bits, leaving the third bit (the next
	// codeword's unary run) untouched.
	br := NewBitReader([]byte{0b00100000, 0x00, 0x00, 0x00})

	value, consumed, err := DecodeGolomb(br, 3, 32)
	if err != nil {
		t.Fatalf("DecodeGolomb: %v", err)
	}

	if consumed != 2 {
		t.Fatalf("consumed = %d, want 2 (short codeword must not read the extra bit)", consumed)
	}

	// q=0, r1=0 (top peeked bit), so value = q*m + r1 = 0.
	if value != 0 {
		t.Fatalf("value = %d, want 0", value)
	}

	next, nextConsumed, err := DecodeUnary(br, 32)
	if err != nil {
		t.Fatalf("DecodeUnary after short Golomb codeword: %v", err)
	}

	if next != 1 || nextConsumed != 2 {
		t.Fatalf("next codeword = (%d, %d), want (1, 2); cursor was left in the wrong place", next, nextConsumed)
	}
}

func TestDecodeFixed(t *testing.T) {
	br := NewBitReader([]byte{0b10110000})

	value, consumed, err := DecodeFixed(br, 4, 32)
	if err != nil {
		t.Fatalf("DecodeFixed: %v", err)
	}

	if value != 0b1011 || consumed != 4 {
		t.Fatalf("DecodeFixed = (%d, %d), want (11, 4)", value, consumed)
	}
}

func TestDecodeBaseDispatch(t *testing.T) {
	br := NewBitReader([]byte{0b10110000})

	value, err := DecodeBase(br, PrimitiveFixed, 4, 32)
	if err != nil {
		t.Fatalf("DecodeBase(Fixed): %v", err)
	}

	if value != 0b1011 {
		t.Fatalf("DecodeBase(Fixed) = %d, want 11", value)
	}
}
