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

func TestBitReaderReadAcrossWordBoundary(t *testing.T) {
	// 0xDEADBEEF 0x01020304, read in chunks that straddle the first word.
	data := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x01, 0x02, 0x03, 0x04}
	br := NewBitReader(data)

	got, err := br.Read(28)
	if err != nil {
		t.Fatalf("Read(28): %v", err)
	}

	want := uint32(0xDEADBEE)
	if got != want {
		t.Fatalf("Read(28) = %#x, want %#x", got, want)
	}

	got, err = br.Read(12)
	if err != nil {
		t.Fatalf("Read(12): %v", err)
	}

	want = uint32(0xF01)
	if got != want {
		t.Fatalf("Read(12) after straddle = %#x, want %#x", got, want)
	}
}

func TestBitReaderPeekDoesNotAdvance(t *testing.T) {
	br := NewBitReader([]byte{0x80, 0x00, 0x00, 0x00})

	first, err := br.Peek(1)
	if err != nil {
		t.Fatalf("Peek(1): %v", err)
	}

	if first != 1 {
		t.Fatalf("Peek(1) = %d, want 1", first)
	}

	second, err := br.Peek(1)
	if err != nil {
		t.Fatalf("Peek(1) again: %v", err)
	}

	if second != first {
		t.Fatalf("Peek is not idempotent: got %d then %d", first, second)
	}
}

func TestBitReaderReadPastEndIsOverrun(t *testing.T) {
	br := NewBitReader([]byte{0xFF})

	if err := br.Advance(8); err != nil {
		t.Fatalf("Advance(8): %v", err)
	}

	if !br.ExactlyConsumed() {
		t.Fatalf("ExactlyConsumed() = false after consuming all real bits")
	}

	if _, err := br.Read(1); !errors.Is(err, ErrBitstreamOverrun) {
		t.Fatalf("Read past end = %v, want ErrBitstreamOverrun", err)
	}
}

func TestBitReaderRemainingBits(t *testing.T) {
	br := NewBitReader([]byte{0x00, 0x00})

	if got := br.RemainingBits(); got != 16 {
		t.Fatalf("RemainingBits() = %d, want 16", got)
	}

	if err := br.Advance(5); err != nil {
		t.Fatalf("Advance(5): %v", err)
	}

	if got := br.RemainingBits(); got != 11 {
		t.Fatalf("RemainingBits() after Advance(5) = %d, want 11", got)
	}
}

func TestBitReaderOverrunLeavesCursorUnmoved(t *testing.T) {
	br := NewBitReader([]byte{0x00})

	if _, err := br.Read(9); !errors.Is(err, ErrBitstreamOverrun) {
		t.Fatalf("Read(9) over an 8-bit buffer = %v, want ErrBitstreamOverrun", err)
	}

	if got := br.RemainingBits(); got != 8 {
		t.Fatalf("RemainingBits() after failed Read = %d, want 8 (cursor must not move)", got)
	}
}
