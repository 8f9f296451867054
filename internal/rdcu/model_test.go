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

import "testing"

func TestUpdateModelReconstruction(t *testing.T) {
	// round=0: sample = Remap(d) + m, masked to max_data_bits.
	// d=2 is even -> Remap(2)=1. m=10. sample = 11.
	sample, _ := UpdateModel(2, 10, 8, 0, 8)
	if sample != 11 {
		t.Fatalf("UpdateModel sample = %d, want 11", sample)
	}
}

func TestUpdateModelWeightMaxWeightIsIdempotent(t *testing.T) {
	// weight == MaxWeight trusts the prior model entirely: next_model == m
	// regardless of the decoded value or rounding.
	for _, d := range []uint32{0, 1, 2, 100, 0xFFFF} {
		for _, m := range []uint32{0, 1, 5, 255} {
			_, next := UpdateModel(d, m, MaxWeight, 0, 16)
			if next != m {
				t.Fatalf("UpdateModel(d=%d, m=%d, weight=MaxWeight) next=%d, want %d", d, m, next, m)
			}
		}
	}
}

func TestUpdateModelWeightZeroTracksSample(t *testing.T) {
	// weight == 0 with round == 0: next_model tracks the reconstructed
	// sample exactly, since round_inv(round_fwd(sample, 0), 0) == sample.
	sample, next := UpdateModel(4, 20, 0, 0, 8)
	if next != sample {
		t.Fatalf("UpdateModel weight=0 next=%d, want sample=%d", next, sample)
	}
}

func TestUpdateModelBlendFormula(t *testing.T) {
	// weight=8 (halfway): next = (ri*8 + m*8) / 16 = (ri+m)/2, truncated.
	sample, next := UpdateModel(0, 10, 8, 0, 8)
	// d=0 is even -> Remap(0)=0, so sample = 0 + 10 = 10.
	if sample != 10 {
		t.Fatalf("sample = %d, want 10", sample)
	}

	want := (uint32(10)*8 + uint32(10)*8) / 16
	if next != want {
		t.Fatalf("next = %d, want %d", next, want)
	}
}
