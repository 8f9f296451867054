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
	"math"
	"testing"
)

func TestRemap(t *testing.T) {
	golden := []struct {
		u    uint32
		want int32
	}{
		{0, 0},
		{1, -1},
		{2, 1},
		{3, -2},
		{4, 2},
		{0xFFFFFFFE, 0x7FFFFFFF},
		{0xFFFFFFFF, math.MinInt32},
	}

	for _, c := range golden {
		if got := Remap(c.u); got != c.want {
			t.Errorf("Remap(%#x) = %d, want %d", c.u, got, c.want)
		}
	}
}

func TestMapToPos(t *testing.T) {
	golden := []struct {
		x     int32
		width uint8
		want  uint32
	}{
		{0, 32, 0},
		{-1, 32, 1},
		{1, 32, 2},
		{-2, 32, 3},
		{2, 32, 4},
		{math.MinInt32, 32, 0xFFFFFFFF},
	}

	for _, c := range golden {
		if got := MapToPos(c.x, c.width); got != c.want {
			t.Errorf("MapToPos(%d, %d) = %#x, want %#x", c.x, c.width, got, c.want)
		}
	}
}

func TestMapRemapRoundTrip(t *testing.T) {
	const width = 16

	for x := int32(-(1 << (width - 1))); x < (1 << (width - 1)); x++ {
		u := MapToPos(x, width)

		got := Remap(u)
		if got != x {
			t.Fatalf("Remap(MapToPos(%d)) = %d, want %d", x, got, x)
		}
	}
}

func TestMapToPosTruncatesToWidth(t *testing.T) {
	got := MapToPos(100, 4)
	if got != dataBitsMask(4)&(100*2) {
		t.Fatalf("MapToPos(100, 4) = %d, want masked to 4 bits", got)
	}
}
