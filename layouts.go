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

// recordLayout describes the coded-field shape of one data type's record:
// which fields are entropy-coded per sample (in header parameter-pair
// order), whether the record carries a per-exposure flags word ahead of
// its samples, and whether a 12-byte multi-entry header precedes the
// payload (every data type except plain imagette carries one — see
// DESIGN.md Open Question 5).
type recordLayout struct {
	fields           []string
	exposureFlagBits uint8 // 0 if the type has no exposure-flags field
	multiEntryHeader bool
}

//nolint:gochecknoglobals
var layouts = map[DataType]recordLayout{
	DataTypeImagette:             {fields: []string{"pixel"}, multiEntryHeader: false},
	DataTypeImagetteAdaptive:     {fields: []string{"pixel"}, multiEntryHeader: true},
	DataTypeSaturatedImagette:    {fields: []string{"pixel"}, multiEntryHeader: true},
	DataTypeFCamImagette:         {fields: []string{"pixel"}, multiEntryHeader: true},
	DataTypeFCamImagetteAdaptive: {fields: []string{"pixel"}, multiEntryHeader: true},

	DataTypeShortFx:            {fields: []string{"fx"}, exposureFlagBits: 8, multiEntryHeader: true},
	DataTypeShortFxEfx:         {fields: []string{"fx", "efx"}, exposureFlagBits: 8, multiEntryHeader: true},
	DataTypeShortFxNcob:        {fields: []string{"fx", "ncob_x", "ncob_y"}, exposureFlagBits: 8, multiEntryHeader: true},
	DataTypeShortFxEfxNcobEcob: {
		fields:           []string{"fx", "efx", "ncob_x", "ncob_y", "ecob_x", "ecob_y"},
		exposureFlagBits: 8, multiEntryHeader: true,
	},

	DataTypeFastFx:            {fields: []string{"fx"}, exposureFlagBits: 16, multiEntryHeader: true},
	DataTypeFastFxEfx:         {fields: []string{"fx", "efx"}, exposureFlagBits: 16, multiEntryHeader: true},
	DataTypeFastFxNcob:        {fields: []string{"fx", "ncob_x", "ncob_y"}, exposureFlagBits: 16, multiEntryHeader: true},
	DataTypeFastFxEfxNcobEcob: {
		fields:           []string{"fx", "efx", "ncob_x", "ncob_y", "ecob_x", "ecob_y"},
		exposureFlagBits: 16, multiEntryHeader: true,
	},

	DataTypeLongFx:            {fields: []string{"fx"}, exposureFlagBits: 24, multiEntryHeader: true},
	DataTypeLongFxEfx:         {fields: []string{"fx", "efx"}, exposureFlagBits: 24, multiEntryHeader: true},
	DataTypeLongFxNcob:        {fields: []string{"fx", "ncob_x", "ncob_y"}, exposureFlagBits: 24, multiEntryHeader: true},
	DataTypeLongFxEfxNcobEcob: {
		// The longest record: base six fields plus one flux-variance word,
		// matching spec §3's "seven parameter pairs" for this type.
		fields:           []string{"fx", "efx", "ncob_x", "ncob_y", "ecob_x", "ecob_y", "fx_variance"},
		exposureFlagBits: 24, multiEntryHeader: true,
	},

	DataTypeOffset:         {fields: []string{"offset"}, multiEntryHeader: true},
	DataTypeBackground:     {fields: []string{"background"}, multiEntryHeader: true},
	DataTypeSmearing:       {fields: []string{"smearing"}, multiEntryHeader: true},
	DataTypeFCamOffset:     {fields: []string{"offset"}, multiEntryHeader: true},
	DataTypeFCamBackground: {fields: []string{"background"}, multiEntryHeader: true},

	DataTypeUnknown: {fields: []string{"raw"}, multiEntryHeader: true},
}

// FieldCountFor returns the number of entropy-coded fields (and therefore
// header golomb_par/spill parameter pairs) a data type's record carries.
func FieldCountFor(t DataType) int {
	return len(layouts[t].fields)
}

// multiEntryHeaderSize is the fixed size, in bytes, of the per-record
// multi-entry header that precedes the sample payload for every data type
// except plain imagette.
const multiEntryHeaderSize = 12
