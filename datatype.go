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

import "fmt"

// DataType identifies the telemetry record shape an entity's payload holds.
// The 23 tags enumerated here are the full set named in the data-sheet
// listing this decoder is built from (see DESIGN.md Open Question 5).
type DataType uint8

const (
	DataTypeImagette DataType = iota
	DataTypeImagetteAdaptive
	DataTypeSaturatedImagette
	DataTypeFCamImagette
	DataTypeFCamImagetteAdaptive

	DataTypeShortFx
	DataTypeShortFxEfx
	DataTypeShortFxNcob
	DataTypeShortFxEfxNcobEcob

	DataTypeFastFx
	DataTypeFastFxEfx
	DataTypeFastFxNcob
	DataTypeFastFxEfxNcobEcob

	DataTypeLongFx
	DataTypeLongFxEfx
	DataTypeLongFxNcob
	DataTypeLongFxEfxNcobEcob

	DataTypeOffset
	DataTypeBackground
	DataTypeSmearing

	DataTypeFCamOffset
	DataTypeFCamBackground

	DataTypeUnknown

	dataTypeCount // sentinel, not a valid tag
)

//nolint:gochecknoglobals
var dataTypeNames = [dataTypeCount]string{
	DataTypeImagette:              "imagette",
	DataTypeImagetteAdaptive:      "imagette_adaptive",
	DataTypeSaturatedImagette:     "saturated_imagette",
	DataTypeFCamImagette:          "f_cam_imagette",
	DataTypeFCamImagetteAdaptive:  "f_cam_imagette_adaptive",
	DataTypeShortFx:               "short_fx",
	DataTypeShortFxEfx:            "short_fx_efx",
	DataTypeShortFxNcob:           "short_fx_ncob",
	DataTypeShortFxEfxNcobEcob:    "short_fx_efx_ncob_ecob",
	DataTypeFastFx:                "fast_fx",
	DataTypeFastFxEfx:             "fast_fx_efx",
	DataTypeFastFxNcob:            "fast_fx_ncob",
	DataTypeFastFxEfxNcobEcob:     "fast_fx_efx_ncob_ecob",
	DataTypeLongFx:                "long_fx",
	DataTypeLongFxEfx:             "long_fx_efx",
	DataTypeLongFxNcob:            "long_fx_ncob",
	DataTypeLongFxEfxNcobEcob:     "long_fx_efx_ncob_ecob",
	DataTypeOffset:                "offset",
	DataTypeBackground:            "background",
	DataTypeSmearing:              "smearing",
	DataTypeFCamOffset:            "f_cam_offset",
	DataTypeFCamBackground:        "f_cam_background",
	DataTypeUnknown:               "unknown",
}

// String implements fmt.Stringer for diagnostics and test failure messages.
func (t DataType) String() string {
	if t >= dataTypeCount {
		return fmt.Sprintf("DataType(%d)", uint8(t))
	}

	return dataTypeNames[t]
}

// ParseDataType validates a raw 15-bit header tag against the known set.
func ParseDataType(raw uint32) (DataType, error) {
	if raw >= uint32(dataTypeCount) {
		return 0, fmt.Errorf("%w: tag %d", ErrUnsupportedDataType, raw)
	}

	return DataType(raw), nil
}

// rdcuCappedMaxCwLen is 16 for the four data types the hardware compressor
// serves directly, 32 for everything else (§4.6). f_cam_imagette_adaptive
// is explicitly excluded: only the plain f_cam_imagette variant is capped.
//
//nolint:gochecknoglobals
var rdcuCappedMaxCwLen = map[DataType]bool{
	DataTypeImagette:          true,
	DataTypeImagetteAdaptive:  true,
	DataTypeSaturatedImagette: true,
	DataTypeFCamImagette:      true,
}

func maxCwLenFor(t DataType) uint8 {
	if rdcuCappedMaxCwLen[t] {
		return 16
	}

	return 32
}
