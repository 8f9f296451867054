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

import "errors"

// RDCU decoder error sentinels.
//
//revive:disable:exported
var (
	ErrBitstreamOverrun   = errors.New("rdcu: bitstream overrun")
	ErrCursorOverflow     = errors.New("rdcu: bit cursor overflow")
	ErrCodewordTooLong    = errors.New("rdcu: codeword exceeds max_cw_len")
	ErrEscapeCorrupt      = errors.New("rdcu: escape follow-up value is invalid")
	ErrUnknownDataType    = errors.New("rdcu: unknown data type tag")
	ErrUnknownCompression = errors.New("rdcu: unknown compression mode")
	ErrRawModeMismatch    = errors.New("rdcu: raw_bit does not match cmp_mode")
	ErrOriginalSizeMismatch = errors.New("rdcu: original_size does not match data type/sample count")
	ErrPayloadAlignment   = errors.New("rdcu: compressed payload size is not word-aligned")
	ErrGolombParZero      = errors.New("rdcu: golomb_par must be nonzero")
	ErrMaxDataBitsRange   = errors.New("rdcu: max_data_bits out of range")
	ErrUnknownTableVersion = errors.New("rdcu: max_used_bits table version is not registered")
	ErrFieldWidthOverflow  = errors.New("rdcu: value does not fit its field width")
	ErrModelBufferMissing  = errors.New("rdcu: model buffer required but not supplied")
)
