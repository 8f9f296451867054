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

// Public sentinel errors for consumer error matching. Every error this
// package returns wraps exactly one of these via fmt.Errorf("%w: %w", ...),
// so callers can match with errors.Is regardless of the underlying cause.
var (
	// ErrShortBuffer indicates the compressed payload ended before the
	// decoder finished reading a codeword or a fixed-width field.
	ErrShortBuffer = errors.New("rdcu: short buffer")

	// ErrCorruptionDetected indicates the bitstream decoded to an
	// internally inconsistent value: an oversized codeword or a forbidden
	// escape follow-up.
	ErrCorruptionDetected = errors.New("rdcu: corruption detected")

	// ErrInvalidParameter indicates a caller- or header-supplied parameter
	// (golomb_par, max_data_bits, a table version) is out of range.
	ErrInvalidParameter = errors.New("rdcu: invalid parameter")

	// ErrUnsupportedDataType indicates the entity header names a data type
	// tag this decoder does not recognize.
	ErrUnsupportedDataType = errors.New("rdcu: unsupported data type")

	// ErrHeaderMismatch indicates the entity header's raw_bit, cmp_mode,
	// or original_size fields are mutually inconsistent.
	ErrHeaderMismatch = errors.New("rdcu: header mismatch")

	// ErrModelRequired indicates a model compression mode was selected but
	// the caller did not supply a model buffer.
	ErrModelRequired = errors.New("rdcu: model buffer required")
)
