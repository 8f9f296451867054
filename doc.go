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

// Package rdcu decodes telemetry entities produced by the PLATO mission's
// RDCU (Remote Decompression and Control Unit) compressor and its software
// counterpart.
//
// An entity is a header (Configuration) followed by a bitstream of
// entropy-coded samples, one record per data type (see DataType). The
// header names one compression mode for the whole entity — raw, differential
// (diff-zero/diff-multi), or model-assisted (model-zero/model-multi) — an
// escape policy pairs with the differential and model modes to carry
// outlier values too wide for their Rice/Golomb codeword width. Decompress
// parses a whole entity; DecompressRDCU decodes a bare hardware-compressor
// payload given its parameters out of band, since the hardware produces no
// header of its own. Both follow a caller-owned-buffer, two-phase contract:
// call with output == nil to probe the sample count, allocate output (and
// model_out, in model modes) to that size, then call again to decode.
// DecompressAlloc and DecompressRDCUAlloc wrap that contract for callers
// that don't need to reuse buffers across calls.
//
// Package internal/rdcu holds the bit-level machinery (BitReader,
// codeword decoders, escape policies, the residual mapper, and the model
// updater); this package wires that machinery to the 23 PLATO data types
// and their entity header format.
package rdcu
