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
	"fmt"

	rdcuint "github.com/plato-rdcu/rdcu/internal/rdcu"
)

// imagetteFamily is the set of data types whose samples are raw 16-bit
// pixel magnitudes rather than 32-bit physical quantities.
//
//nolint:gochecknoglobals
var imagetteFamily = map[DataType]bool{
	DataTypeImagette:             true,
	DataTypeImagetteAdaptive:     true,
	DataTypeSaturatedImagette:    true,
	DataTypeFCamImagette:         true,
	DataTypeFCamImagetteAdaptive: true,
}

func sampleWidth(t DataType) uint8 {
	if imagetteFamily[t] {
		return 16
	}

	return 32
}

// bytesPerSample returns the decompressed byte size of one sample of t,
// including its exposure-flags word where the layout carries one.
func bytesPerSample(t DataType) int {
	layout := layouts[t]
	n := int(layout.exposureFlagBits+7) / 8
	n += len(layout.fields) * int(sampleWidth(t)) / 8

	return n
}

// Record is one decoded sample of a multi-field data type: ExposureFlags is
// 0 for types that carry no exposure-flags word, and Values holds one entry
// per field in the data type's layout order (layouts[t].fields). Decompress
// never allocates a Record's Values slice itself — the caller supplies it
// already sized to the data type's field count (see FieldCountFor).
type Record struct {
	ExposureFlags uint32
	Values        []uint32
}

// Result bundles DecompressAlloc's allocated buffers with the entity's
// header, for callers that don't need the buffer-owned hot path.
type Result struct {
	Config     Configuration
	MultiEntry []byte // view into entity's own 12-byte multi-entry header, nil for plain imagette
	Records    []Record
	NextModel  []Record // updated model state, populated only for model compression modes
}

// parseConfig reads entity's header in the two passes HeaderCodec requires:
// a peek at data_type (to learn the field count) followed by the full
// ParseHeader call. Every entry point below shares this rather than
// re-deriving it.
func parseConfig(entity []byte) (Configuration, recordLayout, error) {
	if len(entity) < fixedHeaderSize {
		return Configuration{}, recordLayout{}, fmt.Errorf("%w: need %d bytes for fixed header, have %d", ErrShortBuffer, fixedHeaderSize, len(entity))
	}

	peekType, err := ParseDataType(uint32(entity[3])<<7 | uint32(entity[4])>>1)
	if err != nil {
		return Configuration{}, recordLayout{}, err
	}

	layout, ok := layouts[peekType]
	if !ok {
		return Configuration{}, recordLayout{}, fmt.Errorf("%w: tag %s", ErrUnsupportedDataType, peekType)
	}

	config, err := ParseHeader(entity, len(layout.fields))
	if err != nil {
		return Configuration{}, recordLayout{}, err
	}

	return config, layout, nil
}

// DecompressedSize reports the decompressed byte size of entity's payload
// without decoding it, by reading the original_size header field directly.
func DecompressedSize(entity []byte) (int, error) {
	if len(entity) < 3 {
		return 0, fmt.Errorf("%w: need 3 bytes for original_size, have %d", ErrShortBuffer, len(entity))
	}

	return int(readUint24(entity[0:3])), nil
}

// Decompress decodes entity under a caller-owned-buffer, two-phase
// contract: call it once with output == nil to probe. The probe validates
// the header and the model-mode requirement and returns only the sample
// count — it reads no payload bits and allocates no output or model
// buffers (only the parsed header's parameter list). The caller then
// allocates output (and model_out, in model modes) to that many Records,
// each with its Values slice already sized to the data type's field count,
// and calls again with output set. No allocation happens inside the
// per-sample decode loop; the caller's buffers are the only memory it
// writes to.
//
// modelIn supplies the prior model state for model-zero/model-multi modes,
// one Record per sample; it is read only. modelOut, when non-nil, receives
// the updated model in the same shape and must have the same length as
// output; it is checked only on a decoding call. modelIn must already have
// length equal to the (probed) sample count whenever the entity's
// compression mode uses a model, even during a probe call. Returns the
// sample count, a view into entity's own 12-byte
// multi-entry header (nil for plain imagette and for a probe call), and any
// error.
func Decompress(entity []byte, modelIn, modelOut, output []Record) (int, []byte, error) {
	config, layout, err := parseConfig(entity)
	if err != nil {
		return 0, nil, err
	}

	bytesPerSamp := bytesPerSample(config.DataType)
	if bytesPerSamp == 0 || int(config.OriginalSize)%bytesPerSamp != 0 {
		return 0, nil, fmt.Errorf("%w: original_size %d not a multiple of sample size %d", ErrHeaderMismatch, config.OriginalSize, bytesPerSamp)
	}

	samples := int(config.OriginalSize) / bytesPerSamp

	usesModel := config.CmpMode == rdcuint.CmpModelZero || config.CmpMode == rdcuint.CmpModelMulti
	if usesModel && len(modelIn) != samples {
		return 0, nil, fmt.Errorf("%w: need %d model_in records, got %d", ErrModelRequired, samples, len(modelIn))
	}

	if output == nil {
		return samples, nil, nil
	}

	if len(output) != samples {
		return 0, nil, fmt.Errorf("%w: output has %d records, need %d", ErrInvalidParameter, len(output), samples)
	}

	if usesModel && modelOut != nil && len(modelOut) != samples {
		return 0, nil, fmt.Errorf("%w: model_out has %d records, need %d", ErrInvalidParameter, len(modelOut), samples)
	}

	payloadEnd := config.HeaderSize() + int(config.CmpDataSize)
	if len(entity) < payloadEnd {
		return 0, nil, fmt.Errorf("%w: need %d bytes for declared cmp_data_size, have %d", ErrShortBuffer, payloadEnd, len(entity))
	}

	payload := entity[config.HeaderSize():payloadEnd]

	var multiEntry []byte

	if layout.multiEntryHeader {
		if len(payload) < multiEntryHeaderSize {
			return 0, nil, fmt.Errorf("%w: need %d bytes for multi-entry header", ErrShortBuffer, multiEntryHeaderSize)
		}

		multiEntry = payload[:multiEntryHeaderSize]
		payload = payload[multiEntryHeaderSize:]
	}

	table, err := GetTable(config.MaxUsedBitsVersion)
	if err != nil {
		return 0, nil, err
	}

	maxDataBits := table[config.DataType]
	maxCwLen := maxCwLenFor(config.DataType)
	isRaw := config.CmpMode == rdcuint.CmpRaw
	rawWidth := sampleWidth(config.DataType)

	// Raw mode bypasses SetupBuilder/CodewordDecoder/EscapePolicy entirely
	// (§4.6, §4.8): the payload is just fixed-width samples, not codewords,
	// so the max_cw_len codeword-length cap (which bounds entropy-coded
	// symbols, not raw data width) must not apply to it. Raw fields are also
	// read at rawWidth (the data type's actual storage width, e.g. 16 bits
	// for imagette-family pixels), not maxDataBits: maxDataBits comes from
	// the max_used_bits table and can legitimately exceed the raw sample
	// width (the SAFE table reports 32 for every data type, imagette
	// included), so reading maxDataBits bits per raw field would consume
	// twice the actual payload and desync the stream.
	setups := make([]rdcuint.Setup, len(layout.fields))

	if !isRaw {
		for i, p := range config.Params {
			setup, serr := rdcuint.BuildSetup(config.CmpMode, p.GolombPar, p.Spill, maxDataBits, maxCwLen)
			if serr != nil {
				return 0, nil, fmt.Errorf("%w: %w", ErrInvalidParameter, serr)
			}

			setups[i] = setup
		}
	}

	br := rdcuint.NewBitReader(payload)

	for i := range samples {
		rec := &output[i]

		if len(rec.Values) != len(layout.fields) {
			return 0, nil, fmt.Errorf("%w: output[%d].Values has %d entries, need %d", ErrInvalidParameter, i, len(rec.Values), len(layout.fields))
		}

		if layout.exposureFlagBits > 0 {
			flags, ferr := br.Read(layout.exposureFlagBits)
			if ferr != nil {
				return 0, nil, mapBitError(ferr)
			}

			rec.ExposureFlags = flags
		}

		for j := range layout.fields {
			var d uint32

			var derr error

			if isRaw {
				d, derr = br.Read(rawWidth)
			} else {
				d, derr = setups[j].DecodeField(br, maxDataBits)
			}

			if derr != nil {
				return 0, nil, mapBitError(derr)
			}

			if !usesModel {
				rec.Values[j] = d

				continue
			}

			priorModel := modelIn[i].Values[j]

			sample, next := rdcuint.UpdateModel(d, priorModel, config.ModelValue, uint8(config.LossyRound), maxDataBits)
			rec.Values[j] = sample

			if modelOut != nil {
				if len(modelOut[i].Values) != len(layout.fields) {
					return 0, nil, fmt.Errorf("%w: model_out[%d].Values has %d entries, need %d", ErrInvalidParameter, i, len(modelOut[i].Values), len(layout.fields))
				}

				modelOut[i].Values[j] = next
			}
		}
	}

	// The payload may carry up to 31 bits of zero padding past the last
	// sample's final bit (cmp_data_size is word-aligned); that padding is
	// expected and is not a decode error, so no ExactlyConsumed check here.

	return samples, multiEntry, nil
}

// DecompressAlloc is Decompress's allocating convenience wrapper: it probes
// entity, allocates output (and model_out, in model modes) of the reported
// shape, decodes, and returns everything bundled in a Result. Prefer
// Decompress directly on a path that reuses buffers across calls.
func DecompressAlloc(entity []byte, modelIn []Record) (*Result, error) {
	config, layout, err := parseConfig(entity)
	if err != nil {
		return nil, err
	}

	samples, _, err := Decompress(entity, modelIn, nil, nil)
	if err != nil {
		return nil, err
	}

	output := make([]Record, samples)
	for i := range output {
		output[i].Values = make([]uint32, len(layout.fields))
	}

	var modelOut []Record

	if config.CmpMode == rdcuint.CmpModelZero || config.CmpMode == rdcuint.CmpModelMulti {
		modelOut = make([]Record, samples)
		for i := range modelOut {
			modelOut[i].Values = make([]uint32, len(layout.fields))
		}
	}

	_, multiEntry, err := Decompress(entity, modelIn, modelOut, output)
	if err != nil {
		return nil, err
	}

	return &Result{Config: config, MultiEntry: multiEntry, Records: output, NextModel: modelOut}, nil
}

// RDCUInfo supplies the out-of-band parameters a hardware-compressed
// payload's header would otherwise have carried.
type RDCUInfo struct {
	DataType   DataType
	CmpMode    rdcuint.CompressionMode
	ModelValue uint8
	LossyRound uint16
	Samples    int
	Params     []FieldParams
}

// DecompressRDCU decodes payload using the out-of-band parameters in info,
// for hardware-compressed entities that carry no header of their own, under
// the same caller-owned-buffer contract as Decompress (output == nil
// probes).
func DecompressRDCU(payload []byte, info RDCUInfo, modelIn, modelOut, output []Record) (int, []byte, error) {
	layout, ok := layouts[info.DataType]
	if !ok {
		return 0, nil, fmt.Errorf("%w: tag %s", ErrUnsupportedDataType, info.DataType)
	}

	if len(info.Params) != len(layout.fields) {
		return 0, nil, fmt.Errorf("%w: need %d field params, got %d", ErrInvalidParameter, len(layout.fields), len(info.Params))
	}

	cfg := Configuration{
		OriginalSize:       uint32(info.Samples * bytesPerSample(info.DataType)),
		DataType:           info.DataType,
		RawBit:             info.CmpMode == rdcuint.CmpRaw,
		CmpMode:            info.CmpMode,
		ModelValue:         info.ModelValue,
		MaxUsedBitsVersion: 0,
		LossyRound:         info.LossyRound,
		CmpDataSize:        uint32(len(payload)),
		Params:             info.Params,
	}

	header, err := WriteHeader(cfg)
	if err != nil {
		return 0, nil, err
	}

	entity := append(header, payload...) //nolint:gocritic // header is a freshly allocated, owned buffer

	return Decompress(entity, modelIn, modelOut, output)
}

// DecompressRDCUAlloc is DecompressRDCU's allocating convenience wrapper,
// the RDCU-payload counterpart to DecompressAlloc.
func DecompressRDCUAlloc(payload []byte, info RDCUInfo, modelIn []Record) (*Result, error) {
	layout, ok := layouts[info.DataType]
	if !ok {
		return nil, fmt.Errorf("%w: tag %s", ErrUnsupportedDataType, info.DataType)
	}

	output := make([]Record, info.Samples)
	for i := range output {
		output[i].Values = make([]uint32, len(layout.fields))
	}

	var modelOut []Record

	if info.CmpMode == rdcuint.CmpModelZero || info.CmpMode == rdcuint.CmpModelMulti {
		modelOut = make([]Record, info.Samples)
		for i := range modelOut {
			modelOut[i].Values = make([]uint32, len(layout.fields))
		}
	}

	_, multiEntry, err := DecompressRDCU(payload, info, modelIn, modelOut, output)
	if err != nil {
		return nil, err
	}

	cfg := Configuration{
		OriginalSize: uint32(info.Samples * bytesPerSample(info.DataType)),
		DataType:     info.DataType,
		RawBit:       info.CmpMode == rdcuint.CmpRaw,
		CmpMode:      info.CmpMode,
		ModelValue:   info.ModelValue,
		LossyRound:   info.LossyRound,
		CmpDataSize:  uint32(len(payload)),
		Params:       info.Params,
	}

	return &Result{Config: cfg, MultiEntry: multiEntry, Records: output, NextModel: modelOut}, nil
}

// mapBitError wraps an internal BitReader/EscapePolicy error into its
// public contractual category (§7): a cursor-advance overflow is a
// truncated-input case exactly like a plain bitstream overrun, while an
// oversized codeword or a corrupt escape follow-up is CorruptionDetected.
func mapBitError(err error) error {
	switch err {
	case rdcuint.ErrBitstreamOverrun, rdcuint.ErrCursorOverflow:
		return fmt.Errorf("%w: %w", ErrShortBuffer, err)
	case rdcuint.ErrCodewordTooLong, rdcuint.ErrEscapeCorrupt:
		return fmt.Errorf("%w: %w", ErrCorruptionDetected, err)
	default:
		return fmt.Errorf("%w: %w", ErrCorruptionDetected, err)
	}
}
