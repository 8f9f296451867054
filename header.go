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
	"encoding/binary"
	"fmt"

	rdcuint "github.com/plato-rdcu/rdcu/internal/rdcu"
)

// fixedHeaderSize is the byte size of the entity header up to (but not
// including) the per-field golomb_par/spill pairs:
// original_size(3) + data_type|raw_bit(2) + cmp_mode(1) + model_value(1) +
// max_used_bits_version(1) + lossy_round(2) + cmp_data_size(3) = 13 bytes.
const fixedHeaderSize = 13

// Per-field (golomb_par, spill) pair widths, in bytes: imagette-family
// records pack golomb_par in 8 bits and spill in 16 bits (3 bytes total);
// every other data type uses 16 and 24 bits (5 bytes total) since their
// physical quantities need a wider spill threshold.
const (
	imagetteGolombParSize = 1
	imagetteSpillSize     = 2
	imagetteFieldSize     = imagetteGolombParSize + imagetteSpillSize

	otherGolombParSize = 2
	otherSpillSize     = 3
	otherFieldSize     = otherGolombParSize + otherSpillSize
)

func fieldParamSize(t DataType) int {
	if imagetteFamily[t] {
		return imagetteFieldSize
	}

	return otherFieldSize
}

// FieldParams carries one field's entropy-coding parameters as read from
// the entity header.
type FieldParams struct {
	GolombPar uint32
	Spill     uint32
}

// Configuration is an entity's parsed header (§3).
type Configuration struct {
	OriginalSize       uint32
	DataType           DataType
	RawBit             bool
	CmpMode            rdcuint.CompressionMode
	ModelValue         uint8
	MaxUsedBitsVersion uint8
	LossyRound         uint16
	CmpDataSize        uint32
	Params             []FieldParams
}

// HeaderSize returns the total byte size of this configuration's header,
// including its per-field parameter pairs.
func (c Configuration) HeaderSize() int {
	return fixedHeaderSize + len(c.Params)*fieldParamSize(c.DataType)
}

// ParseHeader reads an entity header from the front of entity. fieldCount
// must be the number of parameter pairs the entity's data type carries
// (see FieldCountFor); the caller resolves data_type itself via a first
// pass if fieldCount is not already known — in practice the Facade parses
// data_type first, then re-enters with fieldCount resolved.
func ParseHeader(entity []byte, fieldCount int) (Configuration, error) {
	if len(entity) < fixedHeaderSize {
		return Configuration{}, fmt.Errorf("%w: header needs %d bytes, have %d", ErrShortBuffer, fixedHeaderSize, len(entity))
	}

	originalSize := readUint24(entity[0:3])

	typeAndRaw := binary.BigEndian.Uint16(entity[3:5])
	dataType, err := ParseDataType(uint32(typeAndRaw >> 1))
	if err != nil {
		return Configuration{}, err
	}

	rawBit := typeAndRaw&1 != 0

	cmpModeRaw := entity[5]
	if cmpModeRaw > uint8(rdcuint.CmpStuff) {
		return Configuration{}, fmt.Errorf("%w: cmp_mode %d", ErrHeaderMismatch, cmpModeRaw)
	}

	cmpMode := rdcuint.CompressionMode(cmpModeRaw)

	if rawBit != (cmpMode == rdcuint.CmpRaw) {
		return Configuration{}, fmt.Errorf("%w: raw_bit=%v but cmp_mode=%d", ErrHeaderMismatch, rawBit, cmpModeRaw)
	}

	modelValue := entity[6]
	maxUsedBitsVersion := entity[7]
	lossyRound := binary.BigEndian.Uint16(entity[8:10])
	cmpDataSize := readUint24(entity[10:13])

	if cmpMode != rdcuint.CmpRaw && cmpDataSize%4 != 0 {
		return Configuration{}, fmt.Errorf("%w: %w: cmp_data_size %d", ErrHeaderMismatch, rdcuint.ErrPayloadAlignment, cmpDataSize)
	}

	fieldSize := fieldParamSize(dataType)

	need := fixedHeaderSize + fieldCount*fieldSize
	if len(entity) < need {
		return Configuration{}, fmt.Errorf("%w: header needs %d bytes, have %d", ErrShortBuffer, need, len(entity))
	}

	params := make([]FieldParams, fieldCount)
	off := fixedHeaderSize

	for i := range params {
		if imagetteFamily[dataType] {
			params[i] = FieldParams{
				GolombPar: uint32(entity[off]),
				Spill:     uint32(binary.BigEndian.Uint16(entity[off+imagetteGolombParSize : off+imagetteFieldSize])),
			}
		} else {
			params[i] = FieldParams{
				GolombPar: uint32(binary.BigEndian.Uint16(entity[off : off+otherGolombParSize])),
				Spill:     readUint24(entity[off+otherGolombParSize : off+otherFieldSize]),
			}
		}

		off += fieldSize
	}

	return Configuration{
		OriginalSize:       originalSize,
		DataType:           dataType,
		RawBit:             rawBit,
		CmpMode:            cmpMode,
		ModelValue:         modelValue,
		MaxUsedBitsVersion: maxUsedBitsVersion,
		LossyRound:         lossyRound,
		CmpDataSize:        cmpDataSize,
		Params:             params,
	}, nil
}

// WriteHeader serializes a Configuration back to wire bytes, the mirror of
// ParseHeader. Used by tests to construct golden entities.
func WriteHeader(c Configuration) ([]byte, error) {
	if c.OriginalSize >= 1<<24 {
		return nil, fmt.Errorf("%w: original_size overflows 24 bits", ErrInvalidParameter)
	}

	if c.CmpDataSize >= 1<<24 {
		return nil, fmt.Errorf("%w: cmp_data_size overflows 24 bits", ErrInvalidParameter)
	}

	fieldSize := fieldParamSize(c.DataType)
	isImagette := imagetteFamily[c.DataType]

	maxSpill := uint32(1<<24) - 1
	if isImagette {
		maxSpill = uint32(1<<16) - 1
	}

	for _, p := range c.Params {
		if p.Spill > maxSpill {
			return nil, fmt.Errorf("%w: %w: spill %d", ErrInvalidParameter, rdcuint.ErrFieldWidthOverflow, p.Spill)
		}
	}

	buf := make([]byte, fixedHeaderSize+len(c.Params)*fieldSize)

	writeUint24(buf[0:3], c.OriginalSize)

	typeAndRaw := uint16(c.DataType) << 1
	if c.RawBit {
		typeAndRaw |= 1
	}

	binary.BigEndian.PutUint16(buf[3:5], typeAndRaw)

	buf[5] = uint8(c.CmpMode)
	buf[6] = c.ModelValue
	buf[7] = c.MaxUsedBitsVersion
	binary.BigEndian.PutUint16(buf[8:10], c.LossyRound)
	writeUint24(buf[10:13], c.CmpDataSize)

	off := fixedHeaderSize

	for _, p := range c.Params {
		if isImagette {
			buf[off] = uint8(p.GolombPar)
			binary.BigEndian.PutUint16(buf[off+imagetteGolombParSize:off+imagetteFieldSize], uint16(p.Spill))
		} else {
			binary.BigEndian.PutUint16(buf[off:off+otherGolombParSize], uint16(p.GolombPar))
			writeUint24(buf[off+otherGolombParSize:off+otherFieldSize], p.Spill)
		}

		off += fieldSize
	}

	return buf, nil
}

func readUint24(b []byte) uint32 {
	return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2])
}

func writeUint24(b []byte, v uint32) {
	b[0] = byte(v >> 16)
	b[1] = byte(v >> 8)
	b[2] = byte(v)
}
