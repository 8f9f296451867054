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

// CompressionMode identifies how a field's samples were entropy coded.
type CompressionMode uint8

const (
	CmpRaw CompressionMode = iota
	CmpDiffZero
	CmpDiffMulti
	CmpModelZero
	CmpModelMulti
	CmpStuff
)

// Setup is the fully-resolved decode plan for one field of one record,
// built once per entity and reused across every sample of that field.
type Setup struct {
	Primitive Primitive
	Escape    EscapeKind
	GolombPar uint32 // codeword parameter (or fixed width, for PrimitiveFixed)
	Outlier   uint32 // escape threshold ("spill")
	MaxCwLen  uint8
	UsesModel bool // remap+ModelUpdater pipeline applies (model-zero/model-multi only)
}

// BuildSetup resolves a per-field decode plan from a record's compression
// mode and parameters. golombPar and spill come directly from the entity
// header's per-field parameter pairs. maxCwLen is 16 for the four data
// types the hardware compressor serves, 32 otherwise (the caller, which
// knows the record's data type, resolves this — see root package
// rdcuCappedMaxCwLen).
func BuildSetup(mode CompressionMode, golombPar, spill uint32, maxDataBits, maxCwLen uint8) (Setup, error) {
	if maxDataBits == 0 || maxDataBits > 32 {
		return Setup{}, ErrMaxDataBitsRange
	}

	switch mode {
	case CmpRaw:
		return Setup{Primitive: PrimitiveFixed, Escape: EscapeNormal, GolombPar: uint32(maxDataBits), MaxCwLen: maxCwLen}, nil

	case CmpStuff:
		if golombPar == 0 {
			return Setup{}, ErrGolombParZero
		}

		if golombPar > 32 {
			return Setup{}, ErrFieldWidthOverflow
		}

		return Setup{Primitive: PrimitiveFixed, Escape: EscapeNormal, GolombPar: golombPar, MaxCwLen: maxCwLen}, nil

	case CmpDiffZero, CmpModelZero:
		if golombPar == 0 {
			return Setup{}, ErrGolombParZero
		}

		return Setup{
			Primitive: SelectPrimitive(golombPar),
			Escape:    EscapeZero,
			GolombPar: golombPar,
			Outlier:   spill,
			MaxCwLen:  maxCwLen,
			UsesModel: mode == CmpModelZero,
		}, nil

	case CmpDiffMulti, CmpModelMulti:
		if golombPar == 0 {
			return Setup{}, ErrGolombParZero
		}

		return Setup{
			Primitive: SelectPrimitive(golombPar),
			Escape:    EscapeMulti,
			GolombPar: golombPar,
			Outlier:   spill,
			MaxCwLen:  maxCwLen,
			UsesModel: mode == CmpModelMulti,
		}, nil

	default:
		return Setup{}, ErrUnknownCompression
	}
}

// DecodeField decodes one sample's raw field value (pre-remap, pre-model)
// using this Setup's resolved primitive and escape policy.
func (s Setup) DecodeField(br *BitReader, maxDataBits uint8) (uint32, error) {
	v, err := DecodeBase(br, s.Primitive, s.GolombPar, s.MaxCwLen)
	if err != nil {
		return 0, err
	}

	return s.Escape.Decode(br, v, maxDataBits, s.Outlier)
}
