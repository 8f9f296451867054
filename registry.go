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
	"sync"
)

// ReservedTableVersion is the lowest version number a caller may register a
// custom max_used_bits table under. Versions below it are reserved for the
// built-in tables (0: SAFE, 1: V1) and must never be reassigned — preserved
// exactly as spec.md's Open Question 3 requires.
const ReservedTableVersion = 32

// BitWidthTable maps a DataType to the maximum number of bits its decoded,
// pre-mask sample values are allowed to occupy (max_data_bits).
type BitWidthTable [dataTypeCount]uint8

//nolint:gochecknoglobals
var (
	safeTable = BitWidthTable{
		DataTypeImagette:             32,
		DataTypeImagetteAdaptive:     32,
		DataTypeSaturatedImagette:    32,
		DataTypeFCamImagette:         32,
		DataTypeFCamImagetteAdaptive: 32,
		DataTypeShortFx:              32,
		DataTypeShortFxEfx:           32,
		DataTypeShortFxNcob:          32,
		DataTypeShortFxEfxNcobEcob:   32,
		DataTypeFastFx:               32,
		DataTypeFastFxEfx:            32,
		DataTypeFastFxNcob:           32,
		DataTypeFastFxEfxNcobEcob:    32,
		DataTypeLongFx:               32,
		DataTypeLongFxEfx:            32,
		DataTypeLongFxNcob:           32,
		DataTypeLongFxEfxNcobEcob:    32,
		DataTypeOffset:               32,
		DataTypeBackground:           32,
		DataTypeSmearing:             32,
		DataTypeFCamOffset:           32,
		DataTypeFCamBackground:       32,
		DataTypeUnknown:              32,
	}

	// v1Table narrows imagette-family samples to their real 16-bit pixel
	// width; every other data type keeps the full 32 bits a physical
	// quantity (flux, centre-of-brightness, offset, ...) needs.
	v1Table = BitWidthTable{
		DataTypeImagette:             16,
		DataTypeImagetteAdaptive:     16,
		DataTypeSaturatedImagette:    16,
		DataTypeFCamImagette:         16,
		DataTypeFCamImagetteAdaptive: 16,
		DataTypeShortFx:              32,
		DataTypeShortFxEfx:           32,
		DataTypeShortFxNcob:          32,
		DataTypeShortFxEfxNcobEcob:   32,
		DataTypeFastFx:               32,
		DataTypeFastFxEfx:            32,
		DataTypeFastFxNcob:           32,
		DataTypeFastFxEfxNcobEcob:    32,
		DataTypeLongFx:               32,
		DataTypeLongFxEfx:            32,
		DataTypeLongFxNcob:           32,
		DataTypeLongFxEfxNcobEcob:    32,
		DataTypeOffset:               32,
		DataTypeBackground:           32,
		DataTypeSmearing:             32,
		DataTypeFCamOffset:           32,
		DataTypeFCamBackground:       32,
		DataTypeUnknown:              32,
	}
)

// registry holds the built-in tables plus any user-registered ones,
// guarded by a mutex since a process may decode entities from multiple
// goroutines concurrently (§5).
type registry struct {
	mu     sync.RWMutex
	tables map[uint8]BitWidthTable
}

//nolint:gochecknoglobals
var tableRegistry = newRegistry()

func newRegistry() *registry {
	return &registry{
		tables: map[uint8]BitWidthTable{
			0: safeTable,
			1: v1Table,
		},
	}
}

// RegisterOutcome reports what RegisterTable did, per §6's
// register(version, table) -> ok | overwrite | invalid_version contract.
type RegisterOutcome uint8

const (
	// RegisterOK indicates version had no table registered before this call.
	RegisterOK RegisterOutcome = iota
	// RegisterOverwrite indicates version already held a table, now replaced.
	RegisterOverwrite
	// RegisterInvalidVersion indicates version is below ReservedTableVersion;
	// no registration happened.
	RegisterInvalidVersion
)

// RegisterTable adds or replaces a user-defined max_used_bits table.
// version must be >= ReservedTableVersion; registering below that threshold
// leaves the registry untouched and returns (RegisterInvalidVersion, err).
// The returned outcome lets callers distinguish a fresh registration from
// one that clobbered an existing version under the same number.
func RegisterTable(version uint8, table BitWidthTable) (RegisterOutcome, error) {
	if version < ReservedTableVersion {
		return RegisterInvalidVersion, fmt.Errorf("%w: table version %d is reserved (must be >= %d)", ErrInvalidParameter, version, ReservedTableVersion)
	}

	tableRegistry.mu.Lock()
	defer tableRegistry.mu.Unlock()

	_, existed := tableRegistry.tables[version]
	tableRegistry.tables[version] = table

	if existed {
		return RegisterOverwrite, nil
	}

	return RegisterOK, nil
}

// GetTable returns the table registered under version.
func GetTable(version uint8) (BitWidthTable, error) {
	tableRegistry.mu.RLock()
	defer tableRegistry.mu.RUnlock()

	table, ok := tableRegistry.tables[version]
	if !ok {
		return BitWidthTable{}, fmt.Errorf("%w: version %d", ErrInvalidParameter, version)
	}

	return table, nil
}

// ClearRegistrations removes every user-registered table, restoring the
// registry to just the two built-ins. Intended for test isolation.
func ClearRegistrations() {
	tableRegistry.mu.Lock()
	defer tableRegistry.mu.Unlock()

	tableRegistry.tables = map[uint8]BitWidthTable{
		0: safeTable,
		1: v1Table,
	}
}
