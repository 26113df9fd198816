package smbios

import (
	"fmt"
	"log/slog"

	"github.com/zenithax-cc/hwident/pkg/node"
	"github.com/zenithax-cc/hwident/pkg/utils"
)

// decodeFunc writes the type-specific attributes of t into n. It returns
// early, without error, when the record is too short for the next group.
type decodeFunc func(t *Table, n *node.Node) error

var decoders = map[TableType]decodeFunc{
	BIOS:                       decodeType0,
	System:                     decodeType1,
	BaseBoard:                  decodeType2,
	Chassis:                    decodeType3,
	Processor:                  decodeType4,
	Controller:                 decodeType5,
	Module:                     decodeType6,
	Cache:                      decodeType7,
	PortConnector:              decodeType8,
	SystemSlots:                decodeType9,
	OnBoardDevices:             decodeType10,
	OEMStrings:                 decodeType11,
	SystemConfigurationOptions: decodeType12,
	BIOSLanguage:               decodeType13,
	GroupAssociations:          decodeType14,
	SystemEventLog:             decodeType15,
	PhysicalMemoryArray:        decodeType16,
	MemoryDevice:               decodeType17,
	Bit32MemoryError:           decodeType18,
	MemoryArrayMappedAddress:   decodeType19,
	MemoryDeviceMappedAddress:  decodeType20,
	BuiltInPointingDevice:      decodeType21,
	PortableBattery:            decodeType22,
	SystemReset:                decodeType23,
	HardwareSecurity:           decodeType24,
	SystemPowerControls:        decodeType25,
	OutOfBandRemoteAccess:      decodeType30,
	BootIntegrityServices:      decodeDescriptionOnly,
	SystemBoot:                 decodeType32,
	Bit64MemoryError:           decodeType33,
	TPMDevice:                  decodeType43,
	EndOfTable:                 decodeDescriptionOnly,
}

// Decode walks raw and builds the SMBIOS node tree. Only structures of type
// filter are decoded unless filter is AnyType. A malformed structure ends
// the walk; everything before it is kept.
func Decode(raw *RawData, filter TableType) *node.Node {
	root := node.New("SMBIOS", node.Table)
	dmi := root.AppendNew("DMI", node.Row)
	if raw == nil {
		return root
	}

	dmi.Setf("SMBIOS Version", 0, "%d.%d", raw.MajorVersion, raw.MinorVersion)
	if raw.DmiRevision != 0 {
		dmi.Setf("DMI Version", node.FmtNumeric, "%d", raw.DmiRevision)
	}

	err := Walk(raw.Data, filter, func(t *Table) bool {
		row := root.AppendNew("Table", node.Row)
		row.Setf("Table Type", node.FmtNumeric, "%d", t.Type)
		row.Setf("Table Length", node.FmtNumeric, "%d", t.Length)
		row.Setf("Table Handle", node.FmtNumeric, "%d", t.Handle)

		tt := TableType(t.Type)
		dec, ok := decoders[tt]
		if !ok {
			return true
		}
		row.Set("Description", tt.String(), 0)
		if err := dec(t, row); err != nil {
			slog.Debug("smbios decode failed", "type", t.Type, "handle", t.Handle, "err", err)
		}
		return true
	})
	if err != nil {
		slog.Debug("smbios walk stopped", "err", err)
	}

	return root
}

// Records overlays T on every structure of type tt in raw.
func Records[T any](raw *RawData, tt TableType) ([]*T, error) {
	var (
		res  []*T
		errs []error
	)
	walkErr := Walk(raw.Data, tt, func(t *Table) bool {
		v, err := overlay[T](t)
		if err != nil {
			errs = append(errs, fmt.Errorf("handle %d: %w", t.Handle, err))
			return true
		}
		res = append(res, v)
		return true
	})
	if walkErr != nil {
		errs = append(errs, walkErr)
	}

	return res, utils.CombineErrors(errs)
}

func decodeDescriptionOnly(*Table, *node.Node) error {
	return nil
}

// overlay parses t's formatted area into a new T.
func overlay[T any](t *Table) (*T, error) {
	v := new(T)
	if _, err := parseType(t, 0, v); err != nil {
		return nil, err
	}
	if h, ok := any(v).(interface{ setHeader(Header) }); ok {
		h.setHeader(t.Header)
	}
	return v, nil
}

func enumString[K comparable](m map[K]string, k K, fallback string) string {
	if s, ok := m[k]; ok {
		return s
	}
	return fallback
}
