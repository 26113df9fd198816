package smbios

import (
	"github.com/zenithax-cc/hwident/pkg/node"
	"github.com/zenithax-cc/hwident/pkg/utils"
)

type Type17MemoryDevice struct {
	Header                    `smbios:"-"`
	PhysicalMemoryArrayHandle uint16                 // 04h
	MemoryErrorInfoHandle     uint16                 // 06h
	TotalWidth                uint16                 // 08h
	DataWidth                 uint16                 // 0Ah
	Size                      uint16                 // 0Ch
	FormFactor                MemoryDeviceFormFactor // 0Eh
	DeviceSet                 uint8                  // 0Fh
	DeviceLocator             string                 // 10h
	BankLocator               string                 // 11h
	Type                      MemoryDeviceType       // 12h
	TypeDetail                uint16                 // 13h
	Speed                     uint16                 // 15h
	Manufacturer              string                 // 17h
	SerialNumber              string                 // 18h
	AssetTag                  string                 // 19h
	PartNumber                string                 // 1Ah
	Attributes                uint8                  // 1Bh
	ExtendedSize              uint32                 // 1Ch
	ConfiguredSpeed           uint16                 // 20h
	MinimumVoltage            uint16                 // 22h
	MaximumVoltage            uint16                 // 24h
	ConfiguredVoltage         uint16                 // 26h
}

// SizeBytes decodes Size, its KB granularity bit and the 2.7 extended size.
// Zero means no module is installed.
func (m *Type17MemoryDevice) SizeBytes() uint64 {
	switch {
	case m.Size == 0x7fff && m.Length >= 0x20:
		return uint64(m.ExtendedSize&0x7fffffff) * utils.MB
	case m.Size&0x8000 != 0:
		return uint64(m.Size-0x8000) * utils.KB
	default:
		return uint64(m.Size) * utils.MB
	}
}

// Rank is 0 when unknown.
func (m *Type17MemoryDevice) Rank() int {
	return int(m.Attributes & 0x0f)
}

type MemoryDeviceFormFactor uint8

var memoryDeviceFormFactorNames = map[MemoryDeviceFormFactor]string{
	0x01: "Other",
	0x03: "SIMM",
	0x04: "SIP",
	0x05: "Chip",
	0x06: "DIP",
	0x07: "ZIP",
	0x08: "Proprietary Card",
	0x09: "DIMM",
	0x0a: "TSOP",
	0x0b: "Row of chips",
	0x0c: "RIMM",
	0x0d: "SODIMM",
	0x0e: "SRIMM",
	0x0f: "FB-DIMM",
	0x10: "Die",
}

func (v MemoryDeviceFormFactor) String() string {
	return enumString(memoryDeviceFormFactorNames, v, "Unknown")
}

type MemoryDeviceType uint8

var memoryDeviceTypeNames = map[MemoryDeviceType]string{
	0x01: "Other",
	0x03: "DRAM",
	0x04: "EDRAM",
	0x05: "VRAM",
	0x06: "SRAM",
	0x07: "RAM",
	0x08: "ROM",
	0x09: "FLASH",
	0x0a: "EEPROM",
	0x0b: "FEPROM",
	0x0c: "EPROM",
	0x0d: "CDRAM",
	0x0e: "3DRAM",
	0x0f: "SDRAM",
	0x10: "SGRAM",
	0x11: "RDRAM",
	0x12: "DDR",
	0x13: "DDR2",
	0x14: "DDR2 FB-DIMM",
	0x15: "Reserved",
	0x16: "Reserved",
	0x17: "Reserved",
	0x18: "DDR3",
	0x19: "FBD2",
	0x1a: "DDR4",
	0x1b: "LPDDR",
	0x1c: "LPDDR2",
	0x1d: "LPDDR3",
	0x1e: "LPDDR4",
	0x1f: "Logical non-volatile device",
	0x20: "HBM",
	0x21: "HBM2",
	0x22: "DDR5",
	0x23: "LPDDR5",
	0x24: "HBM3",
}

func (v MemoryDeviceType) String() string {
	return enumString(memoryDeviceTypeNames, v, "Unknown")
}

func decodeType17(t *Table, n *node.Node) error {
	if t.Length < 0x15 {
		return nil
	}
	m, err := overlay[Type17MemoryDevice](t)
	if err != nil {
		return err
	}

	n.Set("Device Locator", m.DeviceLocator, 0)
	n.Set("Bank Locator", m.BankLocator, 0)
	n.Set("Form Factor", m.FormFactor.String(), 0)
	if m.TotalWidth != 0 {
		n.Setf("Total Width (bits)", node.FmtNumeric, "%d", m.TotalWidth)
	}
	if m.DataWidth != 0 {
		n.Setf("Data Width (bits)", node.FmtNumeric, "%d", m.DataWidth)
	}
	size := m.SizeBytes()
	if size == 0 {
		return nil
	}
	n.Set("Device Size", utils.HumanSize(size), node.FmtHumanSize)
	n.Set("Device Type", m.Type.String(), 0)
	if t.Length < 0x1b {
		return nil
	}

	if m.Speed != 0 {
		n.Setf("Speed (MT/s)", node.FmtNumeric, "%d", m.Speed)
	}
	n.Set("Manufacturer", m.Manufacturer, 0)
	n.Set("Serial Number", m.SerialNumber, 0)
	n.Set("Asset Tag Number", m.AssetTag, 0)
	n.Set("Part Number", m.PartNumber, 0)
	if t.Length >= 0x22 && m.ConfiguredSpeed != 0 {
		n.Setf("Configured Speed (MT/s)", node.FmtNumeric, "%d", m.ConfiguredSpeed)
	}
	return nil
}
