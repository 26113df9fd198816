package smbios

import "github.com/zenithax-cc/hwident/pkg/node"

type Type2BaseBoard struct {
	Header        `smbios:"-"`
	Manufacturer  string
	Product       string
	Version       string
	SerialNumber  string
	AssetTag      string
	FeatureFlags  uint8
	Location      string
	ChassisHandle uint16
	BoardType     BoardType
}

type BoardType uint8

var boardTypeStrings = map[BoardType]string{
	0x02: "Other",
	0x03: "Server Blade",
	0x04: "Connectivity Switch",
	0x05: "System Management Module",
	0x06: "Processor Module",
	0x07: "I/O Module",
	0x08: "Memory Module",
	0x09: "Daughter Board",
	0x0a: "Motherboard",
	0x0b: "Processor/Memory Module",
	0x0c: "Processor/IO Module",
	0x0d: "Interconnect Board",
}

func (v BoardType) String() string {
	return enumString(boardTypeStrings, v, "Unknown")
}

func decodeType2(t *Table, n *node.Node) error {
	if t.Length < 0x08 {
		return nil
	}
	b, err := overlay[Type2BaseBoard](t)
	if err != nil {
		return err
	}

	n.Set("Manufacturer", b.Manufacturer, 0)
	n.Set("Product Name", b.Product, 0)
	n.Set("Version", b.Version, 0)
	n.Set("Serial Number", b.SerialNumber, 0)
	if t.Length < 0x09 {
		return nil
	}
	n.Set("Asset Tag", b.AssetTag, 0)
	if t.Length < 0x0a {
		return nil
	}
	n.Setf("Feature Flags", 0, "0x%02X", b.FeatureFlags)
	if t.Length < 0x0b {
		return nil
	}
	n.Set("Location in Chassis", b.Location, 0)
	if t.Length < 0x0d {
		return nil
	}
	n.Setf("Chassis Handle", node.FmtNumeric, "%d", b.ChassisHandle)
	if t.Length < 0x0e {
		return nil
	}
	n.Set("Board Type", b.BoardType.String(), 0)
	return nil
}
