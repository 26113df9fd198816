package smbios

import (
	"fmt"

	"github.com/zenithax-cc/hwident/pkg/node"
)

type Type1System struct {
	Header       `smbios:"-"`
	Manufacturer string
	ProductName  string
	Version      string
	SerialNumber string
	UUID         UUID
	WakeUpType   WakeUpType
	SKU          string
	Family       string
}

type UUID [16]byte

func (u *UUID) parseField(t *Table, off int) (int, error) {
	if off+len(u) > len(t.FormattedArea) {
		return len(t.FormattedArea), nil
	}
	ub, err := t.GetBytesAt(off, len(u))
	if err != nil {
		return off, err
	}
	copy(u[:], ub)
	return off + len(u), nil
}

// String formats u as a GUID: the first three groups are little-endian.
func (u UUID) String() string {
	return fmt.Sprintf("%02X%02X%02X%02X-%02X%02X-%02X%02X-%02X%02X-%02X%02X%02X%02X%02X%02X",
		u[3], u[2], u[1], u[0],
		u[5], u[4],
		u[7], u[6],
		u[8], u[9],
		u[10], u[11], u[12], u[13], u[14], u[15],
	)
}

type WakeUpType uint8

var wakeupStrings = map[WakeUpType]string{
	0x00: "Reserved",
	0x01: "Other",
	0x03: "APM Timer",
	0x04: "Modem Ring",
	0x05: "LAN Remote",
	0x06: "Power Switch",
	0x07: "PCI PME#",
	0x08: "AC Power Restored",
}

func (w WakeUpType) String() string {
	return enumString(wakeupStrings, w, "Unknown")
}

func decodeType1(t *Table, n *node.Node) error {
	if t.Length < 0x08 {
		return nil
	}
	s, err := overlay[Type1System](t)
	if err != nil {
		return err
	}

	n.Set("Manufacturer", s.Manufacturer, 0)
	n.Set("Product Name", s.ProductName, 0)
	n.Set("Version", s.Version, 0)
	n.Set("Serial Number", s.SerialNumber, 0)
	if t.Length < 0x19 {
		return nil
	}

	n.Set("UUID", s.UUID.String(), node.FmtGUID)
	n.Set("Wake-up Type", s.WakeUpType.String(), 0)
	if t.Length < 0x1b {
		return nil
	}

	n.Set("SKU Number", s.SKU, 0)
	n.Set("Family", s.Family, 0)
	return nil
}
