package smbios

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/zenithax-cc/hwident/pkg/node"
)

type Type43TPMDevice struct {
	Header           `smbios:"-"`
	VendorID         uint32
	MajorSpecVersion uint8
	MinorSpecVersion uint8
	FirmwareVersion1 uint32
	FirmwareVersion2 uint32
	Description      string
	Characteristics  uint64
	OEMDefined       uint32
}

// Vendor is the four-byte ASCII vendor ID, cut at the first NUL.
func (d *Type43TPMDevice) Vendor() string {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], d.VendorID)
	if i := bytes.IndexByte(b[:], 0); i >= 0 {
		return string(b[:i])
	}
	return string(b[:])
}

func decodeType43(t *Table, n *node.Node) error {
	if t.Length < 0x1f {
		return nil
	}
	d, err := overlay[Type43TPMDevice](t)
	if err != nil {
		return err
	}
	n.Set("Vendor", d.Vendor(), 0)
	n.Set("Spec Version", fmt.Sprintf("%d%d", d.MajorSpecVersion, d.MinorSpecVersion), 0)
	n.Set("Description", d.Description, 0)
	return nil
}
