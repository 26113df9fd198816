package smbios

import "github.com/zenithax-cc/hwident/pkg/node"

type Type0BIOS struct {
	Header              `smbios:"-"`
	Vendor              string
	Version             string
	AddressSegment      uint16
	ReleaseDate         string
	ROMSize             uint8
	Characteristics     uint64
	CharacteristicsExt1 uint8
	CharacteristicsExt2 uint8
	BIOSMajorRelease    uint8 `smbios:"default=0xff"`
	BIOSMinorRelease    uint8 `smbios:"default=0xff"`
	ECMajorRelease      uint8 `smbios:"default=0xff"`
	ECMinorRelease      uint8 `smbios:"default=0xff"`
	ExtendedROMSize     uint16
}

// ImageSize is the BIOS ROM size in KiB.
func (b *Type0BIOS) ImageSize() uint32 {
	return (uint32(b.ROMSize) + 1) * 64
}

func decodeType0(t *Table, n *node.Node) error {
	if t.Length < 0x12 {
		return nil
	}
	b, err := overlay[Type0BIOS](t)
	if err != nil {
		return err
	}

	n.Set("Vendor", b.Vendor, 0)
	n.Set("Version", b.Version, 0)
	n.Setf("Starting Segment", 0, "%04Xh", b.AddressSegment)
	n.Set("Release Date", b.ReleaseDate, 0)
	n.Setf("Image Size (K)", node.FmtNumeric, "%d", b.ImageSize())
	n.Setf("BIOS Characteristics", 0, "0x%016X", b.Characteristics)
	if t.Length < 0x18 {
		return nil
	}

	if b.BIOSMajorRelease != 0xff || b.BIOSMinorRelease != 0xff {
		n.Setf("System BIOS Version", 0, "%d.%d", b.BIOSMajorRelease, b.BIOSMinorRelease)
	}
	if b.ECMajorRelease != 0xff || b.ECMinorRelease != 0xff {
		n.Setf("EC Firmware Version", 0, "%d.%d", b.ECMajorRelease, b.ECMinorRelease)
	}
	return nil
}
