package smbios

import "github.com/zenithax-cc/hwident/pkg/node"

type Type19MemoryArrayMappedAddress struct {
	Header                  `smbios:"-"`
	StartingAddress         uint32
	EndingAddress           uint32
	MemoryArrayHandle       uint16
	PartitionWidth          uint8
	ExtendedStartingAddress uint64
	ExtendedEndingAddress   uint64
}

type Type20MemoryDeviceMappedAddress struct {
	Header                         `smbios:"-"`
	StartingAddress                uint32
	EndingAddress                  uint32
	MemoryDeviceHandle             uint16
	MemoryArrayMappedAddressHandle uint16
	PartitionRowPosition           uint8
	InterleavePosition             uint8
	InterleavedDataDepth           uint8
	ExtendedStartingAddress        uint64
	ExtendedEndingAddress          uint64
}

// mappedAddress picks the 64-bit field when the legacy one is saturated and
// the structure is long enough to carry it.
func mappedAddress(legacy uint32, ext uint64, length, minLength uint8) uint64 {
	if length >= minLength && legacy == 0xffffffff {
		return ext
	}
	return uint64(legacy)
}

func decodeType19(t *Table, n *node.Node) error {
	if t.Length < 0x0f {
		return nil
	}
	m, err := overlay[Type19MemoryArrayMappedAddress](t)
	if err != nil {
		return err
	}
	n.Setf("Starting Address", 0, "0x%016X", mappedAddress(m.StartingAddress, m.ExtendedStartingAddress, t.Length, 0x1f))
	n.Setf("Ending Address", 0, "0x%016X", mappedAddress(m.EndingAddress, m.ExtendedEndingAddress, t.Length, 0x1f))
	n.Setf("Memory Array Handle", node.FmtNumeric, "%d", m.MemoryArrayHandle)
	n.Setf("Partition Width", 0, "0x%X", m.PartitionWidth)
	return nil
}

func decodeType20(t *Table, n *node.Node) error {
	if t.Length < 0x13 {
		return nil
	}
	m, err := overlay[Type20MemoryDeviceMappedAddress](t)
	if err != nil {
		return err
	}
	n.Setf("Starting Address", 0, "0x%016X", mappedAddress(m.StartingAddress, m.ExtendedStartingAddress, t.Length, 0x23))
	n.Setf("Ending Address", 0, "0x%016X", mappedAddress(m.EndingAddress, m.ExtendedEndingAddress, t.Length, 0x23))
	n.Setf("Memory Device Handle", node.FmtNumeric, "%d", m.MemoryDeviceHandle)
	n.Setf("Memory Array Mapped Address Handle", node.FmtNumeric, "%d", m.MemoryArrayMappedAddressHandle)
	return nil
}
