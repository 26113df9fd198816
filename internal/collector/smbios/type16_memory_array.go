package smbios

import (
	"github.com/zenithax-cc/hwident/pkg/node"
	"github.com/zenithax-cc/hwident/pkg/utils"
)

type Type16PhysicalMemoryArray struct {
	Header                       `smbios:"-"`
	Location                     MemoryArrayLocation
	Use                          MemoryArrayUse
	ErrorCorrection              MemoryArrayErrorCorrection
	MaximumCapacity              uint32
	MemoryErrorInformationHandle uint16
	NumberOfMemoryDevices        uint16
	ExtendedMaximumCapacity      uint64
}

// Capacity is the maximum capacity in bytes. A legacy value of 0x80000000
// defers to the 64-bit byte count when the structure carries it.
func (m *Type16PhysicalMemoryArray) Capacity() uint64 {
	if m.MaximumCapacity == 0x80000000 && m.Length > 0x0f {
		return m.ExtendedMaximumCapacity
	}
	return uint64(m.MaximumCapacity) * utils.KB
}

type MemoryArrayLocation uint8

var memoryArrayLocationNames = map[MemoryArrayLocation]string{
	0x01: "Other",
	0x03: "System board",
	0x04: "ISA add-on card",
	0x05: "EISA add-on card",
	0x06: "PCI add-on card",
	0x07: "MCA add-on card",
	0x08: "PCMCIA add-on card",
	0x09: "Proprietary add-on card",
	0x0a: "NuBus",
	0xa0: "PC-98/C20 add-on card",
	0xa1: "PC-98/C24 add-on card",
	0xa2: "PC-98/E add-on card",
	0xa3: "PC-98/Local bus add-on card add-on card",
	0xa4: "CXL add-on card",
}

func (v MemoryArrayLocation) String() string {
	return enumString(memoryArrayLocationNames, v, "Unknown")
}

type MemoryArrayUse uint8

var memoryArrayUseNames = map[MemoryArrayUse]string{
	0x01: "Other",
	0x03: "System memory",
	0x04: "Video memory",
	0x05: "Flash memory",
	0x06: "Non-volatile RAM",
	0x07: "Cache memory",
}

func (v MemoryArrayUse) String() string {
	return enumString(memoryArrayUseNames, v, "Unknown")
}

type MemoryArrayErrorCorrection uint8

var memoryArrayErrorCorrectionNames = map[MemoryArrayErrorCorrection]string{
	0x01: "Other",
	0x03: "None",
	0x04: "Parity",
	0x05: "Single-bit ECC",
	0x06: "Multi-bit ECC",
	0x07: "CRC",
}

func (v MemoryArrayErrorCorrection) String() string {
	return enumString(memoryArrayErrorCorrectionNames, v, "Unknown")
}

func decodeType16(t *Table, n *node.Node) error {
	if t.Length < 0x0f {
		return nil
	}
	m, err := overlay[Type16PhysicalMemoryArray](t)
	if err != nil {
		return err
	}
	n.Set("Location", m.Location.String(), 0)
	n.Set("Function", m.Use.String(), 0)
	n.Set("Error Correction", m.ErrorCorrection.String(), 0)
	n.Set("Max Capacity", utils.HumanSize(m.Capacity()), node.FmtHumanSize)
	n.Setf("Number of Slots", node.FmtNumeric, "%d", m.NumberOfMemoryDevices)
	return nil
}
