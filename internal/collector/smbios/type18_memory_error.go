package smbios

import "github.com/zenithax-cc/hwident/pkg/node"

type Type18MemoryError32 struct {
	Header                  `smbios:"-"`
	ErrorType               MemoryErrorType
	ErrorGranularity        MemoryErrorGranularity
	ErrorOperation          MemoryErrorOperation
	VendorSyndrome          uint32
	MemoryArrayErrorAddress uint32
	DeviceErrorAddress      uint32
	ErrorResolution         uint32
}

type Type33MemoryError64 struct {
	Header                  `smbios:"-"`
	ErrorType               MemoryErrorType
	ErrorGranularity        MemoryErrorGranularity
	ErrorOperation          MemoryErrorOperation
	VendorSyndrome          uint32
	MemoryArrayErrorAddress uint64
	DeviceErrorAddress      uint64
	ErrorResolution         uint32
}

type MemoryErrorType uint8

var memoryErrorTypeNames = map[MemoryErrorType]string{
	0x01: "Other",
	0x03: "OK",
	0x04: "Bad Read",
	0x05: "Parity Error",
	0x06: "Single-bit Error",
	0x07: "Double-bit Error",
	0x08: "Multi-bit Error",
	0x09: "Nibble Error",
	0x0a: "Checksum Error",
	0x0b: "CRC Error",
	0x0c: "Corrected Single-bit Error",
	0x0d: "Corrected Error",
	0x0e: "Uncorrectable Error",
}

func (v MemoryErrorType) String() string {
	return enumString(memoryErrorTypeNames, v, "Unknown")
}

type MemoryErrorGranularity uint8

var memoryErrorGranularityNames = map[MemoryErrorGranularity]string{
	0x01: "Other",
	0x03: "Device level",
	0x04: "Memory partition level",
}

func (v MemoryErrorGranularity) String() string {
	return enumString(memoryErrorGranularityNames, v, "Unknown")
}

type MemoryErrorOperation uint8

var memoryErrorOperationNames = map[MemoryErrorOperation]string{
	0x01: "Other",
	0x03: "Read",
	0x04: "Write",
	0x05: "Partial Write",
}

func (v MemoryErrorOperation) String() string {
	return enumString(memoryErrorOperationNames, v, "Unknown")
}

func setMemoryErrorKind(n *node.Node, typ MemoryErrorType, gran MemoryErrorGranularity, op MemoryErrorOperation) {
	n.Set("Error Type", typ.String(), 0)
	n.Set("Error Granularity", gran.String(), 0)
	n.Set("Error Operation", op.String(), 0)
}

func decodeType18(t *Table, n *node.Node) error {
	if t.Length < 0x17 {
		return nil
	}
	e, err := overlay[Type18MemoryError32](t)
	if err != nil {
		return err
	}
	setMemoryErrorKind(n, e.ErrorType, e.ErrorGranularity, e.ErrorOperation)
	n.Setf("Vendor Syndrome", 0, "0x%08X", e.VendorSyndrome)
	n.Setf("Memory Array Error Address", 0, "0x%08X", e.MemoryArrayErrorAddress)
	n.Setf("Device Error Address", 0, "0x%08X", e.DeviceErrorAddress)
	n.Setf("Error Resolution", 0, "0x%08X", e.ErrorResolution)
	return nil
}

func decodeType33(t *Table, n *node.Node) error {
	if t.Length < 0x1f {
		return nil
	}
	e, err := overlay[Type33MemoryError64](t)
	if err != nil {
		return err
	}
	setMemoryErrorKind(n, e.ErrorType, e.ErrorGranularity, e.ErrorOperation)
	n.Setf("Vendor Syndrome", 0, "0x%08X", e.VendorSyndrome)
	n.Setf("Memory Array Error Address", 0, "0x%016X", e.MemoryArrayErrorAddress)
	n.Setf("Device Error Address", 0, "0x%016X", e.DeviceErrorAddress)
	n.Setf("Error Resolution", 0, "0x%08X", e.ErrorResolution)
	return nil
}
