package smbios

import "github.com/zenithax-cc/hwident/pkg/node"

type Type8PortConnector struct {
	Header                      `smbios:"-"`
	InternalReferenceDesignator string
	InternalConnectorType       ConnectorType
	ExternalReferenceDesignator string
	ExternalConnectorType       ConnectorType
	PortType                    PortType
}

type ConnectorType uint8

var connectorTypeNames = map[ConnectorType]string{
	0x00: "None",
	0x01: "Centronics",
	0x02: "Mini Centronics",
	0x03: "Proprietary",
	0x04: "DB-25 pin male",
	0x05: "DB-25 pin female",
	0x06: "DB-15 pin male",
	0x07: "DB-15 pin female",
	0x08: "DB-9 pin male",
	0x09: "DB-9 pin female",
	0x0a: "RJ-11",
	0x0b: "RJ-45",
	0x0c: "50 Pin MiniSCSI",
	0x0d: "Mini-DIN",
	0x0e: "Micro-DIN",
	0x0f: "PS/2",
	0x10: "Infrared",
	0x11: "HP-HIL",
	0x12: "Access Bus (USB)",
	0x13: "SSA SCSI",
	0x14: "Circular DIN-8 male",
	0x15: "Circular DIN-8 female",
	0x16: "On Board IDE",
	0x17: "On Board Floppy",
	0x18: "9-pin Dual Inline (pin 10 cut)",
	0x19: "25-pin Dual Inline (pin 26 cut)",
	0x1a: "50-pin Dual Inline",
	0x1b: "68-pin Dual Inline",
	0x1c: "On Board Sound Input from CD-ROM",
	0x1d: "Mini-Centronics Type-14",
	0x1e: "Mini-Centronics Type-26",
	0x1f: "Mini-jack (headphones)",
	0x20: "BNC",
	0x21: "1394",
	0x22: "SAS/SATA Plug Receptacle",
	0x23: "USB Type-C Receptacle",
	0xa0: "PC-98",
	0xa1: "PC-98Hireso",
	0xa2: "PC-H98",
	0xa3: "PC-98Note",
	0xa4: "PC-98Full",
}

func (v ConnectorType) String() string {
	return enumString(connectorTypeNames, v, "Other")
}

type PortType uint8

var portTypeNames = map[PortType]string{
	0x00: "None",
	0x01: "Parallel Port XT/AT Compatible",
	0x02: "Parallel Port PS/2",
	0x03: "Parallel Port ECP",
	0x04: "Parallel Port EPP",
	0x05: "Parallel Port ECP/EPP",
	0x06: "Serial Port XT/AT Compatible",
	0x07: "Serial Port 16450 Compatible",
	0x08: "Serial Port 16550 Compatible",
	0x09: "Serial Port 16550A Compatible",
	0x0a: "SCSI Port",
	0x0b: "MIDI Port",
	0x0c: "Joy Stick Port",
	0x0d: "Keyboard Port",
	0x0e: "Mouse Port",
	0x0f: "SSA SCSI",
	0x10: "USB",
	0x11: "FireWire (IEEE P1394)",
	0x12: "PCMCIA Type I",
	0x13: "PCMCIA Type II",
	0x14: "PCMCIA Type III",
	0x15: "Cardbus",
	0x16: "Access Bus Port",
	0x17: "SCSI II",
	0x18: "SCSI Wide",
	0x19: "PC-98",
	0x1a: "PC-98-Hireso",
	0x1b: "PC-H98",
	0x1c: "Video Port",
	0x1d: "Audio Port",
	0x1e: "Modem Port",
	0x1f: "Network Port",
	0x20: "SATA",
	0x21: "SAS",
	0x22: "MFDP (Multi-Function Display Port)",
	0x23: "Thunderbolt",
	0xa0: "8251 Compatible",
	0xa1: "8251 FIFO Compatible",
}

func (v PortType) String() string {
	return enumString(portTypeNames, v, "Other")
}

type Type9SystemSlot struct {
	Header               `smbios:"-"`
	SlotDesignation      string
	SlotType             SlotType
	SlotDataBusWidth     SlotDataBusWidth
	CurrentUsage         SlotUsage
	SlotLength           SlotLength
	SlotID               uint16
	SlotCharacteristics1 uint8
	SlotCharacteristics2 uint8
	SegmentGroupNumber   uint16
	BusNumber            uint8
	DeviceFunctionNumber uint8
}

type SlotType uint8

var slotTypeNames = map[SlotType]string{
	0x01: "Other",
	0x02: "Unknown",
	0x03: "ISA",
	0x04: "MCA",
	0x05: "EISA",
	0x06: "PCI",
	0x07: "PC Card (PCMCIA)",
	0x08: "VLB",
	0x09: "Proprietary",
	0x0a: "Processor Card",
	0x0b: "Proprietary Memory Card",
	0x0c: "I/O Riser Card",
	0x0d: "NuBus",
	0x0e: "PCI-66",
	0x0f: "AGP",
	0x10: "AGP 2x",
	0x11: "AGP 4x",
	0x12: "PCI-X",
	0x13: "AGP 8x",
	0x14: "M.2 Socket 1-DP",
	0x15: "M.2 Socket 1-SD",
	0x16: "M.2 Socket 2",
	0x17: "M.2 Socket 3",
	0x18: "MXM Type I",
	0x19: "MXM Type II",
	0x1a: "MXM Type III",
	0x1b: "MXM Type III-HE",
	0x1c: "MXM Type IV",
	0x1d: "MXM 3.0 Type A",
	0x1e: "MXM 3.0 Type B",
	0x1f: "PCI Express 2 SFF-8639 (U.2)",
	0x20: "PCI Express 3 SFF-8639 (U.2)",
	0x21: "PCI Express Mini 52-pin with bottom-side keep-outs",
	0x22: "PCI Express Mini 52-pin without bottom-side keep-outs",
	0x23: "PCI Express Mini 76-pin",
	0x24: "PCI Express 4 SFF-8639 (U.2)",
	0x25: "PCI Express 5 SFF-8639 (U.2)",
	0x26: "OCP NIC 3.0 Small Form Factor (SFF)",
	0x27: "OCP NIC 3.0 Large Form Factor (LFF)",
	0x28: "OCP NIC Prior to 3.0",
	0x30: "CXL Flexbus 1.0",
	0xa0: "PC-98/C20",
	0xa1: "PC-98/C24",
	0xa2: "PC-98/E",
	0xa3: "PC-98/Local Bus",
	0xa4: "PC-98/Card",
	0xa5: "PCI Express",
	0xa6: "PCI Express x1",
	0xa7: "PCI Express x2",
	0xa8: "PCI Express x4",
	0xa9: "PCI Express x8",
	0xaa: "PCI Express x16",
	0xab: "PCI Express 2",
	0xac: "PCI Express 2 x1",
	0xad: "PCI Express 2 x2",
	0xae: "PCI Express 2 x4",
	0xaf: "PCI Express 2 x8",
	0xb0: "PCI Express 2 x16",
	0xb1: "PCI Express 3",
	0xb2: "PCI Express 3 x1",
	0xb3: "PCI Express 3 x2",
	0xb4: "PCI Express 3 x4",
	0xb5: "PCI Express 3 x8",
	0xb6: "PCI Express 3 x16",
	0xb8: "PCI Express 4",
	0xb9: "PCI Express 4 x1",
	0xba: "PCI Express 4 x2",
	0xbb: "PCI Express 4 x4",
	0xbc: "PCI Express 4 x8",
	0xbd: "PCI Express 4 x16",
	0xbe: "PCI Express 5",
	0xbf: "PCI Express 5 x1",
	0xc0: "PCI Express 5 x2",
	0xc1: "PCI Express 5 x4",
	0xc2: "PCI Express 5 x8",
	0xc3: "PCI Express 5 x16",
	0xc4: "PCI Express 6+",
	0xc5: "EDSFF E1",
	0xc6: "EDSFF E3",
}

func (v SlotType) String() string {
	return enumString(slotTypeNames, v, "Unknown")
}

type SlotDataBusWidth uint8

var slotDataBusWidthNames = map[SlotDataBusWidth]string{
	0x01: "Other",
	0x02: "Unknown",
	0x03: "8 bit",
	0x04: "16 bit",
	0x05: "32 bit",
	0x06: "64 bit",
	0x07: "128 bit",
	0x08: "x1",
	0x09: "x2",
	0x0a: "x4",
	0x0b: "x8",
	0x0c: "x12",
	0x0d: "x16",
	0x0e: "x32",
}

func (v SlotDataBusWidth) String() string {
	return enumString(slotDataBusWidthNames, v, "Unknown")
}

type SlotUsage uint8

var slotUsageNames = map[SlotUsage]string{
	0x01: "Other",
	0x02: "Unknown",
	0x03: "Available",
	0x04: "In Use",
	0x05: "Unavailable",
}

func (v SlotUsage) String() string {
	return enumString(slotUsageNames, v, "Unknown")
}

type SlotLength uint8

var slotLengthNames = map[SlotLength]string{
	0x01: "Other",
	0x02: "Unknown",
	0x03: "Short",
	0x04: "Long",
	0x05: "2.5\" drive form factor",
	0x06: "3.5\" drive form factor",
}

func (v SlotLength) String() string {
	return enumString(slotLengthNames, v, "Unknown")
}

func decodeType8(t *Table, n *node.Node) error {
	if t.Length < 0x09 {
		return nil
	}
	p, err := overlay[Type8PortConnector](t)
	if err != nil {
		return err
	}
	n.Set("Internal Reference Designator", p.InternalReferenceDesignator, 0)
	n.Set("Internal Connector Type", p.InternalConnectorType.String(), 0)
	n.Set("External Reference Designator", p.ExternalReferenceDesignator, 0)
	n.Set("External Connector Type", p.ExternalConnectorType.String(), 0)
	n.Set("Port Type", p.PortType.String(), 0)
	return nil
}

func decodeType9(t *Table, n *node.Node) error {
	if t.Length < 0x0c {
		return nil
	}
	s, err := overlay[Type9SystemSlot](t)
	if err != nil {
		return err
	}
	n.Set("Slot Designation", s.SlotDesignation, 0)
	n.Set("Slot Type", s.SlotType.String(), 0)
	n.Set("Slot Data Bus Width", s.SlotDataBusWidth.String(), 0)
	n.Set("Current Usage", s.CurrentUsage.String(), 0)
	n.Set("Slot Length", s.SlotLength.String(), 0)
	n.Setf("Slot ID", node.FmtNumeric, "%d", s.SlotID)
	return nil
}
