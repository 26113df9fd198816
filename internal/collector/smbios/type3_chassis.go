package smbios

import "github.com/zenithax-cc/hwident/pkg/node"

type Type3Chassis struct {
	Header             `smbios:"-"`
	Manufacturer       string
	ChassisType        ChassisType
	Version            string
	SerialNumber       string
	AssetTag           string
	BootupState        ChassisState
	PowerSupplyState   ChassisState
	ThermalState       ChassisState
	SecurityStatus     ChassisSecurityStatus
	OEMDefined         uint32
	Height             uint8
	NumberOfPowerCords uint8
}

// ChassisType carries the lock flag in bit 7.
type ChassisType uint8

var chassisTypeStrings = map[ChassisType]string{
	0x01: "Other",
	0x03: "Desktop",
	0x04: "Low Profile Desktop",
	0x05: "Pizza Box",
	0x06: "Mini Tower",
	0x07: "Tower",
	0x08: "Portable",
	0x09: "Laptop",
	0x0a: "Notebook",
	0x0b: "Hand Held",
	0x0c: "Docking Station",
	0x0d: "All in One",
	0x0e: "Sub Notebook",
	0x0f: "Space-saving",
	0x10: "Lunch Box",
	0x11: "Main Server Chassis",
	0x12: "Expansion Chassis",
	0x13: "SubChassis",
	0x14: "Bus Expansion Chassis",
	0x15: "Peripheral Chassis",
	0x16: "RAID Chassis",
	0x17: "Rack Mount Chassis",
	0x18: "Sealed-case PC",
	0x19: "Multi-system chassis",
	0x1a: "Compact PCI",
	0x1b: "Advanced TCA",
	0x1c: "Blade",
	0x1d: "Blade Enclosure",
	0x1e: "Tablet",
	0x1f: "Convertible",
	0x20: "Detachable",
	0x21: "IoT Gateway",
	0x22: "Embedded PC",
	0x23: "Mini PC",
	0x24: "Stick PC",
}

func (c ChassisType) Locked() bool {
	return c&0x80 != 0
}

func (c ChassisType) String() string {
	s := enumString(chassisTypeStrings, c&0x7f, "Unknown")
	if c.Locked() {
		return "[LOCK]" + s
	}
	return s
}

type ChassisState uint8

var chassisStateStrings = map[ChassisState]string{
	0x01: "Other",
	0x03: "Safe",
	0x04: "Warning",
	0x05: "Critical",
	0x06: "Non-recoverable",
}

func (s ChassisState) String() string {
	return enumString(chassisStateStrings, s, "Unknown")
}

type ChassisSecurityStatus uint8

var chassisSecurityStrings = map[ChassisSecurityStatus]string{
	0x01: "Other",
	0x03: "None",
	0x04: "External interface locked out",
	0x05: "External interface enabled",
}

func (s ChassisSecurityStatus) String() string {
	return enumString(chassisSecurityStrings, s, "Unknown")
}

func decodeType3(t *Table, n *node.Node) error {
	if t.Length < 0x09 {
		return nil
	}
	c, err := overlay[Type3Chassis](t)
	if err != nil {
		return err
	}

	n.Set("Type", c.ChassisType.String(), 0)
	n.Set("Manufacturer", c.Manufacturer, 0)
	n.Set("Version", c.Version, 0)
	n.Set("Serial Number", c.SerialNumber, 0)
	n.Set("Asset Tag", c.AssetTag, 0)
	if t.Length < 0x0d {
		return nil
	}
	n.Set("Boot-up State", c.BootupState.String(), 0)
	n.Set("Power Supply State", c.PowerSupplyState.String(), 0)
	n.Set("Thermal State", c.ThermalState.String(), 0)
	n.Set("Security Status", c.SecurityStatus.String(), 0)
	if t.Length < 0x15 {
		return nil
	}
	n.Setf("OEM-defined", node.FmtNumeric, "%d", c.OEMDefined)
	return nil
}
