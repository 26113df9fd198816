package smbios

import "github.com/zenithax-cc/hwident/pkg/node"

type Type21PointingDevice struct {
	Header          `smbios:"-"`
	Type            PointingDeviceType
	Interface       PointingDeviceInterface
	NumberOfButtons uint8
}

type PointingDeviceType uint8

var pointingDeviceTypeNames = map[PointingDeviceType]string{
	0x01: "Other",
	0x03: "Mouse",
	0x04: "Track Ball",
	0x05: "Track Point",
	0x06: "Glide Point",
	0x07: "Touch Pad",
	0x08: "Touch Screen",
	0x09: "Optical Sensor",
}

func (v PointingDeviceType) String() string {
	return enumString(pointingDeviceTypeNames, v, "Unknown")
}

type PointingDeviceInterface uint8

var pointingDeviceInterfaceNames = map[PointingDeviceInterface]string{
	0x01: "Other",
	0x03: "Serial",
	0x04: "PS/2",
	0x05: "Infrared",
	0x06: "HP-HIL",
	0x07: "Bus mouse",
	0x08: "ADB",
	0xa0: "Bus mouse DB-9",
	0xa1: "Bus mouse micro-DIN",
	0xa2: "USB",
	0xa3: "I2C",
	0xa4: "SPI",
}

func (v PointingDeviceInterface) String() string {
	return enumString(pointingDeviceInterfaceNames, v, "Unknown")
}

type Type22PortableBattery struct {
	Header          `smbios:"-"`
	Location        string
	Manufacturer    string
	ManufactureDate string
	SerialNumber    string
	DeviceName      string
}

type Type23SystemReset struct {
	Header        `smbios:"-"`
	Capabilities  uint8
	ResetCount    uint16
	ResetLimit    uint16
	TimerInterval uint16
	Timeout       uint16
}

type ResetBootOption uint8

var resetBootOptionNames = map[ResetBootOption]string{
	0x01: "Operating System",
	0x02: "System Utilities",
	0x03: "Do Not Reboot",
}

func (v ResetBootOption) String() string {
	return enumString(resetBootOptionNames, v, "Reserved")
}

type Type24HardwareSecurity struct {
	Header   `smbios:"-"`
	Settings uint8
}

type SecurityStatus uint8

var securityStatusNames = map[SecurityStatus]string{
	0x00: "Disabled",
	0x01: "Enabled",
	0x02: "Not Implemented",
}

func (v SecurityStatus) String() string {
	return enumString(securityStatusNames, v, "Unknown")
}

type Type25SystemPowerControls struct {
	Header `smbios:"-"`
	Month  uint8
	Day    uint8
	Hour   uint8
	Minute uint8
	Second uint8
}

type Type30RemoteAccess struct {
	Header       `smbios:"-"`
	Manufacturer string
	Connections  uint8
}

type Type32SystemBoot struct {
	Header     `smbios:"-"`
	BootStatus BootStatus `smbios:"skip=6"`
}

type BootStatus uint8

var bootStatusNames = map[BootStatus]string{
	0: "No errors detected",
	1: "No bootable media",
	2: "Operating system failed to load",
	3: "Firmware-detected hardware failure",
	4: "Operating system-detected hardware failure",
	5: "User-requested boot",
	6: "System security violation",
	7: "Previously-requested image",
	8: "System watchdog timer expired",
}

func (v BootStatus) String() string {
	switch {
	case v >= 192:
		return "Product-specific"
	case v >= 128:
		return "Vendor/OEM-specific"
	}
	return enumString(bootStatusNames, v, "Reserved")
}

func decodeType21(t *Table, n *node.Node) error {
	if t.Length < 0x07 {
		return nil
	}
	p, err := overlay[Type21PointingDevice](t)
	if err != nil {
		return err
	}
	n.Set("Type", p.Type.String(), 0)
	n.Set("Interface", p.Interface.String(), 0)
	n.Setf("Number of Buttons", node.FmtNumeric, "%d", p.NumberOfButtons)
	return nil
}

func decodeType22(t *Table, n *node.Node) error {
	if t.Length < 0x1a {
		return nil
	}
	b, err := overlay[Type22PortableBattery](t)
	if err != nil {
		return err
	}
	n.Set("Location", b.Location, 0)
	n.Set("Manufacturer", b.Manufacturer, 0)
	n.Set("Manufacturer Date", b.ManufactureDate, 0)
	n.Set("Serial Number", b.SerialNumber, 0)
	n.Set("Device Name", b.DeviceName, 0)
	return nil
}

func decodeType23(t *Table, n *node.Node) error {
	if t.Length < 0x0d {
		return nil
	}
	r, err := overlay[Type23SystemReset](t)
	if err != nil {
		return err
	}
	n.SetBool("Watchdog Timer", r.Capabilities&(1<<5) != 0)
	n.Set("Boot Option on Limit", ResetBootOption((r.Capabilities&0x18)>>3).String(), 0)
	n.Set("Boot Option", ResetBootOption((r.Capabilities&0x06)>>1).String(), 0)
	n.SetBool("System Reset Status", r.Capabilities&0x01 != 0)
	n.Setf("Reset Count", node.FmtNumeric, "%d", r.ResetCount)
	n.Setf("Reset Limit", node.FmtNumeric, "%d", r.ResetLimit)
	n.Setf("Timer Interval", node.FmtNumeric, "%d", r.TimerInterval)
	n.Setf("Timeout", node.FmtNumeric, "%d", r.Timeout)
	return nil
}

func decodeType24(t *Table, n *node.Node) error {
	if t.Length < 0x05 {
		return nil
	}
	h, err := overlay[Type24HardwareSecurity](t)
	if err != nil {
		return err
	}
	n.Set("Power-on Password", SecurityStatus((h.Settings&0xc0)>>6).String(), 0)
	n.Set("Keyboard Password", SecurityStatus((h.Settings&0x30)>>4).String(), 0)
	n.Set("Administrator Password", SecurityStatus((h.Settings&0x0c)>>2).String(), 0)
	n.Set("Front Panel Reset", SecurityStatus(h.Settings&0x03).String(), 0)
	return nil
}

func decodeType25(t *Table, n *node.Node) error {
	if t.Length < 0x09 {
		return nil
	}
	p, err := overlay[Type25SystemPowerControls](t)
	if err != nil {
		return err
	}
	// BCD values, printed as hex digits.
	n.Setf("Next Scheduled Power-on", 0, "%02X-%02X-%02X:%02X:%02X", p.Month, p.Day, p.Hour, p.Minute, p.Second)
	return nil
}

func decodeType30(t *Table, n *node.Node) error {
	if t.Length < 0x06 {
		return nil
	}
	r, err := overlay[Type30RemoteAccess](t)
	if err != nil {
		return err
	}
	n.Set("Manufacturer", r.Manufacturer, 0)
	n.SetBool("Outbound Connection Enabled", r.Connections&(1<<1) != 0)
	n.SetBool("Inbound Connection Enabled", r.Connections&(1<<0) != 0)
	return nil
}

func decodeType32(t *Table, n *node.Node) error {
	if t.Length < 0x0b {
		return nil
	}
	b, err := overlay[Type32SystemBoot](t)
	if err != nil {
		return err
	}
	n.Set("Boot Status", b.BootStatus.String(), 0)
	return nil
}
