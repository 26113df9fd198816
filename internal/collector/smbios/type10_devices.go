package smbios

import "github.com/zenithax-cc/hwident/pkg/node"

type Type10OnBoardDevices struct {
	Header  `smbios:"-"`
	Devices OnBoardDeviceList
}

type OnBoardDevice struct {
	DeviceType  uint8
	Description string
}

// Type is the device type with the status bit masked off.
func (d OnBoardDevice) Type() OnBoardDeviceType {
	return OnBoardDeviceType(d.DeviceType & 0x7f)
}

func (d OnBoardDevice) Enabled() bool {
	return d.DeviceType&0x80 != 0
}

type OnBoardDeviceList []OnBoardDevice

func (d *OnBoardDeviceList) parseField(t *Table, off int) (int, error) {
	for ; off+2 <= len(t.FormattedArea); off += 2 {
		typ, err := t.GetByteAt(off)
		if err != nil {
			return off, err
		}
		desc, err := t.GetStringAt(off + 1)
		if err != nil {
			return off, err
		}
		*d = append(*d, OnBoardDevice{DeviceType: typ, Description: desc})
	}
	return off, nil
}

type OnBoardDeviceType uint8

var onBoardDeviceTypeNames = map[OnBoardDeviceType]string{
	0x01: "Other",
	0x03: "Video",
	0x04: "SCSI Controller",
	0x05: "Ethernet",
	0x06: "Token Ring",
	0x07: "Sound",
	0x08: "PATA Controller",
	0x09: "SATA Controller",
	0x0a: "SAS Controller",
}

func (v OnBoardDeviceType) String() string {
	return enumString(onBoardDeviceTypeNames, v, "Unknown")
}

// Type11OEMStrings also describes type 12, which shares its layout.
type Type11OEMStrings struct {
	Header `smbios:"-"`
	Count  uint8
}

type Type13BIOSLanguage struct {
	Header               `smbios:"-"`
	InstallableLanguages uint8
	Flags                uint8
	CurrentLanguage      string `smbios:"skip=15"`
}

type Type14GroupAssociations struct {
	Header    `smbios:"-"`
	GroupName string
	Items     GroupItems
}

type GroupItem struct {
	Type   uint8
	Handle uint16
}

type GroupItems []GroupItem

func (g *GroupItems) parseField(t *Table, off int) (int, error) {
	for ; off+3 <= len(t.FormattedArea); off += 3 {
		typ, err := t.GetByteAt(off)
		if err != nil {
			return off, err
		}
		handle, err := t.GetWordAt(off + 1)
		if err != nil {
			return off, err
		}
		*g = append(*g, GroupItem{Type: typ, Handle: handle})
	}
	return off, nil
}

func decodeType10(t *Table, n *node.Node) error {
	if t.Length < 0x04 {
		return nil
	}
	d, err := overlay[Type10OnBoardDevices](t)
	if err != nil {
		return err
	}

	n.Setf("Number of Devices", node.FmtNumeric, "%d", len(d.Devices))
	devs := n.AppendNew("On Board Devices", node.Table)
	for _, dev := range d.Devices {
		row := devs.AppendNew("Device", node.Row)
		row.Set("Type", dev.Type().String(), 0)
		status := "Disabled"
		if dev.Enabled() {
			status = "Enabled"
		}
		row.Set("Status", status, 0)
		row.Set("Description", dev.Description, 0)
	}
	return nil
}

func decodeStringList(t *Table, n *node.Node, table, row string) error {
	if t.Length < 0x05 {
		return nil
	}
	s, err := overlay[Type11OEMStrings](t)
	if err != nil {
		return err
	}

	n.Setf("Number of Strings", node.FmtNumeric, "%d", s.Count)
	list := n.AppendNew(table, node.Table)
	for i := 1; i <= int(s.Count); i++ {
		list.AppendNew(row, node.Row).Set("String", t.String(uint8(i)), 0)
	}
	return nil
}

func decodeType11(t *Table, n *node.Node) error {
	return decodeStringList(t, n, "OEM Strings", "OEM String")
}

func decodeType12(t *Table, n *node.Node) error {
	return decodeStringList(t, n, "Configuration Strings", "String")
}

func decodeType13(t *Table, n *node.Node) error {
	if t.Length < 0x16 {
		return nil
	}
	l, err := overlay[Type13BIOSLanguage](t)
	if err != nil {
		return err
	}
	n.Setf("Installable Languages", node.FmtNumeric, "%d", l.InstallableLanguages)
	n.Set("Current Language", l.CurrentLanguage, 0)
	return nil
}

func decodeType14(t *Table, n *node.Node) error {
	if t.Length < 0x05 {
		return nil
	}
	g, err := overlay[Type14GroupAssociations](t)
	if err != nil {
		return err
	}

	n.Set("Group Name", g.GroupName, 0)
	n.Setf("Number of Items", node.FmtNumeric, "%d", len(g.Items))
	items := n.AppendNew("Items", node.Table)
	for _, it := range g.Items {
		row := items.AppendNew("Item", node.Row)
		row.Setf("Type", node.FmtNumeric, "%d", it.Type)
		row.Setf("Handle", node.FmtNumeric, "%d", it.Handle)
	}
	return nil
}
