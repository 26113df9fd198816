package smbios

import "github.com/zenithax-cc/hwident/pkg/node"

type Type5MemoryController struct {
	Header                    `smbios:"-"`
	ErrorDetectingMethod      uint8
	ErrorCorrectingCapability uint8
	SupportedInterleave       uint8
	CurrentInterleave         uint8
	MaxMemoryModuleSize       uint8
	SupportedSpeeds           uint16
	SupportedMemoryTypes      uint16
	MemoryModuleVoltage       uint8
	NumberOfSlots             uint8
}

// MaxModuleSizeMB decodes the power-of-two module size exponent.
func (m *Type5MemoryController) MaxModuleSizeMB() uint64 {
	return uint64(2) << m.MaxMemoryModuleSize
}

type Type6MemoryModule struct {
	Header            `smbios:"-"`
	SocketDesignation string
	BankConnections   uint8
	CurrentSpeed      uint8
	CurrentMemoryType uint16
	InstalledSize     uint8
	EnabledSize       uint8
	ErrorStatus       uint8
}

func (m *Type6MemoryModule) InstalledSizeMB() uint64 {
	sz := m.InstalledSize & 0x7f
	if sz > 0x7d {
		sz = 0
	}
	return uint64(2) << sz
}

func decodeType5(t *Table, n *node.Node) error {
	if t.Length < 0x15 {
		return nil
	}
	m, err := overlay[Type5MemoryController](t)
	if err != nil {
		return err
	}
	n.Setf("Max Memory Module Size (MB)", node.FmtNumeric, "%d", m.MaxModuleSizeMB())
	n.Setf("Number of Slots", node.FmtNumeric, "%d", m.NumberOfSlots)
	return nil
}

func decodeType6(t *Table, n *node.Node) error {
	if t.Length < 0x0c {
		return nil
	}
	m, err := overlay[Type6MemoryModule](t)
	if err != nil {
		return err
	}
	n.Set("Socket Designation", m.SocketDesignation, 0)
	n.Setf("Current Speed (ns)", node.FmtNumeric, "%d", m.CurrentSpeed)
	n.Setf("Installed Size (MB)", node.FmtNumeric, "%d", m.InstalledSizeMB())
	return nil
}
