package smbios

import "github.com/zenithax-cc/hwident/pkg/node"

type Type15SystemEventLog struct {
	Header               `smbios:"-"`
	LogAreaLength        uint16
	LogHeaderStartOffset uint16
	LogDataStartOffset   uint16
	AccessMethod         uint8
	LogStatus            uint8
	LogChangeToken       uint32
	AccessMethodAddress  uint32
}

func decodeType15(t *Table, n *node.Node) error {
	if t.Length < 0x14 {
		return nil
	}
	l, err := overlay[Type15SystemEventLog](t)
	if err != nil {
		return err
	}
	n.Setf("Log Area Length", node.FmtNumeric, "%d", l.LogAreaLength)
	n.Setf("Log Header Start Offset", node.FmtNumeric, "%d", l.LogHeaderStartOffset)
	n.Setf("Log Data Start Offset", node.FmtNumeric, "%d", l.LogDataStartOffset)
	n.Setf("Access Method", 0, "0x%02X", l.AccessMethod)
	n.Setf("Log Status", 0, "0x%02X", l.LogStatus)
	n.Setf("Log Change Token", 0, "0x%08X", l.LogChangeToken)
	n.Setf("Access Method Address", 0, "0x%08X", l.AccessMethodAddress)
	return nil
}
