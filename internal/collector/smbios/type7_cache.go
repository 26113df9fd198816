package smbios

import (
	"fmt"
	"strings"

	"github.com/zenithax-cc/hwident/pkg/node"
	"github.com/zenithax-cc/hwident/pkg/utils"
)

type Type7Cache struct {
	Header              `smbios:"-"`
	SocketDesignation   string
	Configuration       CacheConfiguration
	MaxSize             uint16
	InstalledSize       uint16
	SupportedSRAMType   SRAMType
	CurrentSRAMType     SRAMType
	Speed               uint8
	ErrorCorrectionType CacheErrorCorrection
	SystemCacheType     CacheType
	Associativity       CacheAssociativity
	MaxSize2            uint32
	InstalledSize2      uint32
}

// cacheSize applies the 2.1 granularity bit and the 3.1 wide-field escape.
// Sizes are returned in bytes.
func (c *Type7Cache) cacheSize(legacy uint16, wide uint32) uint64 {
	if legacy == 0xffff && c.Length > 0x13 {
		if wide&(1<<31) != 0 {
			return uint64(wide-(1<<31)) * 64 * utils.KB
		}
		return uint64(wide) * utils.KB
	}
	if legacy&(1<<15) != 0 {
		return uint64(legacy-(1<<15)) * 64 * utils.KB
	}
	return uint64(legacy) * utils.KB
}

func (c *Type7Cache) MaxCacheSize() uint64 {
	return c.cacheSize(c.MaxSize, c.MaxSize2)
}

func (c *Type7Cache) InstalledCacheSize() uint64 {
	return c.cacheSize(c.InstalledSize, c.InstalledSize2)
}

type CacheConfiguration uint16

func (c CacheConfiguration) Level() uint16 {
	return 1 + uint16(c&0x07)
}

func (c CacheConfiguration) Enabled() bool {
	return c&0x80 != 0
}

func (c CacheConfiguration) OperationalMode() string {
	switch (c & 0x300) >> 8 {
	case 0:
		return "Write Through"
	case 1:
		return "Write Back"
	case 2:
		return "Varies with Memory Address"
	}
	return "Unknown"
}

func (c CacheConfiguration) Location() string {
	switch (c & 0x60) >> 5 {
	case 0:
		return "Internal"
	case 1:
		return "External"
	case 2:
		return "Reserved"
	}
	return "Unknown"
}

type SRAMType uint16

var sramTypeNames = []struct {
	bit  SRAMType
	name string
}{
	{1 << 2, "Non-Burst"},
	{1 << 3, "Burst"},
	{1 << 4, "Pipeline Burst"},
	{1 << 5, "Synchronous"},
	{1 << 6, "Asynchronous"},
}

func (s SRAMType) String() string {
	var names []string
	for _, v := range sramTypeNames {
		if s&v.bit != 0 {
			names = append(names, v.name)
		}
	}
	if len(names) == 0 {
		return "Unknown"
	}
	return strings.Join(names, ",")
}

type CacheErrorCorrection uint8

var cacheErrorCorrectionNames = map[CacheErrorCorrection]string{
	0x01: "Other",
	0x03: "None",
	0x04: "Parity",
	0x05: "Single-bit ECC",
	0x06: "Multi-bit ECC",
}

func (v CacheErrorCorrection) String() string {
	return enumString(cacheErrorCorrectionNames, v, "Unknown")
}

type CacheType uint8

var cacheTypeNames = map[CacheType]string{
	0x01: "Other",
	0x03: "Instruction",
	0x04: "Data",
	0x05: "Unified",
}

func (v CacheType) String() string {
	return enumString(cacheTypeNames, v, "Unknown")
}

type CacheAssociativity uint8

var cacheAssociativityNames = map[CacheAssociativity]string{
	0x01: "Other",
	0x03: "Direct Mapped",
	0x04: "2-way Set-Associative",
	0x05: "4-way Set-Associative",
	0x06: "Fully Associative",
	0x07: "8-way Set-Associative",
	0x08: "16-way Set-Associative",
	0x09: "12-way Set-Associative",
	0x0a: "24-way Set-Associative",
	0x0b: "32-way Set-Associative",
	0x0c: "48-way Set-Associative",
	0x0d: "64-way Set-Associative",
	0x0e: "20-way Set-Associative",
}

func (v CacheAssociativity) String() string {
	return enumString(cacheAssociativityNames, v, "Unknown")
}

func decodeType7(t *Table, n *node.Node) error {
	if t.Length < 0x0f {
		return nil
	}
	c, err := overlay[Type7Cache](t)
	if err != nil {
		return err
	}

	n.Set("Socket Designation", c.SocketDesignation, 0)
	n.Setf("Cache Configuration", 0, "0x%04X", uint16(c.Configuration))
	n.Set("Operational Mode", c.Configuration.OperationalMode(), 0)
	n.SetBool("Enabled", c.Configuration.Enabled())
	n.Set("Location", c.Configuration.Location(), 0)
	n.Set("Cache Level", fmt.Sprintf("L%d", c.Configuration.Level()), 0)
	n.Set("Max Cache Size", utils.HumanSize(c.MaxCacheSize()), node.FmtHumanSize)
	n.Set("Installed Cache Size", utils.HumanSize(c.InstalledCacheSize()), node.FmtHumanSize)
	n.Set("Supported SRAM Type", c.SupportedSRAMType.String(), 0)
	n.Set("Current SRAM Type", c.CurrentSRAMType.String(), 0)
	if t.Length < 0x13 {
		return nil
	}

	if c.Speed != 0 {
		n.Setf("Cache Speed (ns)", node.FmtNumeric, "%d", c.Speed)
	}
	n.Set("Error Correction Type", c.ErrorCorrectionType.String(), 0)
	n.Set("System Cache Type", c.SystemCacheType.String(), 0)
	n.Set("Associativity", c.Associativity.String(), 0)
	return nil
}
