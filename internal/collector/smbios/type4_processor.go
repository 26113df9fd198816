package smbios

import (
	"fmt"
	"strings"

	"github.com/zenithax-cc/hwident/pkg/node"
)

type Type4Processor struct {
	Header            `smbios:"-"`
	SocketDesignation string
	ProcessorType     ProcessorType
	Family            uint8
	Manufacturer      string
	ID                uint64
	Version           string
	Voltage           ProcessorVoltage
	ExternalClock     uint16
	MaxSpeed          uint16
	CurrentSpeed      uint16
	Status            uint8
	ProcessorUpgrade  uint8
	L1CacheHandle     uint16
	L2CacheHandle     uint16
	L3CacheHandle     uint16
	SerialNumber      string
	AssetTag          string
	PartNumber        string
	CoreCount         uint8
	CoreEnabled       uint8
	ThreadCount       uint8
	Characteristics   uint16
	Family2           ProcessorFamily
	CoreCount2        uint16
	CoreEnabled2      uint16
	ThreadCount2      uint16
	ThreadEnabled     uint16
	SocketType        string
}

// GetFamily resolves the family byte, following the 2.6 escape to Family2.
func (p *Type4Processor) GetFamily() ProcessorFamily {
	if p.Family == 0xfe && p.Length >= 0x2a {
		return p.Family2
	}
	return ProcessorFamily(p.Family)
}

func (p *Type4Processor) GetCoreCount() int {
	if p.Length >= 0x2c && p.CoreCount == 0xff {
		return int(p.CoreCount2)
	}
	return int(p.CoreCount)
}

func (p *Type4Processor) GetCoreEnabled() int {
	if p.Length >= 0x2e && p.CoreEnabled == 0xff {
		return int(p.CoreEnabled2)
	}
	return int(p.CoreEnabled)
}

func (p *Type4Processor) GetThreadCount() int {
	if p.Length >= 0x30 && p.ThreadCount == 0xff {
		return int(p.ThreadCount2)
	}
	return int(p.ThreadCount)
}

type ProcessorType uint8

var processorTypeNames = map[ProcessorType]string{
	0x01: "Other",
	0x03: "Central Processor",
	0x04: "Math Processor",
	0x05: "DSP Processor",
	0x06: "Video Processor",
}

func (v ProcessorType) String() string {
	return enumString(processorTypeNames, v, "Unknown")
}

// ProcessorVoltage is either a legacy capability mask (bits 0-2) or, with
// bit 7 set, the current voltage in tenths of a volt.
type ProcessorVoltage uint8

func (v ProcessorVoltage) String() string {
	if v&0x80 != 0 {
		volt := uint8(v) - 0x80
		return fmt.Sprintf("%d.%d V", volt/10, volt%10)
	}
	var sb strings.Builder
	if v&0x01 != 0 {
		sb.WriteString(" 5 V")
	}
	if v&0x02 != 0 {
		sb.WriteString(" 3.3 V")
	}
	if v&0x04 != 0 {
		sb.WriteString(" 2.9 V")
	}
	return sb.String()
}

type ProcessorFamily uint16

var processorFamilyNames = map[ProcessorFamily]string{
	0x03: "8086",
	0x04: "80286",
	0x05: "Intel386 processor",
	0x06: "Intel486 processor",
	0x07: "8087",
	0x08: "80287",
	0x09: "80387",
	0x0A: "80487",
	0x0B: "Pentium processor Family",
	0x0C: "Pentium Pro processor",
	0x0D: "Pentium II processor",
	0x0E: "Pentium processor with MMX technology",
	0x0F: "Celeron processor",
	0x10: "Pentium II Xeon processor",
	0x11: "Pentium III processor",
	0x12: "M1 Family",
	0x13: "M2 Family",
	0x14: "Intel Celeron M processor",
	0x15: "Intel Pentium 4 HT processor",
	0x18: "AMD Duron Processor Family",
	0x19: "K5 Family",
	0x1A: "K6 Family",
	0x1B: "K6 - 2",
	0x1C: "K6 - 3",
	0x1D: "AMD Athlon Processor Family",
	0x1E: "AMD29000 Family",
	0x1F: "K6 - 2 +",
	0x28: "Intel Core Duo processor",
	0x29: "Intel Core Duo mobile processor",
	0x2A: "Intel Core Solo mobile processor",
	0x2B: "Intel Atom processor",
	0x2C: "Intel CoreM processor",
	0x2D: "Intel Core m3 processor",
	0x2E: "Intel Core m5 processor",
	0x2F: "Intel Core m7 processor",
	0x38: "AMD Turion II Ultra Dual - Core Mobile M Processor Family",
	0x39: "AMD Turion II Dual - Core Mobile M Processor Family",
	0x3A: "AMD Athlon II Dual - Core M Processor Family",
	0x3B: "AMD Opteron 6100 Series Processor",
	0x3C: "AMD Opteron 4100 Series Processor",
	0x3D: "AMD Opteron 6200 Series Processor",
	0x3E: "AMD Opteron 4200 Series Processor",
	0x3F: "AMD FX Series Proceesor",
	0x46: "AMD C - Series Processor",
	0x47: "AMD E - Series Processor",
	0x48: "AMD S - Series Processor",
	0x49: "AMD G - Series Processor",
	0x4A: "AMD Z - Series Processor",
	0x4B: "AMD R - Series Procerssor",
	0x4C: "AMD Opteron 4300 Series Processor",
	0x4D: "AMD Opteron 6300 Series Processor",
	0x4E: "AMD Opteron 3300 Series Processor",
	0x4F: "AMD FirePro Series Processor",
	0x60: "68040 Family",
	0x61: "68xxx",
	0x62: "68000",
	0x63: "68010",
	0x64: "68020",
	0x65: "68030",
	0x66: "AMD Athlon X4 Quad - Core Processor Family",
	0x67: "AMD Opteron X1000 Series Processor",
	0x68: "AMD Opteron X2000 Series APU",
	0x69: "AMD Opteron A - Series Processor",
	0x6A: "AMD Opteron X3000 Series APU",
	0x6B: "AMD Zen Processor Family",
	0x70: "Hobbit Family",
	0x78: "Crusoe TM5000 Family",
	0x79: "Crusoe TM3000 Family",
	0x7A: "Efficeon TM8000 Family",
	0x80: "Weitek",
	0x82: "Itanium processor",
	0x83: "AMD Athlon 64 Processor Family",
	0x84: "AMD Opteron Processor Family",
	0x85: "AMD Sempron Processor Family",
	0x86: "AMD Turion 64 Mobile Technology",
	0x87: "Dual - Core AMD Opteron Processor Family",
	0x88: "AMD Athlon 64 X2 Dual - Core Processor Family",
	0x89: "AMD Turion 64 X2 Mobile Technology",
	0x8A: "Quad - Core AMD Opteron Processor Family",
	0x8B: "Third - Generation AMD Opteron Processor Family",
	0x8C: "AMD Phenom FX Quard - Core Processor Family",
	0x8D: "AMD Phenom FX X4 Quard - Core Processor Family",
	0x8E: "AMD Phenom FX X2 Quard - Core Processor Family",
	0x8F: "AMD Athlon X2 Dual - Core Processor Family",
	0xA0: "V30 Family",
	0xA1: "Quad - Core Intel Xeon processor 3200 Series",
	0xA2: "Dual - Core Intel Xeon processor 3000 Series",
	0xA3: "Quad - Core Intel Xeon processor 5300 Series",
	0xA4: "Dual - Core Intel Xeon processor 5100 Series",
	0xA5: "Dual - Core Intel Xeon processor 5000 Series",
	0xA6: "Dual - Core Intel Xeon processor LV",
	0xA7: "Dual - Core Intel Xeon processor ULV",
	0xA8: "Dual - Core Intel Xeon processor 7100 Series",
	0xA9: "Quad - Core Intel Xeon processor 5400 Series",
	0xAA: "Quad - Core Intel Xeon processor",
	0xAB: "Dual - Core Intel Xeon processor 5200 Series",
	0xAC: "Dual - Core Intel Xeon processor 7200 Series",
	0xAD: "Quad - Core Intel Xeon processor 7300 Series",
	0xAE: "Quad - Core Intel Xeon processor 7400 Series",
	0xAF: "Multi - Core Intel Xeon processor 7400 Series",
	0xB0: "Pentium III Xeon processor",
	0xB1: "Pentium III Processor with Intel SpeedStep.Technology",
	0xB2: "Pentium 4 Processor",
	0xB3: "Intel Xeon",
	0xB4: "AS400 Family",
	0xB5: "Intel Xeon processor MP",
	0xB6: "AMD Athlon XP Processor Family",
	0xB7: "AMD Athlon MP Processor Family",
	0xB8: "Intel ItaniumR 2 processor",
	0xB9: "Intel Pentium M processor",
	0xBA: "Intel Celeron D processor",
	0xBB: "Intel Pentium D processor",
	0xBC: "Intel Pentium Processor Extreme Edition",
	0xBD: "Intel Core Solo Processor",
	0xBF: "Intel Core 2 Duo Processor",
	0xC0: "Intel Core 2 Solo processor",
	0xC1: "Intel Core 2 Extreme processor",
	0xC2: "Intel Core 2 Quad processor",
	0xC3: "Intel Core 2 Extreme mobile processor",
	0xC4: "Intel Core 2 Duo mobile processor",
	0xC5: "Intel Core 2 Solo mobile processor",
	0xC6: "Intel Core i7 processor",
	0xC7: "Dual - Core Intel Celeron processor",
	0xC8: "IBM390 Family",
	0xC9: "G4",
	0xCA: "G5",
	0xCB: "ESA / 390 G6",
	0xCC: "z / Architectur base",
	0xCD: "Intel Core i5 processor",
	0xCE: "Intel Core i3 processor",
	0xCF: "Intel Core i9 processor",
	0xD2: "VIA C7 - M Processor Family",
	0xD3: "VIA C7 - D Processor Family",
	0xD4: "VIA C7 Processor Family",
	0xD5: "VIA Eden Processor Family",
	0xD6: "Multi - Core Intel Xeon processor",
	0xD7: "Dual - Core Intel Xeon processor 3xxx Series",
	0xD8: "Quad - Core Intel Xeon processor 3xxx Series",
	0xD9: "VIA Nano Processor Family",
	0xDA: "Dual - Core Intel Xeon processor 5xxx Series",
	0xDB: "Quad - Core Intel Xeon processor 5xxx Series",
	0xDD: "Dual - Core Intel Xeon processor 7xxx Series",
	0xDE: "Quad - Core Intel Xeon processor 7xxx Series",
	0xDF: "Multi - Core Intel Xeon processor 7xxx Series",
	0xE0: "Multi - Core Intel Xeon processor 3400 Series",
	0xE4: "AMD Opteron 3000 Series Processor",
	0xE5: "AMD Sempron II Processor",
	0xE6: "Embedded AMD Opteron Quad - Core Processor Family",
	0xE7: "AMD Phenom Triple - Core Processor Family",
	0xE8: "AMD Turion Ultra Dual - Core Mobile Processor Family",
	0xE9: "AMD Turion Dual - Core Mobile Processor Family",
	0xEA: "AMD Athlon Dual - Core Processor Family",
	0xEB: "AMD Sempron SI Processor Family",
	0xEC: "AMD Phenom II Processor Family",
	0xED: "AMD Athlon II Processor Family",
	0xEE: "Six - Core AMD Opteron Processor Family",
	0xEF: "AMD Sempron M Processor Family",

	0x100: "ARMv7",
	0x101: "ARMv8",
	0x102: "ARMv9",
	0x104: "SH-3",
	0x105: "SH-4",
	0x118: "ARM",
	0x119: "StrongARM",
	0x12C: "6x86",
	0x12D: "MediaGX",
	0x12E: "MII",
	0x140: "WinChip",
	0x15E: "DSP",
	0x1F4: "Video Processor",
	0x200: "RISC-V RV32",
	0x201: "RISC-V RV64",
	0x202: "RISC-V RV128",
	0x258: "LoongArch",
}

func (v ProcessorFamily) String() string {
	return enumString(processorFamilyNames, v, "Unknown")
}

func decodeType4(t *Table, n *node.Node) error {
	if t.Length < 0x1a {
		return nil
	}
	p, err := overlay[Type4Processor](t)
	if err != nil {
		return err
	}

	n.Set("Socket Designation", p.SocketDesignation, 0)
	n.Set("Type", p.ProcessorType.String(), 0)
	n.Set("Processor Family", p.GetFamily().String(), 0)
	n.Set("Processor Manufacturer", p.Manufacturer, 0)
	n.Set("Processor Version", p.Version, 0)
	if p.Voltage != 0 {
		n.Set("Voltage", p.Voltage.String(), 0)
	}
	if p.ExternalClock != 0 {
		n.Setf("External Clock (MHz)", node.FmtNumeric, "%d", p.ExternalClock)
	}
	n.Setf("Max Speed (MHz)", node.FmtNumeric, "%d", p.MaxSpeed)
	n.Setf("Current Speed (MHz)", node.FmtNumeric, "%d", p.CurrentSpeed)
	if t.Length < 0x23 {
		return nil
	}

	n.Set("Serial Number", p.SerialNumber, 0)
	n.Set("Asset Tag", p.AssetTag, 0)
	n.Set("Part Number", p.PartNumber, 0)
	if t.Length < 0x28 {
		return nil
	}

	n.Setf("Core Count", node.FmtNumeric, "%d", p.GetCoreCount())
	n.Setf("Core Enabled", node.FmtNumeric, "%d", p.GetCoreEnabled())
	n.Setf("Thread Count", node.FmtNumeric, "%d", p.GetThreadCount())
	n.Setf("Processor Characteristics", 0, "0x%04X", p.Characteristics)
	return nil
}
