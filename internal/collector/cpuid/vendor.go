package cpuid

import "encoding/binary"

type Vendor int

const (
	VendorIntel Vendor = iota
	VendorAMD
	VendorCyrix
	VendorNexGen
	VendorTransmeta
	VendorUMC
	VendorCentaur
	VendorRise
	VendorSiS
	VendorNSC
	VendorHygon
	VendorUnknown Vendor = -1
)

var vendorTable = []struct {
	vendor Vendor
	match  string
}{
	{VendorIntel, "GenuineIntel"},
	{VendorAMD, "AuthenticAMD"},
	{VendorCyrix, "CyrixInstead"},
	{VendorNexGen, "NexGenDriven"},
	{VendorTransmeta, "GenuineTMx86"},
	{VendorUMC, "UMC UMC UMC "},
	{VendorCentaur, "CentaurHauls"},
	{VendorRise, "RiseRiseRise"},
	{VendorSiS, "SiS SiS SiS "},
	{VendorNSC, "Geode by NSC"},
	{VendorHygon, "HygonGenuine"},
}

var vendorNames = map[Vendor]string{
	VendorIntel:     "Intel",
	VendorAMD:       "AMD",
	VendorCyrix:     "Cyrix",
	VendorNexGen:    "NexGen",
	VendorTransmeta: "Transmeta",
	VendorUMC:       "UMC",
	VendorCentaur:   "Centaur",
	VendorRise:      "Rise",
	VendorSiS:       "SiS",
	VendorNSC:       "NSC",
	VendorHygon:     "Hygon",
}

func (v Vendor) String() string {
	if s, ok := vendorNames[v]; ok {
		return s
	}
	return "Unknown"
}

// identifyVendor assembles the 12 byte vendor string from leaf 0 in EBX, EDX,
// ECX order and looks it up case-sensitively.
func identifyVendor(leaf0 Regs) (Vendor, string) {
	var b [12]byte
	binary.LittleEndian.PutUint32(b[0:4], leaf0.EBX)
	binary.LittleEndian.PutUint32(b[4:8], leaf0.EDX)
	binary.LittleEndian.PutUint32(b[8:12], leaf0.ECX)
	s := cString(b[:])

	for _, v := range vendorTable {
		if v.match == s {
			return v.vendor, s
		}
	}
	return VendorUnknown, s
}

func cString(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
