package cpuid

import (
	"encoding/binary"
	"runtime"
	"strings"
)

// Identity is the decoded view of one Raw table. Cache sizes are in KB.
// Unknown cache fields and SSESize are -1.
type Identity struct {
	Vendor    Vendor
	VendorStr string
	Brand     string
	Codename  string

	Family    int
	Model     int
	Stepping  int
	ExtFamily int
	ExtModel  int

	Flags [NumFeatures]bool

	NumCores         int
	NumLogicalCPUs   int
	TotalLogicalCPUs int

	L1DataCache        int
	L1InstructionCache int
	L2Cache            int
	L3Cache            int
	L4Cache            int

	L1Assoc            int
	L1DataAssoc        int
	L1InstructionAssoc int
	L2Assoc            int
	L3Assoc            int
	L4Assoc            int

	L1Cacheline            int
	L1DataCacheline        int
	L1InstructionCacheline int
	L2Cacheline            int
	L3Cacheline            int
	L4Cacheline            int

	SSESize int

	// Hints from the vendor refinement, fed to the codename matcher.
	BrandCode int
	ModelCode int
	ModelBits uint64
}

func newIdentity() *Identity {
	return &Identity{
		Vendor: VendorUnknown,

		L1DataCache:        -1,
		L1InstructionCache: -1,
		L2Cache:            -1,
		L3Cache:            -1,
		L4Cache:            -1,

		L1Assoc:            -1,
		L1DataAssoc:        -1,
		L1InstructionAssoc: -1,
		L2Assoc:            -1,
		L3Assoc:            -1,
		L4Assoc:            -1,

		L1Cacheline:            -1,
		L1DataCacheline:        -1,
		L1InstructionCacheline: -1,
		L2Cacheline:            -1,
		L3Cacheline:            -1,
		L4Cacheline:            -1,

		SSESize: -1,
	}
}

func (id *Identity) Has(f Feature) bool {
	if f < 0 || f >= NumFeatures {
		return false
	}
	return id.Flags[f]
}

// Identify decodes raw. A nil raw collects the host table first.
//
// An unrecognised vendor is not fatal: the vendor independent fields are
// filled and the identity is returned together with ErrCPUUnknown.
func Identify(raw *Raw) (*Identity, error) {
	if raw == nil {
		return IdentifyHost()
	}

	id := newIdentity()
	basicIdentify(raw, id)

	var err error
	switch id.Vendor {
	case VendorIntel:
		identifyIntel(raw, id)
	case VendorAMD, VendorHygon:
		identifyAMD(raw, id)
	case VendorUnknown:
		err = ErrCPUUnknown
	}

	id.L1Assoc = id.L1DataAssoc
	id.L1Cacheline = id.L1DataCacheline

	return id, err
}

// IdentifyHost collects the host table and identifies it.
func IdentifyHost() (*Identity, error) {
	raw, err := Collect()
	if err != nil {
		return nil, err
	}
	return Identify(raw)
}

func basicIdentify(raw *Raw, id *Identity) {
	id.Vendor, id.VendorStr = identifyVendor(raw.Basic[0])

	if raw.maxBasic() >= 1 {
		eax := raw.Basic[1].EAX
		id.Family = int((eax >> 8) & 0xf)
		id.Model = int((eax >> 4) & 0xf)
		id.Stepping = int(eax & 0xf)
		xmodel := int((eax >> 16) & 0xf)
		xfamily := int((eax >> 20) & 0xff)
		if id.Vendor == VendorAMD && id.Family < 0xf {
			id.ExtFamily = id.Family
		} else {
			id.ExtFamily = id.Family + xfamily
		}
		id.ExtModel = id.Model + (xmodel << 4)
	}

	if raw.maxExt() >= extBase+4 {
		id.Brand = brandString(raw)
	}

	loadCommonFeatures(raw, id)
	id.TotalLogicalCPUs = runtime.NumCPU()
}

func brandString(raw *Raw) string {
	var b [48]byte
	for i := 0; i < 3; i++ {
		r := raw.Ext[2+i]
		binary.LittleEndian.PutUint32(b[16*i:], r.EAX)
		binary.LittleEndian.PutUint32(b[16*i+4:], r.EBX)
		binary.LittleEndian.PutUint32(b[16*i+8:], r.ECX)
		binary.LittleEndian.PutUint32(b[16*i+12:], r.EDX)
	}
	return strings.TrimLeft(cString(b[:]), " ")
}
