package cpuid

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vendorRegs(vendor string, maxLeaf uint32) Regs {
	var b [12]byte
	copy(b[:], vendor)
	return Regs{
		EAX: maxLeaf,
		EBX: binary.LittleEndian.Uint32(b[0:4]),
		EDX: binary.LittleEndian.Uint32(b[4:8]),
		ECX: binary.LittleEndian.Uint32(b[8:12]),
	}
}

func setBrand(raw *Raw, brand string) {
	var b [48]byte
	copy(b[:], brand)
	raw.Ext[0].EAX = max(raw.Ext[0].EAX, extBase+4)
	for i := 0; i < 3; i++ {
		raw.Ext[2+i] = Regs{
			EAX: binary.LittleEndian.Uint32(b[16*i:]),
			EBX: binary.LittleEndian.Uint32(b[16*i+4:]),
			ECX: binary.LittleEndian.Uint32(b[16*i+8:]),
			EDX: binary.LittleEndian.Uint32(b[16*i+12:]),
		}
	}
}

func TestIdentifyVendor(t *testing.T) {
	tests := []struct {
		str  string
		want Vendor
	}{
		{"GenuineIntel", VendorIntel},
		{"AuthenticAMD", VendorAMD},
		{"CyrixInstead", VendorCyrix},
		{"NexGenDriven", VendorNexGen},
		{"GenuineTMx86", VendorTransmeta},
		{"UMC UMC UMC ", VendorUMC},
		{"CentaurHauls", VendorCentaur},
		{"RiseRiseRise", VendorRise},
		{"SiS SiS SiS ", VendorSiS},
		{"Geode by NSC", VendorNSC},
		{"HygonGenuine", VendorHygon},
		{"genuineintel", VendorUnknown},
		{"VIA VIA VIA ", VendorUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			v, s := identifyVendor(vendorRegs(tt.str, 1))
			assert.Equal(t, tt.want, v)
			assert.Equal(t, tt.str, s)
		})
	}
}

func TestIdentifyUnknownVendor(t *testing.T) {
	raw := &Raw{Present: SectionBasic | SectionExt}
	raw.Basic[0] = vendorRegs("VIA VIA VIA ", 1)
	raw.Basic[1].EAX = 0x000006f2
	raw.Basic[1].EDX = 1 << 25
	setBrand(raw, "VIA Nano")

	id, err := Identify(raw)
	require.ErrorIs(t, err, ErrCPUUnknown)
	require.NotNil(t, id)

	assert.Equal(t, VendorUnknown, id.Vendor)
	assert.Equal(t, 6, id.Family)
	assert.Equal(t, 0xf, id.Model)
	assert.Equal(t, 2, id.Stepping)
	assert.Equal(t, "VIA Nano", id.Brand)
	assert.True(t, id.Has(FeatureSSE))
	assert.Equal(t, -1, id.SSESize)
	assert.Empty(t, id.Codename)
}

func TestExtFamily(t *testing.T) {
	tests := []struct {
		name   string
		vendor string
		eax    uint32
		want   int
	}{
		{"amd fam f xfam 2", "AuthenticAMD", 2<<20 | 0xf<<8, 17},
		{"amd fam 6 xfam 3", "AuthenticAMD", 3<<20 | 6<<8, 6},
		{"intel fam 6", "GenuineIntel", 6 << 8, 6},
		{"intel fam f xfam 1", "GenuineIntel", 1<<20 | 0xf<<8, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := &Raw{Present: SectionBasic | SectionExt}
			raw.Basic[0] = vendorRegs(tt.vendor, 1)
			raw.Basic[1].EAX = tt.eax

			id, err := Identify(raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, id.ExtFamily)
		})
	}
}

func TestSSESize(t *testing.T) {
	const sse = 1 << 25

	tests := []struct {
		name   string
		vendor string
		eax    uint32
		edx    uint32
		want   int
	}{
		{"amd ext family 16", "AuthenticAMD", 1<<20 | 0xf<<8, sse, 128},
		{"amd ext family 17", "AuthenticAMD", 2<<20 | 0xf<<8, sse, 64},
		{"amd ext family 25", "AuthenticAMD", 0xa<<20 | 0xf<<8, sse, 128},
		{"amd k7", "AuthenticAMD", 6 << 8, sse, 64},
		{"intel ext model 15", "GenuineIntel", 6<<8 | 0xf<<4, sse, 128},
		{"intel ext model 14", "GenuineIntel", 6<<8 | 0xe<<4, sse, 64},
		{"intel ext model 158", "GenuineIntel", 9<<16 | 6<<8 | 0xe<<4, sse, 128},
		{"intel netburst", "GenuineIntel", 0xf<<8 | 2<<4, sse, 64},
		{"intel without sse", "GenuineIntel", 6<<8 | 0xf<<4, 0, -1},
		{"cyrix", "CyrixInstead", 6 << 8, sse, -1},
		{"centaur", "CentaurHauls", 6<<8 | 0xf<<4, sse, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := &Raw{Present: SectionBasic | SectionExt}
			raw.Basic[0] = vendorRegs(tt.vendor, 1)
			raw.Basic[1].EAX = tt.eax
			raw.Basic[1].EDX = tt.edx

			id, err := Identify(raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, id.SSESize)
		})
	}
}

func TestFeatureEDX1Bit0(t *testing.T) {
	for _, vendor := range []string{"GenuineIntel", "AuthenticAMD", "VIA VIA VIA "} {
		t.Run(vendor, func(t *testing.T) {
			raw := &Raw{Present: SectionBasic | SectionExt}
			raw.Basic[0] = vendorRegs(vendor, 1)
			raw.Basic[1].EDX = 1

			id, _ := Identify(raw)
			require.NotNil(t, id)
			assert.Equal(t, []string{"fpu"}, id.Features())
		})
	}
}

func TestFeatureGates(t *testing.T) {
	raw := &Raw{Present: SectionBasic | SectionExt}
	raw.Basic[0] = vendorRegs("GenuineIntel", 1)
	// leaf 7 is above the reported maximum
	raw.Basic[7].EBX = 1 << 5

	id, err := Identify(raw)
	require.NoError(t, err)
	assert.False(t, id.Has(FeatureAVX2))

	raw.Basic[0].EAX = 7
	id, err = Identify(raw)
	require.NoError(t, err)
	assert.True(t, id.Has(FeatureAVX2))
}

func TestConstructorDefaults(t *testing.T) {
	id := newIdentity()
	for _, v := range []int{
		id.L1DataCache, id.L1InstructionCache, id.L2Cache, id.L3Cache, id.L4Cache,
		id.L1Assoc, id.L1DataAssoc, id.L1InstructionAssoc, id.L2Assoc, id.L3Assoc, id.L4Assoc,
		id.L1Cacheline, id.L1DataCacheline, id.L1InstructionCacheline, id.L2Cacheline, id.L3Cacheline, id.L4Cacheline,
		id.SSESize,
	} {
		assert.Equal(t, -1, v)
	}
}

func TestBrandString(t *testing.T) {
	raw := &Raw{Present: SectionBasic | SectionExt}
	raw.Basic[0] = vendorRegs("GenuineIntel", 1)
	setBrand(raw, "       Intel(R) Xeon(R) Gold 6338 CPU @ 2.00GHz")

	id, err := Identify(raw)
	require.NoError(t, err)
	assert.Equal(t, "Intel(R) Xeon(R) Gold 6338 CPU @ 2.00GHz", id.Brand)
	assert.Equal(t, intelXeon, id.BrandCode)
	assert.NotZero(t, id.ModelBits&bitXeonScalable)

	raw.Ext[0].EAX = extBase + 3
	id, err = Identify(raw)
	require.NoError(t, err)
	assert.Empty(t, id.Brand)
}

func cacheLeaf(typ, level, ways, line, sets uint32) Regs {
	return Regs{
		EAX: typ | level<<5,
		EBX: (ways-1)<<22 | (line - 1),
		ECX: sets - 1,
	}
}

func TestIntelDeterministicCaches(t *testing.T) {
	raw := &Raw{Present: SectionBasic | SectionExt | SectionIntelFn4}
	raw.Basic[0] = vendorRegs("GenuineIntel", 4)
	raw.Basic[1].EAX = 0x000906ea
	raw.IntelFn4[0] = cacheLeaf(cacheTypeData, 1, 8, 64, 64)
	raw.IntelFn4[1] = cacheLeaf(cacheTypeInstruction, 1, 8, 64, 64)
	raw.IntelFn4[2] = cacheLeaf(cacheTypeUnified, 2, 16, 64, 1024)
	raw.IntelFn4[3] = cacheLeaf(cacheTypeUnified, 3, 16, 64, 16384)
	raw.IntelFn4[3].EAX |= 1 << 9

	id, err := Identify(raw)
	require.NoError(t, err)

	assert.Equal(t, 0x9e, id.ExtModel)
	assert.Equal(t, 32, id.L1DataCache)
	assert.Equal(t, 32, id.L1InstructionCache)
	assert.Equal(t, 8, id.L1Assoc)
	assert.Equal(t, 64, id.L1Cacheline)
	assert.Equal(t, 1024, id.L2Cache)
	assert.Equal(t, 16, id.L2Assoc)
	assert.Equal(t, 16384, id.L3Cache)
	assert.Equal(t, FullyAssociative, id.L3Assoc)
	assert.Equal(t, -1, id.L4Cache)
	assert.Equal(t, 1, id.NumCores)
}

func TestIntelTopologyLeaf(t *testing.T) {
	raw := &Raw{Present: SectionBasic | SectionExt | SectionIntelFn11}
	raw.Basic[0] = vendorRegs("GenuineIntel", 0xb)
	raw.IntelFn11[0] = Regs{EBX: 2, ECX: 1 << 8}
	raw.IntelFn11[1] = Regs{EBX: 16, ECX: 2<<8 | 1}

	id, err := Identify(raw)
	require.NoError(t, err)
	assert.Equal(t, 16, id.NumLogicalCPUs)
	assert.Equal(t, 8, id.NumCores)
}

func TestAMDCaches(t *testing.T) {
	raw := &Raw{Present: SectionBasic | SectionExt}
	raw.Basic[0] = vendorRegs("AuthenticAMD", 1)
	raw.Basic[1].EAX = 8<<20 | 0xf<<8 | 1<<4
	raw.Ext[0].EAX = 0x80000008
	raw.Ext[5].ECX = 32<<24 | 8<<16 | 64
	raw.Ext[5].EDX = 32<<24 | 8<<16 | 64
	raw.Ext[6].ECX = 512<<16 | 0x6<<12 | 64
	raw.Ext[6].EDX = 64<<18 | 0xa<<12 | 64
	raw.Ext[8].ECX = 15

	id, err := Identify(raw)
	require.NoError(t, err)

	assert.Equal(t, 0x17, id.ExtFamily)
	assert.Equal(t, 32, id.L1DataCache)
	assert.Equal(t, 8, id.L1DataAssoc)
	assert.Equal(t, 512, id.L2Cache)
	assert.Equal(t, 8, id.L2Assoc)
	assert.Equal(t, 32768, id.L3Cache)
	assert.Equal(t, 32, id.L3Assoc)
	assert.Equal(t, 16, id.NumLogicalCPUs)
	assert.Equal(t, 16, id.NumCores)
}

func TestAMDDeterministicOverride(t *testing.T) {
	raw := &Raw{Present: SectionBasic | SectionExt | SectionAMDFn8000001Dh}
	raw.Basic[0] = vendorRegs("AuthenticAMD", 1)
	raw.Ext[0].EAX = 0x8000001d
	raw.Ext[6].ECX = 512<<16 | 0x6<<12 | 64
	raw.AMDFn8000001Dh[0] = cacheLeaf(cacheTypeUnified, 2, 8, 64, 2048)

	id, err := Identify(raw)
	require.NoError(t, err)
	assert.Equal(t, 1024, id.L2Cache)
	assert.Equal(t, 8, id.L2Assoc)
}

func TestHasAll(t *testing.T) {
	id := newIdentity()
	id.Flags[FeatureSSE] = true
	id.Flags[FeatureAVX2] = true

	ok, missing := id.HasAll("sse", " AVX2 ")
	assert.True(t, ok)
	assert.Nil(t, missing)

	ok, missing = id.HasAll("sse", "sha_ni", "avx512f")
	assert.False(t, ok)
	assert.Equal(t, []string{"avx512f", "sha_ni"}, missing)
}

func TestParseFeature(t *testing.T) {
	f, ok := ParseFeature("SSE4_2")
	require.True(t, ok)
	assert.Equal(t, FeatureSSE42, f)
	assert.Equal(t, "sse4_2", f.String())

	_, ok = ParseFeature("nope")
	assert.False(t, ok)
	assert.Equal(t, "", Feature(-1).String())
}
