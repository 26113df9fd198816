package cpuid

var (
	amdFeaturesEDX81 = []featureMap{
		{20, FeatureNX},
		{22, FeatureMMXEXT},
		{25, FeatureFXSROPT},
		{30, Feature3DNOWEXT},
		{31, Feature3DNOW},
	}
	amdFeaturesECX81 = []featureMap{
		{1, FeatureCMPLEGACY},
		{2, FeatureSVM},
		{6, FeatureSSE4A},
		{7, FeatureMISALIGNSSE},
		{8, Feature3DNOWPREFETCH},
		{9, FeatureOSVW},
		{10, FeatureIBS},
		{11, FeatureXOP},
		{12, FeatureSKINIT},
		{13, FeatureWDT},
		{16, FeatureFMA4},
		{21, FeatureTBM},
	}
	amdFeaturesEDX87 = []featureMap{
		{0, FeatureTS},
		{1, FeatureFID},
		{2, FeatureVID},
		{3, FeatureTTP},
		{4, FeatureTMAMD},
		{5, FeatureSTC},
		{6, Feature100MHZSTEPS},
		{7, FeatureHWPSTATE},
		{9, FeatureCPB},
		{10, FeatureAPERFMPERF},
		{11, FeaturePFI},
		{12, FeaturePA},
	}
	// AVX-512 is reported in the same leaf 7 bits as on Intel.
	amdFeaturesEBX7 = []featureMap{
		{16, FeatureAVX512F},
		{17, FeatureAVX512DQ},
		{28, FeatureAVX512CD},
		{30, FeatureAVX512BW},
		{31, FeatureAVX512VL},
	}
	amdFeaturesECX7 = []featureMap{
		{1, FeatureAVX512VBMI},
		{6, FeatureAVX512VBMI2},
		{11, FeatureAVX512VNNI},
	}
)

// amdAssoc maps the 4 bit associativity code of ext leaf 6.
var amdAssoc = map[uint32]int{
	0x0: 0,
	0x1: 1,
	0x2: 2,
	0x4: 4,
	0x6: 8,
	0x8: 16,
	0xa: 32,
	0xb: 48,
	0xc: 64,
	0xd: 96,
	0xe: 128,
	0xf: FullyAssociative,
}

func identifyAMD(raw *Raw, id *Identity) {
	loadAMDFeatures(raw, id)
	amdLegacyCaches(raw, id)
	if raw.Has(SectionAMDFn8000001Dh) && raw.maxExt() >= 0x8000001d {
		deterministicCaches(raw.AMDFn8000001Dh[:], id)
	}
	amdCores(raw, id)

	table := amdCodenames
	if id.Vendor == VendorHygon {
		table = hygonCodenames
	}
	id.BrandCode = amdBrandCode(id.Brand)
	id.ModelBits = brandModelBits(id.Brand, amdModelBitPatterns)
	id.ModelCode = amdModelCode(id.Brand)
	MatchCodename(table, id, id.BrandCode, id.ModelBits, id.ModelCode)
}

func loadAMDFeatures(raw *Raw, id *Identity) {
	if raw.maxExt() >= 0x80000001 {
		matchFeatures(amdFeaturesEDX81, raw.Ext[1].EDX, id)
		matchFeatures(amdFeaturesECX81, raw.Ext[1].ECX, id)
	}
	if raw.maxExt() >= 0x80000007 {
		matchFeatures(amdFeaturesEDX87, raw.Ext[7].EDX, id)
	}
	if raw.maxBasic() >= 7 {
		matchFeatures(amdFeaturesEBX7, raw.Basic[7].EBX, id)
		matchFeatures(amdFeaturesECX7, raw.Basic[7].ECX, id)
	}
}

func amdLegacyCaches(raw *Raw, id *Identity) {
	if raw.maxExt() >= 0x80000005 {
		c, d := raw.Ext[5].ECX, raw.Ext[5].EDX
		id.L1DataCache = int(c >> 24)
		id.L1DataAssoc = int((c >> 16) & 0xff)
		id.L1DataCacheline = int(c & 0xff)
		id.L1InstructionCache = int(d >> 24)
		id.L1InstructionAssoc = int((d >> 16) & 0xff)
		id.L1InstructionCacheline = int(d & 0xff)
	}

	if raw.maxExt() < 0x80000006 {
		return
	}
	c, d := raw.Ext[6].ECX, raw.Ext[6].EDX
	id.L2Cache = int(c >> 16)
	id.L2Assoc = amdAssoc[(c>>12)&0xf]
	id.L2Cacheline = int(c & 0xff)
	if size := int(d>>18) * 512; size > 0 {
		id.L3Cache = size
		id.L3Assoc = amdAssoc[(d>>12)&0xf]
		id.L3Cacheline = int(d & 0xff)
	}
}

func amdCores(raw *Raw, id *Identity) {
	id.NumLogicalCPUs, id.NumCores = 1, 1
	switch {
	case raw.maxExt() >= 0x80000008:
		id.NumLogicalCPUs = int(raw.Ext[8].ECX&0xff) + 1
	case id.Flags[FeatureHT]:
		if n := int((raw.Basic[1].EBX >> 16) & 0xff); n > 0 {
			id.NumLogicalCPUs = n
		}
	}

	threads := 1
	if id.ExtFamily >= 0x17 && raw.maxExt() >= 0x8000001e {
		threads = int((raw.Ext[0x1e].EBX>>8)&0xff) + 1
	}
	id.NumCores = id.NumLogicalCPUs / threads
	if id.NumCores == 0 {
		id.NumCores = 1
	}
}
