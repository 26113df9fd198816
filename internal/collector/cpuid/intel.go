package cpuid

var (
	intelFeaturesEDX1 = []featureMap{
		{18, FeaturePN},
		{21, FeatureDTS},
		{22, FeatureACPI},
		{27, FeatureSS},
		{29, FeatureTM},
		{30, FeatureIA64},
		{31, FeaturePBE},
	}
	intelFeaturesECX1 = []featureMap{
		{2, FeatureDTS64},
		{4, FeatureDSCPL},
		{5, FeatureVMX},
		{6, FeatureSMX},
		{7, FeatureEST},
		{8, FeatureTM2},
		{10, FeatureCID},
		{14, FeatureXTPR},
		{15, FeaturePDCM},
		{18, FeatureDCA},
		{21, FeatureX2APIC},
	}
	intelFeaturesEDX81 = []featureMap{
		{20, FeatureXD},
	}
	intelFeaturesEBX7 = []featureMap{
		{2, FeatureSGX},
		{4, FeatureHLE},
		{11, FeatureRTM},
		{16, FeatureAVX512F},
		{17, FeatureAVX512DQ},
		{26, FeatureAVX512PF},
		{27, FeatureAVX512ER},
		{28, FeatureAVX512CD},
		{30, FeatureAVX512BW},
		{31, FeatureAVX512VL},
	}
	intelFeaturesECX7 = []featureMap{
		{1, FeatureAVX512VBMI},
		{6, FeatureAVX512VBMI2},
		{11, FeatureAVX512VNNI},
	}
)

func identifyIntel(raw *Raw, id *Identity) {
	loadIntelFeatures(raw, id)

	if raw.maxBasic() >= 4 {
		deterministicCaches(raw.IntelFn4[:], id)
	}
	intelCores(raw, id)

	id.BrandCode = intelBrandCode(id.Brand)
	id.ModelBits = brandModelBits(id.Brand, intelModelBitPatterns)
	id.ModelCode = intelModelCode(id.Brand)
	MatchCodename(intelCodenames, id, id.BrandCode, id.ModelBits, id.ModelCode)
}

func loadIntelFeatures(raw *Raw, id *Identity) {
	if raw.maxBasic() >= 1 {
		matchFeatures(intelFeaturesEDX1, raw.Basic[1].EDX, id)
		matchFeatures(intelFeaturesECX1, raw.Basic[1].ECX, id)
	}
	if raw.maxExt() >= 0x80000001 {
		matchFeatures(intelFeaturesEDX81, raw.Ext[1].EDX, id)
	}
	if raw.maxBasic() >= 7 {
		matchFeatures(intelFeaturesEBX7, raw.Basic[7].EBX, id)
		matchFeatures(intelFeaturesECX7, raw.Basic[7].ECX, id)
	}
}

func intelCores(raw *Raw, id *Identity) {
	if raw.maxBasic() >= 0xb && raw.Has(SectionIntelFn11) {
		threads, logical := 0, 0
		for _, r := range raw.IntelFn11 {
			switch (r.ECX >> 8) & 0xff {
			case 1:
				threads = int(r.EBX & 0xffff)
			case 2:
				logical = int(r.EBX & 0xffff)
			}
		}
		if threads > 0 && logical > 0 {
			id.NumLogicalCPUs = logical
			id.NumCores = logical / threads
			return
		}
	}

	id.NumLogicalCPUs, id.NumCores = 1, 1
	if !id.Flags[FeatureHT] {
		return
	}
	if n := int((raw.Basic[1].EBX >> 16) & 0xff); n > 0 {
		id.NumLogicalCPUs = n
	}
	if raw.maxBasic() >= 4 {
		id.NumCores = int(raw.IntelFn4[0].EAX>>26) + 1
	}
}
