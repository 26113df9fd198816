package cpuid

import (
	"slices"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

type Feature int

const (
	FeatureFPU Feature = iota
	FeatureVME
	FeatureDE
	FeaturePSE
	FeatureTSC
	FeatureMSR
	FeaturePAE
	FeatureMCE
	FeatureCX8
	FeatureAPIC
	FeatureMTRR
	FeatureSEP
	FeaturePGE
	FeatureMCA
	FeatureCMOV
	FeaturePAT
	FeaturePSE36
	FeaturePN
	FeatureCLFLUSH
	FeatureDTS
	FeatureACPI
	FeatureMMX
	FeatureFXSR
	FeatureSSE
	FeatureSSE2
	FeatureSS
	FeatureHT
	FeatureTM
	FeatureIA64
	FeaturePBE
	FeaturePNI
	FeaturePCLMUL
	FeatureDTS64
	FeatureMONITOR
	FeatureDSCPL
	FeatureVMX
	FeatureSMX
	FeatureEST
	FeatureTM2
	FeatureSSSE3
	FeatureCID
	FeatureCX16
	FeatureXTPR
	FeaturePDCM
	FeatureDCA
	FeatureSSE41
	FeatureSSE42
	FeatureSYSCALL
	FeatureXD
	FeatureX2APIC
	FeatureMOVBE
	FeaturePOPCNT
	FeatureAES
	FeatureXSAVE
	FeatureOSXSAVE
	FeatureAVX
	FeatureMMXEXT
	Feature3DNOW
	Feature3DNOWEXT
	FeatureNX
	FeatureFXSROPT
	FeatureRDTSCP
	FeatureLM
	FeatureLAHFLM
	FeatureCMPLEGACY
	FeatureSVM
	FeatureSSE4A
	FeatureMISALIGNSSE
	FeatureABM
	Feature3DNOWPREFETCH
	FeatureOSVW
	FeatureIBS
	FeatureSSE5
	FeatureSKINIT
	FeatureWDT
	FeatureTS
	FeatureFID
	FeatureVID
	FeatureTTP
	FeatureTMAMD
	FeatureSTC
	Feature100MHZSTEPS
	FeatureHWPSTATE
	FeatureCONSTANTTSC
	FeatureXOP
	FeatureFMA3
	FeatureFMA4
	FeatureTBM
	FeatureF16C
	FeatureRDRAND
	FeatureCPB
	FeatureAPERFMPERF
	FeaturePFI
	FeaturePA
	FeatureAVX2
	FeatureBMI1
	FeatureBMI2
	FeatureHLE
	FeatureRTM
	FeatureAVX512F
	FeatureAVX512DQ
	FeatureAVX512PF
	FeatureAVX512ER
	FeatureAVX512CD
	FeatureSHANI
	FeatureAVX512BW
	FeatureAVX512VL
	FeatureSGX
	FeatureRDSEED
	FeatureADX
	FeatureAVX512VNNI
	FeatureAVX512VBMI
	FeatureAVX512VBMI2

	NumFeatures
)

var featureNames = [NumFeatures]string{
	"fpu", "vme", "de", "pse", "tsc", "msr", "pae", "mce", "cx8", "apic",
	"mtrr", "sep", "pge", "mca", "cmov", "pat", "pse36", "pn", "clflush", "dts",
	"acpi", "mmx", "fxsr", "sse", "sse2", "ss", "ht", "tm", "ia64", "pbe",
	"pni", "pclmul", "dts64", "monitor", "ds_cpl", "vmx", "smx", "est", "tm2", "ssse3",
	"cid", "cx16", "xtpr", "pdcm", "dca", "sse4_1", "sse4_2", "syscall", "xd", "x2apic",
	"movbe", "popcnt", "aes", "xsave", "osxsave", "avx", "mmxext", "3dnow", "3dnowext", "nx",
	"fxsr_opt", "rdtscp", "lm", "lahf_lm", "cmp_legacy", "svm", "sse4a", "misalignsse", "abm", "3dnowprefetch",
	"osvw", "ibs", "sse5", "skinit", "wdt", "ts", "fid", "vid", "ttp", "tm_amd",
	"stc", "100mhzsteps", "hwpstate", "constant_tsc", "xop", "fma3", "fma4", "tbm", "f16c", "rdrand",
	"cpb", "aperfmperf", "pfi", "pa", "avx2", "bmi1", "bmi2", "hle", "rtm", "avx512f",
	"avx512dq", "avx512pf", "avx512er", "avx512cd", "sha_ni", "avx512bw", "avx512vl", "sgx", "rdseed", "adx",
	"avx512vnni", "avx512vbmi", "avx512vbmi2",
}

func (f Feature) String() string {
	if f < 0 || f >= NumFeatures {
		return ""
	}
	return featureNames[f]
}

// ParseFeature looks a feature up by its lower-case name.
func ParseFeature(name string) (Feature, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range featureNames {
		if n == name {
			return Feature(i), true
		}
	}
	return 0, false
}

type featureMap struct {
	bit     uint
	feature Feature
}

var (
	featuresEDX1 = []featureMap{
		{0, FeatureFPU},
		{1, FeatureVME},
		{2, FeatureDE},
		{3, FeaturePSE},
		{4, FeatureTSC},
		{5, FeatureMSR},
		{6, FeaturePAE},
		{7, FeatureMCE},
		{8, FeatureCX8},
		{9, FeatureAPIC},
		{11, FeatureSEP},
		{12, FeatureMTRR},
		{13, FeaturePGE},
		{14, FeatureMCA},
		{15, FeatureCMOV},
		{16, FeaturePAT},
		{17, FeaturePSE36},
		{19, FeatureCLFLUSH},
		{23, FeatureMMX},
		{24, FeatureFXSR},
		{25, FeatureSSE},
		{26, FeatureSSE2},
		{28, FeatureHT},
	}
	featuresECX1 = []featureMap{
		{0, FeaturePNI},
		{1, FeaturePCLMUL},
		{3, FeatureMONITOR},
		{9, FeatureSSSE3},
		{12, FeatureFMA3},
		{13, FeatureCX16},
		{19, FeatureSSE41},
		{20, FeatureSSE42},
		{22, FeatureMOVBE},
		{23, FeaturePOPCNT},
		{25, FeatureAES},
		{26, FeatureXSAVE},
		{27, FeatureOSXSAVE},
		{28, FeatureAVX},
		{29, FeatureF16C},
		{30, FeatureRDRAND},
	}
	featuresEBX7 = []featureMap{
		{3, FeatureBMI1},
		{5, FeatureAVX2},
		{8, FeatureBMI2},
		{18, FeatureRDSEED},
		{19, FeatureADX},
		{29, FeatureSHANI},
	}
	featuresEDX81 = []featureMap{
		{11, FeatureSYSCALL},
		{27, FeatureRDTSCP},
		{29, FeatureLM},
	}
	featuresECX81 = []featureMap{
		{0, FeatureLAHFLM},
		{5, FeatureABM},
	}
	featuresEDX87 = []featureMap{
		{8, FeatureCONSTANTTSC},
	}
)

func matchFeatures(table []featureMap, reg uint32, id *Identity) {
	for _, m := range table {
		if reg&(1<<m.bit) != 0 {
			id.Flags[m.feature] = true
		}
	}
}

func loadCommonFeatures(raw *Raw, id *Identity) {
	if raw.maxBasic() >= 1 {
		matchFeatures(featuresEDX1, raw.Basic[1].EDX, id)
		matchFeatures(featuresECX1, raw.Basic[1].ECX, id)
	}
	if raw.maxBasic() >= 7 {
		matchFeatures(featuresEBX7, raw.Basic[7].EBX, id)
	}
	if raw.maxExt() >= 0x80000001 {
		matchFeatures(featuresEDX81, raw.Ext[1].EDX, id)
		matchFeatures(featuresECX81, raw.Ext[1].ECX, id)
	}
	if raw.maxExt() >= 0x80000007 {
		matchFeatures(featuresEDX87, raw.Ext[7].EDX, id)
	}

	if !id.Flags[FeatureSSE] {
		return
	}
	// SSE unit width is a guess from the family; the vendor refinement
	// does not override it.
	switch id.Vendor {
	case VendorAMD:
		if id.ExtFamily >= 16 && id.ExtFamily != 17 {
			id.SSESize = 128
		} else {
			id.SSESize = 64
		}
	case VendorIntel:
		if id.Family == 6 && id.ExtModel >= 15 {
			id.SSESize = 128
		} else {
			id.SSESize = 64
		}
	}
}

// Features returns the names of the set flags in feature order.
func (id *Identity) Features() []string {
	var res []string
	for i, ok := range id.Flags {
		if ok {
			res = append(res, featureNames[i])
		}
	}
	return res
}

func (id *Identity) FeatureSet() mapset.Set[string] {
	return mapset.NewSet(id.Features()...)
}

// HasAll reports whether every named feature is present and returns the
// missing ones otherwise.
func (id *Identity) HasAll(names ...string) (bool, []string) {
	want := mapset.NewSet[string]()
	for _, n := range names {
		if n = strings.ToLower(strings.TrimSpace(n)); n != "" {
			want.Add(n)
		}
	}

	have := id.FeatureSet()
	if have.IsSuperset(want) {
		return true, nil
	}
	missing := want.Difference(have).ToSlice()
	slices.Sort(missing)
	return false, missing
}
