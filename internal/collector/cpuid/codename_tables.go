package cpuid

// dc marks a column that should not contribute to the score.
const dc = -1

// Columns: family, model, stepping, ext family, ext model, cores, L2 KB,
// L3 KB, brand code, model bits, model code, name.
var intelCodenames = []MatchEntry{
	{dc, dc, dc, dc, dc, dc, dc, dc, dc, 0, dc, "Unknown Intel CPU"},

	// P5 / P6
	{5, dc, dc, 5, dc, dc, dc, dc, dc, 0, dc, "P5"},
	{5, 4, dc, 5, 4, dc, dc, dc, dc, 0, dc, "P55C (MMX)"},
	{6, 1, dc, 6, 1, dc, dc, dc, dc, 0, dc, "Pentium Pro"},
	{6, 3, dc, 6, 3, dc, dc, dc, dc, 0, dc, "Klamath"},
	{6, 5, dc, 6, 5, dc, dc, dc, dc, 0, dc, "Deschutes"},
	{6, 7, dc, 6, 7, dc, dc, dc, dc, 0, dc, "Katmai"},
	{6, 8, dc, 6, 8, dc, dc, dc, dc, 0, dc, "Coppermine"},
	{6, 11, dc, 6, 11, dc, dc, dc, dc, 0, dc, "Tualatin"},
	{6, 9, dc, 6, 9, dc, dc, dc, dc, 0, dc, "Banias"},
	{6, 13, dc, 6, 13, dc, dc, dc, dc, 0, dc, "Dothan"},
	{6, 14, dc, 6, 14, dc, dc, dc, dc, 0, dc, "Yonah"},

	// Netburst
	{15, dc, dc, 15, dc, dc, dc, dc, dc, 0, dc, "Netburst"},
	{15, 0, dc, 15, 0, dc, dc, dc, dc, 0, dc, "Willamette"},
	{15, 1, dc, 15, 1, dc, dc, dc, dc, 0, dc, "Willamette"},
	{15, 2, dc, 15, 2, dc, dc, dc, dc, 0, dc, "Northwood"},
	{15, 3, dc, 15, 3, dc, dc, dc, dc, 0, dc, "Prescott"},
	{15, 4, dc, 15, 4, dc, dc, dc, dc, 0, dc, "Prescott"},
	{15, 6, dc, 15, 6, dc, dc, dc, dc, 0, dc, "Cedar Mill"},

	// Core
	{6, dc, dc, 6, 15, dc, dc, dc, dc, 0, dc, "Merom"},
	{6, dc, dc, 6, 15, 2, dc, dc, dc, 0, dc, "Conroe"},
	{6, dc, dc, 6, 15, 4, dc, dc, dc, 0, dc, "Kentsfield"},
	{6, dc, dc, 6, 22, 1, 512, dc, dc, 0, dc, "Conroe-L"},
	{6, dc, dc, 6, 23, dc, dc, dc, dc, 0, dc, "Penryn"},
	{6, dc, dc, 6, 23, 2, dc, dc, dc, 0, dc, "Wolfdale"},
	{6, dc, dc, 6, 23, 4, dc, dc, dc, 0, dc, "Yorkfield"},
	{6, dc, dc, 6, 29, dc, dc, dc, intelXeon, 0, dc, "Dunnington"},

	// Nehalem / Westmere
	{6, dc, dc, 6, 26, dc, dc, dc, intelCore, 0, dc, "Bloomfield"},
	{6, dc, dc, 6, 26, dc, dc, dc, intelXeon, 0, dc, "Gainestown"},
	{6, dc, dc, 6, 30, dc, dc, dc, dc, 0, dc, "Lynnfield"},
	{6, dc, dc, 6, 31, dc, dc, dc, dc, 0, dc, "Auburndale"},
	{6, dc, dc, 6, 37, dc, dc, dc, dc, 0, dc, "Clarkdale"},
	{6, dc, dc, 6, 44, dc, dc, dc, intelCore, 0, dc, "Gulftown"},
	{6, dc, dc, 6, 44, dc, dc, dc, intelXeon, 0, dc, "Westmere-EP"},
	{6, dc, dc, 6, 46, dc, dc, dc, dc, 0, dc, "Nehalem-EX"},
	{6, dc, dc, 6, 47, dc, dc, dc, dc, 0, dc, "Westmere-EX"},

	// Sandy Bridge .. Broadwell
	{6, dc, dc, 6, 42, dc, dc, dc, dc, 0, dc, "Sandy Bridge"},
	{6, dc, dc, 6, 45, dc, dc, dc, intelCore, 0, dc, "Sandy Bridge-E"},
	{6, dc, dc, 6, 45, dc, dc, dc, intelXeon, 0, dc, "Sandy Bridge-EP"},
	{6, dc, dc, 6, 58, dc, dc, dc, dc, 0, dc, "Ivy Bridge"},
	{6, dc, dc, 6, 62, dc, dc, dc, intelCore, 0, dc, "Ivy Bridge-E"},
	{6, dc, dc, 6, 62, dc, dc, dc, intelXeon, 0, dc, "Ivy Bridge-EP"},
	{6, dc, dc, 6, 60, dc, dc, dc, dc, 0, dc, "Haswell"},
	{6, dc, dc, 6, 63, dc, dc, dc, intelCore, 0, dc, "Haswell-E"},
	{6, dc, dc, 6, 63, dc, dc, dc, intelXeon, 0, dc, "Haswell-EP"},
	{6, dc, dc, 6, 69, dc, dc, dc, dc, 0, dc, "Haswell-ULT"},
	{6, dc, dc, 6, 70, dc, dc, dc, dc, 0, dc, "Crystal Well"},
	{6, dc, dc, 6, 61, dc, dc, dc, dc, 0, dc, "Broadwell-U"},
	{6, dc, dc, 6, 71, dc, dc, dc, dc, 0, dc, "Broadwell-H"},
	{6, dc, dc, 6, 79, dc, dc, dc, intelCore, 0, dc, "Broadwell-E"},
	{6, dc, dc, 6, 79, dc, dc, dc, intelXeon, 0, dc, "Broadwell-EP"},
	{6, dc, dc, 6, 86, dc, dc, dc, dc, 0, dc, "Broadwell-DE"},

	// Skylake family
	{6, dc, dc, 6, 78, dc, dc, dc, dc, 0, dc, "Skylake-U"},
	{6, dc, dc, 6, 94, dc, dc, dc, dc, 0, dc, "Skylake"},
	{6, dc, dc, 6, 85, dc, dc, dc, intelCore, 0, dc, "Skylake-X"},
	{6, dc, dc, 6, 85, dc, dc, dc, intelXeon, bitXeonScalable, dc, "Skylake-SP"},
	{6, dc, dc, 6, 85, dc, dc, dc, intelXeon, bitXeonW, dc, "Skylake-W"},
	{6, dc, dc, 6, 85, dc, dc, dc, intelXeon, bitXeonD, dc, "Skylake-D"},
	{6, dc, 7, 6, 85, dc, dc, dc, intelCore, 0, dc, "Cascade Lake-X"},
	{6, dc, 7, 6, 85, dc, dc, dc, intelXeon, bitXeonScalable, dc, "Cascade Lake"},
	{6, dc, 11, 6, 85, dc, dc, dc, intelXeon, bitXeonScalable, dc, "Cooper Lake"},
	{6, dc, dc, 6, 142, dc, dc, dc, dc, 0, dc, "Kaby Lake-U"},
	{6, dc, 10, 6, 142, dc, dc, dc, dc, 0, 8, "Kaby Lake-R"},
	{6, dc, 11, 6, 142, dc, dc, dc, dc, 0, 8, "Whiskey Lake"},
	{6, dc, 12, 6, 142, dc, dc, dc, dc, 0, 10, "Comet Lake-U"},
	{6, dc, dc, 6, 158, dc, dc, dc, dc, 0, dc, "Coffee Lake"},
	{6, dc, dc, 6, 158, dc, dc, dc, intelCore, 0, 8, "Coffee Lake"},
	{6, dc, dc, 6, 158, dc, dc, dc, intelCore, 0, 9, "Coffee Lake-R"},
	{6, dc, 9, 6, 158, dc, dc, dc, dc, 0, 7, "Kaby Lake"},
	{6, dc, dc, 6, 158, dc, dc, dc, intelXeon, bitXeonE, dc, "Coffee Lake-E"},
	{6, dc, dc, 6, 165, dc, dc, dc, dc, 0, dc, "Comet Lake"},
	{6, dc, dc, 6, 166, dc, dc, dc, dc, 0, dc, "Comet Lake-U"},
	{6, dc, dc, 6, 102, dc, dc, dc, dc, 0, dc, "Cannon Lake"},

	// Sunny Cove and later
	{6, dc, dc, 6, 125, dc, dc, dc, dc, 0, dc, "Ice Lake"},
	{6, dc, dc, 6, 126, dc, dc, dc, dc, 0, dc, "Ice Lake"},
	{6, dc, dc, 6, 106, dc, dc, dc, intelXeon, bitXeonScalable, dc, "Ice Lake-SP"},
	{6, dc, dc, 6, 108, dc, dc, dc, intelXeon, bitXeonD, dc, "Ice Lake-D"},
	{6, dc, dc, 6, 140, dc, dc, dc, dc, 0, dc, "Tiger Lake"},
	{6, dc, dc, 6, 141, dc, dc, dc, dc, 0, dc, "Tiger Lake-H"},
	{6, dc, dc, 6, 167, dc, dc, dc, dc, 0, dc, "Rocket Lake"},
	{6, dc, dc, 6, 151, dc, dc, dc, dc, 0, dc, "Alder Lake"},
	{6, dc, dc, 6, 154, dc, dc, dc, dc, 0, dc, "Alder Lake-P"},
	{6, dc, dc, 6, 183, dc, dc, dc, dc, 0, dc, "Raptor Lake"},
	{6, dc, dc, 6, 186, dc, dc, dc, dc, 0, dc, "Raptor Lake-P"},
	{6, dc, dc, 6, 191, dc, dc, dc, dc, 0, dc, "Raptor Lake-S"},
	{6, dc, dc, 6, 170, dc, dc, dc, dc, 0, dc, "Meteor Lake"},
	{6, dc, dc, 6, 189, dc, dc, dc, dc, 0, dc, "Lunar Lake"},
	{6, dc, dc, 6, 197, dc, dc, dc, dc, 0, dc, "Arrow Lake"},
	{6, dc, dc, 6, 198, dc, dc, dc, dc, 0, dc, "Arrow Lake"},
	{6, dc, dc, 6, 143, dc, dc, dc, intelXeon, 0, dc, "Sapphire Rapids"},
	{6, dc, dc, 6, 207, dc, dc, dc, intelXeon, 0, dc, "Emerald Rapids"},
	{6, dc, dc, 6, 173, dc, dc, dc, intelXeon, 0, dc, "Granite Rapids"},
	{6, dc, dc, 6, 175, dc, dc, dc, intelXeon, 0, dc, "Sierra Forest"},

	// Atom
	{6, dc, dc, 6, 28, dc, dc, dc, intelAtom, 0, dc, "Diamondville"},
	{6, dc, dc, 6, 38, dc, dc, dc, intelAtom, 0, dc, "Lincroft"},
	{6, dc, dc, 6, 54, dc, dc, dc, intelAtom, 0, dc, "Cedarview"},
	{6, dc, dc, 6, 55, dc, dc, dc, dc, 0, dc, "Bay Trail"},
	{6, dc, dc, 6, 77, dc, dc, dc, dc, 0, dc, "Avoton"},
	{6, dc, dc, 6, 76, dc, dc, dc, dc, 0, dc, "Braswell"},
	{6, dc, dc, 6, 92, dc, dc, dc, dc, 0, dc, "Apollo Lake"},
	{6, dc, dc, 6, 95, dc, dc, dc, dc, 0, dc, "Denverton"},
	{6, dc, dc, 6, 122, dc, dc, dc, dc, 0, dc, "Gemini Lake"},
	{6, dc, dc, 6, 134, dc, dc, dc, dc, 0, dc, "Snow Ridge"},
	{6, dc, dc, 6, 150, dc, dc, dc, dc, 0, dc, "Elkhart Lake"},
	{6, dc, dc, 6, 156, dc, dc, dc, dc, 0, dc, "Jasper Lake"},
	{6, dc, dc, 6, 190, dc, dc, dc, dc, 0, dc, "Alder Lake-N"},
}

var amdCodenames = []MatchEntry{
	{dc, dc, dc, dc, dc, dc, dc, dc, dc, 0, dc, "Unknown AMD CPU"},

	// Pre-K8
	{5, dc, dc, 5, dc, dc, dc, dc, dc, 0, dc, "K5"},
	{5, 6, dc, 5, 6, dc, dc, dc, dc, 0, dc, "K6"},
	{5, 7, dc, 5, 7, dc, dc, dc, dc, 0, dc, "K6"},
	{5, 8, dc, 5, 8, dc, dc, dc, dc, 0, dc, "K6-2"},
	{5, 9, dc, 5, 9, dc, dc, dc, dc, 0, dc, "K6-III"},
	{6, dc, dc, 6, dc, dc, dc, dc, dc, 0, dc, "K7"},
	{6, dc, dc, 6, dc, dc, dc, dc, amdAthlon, 0, dc, "Athlon (K7)"},
	{6, dc, dc, 6, dc, dc, dc, dc, amdSempron, 0, dc, "Sempron (K7)"},

	// K8 / K10
	{15, dc, dc, 15, dc, dc, dc, dc, dc, 0, dc, "K8"},
	{15, dc, dc, 15, dc, dc, dc, dc, amdAthlon, 0, dc, "Athlon 64"},
	{15, dc, dc, 15, dc, dc, dc, dc, amdOpteron, 0, dc, "SledgeHammer"},
	{15, dc, dc, 15, dc, dc, dc, dc, amdTurion, 0, dc, "Lancaster"},
	{15, dc, dc, 15, dc, dc, dc, dc, amdSempron, 0, dc, "Paris"},
	{15, dc, dc, 16, dc, dc, dc, dc, dc, 0, dc, "K10"},
	{15, dc, dc, 16, 2, dc, dc, dc, amdPhenom, 0, dc, "Agena"},
	{15, dc, dc, 16, 2, dc, dc, dc, amdOpteron, 0, dc, "Barcelona"},
	{15, dc, dc, 16, 4, dc, dc, dc, amdPhenom, 0, dc, "Deneb"},
	{15, dc, dc, 16, 4, dc, dc, dc, amdOpteron, 0, dc, "Shanghai"},
	{15, dc, dc, 16, 5, dc, dc, dc, dc, 0, dc, "Propus"},
	{15, dc, dc, 16, 6, dc, dc, dc, dc, 0, dc, "Regor"},
	{15, dc, dc, 16, 8, dc, dc, dc, dc, 0, dc, "Istanbul"},
	{15, dc, dc, 16, 9, dc, dc, dc, dc, 0, dc, "Magny-Cours"},
	{15, dc, dc, 16, 10, dc, dc, dc, dc, 0, dc, "Thuban"},
	{15, dc, dc, 17, dc, dc, dc, dc, dc, 0, dc, "Griffin"},
	{15, dc, dc, 18, dc, dc, dc, dc, dc, 0, dc, "Llano"},
	{15, dc, dc, 20, dc, dc, dc, dc, dc, 0, dc, "Bobcat"},

	// Bulldozer family
	{15, dc, dc, 21, dc, dc, dc, dc, dc, 0, dc, "Bulldozer"},
	{15, dc, dc, 21, 1, dc, dc, dc, amdFX, 0, dc, "Zambezi"},
	{15, dc, dc, 21, 1, dc, dc, dc, amdOpteron, 0, dc, "Interlagos"},
	{15, dc, dc, 21, 2, dc, dc, dc, dc, 0, dc, "Vishera"},
	{15, dc, dc, 21, 16, dc, dc, dc, dc, 0, dc, "Trinity"},
	{15, dc, dc, 21, 19, dc, dc, dc, dc, 0, dc, "Richland"},
	{15, dc, dc, 21, 48, dc, dc, dc, dc, 0, dc, "Kaveri"},
	{15, dc, dc, 21, 56, dc, dc, dc, dc, 0, dc, "Godavari"},
	{15, dc, dc, 21, 96, dc, dc, dc, dc, 0, dc, "Carrizo"},
	{15, dc, dc, 21, 101, dc, dc, dc, dc, 0, dc, "Bristol Ridge"},
	{15, dc, dc, 21, 112, dc, dc, dc, dc, 0, dc, "Stoney Ridge"},
	{15, dc, dc, 22, 0, dc, dc, dc, dc, 0, dc, "Kabini"},
	{15, dc, dc, 22, 48, dc, dc, dc, dc, 0, dc, "Beema"},

	// Zen, Zen+, Zen 2
	{15, dc, dc, 0x17, dc, dc, dc, dc, dc, 0, dc, "Zen"},
	{15, dc, dc, 0x17, 0x01, dc, dc, dc, amdRyzen, bitRyzen, dc, "Summit Ridge"},
	{15, dc, dc, 0x17, 0x01, dc, dc, dc, amdThreadripper, 0, dc, "Whitehaven"},
	{15, dc, dc, 0x17, 0x01, dc, dc, dc, amdEPYC, 0, 1, "Naples"},
	{15, dc, dc, 0x17, 0x08, dc, dc, dc, amdRyzen, bitRyzen, dc, "Pinnacle Ridge"},
	{15, dc, dc, 0x17, 0x08, dc, dc, dc, amdThreadripper, 0, dc, "Colfax"},
	{15, dc, dc, 0x17, 0x11, dc, dc, dc, dc, bitAPU, dc, "Raven Ridge"},
	{15, dc, dc, 0x17, 0x18, dc, dc, dc, dc, bitAPU, dc, "Picasso"},
	{15, dc, dc, 0x17, 0x20, dc, dc, dc, dc, bitAPU, dc, "Dali"},
	{15, dc, dc, 0x17, 0x31, dc, dc, dc, amdEPYC, 0, 2, "Rome"},
	{15, dc, dc, 0x17, 0x31, dc, dc, dc, amdThreadripper, 0, dc, "Castle Peak"},
	{15, dc, dc, 0x17, 0x60, dc, dc, dc, dc, bitAPU, dc, "Renoir"},
	{15, dc, dc, 0x17, 0x68, dc, dc, dc, dc, bitAPU, dc, "Lucienne"},
	{15, dc, dc, 0x17, 0x71, dc, dc, dc, amdRyzen, bitRyzen, dc, "Matisse"},
	{15, dc, dc, 0x17, 0x90, dc, dc, dc, dc, 0, dc, "Van Gogh"},
	{15, dc, dc, 0x17, 0xa0, dc, dc, dc, dc, bitAPU, dc, "Mendocino"},

	// Zen 3, Zen 4
	{15, dc, dc, 0x19, dc, dc, dc, dc, dc, 0, dc, "Zen 3"},
	{15, dc, dc, 0x19, 0x01, dc, dc, dc, amdEPYC, 0, 3, "Milan"},
	{15, dc, dc, 0x19, 0x08, dc, dc, dc, amdThreadripper, 0, dc, "Chagall"},
	{15, dc, dc, 0x19, 0x11, dc, dc, dc, amdEPYC, 0, 4, "Genoa"},
	{15, dc, dc, 0x19, 0x18, dc, dc, dc, amdThreadripper, 0, dc, "Storm Peak"},
	{15, dc, dc, 0x19, 0x21, dc, dc, dc, amdRyzen, bitRyzen, dc, "Vermeer"},
	{15, dc, dc, 0x19, 0x44, dc, dc, dc, dc, bitAPU, dc, "Rembrandt"},
	{15, dc, dc, 0x19, 0x50, dc, dc, dc, dc, bitAPU, dc, "Cezanne"},
	{15, dc, dc, 0x19, 0x61, dc, dc, dc, amdRyzen, bitRyzen, dc, "Raphael"},
	{15, dc, dc, 0x19, 0x74, dc, dc, dc, dc, bitAPU, dc, "Phoenix"},
	{15, dc, dc, 0x19, 0x78, dc, dc, dc, dc, bitAPU, dc, "Phoenix 2"},
	{15, dc, dc, 0x19, 0xa0, dc, dc, dc, amdEPYC, 0, 4, "Bergamo"},

	// Zen 5
	{15, dc, dc, 0x1a, dc, dc, dc, dc, dc, 0, dc, "Zen 5"},
	{15, dc, dc, 0x1a, 0x02, dc, dc, dc, amdEPYC, 0, 5, "Turin"},
	{15, dc, dc, 0x1a, 0x11, dc, dc, dc, amdEPYC, 0, 5, "Turin Dense"},
	{15, dc, dc, 0x1a, 0x24, dc, dc, dc, dc, bitAPU, dc, "Strix Point"},
	{15, dc, dc, 0x1a, 0x44, dc, dc, dc, amdRyzen, bitRyzen, dc, "Granite Ridge"},
	{15, dc, dc, 0x1a, 0x60, dc, dc, dc, dc, bitAPU, dc, "Krackan Point"},
}

var hygonCodenames = []MatchEntry{
	{dc, dc, dc, dc, dc, dc, dc, dc, dc, 0, dc, "Unknown Hygon CPU"},
	{15, dc, dc, 0x18, dc, dc, dc, dc, dc, 0, dc, "Dhyana"},
	{15, dc, dc, 0x18, 0x02, dc, dc, dc, dc, 0, dc, "Dhyana Plus"},
}
