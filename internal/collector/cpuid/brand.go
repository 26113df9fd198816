package cpuid

import (
	"strconv"
)

// Brand codes. Intel and AMD codes share the integer space but are only
// compared against rows of their own vendor table.
const (
	brandNA = iota
	intelCeleron
	intelPentium
	intelCore
	intelCoreUltra
	intelXeon
	intelAtom
)

const (
	amdAthlon = iota + 1
	amdSempron
	amdTurion
	amdPhenom
	amdOpteron
	amdFX
	amdRyzen
	amdThreadripper
	amdEPYC
)

// Model bits extracted from the brand string.
const (
	bitI uint64 = 1 << iota
	bit3
	bit5
	bit7
	bit9
	bitUltra
	bitXeonE
	bitXeonW
	bitXeonD
	bitXeonScalable
	bitRyzen
	bitPro
	bitAPU
)

type bitPattern struct {
	pattern string
	bits    uint64
}

var intelModelBitPatterns = []bitPattern{
	{"Core(TM) i3", bitI | bit3},
	{"Core(TM) i5", bitI | bit5},
	{"Core(TM) i7", bitI | bit7},
	{"Core(TM) i9", bitI | bit9},
	{"Ultra 5", bitUltra | bit5},
	{"Ultra 7", bitUltra | bit7},
	{"Ultra 9", bitUltra | bit9},
	{"Xeon(R) CPU E#-", bitXeonE},
	{"Xeon(R) E-", bitXeonE},
	{"Xeon(R) W-", bitXeonW},
	{"Xeon(R) D-", bitXeonD},
	{"Xeon(R) [BSGP][rilo]", bitXeonScalable},
}

var amdModelBitPatterns = []bitPattern{
	{"Ryzen 3", bitRyzen | bit3},
	{"Ryzen 5", bitRyzen | bit5},
	{"Ryzen 7", bitRyzen | bit7},
	{"Ryzen 9", bitRyzen | bit9},
	{"Ryzen AI [579]", bitRyzen | bitAPU},
	{" PRO ", bitPro},
	{"Radeon", bitAPU},
}

func brandModelBits(brand string, patterns []bitPattern) uint64 {
	var bits uint64
	for _, p := range patterns {
		if MatchPattern(brand, p.pattern) != 0 {
			bits |= p.bits
		}
	}
	return bits
}

func intelBrandCode(brand string) int {
	has := func(p string) bool { return MatchPattern(brand, p) != 0 }
	switch {
	case has("Core(TM) Ultra"), has("Core Ultra"):
		return intelCoreUltra
	case has("Xeon"):
		return intelXeon
	case has("Celeron"):
		return intelCeleron
	case has("Pentium"):
		return intelPentium
	case has("Atom"):
		return intelAtom
	case has("Core"):
		return intelCore
	}
	return brandNA
}

func amdBrandCode(brand string) int {
	has := func(p string) bool { return MatchPattern(brand, p) != 0 }
	switch {
	case has("EPYC"):
		return amdEPYC
	case has("Threadripper"):
		return amdThreadripper
	case has("Ryzen"):
		return amdRyzen
	case has("FX-"):
		return amdFX
	case has("Opteron"):
		return amdOpteron
	case has("Phenom"):
		return amdPhenom
	case has("Turion"):
		return amdTurion
	case has("Sempron"):
		return amdSempron
	case has("Athlon"):
		return amdAthlon
	}
	return brandNA
}

// intelModelCode returns the Core generation encoded in the model number,
// e.g. 7 for i7-7700K and 13 for i9-13900K. Core Ultra parts return the
// series digit.
func intelModelCode(brand string) int {
	if p := MatchPattern(brand, "i[3579]-"); p != 0 {
		digits := digitRun(brand[p+2:])
		switch len(digits) {
		case 5:
			return atoi(digits[:2])
		case 4:
			return atoi(digits[:1])
		case 3:
			return 1
		}
	}
	if p := MatchPattern(brand, "Ultra [579] "); p != 0 {
		if digits := digitRun(brand[p+7:]); len(digits) == 3 {
			return atoi(digits[:1])
		}
	}
	return 0
}

// amdModelCode returns the series digit of a Ryzen or Threadripper model
// number, or the generation digit of an EPYC one (7763 -> 3).
func amdModelCode(brand string) int {
	if p := MatchPattern(brand, "EPYC "); p != 0 {
		if digits := firstRun(brand[p+4:], 4); digits != "" {
			return atoi(digits[3:])
		}
	}
	for _, marker := range []string{"Threadripper ", "Ryzen "} {
		if p := MatchPattern(brand, marker); p != 0 {
			if digits := firstRun(brand[p-1+len(marker):], 4); digits != "" {
				return atoi(digits[:1])
			}
		}
	}
	return 0
}

// digitRun returns the leading digits of s.
func digitRun(s string) string {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return s[:i]
}

// firstRun returns the first run of exactly n digits in s.
func firstRun(s string, n int) string {
	for i := 0; i < len(s); {
		d := digitRun(s[i:])
		if len(d) == n {
			return d
		}
		i += max(len(d), 1)
	}
	return ""
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
