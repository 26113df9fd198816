// Package cpuid captures the raw CPUID register table of the host and turns a
// captured table into a vendor, feature and cache identity.
//
// Capture and identification are separate steps: Collect executes CPUID once
// and returns an immutable Raw table, Identify only reads that table. Tables
// loaded from dumps identify exactly like live ones.
package cpuid

const (
	maxBasicLevel      = 32
	maxExtLevel        = 32
	maxIntelFn4Level   = 8
	maxIntelFn11Level  = 4
	maxIntelFn12hLevel = 4
	maxIntelFn14hLevel = 4
	maxAMDFn1DhLevel   = 4

	extBase = 0x80000000
)

type Regs struct {
	EAX uint32
	EBX uint32
	ECX uint32
	EDX uint32
}

func (r Regs) isZero() bool {
	return r == Regs{}
}

// Section marks which leaf groups a Raw table carries. A sub-leaf group that
// was executed but returned zeros is still present.
type Section uint8

const (
	SectionBasic Section = 1 << iota
	SectionExt
	SectionIntelFn4
	SectionIntelFn11
	SectionIntelFn12h
	SectionIntelFn14h
	SectionAMDFn8000001Dh

	SectionAll = SectionBasic | SectionExt | SectionIntelFn4 | SectionIntelFn11 |
		SectionIntelFn12h | SectionIntelFn14h | SectionAMDFn8000001Dh
)

type Raw struct {
	Basic          [maxBasicLevel]Regs
	Ext            [maxExtLevel]Regs
	IntelFn4       [maxIntelFn4Level]Regs
	IntelFn11      [maxIntelFn11Level]Regs
	IntelFn12h     [maxIntelFn12hLevel]Regs
	IntelFn14h     [maxIntelFn14hLevel]Regs
	AMDFn8000001Dh [maxAMDFn1DhLevel]Regs
	Present        Section
}

func (r *Raw) Has(s Section) bool {
	return r.Present&s == s
}

func (r *Raw) maxBasic() uint32 {
	return r.Basic[0].EAX
}

func (r *Raw) maxExt() uint32 {
	return r.Ext[0].EAX
}

// Collect executes every leaf the identification reads, in one pass.
func Collect() (*Raw, error) {
	if !Present() {
		return nil, ErrNoCPUID
	}

	raw := &Raw{Present: SectionAll}
	for i := range raw.Basic {
		raw.Basic[i] = exec(uint32(i), 0)
	}
	for i := range raw.Ext {
		raw.Ext[i] = exec(extBase+uint32(i), 0)
	}
	for i := range raw.IntelFn4 {
		raw.IntelFn4[i] = exec(4, uint32(i))
	}
	for i := range raw.IntelFn11 {
		raw.IntelFn11[i] = exec(0xb, uint32(i))
	}
	for i := range raw.IntelFn12h {
		raw.IntelFn12h[i] = exec(0x12, uint32(i))
	}
	for i := range raw.IntelFn14h {
		raw.IntelFn14h[i] = exec(0x14, uint32(i))
	}
	for i := range raw.AMDFn8000001Dh {
		raw.AMDFn8000001Dh[i] = exec(0x8000001d, uint32(i))
	}

	return raw, nil
}

func exec(leaf, subleaf uint32) Regs {
	a, b, c, d := cpuid(leaf, subleaf)
	return Regs{EAX: a, EBX: b, ECX: c, EDX: d}
}
