package cpuid

const (
	cacheTypeNull        = 0
	cacheTypeData        = 1
	cacheTypeInstruction = 2
	cacheTypeUnified     = 3

	// FullyAssociative is stored in the associativity fields for caches
	// that report full associativity.
	FullyAssociative = 0xff
)

// deterministicCaches decodes the leaf 4 / 0x8000001D sub-leaf layout. It
// reports whether at least one cache level was found.
func deterministicCaches(leaves []Regs, id *Identity) bool {
	found := false
	for _, r := range leaves {
		typ := r.EAX & 0x1f
		if typ == cacheTypeNull {
			break
		}
		level := (r.EAX >> 5) & 0x7
		ways := int(r.EBX>>22) + 1
		partitions := int((r.EBX>>12)&0x3ff) + 1
		line := int(r.EBX&0xfff) + 1
		sets := int(r.ECX) + 1
		size := ways * partitions * line * sets / 1024
		if r.EAX&(1<<9) != 0 {
			ways = FullyAssociative
		}

		switch {
		case level == 1 && typ == cacheTypeData:
			id.L1DataCache, id.L1DataAssoc, id.L1DataCacheline = size, ways, line
		case level == 1 && typ == cacheTypeInstruction:
			id.L1InstructionCache, id.L1InstructionAssoc, id.L1InstructionCacheline = size, ways, line
		case level == 2:
			id.L2Cache, id.L2Assoc, id.L2Cacheline = size, ways, line
		case level == 3:
			id.L3Cache, id.L3Assoc, id.L3Cacheline = size, ways, line
		case level == 4:
			id.L4Cache, id.L4Assoc, id.L4Cacheline = size, ways, line
		default:
			continue
		}
		found = true
	}
	return found
}
