package cpuid

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zenithax-cc/hwident/pkg/node"
	"github.com/zenithax-cc/hwident/pkg/utils"
)

// BuildNode renders identities as a "CPUID" node with one "CPU<n>" child per
// package.
func BuildNode(ids ...*Identity) *node.Node {
	root := node.New("CPUID", node.Plain)
	total := TotalCPUs()
	if len(ids) > 0 && ids[0] != nil && ids[0].TotalLogicalCPUs > 0 {
		total = ids[0].TotalLogicalCPUs
	}
	root.Setf("Total CPUs", node.FmtNumeric, "%d", total)
	root.Setf("Processor Count", node.FmtNumeric, "%d", len(ids))

	for i, id := range ids {
		if id == nil {
			continue
		}
		cpu := root.AppendNew("CPU"+strconv.Itoa(i), node.Row)
		cpu.Set("Vendor", id.VendorStr, 0)
		cpu.Set("Brand", id.Brand, 0)
		cpu.Set("Code Name", id.Codename, 0)
		cpu.Setf("Family", 0, "%02XH", id.Family)
		cpu.Setf("Model", 0, "%02XH", id.Model)
		cpu.Setf("Stepping", 0, "%02XH", id.Stepping)
		cpu.Setf("Ext.Family", 0, "%02XH", id.ExtFamily)
		cpu.Setf("Ext.Model", 0, "%02XH", id.ExtModel)
		cpu.Setf("Cores", node.FmtNumeric, "%d", id.NumCores)
		cpu.Setf("Logical CPUs", node.FmtNumeric, "%d", id.NumLogicalCPUs)
		if id.SSESize > 0 {
			cpu.Setf("SSE Size", node.FmtNumeric, "%d", id.SSESize)
		}
		cpu.Set("Features", strings.Join(id.Features(), " "), 0)

		cache := cpu.AppendNew("Cache", node.Plain)
		setCache(cache, "L1 D", id.L1DataCache, id.L1DataAssoc)
		setCache(cache, "L1 I", id.L1InstructionCache, id.L1InstructionAssoc)
		setCache(cache, "L2", id.L2Cache, id.L2Assoc)
		setCache(cache, "L3", id.L3Cache, id.L3Assoc)
		setCache(cache, "L4", id.L4Cache, id.L4Assoc)
	}

	return root
}

func setCache(n *node.Node, key string, sizeKB, assoc int) {
	if sizeKB <= 0 {
		return
	}
	size := utils.HumanSize(uint64(sizeKB) * utils.KB)
	switch {
	case assoc == FullyAssociative:
		n.Set(key, size+", fully associative", 0)
	case assoc > 0:
		n.Set(key, fmt.Sprintf("%s, %d-way", size, assoc), 0)
	default:
		n.Set(key, size, 0)
	}
}
