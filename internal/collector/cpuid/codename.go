package cpuid

import (
	"log/slog"
	"math/bits"
)

// MatchEntry is one row of a codename table. Integer fields set to -1 never
// match a decoded value and so act as "don't care".
type MatchEntry struct {
	Family    int
	Model     int
	Stepping  int
	ExtFamily int
	ExtModel  int
	NCores    int
	L2Cache   int
	L3Cache   int
	BrandCode int
	ModelBits uint64
	ModelCode int
	Name      string
}

func (e *MatchEntry) score(id *Identity, brandCode int, modelBits uint64, modelCode int) int {
	res := 0
	for _, p := range [...][2]int{
		{e.Family, id.Family},
		{e.Model, id.Model},
		{e.Stepping, id.Stepping},
		{e.ExtFamily, id.ExtFamily},
		{e.ExtModel, id.ExtModel},
		{e.NCores, id.NumCores},
		{e.BrandCode, brandCode},
		{e.ModelCode, modelCode},
	} {
		if p[0] == p[1] {
			res += 2
		}
	}
	if e.L2Cache == id.L2Cache {
		res++
	}
	if e.L3Cache == id.L3Cache {
		res++
	}
	return res + 2*bits.OnesCount64(e.ModelBits&modelBits)
}

// MatchCodename scores every row of table against id and stores the name of
// the best one in id.Codename. Ties keep the earlier row, so row 0 is the
// fallback. It returns the winning score, or -1 for an empty table.
func MatchCodename(table []MatchEntry, id *Identity, brandCode int, modelBits uint64, modelCode int) int {
	best, bestIdx := -1, 0
	for i := range table {
		if s := table[i].score(id, brandCode, modelBits, modelCode); s > best {
			best, bestIdx = s, i
		}
	}
	if len(table) == 0 {
		id.Codename = ""
		return best
	}

	id.Codename = table[bestIdx].Name
	slog.Debug("cpuid codename matched", "codename", id.Codename, "score", best)
	return best
}
