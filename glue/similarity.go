package glue

import (
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/parlift/core"
)

// Similarity returns a weighted-Jaccard structural similarity score in
// [0,1] between a and b, used by the out-of-scope instance generator to
// pick a reference fixture close to a target shape. It never inspects
// potential values, only the multiset of RV (range, evidence) shapes and
// factor (scope size, assignment-key set or "unknown") shapes — two structurally identical
// graphs with different names or potential values score 1.0.
func Similarity(a, b *core.FactorGraph) float64 {
	freqA := shapeFrequencies(a)
	freqB := shapeFrequencies(b)

	keys := make(map[string]bool, len(freqA)+len(freqB))
	for k := range freqA {
		keys[k] = true
	}
	for k := range freqB {
		keys[k] = true
	}
	if len(keys) == 0 {
		return 1.0
	}

	var minSum, maxSum int
	for k := range keys {
		x, y := freqA[k], freqB[k]
		if x < y {
			minSum += x
			maxSum += y
		} else {
			minSum += y
			maxSum += x
		}
	}
	if maxSum == 0 {
		return 1.0
	}

	return float64(minSum) / float64(maxSum)
}

func shapeFrequencies(g *core.FactorGraph) map[string]int {
	freq := make(map[string]int)
	for _, rv := range g.RandVars() {
		freq["rv:"+rvShape(rv)]++
	}
	for _, f := range g.Factors() {
		freq["f:"+factorShape(f)]++
	}

	return freq
}

func rvShape(rv *core.RandVar) string {
	ev := "∅"
	if rv.Evidence != nil {
		ev = *rv.Evidence
	}

	return strings.Join(rv.Range, ",") + "|" + ev
}

func factorShape(f *core.Factor) string {
	if f.IsUnknown() {
		return strconv.Itoa(len(f.Scope)) + "|unknown"
	}
	table := f.Table()
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(len(f.Scope)))
	sb.WriteByte('|')
	for _, k := range keys {
		sb.WriteString(k)
		sb.WriteByte(';')
	}

	return sb.String()
}
