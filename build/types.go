package build

import (
	"errors"
	"sort"
	"strings"

	"github.com/katalvlaran/parlift/core"
)

// ErrMissingCommutativityAnnotation is returned when Stage 4 infers a CRV is
// needed for a factor but Options.CommutativeArgs has no entry for it.
var ErrMissingCommutativityAnnotation = errors.New("build: missing commutativity annotation")

// HistEntry is one row of an upstream commutative-factor analyzer's
// histogram table: a count vector aligned to the counting PRV's range
// order, the values of the factor's remaining ("rest") arguments in their
// relative order, and the potential value for that combination.
type HistEntry struct {
	Histogram []int
	Rest      []string
	Value     float64
}

// CommutativeArgsCache maps a factor name to the commutative argument set
// C ⊆ scope(F) — RVs that may be aggregated because F is invariant under
// their permutation. Supplied by an optional upstream commutative-factor
// analyzer; Build never infers this set itself.
type CommutativeArgsCache map[string][]*core.RandVar

// HistCache maps a factor name and a canonical commutative-set key (see
// CommutativeSetKey) to the histogram-keyed potential rows for that
// factor's CRV collapse.
type HistCache map[string]map[string][]HistEntry

// Options configures Build. CommutativeArgs and Hist may be nil when the
// caller already knows no factor group needs a CRV; Build consults them
// only when a group's representative factor's scope size exceeds its
// parfactor's collapsed scope size.
type Options struct {
	CommutativeArgs CommutativeArgsCache
	Hist            HistCache
}

// CommutativeSetKey canonicalizes a commutative argument set for HistCache
// lookup: RV names, sorted, comma-joined.
func CommutativeSetKey(c []*core.RandVar) string {
	names := make([]string, len(c))
	for i, rv := range c {
		names[i] = rv.Name
	}
	sort.Strings(names)

	return strings.Join(names, ",")
}
