package pfcore

import (
	"errors"
	"sync"
)

// Sentinel errors for parfactor-graph operations.
var (
	// ErrEmptyName indicates an empty LV, PRV, or Parfactor name.
	ErrEmptyName = errors.New("pfcore: name is empty")

	// ErrEmptyDomain indicates an LV constructed with no domain elements.
	ErrEmptyDomain = errors.New("pfcore: empty logical variable domain")

	// ErrEmptyRange indicates a PRV constructed with an empty range.
	ErrEmptyRange = errors.New("pfcore: empty range")

	// ErrPRVNotFound indicates an operation referenced a non-existent PRV.
	ErrPRVNotFound = errors.New("pfcore: parameterized random variable not found")

	// ErrParfactorNotFound indicates an operation referenced a non-existent Parfactor.
	ErrParfactorNotFound = errors.New("pfcore: parfactor not found")

	// ErrDuplicateName indicates an AddPRV call collided with an existing PRV name.
	ErrDuplicateName = errors.New("pfcore: duplicate name")

	// ErrMultipleLVs indicates an attempt to mark as counting a PRV with
	// other than exactly one logical variable.
	ErrMultipleLVs = errors.New("pfcore: counting RV requires exactly one logical variable")

	// ErrInvariantViolation is returned by Validate when a PFG-level
	// invariant (scope/edge agreement, name uniqueness) does not hold.
	ErrInvariantViolation = errors.New("pfcore: parfactor graph invariant violated")
)

// LogicalVar is a named, finite, ordered domain of individuals.
type LogicalVar struct {
	// Name uniquely identifies this LV within the model it is emitted into.
	Name string

	// Domain is the ordered list of distinct individual names.
	Domain []string
}

// NewLogicalVar constructs an LV with the given name and domain.
func NewLogicalVar(name string, domain []string) (*LogicalVar, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if len(domain) == 0 {
		return nil, ErrEmptyDomain
	}
	cp := make([]string, len(domain))
	copy(cp, domain)

	return &LogicalVar{Name: name, Domain: cp}, nil
}

// Size returns |domain(LV)|.
func (l *LogicalVar) Size() int { return len(l.Domain) }

func (l *LogicalVar) clone() *LogicalVar {
	return &LogicalVar{Name: l.Name, Domain: append([]string(nil), l.Domain...)}
}

// ParfactorID is a stable handle into a ParfactorGraph's parfactor table,
// used by PRV.CountedIn instead of a pointer to avoid a PRV↔Parfactor
// reference cycle.
type ParfactorID int

// PRV is a parameterized random variable: a name, a range (shared with the
// ground RVs it abstracts), an ordered list of LVs (empty ⇒ propositional),
// an optional counted-over LV, and the parfactors it acts as a counting RV
// within.
type PRV struct {
	// Name uniquely identifies this PRV within its ParfactorGraph.
	Name string

	// Range is the domain of values shared with the ground RVs this PRV abstracts.
	Range []string

	// LVs is the ordered list of logical variables parameterizing this PRV.
	// Empty means propositional (abstracts exactly one ground RV).
	LVs []*LogicalVar

	// CountedOver is the LV this PRV aggregates over when acting as a CRV,
	// or nil when it never does.
	CountedOver *LogicalVar

	// CountedIn lists, by handle, every parfactor in which this PRV acts as
	// a counting RV (CountedOver != nil && that parfactor ∈ CountedIn).
	CountedIn []ParfactorID
}

// NewPRV constructs a propositional or parameterized PRV. lvs may be nil.
func NewPRV(name string, rng []string, lvs []*LogicalVar) (*PRV, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if len(rng) == 0 {
		return nil, ErrEmptyRange
	}
	cp := make([]string, len(rng))
	copy(cp, rng)

	return &PRV{Name: name, Range: cp, LVs: append([]*LogicalVar(nil), lvs...)}, nil
}

// IsPropositional reports whether p abstracts exactly one ground RV.
func (p *PRV) IsPropositional() bool { return len(p.LVs) == 0 }

// IsCounting reports whether p acts as a counting RV within pf: its
// CountedOver is set and pf is among its CountedIn.
func (p *PRV) IsCounting(pf ParfactorID) bool {
	if p.CountedOver == nil {
		return false
	}
	for _, id := range p.CountedIn {
		if id == pf {
			return true
		}
	}

	return false
}

// Equal reports whether p and other have equal name, range, and LVs (by
// name and domain). CountedOver and CountedIn are deliberately excluded —
// comparing them would walk the PRV↔Parfactor cycle.
func (p *PRV) Equal(other *PRV) bool {
	if p.Name != other.Name || !equalStrings(p.Range, other.Range) {
		return false
	}
	if len(p.LVs) != len(other.LVs) {
		return false
	}
	for i, lv := range p.LVs {
		o := other.LVs[i]
		if lv.Name != o.Name || !equalStrings(lv.Domain, o.Domain) {
			return false
		}
	}

	return true
}

func (p *PRV) clone(lvByName map[string]*LogicalVar) *PRV {
	cp := &PRV{
		Name:      p.Name,
		Range:     append([]string(nil), p.Range...),
		LVs:       make([]*LogicalVar, len(p.LVs)),
		CountedIn: append([]ParfactorID(nil), p.CountedIn...),
	}
	for i, lv := range p.LVs {
		cp.LVs[i] = lvByName[lv.Name]
	}
	if p.CountedOver != nil {
		cp.CountedOver = lvByName[p.CountedOver.Name]
	}

	return cp
}

// Parfactor is a factor-like object whose arguments are PRVs. Its potential
// table is keyed by string-encoded assignments rather than
// index tuples (unlike core.Factor) because a CRV argument's assignment
// component is a histogram string, not a single range index.
type Parfactor struct {
	// Name uniquely identifies this Parfactor within its ParfactorGraph.
	Name string

	// Scope is the ordered list of PRVs this parfactor ranges over.
	Scope []*PRV

	// Potentials maps string-encoded assignments to potential values.
	Potentials map[string]float64
}

// NewParfactor constructs a Parfactor. table may be nil or empty.
func NewParfactor(name string, scope []*PRV, table map[string]float64) (*Parfactor, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	return &Parfactor{Name: name, Scope: append([]*PRV(nil), scope...), Potentials: table}, nil
}

func (pf *Parfactor) clone(prvByName map[string]*PRV) *Parfactor {
	cp := &Parfactor{
		Name:       pf.Name,
		Scope:      make([]*PRV, len(pf.Scope)),
		Potentials: clonePotentials(pf.Potentials),
	}
	for i, p := range pf.Scope {
		cp.Scope[i] = prvByName[p.Name]
	}

	return cp
}

func clonePotentials(t map[string]float64) map[string]float64 {
	if t == nil {
		return nil
	}
	cp := make(map[string]float64, len(t))
	for k, v := range t {
		cp[k] = v
	}

	return cp
}

// ParfactorGraph is a bipartite graph of PRVs and Parfactors, the
// parameterized counterpart of core.FactorGraph. muPRV guards the PRV
// catalog; muPF guards the parfactor catalog.
type ParfactorGraph struct {
	muPRV sync.RWMutex
	muPF  sync.RWMutex

	prvs     map[string]*PRV
	prvOrder []string

	parfactors map[ParfactorID]*Parfactor
	pfOrder    []ParfactorID
	nextID     ParfactorID

	// incident[prvName] lists, in insertion order, the ids of parfactors
	// whose scope contains that PRV.
	incident map[string][]ParfactorID
}

// NewParfactorGraph returns an empty ParfactorGraph.
func NewParfactorGraph() *ParfactorGraph {
	return &ParfactorGraph{
		prvs:       make(map[string]*PRV),
		parfactors: make(map[ParfactorID]*Parfactor),
		incident:   make(map[string][]ParfactorID),
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
