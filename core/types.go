package core

import (
	"errors"
	"sort"
	"sync"
)

// Sentinel errors for core factor-graph operations. Callers branch on these
// with errors.Is; messages are never matched as strings.
var (
	// ErrEmptyName indicates an empty RandVar or Factor name.
	ErrEmptyName = errors.New("core: name is empty")

	// ErrRandVarNotFound indicates an operation referenced a non-existent RandVar.
	ErrRandVarNotFound = errors.New("core: random variable not found")

	// ErrFactorNotFound indicates an operation referenced a non-existent Factor.
	ErrFactorNotFound = errors.New("core: factor not found")

	// ErrDuplicateName indicates an Add call collided with an existing name
	// within the same kind (RandVar vs Factor namespaces are independent).
	ErrDuplicateName = errors.New("core: duplicate name")

	// ErrEmptyRange indicates a RandVar was constructed with an empty range.
	ErrEmptyRange = errors.New("core: empty range")

	// ErrEvidenceOutOfRange indicates evidence does not appear in the RandVar's range.
	ErrEvidenceOutOfRange = errors.New("core: evidence value not in range")

	// ErrEmptyScope indicates a Factor was constructed with no scope.
	ErrEmptyScope = errors.New("core: factor scope is empty")

	// ErrTableSizeMismatch indicates a known Factor's potential table does not
	// contain exactly one entry per point of the Cartesian product of its
	// scope's ranges.
	ErrTableSizeMismatch = errors.New("core: potential table size mismatch")

	// ErrInvariantViolation is returned by Validate when an FG-level invariant
	// (edge count, scope/edge agreement, name uniqueness) does not hold.
	ErrInvariantViolation = errors.New("core: factor graph invariant violated")
)

// RandVar is a random variable: a unique name, an ordered finite range
// (domain of values), and optional evidence (a single range value, or nil).
//
// Two RandVars are compatible when their ranges and evidence coincide; see
// Compatible.
type RandVar struct {
	// Name uniquely identifies this RandVar within its FactorGraph.
	Name string

	// Range is the ordered, finite domain of values this variable may take.
	Range []string

	// Evidence is the observed value, or nil if unobserved.
	Evidence *string
}

// NewRandVar constructs an unobserved RandVar (no evidence) with the given
// name and range; use NewRandVarWithEvidence for an observed value.
func NewRandVar(name string, rng []string) (*RandVar, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if len(rng) == 0 {
		return nil, ErrEmptyRange
	}
	cp := make([]string, len(rng))
	copy(cp, rng)

	return &RandVar{Name: name, Range: cp}, nil
}

// NewRandVarWithEvidence constructs a RandVar observed at evidence, which
// must be a member of rng.
func NewRandVarWithEvidence(name string, rng []string, evidence string) (*RandVar, error) {
	rv, err := NewRandVar(name, rng)
	if err != nil {
		return nil, err
	}
	if !contains(rv.Range, evidence) {
		return nil, ErrEvidenceOutOfRange
	}
	rv.Evidence = &evidence

	return rv, nil
}

// HasEvidence reports whether v carries an observed value.
func (v *RandVar) HasEvidence() bool { return v.Evidence != nil }

// Compatible reports whether v and other share the same range (elements and
// order) and the same evidence.
func (v *RandVar) Compatible(other *RandVar) bool {
	if !equalStrings(v.Range, other.Range) {
		return false
	}
	switch {
	case v.Evidence == nil && other.Evidence == nil:
		return true
	case v.Evidence == nil || other.Evidence == nil:
		return false
	default:
		return *v.Evidence == *other.Evidence
	}
}

// RangeIndex returns the index of value within v.Range, or -1 if absent.
func (v *RandVar) RangeIndex(value string) int {
	for i, r := range v.Range {
		if r == value {
			return i
		}
	}

	return -1
}

// clone returns a deep copy of v.
func (v *RandVar) clone() *RandVar {
	cp := &RandVar{Name: v.Name, Range: append([]string(nil), v.Range...)}
	if v.Evidence != nil {
		e := *v.Evidence
		cp.Evidence = &e
	}

	return cp
}

// AssignmentKey encodes one point of a Cartesian product of ranges as a
// semicolon-joined tuple of range indices, e.g. "0;1;0". Potential tables
// are keyed on index tuples rather than value strings; value strings are
// produced only when package build turns a Factor table into a parfactor
// table.
type AssignmentKey string

// Factor is a factor: a unique name, an ordered scope of RandVar references,
// and a potential table keyed by AssignmentKey. A Factor is unknown iff both
// Potentials and Imputed are empty.
//
// The lifter never mutates Potentials: it writes into Imputed instead, so
// the originally-loaded factor stays read-only and Table() transparently
// prefers the imputed value.
type Factor struct {
	// Name uniquely identifies this Factor within its FactorGraph.
	Name string

	// Scope is the ordered list of RandVars this factor ranges over.
	// Position is significant: color refinement's factor signature depends
	// on argument position, not just set membership.
	Scope []*RandVar

	// Potentials is the originally-loaded potential table; empty for an
	// unknown factor that has not yet been imputed.
	Potentials map[AssignmentKey]float64

	// Imputed holds a potential table copied in by the unknown-factor lifter
	// (lift.Lift) when this factor was fused into a known group. Nil until
	// then.
	Imputed map[AssignmentKey]float64
}

// NewFactor constructs a Factor with the given name and scope. table may be
// nil or empty to create an unknown factor; otherwise it must contain
// exactly one entry per point in the Cartesian product of scope's ranges.
func NewFactor(name string, scope []*RandVar, table map[AssignmentKey]float64) (*Factor, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if len(scope) == 0 {
		return nil, ErrEmptyScope
	}
	f := &Factor{Name: name, Scope: append([]*RandVar(nil), scope...), Potentials: table}
	if len(table) > 0 {
		if err := f.validateTable(table); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// validateTable checks that table has exactly one entry per Cartesian-product point.
func (f *Factor) validateTable(table map[AssignmentKey]float64) error {
	want := 1
	for _, rv := range f.Scope {
		want *= len(rv.Range)
	}
	if len(table) != want {
		return ErrTableSizeMismatch
	}

	return nil
}

// IsUnknown reports whether f has no potential table at all — neither an
// originally-loaded one nor an imputed one.
func (f *Factor) IsUnknown() bool {
	return len(f.Potentials) == 0 && len(f.Imputed) == 0
}

// Table returns the potential table to use for f: the imputed table if the
// lifter supplied one, otherwise the originally-loaded table. Returns nil
// for a still-unknown factor.
func (f *Factor) Table() map[AssignmentKey]float64 {
	if len(f.Imputed) > 0 {
		return f.Imputed
	}

	return f.Potentials
}

// TableEqual reports whether f and other have equal effective tables
// (per Table()), used by the symmetric-neighborhood / possibly-identical
// tests in package lift.
func (f *Factor) TableEqual(other *Factor) bool {
	a, b := f.Table(), other.Table()
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		bv, ok := b[k]
		if !ok || bv != v {
			return false
		}
	}

	return true
}

// Impute copies table into f.Imputed. Called only by package lift when f is
// adopted into a known-factor group.
func (f *Factor) Impute(table map[AssignmentKey]float64) {
	f.Imputed = table
}

// clone returns a deep copy of f whose Scope entries point at the
// corresponding entries of rvByName (to preserve cross-factor RandVar
// sharing; see FactorGraph.Clone).
func (f *Factor) clone(rvByName map[string]*RandVar) *Factor {
	cp := &Factor{
		Name:       f.Name,
		Scope:      make([]*RandVar, len(f.Scope)),
		Potentials: cloneTable(f.Potentials),
		Imputed:    cloneTable(f.Imputed),
	}
	for i, rv := range f.Scope {
		cp.Scope[i] = rvByName[rv.Name]
	}

	return cp
}

func cloneTable(t map[AssignmentKey]float64) map[AssignmentKey]float64 {
	if t == nil {
		return nil
	}
	cp := make(map[AssignmentKey]float64, len(t))
	for k, v := range t {
		cp[k] = v
	}

	return cp
}

// FactorGraph is a bipartite graph of RandVars and Factors. Every edge joins
// one RandVar to one Factor; a Factor's Scope slice is its edge set, in
// native order. muRV guards the RandVar catalog; muF guards the Factor
// catalog (scope references are immutable after AddFactor, so reading a
// Factor's Scope needs no lock beyond holding the Factor catalog lock
// briefly to fetch the pointer).
type FactorGraph struct {
	muRV sync.RWMutex
	muF  sync.RWMutex

	rvs     map[string]*RandVar
	rvOrder []string // insertion order, for deterministic iteration

	factors     map[string]*Factor
	factorOrder []string

	// incident[rvName] lists, in insertion order, the names of factors
	// whose scope contains that RandVar.
	incident map[string][]string
}

// NewFactorGraph returns an empty FactorGraph.
func NewFactorGraph() *FactorGraph {
	return &FactorGraph{
		rvs:      make(map[string]*RandVar),
		factors:  make(map[string]*Factor),
		incident: make(map[string][]string),
	}
}

func contains(ss []string, s string) bool {
	for _, x := range ss {
		if x == s {
			return true
		}
	}

	return false
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

// sortedCopy returns a sorted copy of ss. Nothing in this package calls it;
// algorithmic iteration always uses insertion order instead.
func sortedCopy(ss []string) []string {
	cp := append([]string(nil), ss...)
	sort.Strings(cp)

	return cp
}
