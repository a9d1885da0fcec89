package emit

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/parlift/pfcore"
)

// Emit serializes pfg into the model-description syntax: type declarations,
// guaranteed-individuals declarations, random-function declarations, and
// one factor/parfactor statement per parfactor, in that order. Fails with
// ErrUnsupportedRange if any PRV's range is not boolean.
func Emit(pfg *pfcore.ParfactorGraph, _ Options) (string, error) {
	var sb strings.Builder

	for _, lv := range pfg.LogicalVars() {
		fmt.Fprintf(&sb, "type %s;\n", lv.Name)
	}
	for _, lv := range pfg.LogicalVars() {
		fmt.Fprintf(&sb, "guaranteed %s %s;\n", lv.Name, strings.Join(lv.Domain, ", "))
	}

	for _, p := range pfg.PRVs() {
		typ, err := rangeToType(p.Range)
		if err != nil {
			return "", fmt.Errorf("%w: PRV %s", err, p.Name)
		}
		if p.IsPropositional() {
			fmt.Fprintf(&sb, "random %s %s;\n", typ, p.Name)

			continue
		}
		names := make([]string, len(p.LVs))
		for i, lv := range p.LVs {
			names[i] = lv.Name
		}
		fmt.Fprintf(&sb, "random %s %s(%s);\n", typ, p.Name, strings.Join(names, ", "))
	}

	for _, pf := range pfg.Parfactors() {
		sb.WriteString(emitStatement(pf))
		sb.WriteByte('\n')
	}

	return sb.String(), nil
}

// emitStatement renders one factor/parfactor line for pf.
func emitStatement(pf *pfcore.Parfactor) string {
	type position struct {
		prv         *pfcore.PRV
		placeholder string
		isCRV       bool
	}

	positions := make([]position, len(pf.Scope))
	var headerParts []string
	next := 1
	for i, p := range pf.Scope {
		if len(p.LVs) == 0 {
			positions[i] = position{prv: p}

			continue
		}
		ph := fmt.Sprintf("X%d", next)
		next++
		isCRV := p.CountedOver != nil
		positions[i] = position{prv: p, placeholder: ph, isCRV: isCRV}
		lv := p.LVs[0]
		if isCRV {
			lv = p.CountedOver
		}
		headerParts = append(headerParts, fmt.Sprintf("%s %s", lv.Name, ph))
	}

	args := make([]string, len(positions))
	for i, pos := range positions {
		switch {
		case pos.placeholder == "":
			args[i] = pos.prv.Name
		case pos.isCRV:
			args[i] = fmt.Sprintf("#(%s %s)[%s(%s)]", pos.prv.CountedOver.Name, pos.placeholder, pos.prv.Name, pos.placeholder)
		default:
			args[i] = fmt.Sprintf("%s(%s)", pos.prv.Name, pos.placeholder)
		}
	}

	potentials := descendingPotentials(pf.Potentials)

	if len(headerParts) == 0 {
		return fmt.Sprintf("factor MultiArrayPotential[[%s]] (%s);", potentials, strings.Join(args, ", "))
	}

	return fmt.Sprintf("parfactor %s. MultiArrayPotential[[%s]] (%s);",
		strings.Join(headerParts, ", "), potentials, strings.Join(args, ", "))
}

// descendingPotentials renders pf's potential values, ordered by strictly
// descending lexicographic assignment key, comma-joined.
func descendingPotentials(table map[string]float64) string {
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))

	vals := make([]string, len(keys))
	for i, k := range keys {
		vals[i] = strconv.FormatFloat(table[k], 'g', -1, 64)
	}

	return strings.Join(vals, ", ")
}
