package emit_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/parlift/emit"
	"github.com/katalvlaran/parlift/pfcore"
)

func TestEmit_TrivialPropositional_PlainFactorStatement(t *testing.T) {
	r0, err := pfcore.NewPRV("R0", []string{"true", "false"}, nil)
	require.NoError(t, err)
	g := pfcore.NewParfactorGraph()
	require.NoError(t, g.AddPRV(r0))
	pf, err := pfcore.NewParfactor("pf0", []*pfcore.PRV{r0}, map[string]float64{"true": 0.5, "false": 0.5})
	require.NoError(t, err)
	_, err = g.AddParfactor(pf)
	require.NoError(t, err)

	out, err := emit.Emit(g, emit.Options{})
	require.NoError(t, err)
	assert.Contains(t, out, "random Boolean R0;")
	assert.Contains(t, out, "factor MultiArrayPotential[[0.5, 0.5]] (R0);")
	assert.NotContains(t, out, "type ")
}

func TestEmit_UnsupportedRange(t *testing.T) {
	r0, err := pfcore.NewPRV("R0", []string{"low", "mid", "high"}, nil)
	require.NoError(t, err)
	g := pfcore.NewParfactorGraph()
	require.NoError(t, g.AddPRV(r0))

	_, err = emit.Emit(g, emit.Options{})
	assert.ErrorIs(t, err, emit.ErrUnsupportedRange)
}

func TestEmit_DescendingPotentialOrder(t *testing.T) {
	r0, _ := pfcore.NewPRV("R0", []string{"true", "false"}, nil)
	g := pfcore.NewParfactorGraph()
	_ = g.AddPRV(r0)
	pf, _ := pfcore.NewParfactor("pf0", []*pfcore.PRV{r0}, map[string]float64{"true": 0.1, "false": 0.9})
	_, _ = g.AddParfactor(pf)

	out, err := emit.Emit(g, emit.Options{})
	require.NoError(t, err)
	line := grepLine(t, out, "factor")
	// "true" > "false" lexicographically, so 0.1 (true's value) comes first.
	assert.Equal(t, "factor MultiArrayPotential[[0.1, 0.9]] (R0);", line)
}

// CRV emission: the CRV is printed first with the counting bracket syntax,
// using whatever LV name the builder assigned.
func TestEmit_CountingRV_EmitsBracketSyntaxFirst(t *testing.T) {
	lv, err := pfcore.NewLogicalVar("L0", []string{"l0_1", "l0_2", "l0_3"})
	require.NoError(t, err)
	r0, err := pfcore.NewPRV("R0", []string{"true", "false"}, []*pfcore.LogicalVar{lv})
	require.NoError(t, err)
	r1, err := pfcore.NewPRV("R1", []string{"true", "false"}, nil)
	require.NoError(t, err)

	g := pfcore.NewParfactorGraph()
	require.NoError(t, g.AddPRV(r0))
	require.NoError(t, g.AddPRV(r1))
	pf, err := pfcore.NewParfactor("pf0", []*pfcore.PRV{r0, r1}, map[string]float64{
		"3;0, true": 0.1,
		"2;1, true": 0.1,
	})
	require.NoError(t, err)
	id, err := g.AddParfactor(pf)
	require.NoError(t, err)
	require.NoError(t, g.MarkCounting(r0, id))

	out, err := emit.Emit(g, emit.Options{})
	require.NoError(t, err)
	assert.Contains(t, out, "#(L0 X1)[R0(X1)]")
	line := grepLine(t, out, "parfactor")
	assert.Contains(t, line, "L0 X1.")
	assert.True(t, strings.HasPrefix(strings.TrimSuffix(line, "\n"), "parfactor L0 X1."))
}

func grepLine(t *testing.T, out, prefix string) string {
	t.Helper()
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, prefix) {
			return line
		}
	}
	t.Fatalf("no line with prefix %q in:\n%s", prefix, out)

	return ""
}
