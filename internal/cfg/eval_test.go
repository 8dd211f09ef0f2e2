package cfg

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/crossbind/crossbind/internal/ir"
)

func TestEvalAtoms(t *testing.T) {
	rules := testRules()
	rules.TargetOS = "linux"

	tests := []struct {
		name string
		in   ir.Predicate
		want Tristate
	}{
		{"enabled feature", ir.Feature("on"), TriTrue},
		{"disabled feature", ir.Feature("off"), TriFalse},
		{"renamed feature", ir.Feature("old"), TriUnknown},
		{"unmapped feature", ir.Feature("mystery"), TriUnknown},
		{"matching target", ir.Target(ir.AxisOS, "linux"), TriTrue},
		{"mismatching target", ir.Target(ir.AxisOS, "windows"), TriFalse},
		{"unconfigured axis", ir.Target(ir.AxisArch, "x86_64"), TriUnknown},
		{"opaque", ir.OpaquePred("unix"), TriUnknown},
		{"false constant", ir.False(), TriFalse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Eval(tt.in, rules))
		})
	}
}

func TestEvalUnmappedUnderDisableUnknown(t *testing.T) {
	rules := testRules()
	rules.DisableUnknownFeatures = true
	assert.Equal(t, TriFalse, Eval(ir.Feature("mystery"), rules))
}

func TestEvalConnectives(t *testing.T) {
	rules := testRules()

	assert.Equal(t, TriTrue, Eval(ir.All(ir.Feature("on"), ir.Feature("on")), rules))
	assert.Equal(t, TriFalse, Eval(ir.All(ir.Feature("on"), ir.Feature("off")), rules))
	assert.Equal(t, TriUnknown, Eval(ir.All(ir.Feature("on"), ir.Feature("mystery")), rules))

	assert.Equal(t, TriTrue, Eval(ir.Any(ir.Feature("off"), ir.Feature("on")), rules))
	assert.Equal(t, TriFalse, Eval(ir.Any(ir.Feature("off"), ir.Feature("off")), rules))
	assert.Equal(t, TriUnknown, Eval(ir.Any(ir.Feature("off"), ir.Feature("mystery")), rules))

	// A true disjunct short-circuits past an unknown one.
	assert.Equal(t, TriTrue, Eval(ir.Any(ir.Feature("mystery"), ir.Feature("on")), rules))

	assert.Equal(t, TriFalse, Eval(ir.Not(ir.Feature("on")), rules))
	assert.Equal(t, TriTrue, Eval(ir.Not(ir.Feature("off")), rules))
	assert.Equal(t, TriUnknown, Eval(ir.Not(ir.Feature("mystery")), rules))
}

func TestKeep(t *testing.T) {
	rules := testRules()

	assert.True(t, Keep(ir.Feature("on"), rules, false))
	assert.False(t, Keep(ir.Feature("off"), rules, true))

	// Unknown resolves via the fold flag.
	assert.True(t, Keep(ir.Feature("mystery"), rules, true))
	assert.False(t, Keep(ir.Feature("mystery"), rules, false))
}

func TestRulesActive(t *testing.T) {
	assert.False(t, NewRules().Active())
	assert.True(t, testRules().Active())

	r := NewRules()
	r.TargetOS = "linux"
	assert.True(t, r.Active())

	r = NewRules()
	r.DisableUnknownFeatures = true
	assert.True(t, r.Active())
}
