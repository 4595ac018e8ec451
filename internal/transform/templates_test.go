package transform

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltInTemplates(t *testing.T) {
	registry := BuiltInTemplates()

	names := registry.List()
	require.NotEmpty(t, names)
	assert.Contains(t, names, "double_savings")
	assert.Contains(t, names, "tighten_belt_10")
	assert.Contains(t, names, "lean_swr")
	assert.Contains(t, names, "retire_55")
}

func TestTemplateLookupCaseInsensitive(t *testing.T) {
	registry := BuiltInTemplates()

	tpl, ok := registry.Get("Double_Savings")
	require.True(t, ok)
	assert.Equal(t, "double_savings", tpl.Name)
	assert.NotEmpty(t, tpl.Description)
	assert.NotEmpty(t, tpl.Transforms)

	_, ok = registry.Get("no_such_template")
	assert.False(t, ok)
}

func TestTemplatesApplyCleanly(t *testing.T) {
	registry := BuiltInTemplates()
	for _, name := range registry.List() {
		t.Run(name, func(t *testing.T) {
			tpl, ok := registry.Get(name)
			require.True(t, ok)

			modified, err := ApplyTransforms(baseScenario(), tpl.Transforms)
			require.NoError(t, err, "built-in template %s should apply to a normal scenario", name)
			require.NotNil(t, modified)
		})
	}
}

func TestDoubleSavingsTemplate(t *testing.T) {
	registry := BuiltInTemplates()
	tpl, ok := registry.Get("double_savings")
	require.True(t, ok)

	modified, err := ApplyTransforms(baseScenario(), tpl.Transforms)
	require.NoError(t, err)
	assert.True(t, modified.YearlyContribution.Equal(decimal.NewFromInt(24000)))
}
