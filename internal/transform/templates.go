package transform

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// TemplateRegistry manages built-in what-if templates.
type TemplateRegistry struct {
	templates map[string]Template
}

// Template is a named collection of transforms.
type Template struct {
	Name        string
	Description string
	Transforms  []ScenarioTransform
}

// NewTemplateRegistry creates an empty template registry.
func NewTemplateRegistry() *TemplateRegistry {
	return &TemplateRegistry{
		templates: make(map[string]Template),
	}
}

// Register adds a template to the registry.
func (tr *TemplateRegistry) Register(t Template) {
	tr.templates[strings.ToLower(t.Name)] = t
}

// Get retrieves a template by name (case-insensitive).
func (tr *TemplateRegistry) Get(name string) (Template, bool) {
	t, ok := tr.templates[strings.ToLower(name)]
	return t, ok
}

// List returns all registered template names, sorted.
func (tr *TemplateRegistry) List() []string {
	names := make([]string, 0, len(tr.templates))
	for name := range tr.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BuiltInTemplates returns a registry with common what-if adjustments.
func BuiltInTemplates() *TemplateRegistry {
	registry := NewTemplateRegistry()

	registry.Register(Template{
		Name:        "double_savings",
		Description: "Double the yearly contribution",
		Transforms: []ScenarioTransform{
			&ScaleContribution{Percent: decimal.NewFromInt(200)},
		},
	})

	registry.Register(Template{
		Name:        "savings_plus_50",
		Description: "Increase the yearly contribution by 50%",
		Transforms: []ScenarioTransform{
			&ScaleContribution{Percent: decimal.NewFromInt(150)},
		},
	})

	registry.Register(Template{
		Name:        "tighten_belt_10",
		Description: "Cut the monthly budget by 10%",
		Transforms: []ScenarioTransform{
			&CutBudget{Percent: decimal.NewFromInt(10)},
		},
	})

	registry.Register(Template{
		Name:        "tighten_belt_20",
		Description: "Cut the monthly budget by 20%",
		Transforms: []ScenarioTransform{
			&CutBudget{Percent: decimal.NewFromInt(20)},
		},
	})

	registry.Register(Template{
		Name:        "lean_swr",
		Description: "Plan on a conservative 3.5% withdrawal rate",
		Transforms: []ScenarioTransform{
			&SetSWR{Percent: decimal.NewFromFloat(3.5)},
		},
	})

	registry.Register(Template{
		Name:        "bear_market",
		Description: "Assume a pessimistic 4% annual return",
		Transforms: []ScenarioTransform{
			&SetGrowthRate{Percent: decimal.NewFromInt(4)},
		},
	})

	registry.Register(Template{
		Name:        "retire_55",
		Description: "Target retirement at age 55",
		Transforms: []ScenarioTransform{
			&SetRetirementAge{Age: 55},
		},
	})

	return registry
}
