package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve_ExactMatch(t *testing.T) {
	assert.Equal(t, "Restaurant", Advisory.Resolve("Restaurant"))
	assert.Equal(t, "Restaurant", Advisory.Resolve("restaurant"))
	assert.Equal(t, "Food and Beverages", Advisory.Resolve("food and beverages"))
	assert.Equal(t, "Entertainment/Leisure", Advisory.Resolve("entertainment/leisure"))
}

func TestResolve_SynonymRules(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		expected string
	}{
		{"milk tea maps to food", "milk tea shop", "Food and Beverages"},
		{"cafe maps to food", "a small cafe", "Food and Beverages"},
		{"bakery maps to food", "neighborhood bakery", "Food and Beverages"},
		{"eatery maps to restaurant", "roadside eatery", "Restaurant"},
		{"carinderia maps to restaurant", "Carinderia sa kanto", "Restaurant"},
		{"salon maps to leisure", "hair salon", "Entertainment/Leisure"},
		{"arcade maps to leisure", "video arcade", "Entertainment/Leisure"},
		{"hardware maps to trading", "hardware store", "Merchandising/Trading"},
		{"wholesale maps to trading", "wholesale rice dealer", "Merchandising/Trading"},
		{"shop maps to retail", "gift shop", "Retail"},
		{"boutique maps to retail", "clothing boutique", "Retail"},
		{"unknown falls to default", "quantum consulting", "Misc"},
		{"empty falls to default", "   ", "Misc"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Advisory.Resolve(tc.raw))
		})
	}
}

// Rule order is load-bearing: "milk tea shop" contains both a Food pattern
// and the generic Retail pattern "shop", and must resolve to Food.
func TestResolve_RuleOrder(t *testing.T) {
	assert.Equal(t, "Food and Beverages", Advisory.Resolve("milk tea shop"))
	assert.Equal(t, "Merchandising/Trading", Advisory.Resolve("hardware store"))
}

func TestResolve_NeverLeavesClosedSet(t *testing.T) {
	inputs := []string{
		"", "Food & Drink", "tech startup", "RESTAURANT", "piggery",
		"internet cafe", "vape shop", "abcdefg",
	}
	for _, in := range inputs {
		assert.True(t, Advisory.Contains(Advisory.Resolve(in)), "input %q escaped the closed set", in)
		assert.True(t, Registry.Contains(Registry.Resolve(in)), "input %q escaped the closed set", in)
	}
}

func TestRegistryTaxonomy(t *testing.T) {
	assert.Equal(t, "Cafe", Registry.Resolve("milk tea stand"))
	assert.Equal(t, "Hardware", Registry.Resolve("construction supplies depot"))
	assert.Equal(t, "Services", Registry.Resolve("motorcycle repair"))
	assert.Equal(t, "Others", Registry.Resolve("fish pond"))
	assert.Equal(t, "Retail", Registry.Resolve("sari-sari store"))
}
