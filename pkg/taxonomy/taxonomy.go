package taxonomy

import "strings"

// Taxonomy is a closed set of category labels plus the ordered synonym rules
// used to pull free-form model output back onto the set. Resolution is
// two-tier: exact case-insensitive match first, then the first synonym rule
// whose pattern appears as a substring, then Default. Resolve never returns
// a label outside Labels.
type Taxonomy struct {
	Name    string
	Labels  []string
	Default string
	Rules   []SynonymRule
}

// SynonymRule maps a set of lowercase substrings onto one label. Rules are
// evaluated in order; the first matching rule wins, so more specific rules
// (e.g. "milk tea") must come before generic ones (e.g. "shop").
type SynonymRule struct {
	Label    string
	Patterns []string
}

// Resolve maps raw free text onto the taxonomy.
func (t Taxonomy) Resolve(raw string) string {
	needle := strings.ToLower(strings.TrimSpace(raw))
	if needle == "" {
		return t.Default
	}

	for _, label := range t.Labels {
		if strings.EqualFold(needle, label) {
			return label
		}
	}

	for _, rule := range t.Rules {
		for _, p := range rule.Patterns {
			if strings.Contains(needle, p) {
				return rule.Label
			}
		}
	}

	return t.Default
}

// Contains reports whether label is a member of the closed set.
func (t Taxonomy) Contains(label string) bool {
	for _, l := range t.Labels {
		if strings.EqualFold(l, label) {
			return true
		}
	}
	return false
}

// Advisory is the taxonomy used by the /api/v1/ai/categorize endpoint.
var Advisory = Taxonomy{
	Name: "advisory",
	Labels: []string{
		"Retail",
		"Entertainment/Leisure",
		"Merchandising/Trading",
		"Food and Beverages",
		"Restaurant",
		"Misc",
	},
	Default: "Misc",
	Rules: []SynonymRule{
		{Label: "Food and Beverages", Patterns: []string{
			"milk tea", "milktea", "cafe", "coffee", "bakery", "bakeshop",
			"juice", "beverage", "snack", "food stall", "dessert",
		}},
		{Label: "Restaurant", Patterns: []string{
			"restaurant", "diner", "eatery", "carinderia", "grill",
			"fast food", "canteen", "bistro",
		}},
		{Label: "Entertainment/Leisure", Patterns: []string{
			"salon", "spa", "arcade", "karaoke", "resort", "gym",
			"billiard", "entertainment", "leisure", "cinema",
		}},
		{Label: "Merchandising/Trading", Patterns: []string{
			"wholesale", "hardware", "trading", "supplier", "distributor",
			"construction supplies", "lumber",
		}},
		{Label: "Retail", Patterns: []string{
			"store", "shop", "boutique", "retail", "mart", "grocery",
			"sari-sari", "stand", "kiosk",
		}},
	},
}

// Registry is the taxonomy used by the /api/v1/categories/classify endpoint.
// It mirrors the category column of the barangay business registry, which is
// why it differs from Advisory; the two endpoint families are deliberately
// kept as independent configurations.
var Registry = Taxonomy{
	Name: "registry",
	Labels: []string{
		"Retail",
		"Restaurant",
		"Cafe",
		"Services",
		"Hardware",
		"Others",
	},
	Default: "Others",
	Rules: []SynonymRule{
		{Label: "Cafe", Patterns: []string{
			"cafe", "coffee", "milk tea", "milktea", "brew", "tea house",
		}},
		{Label: "Restaurant", Patterns: []string{
			"restaurant", "eatery", "carinderia", "diner", "grill",
			"fast food", "food hub",
		}},
		{Label: "Hardware", Patterns: []string{
			"hardware", "construction supplies", "lumber", "builders",
		}},
		{Label: "Services", Patterns: []string{
			"salon", "barbershop", "repair", "laundry", "carwash",
			"services", "studio", "gym", "catering",
		}},
		{Label: "Retail", Patterns: []string{
			"store", "shop", "retail", "mart", "grocery", "sari-sari",
			"boutique", "pharmacy",
		}},
	},
}
