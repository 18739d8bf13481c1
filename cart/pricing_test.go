package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/food2go/storefront/models"
)

func floatPtr(v float64) *float64 { return &v }

func uintPtr(v uint) *uint { return &v }

// testBurger is a product snapshot exercising every pricing input:
// a discount, single and multi variations, a quantity addon, and
// extras with each kind of availability binding.
func testBurger() *models.Product {
	return &models.Product{
		ID:                 5,
		Name:               "Burger",
		Price:              120,
		PriceAfterDiscount: floatPtr(100),
		TaxVal:             5,
		Taxes:              models.Taxes{Setting: models.TaxIncluded},
		Variations: []models.Variation{
			{
				ID:   1,
				Type: models.VariationSingle,
				Options: []models.Option{
					{ID: 11, Price: 0},
					{ID: 12, Price: 35},
				},
			},
			{
				ID:   2,
				Type: models.VariationMultiple,
				Options: []models.Option{
					{ID: 21, Price: 10},
					{ID: 22, Price: 15},
				},
			},
		},
		Addons: []models.Addon{
			{ID: 31, Price: 25, QuantityAdd: 1},
			{ID: 32, Price: 15},
		},
		AllExtras: []models.Extra{
			{ID: 41, Price: 8, VariationID: uintPtr(1), OptionID: uintPtr(12)},
			{ID: 42, Price: 20, PriceAfterDiscount: floatPtr(15), VariationID: uintPtr(1)},
			{ID: 43, Price: 6},
			{ID: 44, Price: 9, OptionID: uintPtr(12)},
		},
	}
}

func TestLinePriceFullSelection(t *testing.T) {
	product := testBurger()
	sel := Selection{
		Variations: map[uint]OptionSelection{
			1: Single(12),
			2: Multi(21, 22),
		},
		Addons: map[uint]AddonSelection{
			31: {Checked: true, Quantity: 2},
			32: {Checked: true, Quantity: 0},
		},
		Extras: map[uint]int{41: 1, 42: 2},
	}

	// unit = 100 discounted base + 35 + 10 + 15 options
	//      + 25*2 addon + 15*1 addon (zero quantity defaults to 1)
	//      + 8*1 extra + 15*2 discounted extra = 263
	assert.InDelta(t, 789.0, LinePrice(product, sel, 3), 1e-9)
}

func TestLinePriceBaseOnly(t *testing.T) {
	product := testBurger()
	assert.InDelta(t, 200.0, LinePrice(product, Selection{}, 2), 1e-9)
}

func TestLinePriceUncheckedAddonIsFree(t *testing.T) {
	product := testBurger()
	sel := Selection{
		Addons: map[uint]AddonSelection{31: {Checked: false, Quantity: 3}},
	}
	assert.InDelta(t, 100.0, LinePrice(product, sel, 1), 1e-9)
}

func TestLinePriceSkipsStaleIDs(t *testing.T) {
	product := testBurger()
	sel := Selection{
		Variations: map[uint]OptionSelection{1: Single(999)},
		Addons:     map[uint]AddonSelection{888: {Checked: true, Quantity: 1}},
		Extras:     map[uint]int{777: 2},
	}
	assert.InDelta(t, 100.0, LinePrice(product, sel, 1), 1e-9)
}

func TestLinePriceGatesUnavailableExtras(t *testing.T) {
	product := testBurger()

	// Extra 41 requires option 12; with option 11 selected it must not
	// contribute.
	sel := Selection{
		Variations: map[uint]OptionSelection{1: Single(11)},
		Extras:     map[uint]int{41: 2},
	}
	assert.InDelta(t, 100.0, LinePrice(product, sel, 1), 1e-9)
}

func TestLinePriceExtraGatingSwitchesWithOption(t *testing.T) {
	product := &models.Product{
		ID:    3,
		Price: 100,
		Variations: []models.Variation{
			{
				ID:   1,
				Type: models.VariationSingle,
				Options: []models.Option{
					{ID: 11, Price: 0},
					{ID: 12, Price: 10},
				},
			},
		},
		Addons: []models.Addon{
			{ID: 21, Price: 20},
		},
		AllExtras: []models.Extra{
			{ID: 31, Price: 7, VariationID: uintPtr(1), OptionID: uintPtr(11)},
		},
	}
	sel := Selection{
		Variations: map[uint]OptionSelection{1: Single(11)},
		Addons:     map[uint]AddonSelection{21: {Checked: true, Quantity: 1}},
		Extras:     map[uint]int{31: 2},
	}

	// Option 11 selected: 100 + 20 addon + 7*2 extra.
	assert.InDelta(t, 134.0, LinePrice(product, sel, 1), 1e-9)

	// Switching to option 12 zeroes the extra even though its stored
	// quantity stays 2.
	sel.Variations[1] = Single(12)
	assert.InDelta(t, 130.0, LinePrice(product, sel, 1), 1e-9)
}

func TestLinePriceExcludesAreFree(t *testing.T) {
	product := testBurger()
	sel := Selection{Excludes: []uint{1, 2, 3}}
	assert.InDelta(t, 100.0, LinePrice(product, sel, 1), 1e-9)
}

func TestExtraAvailable(t *testing.T) {
	product := testBurger()
	optionBound := product.FindExtra(41)
	variationBound := product.FindExtra(42)
	unbound := product.FindExtra(43)
	orphan := product.FindExtra(44)

	tests := []struct {
		name       string
		extra      *models.Extra
		variations map[uint]OptionSelection
		want       bool
	}{
		{"unbound always available", unbound, nil, true},
		{"option bound with matching option", optionBound,
			map[uint]OptionSelection{1: Single(12)}, true},
		{"option bound inside multi select", optionBound,
			map[uint]OptionSelection{1: Multi(11, 12)}, true},
		{"option bound with other option", optionBound,
			map[uint]OptionSelection{1: Single(11)}, false},
		{"option bound without selection", optionBound, nil, false},
		{"variation bound with any selection", variationBound,
			map[uint]OptionSelection{1: Single(11)}, true},
		{"variation bound with empty multi", variationBound,
			map[uint]OptionSelection{1: Multi()}, false},
		{"variation bound without selection", variationBound, nil, false},
		{"option without variation never available", orphan,
			map[uint]OptionSelection{1: Single(12)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtraAvailable(tt.extra, tt.variations))
		})
	}
}

func TestExtraAvailableZeroBindingCountsAsAbsent(t *testing.T) {
	extra := &models.Extra{ID: 9, Price: 5, VariationID: uintPtr(0), OptionID: uintPtr(0)}
	assert.True(t, ExtraAvailable(extra, nil))
}
