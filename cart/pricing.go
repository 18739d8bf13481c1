package cart

import "github.com/food2go/storefront/models"

// LinePrice computes the total price of one cart line: the product's
// discounted unit price plus option deltas, checked addons and
// available extras, multiplied by the line quantity. Excludes are
// free. Ids that no longer resolve against the product snapshot are
// skipped silently; catalog data may be stale and pricing must stay
// total.
func LinePrice(product *models.Product, sel Selection, quantity int) float64 {
	unit := product.UnitPrice()

	for _, choice := range sel.Variations {
		for _, optionID := range choice.IDs() {
			if option := product.FindOption(optionID); option != nil {
				unit += option.Price
			}
		}
	}

	for addonID, pick := range sel.Addons {
		if !pick.Checked {
			continue
		}
		addon := product.FindAddon(addonID)
		if addon == nil {
			continue
		}
		qty := pick.Quantity
		if qty <= 0 {
			qty = 1
		}
		unit += addon.Price * float64(qty)
	}

	for extraID, qty := range sel.Extras {
		if qty <= 0 {
			continue
		}
		extra := product.FindExtra(extraID)
		if extra == nil || !ExtraAvailable(extra, sel.Variations) {
			continue
		}
		unit += extra.UnitPrice() * float64(qty)
	}

	return unit * float64(quantity)
}

// ExtraAvailable reports whether an extra may contribute to a line
// under the current variation selection:
//
//   - no variation/option binding: always available
//   - bound to a variation AND an option: available only while that
//     exact option is selected under that variation
//   - bound to a variation only: available while the variation has any
//     non-empty selection
//   - bound to an option without a variation: never available
func ExtraAvailable(extra *models.Extra, variations map[uint]OptionSelection) bool {
	hasVariation := extra.VariationID != nil && *extra.VariationID != 0
	hasOption := extra.OptionID != nil && *extra.OptionID != 0

	switch {
	case !hasVariation && !hasOption:
		return true
	case hasVariation && hasOption:
		choice, ok := variations[*extra.VariationID]
		if !ok {
			return false
		}
		return choice.Has(*extra.OptionID)
	case hasVariation:
		choice, ok := variations[*extra.VariationID]
		if !ok {
			return false
		}
		return choice.Selected()
	default:
		return false
	}
}
