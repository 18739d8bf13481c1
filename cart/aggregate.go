package cart

import (
	"math"

	"github.com/food2go/storefront/models"
)

// Totals is the cart-wide money summary shown in the cart and carried
// into checkout.
type Totals struct {
	Subtotal      float64 `json:"subtotal"`
	TotalDiscount float64 `json:"totalDiscount"`
	TotalTax      float64 `json:"totalTax"`
	Total         float64 `json:"total"`
	ItemCount     int     `json:"itemCount"`
}

// Aggregate folds all cart lines into subtotal, discount, tax and
// grand total.
//
// The subtotal pass values everything at FULL price: base price,
// option deltas, addons at their stored quantity and extras at
// undiscounted price. The discount pass then books the product-level
// discount plus each extra's own discount delta. This intentionally
// differs from LinePrice, which prices the line itself at discounted
// extra prices and gates extras by availability; checkout figures
// depend on both passes producing exactly these numbers.
//
// Tax is a flat precomputed per-unit amount on the product snapshot,
// counted only when the product's tax setting is "included"; the
// aggregator never touches tax-rate tables.
func Aggregate(items []Item) Totals {
	var subtotal, totalDiscount, totalTax float64
	var itemCount int

	for i := range items {
		item := &items[i]
		product := item.Product
		if product == nil {
			itemCount += item.Quantity
			continue
		}
		qty := float64(item.Quantity)

		itemSubtotal := product.Price * qty

		discounted := product.UnitPrice() * qty
		if d := product.Price*qty - discounted; d > 0 {
			totalDiscount += d
		}

		for _, choice := range item.Variations {
			for _, optionID := range choice.IDs() {
				if option := product.FindOption(optionID); option != nil {
					itemSubtotal += option.Price * qty
				}
			}
		}

		for addonID, pick := range item.Addons {
			if !pick.Checked {
				continue
			}
			if addon := product.FindAddon(addonID); addon != nil {
				itemSubtotal += addon.Price * float64(pick.Quantity) * qty
			}
		}

		for extraID, extraQty := range item.Extras {
			if extraQty <= 0 {
				continue
			}
			extra := product.FindExtra(extraID)
			if extra == nil {
				continue
			}
			itemSubtotal += extra.Price * float64(extraQty) * qty
			if extra.PriceAfterDiscount != nil && *extra.PriceAfterDiscount > 0 {
				if d := (extra.Price - *extra.PriceAfterDiscount) * float64(extraQty) * qty; d > 0 {
					totalDiscount += d
				}
			}
		}

		subtotal += itemSubtotal

		if product.Taxes.Setting == models.TaxIncluded && product.TaxVal > 0 {
			totalTax += product.TaxVal * qty
		}

		itemCount += item.Quantity
	}

	t := Totals{
		Subtotal:      round2(subtotal),
		TotalDiscount: round2(totalDiscount),
		TotalTax:      round2(totalTax),
		ItemCount:     itemCount,
	}
	t.Total = round2(t.Subtotal - t.TotalDiscount + t.TotalTax)
	return t
}

// round2 rounds to 2 decimal places. Each aggregate field is rounded
// independently; rounding error is not carried between fields.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
