package cart

// OrderAddon is one checked addon in the order payload.
type OrderAddon struct {
	AddonID uint `json:"addon_id"`
	Count   int  `json:"count"`
}

// OrderVariation is one variation choice in the order payload; single
// selections are wrapped in a one-element option_id list.
type OrderVariation struct {
	VariationID uint   `json:"variation_id"`
	OptionID    []uint `json:"option_id"`
}

// OrderProduct is the per-line projection submitted to the platform's
// order endpoint.
type OrderProduct struct {
	ProductID uint             `json:"product_id"`
	Note      string           `json:"note"`
	Count     int              `json:"count"`
	Addons    []OrderAddon     `json:"addons"`
	ExcludeID []uint           `json:"exclude_id"`
	ExtraID   []uint           `json:"extra_id"`
	Variation []OrderVariation `json:"variation"`
}

// OrderProducts projects cart lines into the order payload contract:
// only checked addons are carried (count defaulting to 1), extras keep
// their ids but LOSE their quantity, and exclude ids pass through
// untouched. The dropped extra quantity is a quirk of the platform
// contract and is preserved as is.
func OrderProducts(items []Item) []OrderProduct {
	products := make([]OrderProduct, 0, len(items))
	for i := range items {
		item := &items[i]

		addonKeys := make([]uint, 0, len(item.Addons))
		for id := range item.Addons {
			addonKeys = append(addonKeys, id)
		}
		sortByIDString(addonKeys)

		addons := make([]OrderAddon, 0, len(addonKeys))
		for _, id := range addonKeys {
			pick := item.Addons[id]
			if !pick.Checked {
				continue
			}
			count := pick.Quantity
			if count <= 0 {
				count = 1
			}
			addons = append(addons, OrderAddon{AddonID: id, Count: count})
		}

		extraKeys := make([]uint, 0, len(item.Extras))
		for id := range item.Extras {
			extraKeys = append(extraKeys, id)
		}
		sortByIDString(extraKeys)

		extraIDs := make([]uint, 0, len(extraKeys))
		for _, id := range extraKeys {
			if item.Extras[id] > 0 {
				extraIDs = append(extraIDs, id)
			}
		}

		variationKeys := make([]uint, 0, len(item.Variations))
		for id := range item.Variations {
			variationKeys = append(variationKeys, id)
		}
		sortByIDString(variationKeys)

		variations := make([]OrderVariation, 0, len(variationKeys))
		for _, id := range variationKeys {
			optionIDs := item.Variations[id].IDs()
			if optionIDs == nil {
				optionIDs = []uint{}
			}
			variations = append(variations, OrderVariation{VariationID: id, OptionID: optionIDs})
		}

		excludeIDs := item.Excludes
		if excludeIDs == nil {
			excludeIDs = []uint{}
		}

		productID := uint(0)
		if item.Product != nil {
			productID = item.Product.ID
		}

		products = append(products, OrderProduct{
			ProductID: productID,
			Note:      item.Note,
			Count:     item.Quantity,
			Addons:    addons,
			ExcludeID: excludeIDs,
			ExtraID:   extraIDs,
			Variation: variations,
		})
	}
	return products
}
