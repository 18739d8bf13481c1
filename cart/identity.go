package cart

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ItemID derives the deterministic key identifying a cart line by its
// product and customization. Two adds producing the same key merge
// into one line; note and quantity are deliberately left out.
//
// All ordering is lexicographic on the decimal string form of the ids,
// so e.g. option 10 sorts before option 9. Addon entries serialize the
// whole {checked, quantity} record, which means an unchecked addon
// with a leftover quantity still changes the key; the order contract
// depends on this merge granularity, so it is kept as is.
func ItemID(productID uint, sel Selection) string {
	variationKeys := make([]uint, 0, len(sel.Variations))
	for id := range sel.Variations {
		variationKeys = append(variationKeys, id)
	}
	sortByIDString(variationKeys)

	variationParts := make([]string, 0, len(variationKeys))
	for _, key := range variationKeys {
		choice := sel.Variations[key]
		var value string
		if choice.One != nil {
			value = formatID(*choice.One)
		} else {
			ids := make([]string, 0, len(choice.Many))
			for _, optionID := range choice.Many {
				ids = append(ids, formatID(optionID))
			}
			sort.Strings(ids)
			value = strings.Join(ids, ",")
		}
		variationParts = append(variationParts, formatID(key)+":"+value)
	}

	addonKeys := make([]uint, 0, len(sel.Addons))
	for id := range sel.Addons {
		addonKeys = append(addonKeys, id)
	}
	sortByIDString(addonKeys)

	addonParts := make([]string, 0, len(addonKeys))
	for _, key := range addonKeys {
		pick := sel.Addons[key]
		addonParts = append(addonParts,
			fmt.Sprintf(`%s:{"checked":%t,"quantity":%d}`, formatID(key), pick.Checked, pick.Quantity))
	}

	excludeIDs := make([]string, 0, len(sel.Excludes))
	for _, id := range sel.Excludes {
		excludeIDs = append(excludeIDs, formatID(id))
	}
	sort.Strings(excludeIDs)

	extraKeys := make([]uint, 0, len(sel.Extras))
	for id := range sel.Extras {
		extraKeys = append(extraKeys, id)
	}
	sortByIDString(extraKeys)

	extraParts := make([]string, 0, len(extraKeys))
	for _, key := range extraKeys {
		extraParts = append(extraParts, fmt.Sprintf("%s:%d", formatID(key), sel.Extras[key]))
	}

	return strings.Join([]string{
		formatID(productID),
		strings.Join(variationParts, "|"),
		strings.Join(addonParts, "|"),
		strings.Join(excludeIDs, ","),
		strings.Join(extraParts, "|"),
	}, "|")
}

// sortByIDString orders ids by their decimal string form, the same
// ordering the upstream key generator uses for map keys.
func sortByIDString(ids []uint) {
	sort.Slice(ids, func(i, j int) bool {
		return formatID(ids[i]) < formatID(ids[j])
	})
}

func formatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
