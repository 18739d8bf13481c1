package cart

import (
	"encoding/json"
	"errors"
)

// OptionSelection is the chosen option(s) for one variation. Exactly
// one of One/Many is set: One for single-select variations, Many for
// multi-select. On the wire (and in persisted snapshots) it is a bare
// number or an array of numbers, matching the upstream cart shape.
type OptionSelection struct {
	One  *uint
	Many []uint
}

// Single builds a single-select choice.
func Single(optionID uint) OptionSelection {
	return OptionSelection{One: &optionID}
}

// Multi builds a multi-select choice.
func Multi(optionIDs ...uint) OptionSelection {
	return OptionSelection{Many: optionIDs}
}

// IDs flattens the choice into a list of option ids.
func (s OptionSelection) IDs() []uint {
	if s.One != nil {
		return []uint{*s.One}
	}
	return s.Many
}

// Has reports whether the given option id is part of the choice.
func (s OptionSelection) Has(optionID uint) bool {
	if s.One != nil {
		return *s.One == optionID
	}
	for _, id := range s.Many {
		if id == optionID {
			return true
		}
	}
	return false
}

// Selected reports whether the choice holds anything at all.
func (s OptionSelection) Selected() bool {
	if s.One != nil {
		return true
	}
	return len(s.Many) > 0
}

func (s OptionSelection) MarshalJSON() ([]byte, error) {
	if s.One != nil {
		return json.Marshal(*s.One)
	}
	ids := s.Many
	if ids == nil {
		ids = []uint{}
	}
	return json.Marshal(ids)
}

func (s *OptionSelection) UnmarshalJSON(data []byte) error {
	var one uint
	if err := json.Unmarshal(data, &one); err == nil {
		s.One = &one
		s.Many = nil
		return nil
	}
	var many []uint
	if err := json.Unmarshal(data, &many); err == nil {
		s.One = nil
		s.Many = many
		return nil
	}
	return errors.New("cart: option selection must be an option id or a list of option ids")
}

// AddonSelection records an addon toggle plus its chosen quantity.
// Unchecked addons keep their last quantity; that leftover value still
// participates in the line identity key (see ItemID).
type AddonSelection struct {
	Checked  bool `json:"checked"`
	Quantity int  `json:"quantity"`
}

// Selection is the full per-line customization record: which options
// were picked per variation, which addons with what quantity, extra
// quantities, excluded ingredients and a free-text kitchen note.
type Selection struct {
	Variations map[uint]OptionSelection `json:"variations"`
	Addons     map[uint]AddonSelection  `json:"addons"`
	Extras     map[uint]int             `json:"extras"`
	Excludes   []uint                   `json:"excludes"`
	Note       string                   `json:"note"`
}
