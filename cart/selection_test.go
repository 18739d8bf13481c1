package cart

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptionSelectionWireShape(t *testing.T) {
	single, err := json.Marshal(Single(5))
	assert.NoError(t, err)
	assert.JSONEq(t, `5`, string(single))

	multi, err := json.Marshal(Multi(1, 2))
	assert.NoError(t, err)
	assert.JSONEq(t, `[1,2]`, string(multi))

	empty, err := json.Marshal(OptionSelection{})
	assert.NoError(t, err)
	assert.JSONEq(t, `[]`, string(empty))
}

func TestOptionSelectionDecodesNumberOrArray(t *testing.T) {
	var s OptionSelection
	assert.NoError(t, json.Unmarshal([]byte(`7`), &s))
	assert.NotNil(t, s.One)
	assert.Equal(t, uint(7), *s.One)

	assert.NoError(t, json.Unmarshal([]byte(`[3,4]`), &s))
	assert.Nil(t, s.One)
	assert.Equal(t, []uint{3, 4}, s.Many)

	assert.Error(t, json.Unmarshal([]byte(`"nope"`), &s))
}

func TestSelectionRoundTripThroughJSON(t *testing.T) {
	sel := Selection{
		Variations: map[uint]OptionSelection{1: Single(12), 2: Multi(21, 22)},
		Addons:     map[uint]AddonSelection{31: {Checked: true, Quantity: 2}},
		Extras:     map[uint]int{42: 1},
		Excludes:   []uint{8},
		Note:       "spicy",
	}

	data, err := json.Marshal(sel)
	assert.NoError(t, err)

	var got Selection
	assert.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, ItemID(5, sel), ItemID(5, got))
	assert.Equal(t, "spicy", got.Note)
}
