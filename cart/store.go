package cart

import (
	"sync"

	"github.com/food2go/storefront/models"
)

// Item is one cart line: a unique product+customization combination
// and its quantity. ID is derived from the product and selection via
// ItemID and is stable across sessions.
type Item struct {
	ID         string          `json:"id"`
	Product    *models.Product `json:"product"`
	Quantity   int             `json:"quantity"`
	Selection                  // variations, addons, extras, excludes, note
	TotalPrice float64 `json:"totalPrice"`
	BasePrice  float64 `json:"basePrice"`
}

// Cart is the persisted cart snapshot: the lines plus the aggregated
// money summary, recomputed on every mutation.
type Cart struct {
	Items         []Item  `json:"items"`
	Subtotal      float64 `json:"subtotal"`
	TotalDiscount float64 `json:"totalDiscount"`
	TotalTax      float64 `json:"totalTax"`
	Total         float64 `json:"total"`
	ItemCount     int     `json:"itemCount"`
}

// ItemPatch is a partial update for one cart line. Nil fields are left
// untouched; non-nil maps/slices replace the stored value wholesale.
type ItemPatch struct {
	Quantity   *int
	Variations map[uint]OptionSelection
	Addons     map[uint]AddonSelection
	Extras     map[uint]int
	Excludes   []uint
	Note       *string
}

// Store owns one customer's cart. Every mutation recomputes the
// affected line total, re-aggregates the cart and persists the
// snapshot; persistence failures are logged by the storage layer and
// never interrupt the mutation.
type Store struct {
	mu      sync.Mutex
	key     string
	storage Storage
	cart    Cart
}

// NewStore loads the snapshot stored under key, falling back to an
// empty cart when nothing (or nothing readable) is stored.
func NewStore(key string, storage Storage) *Store {
	s := &Store{key: key, storage: storage}
	s.cart = loadSnapshot(storage, key)
	s.applyTotals(Aggregate(s.cart.Items))
	return s
}

// Cart returns a copy of the current snapshot.
func (s *Store) Cart() Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := s.cart
	snapshot.Items = make([]Item, len(s.cart.Items))
	copy(snapshot.Items, s.cart.Items)
	return snapshot
}

// AddToCart merges the product+selection into an existing line when
// the identity matches (summing quantities, a new non-empty note
// replacing the old one), otherwise appends a new line with its total
// computed immediately.
func (s *Store) AddToCart(product *models.Product, quantity int, sel Selection) Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := ItemID(product.ID, sel)
	for i := range s.cart.Items {
		if s.cart.Items[i].ID != id {
			continue
		}
		item := &s.cart.Items[i]
		item.Quantity += quantity
		if sel.Note != "" {
			item.Note = sel.Note
		}
		item.TotalPrice = LinePrice(item.Product, item.Selection, item.Quantity)
		s.refresh()
		return *item
	}

	item := Item{
		ID:        id,
		Product:   product,
		Quantity:  quantity,
		Selection: sel,
		BasePrice: product.UnitPrice(),
	}
	item.TotalPrice = LinePrice(product, sel, quantity)
	s.cart.Items = append(s.cart.Items, item)
	s.refresh()
	return item
}

// UpdateCartItem merges the patch into the line with the given id and
// recomputes its total. Unknown ids are a silent no-op; the reference
// may be stale.
func (s *Store) UpdateCartItem(id string, patch ItemPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := s.find(id)
	if item == nil {
		return
	}
	if patch.Quantity != nil {
		item.Quantity = *patch.Quantity
	}
	if patch.Variations != nil {
		item.Variations = patch.Variations
	}
	if patch.Addons != nil {
		item.Addons = patch.Addons
	}
	if patch.Extras != nil {
		item.Extras = patch.Extras
	}
	if patch.Excludes != nil {
		item.Excludes = patch.Excludes
	}
	if patch.Note != nil {
		item.Note = *patch.Note
	}
	item.TotalPrice = LinePrice(item.Product, item.Selection, item.Quantity)
	s.refresh()
}

// IncrementQuantity raises a line's quantity by one.
func (s *Store) IncrementQuantity(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := s.find(id)
	if item == nil {
		return
	}
	item.Quantity++
	item.TotalPrice = LinePrice(item.Product, item.Selection, item.Quantity)
	s.refresh()
}

// DecrementQuantity lowers a line's quantity by one, flooring at 1.
// Removing a line is always an explicit RemoveFromCart.
func (s *Store) DecrementQuantity(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := s.find(id)
	if item == nil || item.Quantity <= 1 {
		return
	}
	item.Quantity--
	item.TotalPrice = LinePrice(item.Product, item.Selection, item.Quantity)
	s.refresh()
}

// RemoveFromCart drops the line with the given id.
func (s *Store) RemoveFromCart(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.cart.Items[:0]
	for i := range s.cart.Items {
		if s.cart.Items[i].ID != id {
			items = append(items, s.cart.Items[i])
		}
	}
	s.cart.Items = items
	s.refresh()
}

// ClearCart empties the cart. Totals collapse to zero.
func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.Items = nil
	s.refresh()
}

func (s *Store) find(id string) *Item {
	for i := range s.cart.Items {
		if s.cart.Items[i].ID == id {
			return &s.cart.Items[i]
		}
	}
	return nil
}

func (s *Store) refresh() {
	s.applyTotals(Aggregate(s.cart.Items))
	saveSnapshot(s.storage, s.key, s.cart)
}

func (s *Store) applyTotals(t Totals) {
	s.cart.Subtotal = t.Subtotal
	s.cart.TotalDiscount = t.TotalDiscount
	s.cart.TotalTax = t.TotalTax
	s.cart.Total = t.Total
	s.cart.ItemCount = t.ItemCount
}
