package cart

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrCatalogMismatch is returned when a cart references an item id the
// catalog snapshot does not contain. This is a data-integrity fault upstream
// of the cart and is surfaced instead of pricing the line at zero.
var ErrCatalogMismatch = errors.New("item not found in catalog")

// Variation is a named, separately priced size/option of an item.
type Variation struct {
	Name        string
	Price       decimal.Decimal
	IsAvailable bool
}

// Customization is an independently toggleable add-on. Its price is additive
// to the resolved base price.
type Customization struct {
	Name  string
	Price decimal.Decimal
}

// Item is a read-only catalog snapshot the engine prices against. The menu
// package owns the persistent records and maps them into this shape.
type Item struct {
	ID             string
	Name           string
	BasePrice      decimal.Decimal
	Variations     []Variation
	Customizations []Customization
	IsAvailable    bool
}

// Override is a per-deployment adjustment applied on top of catalog data.
// A nil field means "no override" for that aspect.
type Override struct {
	ItemID    string
	Price     *decimal.Decimal
	Available *bool
}

// Line is one distinct (item + selections) entry in a cart.
// Customizations are kept sorted and deduplicated so the identity key is
// order-insensitive.
type Line struct {
	ItemID         string   `json:"itemId"`
	Variation      string   `json:"variation,omitempty"`
	Customizations []string `json:"customizations,omitempty"`
	Quantity       int      `json:"quantity"`
}

// Key is the line's identity: two adds producing the same key merge into one
// line by summing quantity. Each field is quoted so names containing the
// separator cannot collide with a different selection tuple.
func (l Line) Key() string {
	parts := make([]string, 0, 2+len(l.Customizations))
	parts = append(parts, strconv.Quote(l.ItemID), strconv.Quote(l.Variation))
	for _, c := range l.Customizations {
		parts = append(parts, strconv.Quote(c))
	}
	return strings.Join(parts, "|")
}

// Cart is an ordered collection of lines. Insertion order is display order.
// Invariants: no two lines share a key, every line has quantity >= 1.
type Cart struct {
	Lines []Line `json:"lines"`
}

// Count is the sum of line quantities, used for badge counters.
func (c *Cart) Count() int {
	var n int
	for _, l := range c.Lines {
		n += l.Quantity
	}
	return n
}

// UpdateQuantity sets the matching line's quantity to exactly qty. A qty of
// zero or less removes the line. An unknown key is a no-op.
func (c *Cart) UpdateQuantity(key string, qty int) {
	if qty <= 0 {
		c.Remove(key)
		return
	}
	for i := range c.Lines {
		if c.Lines[i].Key() == key {
			c.Lines[i].Quantity = qty
			return
		}
	}
}

// Remove drops the matching line if present.
func (c *Cart) Remove(key string) {
	for i := range c.Lines {
		if c.Lines[i].Key() == key {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

// Engine resolves prices and availability from one consistent snapshot of
// catalog items and overrides. It holds no cart state, so a single engine
// may price any number of carts within one request.
type Engine struct {
	items     map[string]Item
	overrides map[string]Override
}

func NewEngine(items []Item, overrides []Override) *Engine {
	e := &Engine{
		items:     make(map[string]Item, len(items)),
		overrides: make(map[string]Override, len(overrides)),
	}
	for _, it := range items {
		e.items[it.ID] = it
	}
	for _, ov := range overrides {
		e.overrides[ov.ItemID] = ov
	}
	return e
}

// Item returns the catalog snapshot entry for id.
func (e *Engine) Item(id string) (Item, bool) {
	it, ok := e.items[id]
	return it, ok
}

// IsAvailable reports whether the item can be added to a cart. The
// availability override supersedes the catalog flag. Unknown items are
// never available.
func (e *Engine) IsAvailable(itemID string) bool {
	it, ok := e.items[itemID]
	if !ok {
		return false
	}
	if ov, ok := e.overrides[itemID]; ok && ov.Available != nil {
		return *ov.Available
	}
	return it.IsAvailable
}

// ResolveUnitPrice derives the effective unit price for a selection.
// Precedence: a price override wins outright over both the base price and any
// selected variation; otherwise the selected variation's price is the base;
// otherwise the item's base price. Selected customization prices are added on
// top. Unknown variation or customization names are skipped; an unknown item
// id is an ErrCatalogMismatch.
func (e *Engine) ResolveUnitPrice(itemID, variation string, customizations []string) (decimal.Decimal, error) {
	it, ok := e.items[itemID]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrCatalogMismatch, itemID)
	}

	base := it.BasePrice
	if ov, ok := e.overrides[itemID]; ok && ov.Price != nil {
		base = *ov.Price
	} else if variation != "" {
		for _, v := range it.Variations {
			if v.Name == variation {
				base = v.Price
				break
			}
		}
	}

	price := base
	for _, name := range normalizeCustomizations(customizations) {
		for _, cu := range it.Customizations {
			if cu.Name == name {
				price = price.Add(cu.Price)
				break
			}
		}
	}
	return price, nil
}

// Add merges the selection into the cart, summing quantities for an existing
// identity key and appending a new line otherwise. Adding an unavailable or
// unknown item is a no-op; the return value reports whether the cart changed.
func (e *Engine) Add(c *Cart, itemID string, qty int, variation string, customizations []string) bool {
	if !e.IsAvailable(itemID) {
		return false
	}
	if qty < 1 {
		qty = 1
	}

	line := Line{
		ItemID:         itemID,
		Variation:      variation,
		Customizations: normalizeCustomizations(customizations),
		Quantity:       qty,
	}
	key := line.Key()
	for i := range c.Lines {
		if c.Lines[i].Key() == key {
			c.Lines[i].Quantity += qty
			return true
		}
	}
	c.Lines = append(c.Lines, line)
	return true
}

// LineTotal is the resolved unit price times the line quantity.
func (e *Engine) LineTotal(l Line) (decimal.Decimal, error) {
	unit, err := e.ResolveUnitPrice(l.ItemID, l.Variation, l.Customizations)
	if err != nil {
		return decimal.Zero, err
	}
	return unit.Mul(decimal.NewFromInt(int64(l.Quantity))), nil
}

// Total sums line totals over the whole cart. Decimal arithmetic keeps the
// sum exact and independent of line order.
func (e *Engine) Total(c *Cart) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, l := range c.Lines {
		lt, err := e.LineTotal(l)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(lt)
	}
	return total, nil
}

// PayloadLine is one entry of the order payload handed to checkout.
type PayloadLine struct {
	ItemID                 string          `json:"itemId"`
	Name                   string          `json:"name"`
	Quantity               int             `json:"quantity"`
	UnitPrice              decimal.Decimal `json:"unitPrice"`
	SelectedVariation      string          `json:"selectedVariation,omitempty"`
	SelectedCustomizations []string        `json:"selectedCustomizations"`
}

// OrderPayload is the deterministic shape submitted to order creation.
type OrderPayload struct {
	Lines []PayloadLine   `json:"lines"`
	Total decimal.Decimal `json:"total"`
}

// BuildOrderPayload snapshots the cart into an order payload, resolving every
// line against the engine's catalog. Line order follows cart display order.
func (e *Engine) BuildOrderPayload(c *Cart) (OrderPayload, error) {
	payload := OrderPayload{
		Lines: make([]PayloadLine, 0, len(c.Lines)),
		Total: decimal.Zero,
	}
	for _, l := range c.Lines {
		it, ok := e.items[l.ItemID]
		if !ok {
			return OrderPayload{}, fmt.Errorf("%w: %s", ErrCatalogMismatch, l.ItemID)
		}
		unit, err := e.ResolveUnitPrice(l.ItemID, l.Variation, l.Customizations)
		if err != nil {
			return OrderPayload{}, err
		}
		customizations := l.Customizations
		if customizations == nil {
			customizations = []string{}
		}
		payload.Lines = append(payload.Lines, PayloadLine{
			ItemID:                 l.ItemID,
			Name:                   it.Name,
			Quantity:               l.Quantity,
			UnitPrice:              unit,
			SelectedVariation:      l.Variation,
			SelectedCustomizations: customizations,
		})
		payload.Total = payload.Total.Add(unit.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return payload, nil
}

func normalizeCustomizations(names []string) []string {
	if len(names) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
