// Package cart holds the session-local shopping cart. It stores product ids
// and quantities only; products are resolved against the catalog at use time,
// so a product deleted mid-session is detected rather than stale-cached.
package cart

import (
	"errors"
	"sort"
)

var ErrInvalidQuantity = errors.New("quantity must be > 0")

type Entry struct {
	ProductID uint
	Qty       int
}

type Cart struct {
	items map[uint]int
}

func New() *Cart {
	return &Cart{items: make(map[uint]int)}
}

// Add accumulates qty onto any existing entry for the product.
func (c *Cart) Add(productID uint, qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	c.items[productID] += qty
	return nil
}

func (c *Cart) Remove(productID uint) {
	delete(c.items, productID)
}

func (c *Cart) Clear() {
	c.items = make(map[uint]int)
}

func (c *Cart) Len() int {
	return len(c.items)
}

// Entries returns the cart sorted by product id, so checkout validates and
// commits in one deterministic order.
func (c *Cart) Entries() []Entry {
	entries := make([]Entry, 0, len(c.items))
	for pid, qty := range c.items {
		entries = append(entries, Entry{ProductID: pid, Qty: qty})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ProductID < entries[j].ProductID })
	return entries
}
