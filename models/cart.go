package models

// CartEntry is one (item id, quantity) pair as rendered in the cart panel.
type CartEntry struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// Cart maps catalog item ids to requested quantities. Entries keep the
// insertion order of their first add so the cart renders stably. A quantity
// is always >= 1: decrementing the last unit deletes the entry. Cart is not
// safe for concurrent use; callers serialize access.
type Cart struct {
	quantities map[string]int
	order      []string
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{quantities: make(map[string]int)}
}

// Add increments the quantity for id by one, inserting it with quantity 1
// if absent.
func (c *Cart) Add(id string) {
	if _, ok := c.quantities[id]; !ok {
		c.order = append(c.order, id)
	}
	c.quantities[id]++
}

// Decrement lowers the quantity for id by one and deletes the entry when it
// would reach zero. Absent ids are a no-op.
func (c *Cart) Decrement(id string) {
	qty, ok := c.quantities[id]
	if !ok {
		return
	}
	if qty <= 1 {
		c.remove(id)
		return
	}
	c.quantities[id] = qty - 1
}

func (c *Cart) remove(id string) {
	delete(c.quantities, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}

// Quantity returns the current quantity for id, zero if absent.
func (c *Cart) Quantity(id string) int {
	return c.quantities[id]
}

// Len returns the number of distinct items in the cart.
func (c *Cart) Len() int {
	return len(c.order)
}

// Empty reports whether the cart has no entries.
func (c *Cart) Empty() bool {
	return len(c.order) == 0
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.quantities = make(map[string]int)
	c.order = nil
}

// Entries returns the cart as (id, qty) pairs in insertion order of first add.
func (c *Cart) Entries() []CartEntry {
	entries := make([]CartEntry, 0, len(c.order))
	for _, id := range c.order {
		entries = append(entries, CartEntry{ItemID: id, Quantity: c.quantities[id]})
	}
	return entries
}
