package persona

import "strings"

// Entry pairs a slot id with its descriptor for ordered listing.
type Entry struct {
	ID         string
	Descriptor Descriptor
}

// Catalog maps slot ids to persona descriptors. Lookups never mutate a
// persona in place; Replace swaps the entire set at once.
type Catalog struct {
	set Set
}

// NewCatalog creates a catalog holding the given set.
func NewCatalog(set Set) *Catalog {
	return &Catalog{set: set}
}

// DefaultCatalog returns a catalog seeded with the five built-in archetypes.
func DefaultCatalog() *Catalog {
	return NewCatalog(DefaultSet())
}

// Get returns the descriptor for a slot id.
func (c *Catalog) Get(id string) (Descriptor, error) {
	if d, ok := c.set.BySlot(id); ok {
		return d, nil
	}
	return Descriptor{}, &NotFoundError{ID: id}
}

// GetByName looks a persona up by its display name, case-insensitively.
// The chat and HTTP boundaries address personas by name rather than slot.
func (c *Catalog) GetByName(name string) (Descriptor, error) {
	for _, d := range c.set.All() {
		if strings.EqualFold(d.Name, name) {
			return d, nil
		}
	}
	return Descriptor{}, &NotFoundError{ID: name}
}

// List returns all entries in slot declaration order.
func (c *Catalog) List() []Entry {
	all := c.set.All()
	entries := make([]Entry, len(all))
	for i, d := range all {
		entries[i] = Entry{ID: Slots[i], Descriptor: d}
	}
	return entries
}

// Replace swaps in a freshly generated set, discarding the old one whole.
func (c *Catalog) Replace(set Set) {
	c.set = set
}

// Set returns the current persona set.
func (c *Catalog) Set() Set {
	return c.set
}
