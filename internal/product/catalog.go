package product

// Catalog is the in-memory list of all known products.
type Catalog []Product

// ByID returns the product with the given id, or false if it is not in the
// catalog.
func (c Catalog) ByID(id int) (Product, bool) {
	for _, p := range c {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// IDs returns the ids of every product in the catalog, in catalog order.
func (c Catalog) IDs() []int {
	ids := make([]int, 0, len(c))
	for _, p := range c {
		ids = append(ids, p.ID)
	}
	return ids
}
