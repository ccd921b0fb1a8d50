package catalog

import (
	"sync"
)

// Store owns the in-memory product list for one process. The featured
// subset is always recomputed from the full list after every mutation,
// never maintained independently.
type Store struct {
	mu       sync.RWMutex
	products []Product
	featured []Product
}

func NewStore() *Store {
	return &Store{}
}

// ReplaceAll swaps in a full product list, e.g. after loading the seed
// or the remote copy.
func (s *Store) ReplaceAll(products []Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append([]Product(nil), products...)
	s.recomputeFeatured()
}

// List returns a copy of the full list in original load order.
func (s *Store) List() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Product(nil), s.products...)
}

// Featured returns the derived featured subset.
func (s *Store) Featured() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Product(nil), s.featured...)
}

// ByCategory partitions the list into a category → products map,
// preserving relative order within each category.
func (s *Store) ByCategory() map[Category][]Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[Category][]Product)
	for _, p := range s.products {
		out[p.Category] = append(out[p.Category], p)
	}
	return out
}

// Category returns the products of one category in original order.
func (s *Store) Category(c Category) []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Product
	for _, p := range s.products {
		if p.Category == c {
			out = append(out, p)
		}
	}
	return out
}

func (s *Store) Get(id string) (Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// Insert appends a new product.
func (s *Store) Insert(p Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append(s.products, p)
	s.recomputeFeatured()
}

// Save replaces the product with the same id in place, keeping its
// position in the list. Reports whether the id existed.
func (s *Store) Save(p Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == p.ID {
			s.products[i] = p
			s.recomputeFeatured()
			return true
		}
	}
	return false
}

// Delete removes the product by id. Reports whether the id existed.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			s.recomputeFeatured()
			return true
		}
	}
	return false
}

// ToggleFeatured flips the featured flag and returns the updated record.
func (s *Store) ToggleFeatured(id string) (Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products[i].Featured = !s.products[i].Featured
			s.recomputeFeatured()
			return s.products[i], true
		}
	}
	return Product{}, false
}

// BulkEdit applies one action to every selected id and returns the
// number of records actually updated. Unknown ids are skipped silently.
func (s *Store) BulkEdit(ids []string, apply func(*Product)) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	selected := make(map[string]bool, len(ids))
	for _, id := range ids {
		selected[id] = true
	}

	updated := 0
	for i := range s.products {
		if !selected[s.products[i].ID] {
			continue
		}
		apply(&s.products[i])
		updated++
	}

	if updated > 0 {
		s.recomputeFeatured()
	}
	return updated
}

// recomputeFeatured rebuilds the derived subset. Callers hold the lock.
func (s *Store) recomputeFeatured() {
	featured := make([]Product, 0)
	for _, p := range s.products {
		if p.Featured {
			featured = append(featured, p)
		}
	}
	s.featured = featured
}
