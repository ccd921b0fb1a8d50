package catalog

import (
	"sort"
	"strings"
)

// Filters narrows a loaded list. Zero values match everything.
type Filters struct {
	Category Category
	Status   Status
	Search   string
}

// Filter returns the matching subsequence in original relative order.
// The search term matches name or description, case-insensitively.
func Filter(products []Product, f Filters) []Product {
	term := strings.ToLower(strings.TrimSpace(f.Search))

	out := make([]Product, 0, len(products))
	for _, p := range products {
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.Status != "" && p.Status != f.Status {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Description), term) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Sort keys for catalog browsing.
const (
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortPopular   = "popular"
	SortNewest    = "newest"
	SortName      = "name"
)

// Sort returns a sorted copy. Every ordering is stable; an unknown or
// empty key keeps the original load order.
func Sort(products []Product, key string) []Product {
	out := append([]Product(nil), products...)

	switch key {
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortPopular:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Popularity > out[j].Popularity })
	case SortNewest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Updated > out[j].Updated })
	case SortName:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	}

	return out
}
