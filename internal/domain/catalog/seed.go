package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// SeedGuidance is surfaced when neither the remote copy, the mirror nor
// the seed file can provide a catalog. The remediation text matters:
// an empty store with no hint is the failure mode this replaces.
const SeedGuidance = "catalog data unavailable: place data/products.json under DATA_DIR " +
	"and run `go run ./cmd/seed`, or point MONGO_URI at a database that was seeded before"

// seedFile mirrors the products.json layout: a categories map plus an
// optional pre-picked featured list (ignored here, featured is derived).
type seedFile struct {
	Categories map[string][]Product `json:"categories"`
	Featured   []Product            `json:"featured"`
}

// LoadSeed reads a products.json document. Products come back in display
// order: known categories first in their fixed order, preserving the
// in-category order of the file.
func LoadSeed(path string) ([]Product, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", SeedGuidance, err)
		}
		return nil, fmt.Errorf("read seed %s: %w", path, err)
	}

	var seed seedFile
	if err := json.Unmarshal(raw, &seed); err != nil {
		return nil, fmt.Errorf("parse seed %s: %w", path, err)
	}

	var products []Product
	seen := make(map[string]bool, len(seed.Categories))

	for _, category := range CategoryOrder {
		key := string(category)
		for _, p := range seed.Categories[key] {
			if p.Category == "" {
				p.Category = category
			}
			products = append(products, p)
		}
		seen[key] = true
	}

	// Unknown category keys still load, after the known ones, in a
	// deterministic order.
	var extra []string
	for key := range seed.Categories {
		if !seen[key] {
			extra = append(extra, key)
		}
	}
	sort.Strings(extra)
	for _, key := range extra {
		products = append(products, seed.Categories[key]...)
	}

	return products, nil
}
