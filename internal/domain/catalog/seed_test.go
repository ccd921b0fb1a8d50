package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadSeedOrdersKnownCategoriesFirst(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.json")
	raw := `{
		"categories": {
			"lighting": [{"id": "product-3", "name": "경관 조명"}],
			"zelt": [{"id": "product-9", "name": "이벤트 텐트"}],
			"outdoor": [
				{"id": "product-1", "name": "전통 정자"},
				{"id": "product-2", "name": "모던 파고라"}
			]
		}
	}`
	assert.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	products, err := LoadSeed(path)

	assert.NoError(t, err)
	assert.Len(t, products, 4)
	assert.Equal(t, "product-1", products[0].ID)
	assert.Equal(t, "product-2", products[1].ID)
	assert.Equal(t, "product-3", products[2].ID)
	assert.Equal(t, "product-9", products[3].ID)
}

func TestLoadSeedFillsMissingCategory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.json")
	raw := `{"categories": {"outdoor": [{"id": "product-1", "name": "전통 정자"}]}}`
	assert.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	products, err := LoadSeed(path)

	assert.NoError(t, err)
	assert.Equal(t, CategoryOutdoor, products[0].Category)
}

func TestLoadSeedMissingFileCarriesGuidance(t *testing.T) {
	_, err := LoadSeed(filepath.Join(t.TempDir(), "products.json"))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "cmd/seed")
}
