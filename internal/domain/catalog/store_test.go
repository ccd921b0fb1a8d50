package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleProducts() []Product {
	return []Product{
		{ID: "product-1", Name: "전통 정자", Category: CategoryOutdoor, Price: 8500000, Stock: 5, Status: StatusActive, Featured: true, Popularity: 98},
		{ID: "product-2", Name: "모던 파고라", Category: CategoryOutdoor, Price: 6200000, Stock: 8, Status: StatusActive, Popularity: 87},
		{ID: "product-3", Name: "경관 조명 패키지", Category: CategoryLighting, Price: 2400000, Stock: 10, Status: StatusActive, Featured: true, Popularity: 90},
		{ID: "product-4", Name: "원목 야외 테이블", Category: CategoryFurniture, Price: 980000, Stock: 20, Status: StatusActive, Popularity: 82},
	}
}

func TestFeaturedIsDerivedFromFullList(t *testing.T) {
	store := NewStore()
	store.ReplaceAll(sampleProducts())

	featured := store.Featured()
	assert.Len(t, featured, 2)
	assert.Equal(t, "product-1", featured[0].ID)
	assert.Equal(t, "product-3", featured[1].ID)
}

func TestToggleFeaturedRebuildsSubset(t *testing.T) {
	store := NewStore()
	store.ReplaceAll(sampleProducts())

	p, ok := store.ToggleFeatured("product-2")
	assert.True(t, ok)
	assert.True(t, p.Featured)
	assert.Len(t, store.Featured(), 3)

	// Toggling twice restores the original subset.
	p, ok = store.ToggleFeatured("product-2")
	assert.True(t, ok)
	assert.False(t, p.Featured)
	assert.Len(t, store.Featured(), 2)
}

func TestSaveKeepsListPosition(t *testing.T) {
	store := NewStore()
	store.ReplaceAll(sampleProducts())

	p, _ := store.Get("product-2")
	p.Name = "모던 파고라 v2"
	assert.True(t, store.Save(p))

	list := store.List()
	assert.Equal(t, "product-2", list[1].ID)
	assert.Equal(t, "모던 파고라 v2", list[1].Name)
}

func TestDeleteUnknownID(t *testing.T) {
	store := NewStore()
	store.ReplaceAll(sampleProducts())

	assert.False(t, store.Delete("product-999"))
	assert.Len(t, store.List(), 4)
	assert.True(t, store.Delete("product-1"))
	assert.Len(t, store.List(), 3)
	assert.Len(t, store.Featured(), 1)
}

func TestBulkEditSkipsUnknownIDs(t *testing.T) {
	store := NewStore()
	store.ReplaceAll(sampleProducts())

	updated := store.BulkEdit([]string{"product-1", "product-999"}, func(p *Product) {
		p.Status = StatusInactive
	})

	assert.Equal(t, 1, updated)
	p, _ := store.Get("product-1")
	assert.Equal(t, StatusInactive, p.Status)
}

func TestByCategoryPreservesRelativeOrder(t *testing.T) {
	store := NewStore()
	store.ReplaceAll(sampleProducts())

	byCategory := store.ByCategory()
	assert.Len(t, byCategory[CategoryOutdoor], 2)
	assert.Equal(t, "product-1", byCategory[CategoryOutdoor][0].ID)
	assert.Equal(t, "product-2", byCategory[CategoryOutdoor][1].ID)
}
