package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func browsingProducts() []Product {
	return []Product{
		{ID: "product-1", Name: "전통 정자", Category: CategoryOutdoor, Price: 8500000, Status: StatusActive, Popularity: 98, Updated: 3},
		{ID: "product-2", Name: "모던 파고라", Category: CategoryOutdoor, Price: 6200000, Status: StatusActive, Popularity: 87, Updated: 8},
		{ID: "product-3", Name: "야외 데크 세트", Category: CategoryOutdoor, Price: 3800000, Status: StatusActive, Popularity: 75, Updated: 5},
		{ID: "product-4", Name: "미니 정자", Category: CategoryOutdoor, Price: 3800000, Status: StatusInactive, Popularity: 60, Updated: 2},
		{ID: "product-5", Name: "경관 조명 패키지", Category: CategoryLighting, Price: 2400000, Status: StatusActive, Popularity: 90, Updated: 7},
		{ID: "product-6", Name: "스트링 라이트", Category: CategoryLighting, Price: 380000, Status: StatusOutOfStock, Popularity: 71, Updated: 6},
		{ID: "product-7", Name: "원목 야외 테이블", Category: CategoryFurniture, Price: 980000, Status: StatusActive, Popularity: 82, Updated: 4},
		{ID: "product-8", Name: "맞춤 벤치", Category: CategoryFurniture, Price: 450000, Status: StatusActive, Popularity: 64, Updated: 1},
	}
}

func TestFilterCombinesPredicates(t *testing.T) {
	out := Filter(browsingProducts(), Filters{Category: CategoryOutdoor, Search: "정자"})

	assert.Len(t, out, 2)
	assert.Equal(t, "product-1", out[0].ID)
	assert.Equal(t, "product-4", out[1].ID)
}

func TestFilterByStatus(t *testing.T) {
	out := Filter(browsingProducts(), Filters{Status: StatusOutOfStock})

	assert.Len(t, out, 1)
	assert.Equal(t, "product-6", out[0].ID)
}

func TestFilterSearchIsCaseInsensitive(t *testing.T) {
	products := []Product{
		{ID: "product-1", Name: "Wooden Pergola"},
		{ID: "product-2", Name: "Stone Tile", Description: "basalt pergola base"},
	}

	out := Filter(products, Filters{Search: "PERGOLA"})
	assert.Len(t, out, 2)
}

func TestSortPriceLowIsStableOnTies(t *testing.T) {
	out := Sort(browsingProducts(), SortPriceLow)

	// product-3 and product-4 share a price; load order decides.
	var ids []string
	for _, p := range out {
		if p.Price == 3800000 {
			ids = append(ids, p.ID)
		}
	}
	assert.Equal(t, []string{"product-3", "product-4"}, ids)
	assert.Equal(t, "product-6", out[0].ID)
}

func TestSortPopularDescending(t *testing.T) {
	out := Sort(browsingProducts(), SortPopular)

	assert.Equal(t, "product-1", out[0].ID)
	assert.Equal(t, "product-5", out[1].ID)
}

func TestSortNewestUsesUpdatedStamp(t *testing.T) {
	out := Sort(browsingProducts(), SortNewest)

	assert.Equal(t, "product-2", out[0].ID)
	assert.Equal(t, "product-5", out[1].ID)
}

func TestSortUnknownKeyKeepsLoadOrder(t *testing.T) {
	products := browsingProducts()
	out := Sort(products, "rating")

	for i := range products {
		assert.Equal(t, products[i].ID, out[i].ID)
	}
}

func TestSortDoesNotMutateInput(t *testing.T) {
	products := browsingProducts()
	Sort(products, SortPriceHigh)

	assert.Equal(t, "product-1", products[0].ID)
}
