package estimate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculatePensionStandard(t *testing.T) {
	quote, err := Calculate(Input{ProjectType: "pension", Grade: "standard", Area: 50})

	assert.NoError(t, err)
	assert.Equal(t, int64(18500000), quote.Total)
	assert.Equal(t, int64(16650000), quote.Low)
	assert.Equal(t, int64(20350000), quote.High)
	assert.Equal(t, int64(12000000), quote.Breakdown.Setup)
	assert.Equal(t, int64(6500000), quote.Breakdown.AreaCost)
	assert.Equal(t, "스탠다드", quote.Breakdown.GradeLabel)
	assert.Equal(t, int64(0), quote.Breakdown.ExtrasTotal)
}

func TestCalculateWithLightingExtra(t *testing.T) {
	quote, err := Calculate(Input{ProjectType: "pension", Grade: "standard", Area: 50, Extras: []string{"lighting"}})

	assert.NoError(t, err)
	assert.Equal(t, int64(23000000), quote.Total)
	assert.Equal(t, int64(20700000), quote.Low)
	assert.Equal(t, int64(25300000), quote.High)
	assert.Len(t, quote.Extras, 1)
	assert.Equal(t, "조명 시공", quote.Extras[0].Label)
}

func TestCalculateGradeMultiplier(t *testing.T) {
	standard, err := Calculate(Input{ProjectType: "cafe", Grade: "standard", Area: 40})
	assert.NoError(t, err)

	premium, err := Calculate(Input{ProjectType: "cafe", Grade: "premium", Area: 40})
	assert.NoError(t, err)

	// cafe 40㎡: 18,000,000 + 150,000*40 = 24,000,000
	assert.Equal(t, int64(24000000), standard.Base)
	assert.Equal(t, int64(28800000), premium.Base)
}

func TestCalculateDeduplicatesExtras(t *testing.T) {
	quote, err := Calculate(Input{ProjectType: "caravan", Grade: "standard", Area: 30, Extras: []string{"furniture", "furniture"}})

	assert.NoError(t, err)
	assert.Len(t, quote.Extras, 1)
}

func TestCalculateRejectsBadInput(t *testing.T) {
	_, err := Calculate(Input{ProjectType: "villa", Grade: "standard", Area: 50})
	assert.ErrorIs(t, err, ErrUnknownProjectType)

	_, err = Calculate(Input{ProjectType: "pension", Grade: "deluxe", Area: 50})
	assert.ErrorIs(t, err, ErrUnknownGrade)

	_, err = Calculate(Input{ProjectType: "pension", Grade: "standard", Area: 29})
	assert.ErrorIs(t, err, ErrAreaTooSmall)

	_, err = Calculate(Input{ProjectType: "pension", Grade: "standard", Area: 50, Extras: []string{"sauna"}})
	assert.ErrorIs(t, err, ErrUnknownExtra)
}

type fakeSource struct {
	byCategory map[string][]RecommendedProduct
}

func (f *fakeSource) TopProducts(category string, limit int) []RecommendedProduct {
	picks := f.byCategory[category]
	if len(picks) > limit {
		picks = picks[:limit]
	}
	return picks
}

func TestRecommendWalksMappedCategoriesInOrder(t *testing.T) {
	source := &fakeSource{byCategory: map[string][]RecommendedProduct{
		"outdoor":  {{ID: "product-1", Name: "전통 정자", Category: "outdoor"}},
		"lighting": {{ID: "product-2", Name: "경관 조명", Category: "lighting"}},
	}}

	picks := Recommend(source, "pension")

	assert.Len(t, picks, 2)
	assert.Equal(t, "product-1", picks[0].ID)
	assert.Equal(t, "product-2", picks[1].ID)
}

func TestRecommendUnknownProjectType(t *testing.T) {
	assert.Nil(t, Recommend(&fakeSource{}, "villa"))
}
