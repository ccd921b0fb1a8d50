package estimate

import (
	"fmt"
	"math"
)

// Input is a validated estimate request.
type Input struct {
	ProjectType string
	Grade       string
	Area        int
	Extras      []string
}

// LineItem is one row of the estimate breakdown.
type LineItem struct {
	Key    string `json:"key"`
	Label  string `json:"label"`
	Amount int64  `json:"amount"`
}

// Breakdown itemizes how the base was priced.
type Breakdown struct {
	Setup       int64   `json:"setup"`
	AreaCost    int64   `json:"areaCost"`
	GradeLabel  string  `json:"gradeLabel"`
	Multiplier  float64 `json:"multiplier"`
	ExtrasTotal int64   `json:"extrasTotal"`
}

// Quote is the estimate result. Low and High bracket the total at
// minus and plus ten percent.
type Quote struct {
	ProjectType string     `json:"projectType"`
	Grade       string     `json:"grade"`
	Area        int        `json:"area"`
	Base        int64      `json:"base"`
	Breakdown   Breakdown  `json:"breakdown"`
	Extras      []LineItem `json:"extras"`
	Total       int64      `json:"total"`
	Low         int64      `json:"low"`
	High        int64      `json:"high"`
}

// Calculate produces a quote from the fixed pricing tables. The base
// is setup plus the per-square-meter rate times area, scaled by the
// grade multiplier; extras are flat amounts on top.
func Calculate(in Input) (*Quote, error) {
	rate, ok := projectRates[in.ProjectType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProjectType, in.ProjectType)
	}
	grade, ok := grades[in.Grade]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGrade, in.Grade)
	}
	if in.Area < MinArea {
		return nil, fmt.Errorf("%w: minimum %d㎡", ErrAreaTooSmall, MinArea)
	}

	areaCost := rate.PerSqm * int64(in.Area)
	base := int64(math.Round(float64(rate.Setup+areaCost) * grade.Multiplier))

	items := make([]LineItem, 0, len(in.Extras))
	total := base
	extrasTotal := int64(0)
	seen := make(map[string]bool)
	for _, key := range in.Extras {
		if seen[key] {
			continue
		}
		seen[key] = true
		extra, ok := extras[key]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownExtra, key)
		}
		items = append(items, LineItem{Key: key, Label: extra.Label, Amount: extra.Price})
		total += extra.Price
		extrasTotal += extra.Price
	}

	return &Quote{
		ProjectType: in.ProjectType,
		Grade:       in.Grade,
		Area:        in.Area,
		Base:        base,
		Breakdown: Breakdown{
			Setup:       rate.Setup,
			AreaCost:    areaCost,
			GradeLabel:  grade.Label,
			Multiplier:  grade.Multiplier,
			ExtrasTotal: extrasTotal,
		},
		Extras: items,
		Total:       total,
		Low:         int64(math.Round(float64(total) * 0.9)),
		High:        int64(math.Round(float64(total) * 1.1)),
	}, nil
}

// RecommendedProduct is a catalog product suggested with a quote.
type RecommendedProduct struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Category string `json:"category"`
}

// ProductSource supplies catalog picks for recommendations. Each call
// returns the most popular products of one category.
type ProductSource interface {
	TopProducts(category string, limit int) []RecommendedProduct
}

// Recommend returns catalog suggestions for a project type, walking
// the mapped categories in order and taking the top pick of each.
func Recommend(source ProductSource, projectType string) []RecommendedProduct {
	categories, ok := recommendationMap[projectType]
	if !ok || source == nil {
		return nil
	}
	picks := make([]RecommendedProduct, 0, len(categories))
	for _, category := range categories {
		picks = append(picks, source.TopProducts(category, 1)...)
	}
	return picks
}
