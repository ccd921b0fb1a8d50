package catalog

import "strconv"

// Bulk edit actions.
const (
	BulkSetStatus   = "status"
	BulkSetCategory = "category"
	BulkSetPrice    = "price"
	BulkSetStock    = "stock"
	BulkSetFeatured = "featured"
)

// applyPriceChange reproduces the admin dashboard's historical pricing
// overload: a value strictly between 0 and 100 is a percentage increase,
// anything else replaces the price outright.
func applyPriceChange(current int64, value int64) int64 {
	if value > 0 && value < 100 {
		return int64(float64(current)*(1+float64(value)/100) + 0.5)
	}
	return value
}

// applyStockChange: a non-zero value strictly between -100 and 100 is a
// delta, anything else is an absolute count. Stock never goes below 0.
func applyStockChange(current int, value int) int {
	next := value
	if value > -100 && value < 100 && value != 0 {
		next = current + value
	}
	if next < 0 {
		return 0
	}
	return next
}

// buildBulkApply validates an action/value pair and returns the mutation
// applied to each selected product.
func buildBulkApply(action, value string) (func(*Product), error) {
	switch action {
	case BulkSetStatus:
		status, err := ParseStatus(value)
		if err != nil {
			return nil, ErrInvalidBulkEdit
		}
		return func(p *Product) { p.Status = status }, nil

	case BulkSetCategory:
		category, err := ParseCategory(value)
		if err != nil {
			return nil, ErrInvalidBulkEdit
		}
		return func(p *Product) { p.Category = category }, nil

	case BulkSetPrice:
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, ErrInvalidBulkEdit
		}
		return func(p *Product) { p.Price = applyPriceChange(p.Price, n) }, nil

	case BulkSetStock:
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, ErrInvalidBulkEdit
		}
		return func(p *Product) { p.Stock = applyStockChange(p.Stock, n) }, nil

	case BulkSetFeatured:
		if value != "true" && value != "false" {
			return nil, ErrInvalidBulkEdit
		}
		featured := value == "true"
		return func(p *Product) { p.Featured = featured }, nil
	}

	return nil, ErrInvalidBulkEdit
}
