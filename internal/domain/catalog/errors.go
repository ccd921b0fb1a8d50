package catalog

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidStatus   = errors.New("invalid status")
	ErrInvalidPrice    = errors.New("price must be a non-negative integer")
	ErrInvalidStock    = errors.New("stock must be a non-negative integer")
	ErrTooManyImages   = errors.New("a product holds at most 10 images")
	ErrInvalidBulkEdit = errors.New("invalid bulk edit action or value")
	ErrNoSelection     = errors.New("no products selected")
)
