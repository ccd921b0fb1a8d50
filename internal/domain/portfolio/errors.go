package portfolio

import "errors"

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrInvalidCategory = errors.New("invalid project category")
)
