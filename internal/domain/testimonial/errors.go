package testimonial

import "errors"

var (
	ErrTestimonialNotFound = errors.New("testimonial not found")
	ErrInvalidStatus       = errors.New("invalid testimonial status")
	ErrInvalidRating       = errors.New("rating must be between 1 and 5")
)
