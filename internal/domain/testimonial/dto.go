package testimonial

type CreateTestimonialRequest struct {
	AuthorName  string `json:"authorName" validate:"required"`
	AuthorTitle string `json:"authorTitle"`
	Content     string `json:"content" validate:"required"`
	Rating      int    `json:"rating" validate:"required"`
	ProjectID   string `json:"projectId"`
	Status      string `json:"status"`
	Order       int    `json:"order"`
}

type UpdateTestimonialRequest struct {
	AuthorName  *string `json:"authorName"`
	AuthorTitle *string `json:"authorTitle"`
	Content     *string `json:"content"`
	Rating      *int    `json:"rating"`
	ProjectID   *string `json:"projectId"`
	Status      *string `json:"status"`
	Order       *int    `json:"order"`
}

type ListResponse struct {
	Testimonials []Testimonial `json:"testimonials"`
	Total        int           `json:"total"`
}
