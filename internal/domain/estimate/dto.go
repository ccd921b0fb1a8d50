package estimate

// QuoteRequest is the POST /estimate body.
type QuoteRequest struct {
	ProjectType string   `json:"projectType" validate:"required"`
	Grade       string   `json:"grade" validate:"required"`
	Area        int      `json:"area" validate:"required,min=1"`
	Extras      []string `json:"extras"`
}

// QuoteResponse bundles the quote with catalog recommendations.
type QuoteResponse struct {
	Quote           *Quote               `json:"quote"`
	Recommendations []RecommendedProduct `json:"recommendations,omitempty"`
}
