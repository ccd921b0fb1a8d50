package lead

// CaptureRequest carries the raw contact form payload. Field names may
// arrive in English or Korean; Normalize resolves them.
type CaptureRequest struct {
	Fields map[string]string `json:"fields" binding:"required"`
	Page   string            `json:"page"`
}

// UpdateStatusRequest moves a lead through the follow-up flow.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes"`
}

// CaptureResponse acknowledges a stored inquiry.
type CaptureResponse struct {
	ID        string `json:"id"`
	Status    Status `json:"status"`
	CreatedAt string `json:"createdAt"`
}

// ListResponse wraps an admin lead listing.
type ListResponse struct {
	Leads []Lead `json:"leads"`
	Total int    `json:"total"`
}

// PrefillResponse suggests contact form contents for a product inquiry
// started from a catalog page.
type PrefillResponse struct {
	Product string `json:"product"`
	Message string `json:"message"`
}
