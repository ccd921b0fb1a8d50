package testimonial

// Status of a submitted testimonial.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusApproved, StatusRejected:
		return Status(s), nil
	}
	return "", ErrInvalidStatus
}

// Testimonial is one customer quote. ProjectID optionally links it to a
// portfolio project; Order drives the public display sequence.
type Testimonial struct {
	ID          string `json:"id"`
	AuthorName  string `json:"authorName"`
	AuthorTitle string `json:"authorTitle,omitempty"`
	Content     string `json:"content"`
	Rating      int    `json:"rating"`
	ProjectID   string `json:"projectId,omitempty"`
	Status      Status `json:"status"`
	Order       int    `json:"order"`
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}
