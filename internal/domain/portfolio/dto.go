package portfolio

// CreateProjectRequest carries the admin portfolio form.
type CreateProjectRequest struct {
	Title       string            `json:"title" validate:"required"`
	Category    string            `json:"category" validate:"required"`
	Location    string            `json:"location"`
	Area        string            `json:"area"`
	Duration    string            `json:"duration"`
	Description string            `json:"description"`
	Tags        []string          `json:"tags"`
	CoverImage  string            `json:"coverImage"`
	Images      []string          `json:"images"`
	Products    []string          `json:"products"`
	Metrics     map[string]string `json:"metrics"`
	Highlighted bool              `json:"highlighted"`
}

// UpdateProjectRequest is a shallow patch, present fields win.
type UpdateProjectRequest struct {
	Title       *string            `json:"title"`
	Category    *string            `json:"category"`
	Location    *string            `json:"location"`
	Area        *string            `json:"area"`
	Duration    *string            `json:"duration"`
	Description *string            `json:"description"`
	Tags        *[]string          `json:"tags"`
	CoverImage  *string            `json:"coverImage"`
	Images      *[]string          `json:"images"`
	Products    *[]string          `json:"products"`
	Metrics     *map[string]string `json:"metrics"`
	Highlighted *bool              `json:"highlighted"`
}

// ListResponse wraps a project list with its count.
type ListResponse struct {
	Projects []Project `json:"projects"`
	Total    int       `json:"total"`
}
