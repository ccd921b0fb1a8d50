package admin

// LoginRequest carries admin credentials.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse returns the bearer token for the admin API.
type LoginResponse struct {
	Token string `json:"token"`
}

// AuditResponse wraps an audit log listing.
type AuditResponse struct {
	Entries []AuditEntry `json:"entries"`
	Total   int          `json:"total"`
}
