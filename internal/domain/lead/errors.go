package lead

import "errors"

var (
	ErrLeadNotFound       = errors.New("lead not found")
	ErrInvalidStatus      = errors.New("invalid lead status")
	ErrMissingName        = errors.New("name is required")
	ErrMissingContact     = errors.New("email or phone is required")
	ErrRelayNotConfigured = errors.New("inquiry relay is not configured")
	ErrRelayRejected      = errors.New("inquiry relay rejected the submission")
	ErrStoreUnavailable   = errors.New("inquiry store is unavailable")
)
