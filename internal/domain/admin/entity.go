package admin

// Admin is a back-office account. Passwords are stored as bcrypt
// hashes only.
type Admin struct {
	ID           string `json:"id" bson:"_id,omitempty"`
	Username     string `json:"username" bson:"username"`
	PasswordHash string `json:"-" bson:"passwordHash"`
	Role         string `json:"role" bson:"role"`
	CreatedAt    string `json:"createdAt" bson:"createdAt"`
}

const RoleAdmin = "admin"

// AuditEntry records one admin action in the audit log.
type AuditEntry struct {
	ID       string `json:"id" bson:"_id,omitempty"`
	Username string `json:"username" bson:"username"`
	Action   string `json:"action" bson:"action"`
	Detail   string `json:"detail,omitempty" bson:"detail,omitempty"`
	At       string `json:"at" bson:"at"`
}
