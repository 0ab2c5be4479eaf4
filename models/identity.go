package models

// Identity is the authenticated caller for one request. It is resolved
// once by the auth middleware and passed explicitly into every service
// call; services never look up "the current user" themselves.
type Identity struct {
	UserID string `json:"userId"`
	Role   string `json:"role"` // "student", "mentor", or "parent"
	Email  string `json:"email"`
}
