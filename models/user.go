package models

import "time"

// Roles a user account can hold.
const (
	RoleStudent = "student"
	RoleMentor  = "mentor"
	RoleParent  = "parent"
)

// User is a marketplace account (student, mentor or parent).
type User struct {
	ID           string    `bson:"id" json:"id"`
	Role         string    `bson:"role" json:"role"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	TimeZone     string    `bson:"time_zone,omitempty" json:"timeZone,omitempty"`
	// ParentID links a student account to its parent account, when one exists.
	ParentID  string    `bson:"parent_id,omitempty" json:"parentId,omitempty"`
	Grade     string    `bson:"grade,omitempty" json:"grade,omitempty"`
	Interests []string  `bson:"interests,omitempty" json:"interests,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// UserRegistration is the signup payload.
type UserRegistration struct {
	Role     string `json:"role" binding:"required,oneof=student mentor parent"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	ParentID string `json:"parentId,omitempty"`
}

// AuthResponse is returned from signup and signin.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
