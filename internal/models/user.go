package models

// User represents a user account
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // Never serialize password hash
	IsAdmin      bool   `json:"is_admin"`    // default=false
	IsApproved   bool   `json:"is_approved"` // users cannot log in until an admin approves them
}

// PendingUser is the approval-queue view of an unapproved user
type PendingUser struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse represents the token issued on a successful login
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"` // always "bearer"
	IsAdmin     bool   `json:"is_admin"`
}
