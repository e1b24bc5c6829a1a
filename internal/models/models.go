package models

// User is a storefront account. Role is either "ADMIN" or "CUSTOMER".
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"` // Store hashed password
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}
