// Package models defines the data types exchanged with the Prism backend.
package models

// Role of an authenticated user.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Tier is the subscription level controlling per-feature usage limits.
type Tier string

const (
	TierFree     Tier = "free"
	TierPro      Tier = "pro"
	TierBusiness Tier = "business"
)

// User is the profile record returned by GET /auth/me.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
	Tier  Tier   `json:"tier"`
}

// Profile is the combined user + usage payload of GET /auth/me.
type Profile struct {
	User  User  `json:"user"`
	Usage Usage `json:"usage"`
}

// TokenPair is the grant returned by the authentication endpoints.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// AdminUser is the extended record returned by GET /admin/users.
type AdminUser struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	Name      string  `json:"name"`
	Role      Role    `json:"role"`
	Tier      Tier    `json:"tier"`
	IsActive  bool    `json:"is_active"`
	CreatedAt string  `json:"created_at"`
	LastLogin *string `json:"last_login"`
}

// AdminStats holds platform-wide generation counters (GET /admin/stats).
type AdminStats struct {
	TotalUsers  int `json:"total_users"`
	TotalBlogs  int `json:"total_blogs"`
	TotalVideos int `json:"total_videos"`
	TotalImages int `json:"total_images"`
}

// UserUpdate is the body of PUT /admin/users/{id}.
type UserUpdate struct {
	Tier     Tier `json:"tier"`
	Role     Role `json:"role"`
	IsActive bool `json:"is_active"`
}
