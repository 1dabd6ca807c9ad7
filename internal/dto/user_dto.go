package dto

import "github.com/zineb-24/ReportingBackend/internal/models"

type CreateUserRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"is_admin"`
}

// UpdateUserRequest supports partial updates; nil fields are left untouched.
// A non-nil Password is re-hashed, never stored as sent.
type UpdateUserRequest struct {
	Email    *string `json:"email"`
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	Password *string `json:"password"`
	IsAdmin  *bool   `json:"is_admin"`
	IsActive *bool   `json:"is_active"`
}

type DashboardStats struct {
	TotalUsers   int64 `json:"total_users"`
	AdminUsers   int64 `json:"admin_users"`
	RegularUsers int64 `json:"regular_users"`
}

type UserDashboardResponse struct {
	Message string      `json:"message"`
	User    models.User `json:"user"`
}

type AdminDashboardResponse struct {
	Message string         `json:"message"`
	User    models.User    `json:"user"`
	Stats   DashboardStats `json:"stats"`
}
