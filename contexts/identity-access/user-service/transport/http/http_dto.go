package http

import "time"

// Application error codes carried in response envelopes. Success is always 0.
const (
	CodeOK              = 0
	CodeInvalidRequest  = 10001
	CodeUnauthorized    = 10101
	CodeForbidden       = 10102
	CodeUserNotFound    = 10201
	CodeUsernameTaken   = 10202
	CodeUnknownRole     = 10203
	CodeSuperAdminLock  = 10204
	CodeSelfDelete      = 10205
	CodeBadCredentials  = 10301
	CodeInternal        = 10500
)

// Envelope is the uniform success wrapper: {data, code: 0, message}.
type Envelope struct {
	Data    any    `json:"data"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

type UserDTO struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	Enabled   bool      `json:"enabled"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ListUsersRequest struct {
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
	Search   string `json:"search,omitempty"`
}

type ListUsersResponse struct {
	Items    []UserDTO `json:"items"`
	Total    int64     `json:"total"`
	Page     int       `json:"page"`
	PageSize int       `json:"page_size"`
}

type UpdatePasswordRequest struct {
	Password string `json:"password"`
}
