package errors

import "errors"

var (
	ErrInvalidRequest      = errors.New("invalid request")
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrTokenInvalid        = errors.New("token invalid")
	ErrTokenExpired        = errors.New("token expired")
	ErrForbidden           = errors.New("insufficient role")
	ErrUserNotFound        = errors.New("user not found")
	ErrUsernameTaken       = errors.New("username already taken")
	ErrUnknownRole         = errors.New("unknown role")
	ErrSuperAdminImmutable = errors.New("super admin account cannot be modified")
	ErrSelfDeleteForbidden = errors.New("cannot delete own account")
)
