package application

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"warden/contexts/identity-access/user-service/domain/entities"
	domainerrors "warden/contexts/identity-access/user-service/domain/errors"
	"warden/contexts/identity-access/user-service/domain/services"
	"warden/contexts/identity-access/user-service/ports"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

type Service struct {
	Directory ports.Directory
	Tokens    TokenIssuer
	Clock     ports.Clock
	Logger    *slog.Logger
}

type CreateUserInput struct {
	Username string
	Password string
	Role     entities.Role
}

// VerifyUser is the credential verifier: it looks the user up by username and
// compares the candidate password against the stored hash. Unknown username
// and wrong password both yield (zero, false, nil) so callers cannot tell the
// two apart. On a match the returned record has its hash stripped.
func (s Service) VerifyUser(ctx context.Context, username, password string) (entities.User, bool, error) {
	user, err := s.Directory.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			return entities.User{}, false, nil
		}
		return entities.User{}, false, err
	}
	if !services.VerifyPassword(password, user.PasswordHash) {
		return entities.User{}, false, nil
	}
	return user.Sanitized(), true, nil
}

// Login verifies credentials and issues a signed identity token.
func (s Service) Login(ctx context.Context, username, password string) (string, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return "", domainerrors.ErrInvalidCredentials
	}
	user, ok, err := s.VerifyUser(ctx, username, password)
	if err != nil {
		return "", err
	}
	if !ok {
		ResolveLogger(s.Logger).Info("login rejected",
			"event", "login_rejected",
			"module", "identity-access/user-service",
			"layer", "application",
		)
		return "", domainerrors.ErrInvalidCredentials
	}
	return s.Tokens.Issue(user)
}

// GetUser serves both the current-identity profile and the admin fetch-by-id
// endpoint; only the id source differs.
func (s Service) GetUser(ctx context.Context, id int64) (entities.User, error) {
	user, err := s.Directory.FindByID(ctx, id)
	if err != nil {
		return entities.User{}, err
	}
	return user.Sanitized(), nil
}

func (s Service) CreateUser(ctx context.Context, input CreateUserInput) (entities.User, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" || input.Password == "" {
		return entities.User{}, domainerrors.ErrInvalidRequest
	}
	role := input.Role
	if role == "" {
		role = entities.RoleUser
	}
	if !role.IsValid() {
		return entities.User{}, domainerrors.ErrUnknownRole
	}

	created, err := s.Directory.Create(ctx, entities.User{
		Username:     username,
		PasswordHash: services.HashPassword(input.Password),
		Role:         role,
		Enabled:      true,
	})
	if err != nil {
		return entities.User{}, err
	}
	ResolveLogger(s.Logger).Info("user created",
		"event", "user_created",
		"module", "identity-access/user-service",
		"layer", "application",
		"user_id", created.ID,
	)
	return created.Sanitized(), nil
}

func (s Service) ListUsers(ctx context.Context, filter ports.ListFilter, page ports.Page) ([]entities.User, int64, error) {
	if page.Number <= 0 {
		page.Number = 1
	}
	if page.Size <= 0 {
		page.Size = defaultPageSize
	}
	if page.Size > maxPageSize {
		page.Size = maxPageSize
	}
	filter.Search = strings.TrimSpace(filter.Search)

	items, total, err := s.Directory.List(ctx, filter, page)
	if err != nil {
		return nil, 0, err
	}
	sanitized := make([]entities.User, 0, len(items))
	for _, item := range items {
		sanitized = append(sanitized, item.Sanitized())
	}
	return sanitized, total, nil
}

// ToggleUserRole flips the target between ADMIN and USER. The super admin
// record is immutable regardless of caller role.
func (s Service) ToggleUserRole(ctx context.Context, id int64) (entities.User, error) {
	if id == entities.SuperAdminID {
		return entities.User{}, domainerrors.ErrSuperAdminImmutable
	}
	user, err := s.Directory.FindByID(ctx, id)
	if err != nil {
		return entities.User{}, err
	}
	updated, err := s.Directory.UpdateRole(ctx, id, user.Role.Toggle())
	if err != nil {
		return entities.User{}, err
	}
	return updated.Sanitized(), nil
}

// ToggleUserEnabled flips the enabled flag. Applying it twice restores the
// original state.
func (s Service) ToggleUserEnabled(ctx context.Context, id int64) (entities.User, error) {
	if id == entities.SuperAdminID {
		return entities.User{}, domainerrors.ErrSuperAdminImmutable
	}
	user, err := s.Directory.FindByID(ctx, id)
	if err != nil {
		return entities.User{}, err
	}
	updated, err := s.Directory.UpdateEnabled(ctx, id, !user.Enabled)
	if err != nil {
		return entities.User{}, err
	}
	return updated.Sanitized(), nil
}

// DeleteUser soft-deletes the target record. The super admin cannot be
// deleted, and callers cannot delete themselves.
func (s Service) DeleteUser(ctx context.Context, callerID, id int64) error {
	if id == entities.SuperAdminID {
		return domainerrors.ErrSuperAdminImmutable
	}
	if id == callerID {
		return domainerrors.ErrSelfDeleteForbidden
	}
	if _, err := s.Directory.FindByID(ctx, id); err != nil {
		return err
	}
	return s.Directory.SoftDelete(ctx, id)
}

// UpdatePassword is the self-service password change for the authenticated
// caller.
func (s Service) UpdatePassword(ctx context.Context, callerID int64, password string) error {
	if password == "" {
		return domainerrors.ErrInvalidRequest
	}
	if _, err := s.Directory.FindByID(ctx, callerID); err != nil {
		return err
	}
	return s.Directory.UpdatePassword(ctx, callerID, services.HashPassword(password))
}
