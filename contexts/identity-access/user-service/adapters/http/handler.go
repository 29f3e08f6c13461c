package httpadapter

import (
	"context"
	"log/slog"

	"warden/contexts/identity-access/user-service/application"
	"warden/contexts/identity-access/user-service/domain/entities"
	"warden/contexts/identity-access/user-service/ports"
	httptransport "warden/contexts/identity-access/user-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

// LoginHandler godoc
// @Summary Log in
// @Description Verifies username/password and returns a signed access token.
// @Tags users
// @Accept json
// @Produce json
// @Param request body httptransport.LoginRequest true "Credentials"
// @Success 200 {object} httptransport.Envelope{data=httptransport.LoginResponse}
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /login [post]
func (h Handler) LoginHandler(ctx context.Context, req httptransport.LoginRequest) (httptransport.LoginResponse, error) {
	token, err := h.Service.Login(ctx, req.Username, req.Password)
	if err != nil {
		return httptransport.LoginResponse{}, err
	}
	return httptransport.LoginResponse{AccessToken: token}, nil
}

// CurrentUserHandler godoc
// @Summary Get current user profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} httptransport.Envelope{data=httptransport.UserDTO}
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /api/users/current [get]
func (h Handler) CurrentUserHandler(ctx context.Context, userID int64) (httptransport.UserDTO, error) {
	user, err := h.Service.GetUser(ctx, userID)
	if err != nil {
		return httptransport.UserDTO{}, err
	}
	return mapUser(user), nil
}

// CreateUserHandler godoc
// @Summary Create a user
// @Description Admin only. Role defaults to USER when omitted.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body httptransport.CreateUserRequest true "New user"
// @Success 200 {object} httptransport.Envelope{data=httptransport.UserDTO}
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Router /api/users [post]
func (h Handler) CreateUserHandler(ctx context.Context, req httptransport.CreateUserRequest) (httptransport.UserDTO, error) {
	user, err := h.Service.CreateUser(ctx, application.CreateUserInput{
		Username: req.Username,
		Password: req.Password,
		Role:     entities.Role(req.Role),
	})
	if err != nil {
		return httptransport.UserDTO{}, err
	}
	return mapUser(user), nil
}

// ListUsersHandler godoc
// @Summary List users
// @Description Admin only. Paginated; search fuzzy-matches username or id.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-based)"
// @Param page_size query int false "Page size (max 100)"
// @Param search query string false "Fuzzy search on username or id"
// @Success 200 {object} httptransport.Envelope{data=httptransport.ListUsersResponse}
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Router /api/users [get]
func (h Handler) ListUsersHandler(ctx context.Context, req httptransport.ListUsersRequest) (httptransport.ListUsersResponse, error) {
	items, total, err := h.Service.ListUsers(ctx,
		ports.ListFilter{Search: req.Search},
		ports.Page{Number: req.Page, Size: req.PageSize},
	)
	if err != nil {
		return httptransport.ListUsersResponse{}, err
	}

	page := req.Page
	if page <= 0 {
		page = 1
	}
	size := req.PageSize
	if size <= 0 {
		size = 10
	}

	resp := httptransport.ListUsersResponse{
		Items:    make([]httptransport.UserDTO, 0, len(items)),
		Total:    total,
		Page:     page,
		PageSize: size,
	}
	for _, item := range items {
		resp.Items = append(resp.Items, mapUser(item))
	}
	return resp, nil
}

// GetUserHandler godoc
// @Summary Get a user by id
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User id"
// @Success 200 {object} httptransport.Envelope{data=httptransport.UserDTO}
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /api/users/{id} [get]
func (h Handler) GetUserHandler(ctx context.Context, id int64) (httptransport.UserDTO, error) {
	user, err := h.Service.GetUser(ctx, id)
	if err != nil {
		return httptransport.UserDTO{}, err
	}
	return mapUser(user), nil
}

// ToggleRoleHandler godoc
// @Summary Toggle a user's role
// @Description Admin only. Flips ADMIN/USER. The id-1 super admin is immutable.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User id"
// @Success 200 {object} httptransport.Envelope{data=httptransport.UserDTO}
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 422 {object} httptransport.ErrorResponse
// @Router /api/users/role/{id} [patch]
func (h Handler) ToggleRoleHandler(ctx context.Context, id int64) (httptransport.UserDTO, error) {
	user, err := h.Service.ToggleUserRole(ctx, id)
	if err != nil {
		return httptransport.UserDTO{}, err
	}
	return mapUser(user), nil
}

// ToggleEnabledHandler godoc
// @Summary Enable or disable a user
// @Description Admin only. Flips the enabled flag. The id-1 super admin is immutable.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User id"
// @Success 200 {object} httptransport.Envelope{data=httptransport.UserDTO}
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 422 {object} httptransport.ErrorResponse
// @Router /api/users/enable/{id} [patch]
func (h Handler) ToggleEnabledHandler(ctx context.Context, id int64) (httptransport.UserDTO, error) {
	user, err := h.Service.ToggleUserEnabled(ctx, id)
	if err != nil {
		return httptransport.UserDTO{}, err
	}
	return mapUser(user), nil
}

// DeleteUserHandler godoc
// @Summary Soft-delete a user
// @Description Admin only. Super admin and the caller's own account are protected.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User id"
// @Success 200 {object} httptransport.Envelope
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 422 {object} httptransport.ErrorResponse
// @Router /api/users/{id} [delete]
func (h Handler) DeleteUserHandler(ctx context.Context, callerID, id int64) error {
	return h.Service.DeleteUser(ctx, callerID, id)
}

// UpdatePasswordHandler godoc
// @Summary Update own password
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body httptransport.UpdatePasswordRequest true "New password"
// @Success 200 {object} httptransport.Envelope
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Router /api/users/update_password [patch]
func (h Handler) UpdatePasswordHandler(ctx context.Context, callerID int64, req httptransport.UpdatePasswordRequest) error {
	return h.Service.UpdatePassword(ctx, callerID, req.Password)
}

func mapUser(user entities.User) httptransport.UserDTO {
	return httptransport.UserDTO{
		ID:        user.ID,
		Username:  user.Username,
		Role:      string(user.Role),
		Enabled:   user.Enabled,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
