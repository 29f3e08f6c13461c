package httpserver

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	userservice "warden/contexts/identity-access/user-service"
	"warden/contexts/identity-access/user-service/application"
	"warden/contexts/identity-access/user-service/domain/entities"
	domainerrors "warden/contexts/identity-access/user-service/domain/errors"
	"warden/contexts/identity-access/user-service/domain/services"
	usershttp "warden/contexts/identity-access/user-service/transport/http"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "warden/internal/platform/httpserver/docs"
)

type Server struct {
	mux    *http.ServeMux
	logger *slog.Logger
	addr   string
	users  userservice.Module
}

func New(users userservice.Module, logger *slog.Logger, addr string) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:    http.NewServeMux(),
		logger: logger,
		addr:   addr,
		users:  users,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

// registerRoutes is the static route table. The role passed to protected is
// the route's declared requirement; an empty role admits any authenticated
// caller.
func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("POST /login", s.handleLogin)

	s.mux.Handle("GET /api/users/current", s.protected("", s.handleCurrentUser))
	s.mux.Handle("PATCH /api/users/update_password", s.protected("", s.handleUpdatePassword))

	s.mux.Handle("POST /api/users", s.protected(entities.RoleAdmin, s.handleCreateUser))
	s.mux.Handle("GET /api/users", s.protected(entities.RoleAdmin, s.handleListUsers))
	s.mux.Handle("GET /api/users/{id}", s.protected(entities.RoleAdmin, s.handleGetUser))
	s.mux.Handle("PATCH /api/users/role/{id}", s.protected(entities.RoleAdmin, s.handleToggleRole))
	s.mux.Handle("PATCH /api/users/enable/{id}", s.protected(entities.RoleAdmin, s.handleToggleEnabled))
	s.mux.Handle("DELETE /api/users/{id}", s.protected(entities.RoleAdmin, s.handleDeleteUser))
}

type protectedHandler func(w http.ResponseWriter, r *http.Request, claims application.IdentityClaims)

// protected resolves the bearer identity, then applies the route's role
// requirement. Authentication failures answer 401 before the guard runs; the
// guard answers 403. Handlers execute only on allow.
func (s *Server) protected(required entities.Role, next protectedHandler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := s.resolveIdentity(r)
		if err != nil {
			writeUserError(w, http.StatusUnauthorized, usershttp.CodeUnauthorized, err.Error())
			return
		}
		if !services.Authorize(required, claims.Role) {
			writeUserError(w, http.StatusForbidden, usershttp.CodeForbidden, domainerrors.ErrForbidden.Error())
			return
		}
		next(w, r, claims)
	})
}

func (s *Server) resolveIdentity(r *http.Request) (application.IdentityClaims, error) {
	header := r.Header.Get("Authorization")
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(raw) == "" {
		return application.IdentityClaims{}, domainerrors.ErrTokenInvalid
	}
	return s.users.Tokens.Validate(strings.TrimSpace(raw))
}

func writeUserDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domainerrors.ErrInvalidCredentials):
		writeUserError(w, http.StatusUnauthorized, usershttp.CodeBadCredentials, err.Error())
	case errors.Is(err, domainerrors.ErrUserNotFound):
		writeUserError(w, http.StatusNotFound, usershttp.CodeUserNotFound, err.Error())
	case errors.Is(err, domainerrors.ErrUsernameTaken):
		writeUserError(w, http.StatusConflict, usershttp.CodeUsernameTaken, err.Error())
	case errors.Is(err, domainerrors.ErrUnknownRole):
		writeUserError(w, http.StatusBadRequest, usershttp.CodeUnknownRole, err.Error())
	case errors.Is(err, domainerrors.ErrSuperAdminImmutable):
		writeUserError(w, http.StatusUnprocessableEntity, usershttp.CodeSuperAdminLock, err.Error())
	case errors.Is(err, domainerrors.ErrSelfDeleteForbidden):
		writeUserError(w, http.StatusUnprocessableEntity, usershttp.CodeSelfDelete, err.Error())
	case errors.Is(err, domainerrors.ErrInvalidRequest):
		writeUserError(w, http.StatusBadRequest, usershttp.CodeInvalidRequest, err.Error())
	default:
		writeUserError(w, http.StatusInternalServerError, usershttp.CodeInternal, "internal server error")
	}
}

func writeUserError(w http.ResponseWriter, status int, code int, message string) {
	writeJSON(w, status, usershttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// writeData wraps every successful payload in the {data, code, message}
// envelope with code 0.
func writeData(w http.ResponseWriter, payload any) {
	writeJSON(w, http.StatusOK, usershttp.Envelope{
		Data:    payload,
		Code:    usershttp.CodeOK,
		Message: "ok",
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
