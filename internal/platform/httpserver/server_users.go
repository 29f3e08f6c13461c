package httpserver

import (
	"encoding/json"
	"net/http"
	"strconv"

	"warden/contexts/identity-access/user-service/application"
	usershttp "warden/contexts/identity-access/user-service/transport/http"
)

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req usershttp.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeUserError(w, http.StatusBadRequest, usershttp.CodeInvalidRequest, "request body must be valid JSON")
		return
	}

	resp, err := s.users.Handler.LoginHandler(r.Context(), req)
	if err != nil {
		writeUserDomainError(w, err)
		return
	}
	writeData(w, resp)
}

func (s *Server) handleCurrentUser(w http.ResponseWriter, r *http.Request, claims application.IdentityClaims) {
	callerID, err := claims.UserID()
	if err != nil {
		writeUserError(w, http.StatusUnauthorized, usershttp.CodeUnauthorized, err.Error())
		return
	}

	resp, err := s.users.Handler.CurrentUserHandler(r.Context(), callerID)
	if err != nil {
		writeUserDomainError(w, err)
		return
	}
	writeData(w, resp)
}

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request, _ application.IdentityClaims) {
	var req usershttp.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeUserError(w, http.StatusBadRequest, usershttp.CodeInvalidRequest, "request body must be valid JSON")
		return
	}

	resp, err := s.users.Handler.CreateUserHandler(r.Context(), req)
	if err != nil {
		writeUserDomainError(w, err)
		return
	}
	writeData(w, resp)
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request, _ application.IdentityClaims) {
	query := r.URL.Query()
	req := usershttp.ListUsersRequest{
		Search: query.Get("search"),
	}
	if raw := query.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			writeUserError(w, http.StatusBadRequest, usershttp.CodeInvalidRequest, "page must be an integer")
			return
		}
		req.Page = page
	}
	if raw := query.Get("page_size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			writeUserError(w, http.StatusBadRequest, usershttp.CodeInvalidRequest, "page_size must be an integer")
			return
		}
		req.PageSize = size
	}

	resp, err := s.users.Handler.ListUsersHandler(r.Context(), req)
	if err != nil {
		writeUserDomainError(w, err)
		return
	}
	writeData(w, resp)
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request, _ application.IdentityClaims) {
	id, ok := pathID(r)
	if !ok {
		writeUserError(w, http.StatusBadRequest, usershttp.CodeInvalidRequest, "id must be a positive integer")
		return
	}

	resp, err := s.users.Handler.GetUserHandler(r.Context(), id)
	if err != nil {
		writeUserDomainError(w, err)
		return
	}
	writeData(w, resp)
}

func (s *Server) handleToggleRole(w http.ResponseWriter, r *http.Request, _ application.IdentityClaims) {
	id, ok := pathID(r)
	if !ok {
		writeUserError(w, http.StatusBadRequest, usershttp.CodeInvalidRequest, "id must be a positive integer")
		return
	}

	resp, err := s.users.Handler.ToggleRoleHandler(r.Context(), id)
	if err != nil {
		writeUserDomainError(w, err)
		return
	}
	writeData(w, resp)
}

func (s *Server) handleToggleEnabled(w http.ResponseWriter, r *http.Request, _ application.IdentityClaims) {
	id, ok := pathID(r)
	if !ok {
		writeUserError(w, http.StatusBadRequest, usershttp.CodeInvalidRequest, "id must be a positive integer")
		return
	}

	resp, err := s.users.Handler.ToggleEnabledHandler(r.Context(), id)
	if err != nil {
		writeUserDomainError(w, err)
		return
	}
	writeData(w, resp)
}

func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request, claims application.IdentityClaims) {
	id, ok := pathID(r)
	if !ok {
		writeUserError(w, http.StatusBadRequest, usershttp.CodeInvalidRequest, "id must be a positive integer")
		return
	}
	callerID, err := claims.UserID()
	if err != nil {
		writeUserError(w, http.StatusUnauthorized, usershttp.CodeUnauthorized, err.Error())
		return
	}

	if err := s.users.Handler.DeleteUserHandler(r.Context(), callerID, id); err != nil {
		writeUserDomainError(w, err)
		return
	}
	writeData(w, nil)
}

func (s *Server) handleUpdatePassword(w http.ResponseWriter, r *http.Request, claims application.IdentityClaims) {
	callerID, err := claims.UserID()
	if err != nil {
		writeUserError(w, http.StatusUnauthorized, usershttp.CodeUnauthorized, err.Error())
		return
	}

	var req usershttp.UpdatePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeUserError(w, http.StatusBadRequest, usershttp.CodeInvalidRequest, "request body must be valid JSON")
		return
	}

	if err := s.users.Handler.UpdatePasswordHandler(r.Context(), callerID, req); err != nil {
		writeUserDomainError(w, err)
		return
	}
	writeData(w, nil)
}
