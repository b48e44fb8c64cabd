package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/raffasdev/neocustomers/internal/entity"
	"github.com/raffasdev/neocustomers/internal/infra/http/middleware"
	"github.com/raffasdev/neocustomers/internal/usecase"
)

type AuthHandler struct {
	UseCase *usecase.AuthUseCase
}

func NewAuthHandler(uc *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{UseCase: uc}
}

type registerUserResponse struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Roles    []string `json:"roles"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input usecase.RegisterUserInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, problemResponse{
			Status: http.StatusBadRequest,
			Error:  "invalid json",
			Detail: err.Error(),
		})
		return
	}

	user, err := h.UseCase.RegisterUser(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	roles := make([]string, 0, len(user.Roles()))
	for _, role := range user.Roles() {
		roles = append(roles, string(role))
	}

	writeJSON(w, http.StatusCreated, registerUserResponse{
		ID:       user.ID().String(),
		Username: user.Username(),
		Email:    user.Email(),
		Roles:    roles,
	})
}

// Login handles POST /auth/login. UserNotFound and WrongCredentials collapse
// into the same 401 body so the endpoint cannot be used to enumerate emails.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input loginRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, problemResponse{
			Status: http.StatusBadRequest,
			Error:  "invalid json",
			Detail: err.Error(),
		})
		return
	}

	token, err := h.UseCase.LoginUser(r.Context(), input.Email, input.Password)
	if err != nil {
		var notFound usecase.UserNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, usecase.ErrWrongCredentials) {
			middleware.RecordLogin("denied")
			writeJSON(w, http.StatusUnauthorized, problemResponse{
				Status: http.StatusUnauthorized,
				Error:  "unauthorized",
				Detail: "invalid credentials",
			})
			return
		}
		var validation entity.ValidationError
		if errors.As(err, &validation) {
			writeError(w, err)
			return
		}
		middleware.RecordLogin("error")
		writeError(w, err)
		return
	}

	middleware.RecordLogin("success")
	writeJSON(w, http.StatusOK, loginResponse{Token: token})
}
