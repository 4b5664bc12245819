package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/tayo/teamwork-backend/internal/api/respond"
	"github.com/tayo/teamwork-backend/internal/domain"
	"github.com/tayo/teamwork-backend/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateUserRequest struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Gender     string `json:"gender"`
	JobRole    string `json:"jobRole"`
	Department string `json:"department"`
	Address    string `json:"address"`
	Admin      bool   `json:"admin"`
}

func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		respond.Error(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	result, err := h.authService.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			respond.Error(w, http.StatusBadRequest, domain.ErrInvalidCredentials.Error())
			return
		}
		log.Printf("ERROR [handlers.AuthHandler.SignIn] %v", err)
		respond.Error(w, http.StatusInternalServerError, "Something failed")
		return
	}

	respond.Success(w, http.StatusOK, map[string]interface{}{
		"token":  result.Token,
		"userId": result.User.ID,
	})
}

func (h *AuthHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.authService.CreateUser(r.Context(), service.CreateUserInput{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Password:   req.Password,
		Gender:     req.Gender,
		JobRole:    req.JobRole,
		Department: req.Department,
		Address:    req.Address,
		Admin:      req.Admin,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingField):
			respond.Error(w, http.StatusBadRequest, "firstName, lastName, email and password are required")
		case errors.Is(err, domain.ErrDuplicateEmail):
			respond.Error(w, http.StatusBadRequest, domain.ErrDuplicateEmail.Error())
		default:
			log.Printf("ERROR [handlers.AuthHandler.CreateUser] %v", err)
			respond.Error(w, http.StatusInternalServerError, "Something failed")
		}
		return
	}

	// The returned token belongs to the newly created user, not to the admin
	// performing the request.
	respond.Success(w, http.StatusCreated, map[string]interface{}{
		"message": "User account successfully created",
		"token":   result.Token,
		"userId":  result.User.ID,
	})
}

func (h *AuthHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.authService.ListUsers(r.Context())
	if err != nil {
		log.Printf("ERROR [handlers.AuthHandler.ListUsers] %v", err)
		respond.Error(w, http.StatusInternalServerError, "Something failed")
		return
	}

	respond.Success(w, http.StatusOK, users)
}
