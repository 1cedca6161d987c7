package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"carbontrack-backend/internal/database"
	"carbontrack-backend/internal/dto"
	"carbontrack-backend/internal/middleware"
	"carbontrack-backend/internal/services"
	"carbontrack-backend/utils/response"
)

type AuthHandler struct {
	service *services.AuthService
}

func NewAuthHandler(db *database.DB, jwtSecret string, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		service: services.NewAuthService(db, jwtSecret, tokenTTL),
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.Register(&req)
	if err != nil {
		if errors.Is(err, services.ErrEmailExists) {
			response.Error(w, http.StatusBadRequest, "A user with this email already exists")
			return
		}
		response.Error(w, http.StatusInternalServerError, "Failed to register user")
		return
	}

	response.Success(w, http.StatusCreated,
		dto.AuthResponse{User: result.User, Token: result.Token},
		"User registered successfully")
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.Login(&req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			response.Error(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		response.Error(w, http.StatusInternalServerError, "Failed to login user")
		return
	}

	response.Success(w, http.StatusOK,
		dto.AuthResponse{User: result.User, Token: result.Token},
		"Login successful")
}

func (h *AuthHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		response.Error(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	user, err := h.service.GetUserByID(claims.UserID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			response.Error(w, http.StatusNotFound, "User not found")
			return
		}
		response.Error(w, http.StatusInternalServerError, "Failed to get profile")
		return
	}

	response.Success(w, http.StatusOK, user, "Profile retrieved successfully")
}
