package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"carbontrack-backend/internal/database"
	"carbontrack-backend/internal/dto"
	"carbontrack-backend/internal/middleware"
	"carbontrack-backend/internal/services"
	"carbontrack-backend/utils/response"

	"github.com/google/uuid"
)

// AdminHandler serves the review surface. Role gating happens in the
// middleware; handlers only resolve the acting reviewer's identity.
type AdminHandler struct {
	service *services.ReviewService
}

func NewAdminHandler(db *database.DB) *AdminHandler {
	return &AdminHandler{
		service: services.NewReviewService(db),
	}
}

func (h *AdminHandler) GetPendingReviews(w http.ResponseWriter, r *http.Request) {
	data, err := h.service.GetPendingReviews()
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to get pending reviews")
		return
	}

	response.Success(w, http.StatusOK, data, "Pending reviews retrieved successfully")
}

func (h *AdminHandler) ReviewCarbonData(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		response.Error(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid carbon data id")
		return
	}

	var req dto.ReviewCarbonDataRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	data, err := h.service.ReviewCarbonData(id, claims.UserID, &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			response.Error(w, http.StatusNotFound, "Carbon data not found")
			return
		}
		response.Error(w, http.StatusInternalServerError, "Failed to review carbon data")
		return
	}

	response.Success(w, http.StatusOK, data, "Carbon data reviewed successfully")
}

func (h *AdminHandler) GetReviewHistory(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid carbon data id")
		return
	}

	history, err := h.service.GetReviewHistory(id)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to get review history")
		return
	}

	response.Success(w, http.StatusOK, history, "Review history retrieved successfully")
}
