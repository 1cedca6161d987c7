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

type CarbonHandler struct {
	service *services.CarbonService
}

func NewCarbonHandler(db *database.DB) *CarbonHandler {
	return &CarbonHandler{
		service: services.NewCarbonService(db),
	}
}

func (h *CarbonHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		response.Error(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req dto.CreateCarbonDataRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	data, err := h.service.Create(&req, claims.UserID)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to create carbon data")
		return
	}

	response.Success(w, http.StatusCreated, data, "Carbon data created successfully")
}

func (h *CarbonHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid carbon data id")
		return
	}

	data, err := h.service.FindByID(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			response.Error(w, http.StatusNotFound, "Carbon data not found")
			return
		}
		response.Error(w, http.StatusInternalServerError, "Failed to get carbon data")
		return
	}

	response.Success(w, http.StatusOK, data, "Carbon data retrieved successfully")
}

func (h *CarbonHandler) GetMyData(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserFromContext(r.Context())
	if claims == nil {
		response.Error(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	data, err := h.service.FindByUser(claims.UserID)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to get carbon data")
		return
	}

	response.Success(w, http.StatusOK, data, "Carbon data retrieved successfully")
}

func (h *CarbonHandler) Update(w http.ResponseWriter, r *http.Request) {
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

	var req dto.UpdateCarbonDataRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	data, err := h.service.Update(id, &req, claims.UserID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			response.Error(w, http.StatusNotFound, "Carbon data not found or not authorized")
			return
		}
		response.Error(w, http.StatusInternalServerError, "Failed to update carbon data")
		return
	}

	response.Success(w, http.StatusOK, data, "Carbon data updated successfully")
}

func (h *CarbonHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

	if _, err := h.service.Delete(id, claims.UserID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			response.Error(w, http.StatusNotFound, "Carbon data not found or not authorized")
			return
		}
		response.Error(w, http.StatusInternalServerError, "Failed to delete carbon data")
		return
	}

	response.Success(w, http.StatusOK, nil, "Carbon data deleted successfully")
}
