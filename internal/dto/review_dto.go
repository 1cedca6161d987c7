package dto

import (
	"errors"

	"carbontrack-backend/internal/models"

	"github.com/hashicorp/go-multierror"
)

type ReviewCarbonDataRequest struct {
	Status      string `json:"status"`
	ReviewNotes string `json:"review_notes"`
}

func (r *ReviewCarbonDataRequest) Validate() error {
	var result *multierror.Error

	if !models.CarbonStatus(r.Status).ValidReviewAction() {
		result = multierror.Append(result, errors.New("status must be one of: approved, rejected, request_changes"))
	}

	return result.ErrorOrNil()
}
