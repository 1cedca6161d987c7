package dto

import (
	"errors"
	"strings"
	"time"

	"carbontrack-backend/internal/models"

	"github.com/hashicorp/go-multierror"
)

// CreateCarbonDataRequest carries the client-settable fields of an entry.
// Status is deliberately absent: new entries always start as "pending".
type CreateCarbonDataRequest struct {
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	CarbonAmount float64 `json:"carbon_amount"`
	Unit         string  `json:"unit"`
	Category     string  `json:"category"`
	Date         string  `json:"date"`
}

func (r *CreateCarbonDataRequest) Validate() error {
	var result *multierror.Error

	if strings.TrimSpace(r.Title) == "" {
		result = multierror.Append(result, errors.New("title is required"))
	} else if len(r.Title) > 255 {
		result = multierror.Append(result, errors.New("title must be at most 255 characters"))
	}

	if r.CarbonAmount <= 0 {
		result = multierror.Append(result, errors.New("carbon amount must be positive"))
	}

	if r.Unit == "" {
		r.Unit = "kg"
	}

	if !models.CarbonCategory(r.Category).Valid() {
		result = multierror.Append(result, errors.New("category must be one of: transport, energy, waste, water, other"))
	}

	if _, err := time.Parse(time.RFC3339, r.Date); err != nil {
		result = multierror.Append(result, errors.New("date must be an RFC 3339 timestamp"))
	}

	return result.ErrorOrNil()
}

// ParsedDate must be called after Validate has succeeded.
func (r *CreateCarbonDataRequest) ParsedDate() time.Time {
	t, _ := time.Parse(time.RFC3339, r.Date)
	return t
}

// UpdateCarbonDataRequest is a partial patch: nil fields keep their stored
// values. Ownership-restricted fields (status, reviewer) are not patchable.
type UpdateCarbonDataRequest struct {
	Title        *string  `json:"title"`
	Description  *string  `json:"description"`
	CarbonAmount *float64 `json:"carbon_amount"`
	Unit         *string  `json:"unit"`
	Category     *string  `json:"category"`
	Date         *string  `json:"date"`
}

func (r *UpdateCarbonDataRequest) Validate() error {
	var result *multierror.Error

	if r.Title != nil {
		if strings.TrimSpace(*r.Title) == "" {
			result = multierror.Append(result, errors.New("title must not be empty"))
		} else if len(*r.Title) > 255 {
			result = multierror.Append(result, errors.New("title must be at most 255 characters"))
		}
	}

	if r.CarbonAmount != nil && *r.CarbonAmount <= 0 {
		result = multierror.Append(result, errors.New("carbon amount must be positive"))
	}

	if r.Category != nil && !models.CarbonCategory(*r.Category).Valid() {
		result = multierror.Append(result, errors.New("category must be one of: transport, energy, waste, water, other"))
	}

	if r.Date != nil {
		if _, err := time.Parse(time.RFC3339, *r.Date); err != nil {
			result = multierror.Append(result, errors.New("date must be an RFC 3339 timestamp"))
		}
	}

	return result.ErrorOrNil()
}

// ParsedDate returns the patch date, or nil when the field was omitted.
// Must be called after Validate has succeeded.
func (r *UpdateCarbonDataRequest) ParsedDate() *time.Time {
	if r.Date == nil {
		return nil
	}
	t, _ := time.Parse(time.RFC3339, *r.Date)
	return &t
}
