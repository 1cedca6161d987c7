package models

import (
	"time"

	"github.com/google/uuid"
)

type CarbonStatus string

const (
	CarbonStatusPending        CarbonStatus = "pending"
	CarbonStatusApproved       CarbonStatus = "approved"
	CarbonStatusRejected       CarbonStatus = "rejected"
	CarbonStatusRequestChanges CarbonStatus = "request_changes"
)

// ValidReviewAction reports whether the status is one a reviewer may apply.
// "pending" is the initial state only; reviews never set it.
func (s CarbonStatus) ValidReviewAction() bool {
	switch s {
	case CarbonStatusApproved, CarbonStatusRejected, CarbonStatusRequestChanges:
		return true
	}
	return false
}

type CarbonCategory string

const (
	CarbonCategoryTransport CarbonCategory = "transport"
	CarbonCategoryEnergy    CarbonCategory = "energy"
	CarbonCategoryWaste     CarbonCategory = "waste"
	CarbonCategoryWater     CarbonCategory = "water"
	CarbonCategoryOther     CarbonCategory = "other"
)

func (c CarbonCategory) Valid() bool {
	switch c {
	case CarbonCategoryTransport, CarbonCategoryEnergy, CarbonCategoryWaste,
		CarbonCategoryWater, CarbonCategoryOther:
		return true
	}
	return false
}

// CarbonData is one user-submitted emission report. UserID is the owner and
// never changes after creation; Status/ReviewNotes/ReviewerID are written
// only through the review path and reflect the most recent review action.
type CarbonData struct {
	ID     uuid.UUID `db:"id" json:"id"`
	UserID uuid.UUID `db:"user_id" json:"user_id"`

	Title        string         `db:"title" json:"title"`
	Description  *string        `db:"description" json:"description"`
	CarbonAmount float64        `db:"carbon_amount" json:"carbon_amount"`
	Unit         string         `db:"unit" json:"unit"`
	Category     CarbonCategory `db:"category" json:"category"`
	Date         time.Time      `db:"date" json:"date"`

	Status      CarbonStatus `db:"status" json:"status"`
	ReviewNotes *string      `db:"review_notes" json:"review_notes"`
	ReviewerID  *uuid.UUID   `db:"reviewer_id" json:"reviewer_id"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
