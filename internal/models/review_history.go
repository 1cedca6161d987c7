package models

import (
	"time"

	"github.com/google/uuid"
)

// ReviewHistory is an append-only audit row. Rows are never updated or
// deleted once written; the full trail for an entry is the set of rows
// sharing its CarbonDataID.
type ReviewHistory struct {
	ID           uuid.UUID `db:"id" json:"id"`
	CarbonDataID uuid.UUID `db:"carbon_data_id" json:"carbon_data_id"`
	ReviewerID   uuid.UUID `db:"reviewer_id" json:"reviewer_id"`

	Action CarbonStatus `db:"action" json:"action"`
	Notes  *string      `db:"notes" json:"notes"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
