package services

import (
	"database/sql"
	"errors"
	"fmt"

	"carbontrack-backend/internal/database"
	"carbontrack-backend/internal/dto"
	"carbontrack-backend/internal/models"

	"github.com/google/uuid"
)

type ReviewService struct {
	db *database.DB
}

func NewReviewService(db *database.DB) *ReviewService {
	return &ReviewService{db: db}
}

// ReviewCarbonData applies a review action to an entry and appends the
// matching audit row. Both writes run in one transaction: an entry must
// never change status without a history row recording who did it.
//
// Re-reviewing a non-pending entry is allowed; each action appends its own
// history row and the entry keeps only the latest reviewer/notes.
func (s *ReviewService) ReviewCarbonData(carbonDataID uuid.UUID, reviewerID uuid.UUID, req *dto.ReviewCarbonDataRequest) (*models.CarbonData, error) {
	tx, err := s.db.Beginx()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var notes *string
	if req.ReviewNotes != "" {
		notes = &req.ReviewNotes
	}

	var data models.CarbonData
	updateQuery := `
		update carbon_data set
			status = $1,
			review_notes = $2,
			reviewer_id = $3,
			updated_at = now()
		where id = $4
		returning ` + carbonDataColumns

	if err := tx.Get(&data, updateQuery, req.Status, notes, reviewerID, carbonDataID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update carbon data status: %w", err)
	}

	insertQuery := `
		insert into review_history (carbon_data_id, reviewer_id, action, notes)
		values ($1, $2, $3, $4)
	`
	if _, err := tx.Exec(insertQuery, carbonDataID, reviewerID, req.Status, notes); err != nil {
		return nil, fmt.Errorf("failed to record review history: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit review: %w", err)
	}

	return &data, nil
}

// GetReviewHistory returns the audit trail for an entry, oldest first.
func (s *ReviewService) GetReviewHistory(carbonDataID uuid.UUID) ([]models.ReviewHistory, error) {
	history := []models.ReviewHistory{}
	query := `
		select id, carbon_data_id, reviewer_id, action, notes, created_at
		from review_history
		where carbon_data_id = $1
		order by created_at asc
	`

	if err := s.db.Select(&history, query, carbonDataID); err != nil {
		return nil, fmt.Errorf("failed to get review history: %w", err)
	}

	return history, nil
}

// GetPendingReviews returns the global pending queue, oldest submission
// first.
func (s *ReviewService) GetPendingReviews() ([]models.CarbonData, error) {
	data := []models.CarbonData{}
	query := `select ` + carbonDataColumns + ` from carbon_data where status = 'pending' order by created_at asc`

	if err := s.db.Select(&data, query); err != nil {
		return nil, fmt.Errorf("failed to get pending reviews: %w", err)
	}

	return data, nil
}
