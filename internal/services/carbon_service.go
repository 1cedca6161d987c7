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

// ErrNotFound is returned both when a record does not exist and when it is
// owned by someone else. Collapsing the two keeps other users' records
// unenumerable.
var ErrNotFound = errors.New("carbon data not found")

const carbonDataColumns = `
	id, user_id, title, description, carbon_amount, unit, category, date,
	status, review_notes, reviewer_id, created_at, updated_at
`

type CarbonService struct {
	db *database.DB
}

func NewCarbonService(db *database.DB) *CarbonService {
	return &CarbonService{db: db}
}

// Create persists a new entry for ownerID. Status always starts as
// "pending"; the request cannot set it.
func (s *CarbonService) Create(req *dto.CreateCarbonDataRequest, ownerID uuid.UUID) (*models.CarbonData, error) {
	var data models.CarbonData
	query := `
		insert into carbon_data (user_id, title, description, carbon_amount, unit, category, date, status)
		values ($1, $2, $3, $4, $5, $6, $7, 'pending')
		returning ` + carbonDataColumns

	var description *string
	if req.Description != "" {
		description = &req.Description
	}
	err := s.db.Get(&data, query,
		ownerID, req.Title, description, req.CarbonAmount, req.Unit, req.Category, req.ParsedDate())
	if err != nil {
		return nil, fmt.Errorf("failed to create carbon data: %w", err)
	}

	return &data, nil
}

// FindByID is deliberately unscoped: any authenticated user may read any
// entry by id.
func (s *CarbonService) FindByID(id uuid.UUID) (*models.CarbonData, error) {
	var data models.CarbonData
	query := `select ` + carbonDataColumns + ` from carbon_data where id = $1`

	if err := s.db.Get(&data, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get carbon data: %w", err)
	}

	return &data, nil
}

func (s *CarbonService) FindByUser(ownerID uuid.UUID) ([]models.CarbonData, error) {
	data := []models.CarbonData{}
	query := `select ` + carbonDataColumns + ` from carbon_data where user_id = $1 order by created_at desc`

	if err := s.db.Select(&data, query, ownerID); err != nil {
		return nil, fmt.Errorf("failed to list carbon data: %w", err)
	}

	return data, nil
}

// Update applies a partial patch. The where clause matches both id and
// owner, so a non-owner gets the same ErrNotFound as a missing record.
func (s *CarbonService) Update(id uuid.UUID, req *dto.UpdateCarbonDataRequest, ownerID uuid.UUID) (*models.CarbonData, error) {
	var data models.CarbonData
	query := `
		update carbon_data set
			title = coalesce($1, title),
			description = coalesce($2, description),
			carbon_amount = coalesce($3, carbon_amount),
			unit = coalesce($4, unit),
			category = coalesce($5, category),
			date = coalesce($6, date),
			updated_at = now()
		where id = $7 and user_id = $8
		returning ` + carbonDataColumns

	err := s.db.Get(&data, query,
		req.Title, req.Description, req.CarbonAmount, req.Unit, req.Category, req.ParsedDate(),
		id, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update carbon data: %w", err)
	}

	return &data, nil
}

// Delete removes an owned entry and returns the deleted snapshot.
func (s *CarbonService) Delete(id uuid.UUID, ownerID uuid.UUID) (*models.CarbonData, error) {
	var data models.CarbonData
	query := `delete from carbon_data where id = $1 and user_id = $2 returning ` + carbonDataColumns

	if err := s.db.Get(&data, query, id, ownerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to delete carbon data: %w", err)
	}

	return &data, nil
}
