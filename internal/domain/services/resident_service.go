package services

import (
	"context"
	"errors"

	"resident-records-service/internal/domain/models"
	"resident-records-service/internal/domain/repository"
	"resident-records-service/internal/error/code"
)

// InterfaceResidentService defines the resident service interface
type InterfaceResidentService interface {
	CreateResident(ctx context.Context, resident *models.Resident) error
	GetAllResidents(ctx context.Context) ([]models.Resident, error)
	GetResidentByID(ctx context.Context, id string) (*models.Resident, error)
	UpdateResident(ctx context.Context, id string, partial *models.Resident) (*models.Resident, error)
	DeleteResident(ctx context.Context, id string) error
}

// ResidentService manages resident records
type ResidentService struct {
	Residents repository.InterfaceResidentRepository
}

// NewResidentService creates a new resident service
func NewResidentService(residents repository.InterfaceResidentRepository) InterfaceResidentService {
	return &ResidentService{Residents: residents}
}

// 1 CreateResident validates and persists a new resident
func (s *ResidentService) CreateResident(ctx context.Context, resident *models.Resident) error {
	if missing := resident.MissingFields(); len(missing) > 0 {
		return validationError(code.ErrResidentFieldsMissing, missing...)
	}

	// Advisory only: the unique key on id rejects a concurrent writer below.
	exists, err := s.Residents.Exists(ctx, resident.ID.String())
	if err != nil {
		return err
	}
	if exists {
		return conflictError(code.ErrResidentAlreadyExist)
	}

	if err := s.Residents.Create(ctx, resident); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return conflictError(code.ErrResidentAlreadyExist)
		}
		return err
	}
	return nil
}

// 2 GetAllResidents returns every resident in insertion order
func (s *ResidentService) GetAllResidents(ctx context.Context) ([]models.Resident, error) {
	residents, err := s.Residents.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if residents == nil {
		residents = []models.Resident{}
	}
	return residents, nil
}

// 3 GetResidentByID returns one resident
func (s *ResidentService) GetResidentByID(ctx context.Context, id string) (*models.Resident, error) {
	resident, err := s.Residents.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFoundError(code.ErrResidentNotFound)
		}
		return nil, err
	}
	return resident, nil
}

// 4 UpdateResident overwrites the non-empty fields of partial. Blank fields
// never clear stored values and an id in partial is ignored.
func (s *ResidentService) UpdateResident(ctx context.Context, id string, partial *models.Resident) (*models.Resident, error) {
	updates := partial.ProvidedUpdates()
	if len(updates) == 0 {
		return nil, validationError(code.ErrResidentNoUpdates)
	}

	if err := s.Residents.Update(ctx, id, updates); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFoundError(code.ErrResidentNotFound)
		}
		return nil, err
	}

	return s.GetResidentByID(ctx, id)
}

// 5 DeleteResident removes a resident
func (s *ResidentService) DeleteResident(ctx context.Context, id string) error {
	if err := s.Residents.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFoundError(code.ErrResidentNotFound)
		}
		return err
	}
	return nil
}
