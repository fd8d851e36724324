package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"resident-records-service/internal/domain/models"
	"resident-records-service/internal/domain/repository"
	"resident-records-service/pkg/logger"
)

// InterfaceEventPublisher forwards scan events to a broker.
type InterfaceEventPublisher interface {
	PublishScan(ctx context.Context, log *models.ScanLog) error
}

// InterfaceScanLogService defines the scan log service interface
type InterfaceScanLogService interface {
	Record(ctx context.Context, residentID, purpose, location string) (*models.ScanLog, error)
}

// ScanLogService appends scan audit records
type ScanLogService struct {
	Logs      repository.InterfaceScanLogRepository
	Publisher InterfaceEventPublisher

	now func() time.Time
}

// NewScanLogService creates a new scan log service. publisher may be nil.
func NewScanLogService(logs repository.InterfaceScanLogRepository, publisher InterfaceEventPublisher) *ScanLogService {
	return &ScanLogService{
		Logs:      logs,
		Publisher: publisher,
		now:       time.Now,
	}
}

// Record stores a scan event with the server time and forwards it to the
// publisher. Publish failures are logged only.
func (s *ScanLogService) Record(ctx context.Context, residentID, purpose, location string) (*models.ScanLog, error) {
	entry := &models.ScanLog{
		ID:         uuid.NewString(),
		ResidentID: residentID,
		Purpose:    purpose,
		Location:   location,
		Timestamp:  s.now().UTC(),
	}
	if err := s.Logs.Create(ctx, entry); err != nil {
		return nil, err
	}

	if s.Publisher != nil {
		if err := s.Publisher.PublishScan(ctx, entry); err != nil {
			logger.Warning("publish scan event %s failed: %v", entry.ID, err)
		}
	}
	return entry, nil
}
