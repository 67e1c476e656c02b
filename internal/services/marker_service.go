package services

import (
	"context"
	"fmt"
	"time"

	"github.com/kortex/backend/internal/models"
	"go.uber.org/zap"
)

// MarkerRepository is the interface that wraps methods for Marker table data access
type MarkerRepository interface {
	// Method Create inserts a new marker into the database.
	//
	// "marker" parameter is used to create a new marker.
	//
	// If some error occurs during marker creation, the error will be returned.
	Create(ctx context.Context, marker *models.Marker) error
	// Method ListWithCreators retrieves all markers with their creators' usernames resolved.
	//
	// If some error occurs, the error will be returned together with "nil" value.
	ListWithCreators(ctx context.Context) ([]models.MarkerView, error)
}

// markerService implements MarkerService
type markerService struct {
	markerRepo MarkerRepository
	logger     *zap.Logger
}

// NewMarkerService creates a new marker service
func NewMarkerService(markerRepo MarkerRepository, logger *zap.Logger) *markerService {
	return &markerService{
		markerRepo: markerRepo,
		logger:     logger,
	}
}

// List retrieves all markers with creator usernames resolved at read time
func (s *markerService) List(ctx context.Context) ([]models.MarkerView, error) {
	return s.markerRepo.ListWithCreators(ctx)
}

// Create stores a new marker bound to the authenticated creator.
// Coordinates, type and label are stored verbatim with no range or enum
// validation. The creation timestamp is generated server-side at write time.
func (s *markerService) Create(ctx context.Context, creatorID int, req *models.CreateMarkerRequest) error {
	marker := &models.Marker{
		Lat:         req.Lat,
		Lon:         req.Lon,
		Type:        req.Type,
		Label:       req.Label,
		Description: req.Description,
		CreatedAt:   time.Now().UTC().Format(models.CreatedAtLayout),
		CreatedBy:   creatorID,
	}

	if err := s.markerRepo.Create(ctx, marker); err != nil {
		return fmt.Errorf("failed to create marker: %w", err)
	}

	s.logger.Debug("marker created",
		zap.Int("markerID", marker.ID),
		zap.String("type", marker.Type),
		zap.Int("createdBy", creatorID),
	)
	return nil
}
