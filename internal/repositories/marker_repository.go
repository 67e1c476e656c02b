package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/kortex/backend/internal/models"
	"go.uber.org/zap"
)

// markerRepository implements the marker repository interfaces declared in services
type markerRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewMarkerRepository creates a new marker repository
func NewMarkerRepository(db *sql.DB, logger *zap.Logger) *markerRepository {
	return &markerRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a new marker into the database
func (r *markerRepository) Create(ctx context.Context, marker *models.Marker) error {
	query := `
		INSERT INTO markers (lat, lon, type, label, description, created_at, created_by)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	var description sql.NullString
	if marker.Description != nil {
		description = sql.NullString{String: *marker.Description, Valid: true}
	}

	result, err := r.db.ExecContext(ctx, query,
		marker.Lat,
		marker.Lon,
		marker.Type,
		marker.Label,
		description,
		marker.CreatedAt,
		marker.CreatedBy,
	)
	if err != nil {
		r.logger.Error("failed to create marker", zap.Error(err))
		return fmt.Errorf("failed to create marker: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		r.logger.Error("failed to get last insert id", zap.Error(err))
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	marker.ID = int(id)
	return nil
}

// ListWithCreators retrieves all markers in insertion order, each annotated with
// its creator's current username. Markers whose creator row is missing resolve
// to the "Unknown" sentinel instead of failing.
func (r *markerRepository) ListWithCreators(ctx context.Context) ([]models.MarkerView, error) {
	query := `
		SELECT m.id, m.lat, m.lon, m.type, m.label, m.description, m.created_at,
		       COALESCE(u.username, ?)
		FROM markers m
		LEFT JOIN users u ON u.id = m.created_by
		ORDER BY m.id
	`

	rows, err := r.db.QueryContext(ctx, query, models.UnknownCreator)
	if err != nil {
		r.logger.Error("failed to list markers", zap.Error(err))
		return nil, fmt.Errorf("failed to list markers: %w", err)
	}
	defer rows.Close()

	markers := []models.MarkerView{}
	for rows.Next() {
		var marker models.MarkerView
		var description sql.NullString
		err := rows.Scan(
			&marker.ID,
			&marker.Lat,
			&marker.Lon,
			&marker.Type,
			&marker.Label,
			&description,
			&marker.CreatedAt,
			&marker.CreatedBy,
		)
		if err != nil {
			r.logger.Error("failed to scan marker", zap.Error(err))
			return nil, fmt.Errorf("failed to scan marker: %w", err)
		}
		if description.Valid {
			marker.Description = &description.String
		}
		markers = append(markers, marker)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("failed to iterate markers", zap.Error(err))
		return nil, fmt.Errorf("failed to iterate markers: %w", err)
	}

	return markers, nil
}
