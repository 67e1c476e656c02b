package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/kortex/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// setupMarkerTestRepository creates a marker repository with a mock database
func setupMarkerTestRepository(t *testing.T) (*markerRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewMarkerRepository(db, zap.NewNop())

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

func strPtr(s string) *string {
	return &s
}

func TestMarkerRepository_Create(t *testing.T) {
	tests := []struct {
		name          string
		marker        *models.Marker
		setupMock     func(sqlmock.Sqlmock)
		expectAnError bool
		expectedID    int
	}{
		{
			name: "success with description",
			marker: &models.Marker{
				Lat:         1.0,
				Lon:         2.0,
				Type:        models.MarkerTypeEnemy,
				Label:       "Tank",
				Description: strPtr("T-72 column"),
				CreatedAt:   "2026-08-30 12:00:00",
				CreatedBy:   2,
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO markers`).
					WithArgs(1.0, 2.0, models.MarkerTypeEnemy, "Tank", "T-72 column", "2026-08-30 12:00:00", 2).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
			expectedID: 1,
		},
		{
			name: "success without description stores NULL",
			marker: &models.Marker{
				Lat:       -33.9,
				Lon:       151.2,
				Type:      models.MarkerTypeAlly,
				Label:     "OP",
				CreatedAt: "2026-08-30 12:00:00",
				CreatedBy: 2,
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO markers`).
					WithArgs(-33.9, 151.2, models.MarkerTypeAlly, "OP", nil, "2026-08-30 12:00:00", 2).
					WillReturnResult(sqlmock.NewResult(2, 1))
			},
			expectedID: 2,
		},
		{
			name: "database error on insert",
			marker: &models.Marker{
				Lat:       1.0,
				Lon:       2.0,
				Type:      models.MarkerTypeUnit,
				Label:     "Infantry",
				CreatedAt: "2026-08-30 12:00:00",
				CreatedBy: 2,
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO markers`).
					WithArgs(1.0, 2.0, models.MarkerTypeUnit, "Infantry", nil, "2026-08-30 12:00:00", 2).
					WillReturnError(errors.New("database error"))
			},
			expectAnError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupMarkerTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			err := repo.Create(context.Background(), tt.marker)

			if tt.expectAnError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedID, tt.marker.ID)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestMarkerRepository_ListWithCreators(t *testing.T) {
	columns := []string{"id", "lat", "lon", "type", "label", "description", "created_at", "username"}

	tests := []struct {
		name            string
		setupMock       func(sqlmock.Sqlmock)
		expectedMarkers []models.MarkerView
		expectAnError   bool
	}{
		{
			name: "markers with resolved and unknown creators",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(columns).
					AddRow(1, 1.0, 2.0, "enemy", "Tank", "T-72 column", "2026-08-30 12:00:00", "bob").
					AddRow(2, 3.5, -4.2, "target", "Bridge", nil, "2026-08-30 12:01:00", models.UnknownCreator)
				mock.ExpectQuery(`SELECT m.id, m.lat, m.lon, m.type, m.label, m.description, m.created_at`).
					WithArgs(models.UnknownCreator).
					WillReturnRows(rows)
			},
			expectedMarkers: []models.MarkerView{
				{ID: 1, Lat: 1.0, Lon: 2.0, Type: "enemy", Label: "Tank", Description: strPtr("T-72 column"), CreatedAt: "2026-08-30 12:00:00", CreatedBy: "bob"},
				{ID: 2, Lat: 3.5, Lon: -4.2, Type: "target", Label: "Bridge", Description: nil, CreatedAt: "2026-08-30 12:01:00", CreatedBy: models.UnknownCreator},
			},
		},
		{
			name: "empty map",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT m.id, m.lat, m.lon, m.type, m.label, m.description, m.created_at`).
					WithArgs(models.UnknownCreator).
					WillReturnRows(sqlmock.NewRows(columns))
			},
			expectedMarkers: []models.MarkerView{},
		},
		{
			name: "database error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT m.id, m.lat, m.lon, m.type, m.label, m.description, m.created_at`).
					WithArgs(models.UnknownCreator).
					WillReturnError(errors.New("database error"))
			},
			expectAnError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupMarkerTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			markers, err := repo.ListWithCreators(context.Background())

			if tt.expectAnError {
				assert.Error(t, err)
				assert.Nil(t, markers)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedMarkers, markers)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
