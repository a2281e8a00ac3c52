package services

import (
	"context"

	"tempo/internal/domain/models"
)

// EntryService defines business operations for time entries
type EntryService interface {
	CreateEntry(ctx context.Context, req *models.CreateEntryRequest) (*models.Entry, error)
	GetEntry(ctx context.Context, id, userID string) (*models.Entry, error)
	UpdateEntry(ctx context.Context, id string, req *models.UpdateEntryRequest) (*models.Entry, error)
	DeleteEntry(ctx context.Context, id, userID string) error
}
