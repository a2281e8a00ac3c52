package services

import (
	"context"

	"tempo/internal/domain/models"
)

// ModuleService defines business operations for modules
type ModuleService interface {
	CreateModule(ctx context.Context, req *models.CreateModuleRequest) (*models.Module, error)
	GetModule(ctx context.Context, id, userID string) (*models.Module, error)
	UpdateModule(ctx context.Context, id string, req *models.UpdateModuleRequest) (*models.Module, error)
	DeleteModule(ctx context.Context, id, userID string) error
}
