package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"tempo/internal/config"
	"tempo/internal/domain"
	"tempo/internal/domain/models"
	"tempo/internal/domain/repositories"
	"tempo/internal/domain/services"
)

type moduleService struct {
	moduleRepo repositories.ModuleRepository
	folderRepo repositories.FolderRepository
	logger     *slog.Logger
}

// NewModuleService creates a new module service
func NewModuleService(
	moduleRepo repositories.ModuleRepository,
	folderRepo repositories.FolderRepository,
	logger *slog.Logger,
) services.ModuleService {
	return &moduleService{
		moduleRepo: moduleRepo,
		folderRepo: folderRepo,
		logger:     logger,
	}
}

// CreateModule creates a module inside an existing folder. The sort
// order is the current module count of that folder.
func (s *moduleService) CreateModule(ctx context.Context, req *models.CreateModuleRequest) (*models.Module, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	if _, err := s.folderRepo.GetByID(ctx, req.FolderID, req.UserID); err != nil {
		return nil, fmt.Errorf("folder not found: %w", err)
	}

	order, err := s.moduleRepo.CountInFolder(ctx, req.FolderID, req.UserID)
	if err != nil {
		return nil, err
	}

	module := &models.Module{
		UserID:      req.UserID,
		FolderID:    req.FolderID,
		Name:        req.Name,
		TargetHours: req.TargetHours,
		Notes:       req.Notes,
		Order:       order,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.moduleRepo.Create(ctx, module); err != nil {
		return nil, err
	}

	s.logger.Info("module created",
		"id", module.ID,
		"name", module.Name,
		"folder_id", module.FolderID,
	)

	return module, nil
}

// GetModule retrieves a module
func (s *moduleService) GetModule(ctx context.Context, id, userID string) (*models.Module, error) {
	return s.moduleRepo.GetByID(ctx, id, userID)
}

// UpdateModule updates a module, optionally moving it to another folder
func (s *moduleService) UpdateModule(ctx context.Context, id string, req *models.UpdateModuleRequest) (*models.Module, error) {
	if err := s.validateUpdateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	module, err := s.moduleRepo.GetByID(ctx, id, req.UserID)
	if err != nil {
		return nil, err
	}

	if req.FolderID != nil {
		if _, err := s.folderRepo.GetByID(ctx, *req.FolderID, req.UserID); err != nil {
			return nil, fmt.Errorf("folder not found: %w", err)
		}
		module.FolderID = *req.FolderID
	}
	if req.Name != nil {
		module.Name = *req.Name
	}
	if req.TargetHours != nil {
		module.TargetHours = req.TargetHours
	}
	if req.Notes != nil {
		module.Notes = *req.Notes
	}
	if req.Order != nil {
		module.Order = *req.Order
	}

	module.UpdatedAt = time.Now()

	if err := s.moduleRepo.Update(ctx, module); err != nil {
		return nil, err
	}

	s.logger.Info("module updated", "id", module.ID, "name", module.Name)

	return module, nil
}

// DeleteModule deletes a module; its entries cascade away
func (s *moduleService) DeleteModule(ctx context.Context, id, userID string) error {
	module, err := s.moduleRepo.GetByID(ctx, id, userID)
	if err != nil {
		return err
	}

	if err := s.moduleRepo.Delete(ctx, id, userID); err != nil {
		return err
	}

	s.logger.Info("module deleted", "id", id, "name", module.Name)

	return nil
}

func (s *moduleService) validateCreateRequest(req *models.CreateModuleRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.FolderID, validation.Required),
		validation.Field(&req.Name,
			validation.Required,
			validation.Length(1, config.MaxModuleNameLength),
		),
		validation.Field(&req.TargetHours, validation.Min(0.0).Exclusive()),
		validation.Field(&req.Notes, validation.Length(0, config.MaxNotesLength)),
	)
}

func (s *moduleService) validateUpdateRequest(req *models.UpdateModuleRequest) error {
	if req.FolderID == nil && req.Name == nil && req.TargetHours == nil && req.Notes == nil && req.Order == nil {
		return fmt.Errorf("at least one field must be provided")
	}

	var rules []*validation.FieldRules
	if req.Name != nil {
		rules = append(rules,
			validation.Field(&req.Name,
				validation.Required,
				validation.Length(1, config.MaxModuleNameLength),
			),
		)
	}
	if req.TargetHours != nil {
		rules = append(rules,
			validation.Field(&req.TargetHours, validation.Min(0.0).Exclusive()),
		)
	}
	if req.Notes != nil {
		rules = append(rules,
			validation.Field(&req.Notes, validation.Length(0, config.MaxNotesLength)),
		)
	}
	if req.Order != nil {
		rules = append(rules,
			validation.Field(&req.Order, validation.Min(0)),
		)
	}

	return validation.ValidateStruct(req, rules...)
}
