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

type entryService struct {
	entryRepo  repositories.EntryRepository
	moduleRepo repositories.ModuleRepository
	logger     *slog.Logger
}

// NewEntryService creates a new entry service
func NewEntryService(
	entryRepo repositories.EntryRepository,
	moduleRepo repositories.ModuleRepository,
	logger *slog.Logger,
) services.EntryService {
	return &entryService{
		entryRepo:  entryRepo,
		moduleRepo: moduleRepo,
		logger:     logger,
	}
}

// CreateEntry logs a block of time against an existing module
func (s *entryService) CreateEntry(ctx context.Context, req *models.CreateEntryRequest) (*models.Entry, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	if _, err := s.moduleRepo.GetByID(ctx, req.ModuleID, req.UserID); err != nil {
		return nil, fmt.Errorf("module not found: %w", err)
	}

	entry := &models.Entry{
		UserID:        req.UserID,
		ModuleID:      req.ModuleID,
		ActivityType:  req.ActivityType,
		Description:   req.Description,
		DurationHours: req.DurationHours,
		Date:          req.Date,
		CreatedAt:     time.Now(),
	}

	if err := s.entryRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	s.logger.Info("entry created",
		"id", entry.ID,
		"module_id", entry.ModuleID,
		"hours", entry.DurationHours,
		"date", entry.Date,
	)

	return entry, nil
}

// GetEntry retrieves an entry
func (s *entryService) GetEntry(ctx context.Context, id, userID string) (*models.Entry, error) {
	return s.entryRepo.GetByID(ctx, id, userID)
}

// UpdateEntry updates an entry; created_at stays as it was
func (s *entryService) UpdateEntry(ctx context.Context, id string, req *models.UpdateEntryRequest) (*models.Entry, error) {
	if err := s.validateUpdateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	entry, err := s.entryRepo.GetByID(ctx, id, req.UserID)
	if err != nil {
		return nil, err
	}

	if req.ModuleID != nil {
		if _, err := s.moduleRepo.GetByID(ctx, *req.ModuleID, req.UserID); err != nil {
			return nil, fmt.Errorf("module not found: %w", err)
		}
		entry.ModuleID = *req.ModuleID
	}
	if req.ActivityType != nil {
		entry.ActivityType = *req.ActivityType
	}
	if req.Description != nil {
		entry.Description = *req.Description
	}
	if req.DurationHours != nil {
		entry.DurationHours = *req.DurationHours
	}
	if req.Date != nil {
		entry.Date = *req.Date
	}

	if err := s.entryRepo.Update(ctx, entry); err != nil {
		return nil, err
	}

	s.logger.Info("entry updated", "id", entry.ID, "hours", entry.DurationHours)

	return entry, nil
}

// DeleteEntry deletes an entry
func (s *entryService) DeleteEntry(ctx context.Context, id, userID string) error {
	if _, err := s.entryRepo.GetByID(ctx, id, userID); err != nil {
		return err
	}

	if err := s.entryRepo.Delete(ctx, id, userID); err != nil {
		return err
	}

	s.logger.Info("entry deleted", "id", id)

	return nil
}

func (s *entryService) validateCreateRequest(req *models.CreateEntryRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.ModuleID, validation.Required),
		validation.Field(&req.ActivityType,
			validation.Required,
			validation.Length(1, config.MaxActivityTypeLength),
		),
		validation.Field(&req.Description, validation.Length(0, config.MaxDescriptionLength)),
		validation.Field(&req.DurationHours,
			validation.Required,
			validation.Min(0.0).Exclusive(),
			validation.Max(config.MaxEntryHours),
		),
		validation.Field(&req.Date,
			validation.Required,
			validation.Date(models.EntryDateLayout),
		),
	)
}

func (s *entryService) validateUpdateRequest(req *models.UpdateEntryRequest) error {
	if req.ModuleID == nil && req.ActivityType == nil && req.Description == nil && req.DurationHours == nil && req.Date == nil {
		return fmt.Errorf("at least one field must be provided")
	}

	var rules []*validation.FieldRules
	if req.ActivityType != nil {
		rules = append(rules,
			validation.Field(&req.ActivityType,
				validation.Required,
				validation.Length(1, config.MaxActivityTypeLength),
			),
		)
	}
	if req.Description != nil {
		rules = append(rules,
			validation.Field(&req.Description, validation.Length(0, config.MaxDescriptionLength)),
		)
	}
	if req.DurationHours != nil {
		rules = append(rules,
			validation.Field(&req.DurationHours,
				validation.Min(0.0).Exclusive(),
				validation.Max(config.MaxEntryHours),
			),
		)
	}
	if req.Date != nil {
		rules = append(rules,
			validation.Field(&req.Date, validation.Date(models.EntryDateLayout)),
		)
	}

	return validation.ValidateStruct(req, rules...)
}
