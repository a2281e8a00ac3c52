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

type folderService struct {
	folderRepo repositories.FolderRepository
	logger     *slog.Logger
}

// NewFolderService creates a new folder service
func NewFolderService(folderRepo repositories.FolderRepository, logger *slog.Logger) services.FolderService {
	return &folderService{
		folderRepo: folderRepo,
		logger:     logger,
	}
}

// CreateFolder creates a new folder. The sort order is the current
// sibling count, so new folders land at the end of their level.
func (s *folderService) CreateFolder(ctx context.Context, req *models.CreateFolderRequest) (*models.Folder, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	// Normalize empty string to nil for root-level folders
	if req.ParentID != nil && *req.ParentID == "" {
		req.ParentID = nil
	}

	if req.ParentID != nil {
		if _, err := s.folderRepo.GetByID(ctx, *req.ParentID, req.UserID); err != nil {
			return nil, fmt.Errorf("parent folder not found: %w", err)
		}
	}

	order, err := s.folderRepo.CountSiblings(ctx, req.ParentID, req.UserID)
	if err != nil {
		return nil, err
	}

	folder := &models.Folder{
		UserID:    req.UserID,
		ParentID:  req.ParentID,
		Name:      req.Name,
		Order:     order,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.folderRepo.Create(ctx, folder); err != nil {
		return nil, err
	}

	s.logger.Info("folder created",
		"id", folder.ID,
		"name", folder.Name,
		"parent_id", folder.ParentID,
		"order", folder.Order,
	)

	return folder, nil
}

// GetFolder retrieves a folder
func (s *folderService) GetFolder(ctx context.Context, id, userID string) (*models.Folder, error) {
	return s.folderRepo.GetByID(ctx, id, userID)
}

// UpdateFolder updates a folder (rename, reorder or move)
func (s *folderService) UpdateFolder(ctx context.Context, id string, req *models.UpdateFolderRequest) (*models.Folder, error) {
	if err := s.validateUpdateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	folder, err := s.folderRepo.GetByID(ctx, id, req.UserID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		folder.Name = *req.Name
	}
	if req.Order != nil {
		folder.Order = *req.Order
	}

	if req.ParentID != nil {
		if *req.ParentID != "" {
			parent, err := s.folderRepo.GetByID(ctx, *req.ParentID, req.UserID)
			if err != nil {
				return nil, fmt.Errorf("parent folder not found: %w", err)
			}

			// A parent_id cycle would make the client's recursive tree
			// build never terminate, so moves into the folder's own
			// subtree are rejected here at write time.
			if err := s.validateNoCircularReference(ctx, id, *req.ParentID, req.UserID); err != nil {
				return nil, err
			}

			folder.ParentID = &parent.ID
		} else {
			// Move to root
			folder.ParentID = nil
		}
	}

	folder.UpdatedAt = time.Now()

	if err := s.folderRepo.Update(ctx, folder); err != nil {
		return nil, err
	}

	s.logger.Info("folder updated",
		"id", folder.ID,
		"name", folder.Name,
		"parent_id", folder.ParentID,
	)

	return folder, nil
}

// DeleteFolder deletes a folder; descendant folders, modules and
// entries cascade away on the database side. Clients refetch their
// state afterward because the cascade can remove rows they hold.
func (s *folderService) DeleteFolder(ctx context.Context, id, userID string) error {
	folder, err := s.folderRepo.GetByID(ctx, id, userID)
	if err != nil {
		return err
	}

	if err := s.folderRepo.Delete(ctx, id, userID); err != nil {
		return err
	}

	s.logger.Info("folder deleted",
		"id", id,
		"name", folder.Name,
	)

	return nil
}

func (s *folderService) validateCreateRequest(req *models.CreateFolderRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Name,
			validation.Required,
			validation.Length(1, config.MaxFolderNameLength),
		),
	)
}

func (s *folderService) validateUpdateRequest(req *models.UpdateFolderRequest) error {
	if req.Name == nil && req.ParentID == nil && req.Order == nil {
		return fmt.Errorf("at least one field must be provided")
	}

	var rules []*validation.FieldRules
	if req.Name != nil {
		rules = append(rules,
			validation.Field(&req.Name,
				validation.Required,
				validation.Length(1, config.MaxFolderNameLength),
			),
		)
	}
	if req.Order != nil {
		rules = append(rules,
			validation.Field(&req.Order, validation.Min(0)),
		)
	}

	return validation.ValidateStruct(req, rules...)
}

// validateNoCircularReference ensures moving a folder won't create a
// cycle: the new parent must not be the folder itself or any folder
// whose ancestor chain passes through it.
func (s *folderService) validateNoCircularReference(ctx context.Context, folderID, newParentID, userID string) error {
	if folderID == newParentID {
		return fmt.Errorf("%w: cannot move folder into itself", domain.ErrValidation)
	}

	currentID := newParentID
	for {
		current, err := s.folderRepo.GetByID(ctx, currentID, userID)
		if err != nil {
			return err
		}

		if current.ParentID == nil {
			return nil
		}

		if *current.ParentID == folderID {
			return fmt.Errorf("%w: cannot move folder into its own subtree", domain.ErrValidation)
		}

		currentID = *current.ParentID
	}
}
