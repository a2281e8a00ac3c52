package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"tempo/internal/domain"
	"tempo/internal/domain/models"
	"tempo/internal/domain/repositories"
	"tempo/internal/domain/services"
)

type stateService struct {
	profileRepo repositories.ProfileRepository
	folderRepo  repositories.FolderRepository
	moduleRepo  repositories.ModuleRepository
	entryRepo   repositories.EntryRepository
	logger      *slog.Logger
}

// NewStateService creates a new state service
func NewStateService(
	profileRepo repositories.ProfileRepository,
	folderRepo repositories.FolderRepository,
	moduleRepo repositories.ModuleRepository,
	entryRepo repositories.EntryRepository,
	logger *slog.Logger,
) services.StateService {
	return &stateService{
		profileRepo: profileRepo,
		folderRepo:  folderRepo,
		moduleRepo:  moduleRepo,
		entryRepo:   entryRepo,
		logger:      logger,
	}
}

// GetState returns the user's entire dataset in one response. Clients
// treat it as an atomic snapshot, so all four collections are read here
// back to back rather than in separate requests.
func (s *stateService) GetState(ctx context.Context, userID string) (*models.State, error) {
	profile, err := s.profileRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	folders, err := s.folderRepo.GetAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	modules, err := s.moduleRepo.GetAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries, err := s.entryRepo.GetAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if folders == nil {
		folders = []models.Folder{}
	}
	if modules == nil {
		modules = []models.Module{}
	}
	if entries == nil {
		entries = []models.Entry{}
	}

	s.logger.Debug("state assembled",
		"user_id", userID,
		"folders", len(folders),
		"modules", len(modules),
		"entries", len(entries),
	)

	return &models.State{
		Profile: profile,
		Folders: folders,
		Modules: modules,
		Entries: entries,
	}, nil
}

type profileService struct {
	profileRepo repositories.ProfileRepository
	logger      *slog.Logger
}

// NewProfileService creates a new profile service
func NewProfileService(profileRepo repositories.ProfileRepository, logger *slog.Logger) services.ProfileService {
	return &profileService{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// GetProfile retrieves the profile, creating it on first use
func (s *profileService) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	return s.profileRepo.GetOrCreate(ctx, userID)
}

// UpdateProfile updates display name and weekly target
func (s *profileService) UpdateProfile(ctx context.Context, req *models.UpdateProfileRequest) (*models.Profile, error) {
	if err := s.validateUpdateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	profile, err := s.profileRepo.GetOrCreate(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	if req.DisplayName != nil {
		profile.DisplayName = *req.DisplayName
	}
	if req.WeeklyTargetHours != nil {
		profile.WeeklyTargetHours = req.WeeklyTargetHours
	}
	profile.UpdatedAt = time.Now()

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}

	s.logger.Info("profile updated", "id", profile.ID)

	return profile, nil
}

func (s *profileService) validateUpdateRequest(req *models.UpdateProfileRequest) error {
	if req.DisplayName == nil && req.WeeklyTargetHours == nil {
		return fmt.Errorf("at least one field must be provided")
	}

	var rules []*validation.FieldRules
	if req.DisplayName != nil {
		rules = append(rules,
			validation.Field(&req.DisplayName, validation.Length(0, 120)),
		)
	}
	if req.WeeklyTargetHours != nil {
		rules = append(rules,
			validation.Field(&req.WeeklyTargetHours, validation.Min(0.0).Exclusive()),
		)
	}

	return validation.ValidateStruct(req, rules...)
}
