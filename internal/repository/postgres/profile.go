package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"tempo/internal/domain"
	"tempo/internal/domain/models"
	"tempo/internal/domain/repositories"
)

// PostgresProfileRepository implements the ProfileRepository interface
type PostgresProfileRepository struct {
	pool *pgxpool.Pool
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(config *RepositoryConfig) repositories.ProfileRepository {
	return &PostgresProfileRepository{pool: config.Pool}
}

// GetOrCreate retrieves the profile, inserting a blank row the first
// time a user shows up.
func (r *PostgresProfileRepository) GetOrCreate(ctx context.Context, userID string) (*models.Profile, error) {
	query := `
		INSERT INTO profiles (id, created_at, updated_at)
		VALUES ($1, $2, $2)
		ON CONFLICT (id) DO UPDATE SET id = EXCLUDED.id
		RETURNING id, display_name, email, weekly_target_hours, created_at, updated_at
	`

	var profile models.Profile
	err := r.pool.QueryRow(ctx, query, userID, time.Now()).Scan(
		&profile.ID,
		&profile.DisplayName,
		&profile.Email,
		&profile.WeeklyTargetHours,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("get or create profile: %w", err)
	}

	return &profile, nil
}

// Update updates the profile
func (r *PostgresProfileRepository) Update(ctx context.Context, profile *models.Profile) error {
	query := `
		UPDATE profiles
		SET display_name = $1, email = $2, weekly_target_hours = $3, updated_at = $4
		WHERE id = $5
	`

	result, err := r.pool.Exec(ctx, query,
		profile.DisplayName,
		profile.Email,
		profile.WeeklyTargetHours,
		profile.UpdatedAt,
		profile.ID,
	)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("profile %s: %w", profile.ID, domain.ErrNotFound)
	}

	return nil
}
