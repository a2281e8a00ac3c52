package postgres

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"tempo/internal/domain"
	"tempo/internal/domain/models"
	"tempo/internal/domain/repositories"
)

// PostgresEntryRepository implements the EntryRepository interface.
//
// Durations cross this boundary in hours but are stored as whole
// minutes: round(hours*60) on the way in, minutes/60 on the way out.
// Values on minute boundaries (every quarter hour included) round-trip
// exactly; nothing above this layer ever re-applies the rounding.
type PostgresEntryRepository struct {
	pool *pgxpool.Pool
}

// NewEntryRepository creates a new entry repository
func NewEntryRepository(config *RepositoryConfig) repositories.EntryRepository {
	return &PostgresEntryRepository{pool: config.Pool}
}

func hoursToMinutes(hours float64) int {
	return int(math.Round(hours * 60))
}

func minutesToHours(minutes int) float64 {
	return float64(minutes) / 60
}

// Create creates a new entry. The id is assigned here.
func (r *PostgresEntryRepository) Create(ctx context.Context, entry *models.Entry) error {
	entry.ID = uuid.NewString()

	query := `
		INSERT INTO entries (id, user_id, module_id, activity_type, description, duration_minutes, entry_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7::date, $8)
		RETURNING duration_minutes, created_at
	`

	var minutes int
	err := r.pool.QueryRow(ctx, query,
		entry.ID,
		entry.UserID,
		entry.ModuleID,
		entry.ActivityType,
		entry.Description,
		hoursToMinutes(entry.DurationHours),
		entry.Date,
		entry.CreatedAt,
	).Scan(&minutes, &entry.CreatedAt)

	if err != nil {
		if isPgForeignKeyError(err) {
			return fmt.Errorf("module %s: %w", entry.ModuleID, domain.ErrNotFound)
		}
		if isPgDuplicateError(err) {
			return fmt.Errorf("entry %s: %w", entry.ID, domain.ErrConflict)
		}
		return fmt.Errorf("create entry: %w", err)
	}

	entry.DurationHours = minutesToHours(minutes)
	return nil
}

// GetByID retrieves an entry by ID
func (r *PostgresEntryRepository) GetByID(ctx context.Context, id, userID string) (*models.Entry, error) {
	query := `
		SELECT id, user_id, module_id, activity_type, description, duration_minutes, entry_date::text, created_at
		FROM entries
		WHERE id = $1 AND user_id = $2
	`

	entry, err := scanEntry(r.pool.QueryRow(ctx, query, id, userID))
	if err != nil {
		if isPgNoRowsError(err) {
			return nil, fmt.Errorf("entry %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get entry: %w", err)
	}

	return entry, nil
}

// Update updates an entry. created_at is immutable and not touched.
func (r *PostgresEntryRepository) Update(ctx context.Context, entry *models.Entry) error {
	query := `
		UPDATE entries
		SET module_id = $1, activity_type = $2, description = $3, duration_minutes = $4, entry_date = $5::date
		WHERE id = $6 AND user_id = $7
		RETURNING duration_minutes
	`

	var minutes int
	err := r.pool.QueryRow(ctx, query,
		entry.ModuleID,
		entry.ActivityType,
		entry.Description,
		hoursToMinutes(entry.DurationHours),
		entry.Date,
		entry.ID,
		entry.UserID,
	).Scan(&minutes)

	if err != nil {
		if isPgNoRowsError(err) {
			return fmt.Errorf("entry %s: %w", entry.ID, domain.ErrNotFound)
		}
		if isPgForeignKeyError(err) {
			return fmt.Errorf("module %s: %w", entry.ModuleID, domain.ErrNotFound)
		}
		return fmt.Errorf("update entry: %w", err)
	}

	entry.DurationHours = minutesToHours(minutes)
	return nil
}

// Delete deletes an entry
func (r *PostgresEntryRepository) Delete(ctx context.Context, id, userID string) error {
	query := `
		DELETE FROM entries
		WHERE id = $1 AND user_id = $2
	`

	result, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("entry %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// GetAllByUser retrieves all entries for a user, newest first
func (r *PostgresEntryRepository) GetAllByUser(ctx context.Context, userID string) ([]models.Entry, error) {
	query := `
		SELECT id, user_id, module_id, activity_type, description, duration_minutes, entry_date::text, created_at
		FROM entries
		WHERE user_id = $1
		ORDER BY entry_date DESC, created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("get all entries: %w", err)
	}
	defer rows.Close()

	var entries []models.Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entries = append(entries, *entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}

	return entries, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEntry(row rowScanner) (*models.Entry, error) {
	var entry models.Entry
	var minutes int
	err := row.Scan(
		&entry.ID,
		&entry.UserID,
		&entry.ModuleID,
		&entry.ActivityType,
		&entry.Description,
		&minutes,
		&entry.Date,
		&entry.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	entry.DurationHours = minutesToHours(minutes)
	return &entry, nil
}
