package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"tempo/internal/domain"
	"tempo/internal/domain/models"
	"tempo/internal/domain/repositories"
)

// PostgresModuleRepository implements the ModuleRepository interface
type PostgresModuleRepository struct {
	pool *pgxpool.Pool
}

// NewModuleRepository creates a new module repository
func NewModuleRepository(config *RepositoryConfig) repositories.ModuleRepository {
	return &PostgresModuleRepository{pool: config.Pool}
}

// Create creates a new module. The id is assigned here.
func (r *PostgresModuleRepository) Create(ctx context.Context, module *models.Module) error {
	module.ID = uuid.NewString()

	query := `
		INSERT INTO modules (id, user_id, folder_id, name, target_hours, notes, sort_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		module.ID,
		module.UserID,
		module.FolderID,
		module.Name,
		module.TargetHours,
		module.Notes,
		module.Order,
		module.CreatedAt,
		module.UpdatedAt,
	).Scan(&module.CreatedAt, &module.UpdatedAt)

	if err != nil {
		if isPgForeignKeyError(err) {
			return fmt.Errorf("folder %s: %w", module.FolderID, domain.ErrNotFound)
		}
		if isPgDuplicateError(err) {
			return fmt.Errorf("module %s: %w", module.ID, domain.ErrConflict)
		}
		return fmt.Errorf("create module: %w", err)
	}

	return nil
}

// GetByID retrieves a module by ID
func (r *PostgresModuleRepository) GetByID(ctx context.Context, id, userID string) (*models.Module, error) {
	query := `
		SELECT id, user_id, folder_id, name, target_hours, notes, sort_order, created_at, updated_at
		FROM modules
		WHERE id = $1 AND user_id = $2
	`

	var module models.Module
	err := r.pool.QueryRow(ctx, query, id, userID).Scan(
		&module.ID,
		&module.UserID,
		&module.FolderID,
		&module.Name,
		&module.TargetHours,
		&module.Notes,
		&module.Order,
		&module.CreatedAt,
		&module.UpdatedAt,
	)

	if err != nil {
		if isPgNoRowsError(err) {
			return nil, fmt.Errorf("module %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get module: %w", err)
	}

	return &module, nil
}

// Update updates a module
func (r *PostgresModuleRepository) Update(ctx context.Context, module *models.Module) error {
	query := `
		UPDATE modules
		SET folder_id = $1, name = $2, target_hours = $3, notes = $4, sort_order = $5, updated_at = $6
		WHERE id = $7 AND user_id = $8
	`

	result, err := r.pool.Exec(ctx, query,
		module.FolderID,
		module.Name,
		module.TargetHours,
		module.Notes,
		module.Order,
		module.UpdatedAt,
		module.ID,
		module.UserID,
	)

	if err != nil {
		if isPgForeignKeyError(err) {
			return fmt.Errorf("folder %s: %w", module.FolderID, domain.ErrNotFound)
		}
		return fmt.Errorf("update module: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("module %s: %w", module.ID, domain.ErrNotFound)
	}

	return nil
}

// Delete deletes a module; its entries cascade away
func (r *PostgresModuleRepository) Delete(ctx context.Context, id, userID string) error {
	query := `
		DELETE FROM modules
		WHERE id = $1 AND user_id = $2
	`

	result, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("delete module: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("module %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// CountInFolder counts modules in a folder
func (r *PostgresModuleRepository) CountInFolder(ctx context.Context, folderID, userID string) (int, error) {
	query := `SELECT count(*) FROM modules WHERE user_id = $1 AND folder_id = $2`

	var count int
	if err := r.pool.QueryRow(ctx, query, userID, folderID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count modules in folder: %w", err)
	}

	return count, nil
}

// GetAllByUser retrieves all modules for a user (flat list)
func (r *PostgresModuleRepository) GetAllByUser(ctx context.Context, userID string) ([]models.Module, error) {
	query := `
		SELECT id, user_id, folder_id, name, target_hours, notes, sort_order, created_at, updated_at
		FROM modules
		WHERE user_id = $1
		ORDER BY sort_order ASC, created_at ASC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("get all modules: %w", err)
	}
	defer rows.Close()

	var modules []models.Module
	for rows.Next() {
		var module models.Module
		err := rows.Scan(
			&module.ID,
			&module.UserID,
			&module.FolderID,
			&module.Name,
			&module.TargetHours,
			&module.Notes,
			&module.Order,
			&module.CreatedAt,
			&module.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan module: %w", err)
		}
		modules = append(modules, module)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate modules: %w", err)
	}

	return modules, nil
}
