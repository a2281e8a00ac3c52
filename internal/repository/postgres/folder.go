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

// PostgresFolderRepository implements the FolderRepository interface
type PostgresFolderRepository struct {
	pool *pgxpool.Pool
}

// NewFolderRepository creates a new folder repository
func NewFolderRepository(config *RepositoryConfig) repositories.FolderRepository {
	return &PostgresFolderRepository{pool: config.Pool}
}

// Create creates a new folder. The id is assigned here.
func (r *PostgresFolderRepository) Create(ctx context.Context, folder *models.Folder) error {
	folder.ID = uuid.NewString()

	query := `
		INSERT INTO folders (id, user_id, parent_id, name, sort_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		folder.ID,
		folder.UserID,
		folder.ParentID,
		folder.Name,
		folder.Order,
		folder.CreatedAt,
		folder.UpdatedAt,
	).Scan(&folder.CreatedAt, &folder.UpdatedAt)

	if err != nil {
		if isPgForeignKeyError(err) {
			return fmt.Errorf("parent folder: %w", domain.ErrNotFound)
		}
		if isPgDuplicateError(err) {
			return fmt.Errorf("folder %s: %w", folder.ID, domain.ErrConflict)
		}
		return fmt.Errorf("create folder: %w", err)
	}

	return nil
}

// GetByID retrieves a folder by ID
func (r *PostgresFolderRepository) GetByID(ctx context.Context, id, userID string) (*models.Folder, error) {
	query := `
		SELECT id, user_id, parent_id, name, sort_order, created_at, updated_at
		FROM folders
		WHERE id = $1 AND user_id = $2
	`

	var folder models.Folder
	err := r.pool.QueryRow(ctx, query, id, userID).Scan(
		&folder.ID,
		&folder.UserID,
		&folder.ParentID,
		&folder.Name,
		&folder.Order,
		&folder.CreatedAt,
		&folder.UpdatedAt,
	)

	if err != nil {
		if isPgNoRowsError(err) {
			return nil, fmt.Errorf("folder %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get folder: %w", err)
	}

	return &folder, nil
}

// Update updates a folder
func (r *PostgresFolderRepository) Update(ctx context.Context, folder *models.Folder) error {
	query := `
		UPDATE folders
		SET parent_id = $1, name = $2, sort_order = $3, updated_at = $4
		WHERE id = $5 AND user_id = $6
	`

	result, err := r.pool.Exec(ctx, query,
		folder.ParentID,
		folder.Name,
		folder.Order,
		folder.UpdatedAt,
		folder.ID,
		folder.UserID,
	)

	if err != nil {
		return fmt.Errorf("update folder: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("folder %s: %w", folder.ID, domain.ErrNotFound)
	}

	return nil
}

// Delete deletes a folder; descendant folders, modules and entries go
// with it through the schema's ON DELETE CASCADE chain.
func (r *PostgresFolderRepository) Delete(ctx context.Context, id, userID string) error {
	query := `
		DELETE FROM folders
		WHERE id = $1 AND user_id = $2
	`

	result, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("delete folder: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("folder %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// CountSiblings counts folders sharing a parent
func (r *PostgresFolderRepository) CountSiblings(ctx context.Context, parentID *string, userID string) (int, error) {
	var query string
	var args []interface{}

	if parentID == nil {
		query = `SELECT count(*) FROM folders WHERE user_id = $1 AND parent_id IS NULL`
		args = append(args, userID)
	} else {
		query = `SELECT count(*) FROM folders WHERE user_id = $1 AND parent_id = $2`
		args = append(args, userID, *parentID)
	}

	var count int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count sibling folders: %w", err)
	}

	return count, nil
}

// GetAllByUser retrieves all folders for a user (flat list)
func (r *PostgresFolderRepository) GetAllByUser(ctx context.Context, userID string) ([]models.Folder, error) {
	query := `
		SELECT id, user_id, parent_id, name, sort_order, created_at, updated_at
		FROM folders
		WHERE user_id = $1
		ORDER BY sort_order ASC, created_at ASC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("get all folders: %w", err)
	}
	defer rows.Close()

	var folders []models.Folder
	for rows.Next() {
		var folder models.Folder
		err := rows.Scan(
			&folder.ID,
			&folder.UserID,
			&folder.ParentID,
			&folder.Name,
			&folder.Order,
			&folder.CreatedAt,
			&folder.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan folder: %w", err)
		}
		folders = append(folders, folder)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate folders: %w", err)
	}

	return folders, nil
}
