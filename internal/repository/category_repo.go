package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"catalog_service/internal/domain"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

// Postgres SQLSTATE codes used to classify write failures.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

type postgresCategoryRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewPostgresCategoryRepository(db *sql.DB, logger *logrus.Logger) domain.CategoryRepository {
	return &postgresCategoryRepository{
		db:  db,
		log: logger,
	}
}

func scanCategory(row interface{ Scan(...any) error }) (*domain.Category, error) {
	category := &domain.Category{}
	var description sql.NullString
	err := row.Scan(&category.ID, &category.Name, &description, &category.CreatedAt, &category.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if description.Valid {
		category.Description = &description.String
	}
	return category, nil
}

func (r *postgresCategoryRepository) CreateCategory(input *domain.CategoryInput) (*domain.Category, error) {
	query := `
        INSERT INTO product_categories (name, description)
        VALUES ($1, $2)
        RETURNING id, name, description, created_at, updated_at`
	category, err := scanCategory(r.db.QueryRow(query, input.Name, input.Description))
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			r.log.Warnf("Attempted to create category with duplicate name: %s", input.Name)
			return nil, domain.NewConflict("Category name already exists")
		}
		r.log.Errorf("Failed to create category '%s': %v", input.Name, err)
		return nil, domain.NewBadRequest(err.Error())
	}
	r.log.Infof("Category created successfully with ID: %d, Name: %s", category.ID, category.Name)
	return category, nil
}

func (r *postgresCategoryRepository) GetCategoryByID(id int64) (*domain.Category, error) {
	query := `
        SELECT id, name, description, created_at, updated_at
        FROM product_categories
        WHERE id = $1`
	category, err := scanCategory(r.db.QueryRow(query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.Warnf("Category with ID %d not found", id)
			return nil, domain.NewNotFound("Category not found")
		}
		r.log.Errorf("Failed to get category by ID %d: %v", id, err)
		return nil, fmt.Errorf("could not get category by id: %w", err)
	}
	return category, nil
}

func (r *postgresCategoryRepository) UpdateCategory(id int64, input *domain.CategoryInput) (*domain.Category, error) {
	query := `
        UPDATE product_categories
        SET name = $1, description = $2, updated_at = now()
        WHERE id = $3
        RETURNING id, name, description, created_at, updated_at`
	category, err := scanCategory(r.db.QueryRow(query, input.Name, input.Description, id))
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			r.log.Warnf("Attempted to update category ID %d with duplicate name: %s", id, input.Name)
			return nil, domain.NewConflict("Category name already exists")
		}
		if errors.Is(err, sql.ErrNoRows) {
			r.log.Warnf("Category with ID %d not found for update", id)
			return nil, domain.NewNotFound("Category not found")
		}
		r.log.Errorf("Failed to update category ID %d: %v", id, err)
		return nil, domain.NewBadRequest(err.Error())
	}
	r.log.Infof("Category updated successfully with ID: %d", category.ID)
	return category, nil
}

func (r *postgresCategoryRepository) DeleteCategory(id int64) error {
	query := `DELETE FROM product_categories WHERE id = $1`
	result, err := r.db.Exec(query, id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgForeignKeyViolation {
			r.log.Warnf("Attempted to delete category ID %d that still has products", id)
			return domain.NewBadRequest(pqErr.Message)
		}
		r.log.Errorf("Failed to delete category ID %d: %v", id, err)
		return domain.NewBadRequest(err.Error())
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.Errorf("Failed to get rows affected after deleting category ID %d: %v", id, err)
		return fmt.Errorf("could not confirm category deletion: %w", err)
	}

	if rowsAffected == 0 {
		r.log.Warnf("Attempted to delete non-existent category ID %d", id)
		return domain.NewNotFound("Category not found")
	}

	r.log.Infof("Category deleted successfully with ID: %d", id)
	return nil
}

func (r *postgresCategoryRepository) ListCategories() ([]domain.Category, error) {
	query := `
        SELECT id, name, description, created_at, updated_at
        FROM product_categories
        ORDER BY id ASC`
	rows, err := r.db.Query(query)
	if err != nil {
		r.log.Errorf("Failed to list categories: %v", err)
		return nil, fmt.Errorf("could not list categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			r.log.Errorf("Failed to scan category row: %v", err)
			return nil, fmt.Errorf("error scanning category data: %w", err)
		}
		categories = append(categories, *category)
	}

	if err = rows.Err(); err != nil {
		r.log.Errorf("Error during categories list iteration: %v", err)
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	r.log.Infof("Retrieved %d categories", len(categories))
	return categories, nil
}
