package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"catalog_service/internal/domain"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

type postgresProductRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewPostgresProductRepository(db *sql.DB, logger *logrus.Logger) domain.ProductRepository {
	return &postgresProductRepository{
		db:  db,
		log: logger,
	}
}

func scanProduct(row interface{ Scan(...any) error }) (*domain.Product, error) {
	product := &domain.Product{}
	var description, imageURL sql.NullString
	err := row.Scan(
		&product.ID,
		&product.Name,
		&description,
		&product.Price,
		&imageURL,
		&product.PreparationTime,
		&product.CategoryID,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if description.Valid {
		product.Description = &description.String
	}
	if imageURL.Valid {
		product.ImageURL = &imageURL.String
	}
	return product, nil
}

func (r *postgresProductRepository) CreateProduct(input *domain.ProductInput) (*domain.Product, error) {
	query := `
        INSERT INTO products (name, description, price, image_url, preparation_time, category_id)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, name, description, price, image_url, preparation_time, category_id, created_at, updated_at`
	product, err := scanProduct(r.db.QueryRow(query,
		input.Name,
		input.Description,
		input.Price,
		input.ImageURL,
		input.PreparationTime,
		input.CategoryID,
	))
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch string(pqErr.Code) {
			case pgUniqueViolation:
				r.log.Warnf("Attempted to create product with duplicate name: %s", input.Name)
				return nil, domain.NewConflict("Product name already exists")
			case pgForeignKeyViolation:
				r.log.Warnf("Attempted to create product with non-existent category ID: %d", input.CategoryID)
				return nil, domain.NewBadRequest(fmt.Sprintf("Category with id %d does not exist", input.CategoryID))
			}
		}
		r.log.Errorf("Failed to create product '%s': %v", input.Name, err)
		return nil, domain.NewBadRequest(err.Error())
	}
	r.log.Infof("Product created successfully with ID: %d, Name: %s", product.ID, product.Name)
	return product, nil
}

func (r *postgresProductRepository) GetProductByID(id int64) (*domain.Product, error) {
	query := `
        SELECT id, name, description, price, image_url, preparation_time, category_id, created_at, updated_at
        FROM products
        WHERE id = $1`
	product, err := scanProduct(r.db.QueryRow(query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.Warnf("Product with ID %d not found", id)
			return nil, domain.NewNotFound("Product not found")
		}
		r.log.Errorf("Failed to get product by ID %d: %v", id, err)
		return nil, fmt.Errorf("could not get product by id: %w", err)
	}
	return product, nil
}

func (r *postgresProductRepository) UpdateProduct(id int64, input *domain.ProductInput) (*domain.Product, error) {
	query := `
        UPDATE products
        SET name = $1, description = $2, price = $3, image_url = $4,
            preparation_time = $5, category_id = $6, updated_at = now()
        WHERE id = $7
        RETURNING id, name, description, price, image_url, preparation_time, category_id, created_at, updated_at`
	product, err := scanProduct(r.db.QueryRow(query,
		input.Name,
		input.Description,
		input.Price,
		input.ImageURL,
		input.PreparationTime,
		input.CategoryID,
		id,
	))
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch string(pqErr.Code) {
			case pgUniqueViolation:
				r.log.Warnf("Attempted to update product ID %d with duplicate name: %s", id, input.Name)
				return nil, domain.NewConflict("Product name already exists")
			case pgForeignKeyViolation:
				r.log.Warnf("Attempted to update product ID %d with non-existent category ID: %d", id, input.CategoryID)
				return nil, domain.NewBadRequest(fmt.Sprintf("Category with id %d does not exist", input.CategoryID))
			}
		}
		if errors.Is(err, sql.ErrNoRows) {
			r.log.Warnf("Product with ID %d not found for update", id)
			return nil, domain.NewNotFound("Product not found")
		}
		r.log.Errorf("Failed to update product ID %d: %v", id, err)
		return nil, domain.NewBadRequest(err.Error())
	}
	r.log.Infof("Product updated successfully with ID: %d", product.ID)
	return product, nil
}

func (r *postgresProductRepository) DeleteProduct(id int64) error {
	query := `DELETE FROM products WHERE id = $1`
	result, err := r.db.Exec(query, id)
	if err != nil {
		r.log.Errorf("Failed to delete product ID %d: %v", id, err)
		return domain.NewBadRequest(err.Error())
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.Errorf("Failed to get rows affected after deleting product ID %d: %v", id, err)
		return fmt.Errorf("could not confirm product deletion: %w", err)
	}

	if rowsAffected == 0 {
		r.log.Warnf("Attempted to delete non-existent product ID %d", id)
		return domain.NewNotFound("Product not found")
	}

	r.log.Infof("Product deleted successfully with ID: %d", id)
	return nil
}

func (r *postgresProductRepository) ListProducts(categoryID int64) ([]domain.Product, error) {
	query := `
        SELECT id, name, description, price, image_url, preparation_time, category_id, created_at, updated_at
        FROM products
        ORDER BY id ASC`
	args := []any{}
	if categoryID > 0 {
		query = `
        SELECT id, name, description, price, image_url, preparation_time, category_id, created_at, updated_at
        FROM products
        WHERE category_id = $1
        ORDER BY id ASC`
		args = append(args, categoryID)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		r.log.Errorf("Failed to list products: %v", err)
		return nil, fmt.Errorf("could not list products: %w", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			r.log.Errorf("Failed to scan product row: %v", err)
			return nil, fmt.Errorf("error scanning product data: %w", err)
		}
		products = append(products, *product)
	}

	if err = rows.Err(); err != nil {
		r.log.Errorf("Error during products list iteration: %v", err)
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	r.log.Infof("Retrieved %d products", len(products))
	return products, nil
}
