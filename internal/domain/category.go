package domain

import "time"

type Category struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CategoryInput is the payload accepted on create and update.
type CategoryInput struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Description *string `json:"description"`
}

type CategoryRepository interface {
	CreateCategory(input *CategoryInput) (*Category, error)
	GetCategoryByID(id int64) (*Category, error)
	UpdateCategory(id int64, input *CategoryInput) (*Category, error)
	DeleteCategory(id int64) error
	ListCategories() ([]Category, error)
}
