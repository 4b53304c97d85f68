package usecase

import (
	"catalog_service/internal/domain"

	"github.com/sirupsen/logrus"
)

type CategoryUseCase interface {
	CreateCategory(input *domain.CategoryInput) (*domain.Category, error)
	GetCategoryByID(id int64) (*domain.Category, error)
	UpdateCategory(id int64, input *domain.CategoryInput) (*domain.Category, error)
	DeleteCategory(id int64) error
	ListCategories() ([]domain.Category, error)
}

type categoryUseCase struct {
	categoryRepo domain.CategoryRepository
	log          *logrus.Logger
}

func NewCategoryUseCase(repo domain.CategoryRepository, logger *logrus.Logger) CategoryUseCase {
	return &categoryUseCase{
		categoryRepo: repo,
		log:          logger,
	}
}

func (uc *categoryUseCase) CreateCategory(input *domain.CategoryInput) (*domain.Category, error) {
	uc.log.Infof("Use Case: Attempting to create category with name '%s'", input.Name)
	createdCategory, err := uc.categoryRepo.CreateCategory(input)
	if err != nil {
		uc.log.Warnf("Use Case: Repository failed to create category '%s': %v", input.Name, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Category '%s' created successfully with ID %d", createdCategory.Name, createdCategory.ID)
	return createdCategory, nil
}

func (uc *categoryUseCase) GetCategoryByID(id int64) (*domain.Category, error) {
	category, err := uc.categoryRepo.GetCategoryByID(id)
	if err != nil {
		uc.log.Warnf("Use Case: Repository failed to get category ID %d: %v", id, err)
		return nil, err
	}
	return category, nil
}

func (uc *categoryUseCase) UpdateCategory(id int64, input *domain.CategoryInput) (*domain.Category, error) {
	if _, err := uc.categoryRepo.GetCategoryByID(id); err != nil {
		uc.log.Warnf("Use Case: Category ID %d not found for update: %v", id, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Attempting to update category ID %d", id)
	updatedCategory, err := uc.categoryRepo.UpdateCategory(id, input)
	if err != nil {
		uc.log.Warnf("Use Case: Repository failed to update category ID %d: %v", id, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Category updated successfully for ID %d", updatedCategory.ID)
	return updatedCategory, nil
}

func (uc *categoryUseCase) DeleteCategory(id int64) error {
	uc.log.Infof("Use Case: Attempting to delete category ID %d", id)
	if err := uc.categoryRepo.DeleteCategory(id); err != nil {
		uc.log.Warnf("Use Case: Repository failed to delete category ID %d: %v", id, err)
		return err
	}

	uc.log.Infof("Use Case: Category deleted successfully for ID %d", id)
	return nil
}

func (uc *categoryUseCase) ListCategories() ([]domain.Category, error) {
	categories, err := uc.categoryRepo.ListCategories()
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list categories: %v", err)
		return nil, err
	}

	uc.log.Infof("Use Case: Retrieved %d categories", len(categories))
	return categories, nil
}
