package usecase

import (
	"fmt"

	"catalog_service/internal/domain"

	"github.com/sirupsen/logrus"
)

type ProductUseCase interface {
	CreateProduct(input *domain.ProductInput) (*domain.Product, error)
	GetProductByID(id int64) (*domain.Product, error)
	UpdateProduct(id int64, input *domain.ProductInput) (*domain.Product, error)
	DeleteProduct(id int64) error
	ListProducts(categoryID int64) ([]domain.Product, error)
}

type productUseCase struct {
	productRepo  domain.ProductRepository
	categoryRepo domain.CategoryRepository
	log          *logrus.Logger
}

func NewProductUseCase(pRepo domain.ProductRepository, cRepo domain.CategoryRepository, logger *logrus.Logger) ProductUseCase {
	return &productUseCase{
		productRepo:  pRepo,
		categoryRepo: cRepo,
		log:          logger,
	}
}

// checkCategoryExists is the pre-insert referential check. The FK constraint
// in the storage layer remains the backstop for races.
func (uc *productUseCase) checkCategoryExists(categoryID int64) error {
	_, err := uc.categoryRepo.GetCategoryByID(categoryID)
	if err == nil {
		return nil
	}
	if domain.KindOf(err) == domain.KindNotFound {
		uc.log.Warnf("Use Case: Category ID %d does not exist", categoryID)
		return domain.NewBadRequest(fmt.Sprintf("Category with id %d does not exist", categoryID))
	}
	return err
}

func (uc *productUseCase) CreateProduct(input *domain.ProductInput) (*domain.Product, error) {
	if err := uc.checkCategoryExists(input.CategoryID); err != nil {
		return nil, err
	}

	uc.log.Infof("Use Case: Attempting to create product '%s'", input.Name)
	createdProduct, err := uc.productRepo.CreateProduct(input)
	if err != nil {
		uc.log.Warnf("Use Case: Repository failed to create product '%s': %v", input.Name, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Product '%s' created successfully with ID %d", createdProduct.Name, createdProduct.ID)
	return createdProduct, nil
}

func (uc *productUseCase) GetProductByID(id int64) (*domain.Product, error) {
	product, err := uc.productRepo.GetProductByID(id)
	if err != nil {
		uc.log.Warnf("Use Case: Repository failed to get product ID %d: %v", id, err)
		return nil, err
	}
	return product, nil
}

func (uc *productUseCase) UpdateProduct(id int64, input *domain.ProductInput) (*domain.Product, error) {
	if _, err := uc.productRepo.GetProductByID(id); err != nil {
		uc.log.Warnf("Use Case: Product ID %d not found for update: %v", id, err)
		return nil, err
	}

	if err := uc.checkCategoryExists(input.CategoryID); err != nil {
		return nil, err
	}

	uc.log.Infof("Use Case: Attempting to update product ID %d", id)
	updatedProduct, err := uc.productRepo.UpdateProduct(id, input)
	if err != nil {
		uc.log.Warnf("Use Case: Repository failed to update product ID %d: %v", id, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Product updated successfully for ID %d", updatedProduct.ID)
	return updatedProduct, nil
}

func (uc *productUseCase) DeleteProduct(id int64) error {
	uc.log.Infof("Use Case: Attempting to delete product ID %d", id)
	if err := uc.productRepo.DeleteProduct(id); err != nil {
		uc.log.Warnf("Use Case: Repository failed to delete product ID %d: %v", id, err)
		return err
	}

	uc.log.Infof("Use Case: Product deleted successfully for ID %d", id)
	return nil
}

func (uc *productUseCase) ListProducts(categoryID int64) ([]domain.Product, error) {
	products, err := uc.productRepo.ListProducts(categoryID)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list products: %v", err)
		return nil, err
	}

	uc.log.Infof("Use Case: Retrieved %d products", len(products))
	return products, nil
}
