package usecase

import (
	"errors"
	"io"
	"testing"
	"time"

	"catalog_service/internal/domain"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type fakeCategoryRepo struct {
	createFn func(*domain.CategoryInput) (*domain.Category, error)
	getFn    func(int64) (*domain.Category, error)
	updateFn func(int64, *domain.CategoryInput) (*domain.Category, error)
	deleteFn func(int64) error
	listFn   func() ([]domain.Category, error)
}

func (f *fakeCategoryRepo) CreateCategory(input *domain.CategoryInput) (*domain.Category, error) {
	return f.createFn(input)
}

func (f *fakeCategoryRepo) GetCategoryByID(id int64) (*domain.Category, error) {
	return f.getFn(id)
}

func (f *fakeCategoryRepo) UpdateCategory(id int64, input *domain.CategoryInput) (*domain.Category, error) {
	return f.updateFn(id, input)
}

func (f *fakeCategoryRepo) DeleteCategory(id int64) error {
	return f.deleteFn(id)
}

func (f *fakeCategoryRepo) ListCategories() ([]domain.Category, error) {
	return f.listFn()
}

func someCategory(id int64, name string) *domain.Category {
	now := time.Now().UTC()
	return &domain.Category{ID: id, Name: name, CreatedAt: now, UpdatedAt: now}
}

func TestCreateCategoryPassesThrough(t *testing.T) {
	repo := &fakeCategoryRepo{
		createFn: func(input *domain.CategoryInput) (*domain.Category, error) {
			return someCategory(1, input.Name), nil
		},
	}
	uc := NewCategoryUseCase(repo, testLogger())

	created, err := uc.CreateCategory(&domain.CategoryInput{Name: "Bebidas"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "Bebidas", created.Name)
}

func TestCreateCategoryConflictPropagates(t *testing.T) {
	repo := &fakeCategoryRepo{
		createFn: func(*domain.CategoryInput) (*domain.Category, error) {
			return nil, domain.NewConflict("Category name already exists")
		},
	}
	uc := NewCategoryUseCase(repo, testLogger())

	_, err := uc.CreateCategory(&domain.CategoryInput{Name: "Bebidas"})

	require.Error(t, err)
	assert.Equal(t, domain.KindConflict, domain.KindOf(err))
}

func TestUpdateCategoryAbsentSkipsWrite(t *testing.T) {
	updateCalled := false
	repo := &fakeCategoryRepo{
		getFn: func(int64) (*domain.Category, error) {
			return nil, domain.NewNotFound("Category not found")
		},
		updateFn: func(int64, *domain.CategoryInput) (*domain.Category, error) {
			updateCalled = true
			return nil, nil
		},
	}
	uc := NewCategoryUseCase(repo, testLogger())

	_, err := uc.UpdateCategory(42, &domain.CategoryInput{Name: "Bebidas"})

	require.Error(t, err)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
	assert.False(t, updateCalled)
}

func TestUpdateCategoryOverwrites(t *testing.T) {
	repo := &fakeCategoryRepo{
		getFn: func(id int64) (*domain.Category, error) {
			return someCategory(id, "Bebidas"), nil
		},
		updateFn: func(id int64, input *domain.CategoryInput) (*domain.Category, error) {
			return someCategory(id, input.Name), nil
		},
	}
	uc := NewCategoryUseCase(repo, testLogger())

	updated, err := uc.UpdateCategory(1, &domain.CategoryInput{Name: "Sobremesas"})

	require.NoError(t, err)
	assert.Equal(t, "Sobremesas", updated.Name)
}

func TestDeleteCategoryRestrictedPropagatesBadRequest(t *testing.T) {
	repo := &fakeCategoryRepo{
		deleteFn: func(int64) error {
			// Storage-layer FK RESTRICT surfaces as a well-formed failure.
			return domain.NewBadRequest("update or delete on table \"product_categories\" violates foreign key constraint")
		},
	}
	uc := NewCategoryUseCase(repo, testLogger())

	err := uc.DeleteCategory(1)

	require.Error(t, err)
	assert.Equal(t, domain.KindBadRequest, domain.KindOf(err))
}

func TestListCategoriesInfrastructureErrorStaysUnclassified(t *testing.T) {
	repo := &fakeCategoryRepo{
		listFn: func() ([]domain.Category, error) {
			return nil, errors.New("connection refused")
		},
	}
	uc := NewCategoryUseCase(repo, testLogger())

	_, err := uc.ListCategories()

	require.Error(t, err)
	assert.Equal(t, domain.KindUnknown, domain.KindOf(err))
}
