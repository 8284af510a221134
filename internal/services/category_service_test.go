package services_test

import (
	"testing"

	"katalog/internal/models"
	"katalog/internal/repositories"
	"katalog/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCategoryRepository is a mock implementation of repositories.CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) GetAll() ([]models.Category, error) {
	args := m.Called()
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetByID(id string) (*models.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetByName(name string) (*models.Category, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCategoryRepository) Create(category *models.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Update(category *models.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll() ([]models.Product, error) {
	args := m.Called()
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(id string) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByCategory(categoryID string) ([]models.Product, error) {
	args := m.Called(categoryID)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func newCategoryService() (*services.CategoryService, *MockCategoryRepository, *MockProductRepository) {
	categoryRepo := new(MockCategoryRepository)
	productRepo := new(MockProductRepository)
	return services.NewCategoryService(categoryRepo, productRepo, nil), categoryRepo, productRepo
}

func TestCategoryService_List(t *testing.T) {
	service, categoryRepo, _ := newCategoryService()

	expected := []models.Category{
		{ID: "1", Name: "Perennials"},
		{ID: "2", Name: "Shrubs"},
	}
	categoryRepo.On("GetAll").Return(expected, nil).Once()

	categories, err := service.List()

	assert.NoError(t, err)
	assert.Equal(t, expected, categories)
	categoryRepo.AssertExpectations(t)
}

func TestCategoryService_Detail(t *testing.T) {
	service, categoryRepo, productRepo := newCategoryService()

	category := &models.Category{ID: "c1", Name: "Shrubs"}
	products := []models.Product{{ID: "p1", Name: "Buxus", CategoryID: "c1"}}

	categoryRepo.On("GetByID", "c1").Return(category, nil).Once()
	productRepo.On("GetByCategory", "c1").Return(products, nil).Once()

	got, gotProducts, err := service.Detail("c1")

	assert.NoError(t, err)
	assert.Equal(t, category, got)
	assert.Equal(t, products, gotProducts)
	categoryRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
}

func TestCategoryService_Detail_NotFound(t *testing.T) {
	service, categoryRepo, productRepo := newCategoryService()

	categoryRepo.On("GetByID", "missing").Return(nil, repositories.ErrNotFound).Once()
	productRepo.On("GetByCategory", "missing").Return([]models.Product{}, nil).Maybe()

	_, _, err := service.Detail("missing")

	assert.ErrorIs(t, err, repositories.ErrNotFound)
	categoryRepo.AssertExpectations(t)
}

func TestCategoryService_Create_ShortNameFailsValidation(t *testing.T) {
	service, categoryRepo, _ := newCategoryService()

	category, fieldErrs, err := service.Create(services.CategoryInput{
		Name:        "ab",
		Description: "too short name",
	})

	assert.NoError(t, err)
	assert.Len(t, fieldErrs, 1)
	assert.Equal(t, "name", fieldErrs[0].Field)
	assert.Equal(t, "Category name must contain at least 3 characters", fieldErrs[0].Message)
	assert.Equal(t, "ab", category.Name)
	// Nothing must reach the store on a validation failure.
	categoryRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCategoryService_Create_SanitizesInput(t *testing.T) {
	service, categoryRepo, _ := newCategoryService()

	categoryRepo.On("GetByName", "Shrubs &lt;b&gt;").Return(nil, repositories.ErrNotFound).Once()
	categoryRepo.On("Create", mock.AnythingOfType("*models.Category")).Return(nil).Once()

	category, fieldErrs, err := service.Create(services.CategoryInput{
		Name:        "  Shrubs <b> ",
		Description: "Evergreen shrubs",
	})

	assert.NoError(t, err)
	assert.Empty(t, fieldErrs)
	assert.Equal(t, "Shrubs &lt;b&gt;", category.Name)
	categoryRepo.AssertExpectations(t)
}

func TestCategoryService_Create_IdempotentByName(t *testing.T) {
	service, categoryRepo, _ := newCategoryService()

	existing := &models.Category{ID: "c1", Name: "Shrubs", Description: "Evergreen shrubs"}
	categoryRepo.On("GetByName", "Shrubs").Return(existing, nil).Once()

	category, fieldErrs, err := service.Create(services.CategoryInput{
		Name:        "Shrubs",
		Description: "A duplicate submission",
	})

	assert.NoError(t, err)
	assert.Empty(t, fieldErrs)
	assert.Equal(t, existing, category)
	// The duplicate must be a pure no-op on the store.
	categoryRepo.AssertNotCalled(t, "Create", mock.Anything)
	categoryRepo.AssertExpectations(t)
}

func TestCategoryService_Update(t *testing.T) {
	service, categoryRepo, _ := newCategoryService()

	categoryRepo.On("Update", mock.AnythingOfType("*models.Category")).Return(nil).Once()

	category, fieldErrs, err := service.Update("c1", services.CategoryInput{
		Name:        "Trees",
		Description: "Deciduous and evergreen trees",
	})

	assert.NoError(t, err)
	assert.Empty(t, fieldErrs)
	assert.Equal(t, "c1", category.ID)
	assert.Equal(t, "Trees", category.Name)
	categoryRepo.AssertExpectations(t)
}

func TestCategoryService_Update_NotFound(t *testing.T) {
	service, categoryRepo, _ := newCategoryService()

	categoryRepo.On("Update", mock.AnythingOfType("*models.Category")).Return(repositories.ErrNotFound).Once()

	_, _, err := service.Update("missing", services.CategoryInput{
		Name:        "Trees",
		Description: "Deciduous and evergreen trees",
	})

	assert.ErrorIs(t, err, repositories.ErrNotFound)
	categoryRepo.AssertExpectations(t)
}

func TestCategoryService_Delete_BlockedByProducts(t *testing.T) {
	service, categoryRepo, productRepo := newCategoryService()

	category := &models.Category{ID: "c1", Name: "Shrubs"}
	blocking := []models.Product{{ID: "p1", Name: "Buxus", CategoryID: "c1"}}

	categoryRepo.On("GetByID", "c1").Return(category, nil).Once()
	productRepo.On("GetByCategory", "c1").Return(blocking, nil).Once()

	result, err := service.Delete("c1")

	assert.NoError(t, err)
	assert.False(t, result.Deleted)
	assert.Equal(t, category, result.Category)
	assert.Equal(t, blocking, result.Products)
	categoryRepo.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestCategoryService_Delete_NoProducts(t *testing.T) {
	service, categoryRepo, productRepo := newCategoryService()

	category := &models.Category{ID: "c1", Name: "Shrubs"}

	categoryRepo.On("GetByID", "c1").Return(category, nil).Once()
	productRepo.On("GetByCategory", "c1").Return([]models.Product{}, nil).Once()
	categoryRepo.On("Delete", "c1").Return(nil).Once()

	result, err := service.Delete("c1")

	assert.NoError(t, err)
	assert.True(t, result.Deleted)
	assert.Empty(t, result.Products)
	categoryRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
}
