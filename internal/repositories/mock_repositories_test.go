package repositories_test

import (
	"testing"

	"katalog/internal/models"
	"katalog/internal/repositories"

	"github.com/stretchr/testify/assert"
)

func TestMockCategoryRepository_GetAllSortedByName(t *testing.T) {
	repo := repositories.NewMockCategoryRepository()

	for _, name := range []string{"Trees", "Perennials", "Shrubs"} {
		category := models.Category{Name: name, Description: "sample"}
		assert.NoError(t, repo.Create(&category))
		assert.NotEmpty(t, category.ID)
	}

	categories, err := repo.GetAll()
	assert.NoError(t, err)
	if assert.Len(t, categories, 3) {
		assert.Equal(t, "Perennials", categories[0].Name)
		assert.Equal(t, "Shrubs", categories[1].Name)
		assert.Equal(t, "Trees", categories[2].Name)
	}
}

func TestMockCategoryRepository_NotFound(t *testing.T) {
	repo := repositories.NewMockCategoryRepository()

	_, err := repo.GetByID("nope")
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	_, err = repo.GetByName("nope")
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	assert.ErrorIs(t, repo.Update(&models.Category{ID: "nope"}), repositories.ErrNotFound)
	assert.ErrorIs(t, repo.Delete("nope"), repositories.ErrNotFound)
}

func TestMockProductRepository_GetByCategory(t *testing.T) {
	categories := repositories.NewMockCategoryRepository()
	repo := repositories.NewMockProductRepository(categories)

	shrubs := models.Category{Name: "Shrubs", Description: "sample"}
	assert.NoError(t, categories.Create(&shrubs))

	for _, p := range []models.Product{
		{Name: "Spirea", Description: "shrub", Price: 10.99, Stock: 5, CategoryID: shrubs.ID},
		{Name: "Buxus", Description: "shrub", Price: 5.99, Stock: 68, CategoryID: shrubs.ID},
		{Name: "Morus Alba", Description: "tree", Price: 25.99, Stock: 3},
	} {
		product := p
		assert.NoError(t, repo.Create(&product))
	}

	products, err := repo.GetByCategory(shrubs.ID)
	assert.NoError(t, err)
	if assert.Len(t, products, 2) {
		// Sorted by name ascending.
		assert.Equal(t, "Buxus", products[0].Name)
		assert.Equal(t, "Spirea", products[1].Name)
	}
}

func TestMockProductRepository_ResolvesCategory(t *testing.T) {
	categories := repositories.NewMockCategoryRepository()
	repo := repositories.NewMockProductRepository(categories)

	trees := models.Category{Name: "Trees", Description: "sample"}
	assert.NoError(t, categories.Create(&trees))

	product := models.Product{Name: "Morus Alba", Description: "tree", Price: 25.99, Stock: 3, CategoryID: trees.ID}
	assert.NoError(t, repo.Create(&product))

	got, err := repo.GetByID(product.ID)
	assert.NoError(t, err)
	if assert.NotNil(t, got.Category) {
		assert.Equal(t, "Trees", got.Category.Name)
	}

	count, err := repo.Count()
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestMockProductRepository_NotFound(t *testing.T) {
	repo := repositories.NewMockProductRepository(nil)

	_, err := repo.GetByID("nope")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.ErrorIs(t, repo.Delete("nope"), repositories.ErrNotFound)
}
