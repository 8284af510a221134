package repositories

import (
	"katalog/internal/models"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	GetByCategory(categoryID string) ([]models.Product, error)
	Count() (int64, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
}
