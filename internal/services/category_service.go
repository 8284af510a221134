package services

import (
	"errors"
	"fmt"
	"log"

	"katalog/internal/models"
	"katalog/internal/repositories"
	"katalog/internal/validation"
	"katalog/pkg/rabbitmq"

	"golang.org/x/sync/errgroup"
)

// CategoryService handles business logic related to categories.
type CategoryService struct {
	categoryRepo repositories.CategoryRepository
	productRepo  repositories.ProductRepository
	mqClient     *rabbitmq.Client
}

// NewCategoryService creates a new CategoryService. The RabbitMQ client
// may be nil; catalog events are then skipped.
func NewCategoryService(categoryRepo repositories.CategoryRepository, productRepo repositories.ProductRepository, mqClient *rabbitmq.Client) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		mqClient:     mqClient,
	}
}

// CategoryInput carries the raw form values for creating or updating a
// category.
type CategoryInput struct {
	Name        string
	Description string
}

// CategoryDeletion is the outcome of a category delete request. When
// referencing products exist the delete is refused and the payload holds
// the same data the confirmation view shows.
type CategoryDeletion struct {
	Category *models.Category
	Products []models.Product
	Deleted  bool
}

// List retrieves all categories ordered by name ascending.
func (s *CategoryService) List() ([]models.Category, error) {
	return s.categoryRepo.GetAll()
}

// Get retrieves a single category by its ID.
func (s *CategoryService) Get(id string) (*models.Category, error) {
	return s.categoryRepo.GetByID(id)
}

// Detail retrieves a category together with all products referencing it.
// The two independent reads are issued concurrently.
func (s *CategoryService) Detail(id string) (*models.Category, []models.Product, error) {
	var (
		category *models.Category
		products []models.Product
	)

	g := new(errgroup.Group)
	g.Go(func() error {
		var err error
		category, err = s.categoryRepo.GetByID(id)
		return err
	})
	g.Go(func() error {
		var err error
		products, err = s.productRepo.GetByCategory(id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return category, products, nil
}

// Create validates the submitted fields and inserts a new category. When
// a category with the same name already exists the request is a no-op
// and the existing category is returned. On validation failure the
// sanitized, unsaved category is returned together with the field errors
// and nothing is written to the store.
func (s *CategoryService) Create(in CategoryInput) (*models.Category, []validation.FieldError, error) {
	sanitized, errs := validation.Apply(validation.Values{
		"name":        in.Name,
		"description": in.Description,
	}, validation.CategoryRules())

	category := &models.Category{
		Name:        sanitized["name"],
		Description: sanitized["description"],
	}
	if len(errs) > 0 {
		return category, errs, nil
	}

	existing, err := s.categoryRepo.GetByName(category.Name)
	if err == nil {
		// Same name already present: yield the existing category untouched.
		return existing, nil, nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, nil, fmt.Errorf("failed to check for existing category: %w", err)
	}

	if err := s.categoryRepo.Create(category); err != nil {
		return nil, nil, err
	}
	s.publishEvent("created", category)
	return category, nil, nil
}

// Update validates the submitted fields and overwrites the category
// record at id in full, preserving the ID.
func (s *CategoryService) Update(id string, in CategoryInput) (*models.Category, []validation.FieldError, error) {
	sanitized, errs := validation.Apply(validation.Values{
		"name":        in.Name,
		"description": in.Description,
	}, validation.CategoryRules())

	category := &models.Category{
		ID:          id,
		Name:        sanitized["name"],
		Description: sanitized["description"],
	}
	if len(errs) > 0 {
		return category, errs, nil
	}

	if err := s.categoryRepo.Update(category); err != nil {
		return nil, nil, err
	}
	s.publishEvent("updated", category)
	return category, nil, nil
}

// Delete loads the category and all referencing products concurrently.
// When any products still reference the category the delete is refused
// and the blocked payload is returned; otherwise the category is removed.
func (s *CategoryService) Delete(id string) (*CategoryDeletion, error) {
	category, products, err := s.Detail(id)
	if err != nil {
		return nil, err
	}

	if len(products) > 0 {
		return &CategoryDeletion{Category: category, Products: products}, nil
	}

	// A product referencing the category can slip in between the check
	// above and this delete; the design accepts that race.
	if err := s.categoryRepo.Delete(id); err != nil {
		return nil, err
	}
	s.publishEvent("deleted", category)
	return &CategoryDeletion{Category: category, Deleted: true}, nil
}

func (s *CategoryService) publishEvent(action string, category *models.Category) {
	if s.mqClient == nil {
		return
	}
	event := map[string]interface{}{
		"categoryID": category.ID,
		"name":       category.Name,
	}
	routingKey := "catalog.category." + action
	if err := s.mqClient.PublishCatalogEvent(routingKey, event); err != nil {
		log.Printf("Warning: Failed to publish %s event for category %s: %v", routingKey, category.ID, err)
	}
}
