package services

import (
	"log"
	"strconv"

	"katalog/internal/models"
	"katalog/internal/repositories"
	"katalog/internal/validation"
	"katalog/pkg/rabbitmq"

	"golang.org/x/sync/errgroup"
)

// ProductService handles business logic related to products.
type ProductService struct {
	productRepo  repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
	mqClient     *rabbitmq.Client
}

// NewProductService creates a new ProductService. The RabbitMQ client
// may be nil; catalog events are then skipped.
func NewProductService(productRepo repositories.ProductRepository, categoryRepo repositories.CategoryRepository, mqClient *rabbitmq.Client) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		mqClient:     mqClient,
	}
}

// ProductInput carries the raw form values for creating or updating a
// product. ImageFile is the stored filename of the uploaded image, empty
// when no file was uploaded.
type ProductInput struct {
	Name        string
	Description string
	Price       string
	Stock       string
	CategoryID  string
	ImageFile   string
}

// CategoryOption is a category offered for selection on a product form.
// Checked is presentation state only and is never persisted.
type CategoryOption struct {
	models.Category
	Checked bool
}

// Index returns the total product and category counts for the summary
// view. The two independent counts are issued concurrently.
func (s *ProductService) Index() (productCount, categoryCount int64, err error) {
	g := new(errgroup.Group)
	g.Go(func() error {
		var err error
		productCount, err = s.productRepo.Count()
		return err
	})
	g.Go(func() error {
		var err error
		categoryCount, err = s.categoryRepo.Count()
		return err
	})
	if err := g.Wait(); err != nil {
		return 0, 0, err
	}
	return productCount, categoryCount, nil
}

// List retrieves all products ordered by name ascending, each with its
// category reference resolved.
func (s *ProductService) List() ([]models.Product, error) {
	return s.productRepo.GetAll()
}

// Detail retrieves a single product with its category resolved.
func (s *ProductService) Detail(id string) (*models.Product, error) {
	return s.productRepo.GetByID(id)
}

// CategoryOptions returns all categories for a product form, marking the
// option whose ID equals selectedID as checked. IDs are compared by
// value, never by reference.
func (s *ProductService) CategoryOptions(selectedID string) ([]CategoryOption, error) {
	categories, err := s.categoryRepo.GetAll()
	if err != nil {
		return nil, err
	}
	return markSelected(categories, selectedID), nil
}

// UpdateForm loads the product at id and the full category list for the
// update form. The two independent reads are issued concurrently.
func (s *ProductService) UpdateForm(id string) (*models.Product, []CategoryOption, error) {
	var (
		product    *models.Product
		categories []models.Category
	)

	g := new(errgroup.Group)
	g.Go(func() error {
		var err error
		product, err = s.productRepo.GetByID(id)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = s.categoryRepo.GetAll()
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return product, markSelected(categories, product.CategoryID), nil
}

// Create validates the submitted fields and inserts a new product whose
// image path is derived from the stored upload filename. On validation
// failure the sanitized, unsaved product is returned together with the
// field errors and nothing is written to the store.
func (s *ProductService) Create(in ProductInput) (*models.Product, []validation.FieldError, error) {
	product, errs := s.buildProduct(in)
	if len(errs) > 0 {
		return product, errs, nil
	}

	if err := s.productRepo.Create(product); err != nil {
		return nil, nil, err
	}
	s.publishEvent("created", product)
	return product, nil, nil
}

// Update validates the submitted fields and replaces the product record
// at id in full, preserving the original ID.
func (s *ProductService) Update(id string, in ProductInput) (*models.Product, []validation.FieldError, error) {
	product, errs := s.buildProduct(in)
	product.ID = id
	if len(errs) > 0 {
		return product, errs, nil
	}

	if err := s.productRepo.Update(product); err != nil {
		return nil, nil, err
	}
	s.publishEvent("updated", product)
	return product, nil, nil
}

// Delete removes a product unconditionally; nothing references products.
func (s *ProductService) Delete(id string) error {
	if err := s.productRepo.Delete(id); err != nil {
		return err
	}
	s.publishEvent("deleted", &models.Product{ID: id})
	return nil
}

func (s *ProductService) buildProduct(in ProductInput) (*models.Product, []validation.FieldError) {
	sanitized, errs := validation.Apply(validation.Values{
		"name":         in.Name,
		"description":  in.Description,
		"price":        in.Price,
		"stock":        in.Stock,
		"category":     in.CategoryID,
		"productImage": in.ImageFile,
	}, validation.ProductRules())

	// Numeric parses only fail alongside a field error, in which case the
	// product is never saved.
	price, _ := strconv.ParseFloat(sanitized["price"], 64)
	stock, _ := strconv.Atoi(sanitized["stock"])

	imagePath := ""
	if in.ImageFile != "" {
		imagePath = "/images/" + in.ImageFile
	}

	return &models.Product{
		Name:        sanitized["name"],
		Description: sanitized["description"],
		Price:       price,
		Stock:       stock,
		CategoryID:  sanitized["category"],
		ImagePath:   imagePath,
	}, errs
}

func (s *ProductService) publishEvent(action string, product *models.Product) {
	if s.mqClient == nil {
		return
	}
	event := map[string]interface{}{
		"productID":  product.ID,
		"name":       product.Name,
		"categoryID": product.CategoryID,
	}
	routingKey := "catalog.product." + action
	if err := s.mqClient.PublishCatalogEvent(routingKey, event); err != nil {
		log.Printf("Warning: Failed to publish %s event for product %s: %v", routingKey, product.ID, err)
	}
}

func markSelected(categories []models.Category, selectedID string) []CategoryOption {
	options := make([]CategoryOption, 0, len(categories))
	for _, category := range categories {
		options = append(options, CategoryOption{
			Category: category,
			Checked:  selectedID != "" && category.ID == selectedID,
		})
	}
	return options
}
