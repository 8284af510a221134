package handlers

import (
	"errors"
	"fmt"
	"path/filepath"

	"katalog/internal/repositories"
	"katalog/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ProductHandler handles HTTP requests for products and the catalog
// summary page.
type ProductHandler struct {
	service   *services.ProductService
	uploadDir string
}

// NewProductHandler creates a new ProductHandler. Uploaded product
// images are stored under uploadDir with generated names.
func NewProductHandler(service *services.ProductService, uploadDir string) *ProductHandler {
	return &ProductHandler{
		service:   service,
		uploadDir: uploadDir,
	}
}

// RegisterRoutes registers the product routes. The literal /create
// routes must come before the /:id routes or the parameter would
// swallow the keyword.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/", h.HandleIndex)
	router.Get("/products", h.HandleList)
	router.Get("/product/create", h.HandleCreateForm)
	router.Post("/product/create", h.HandleCreate)
	router.Get("/product/:id/delete", h.HandleDeleteForm)
	router.Post("/product/:id/delete", h.HandleDelete)
	router.Get("/product/:id/update", h.HandleUpdateForm)
	router.Post("/product/:id/update", h.HandleUpdate)
	router.Get("/product/:id", h.HandleDetail)
}

// HandleIndex renders the summary page with product and category counts.
func (h *ProductHandler) HandleIndex(c *fiber.Ctx) error {
	productCount, categoryCount, err := h.service.Index()
	if err != nil {
		return renderError(c, err)
	}
	return c.Render("index", fiber.Map{
		"Title":         "Plant Catalog Home",
		"ProductCount":  productCount,
		"CategoryCount": categoryCount,
	})
}

// HandleList renders all products sorted by name with their categories
// resolved.
func (h *ProductHandler) HandleList(c *fiber.Ctx) error {
	products, err := h.service.List()
	if err != nil {
		return renderError(c, err)
	}
	return c.Render("product_list", fiber.Map{
		"Title":       "Product List",
		"ProductList": products,
	})
}

// HandleDetail renders one product with its category resolved.
func (h *ProductHandler) HandleDetail(c *fiber.Ctx) error {
	product, err := h.service.Detail(c.Params("id"))
	if err != nil {
		return renderError(c, err)
	}
	return c.Render("product_detail", fiber.Map{
		"Title":   product.Name,
		"Product": product,
	})
}

// HandleCreateForm renders the empty create form with the category
// dropdown.
func (h *ProductHandler) HandleCreateForm(c *fiber.Ctx) error {
	options, err := h.service.CategoryOptions("")
	if err != nil {
		return renderError(c, err)
	}
	return c.Render("product_form", fiber.Map{
		"Title":      "Create Product",
		"Categories": options,
	})
}

// HandleCreate processes a multipart create submission. The uploaded
// image is stored first; validation failures re-render the form with
// the sanitized values and the error list.
func (h *ProductHandler) HandleCreate(c *fiber.Ctx) error {
	stored, err := h.saveUpload(c)
	if err != nil {
		return renderError(c, err)
	}
	product, fieldErrs, err := h.service.Create(h.formInput(c, stored))
	if err != nil {
		return renderError(c, err)
	}
	if len(fieldErrs) > 0 {
		options, optErr := h.service.CategoryOptions(product.CategoryID)
		if optErr != nil {
			return renderError(c, optErr)
		}
		return c.Render("product_form", fiber.Map{
			"Title":      "Create Product",
			"Product":    product,
			"Categories": options,
			"Errors":     fieldErrs,
		})
	}
	return c.Redirect(product.URL())
}

// HandleDeleteForm renders the delete confirmation for one product.
func (h *ProductHandler) HandleDeleteForm(c *fiber.Ctx) error {
	product, err := h.service.Detail(c.Params("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Redirect("/catalog/products")
		}
		return renderError(c, err)
	}
	return c.Render("product_delete", fiber.Map{
		"Title":   "Delete Product",
		"Product": product,
	})
}

// HandleDelete processes a confirmed delete. Products are deleted
// unconditionally; nothing references them.
func (h *ProductHandler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("id")); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Redirect("/catalog/products")
		}
		return renderError(c, err)
	}
	return c.Redirect("/catalog/products")
}

// HandleUpdateForm renders the update form pre-filled with the current
// record and the category dropdown.
func (h *ProductHandler) HandleUpdateForm(c *fiber.Ctx) error {
	product, options, err := h.service.UpdateForm(c.Params("id"))
	if err != nil {
		return renderError(c, err)
	}
	return c.Render("product_form", fiber.Map{
		"Title":      "Update Product",
		"Product":    product,
		"Categories": options,
	})
}

// HandleUpdate processes a multipart update submission, replacing the
// record in full while preserving its ID.
func (h *ProductHandler) HandleUpdate(c *fiber.Ctx) error {
	stored, err := h.saveUpload(c)
	if err != nil {
		return renderError(c, err)
	}
	product, fieldErrs, err := h.service.Update(c.Params("id"), h.formInput(c, stored))
	if err != nil {
		return renderError(c, err)
	}
	if len(fieldErrs) > 0 {
		options, optErr := h.service.CategoryOptions(product.CategoryID)
		if optErr != nil {
			return renderError(c, optErr)
		}
		return c.Render("product_form", fiber.Map{
			"Title":      "Update Product",
			"Product":    product,
			"Categories": options,
			"Errors":     fieldErrs,
		})
	}
	return c.Redirect(product.URL())
}

func (h *ProductHandler) formInput(c *fiber.Ctx, storedImage string) services.ProductInput {
	return services.ProductInput{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		Price:       c.FormValue("price"),
		Stock:       c.FormValue("stock"),
		CategoryID:  c.FormValue("category"),
		ImageFile:   storedImage,
	}
}

// saveUpload stores the uploaded image under a generated filename and
// returns the stored name. A missing upload returns an empty name; the
// validation layer reports it as a field error rather than failing the
// request.
func (h *ProductHandler) saveUpload(c *fiber.Ctx) (string, error) {
	file, err := c.FormFile("productImage")
	if err != nil {
		return "", nil
	}
	filename := uuid.New().String() + filepath.Ext(file.Filename)
	if err := c.SaveFile(file, filepath.Join(h.uploadDir, filename)); err != nil {
		return "", fmt.Errorf("failed to save uploaded image: %w", err)
	}
	return filename, nil
}
