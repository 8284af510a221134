package handlers

import (
	"errors"

	"katalog/internal/repositories"
	"katalog/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CategoryHandler handles HTTP requests for categories.
type CategoryHandler struct {
	service *services.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(service *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		service: service,
	}
}

// RegisterRoutes registers the category routes. The literal /create
// routes must come before the /:id routes or the parameter would
// swallow the keyword.
func (h *CategoryHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/categories", h.HandleList)
	router.Get("/category/create", h.HandleCreateForm)
	router.Post("/category/create", h.HandleCreate)
	router.Get("/category/:id/delete", h.HandleDeleteForm)
	router.Post("/category/:id/delete", h.HandleDelete)
	router.Get("/category/:id/update", h.HandleUpdateForm)
	router.Post("/category/:id/update", h.HandleUpdate)
	router.Get("/category/:id", h.HandleDetail)
}

// HandleList renders all categories sorted by name.
func (h *CategoryHandler) HandleList(c *fiber.Ctx) error {
	categories, err := h.service.List()
	if err != nil {
		return renderError(c, err)
	}
	return c.Render("category_list", fiber.Map{
		"Title":        "Category List",
		"CategoryList": categories,
	})
}

// HandleDetail renders one category and the products referencing it.
func (h *CategoryHandler) HandleDetail(c *fiber.Ctx) error {
	category, products, err := h.service.Detail(c.Params("id"))
	if err != nil {
		return renderError(c, err)
	}
	return c.Render("category_detail", fiber.Map{
		"Title":            "Category Detail",
		"Category":         category,
		"CategoryProducts": products,
	})
}

// HandleCreateForm renders the empty create form.
func (h *CategoryHandler) HandleCreateForm(c *fiber.Ctx) error {
	return c.Render("category_form", fiber.Map{
		"Title": "Create Category",
	})
}

// HandleCreate processes a create submission. Validation failures
// re-render the form with the sanitized values and the error list;
// a name collision redirects to the existing category.
func (h *CategoryHandler) HandleCreate(c *fiber.Ctx) error {
	category, fieldErrs, err := h.service.Create(services.CategoryInput{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
	})
	if err != nil {
		return renderError(c, err)
	}
	if len(fieldErrs) > 0 {
		return c.Render("category_form", fiber.Map{
			"Title":    "Create Category",
			"Category": category,
			"Errors":   fieldErrs,
		})
	}
	return c.Redirect(category.URL())
}

// HandleDeleteForm renders the delete confirmation, listing any
// products that would block the deletion.
func (h *CategoryHandler) HandleDeleteForm(c *fiber.Ctx) error {
	category, products, err := h.service.Detail(c.Params("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Redirect("/catalog/categories")
		}
		return renderError(c, err)
	}
	return c.Render("category_delete", fiber.Map{
		"Title":            "Delete Category",
		"Category":         category,
		"CategoryProducts": products,
	})
}

// HandleDelete processes a confirmed delete. A category with
// referencing products is not deleted; the confirmation view is
// re-rendered with the blocking list instead.
func (h *CategoryHandler) HandleDelete(c *fiber.Ctx) error {
	result, err := h.service.Delete(c.Params("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Redirect("/catalog/categories")
		}
		return renderError(c, err)
	}
	if !result.Deleted {
		return c.Render("category_delete", fiber.Map{
			"Title":            "Delete Category",
			"Category":         result.Category,
			"CategoryProducts": result.Products,
		})
	}
	return c.Redirect("/catalog/categories")
}

// HandleUpdateForm renders the update form pre-filled with the current
// record.
func (h *CategoryHandler) HandleUpdateForm(c *fiber.Ctx) error {
	category, err := h.service.Get(c.Params("id"))
	if err != nil {
		return renderError(c, err)
	}
	return c.Render("category_form", fiber.Map{
		"Title":    "Update Category",
		"Category": category,
	})
}

// HandleUpdate processes an update submission, replacing the record in
// full on success.
func (h *CategoryHandler) HandleUpdate(c *fiber.Ctx) error {
	category, fieldErrs, err := h.service.Update(c.Params("id"), services.CategoryInput{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
	})
	if err != nil {
		return renderError(c, err)
	}
	if len(fieldErrs) > 0 {
		return c.Render("category_form", fiber.Map{
			"Title":    "Update Category",
			"Category": category,
			"Errors":   fieldErrs,
		})
	}
	return c.Redirect(category.URL())
}
