package handlers

import (
	"errors"
	"log"

	"katalog/internal/repositories"

	"github.com/gofiber/fiber/v2"
)

// renderError maps a service failure onto the error view: 404 for a
// missing record, 500 for any store failure.
func renderError(c *fiber.Ctx, err error) error {
	log.Printf("Error handling %s %s: %v", c.Method(), c.Path(), err)
	if errors.Is(err, repositories.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).Render("error", fiber.Map{
			"Title":   "Not Found",
			"Status":  fiber.StatusNotFound,
			"Message": err.Error(),
		})
	}
	return c.Status(fiber.StatusInternalServerError).Render("error", fiber.Map{
		"Title":   "Server Error",
		"Status":  fiber.StatusInternalServerError,
		"Message": err.Error(),
	})
}
