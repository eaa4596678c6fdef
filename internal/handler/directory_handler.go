package handler

import (
	"time"

	"airmen-backend/internal/model"
	"airmen-backend/internal/repository"
	"airmen-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

// DirectoryHandler serves the active personnel directory: search, filters
// and the CSV status export all operate on the same filtered snapshot.
type DirectoryHandler struct {
	repo repository.AirmanRepository
}

func NewDirectoryHandler(repo repository.AirmanRepository) *DirectoryHandler {
	return &DirectoryHandler{repo: repo}
}

func specFromQuery(c *fiber.Ctx) service.FilterSpec {
	return service.FilterSpec{
		Search:          c.Query("search"),
		Rank:            c.Query("rank"),
		Trade:           c.Query("trade"),
		Flight:          c.Query("flight"),
		BloodGroup:      c.Query("blood_group"),
		ServiceCategory: c.Query("service_category"),
		Deployment:      c.Query("deployment"),
	}
}

func (h *DirectoryHandler) List(c *fiber.Ctx) error {
	active, err := h.repo.GetByStatus(model.StatusActive)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load directory: " + err.Error()})
	}

	filtered := service.FilterAirmen(active, specFromQuery(c))

	return c.JSON(fiber.Map{
		"data":  newAirmanViews(filtered),
		"total": len(filtered),
	})
}

// Export streams the filtered directory as a CSV attachment. The same query
// parameters apply as for List, so what the admin sees is what gets exported.
func (h *DirectoryHandler) Export(c *fiber.Ctx) error {
	active, err := h.repo.GetByStatus(model.StatusActive)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load directory: " + err.Error()})
	}

	filtered := service.FilterAirmen(active, specFromQuery(c))

	out, err := service.ExportCSV(filtered)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate export: " + err.Error()})
	}

	filename := "Airmen_Status_Export_" + time.Now().Format("2006-01-02") + ".csv"
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(out)
}
