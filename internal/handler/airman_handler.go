package handler

import (
	"errors"
	"strconv"

	"airmen-backend/internal/model"
	"airmen-backend/internal/repository"
	"airmen-backend/internal/service"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AirmanHandler struct {
	repo repository.AirmanRepository
}

func NewAirmanHandler(repo repository.AirmanRepository) *AirmanHandler {
	return &AirmanHandler{repo: repo}
}

// Create registers a record straight into the active directory (administrator
// entry path). Any client-supplied identifier is discarded; the database
// assigns the real one.
func (h *AirmanHandler) Create(c *fiber.Ctx) error {
	var a model.Airman
	if err := c.BodyParser(&a); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	a.Model = gorm.Model{}
	a.Status = model.StatusActive
	a.SubmissionRef = ""
	service.NormalizeAirman(&a)

	if err := a.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := h.repo.Create(&a); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to add airman: " + err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Airman record saved",
		"data":    a,
	})
}

// Update is a full-record overwrite. Identity, creation time, lifecycle
// status and the submission reference are preserved from the stored record;
// everything else comes from the request body.
func (h *AirmanHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid record id"})
	}

	existing, err := h.repo.FindByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Record not found"})
	}

	var a model.Airman
	if err := c.BodyParser(&a); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	a.Model = existing.Model
	a.Status = existing.Status
	a.SubmissionRef = existing.SubmissionRef
	service.NormalizeAirman(&a)

	if err := a.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := h.repo.Update(&a); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update record: " + err.Error()})
	}

	return c.JSON(fiber.Map{
		"message": "Record updated",
		"data":    a,
	})
}

// StatusPatchRequest carries the deployment/medical/accommodation overlay.
// A field left out of the body is untouched; a field sent as "" is cleared
// from the record entirely, never stored as a blank.
type StatusPatchRequest struct {
	TDYLocation   *string `json:"tdy_location"`
	DETLocation   *string `json:"det_location"`
	MedCat        *string `json:"med_cat"`
	Accommodation *string `json:"accommodation"`
	LOutDate      *string `json:"l_out_date"`
	AccomAddress  *string `json:"accom_address"`
}

func (h *AirmanHandler) PatchStatus(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid record id"})
	}

	a, err := h.repo.FindByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Record not found"})
	}

	var req StatusPatchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.TDYLocation != nil {
		a.TDYLocation = req.TDYLocation
	}
	if req.DETLocation != nil {
		a.DETLocation = req.DETLocation
	}
	if req.MedCat != nil {
		a.MedCat = req.MedCat
	}
	if req.Accommodation != nil {
		mode := model.Accommodation(*req.Accommodation)
		if !mode.Valid() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid accommodation mode"})
		}
		a.Accommodation = mode
	}
	if req.LOutDate != nil {
		a.LOutDate = req.LOutDate
	}
	if req.AccomAddress != nil {
		a.AccomAddress = req.AccomAddress
	}

	service.NormalizeAirman(a)

	if err := h.repo.Update(a); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update status: " + err.Error()})
	}

	return c.JSON(fiber.Map{
		"message": "Status updated",
		"data":    a,
	})
}

// Delete removes a record permanently. Deleting an id that is already gone
// is not an error; the end state is the same.
func (h *AirmanHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid record id"})
	}

	if err := h.repo.Delete(uint(id)); err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete record: " + err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Record deleted permanently"})
}
