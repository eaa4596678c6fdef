package handler

import (
	"log"

	"airmen-backend/internal/model"
	"airmen-backend/internal/repository"
	"airmen-backend/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PublicHandler is the unauthenticated submission boundary. It accepts the
// same record shape as administrator entry but everything lands in the
// pending queue.
type PublicHandler struct {
	repo     repository.AirmanRepository
	notifier service.Notifier
}

func NewPublicHandler(repo repository.AirmanRepository, notifier service.Notifier) *PublicHandler {
	return &PublicHandler{repo: repo, notifier: notifier}
}

func (h *PublicHandler) Submit(c *fiber.Ctx) error {
	var a model.Airman
	if err := c.BodyParser(&a); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	// Client-supplied identifiers and status are never trusted here.
	a.Model = gorm.Model{}
	a.Status = model.StatusPending
	a.SubmissionRef = uuid.NewString()
	service.NormalizeAirman(&a)

	if err := a.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := h.repo.Create(&a); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Submission failed: " + err.Error()})
	}

	if h.notifier != nil {
		// Mail must never delay or fail the submission response.
		go func(rec model.Airman) {
			if err := h.notifier.NotifySubmission(&rec); err != nil {
				log.Printf("submission notice for BD/%s failed: %v", rec.BDNo, err)
			}
		}(a)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":        "Submission received and queued for review",
		"submission_ref": a.SubmissionRef,
	})
}
