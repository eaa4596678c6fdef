package handler

import (
	"errors"
	"log"
	"strconv"

	"airmen-backend/internal/model"
	"airmen-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ReviewHandler owns the pending queue: submissions from the public form wait
// here until an administrator approves or rejects them.
type ReviewHandler struct {
	repo repository.AirmanRepository
}

func NewReviewHandler(repo repository.AirmanRepository) *ReviewHandler {
	return &ReviewHandler{repo: repo}
}

func (h *ReviewHandler) ListPending(c *fiber.Ctx) error {
	list, err := h.repo.GetByStatus(model.StatusPending)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load pending submissions: " + err.Error()})
	}

	return c.JSON(fiber.Map{
		"data":  newAirmanViews(list),
		"total": len(list),
	})
}

// Approve flips a pending record to active, leaving every other field as
// submitted. A missing or already-active record makes this a no-op, not an
// error.
func (h *ReviewHandler) Approve(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid record id"})
	}

	a, err := h.repo.FindByID(uint(id))
	if err != nil {
		log.Printf("approve: record %d not found, ignoring", id)
		return c.JSON(fiber.Map{"message": "No pending record to approve"})
	}
	if a.Status != model.StatusPending {
		log.Printf("approve: record %d is not pending (status=%s), ignoring", id, a.Status)
		return c.JSON(fiber.Map{"message": "No pending record to approve"})
	}

	a.Status = model.StatusActive
	if err := h.repo.Update(a); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to approve submission: " + err.Error()})
	}

	return c.JSON(fiber.Map{
		"message": "Submission approved",
		"data":    a,
	})
}

// Reject deletes a pending submission permanently. No trace is kept, and
// rejecting an id that is already gone succeeds.
func (h *ReviewHandler) Reject(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid record id"})
	}

	if err := h.repo.Delete(uint(id)); err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to reject submission: " + err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Submission rejected and removed"})
}
