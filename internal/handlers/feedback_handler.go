package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"prepmate/interview-coach/internal/repositories"
)

type FeedbackHandler struct {
	feedbackRepo repositories.FeedbackRepository
}

func NewFeedbackHandler(feedbackRepo repositories.FeedbackRepository) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackRepo: feedbackRepo,
	}
}

// HandleGet handles GET /feedback/:id. Feedback is write-once, so
// repeated fetches always return identical content.
func (h *FeedbackHandler) HandleGet(c *fiber.Ctx) error {
	feedbackID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid feedback ID format",
		})
	}

	feedback, err := h.feedbackRepo.FindByID(feedbackID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Feedback not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch feedback",
		})
	}

	return c.JSON(feedback)
}
