package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"prepmate/interview-coach/internal/models"
	"prepmate/interview-coach/internal/repositories"
	"prepmate/interview-coach/internal/services"
)

type UploadHandler struct {
	userRepo       repositories.UserRepository
	storageService services.StorageService
	extractor      services.TextExtractor
	analyzer       services.CVAnalyzer
	maxFileSize    int64
}

func NewUploadHandler(
	userRepo repositories.UserRepository,
	storageService services.StorageService,
	extractor services.TextExtractor,
	analyzer services.CVAnalyzer,
	maxFileSize int64,
) *UploadHandler {
	return &UploadHandler{
		userRepo:       userRepo,
		storageService: storageService,
		extractor:      extractor,
		analyzer:       analyzer,
		maxFileSize:    maxFileSize,
	}
}

// HandleUpload handles POST /cv/upload: store the file, extract text,
// analyze, and fold the analysis into the user's profile. An analysis
// failure degrades to an upload without personalized skills; it never
// blocks the user.
func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.FormValue("user_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user_id format",
		})
	}

	if _, err := h.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "User not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch user",
		})
	}

	cvFile, err := c.FormFile("cv")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "cv file is required",
		})
	}

	if cvFile.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("CV file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	filename, filePath, err := h.storageService.SaveCV(cvFile, userID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save CV file: %v", err),
		})
	}

	cvText, err := h.extractor.ExtractFromFile(filePath)
	if err != nil {
		return c.JSON(models.CVUploadResponse{
			Success: true,
			Message: "CV uploaded, but no text could be extracted",
			CVURL:   filename,
		})
	}

	analysis, err := h.analyzer.AnalyzeCV(c.UserContext(), userID, filename, cvText)
	if err != nil {
		// the upload succeeded; the user continues without personalization
		return c.JSON(models.CVUploadResponse{
			Success: true,
			Message: "CV uploaded, but analysis could not be saved",
			CVURL:   filename,
		})
	}

	return c.JSON(models.CVUploadResponse{
		Success:  true,
		Message:  "CV uploaded successfully",
		CVURL:    filename,
		Analysis: analysis,
	})
}
