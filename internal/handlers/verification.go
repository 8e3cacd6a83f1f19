package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/foodbridge/internal/middleware"
	"github.com/example/foodbridge/internal/models"
	"github.com/example/foodbridge/internal/services"
	"github.com/example/foodbridge/internal/storage"
)

// Uploaded documents may not exceed 5 MiB.
const maxDocumentSize = 5 * 1024 * 1024

// VerificationHandler manages the document-verification workflow.
type VerificationHandler struct {
	db       *gorm.DB
	store    storage.BlobStore
	telegram *services.TelegramService
}

// NewVerificationHandler constructs VerificationHandler.
func NewVerificationHandler(db *gorm.DB, store storage.BlobStore, telegram *services.TelegramService) *VerificationHandler {
	return &VerificationHandler{db: db, store: store, telegram: telegram}
}

// Submit accepts a multipart upload with the verification document plus the
// registration number and expiry date. Resubmission always resets the review
// to pending, whatever the previous outcome. All checks run before any
// account mutation.
func (h *VerificationHandler) Submit(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	file, fileErr := c.FormFile("verificationDocument")
	number := c.FormValue("verificationNumber")
	expiry := c.FormValue("verificationExpiry")

	if fileErr != nil || file == nil || number == "" || expiry == "" {
		return fiber.NewError(fiber.StatusBadRequest,
			"Please provide all required verification details")
	}

	if file.Size > maxDocumentSize {
		return fiber.NewError(fiber.StatusBadRequest, "File too large. Maximum size is 5MB")
	}

	contentType := file.Header.Get("Content-Type")
	if !storage.AllowedDocumentType(contentType) {
		return fiber.NewError(fiber.StatusBadRequest,
			"Invalid file type. Only PDF and image files are allowed")
	}

	expiryDate, err := parseDate(expiry)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid expiry date")
	}

	var user models.User
	if err := h.db.First(&user, "id = ?", userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return err
	}

	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	name := storage.DocumentName("verificationDocument", file.Filename, contentType)
	ref, err := h.store.Save(c.Context(), name, contentType, src)
	if err != nil {
		return err
	}

	user.Verification = models.Verification{
		Status:   models.VerificationPending,
		Document: &ref,
		Number:   &number,
		Expiry:   &expiryDate,
	}
	user.IsVerified = false

	if err := h.db.Save(&user).Error; err != nil {
		return err
	}

	go h.telegram.NotifyVerificationSubmitted(user.Name, user.Role, number)

	return c.JSON(fiber.Map{
		"success":             true,
		"message":             "Verification documents submitted successfully",
		"verification_status": user.Verification.Status,
	})
}

// Status returns the authenticated account's verification sub-record.
func (h *VerificationHandler) Status(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var user models.User
	if err := h.db.First(&user, "id = ?", userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return err
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"verification": user.Verification,
		"is_verified":  user.IsVerified,
	})
}

type updateVerificationRequest struct {
	Status          string `json:"status"`
	RejectionReason string `json:"rejection_reason"`
}

// UpdateStatus lets an admin resolve a pending review. Only verified and
// rejected are settable; pending is reached again solely by resubmission.
func (h *VerificationHandler) UpdateStatus(c *fiber.Ctx) error {
	targetID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var req updateVerificationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.Status != models.VerificationVerified && req.Status != models.VerificationRejected {
		return fiber.NewError(fiber.StatusBadRequest,
			`Status must be either "verified" or "rejected"`)
	}
	if req.Status == models.VerificationRejected && req.RejectionReason == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Rejection reason is required")
	}

	var user models.User
	if err := h.db.First(&user, "id = ?", targetID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return err
	}

	user.Verification.Status = req.Status
	if req.Status == models.VerificationVerified {
		user.IsVerified = true
		user.Verification.RejectionReason = nil
	} else {
		user.IsVerified = false
		user.Verification.RejectionReason = &req.RejectionReason
	}

	if err := h.db.Save(&user).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":             true,
		"message":             "Verification status updated successfully",
		"verification_status": user.Verification.Status,
	})
}
