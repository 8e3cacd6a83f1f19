package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/foodbridge/internal/models"
	"github.com/example/foodbridge/internal/services"
	"github.com/example/foodbridge/internal/utils"
)

// ContactHandler manages the public contact form and its admin triage.
type ContactHandler struct {
	db       *gorm.DB
	telegram *services.TelegramService
}

// NewContactHandler constructs ContactHandler.
func NewContactHandler(db *gorm.DB, telegram *services.TelegramService) *ContactHandler {
	return &ContactHandler{db: db, telegram: telegram}
}

type submitContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Submit stores a contact message. Public endpoint.
func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var req submitContactRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	missing := utils.MissingFields([]utils.RequiredField{
		{Name: "name", Value: req.Name},
		{Name: "email", Value: req.Email},
		{Name: "subject", Value: req.Subject},
		{Name: "message", Value: req.Message},
	})
	if len(missing) > 0 {
		return fiber.NewError(fiber.StatusBadRequest, utils.MissingFieldsMessage(missing))
	}

	if !utils.ValidEmail(req.Email) {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid email format")
	}

	message := models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
		Status:  models.ContactStatusNew,
	}

	if err := h.db.Create(&message).Error; err != nil {
		return err
	}

	go h.telegram.NotifyContactMessage(message.Name, message.Email, message.Subject)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": message})
}

// ListAll returns contact messages, newest first. Admin endpoint.
func (h *ContactHandler) ListAll(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)

	var total int64
	if err := h.db.Model(&models.ContactMessage{}).Count(&total).Error; err != nil {
		return err
	}

	var messages []models.ContactMessage
	if err := h.db.Order("created_at desc").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&messages).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    messages,
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    total,
		},
	})
}

type updateContactRequest struct {
	Status string `json:"status"`
}

// UpdateStatus moves a message through triage. Admin endpoint.
func (h *ContactHandler) UpdateStatus(c *fiber.Ctx) error {
	messageID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var req updateContactRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	var message models.ContactMessage
	if err := h.db.First(&message, "id = ?", messageID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "Contact submission not found")
		}
		return err
	}

	if req.Status != "" {
		message.Status = req.Status
	}

	if err := h.db.Save(&message).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": message})
}
