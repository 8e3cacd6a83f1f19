package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/foodbridge/internal/middleware"
	"github.com/example/foodbridge/internal/models"
	"github.com/example/foodbridge/internal/utils"
)

// DonationHandler manages donation listing endpoints.
type DonationHandler struct {
	db *gorm.DB
}

// NewDonationHandler constructs DonationHandler.
func NewDonationHandler(db *gorm.DB) *DonationHandler {
	return &DonationHandler{db: db}
}

// List returns donations for the requested status (default available), newest
// first, each enriched with the donor's name and email. Public endpoint.
func (h *DonationHandler) List(c *fiber.Ctx) error {
	status := c.Query("status", models.DonationAvailable)
	if !models.ValidDonationStatus(status) {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid status")
	}

	pg := utils.ParsePagination(c)

	query := h.db.Model(&models.Donation{}).Where("status = ?", status)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return err
	}

	var donations []models.Donation
	if err := query.
		Preload("Donor", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "email")
		}).
		Order("created_at desc").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&donations).Error; err != nil {
		return err
	}

	items := make([]fiber.Map, 0, len(donations))
	for _, d := range donations {
		item := fiber.Map{
			"id":          d.ID,
			"food_type":   d.FoodType,
			"quantity":    d.Quantity,
			"expiry_date": d.ExpiryDate,
			"location":    d.Location,
			"description": d.Description,
			"status":      d.Status,
			"created_at":  d.CreatedAt,
		}
		if d.Donor != nil {
			item["donor"] = fiber.Map{
				"id":    d.Donor.ID,
				"name":  d.Donor.Name,
				"email": d.Donor.Email,
			}
		}
		items = append(items, item)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    items,
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    total,
		},
	})
}

type createDonationRequest struct {
	FoodType    string  `json:"food_type"`
	Quantity    float64 `json:"quantity"`
	ExpiryDate  string  `json:"expiry_date"`
	Location    string  `json:"location"`
	Description string  `json:"description"`
}

// Create persists a new donation owned by the authenticated account. All
// validation runs before the write.
func (h *DonationHandler) Create(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req createDonationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	missing := utils.MissingFields([]utils.RequiredField{
		{Name: "food_type", Value: req.FoodType},
		{Name: "expiry_date", Value: req.ExpiryDate},
		{Name: "location", Value: req.Location},
	})
	if len(missing) > 0 {
		return fiber.NewError(fiber.StatusBadRequest, utils.MissingFieldsMessage(missing))
	}

	if req.Quantity <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Quantity must be greater than 0")
	}

	expiryDate, err := parseDate(req.ExpiryDate)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid expiry date")
	}
	if !expiryDate.After(time.Now()) {
		return fiber.NewError(fiber.StatusBadRequest, "Expiry date must be in the future")
	}

	donation := models.Donation{
		DonorID:     userID,
		FoodType:    req.FoodType,
		Quantity:    req.Quantity,
		ExpiryDate:  expiryDate,
		Location:    req.Location,
		Description: req.Description,
		Status:      models.DonationAvailable,
	}

	if err := h.db.Create(&donation).Error; err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": donation})
}

type updateDonationRequest struct {
	Status      *string `json:"status"`
	Description *string `json:"description"`
}

// Update applies status and/or description changes. Only the owning account
// may update, and status moves through the forward-only lifecycle table.
func (h *DonationHandler) Update(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	donation, err := h.findOwned(c, userID)
	if err != nil {
		return err
	}

	var req updateDonationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.Status != nil {
		if !models.ValidDonationStatus(*req.Status) {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid status")
		}
		if !models.CanTransition(donation.Status, *req.Status) {
			return fiber.NewError(fiber.StatusBadRequest,
				fmt.Sprintf("Cannot change status from %s to %s", donation.Status, *req.Status))
		}
		donation.Status = *req.Status
	}
	if req.Description != nil && *req.Description != "" {
		donation.Description = *req.Description
	}

	if err := h.db.Save(donation).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": donation})
}

// Delete removes a donation. Only the owning account may delete.
func (h *DonationHandler) Delete(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	donation, err := h.findOwned(c, userID)
	if err != nil {
		return err
	}

	if err := h.db.Delete(donation).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "message": "Donation deleted"})
}

// findOwned loads the donation from the :id route param and enforces the
// ownership invariant.
func (h *DonationHandler) findOwned(c *fiber.Ctx, userID uuid.UUID) (*models.Donation, error) {
	donationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var donation models.Donation
	if err := h.db.First(&donation, "id = ?", donationID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fiber.NewError(fiber.StatusNotFound, "Donation not found")
		}
		return nil, err
	}

	if donation.DonorID != userID {
		return nil, fiber.NewError(fiber.StatusForbidden, "Not authorized")
	}

	return &donation, nil
}

// parseDate accepts RFC 3339 timestamps or plain YYYY-MM-DD dates.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
