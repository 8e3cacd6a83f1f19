package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/foodbridge/internal/middleware"
	"github.com/example/foodbridge/internal/models"
	"github.com/example/foodbridge/internal/utils"
)

// ProfileHandler manages the authenticated account's profile endpoints.
type ProfileHandler struct {
	db *gorm.DB
}

// NewProfileHandler constructs ProfileHandler.
func NewProfileHandler(db *gorm.DB) *ProfileHandler {
	return &ProfileHandler{db: db}
}

// GetProfile returns the authenticated account, password stripped.
func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
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

	return c.JSON(fiber.Map{"success": true, "user": user})
}

type updateProfileRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	City    *string `json:"city"`
	ZipCode *string `json:"zip_code"`

	// An explicit empty string clears the image.
	ProfileImage *string `json:"profile_image"`

	RestaurantType *string `json:"restaurant_type"`
	OperatingHours *string `json:"operating_hours"`

	NGOType             *string `json:"ngo_type"`
	ServiceArea         *string `json:"service_area"`
	BeneficiariesServed *int    `json:"beneficiaries_served"`
}

// UpdateProfile applies a partial update: absent fields stay untouched, and
// role-specific fields are applied only when they match the account's role.
func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req updateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	var user models.User
	if err := h.db.First(&user, "id = ?", userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return err
	}

	if req.Name != nil && *req.Name != "" {
		user.Name = *req.Name
	}
	if req.Email != nil && *req.Email != "" {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if !utils.ValidEmail(email) {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid email format")
		}
		if email != user.Email {
			var existing models.User
			if err := h.db.Where("email = ? AND id <> ?", email, userID).First(&existing).Error; err == nil {
				return fiber.NewError(fiber.StatusBadRequest, "Email already registered")
			} else if err != gorm.ErrRecordNotFound {
				return err
			}
			user.Email = email
		}
	}
	if req.Phone != nil && *req.Phone != "" {
		user.Phone = *req.Phone
	}
	if req.Address != nil && *req.Address != "" {
		user.Address = *req.Address
	}
	if req.City != nil && *req.City != "" {
		user.City = *req.City
	}
	if req.ZipCode != nil && *req.ZipCode != "" {
		user.ZipCode = *req.ZipCode
	}
	if req.ProfileImage != nil {
		if *req.ProfileImage == "" {
			user.ProfileImage = nil
		} else {
			user.ProfileImage = req.ProfileImage
		}
	}

	switch user.Role {
	case models.RoleRestaurant:
		if req.RestaurantType != nil && *req.RestaurantType != "" {
			user.RestaurantType = req.RestaurantType
		}
		if req.OperatingHours != nil && *req.OperatingHours != "" {
			user.OperatingHours = req.OperatingHours
		}
	case models.RoleNGO:
		if req.NGOType != nil && *req.NGOType != "" {
			user.NGOType = req.NGOType
		}
		if req.ServiceArea != nil && *req.ServiceArea != "" {
			user.ServiceArea = req.ServiceArea
		}
		if req.BeneficiariesServed != nil && *req.BeneficiariesServed > 0 {
			user.BeneficiariesServed = req.BeneficiariesServed
		}
	}

	if err := h.db.Save(&user).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "user": user})
}

// ListOwnDonations returns the authenticated account's donations, newest first.
func (h *ProfileHandler) ListOwnDonations(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var donations []models.Donation
	if err := h.db.Where("donor_id = ?", userID).
		Order("created_at desc").
		Find(&donations).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": donations})
}
