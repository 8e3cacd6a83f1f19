package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/foodbridge/internal/config"
	"github.com/example/foodbridge/internal/models"
	"github.com/example/foodbridge/internal/utils"
)

// AuthHandler bundles dependencies for authentication endpoints.
type AuthHandler struct {
	db  *gorm.DB
	cfg *config.Config
}

// NewAuthHandler constructs an AuthHandler. db may be nil when the service
// started without a store; only Login tolerates that.
func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, cfg: cfg}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	ZipCode  string `json:"zip_code"`

	RestaurantType string `json:"restaurant_type"`
	OperatingHours string `json:"operating_hours"`

	NGOType             string `json:"ngo_type"`
	ServiceArea         string `json:"service_area"`
	BeneficiariesServed int    `json:"beneficiaries_served"`
}

// Register creates a new restaurant or NGO account. All validation runs
// before anything is persisted.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	missing := utils.MissingFields([]utils.RequiredField{
		{Name: "name", Value: req.Name},
		{Name: "email", Value: req.Email},
		{Name: "password", Value: req.Password},
		{Name: "phone", Value: req.Phone},
		{Name: "address", Value: req.Address},
		{Name: "city", Value: req.City},
		{Name: "zip_code", Value: req.ZipCode},
		{Name: "role", Value: req.Role},
	})
	if len(missing) > 0 {
		return fiber.NewError(fiber.StatusBadRequest, utils.MissingFieldsMessage(missing))
	}

	if !utils.ValidEmail(req.Email) {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid email format")
	}

	if len(req.Password) < 6 {
		return fiber.NewError(fiber.StatusBadRequest, "Password must be at least 6 characters")
	}

	switch req.Role {
	case models.RoleRestaurant:
		if req.RestaurantType == "" || req.OperatingHours == "" {
			return fiber.NewError(fiber.StatusBadRequest,
				"Restaurant type and operating hours are required for restaurants")
		}
	case models.RoleNGO:
		if req.NGOType == "" || req.ServiceArea == "" || req.BeneficiariesServed <= 0 {
			return fiber.NewError(fiber.StatusBadRequest,
				"Organization type, service area, and beneficiaries served are required for NGOs")
		}
	default:
		return fiber.NewError(fiber.StatusBadRequest,
			`Invalid role. Must be either "restaurant" or "ngo"`)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var existing models.User
	if err := h.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return fiber.NewError(fiber.StatusBadRequest, "Email already registered")
	} else if err != gorm.ErrRecordNotFound {
		return err
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to hash password")
	}

	user := models.User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         req.Role,
		Phone:        req.Phone,
		Address:      req.Address,
		City:         req.City,
		ZipCode:      req.ZipCode,
		Verification: models.Verification{Status: models.VerificationPending},
	}

	switch req.Role {
	case models.RoleRestaurant:
		user.RestaurantType = &req.RestaurantType
		user.OperatingHours = &req.OperatingHours
	case models.RoleNGO:
		user.NGOType = &req.NGOType
		user.ServiceArea = &req.ServiceArea
		user.BeneficiariesServed = &req.BeneficiariesServed
	}

	if err := h.db.Create(&user).Error; err != nil {
		return err
	}

	token, err := utils.GenerateToken(h.cfg.JWTSecret, user.ID, h.cfg.TokenExpires)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate token")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"token":   token,
		"user":    user,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Demo account served only when DEMO_LOGIN is enabled and the store is down.
const (
	demoEmail    = "test@example.com"
	demoPassword = "password123"
	demoUserID   = "00000000-0000-4000-8000-000000000001"
)

// Login authenticates an existing account. Unknown email and wrong password
// collapse to the same response so accounts cannot be enumerated.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.Email == "" || req.Password == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if h.db == nil {
		return h.demoLogin(c, email, req.Password)
	}

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
		}
		return err
	}

	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
	}

	token, err := utils.GenerateToken(h.cfg.JWTSecret, user.ID, h.cfg.TokenExpires)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate token")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"token":   token,
		"user":    user,
	})
}

func (h *AuthHandler) demoLogin(c *fiber.Ctx, email, password string) error {
	if !h.cfg.DemoLogin {
		return fiber.NewError(fiber.StatusServiceUnavailable, "service temporarily unavailable")
	}

	if email != demoEmail || password != demoPassword {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
	}

	restaurantType := "Italian"
	operatingHours := "9 AM - 10 PM"
	demoUser := models.User{
		Name:           "Test User",
		Email:          demoEmail,
		Role:           models.RoleRestaurant,
		Phone:          "123-456-7890",
		Address:        "123 Test St",
		City:           "Test City",
		ZipCode:        "12345",
		RestaurantType: &restaurantType,
		OperatingHours: &operatingHours,
	}
	demoUser.ID = uuid.MustParse(demoUserID)

	token, err := utils.GenerateToken(h.cfg.JWTSecret, demoUser.ID, h.cfg.TokenExpires)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate token")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"token":   token,
		"user":    demoUser,
	})
}
