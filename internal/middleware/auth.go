package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/foodbridge/internal/config"
	"github.com/example/foodbridge/internal/models"
	"github.com/example/foodbridge/internal/utils"
)

const userContextKey = "currentUserID"

// AuthMiddleware validates bearer tokens and loads the authenticated account ID
// into the request context. It checks identity only; role and ownership checks
// belong to the individual operations.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing authorization header")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid authorization header")
		}

		// An empty or literal "Bearer" token slips through naive header
		// trimming on some clients.
		token := strings.TrimSpace(parts[1])
		if token == "" || token == "Bearer" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing authorization token")
		}

		userID, err := utils.ParseToken(cfg.JWTSecret, token)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		c.Locals(userContextKey, userID)
		return c.Next()
	}
}

// GetCurrentUserID extracts the authenticated account ID from context.
func GetCurrentUserID(c *fiber.Ctx) (uuid.UUID, bool) {
	value := c.Locals(userContextKey)
	if value == nil {
		return uuid.Nil, false
	}

	if id, ok := value.(uuid.UUID); ok {
		return id, true
	}

	return uuid.Nil, false
}

// RequireAdmin re-reads the authenticated account and rejects non-admins.
// Tokens carry identity only, so the role is resolved from the store on every
// request.
func RequireAdmin(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := GetCurrentUserID(c)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
		}

		var user models.User
		if err := db.Select("is_admin").First(&user, "id = ?", userID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
			}
			return err
		}

		if !user.IsAdmin {
			return fiber.NewError(fiber.StatusForbidden, "admin access required")
		}

		return c.Next()
	}
}

// RequireStore rejects requests when the process started without a database
// connection. Data-dependent routes fail per-request instead of the whole
// service refusing to boot.
func RequireStore(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if db == nil {
			return fiber.NewError(fiber.StatusServiceUnavailable, "service temporarily unavailable")
		}
		return c.Next()
	}
}
