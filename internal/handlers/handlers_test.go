package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/example/foodbridge/internal/config"
	"github.com/example/foodbridge/internal/database"
	"github.com/example/foodbridge/internal/models"
	"github.com/example/foodbridge/internal/routes"
	"github.com/example/foodbridge/internal/storage"
	"github.com/example/foodbridge/internal/utils"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Unique in-memory database per test to avoid cross-test collisions.
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		JWTSecret:    "test-secret",
		TokenExpires: 24 * time.Hour,
		UploadDir:    t.TempDir(),
	}
}

func setupApp(t *testing.T) (*fiber.App, *gorm.DB, *config.Config) {
	t.Helper()
	db := setupTestDB(t)
	cfg := testConfig(t)
	app := newApp(db, cfg)
	return app, db, cfg
}

func newApp(db *gorm.DB, cfg *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{BodyLimit: 10 * 1024 * 1024})
	routes.Register(app, db, storage.NewLocalStore(cfg.UploadDir), cfg, zerolog.Nop())
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func bodyString(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(data)
}

func restaurantPayload(email string) map[string]interface{} {
	return map[string]interface{}{
		"name":            "Sana Biryani",
		"email":           email,
		"password":        "secret123",
		"role":            "restaurant",
		"phone":           "555-0101",
		"address":         "12 Spice Road",
		"city":            "Bhubaneswar",
		"zip_code":        "751001",
		"restaurant_type": "Indian",
		"operating_hours": "9-22",
	}
}

func ngoPayload(email string) map[string]interface{} {
	return map[string]interface{}{
		"name":                 "Helping Hands",
		"email":                email,
		"password":             "secret123",
		"role":                 "ngo",
		"phone":                "555-0202",
		"address":              "3 Charity Lane",
		"city":                 "Cuttack",
		"zip_code":             "753001",
		"ngo_type":             "Food Bank",
		"service_area":         "Cuttack District",
		"beneficiaries_served": 250,
	}
}

func registerAccount(t *testing.T, app *fiber.App, payload map[string]interface{}) (string, map[string]interface{}) {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/auth/register", "", payload)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeBody(t, resp)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	user, _ := body["user"].(map[string]interface{})
	require.NotNil(t, user)
	return token, user
}

// adminToken seeds an admin account directly and returns a token for it.
func adminToken(t *testing.T, db *gorm.DB, cfg *config.Config) string {
	t.Helper()
	hash, err := utils.HashPassword("admin-secret")
	require.NoError(t, err)
	restaurantType := "Admin"
	operatingHours := "24/7"
	admin := models.User{
		Name:           "Platform Admin",
		Email:          "admin@foodbridge.test",
		PasswordHash:   hash,
		Role:           models.RoleRestaurant,
		Phone:          "555-0000",
		Address:        "HQ",
		City:           "HQ City",
		ZipCode:        "00000",
		IsAdmin:        true,
		RestaurantType: &restaurantType,
		OperatingHours: &operatingHours,
	}
	require.NoError(t, db.Create(&admin).Error)

	token, err := utils.GenerateToken(cfg.JWTSecret, admin.ID, cfg.TokenExpires)
	require.NoError(t, err)
	return token
}
