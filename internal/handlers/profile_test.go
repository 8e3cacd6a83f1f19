package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/foodbridge/internal/models"
)

func TestProfilePartialUpdate(t *testing.T) {
	app, _, _ := setupApp(t)
	token, _ := registerAccount(t, app, restaurantPayload("partial@profile.test"))

	resp := doJSON(t, app, http.MethodPatch, "/api/profile", token, map[string]interface{}{
		"city":            "Puri",
		"restaurant_type": "South Indian",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	user, _ := body["user"].(map[string]interface{})
	require.NotNil(t, user)

	// Changed fields applied, absent fields untouched.
	assert.Equal(t, "Puri", user["city"])
	assert.Equal(t, "South Indian", user["restaurant_type"])
	assert.Equal(t, "Sana Biryani", user["name"])
	assert.Equal(t, "9-22", user["operating_hours"])
}

func TestProfileImageClearing(t *testing.T) {
	app, db, _ := setupApp(t)
	token, _ := registerAccount(t, app, restaurantPayload("image@profile.test"))

	set := doJSON(t, app, http.MethodPatch, "/api/profile", token, map[string]interface{}{
		"profile_image": "https://cdn.example.com/avatar.png",
	})
	require.Equal(t, http.StatusOK, set.StatusCode)

	var user models.User
	require.NoError(t, db.First(&user, "email = ?", "image@profile.test").Error)
	require.NotNil(t, user.ProfileImage)

	// Explicit empty value clears the image.
	cleared := doJSON(t, app, http.MethodPatch, "/api/profile", token, map[string]interface{}{
		"profile_image": "",
	})
	require.Equal(t, http.StatusOK, cleared.StatusCode)

	require.NoError(t, db.First(&user, "email = ?", "image@profile.test").Error)
	assert.Nil(t, user.ProfileImage)
}

func TestProfileRoleMismatchedFieldsIgnored(t *testing.T) {
	app, db, _ := setupApp(t)
	token, _ := registerAccount(t, app, restaurantPayload("mismatch@profile.test"))

	resp := doJSON(t, app, http.MethodPatch, "/api/profile", token, map[string]interface{}{
		"ngo_type":     "Shelter",
		"service_area": "Everywhere",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var user models.User
	require.NoError(t, db.First(&user, "email = ?", "mismatch@profile.test").Error)
	assert.Nil(t, user.NGOType)
	assert.Nil(t, user.ServiceArea)
}

func TestProfileEmailUpdateUniqueness(t *testing.T) {
	app, _, _ := setupApp(t)
	registerAccount(t, app, restaurantPayload("taken@profile.test"))
	token, _ := registerAccount(t, app, ngoPayload("mover@profile.test"))

	resp := doJSON(t, app, http.MethodPatch, "/api/profile", token, map[string]interface{}{
		"email": "Taken@Profile.Test",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, bodyString(t, resp), "already registered")
}

func TestProfileGoneAccount(t *testing.T) {
	app, db, _ := setupApp(t)
	token, _ := registerAccount(t, app, restaurantPayload("gone@profile.test"))

	require.NoError(t, db.Where("email = ?", "gone@profile.test").Delete(&models.User{}).Error)

	resp := doJSON(t, app, http.MethodGet, "/api/profile", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
