package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"airmen-backend/internal/middleware"
	"airmen-backend/internal/model"
	"airmen-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func authApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}))

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&model.User{
		Name:      "Base Admin",
		ServiceNo: "00000",
		Password:  string(hash),
		Role:      "Admin",
	}).Error)

	auth := NewAuthHandler(repository.NewUserRepository(db))

	app := fiber.New()
	app.Post("/api/login", auth.Login)
	admin := app.Group("/api/admin", middleware.Auth, middleware.Role("Admin"))
	admin.Get("/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	return app
}

func login(t *testing.T, app *fiber.App, serviceNo, password string) *http.Response {
	t.Helper()
	payload, err := json.Marshal(LoginRequest{ServiceNo: serviceNo, Password: password})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestLoginIssuesUsableToken(t *testing.T) {
	app := authApp(t)

	resp := login(t, app, "00000", "admin123")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode(t, resp)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	guarded, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, guarded.StatusCode)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	app := authApp(t)

	resp := login(t, app, "00000", "wrong")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = login(t, app, "99999", "admin123")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdminGroupRequiresToken(t *testing.T) {
	app := authApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/ping", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/api/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
