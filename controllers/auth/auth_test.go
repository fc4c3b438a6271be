package authController_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cursohub/config"
	"cursohub/database"
	"cursohub/models"
	authRoutes "cursohub/routers/authRoutes"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func setupTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	config.AppConfig = &config.Config{JWTKey: "test-secret", SaltRound: 4}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app)
	return app, db
}

func postJSON(t *testing.T, app *fiber.App, target, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	return resp
}

func TestSignupAndLogin(t *testing.T) {
	app, db := setupTestApp(t)

	resp := postJSON(t, app, "/auth/signup", `{"name":"Ana Silva","email":"ana@example.com","password":"secret-password"}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("signup status %d, want 201", resp.StatusCode)
	}

	var user models.User
	if err := db.Where("email = ?", "ana@example.com").First(&user).Error; err != nil {
		t.Fatalf("user not persisted: %v", err)
	}
	if user.Password == "secret-password" {
		t.Fatal("password stored in plain text")
	}

	resp = postJSON(t, app, "/auth/login", `{"email":"ana@example.com","password":"secret-password"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login status %d, want 200", resp.StatusCode)
	}

	var envelope struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Token == "" {
		t.Fatal("login did not issue a token")
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	app, _ := setupTestApp(t)

	body := `{"name":"Ana Silva","email":"ana@example.com","password":"secret-password"}`
	if resp := postJSON(t, app, "/auth/signup", body); resp.StatusCode != http.StatusCreated {
		t.Fatalf("first signup status %d, want 201", resp.StatusCode)
	}
	if resp := postJSON(t, app, "/auth/signup", body); resp.StatusCode != http.StatusConflict {
		t.Fatalf("second signup status %d, want 409", resp.StatusCode)
	}
}

func TestSignupValidation(t *testing.T) {
	app, _ := setupTestApp(t)

	resp := postJSON(t, app, "/auth/signup", `{"name":"A","email":"not-an-email","password":"short"}`)
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("status %d, want 422", resp.StatusCode)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	app, _ := setupTestApp(t)

	postJSON(t, app, "/auth/signup", `{"name":"Ana Silva","email":"ana@example.com","password":"secret-password"}`)

	resp := postJSON(t, app, "/auth/login", `{"email":"ana@example.com","password":"wrong-password"}`)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status %d, want 401", resp.StatusCode)
	}
}
