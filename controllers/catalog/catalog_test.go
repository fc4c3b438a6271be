package catalogController_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"cursohub/config"
	"cursohub/database"
	"cursohub/middleware"
	"cursohub/models"
	catalogRoutes "cursohub/routers/catalogRoutes"

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
	catalogRoutes.SetupCatalogRoutes(app)
	return app, db
}

func authRequest(t *testing.T, user models.User, method, target string) *http.Request {
	t.Helper()
	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	req := httptest.NewRequest(method, target, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func decodeEnvelope(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return body
}

func TestEnrollEndpointIsIdempotent(t *testing.T) {
	app, db := setupTestApp(t)

	user := models.User{Name: "Ana", Email: "ana@example.com", Password: "pw"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	course := models.Course{Name: "Go Fundamentals", Description: "d", DurationHours: 10, Provider: "p"}
	if err := db.Create(&course).Error; err != nil {
		t.Fatalf("seed course: %v", err)
	}

	target := fmt.Sprintf("/courses/%d/enroll", course.ID)
	for i := 0; i < 2; i++ {
		resp, err := app.Test(authRequest(t, user, http.MethodPost, target))
		if err != nil {
			t.Fatalf("request %d: %v", i+1, err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("request %d: status %d, want 200", i+1, resp.StatusCode)
		}
	}

	var n int64
	if err := db.Model(&models.Enrollment{}).Where("user_id = ? AND course_id = ?", user.ID, course.ID).Count(&n).Error; err != nil {
		t.Fatalf("count enrollments: %v", err)
	}
	if n != 1 {
		t.Fatalf("join rows: got %d want 1", n)
	}
}

func TestUnenrollEndpointNoopForNonMember(t *testing.T) {
	app, db := setupTestApp(t)

	user := models.User{Name: "Ana", Email: "ana@example.com", Password: "pw"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	course := models.Course{Name: "Go Fundamentals", Description: "d", DurationHours: 10, Provider: "p"}
	if err := db.Create(&course).Error; err != nil {
		t.Fatalf("seed course: %v", err)
	}

	target := fmt.Sprintf("/courses/%d/unenroll", course.ID)
	resp, err := app.Test(authRequest(t, user, http.MethodDelete, target))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d, want 200", resp.StatusCode)
	}
}

func TestEnrollEndpointUnknownCourse(t *testing.T) {
	app, db := setupTestApp(t)

	user := models.User{Name: "Ana", Email: "ana@example.com", Password: "pw"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}

	resp, err := app.Test(authRequest(t, user, http.MethodPost, "/courses/999/enroll"))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status %d, want 404", resp.StatusCode)
	}
}

func TestBrowseCoursesPayload(t *testing.T) {
	app, db := setupTestApp(t)

	user := models.User{Name: "Ana", Email: "ana@example.com", Password: "pw"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	category := models.Category{Name: "Development"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
	course := models.Course{
		Name: "Go Fundamentals", Description: "d", DurationHours: 10, Provider: "p",
		Categories: []models.Category{category},
	}
	if err := db.Create(&course).Error; err != nil {
		t.Fatalf("seed course: %v", err)
	}
	if err := db.Create(&models.Enrollment{UserID: user.ID, CourseID: course.ID}).Error; err != nil {
		t.Fatalf("seed enrollment: %v", err)
	}

	target := fmt.Sprintf("/courses/?categoria_id=%d", category.ID)
	resp, err := app.Test(authRequest(t, user, http.MethodGet, target))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d, want 200", resp.StatusCode)
	}

	body := decodeEnvelope(t, resp)
	data, ok := body["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("missing data envelope: %v", body)
	}
	for _, key := range []string{"courses", "popularCategories", "recommendedCourses", "search", "selectedCategoryId", "selectedCategory", "enrolledCourseIds"} {
		if _, ok := data[key]; !ok {
			t.Fatalf("payload missing %q: %v", key, data)
		}
	}
	if data["selectedCategory"] == nil {
		t.Fatalf("selectedCategory not resolved")
	}

	ids, ok := data["enrolledCourseIds"].([]interface{})
	if !ok || len(ids) != 1 {
		t.Fatalf("enrolledCourseIds: got %v", data["enrolledCourseIds"])
	}
}

func TestBrowseCoursesUnknownCategoryFallsBack(t *testing.T) {
	app, db := setupTestApp(t)

	user := models.User{Name: "Ana", Email: "ana@example.com", Password: "pw"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	course := models.Course{Name: "Go Fundamentals", Description: "d", DurationHours: 10, Provider: "p"}
	if err := db.Create(&course).Error; err != nil {
		t.Fatalf("seed course: %v", err)
	}

	resp, err := app.Test(authRequest(t, user, http.MethodGet, "/courses/?categoria_id=999"))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d, want 200", resp.StatusCode)
	}

	body := decodeEnvelope(t, resp)
	data := body["data"].(map[string]interface{})
	if data["selectedCategory"] != nil {
		t.Fatalf("unknown category should resolve to null, got %v", data["selectedCategory"])
	}
	courses, ok := data["courses"].([]interface{})
	if !ok || len(courses) != 1 {
		t.Fatalf("listing should be unfiltered: got %v", data["courses"])
	}
}

func TestBrowseCoursesRequiresAuth(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/courses/", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status %d, want 401", resp.StatusCode)
	}
}
