package services

import (
	"cursohub/database"
	"cursohub/models"
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func testDB(tb testing.TB) *gorm.DB {
	tb.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		tb.Fatalf("failed to open test db: %v", err)
	}

	// A pooled second connection would get its own empty :memory:
	// database, so pin the pool to one.
	sqlDB, err := db.DB()
	if err != nil {
		tb.Fatalf("failed to get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if err := database.Migrate(db); err != nil {
		tb.Fatalf("failed to migrate test db: %v", err)
	}

	tb.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return db
}

var userSeq int

func seedUser(tb testing.TB, db *gorm.DB) models.User {
	tb.Helper()
	userSeq++
	u := models.User{
		Name:     fmt.Sprintf("User %d", userSeq),
		Email:    fmt.Sprintf("user%d@example.com", userSeq),
		Password: "pw",
	}
	if err := db.Create(&u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func seedCategory(tb testing.TB, db *gorm.DB, name string) models.Category {
	tb.Helper()
	cat := models.Category{Name: name}
	if err := db.Create(&cat).Error; err != nil {
		tb.Fatalf("seed category: %v", err)
	}
	return cat
}

func seedCourse(tb testing.TB, db *gorm.DB, name, description string, categories ...models.Category) models.Course {
	tb.Helper()
	course := models.Course{
		Name:          name,
		Description:   description,
		DurationHours: 10,
		Provider:      "Test Academy",
		Categories:    categories,
	}
	if err := db.Create(&course).Error; err != nil {
		tb.Fatalf("seed course: %v", err)
	}
	return course
}

func seedEnrollment(tb testing.TB, db *gorm.DB, userID, courseID uint) {
	tb.Helper()
	if err := db.Create(&models.Enrollment{UserID: userID, CourseID: courseID}).Error; err != nil {
		tb.Fatalf("seed enrollment: %v", err)
	}
}

func enrollmentCount(tb testing.TB, db *gorm.DB, userID, courseID uint) int64 {
	tb.Helper()
	var n int64
	err := db.Model(&models.Enrollment{}).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Count(&n).Error
	if err != nil {
		tb.Fatalf("count enrollments: %v", err)
	}
	return n
}

func courseNames(courses []models.Course) []string {
	names := make([]string, len(courses))
	for i, c := range courses {
		names[i] = c.Name
	}
	return names
}

func categoryNames(categories []models.Category) []string {
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.Name
	}
	return names
}
