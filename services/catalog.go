package services

import (
	"cursohub/models"
	"errors"
	"strings"

	"gorm.io/gorm"
)

// enrollmentCountExpr fills Course.EnrollmentCount without forcing a
// GROUP BY on the outer query.
const enrollmentCountExpr = "courses.*, (SELECT COUNT(*) FROM enrollments WHERE enrollments.course_id = courses.id) AS enrollment_count"

// FindCategory resolves a category id for the browse page. A missing
// or unknown id yields nil, never an error; the caller then skips the
// category filter.
func FindCategory(db *gorm.DB, id uint) (*models.Category, error) {
	if id == 0 {
		return nil, nil
	}

	var category models.Category
	if err := db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

// BrowseCourses returns the filtered course list with categories and
// enrollment counts. Search matches name OR description,
// case-insensitive substring; the category filter requires at least
// one categorization link. Both compose with AND.
func BrowseCourses(db *gorm.DB, search string, categoryID uint) ([]models.Course, error) {
	query := db.Model(&models.Course{}).
		Select(enrollmentCountExpr).
		Preload("Categories")

	if categoryID != 0 {
		query = query.
			Joins("JOIN course_categories ON course_categories.course_id = courses.id").
			Where("course_categories.category_id = ?", categoryID)
	}

	if search != "" {
		term := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(courses.name) LIKE ? OR LOWER(courses.description) LIKE ?", term, term)
	}

	courses := make([]models.Course, 0)
	if err := query.Order("courses.id ASC").Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

// PopularCategories ranks categories by distinct enrolled users across
// their courses, excluding zero-count ones. When no category has any
// enrolled user at all, it falls back to the first categories in
// default order, each with a zero count. The fallback is a deliberate
// branch, not a side effect of the HAVING clause.
func PopularCategories(db *gorm.DB, limit int) ([]models.Category, error) {
	ranked := make([]models.Category, 0)
	err := db.Model(&models.Category{}).
		Select("categories.*, COUNT(DISTINCT enrollments.user_id) AS enrolled_users").
		Joins("JOIN course_categories ON course_categories.category_id = categories.id").
		Joins("LEFT JOIN enrollments ON enrollments.course_id = course_categories.course_id").
		Group("categories.id").
		Having("COUNT(DISTINCT enrollments.user_id) > 0").
		Order("enrolled_users DESC").
		Limit(limit).
		Find(&ranked).Error
	if err != nil {
		return nil, err
	}

	if len(ranked) > 0 {
		return ranked, nil
	}

	fallback := make([]models.Category, 0)
	if err := db.Order("id ASC").Limit(limit).Find(&fallback).Error; err != nil {
		return nil, err
	}
	for i := range fallback {
		fallback[i].EnrolledUsers = 0
	}
	return fallback, nil
}

// RecommendedCourses ranks courses by total enrollment count
// descending, ties broken by insertion order. The optional category
// filter matches the browse filter.
func RecommendedCourses(db *gorm.DB, categoryID uint, limit int) ([]models.Course, error) {
	query := db.Model(&models.Course{}).
		Select(enrollmentCountExpr).
		Preload("Categories")

	if categoryID != 0 {
		query = query.
			Joins("JOIN course_categories ON course_categories.course_id = courses.id").
			Where("course_categories.category_id = ?", categoryID)
	}

	courses := make([]models.Course, 0)
	err := query.
		Order("enrollment_count DESC, courses.id ASC").
		Limit(limit).
		Find(&courses).Error
	if err != nil {
		return nil, err
	}
	return courses, nil
}

// EnrolledCourseIDs lists the ids of courses the user is enrolled in.
func EnrolledCourseIDs(db *gorm.DB, userID uint) ([]uint, error) {
	ids := make([]uint, 0)
	err := db.Model(&models.Enrollment{}).
		Where("user_id = ?", userID).
		Order("course_id ASC").
		Pluck("course_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// EnrolledCourses returns the user's in-progress courses with
// categories and enrollment counts, for the dashboard.
func EnrolledCourses(db *gorm.DB, userID uint) ([]models.Course, error) {
	courses := make([]models.Course, 0)
	err := db.Model(&models.Course{}).
		Select(enrollmentCountExpr).
		Joins("JOIN enrollments ON enrollments.course_id = courses.id").
		Where("enrollments.user_id = ?", userID).
		Preload("Categories").
		Order("courses.id ASC").
		Find(&courses).Error
	if err != nil {
		return nil, err
	}
	return courses, nil
}
