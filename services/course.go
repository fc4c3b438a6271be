package services

import (
	"cursohub/models"
	"errors"

	"gorm.io/gorm"
)

// CourseInput is the enumerated admin-form field set for a course.
// CategoryIDs nil means the field was omitted entirely: on create that
// yields no categories, on update the existing set is left unchanged.
// A present list (including an empty one) is synced as the full set.
type CourseInput struct {
	Name          string
	Description   string
	DurationHours int
	Provider      string
	Link          string
	CategoryIDs   *[]uint
}

// CreateCourse persists a new course and sets its full category list
// in the same transaction, so a bad category id leaves nothing behind.
func CreateCourse(db *gorm.DB, input CourseInput) (*models.Course, error) {
	course := models.Course{
		Name:          input.Name,
		Description:   input.Description,
		DurationHours: input.DurationHours,
		Provider:      input.Provider,
		Link:          input.Link,
	}

	var ids []uint
	if input.CategoryIDs != nil {
		ids = *input.CategoryIDs
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		categories, err := resolveCategories(tx, ids)
		if err != nil {
			return err
		}
		if err := tx.Create(&course).Error; err != nil {
			return err
		}
		if len(categories) > 0 {
			return tx.Model(&course).Association("Categories").Replace(categories)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return GetCourse(db, course.ID)
}

// UpdateCourse replaces the course fields and, when a category list
// was sent, syncs the category set to exactly that list.
func UpdateCourse(db *gorm.DB, id uint, input CourseInput) (*models.Course, error) {
	var course models.Course
	if err := db.First(&course, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	course.Name = input.Name
	course.Description = input.Description
	course.DurationHours = input.DurationHours
	course.Provider = input.Provider
	course.Link = input.Link

	err := db.Transaction(func(tx *gorm.DB) error {
		var categories []models.Category
		if input.CategoryIDs != nil {
			var err error
			categories, err = resolveCategories(tx, *input.CategoryIDs)
			if err != nil {
				return err
			}
		}

		if err := tx.Save(&course).Error; err != nil {
			return err
		}

		if input.CategoryIDs == nil {
			return nil
		}
		if len(categories) == 0 {
			return tx.Model(&course).Association("Categories").Clear()
		}
		return tx.Model(&course).Association("Categories").Replace(categories)
	})
	if err != nil {
		return nil, err
	}

	return GetCourse(db, course.ID)
}

// DeleteCourse hard-deletes the course together with its
// categorization and enrollment join rows.
func DeleteCourse(db *gorm.DB, id uint) error {
	var course models.Course
	if err := db.First(&course, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&course).Association("Categories").Clear(); err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", course.ID).Delete(&models.Enrollment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&course).Error
	})
}

// GetCourse fetches one course with categories and enrollment count.
func GetCourse(db *gorm.DB, id uint) (*models.Course, error) {
	var course models.Course
	err := db.Model(&models.Course{}).
		Select(enrollmentCountExpr).
		Preload("Categories").
		First(&course, "courses.id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &course, nil
}

// ListCoursesForAdmin lists every course, newest first, with
// categories and enrollment counts.
func ListCoursesForAdmin(db *gorm.DB) ([]models.Course, error) {
	courses := make([]models.Course, 0)
	err := db.Model(&models.Course{}).
		Select(enrollmentCountExpr).
		Preload("Categories").
		Order("courses.created_at DESC, courses.id DESC").
		Find(&courses).Error
	if err != nil {
		return nil, err
	}
	return courses, nil
}

// resolveCategories loads the referenced categories and rejects the
// whole write when any id is unknown, before anything is persisted.
func resolveCategories(tx *gorm.DB, ids []uint) ([]models.Category, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	unique := make([]uint, 0, len(ids))
	seen := make(map[uint]bool, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}

	var categories []models.Category
	if err := tx.Where("id IN ?", unique).Find(&categories).Error; err != nil {
		return nil, err
	}
	if len(categories) != len(unique) {
		return nil, &ValidationError{Fields: map[string]string{
			"category_ids": "One or more categories do not exist!",
		}}
	}
	return categories, nil
}
