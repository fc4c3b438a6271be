package services

import (
	"cursohub/models"
	"errors"

	"gorm.io/gorm"
)

// CategoryInput is the enumerated admin-form field set for a category.
type CategoryInput struct {
	Name string
}

const courseCountExpr = "categories.*, (SELECT COUNT(*) FROM course_categories WHERE course_categories.category_id = categories.id) AS course_count"

func CreateCategory(db *gorm.DB, input CategoryInput) (*models.Category, error) {
	category := models.Category{Name: input.Name}
	if err := db.Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func UpdateCategory(db *gorm.DB, id uint, input CategoryInput) (*models.Category, error) {
	var category models.Category
	if err := db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	category.Name = input.Name
	if err := db.Save(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// DeleteCategory hard-deletes the category and detaches it from every
// course. Courses keep existing, possibly with zero categories left.
func DeleteCategory(db *gorm.DB, id uint) error {
	var category models.Category
	if err := db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&category).Association("Courses").Clear(); err != nil {
			return err
		}
		return tx.Delete(&category).Error
	})
}

func GetCategory(db *gorm.DB, id uint) (*models.Category, error) {
	var category models.Category
	if err := db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

// ListCategoriesForAdmin lists every category in name order with its
// course count.
func ListCategoriesForAdmin(db *gorm.DB) ([]models.Category, error) {
	categories := make([]models.Category, 0)
	err := db.Model(&models.Category{}).
		Select(courseCountExpr).
		Order("categories.name ASC").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}
