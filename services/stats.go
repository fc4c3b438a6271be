package services

import (
	"cursohub/models"

	"gorm.io/gorm"
)

// DashboardTotals are the admin-dashboard counters, recomputed on
// every call.
type DashboardTotals struct {
	TotalCourses     int64 `json:"totalCourses"`
	TotalCategories  int64 `json:"totalCategories"`
	TotalUsers       int64 `json:"totalUsers"`
	TotalEnrollments int64 `json:"totalEnrollments"`
}

// DashboardStats counts courses, categories, users and enrollment
// rows. Four independent queries, no caching.
func DashboardStats(db *gorm.DB) (DashboardTotals, error) {
	var totals DashboardTotals

	if err := db.Model(&models.Course{}).Count(&totals.TotalCourses).Error; err != nil {
		return totals, err
	}
	if err := db.Model(&models.Category{}).Count(&totals.TotalCategories).Error; err != nil {
		return totals, err
	}
	if err := db.Model(&models.User{}).Count(&totals.TotalUsers).Error; err != nil {
		return totals, err
	}
	if err := db.Model(&models.Enrollment{}).Count(&totals.TotalEnrollments).Error; err != nil {
		return totals, err
	}

	return totals, nil
}
