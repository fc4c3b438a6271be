package models

import (
	"time"
)

// Course is a catalog entry. Categories is an attribute-less join,
// enrollments carry their own timestamps (see Enrollment).
type Course struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name          string `gorm:"not null" json:"name"`
	Description   string `gorm:"not null" json:"description"`
	DurationHours int    `gorm:"not null" json:"duration_hours"`
	Provider      string `gorm:"not null" json:"provider"`
	Link          string `gorm:"default:''" json:"link"`

	Categories []Category `gorm:"many2many:course_categories" json:"categories"`
	Users      []User     `gorm:"many2many:enrollments" json:"-"`

	// Filled by aggregate queries, not a column.
	EnrollmentCount int64 `gorm:"->;-:migration" json:"enrollment_count"`
}
