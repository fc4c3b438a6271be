package models

import (
	"time"
)

type Category struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name string `gorm:"not null" json:"name"`

	Courses []Course `gorm:"many2many:course_categories" json:"courses,omitempty"`

	// Filled by aggregate queries, not a column.
	CourseCount   int64 `gorm:"->;-:migration" json:"course_count"`
	EnrolledUsers int64 `gorm:"->;-:migration" json:"enrolled_users"`
}
