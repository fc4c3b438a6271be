package models

import (
	"time"
)

// Enrollment is the User<->Course join row. Existence is the only
// state; the timestamps come with the row, nothing else does.
type Enrollment struct {
	UserID    uint      `gorm:"primaryKey" json:"user_id"`
	CourseID  uint      `gorm:"primaryKey" json:"course_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
