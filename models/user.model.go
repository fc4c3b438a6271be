package models

import (
	"time"
)

type User struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name      string     `gorm:"default:''" json:"name"`
	Email     string     `gorm:"unique;not null" json:"email"`
	Mobile    string     `gorm:"default:''" json:"mobile"`
	Role      string     `gorm:"default:'USER'" json:"role"` // USER or ADMIN
	Password  string     `gorm:"not null" json:"-"`
	LastLogin *time.Time `json:"last_login"`

	Courses []Course `gorm:"many2many:enrollments" json:"courses,omitempty"`
}
