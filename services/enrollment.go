package services

import (
	"cursohub/models"
	"errors"

	"gorm.io/gorm"
)

// Enroll inserts the user<->course join row. Enrolling an already
// enrolled user is a successful no-op, so exactly one row ever exists
// per pair.
func Enroll(db *gorm.DB, userID, courseID uint) error {
	if err := courseMustExist(db, courseID); err != nil {
		return err
	}

	var count int64
	err := db.Model(&models.Enrollment{}).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return db.Create(&models.Enrollment{UserID: userID, CourseID: courseID}).Error
}

// Unenroll deletes the join row. Unenrolling a non-enrolled user is a
// successful no-op.
func Unenroll(db *gorm.DB, userID, courseID uint) error {
	if err := courseMustExist(db, courseID); err != nil {
		return err
	}

	return db.
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Delete(&models.Enrollment{}).Error
}

func courseMustExist(db *gorm.DB, courseID uint) error {
	var course models.Course
	if err := db.Select("id").First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
