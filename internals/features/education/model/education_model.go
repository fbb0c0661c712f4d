package model

import (
	"time"
)

// Enrollment statuses seen in the wild; Status is free-form but these
// are the ones the UI and the early-warning deriver care about.
const (
	StatusEnrolled  = "Enrolled"
	StatusDropout   = "Dropout"
	StatusGraduated = "Graduated"
	StatusOnHold    = "On Hold"
)

// EducationModel is one enrollment/training history entry per profile.
type EducationModel struct {
	EducationID int64 `gorm:"column:education_id;primaryKey;autoIncrement" json:"education_id"`
	ProfileID   int64 `gorm:"column:profile_id;not null;index" json:"profile_id"`

	ProgramType string     `gorm:"column:program_type;size:100" json:"program_type"`
	Course      string     `gorm:"column:course;size:150" json:"course"`
	Status      string     `gorm:"column:status;size:50;index" json:"status"`
	Institution string     `gorm:"column:institution;size:150" json:"institution"`
	Date        *time.Time `gorm:"column:enroll_dropout_date;type:date" json:"enroll_dropout_date,omitempty"`
	GradeLevel  string     `gorm:"column:grade_level;size:50" json:"grade_level"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz;autoUpdateTime" json:"updated_at"`
}

func (EducationModel) TableName() string {
	return "education_records"
}
