package model

import (
	"time"
)

// Compliance states for a scheduled visit.
const (
	CompliancePending      = "Pending"
	ComplianceCompliant    = "Compliant"
	ComplianceNonCompliant = "Non-Compliant"
)

// VisitScheduleModel tracks prenatal/postnatal appointments per
// maternal health record.
type VisitScheduleModel struct {
	VisitID  int64 `gorm:"column:visit_id;primaryKey;autoIncrement" json:"visit_id"`
	HealthID int64 `gorm:"column:health_id;not null;index" json:"health_id"`

	PrenatalVisits    int        `gorm:"column:prenatal_visits;not null;default:0" json:"prenatal_visits"`
	NextPrenatalDate  *time.Time `gorm:"column:next_prenatal_date;type:date" json:"next_prenatal_date,omitempty"`
	PostnatalVisits   int        `gorm:"column:postnatal_visits;not null;default:0" json:"postnatal_visits"`
	NextPostnatalDate *time.Time `gorm:"column:next_postnatal_date;type:date" json:"next_postnatal_date,omitempty"`

	Compliance string `gorm:"column:compliance;size:20;not null;default:'Pending'" json:"compliance"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz;autoUpdateTime" json:"updated_at"`
}

func (VisitScheduleModel) TableName() string {
	return "visit_schedules"
}
