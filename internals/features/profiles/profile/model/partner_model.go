package model

import (
	"time"
)

// PartnerModel is the co-parent record. partner_id always equals the
// owning profile_id (one-to-one by shared key, no own sequence).
type PartnerModel struct {
	PartnerID int64 `gorm:"column:partner_id;primaryKey" json:"partner_id"`
	ProfileID int64 `gorm:"column:profile_id;not null;uniqueIndex" json:"profile_id"`

	FirstName  string     `gorm:"column:first_name;size:100" json:"first_name"`
	LastName   string     `gorm:"column:last_name;size:100" json:"last_name"`
	Age        int        `gorm:"column:age;not null;default:0" json:"age"`
	Birthdate  *time.Time `gorm:"column:birthdate;type:date" json:"birthdate,omitempty"`
	Occupation string     `gorm:"column:occupation;size:100" json:"occupation"`
	Income     string     `gorm:"column:income;size:50" json:"income"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz;autoUpdateTime" json:"updated_at"`
}

func (PartnerModel) TableName() string {
	return "partners"
}
