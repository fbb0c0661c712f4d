package model

import (
	"time"
)

// Profile identifiers are assigned by the application, not a sequence:
// year*10000 + n, where n is the next free slot within the year.
const YearSpan = 10000

func YearRange(year int) (lo, hi int64) {
	lo = int64(year) * YearSpan
	hi = int64(year+1) * YearSpan
	return lo, hi
}

// ProfileModel represents the profiles table: one row per tracked
// teenage parent.
type ProfileModel struct {
	ProfileID int64  `gorm:"column:profile_id;primaryKey" json:"profile_id"`
	FirstName string `gorm:"column:first_name;size:100;not null" json:"first_name"`
	LastName  string `gorm:"column:last_name;size:100;not null" json:"last_name"`

	Birthdate  *time.Time `gorm:"column:birthdate;type:date" json:"birthdate,omitempty"`
	Age        int        `gorm:"column:age;not null;default:0" json:"age"`
	ContactNum string     `gorm:"column:contact_num;size:20" json:"contact_num"`

	// Address (PSGC names, exact-match filterable)
	Region       string `gorm:"column:region;size:100;index" json:"region"`
	Province     string `gorm:"column:province;size:100;index" json:"province"`
	Municipality string `gorm:"column:municipality;size:100;index" json:"municipality"`
	Barangay     string `gorm:"column:barangay;size:100;index" json:"barangay"`
	Zipcode      string `gorm:"column:zipcode;size:10" json:"zipcode"`

	// Household / socio-economic attributes
	MaritalStatus                string `gorm:"column:marital_status;size:50" json:"marital_status"`
	Religion                     string `gorm:"column:religion;size:100" json:"religion"`
	LivingWith                   string `gorm:"column:living_with;size:100" json:"living_with"`
	FamilyIncome                 string `gorm:"column:family_income;size:50" json:"family_income"`
	CurrentYearLevel             string `gorm:"column:current_year_level;size:100" json:"current_year_level"`
	HighestEducationalAttainment string `gorm:"column:highest_educational_attainment;size:100" json:"highest_educational_attainment"`
	FathersOccupation            string `gorm:"column:fathers_occupation;size:100" json:"fathers_occupation"`
	MothersOccupation            string `gorm:"column:mothers_occupation;size:100" json:"mothers_occupation"`
	IndigenousEthnicity          string `gorm:"column:indigenous_ethnicity;size:100" json:"indigenous_ethnicity"`
	Note                         string `gorm:"column:note;type:text" json:"note"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz;autoUpdateTime" json:"updated_at"`
}

func (ProfileModel) TableName() string {
	return "profiles"
}
