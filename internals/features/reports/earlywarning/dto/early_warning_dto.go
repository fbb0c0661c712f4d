package dto

import "strings"

// LocationFilter narrows the scanned population by exact address
// match. Empty or "all" on a level means no filtering on that level.
type LocationFilter struct {
	Region       string `json:"region"`
	Province     string `json:"province"`
	Municipality string `json:"municipality"`
	Barangay     string `json:"barangay"`
}

func normalize(v string) string {
	v = strings.TrimSpace(v)
	if strings.EqualFold(v, "all") {
		return ""
	}
	return v
}

// Normalized returns the filter with "all" collapsed to empty.
func (f LocationFilter) Normalized() LocationFilter {
	return LocationFilter{
		Region:       normalize(f.Region),
		Province:     normalize(f.Province),
		Municipality: normalize(f.Municipality),
		Barangay:     normalize(f.Barangay),
	}
}

// Risk tiers. There is no "low": profiles with neither flag are
// excluded from the report entirely.
const (
	RiskHigh   = "high"
	RiskMedium = "medium"
)

// EarlyWarningCase is one flagged individual in the report feed.
type EarlyWarningCase struct {
	ProfileID         int64  `json:"profile_id"`
	Name              string `json:"name"`
	Age               int    `json:"age"`
	Location          string `json:"location"`
	RepeatedPregnancy bool   `json:"repeated_pregnancy"`
	PregnancyCount    int    `json:"pregnancy_count"`
	SchoolDropout     bool   `json:"school_dropout"`
	DropoutDate       string `json:"dropout_date"`
	RiskLevel         string `json:"risk_level"`
}

// WarningStats are independent tallies over the flagged list: a "high"
// case counts in both flag tallies.
type WarningStats struct {
	TotalHighRisk          int `json:"total_high_risk"`
	TotalRepeatedPregnancy int `json:"total_repeated_pregnancy"`
	TotalDropouts          int `json:"total_dropouts"`
}
