package model

import (
	"strings"
	"time"
)

// MaternalHealthModel is a pregnancy/health snapshot for a profile.
// The record created together with the profile reuses the profile id
// as health_id; records added later get fresh ids above the year
// range, so "latest by descending health_id" stays meaningful.
type MaternalHealthModel struct {
	HealthID  int64 `gorm:"column:health_id;primaryKey" json:"health_id"`
	ProfileID int64 `gorm:"column:profile_id;not null;index" json:"profile_id"`

	PregnancyStatus  string `gorm:"column:pregnancy_status;size:50" json:"pregnancy_status"`
	MedicalHistory   string `gorm:"column:medical_history;type:text" json:"medical_history"`
	TypesOfSupport   string `gorm:"column:types_of_support;type:text" json:"types_of_support"`
	StageOfPregnancy string `gorm:"column:stage_of_pregnancy;size:50" json:"stage_of_pregnancy"`
	NumOfPregnancies int    `gorm:"column:num_of_pregnancies;not null;default:0" json:"num_of_pregnancies"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz;autoUpdateTime" json:"updated_at"`
}

func (MaternalHealthModel) TableName() string {
	return "maternal_health_records"
}

// Medical-history column format: comma-joined checkbox entries, plus an
// optional free-text "other" entry marked by a leading space so it can
// be told apart from the checkbox values on decode.

func EncodeHistoryList(items []string, other string) string {
	parts := make([]string, 0, len(items)+1)
	for _, it := range items {
		it = strings.TrimSpace(it)
		if it != "" {
			parts = append(parts, it)
		}
	}
	if strings.TrimSpace(other) != "" {
		parts = append(parts, " "+strings.TrimSpace(other))
	}
	return strings.Join(parts, ",")
}

func DecodeHistoryList(encoded string) (items []string, other string) {
	items = []string{}
	if encoded == "" {
		return items, ""
	}
	for _, raw := range strings.Split(encoded, ",") {
		if strings.HasPrefix(raw, " ") {
			other = strings.TrimSpace(raw)
			continue
		}
		if v := strings.TrimSpace(raw); v != "" {
			items = append(items, v)
		}
	}
	return items, other
}

// Support-needs lists have no "other" entry; plain comma join.

func EncodeSupportList(items []string) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		if v := strings.TrimSpace(it); v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, ",")
}

func DecodeSupportList(encoded string) []string {
	out := []string{}
	if encoded == "" {
		return out
	}
	for _, raw := range strings.Split(encoded, ",") {
		if v := strings.TrimSpace(raw); v != "" {
			out = append(out, v)
		}
	}
	return out
}
