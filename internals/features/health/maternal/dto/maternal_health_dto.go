package dto

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	m "tpims_backend/internals/features/health/maternal/model"
)

const dateLayout = "2006-01-02"

/* =========================================================
   HEALTH RECORDS
   ========================================================= */

type CreateHealthRecordRequest struct {
	ProfileID        int64    `json:"profile_id" validate:"required,gt=0"`
	PregnancyStatus  string   `json:"pregnancy_status" validate:"omitempty,max=50"`
	MedicalHistory   []string `json:"medical_history" validate:"omitempty,dive,max=100"`
	OtherHistory     string   `json:"other_history" validate:"omitempty,max=200"`
	TypesOfSupport   []string `json:"types_of_support" validate:"omitempty,dive,max=100"`
	StageOfPregnancy string   `json:"stage_of_pregnancy" validate:"omitempty,max=50"`
	NumOfPregnancies int      `json:"num_of_pregnancies" validate:"omitempty,gte=0,lte=30"`
}

func (r *CreateHealthRecordRequest) Normalize() {
	r.PregnancyStatus = strings.TrimSpace(r.PregnancyStatus)
	r.OtherHistory = strings.TrimSpace(r.OtherHistory)
	r.StageOfPregnancy = strings.TrimSpace(r.StageOfPregnancy)
	for i := range r.MedicalHistory {
		r.MedicalHistory[i] = strings.TrimSpace(r.MedicalHistory[i])
	}
	for i := range r.TypesOfSupport {
		r.TypesOfSupport[i] = strings.TrimSpace(r.TypesOfSupport[i])
	}
}

func (r CreateHealthRecordRequest) ToModel() m.MaternalHealthModel {
	return m.MaternalHealthModel{
		ProfileID:        r.ProfileID,
		PregnancyStatus:  r.PregnancyStatus,
		MedicalHistory:   m.EncodeHistoryList(r.MedicalHistory, r.OtherHistory),
		TypesOfSupport:   m.EncodeSupportList(r.TypesOfSupport),
		StageOfPregnancy: r.StageOfPregnancy,
		NumOfPregnancies: r.NumOfPregnancies,
	}
}

type HealthRecordResponse struct {
	HealthID         int64    `json:"health_id"`
	ProfileID        int64    `json:"profile_id"`
	PregnancyStatus  string   `json:"pregnancy_status,omitempty"`
	MedicalHistory   []string `json:"medical_history"`
	OtherHistory     string   `json:"other_history,omitempty"`
	TypesOfSupport   []string `json:"types_of_support"`
	StageOfPregnancy string   `json:"stage_of_pregnancy,omitempty"`
	NumOfPregnancies int      `json:"num_of_pregnancies"`
	CreatedAt        string   `json:"created_at,omitempty"`
}

func FromHealthModel(h m.MaternalHealthModel) HealthRecordResponse {
	items, other := m.DecodeHistoryList(h.MedicalHistory)
	created := ""
	if !h.CreatedAt.IsZero() {
		created = h.CreatedAt.Format(time.RFC3339)
	}
	return HealthRecordResponse{
		HealthID:         h.HealthID,
		ProfileID:        h.ProfileID,
		PregnancyStatus:  h.PregnancyStatus,
		MedicalHistory:   items,
		OtherHistory:     other,
		TypesOfSupport:   m.DecodeSupportList(h.TypesOfSupport),
		StageOfPregnancy: h.StageOfPregnancy,
		NumOfPregnancies: h.NumOfPregnancies,
		CreatedAt:        created,
	}
}

func FromHealthModels(rows []m.MaternalHealthModel) []HealthRecordResponse {
	out := make([]HealthRecordResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, FromHealthModel(row))
	}
	return out
}

/* =========================================================
   VISIT SCHEDULES
   ========================================================= */

type SaveVisitScheduleRequest struct {
	HealthID          int64  `json:"health_id" validate:"required,gt=0"`
	PrenatalVisits    int    `json:"prenatal_visits" validate:"omitempty,gte=0,lte=100"`
	NextPrenatalDate  string `json:"next_prenatal_date" validate:"omitempty,datetime=2006-01-02"`
	PostnatalVisits   int    `json:"postnatal_visits" validate:"omitempty,gte=0,lte=100"`
	NextPostnatalDate string `json:"next_postnatal_date" validate:"omitempty,datetime=2006-01-02"`
	Compliance        string `json:"compliance" validate:"omitempty,oneof=Pending Compliant Non-Compliant"`
}

func (r SaveVisitScheduleRequest) ToModel() (m.VisitScheduleModel, error) {
	parse := func(s string) (*time.Time, error) {
		if strings.TrimSpace(s) == "" {
			return nil, nil
		}
		t, err := time.Parse(dateLayout, s)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid date: "+s)
		}
		return &t, nil
	}

	prenatal, err := parse(r.NextPrenatalDate)
	if err != nil {
		return m.VisitScheduleModel{}, err
	}
	postnatal, err := parse(r.NextPostnatalDate)
	if err != nil {
		return m.VisitScheduleModel{}, err
	}

	compliance := strings.TrimSpace(r.Compliance)
	if compliance == "" {
		compliance = m.CompliancePending
	}

	return m.VisitScheduleModel{
		HealthID:          r.HealthID,
		PrenatalVisits:    r.PrenatalVisits,
		NextPrenatalDate:  prenatal,
		PostnatalVisits:   r.PostnatalVisits,
		NextPostnatalDate: postnatal,
		Compliance:        compliance,
	}, nil
}

type VisitScheduleResponse struct {
	VisitID           int64  `json:"visit_id"`
	HealthID          int64  `json:"health_id"`
	PrenatalVisits    int    `json:"prenatal_visits"`
	NextPrenatalDate  string `json:"next_prenatal_date,omitempty"`
	PostnatalVisits   int    `json:"postnatal_visits"`
	NextPostnatalDate string `json:"next_postnatal_date,omitempty"`
	Compliance        string `json:"compliance"`
}

func FromVisitModel(v m.VisitScheduleModel) VisitScheduleResponse {
	fmtDate := func(t *time.Time) string {
		if t == nil {
			return ""
		}
		return t.Format(dateLayout)
	}
	return VisitScheduleResponse{
		VisitID:           v.VisitID,
		HealthID:          v.HealthID,
		PrenatalVisits:    v.PrenatalVisits,
		NextPrenatalDate:  fmtDate(v.NextPrenatalDate),
		PostnatalVisits:   v.PostnatalVisits,
		NextPostnatalDate: fmtDate(v.NextPostnatalDate),
		Compliance:        v.Compliance,
	}
}

func FromVisitModels(rows []m.VisitScheduleModel) []VisitScheduleResponse {
	out := make([]VisitScheduleResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, FromVisitModel(row))
	}
	return out
}
