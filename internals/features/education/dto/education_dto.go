package dto

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	m "tpims_backend/internals/features/education/model"
)

const dateLayout = "2006-01-02"

type CreateEducationRequest struct {
	ProfileID   int64  `json:"profile_id" validate:"required,gt=0"`
	ProgramType string `json:"program_type" validate:"omitempty,max=100"`
	Course      string `json:"course" validate:"omitempty,max=150"`
	Status      string `json:"status" validate:"required,max=50"`
	Institution string `json:"institution" validate:"omitempty,max=150"`
	Date        string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	GradeLevel  string `json:"grade_level" validate:"omitempty,max=50"`
}

func (r *CreateEducationRequest) Normalize() {
	r.ProgramType = strings.TrimSpace(r.ProgramType)
	r.Course = strings.TrimSpace(r.Course)
	r.Status = strings.TrimSpace(r.Status)
	r.Institution = strings.TrimSpace(r.Institution)
	r.GradeLevel = strings.TrimSpace(r.GradeLevel)
}

func (r CreateEducationRequest) ToModel() (m.EducationModel, error) {
	var date *time.Time
	if strings.TrimSpace(r.Date) != "" {
		t, err := time.Parse(dateLayout, r.Date)
		if err != nil {
			return m.EducationModel{}, fiber.NewError(fiber.StatusBadRequest, "Invalid date: "+r.Date)
		}
		date = &t
	}
	return m.EducationModel{
		ProfileID:   r.ProfileID,
		ProgramType: r.ProgramType,
		Course:      r.Course,
		Status:      r.Status,
		Institution: r.Institution,
		Date:        date,
		GradeLevel:  r.GradeLevel,
	}, nil
}

type UpdateEducationRequest struct {
	ProgramType string `json:"program_type" validate:"omitempty,max=100"`
	Course      string `json:"course" validate:"omitempty,max=150"`
	Status      string `json:"status" validate:"required,max=50"`
	Institution string `json:"institution" validate:"omitempty,max=150"`
	Date        string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	GradeLevel  string `json:"grade_level" validate:"omitempty,max=50"`
}

func (r *UpdateEducationRequest) Normalize() {
	r.ProgramType = strings.TrimSpace(r.ProgramType)
	r.Course = strings.TrimSpace(r.Course)
	r.Status = strings.TrimSpace(r.Status)
	r.Institution = strings.TrimSpace(r.Institution)
	r.GradeLevel = strings.TrimSpace(r.GradeLevel)
}

type EducationResponse struct {
	EducationID int64  `json:"education_id"`
	ProfileID   int64  `json:"profile_id"`
	ProgramType string `json:"program_type,omitempty"`
	Course      string `json:"course,omitempty"`
	Status      string `json:"status"`
	Institution string `json:"institution,omitempty"`
	Date        string `json:"date,omitempty"`
	GradeLevel  string `json:"grade_level,omitempty"`
}

// EducationWithNameResponse is the admin listing row: the record joined
// with its owner's name so the table is readable without extra lookups.
type EducationWithNameResponse struct {
	EducationResponse
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func FromEducationModel(e m.EducationModel) EducationResponse {
	date := ""
	if e.Date != nil {
		date = e.Date.Format(dateLayout)
	}
	return EducationResponse{
		EducationID: e.EducationID,
		ProfileID:   e.ProfileID,
		ProgramType: e.ProgramType,
		Course:      e.Course,
		Status:      e.Status,
		Institution: e.Institution,
		Date:        date,
		GradeLevel:  e.GradeLevel,
	}
}

func FromEducationModels(rows []m.EducationModel) []EducationResponse {
	out := make([]EducationResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, FromEducationModel(row))
	}
	return out
}
