package dto

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	healthModel "tpims_backend/internals/features/health/maternal/model"
	m "tpims_backend/internals/features/profiles/profile/model"
)

const dateLayout = "2006-01-02"

/* =========================================================
   CREATE / EDIT (composite)
   ========================================================= */

type ProfilePayload struct {
	FirstName                    string `json:"first_name" validate:"required,min=1,max=100"`
	LastName                     string `json:"last_name" validate:"required,min=1,max=100"`
	Birthdate                    string `json:"birthdate" validate:"omitempty,datetime=2006-01-02"`
	Age                          int    `json:"age" validate:"omitempty,gte=0,lte=120"`
	ContactNum                   string `json:"contact_num" validate:"omitempty,max=30"`
	Region                       string `json:"region" validate:"required"`
	Province                     string `json:"province" validate:"required"`
	Municipality                 string `json:"municipality" validate:"required"`
	Barangay                     string `json:"barangay" validate:"required"`
	Zipcode                      string `json:"zipcode" validate:"omitempty,max=10"`
	MaritalStatus                string `json:"marital_status" validate:"omitempty,max=50"`
	Religion                     string `json:"religion" validate:"omitempty,max=100"`
	LivingWith                   string `json:"living_with" validate:"omitempty,max=100"`
	FamilyIncome                 string `json:"family_income" validate:"omitempty,max=100"`
	CurrentYearLevel             string `json:"current_year_level" validate:"omitempty,max=100"`
	HighestEducationalAttainment string `json:"highest_educational_attainment" validate:"omitempty,max=100"`
	FathersOccupation            string `json:"fathers_occupation" validate:"omitempty,max=100"`
	MothersOccupation            string `json:"mothers_occupation" validate:"omitempty,max=100"`
	IndigenousEthnicity          string `json:"indigenous_ethnicity" validate:"omitempty,max=100"`
	Note                         string `json:"note" validate:"omitempty,max=2000"`
}

type PartnerPayload struct {
	FirstName  string `json:"first_name" validate:"omitempty,max=100"`
	LastName   string `json:"last_name" validate:"omitempty,max=100"`
	Age        int    `json:"age" validate:"omitempty,gte=0,lte=120"`
	Birthdate  string `json:"birthdate" validate:"omitempty,datetime=2006-01-02"`
	Occupation string `json:"occupation" validate:"omitempty,max=100"`
	Income     string `json:"income" validate:"omitempty,max=100"`
}

type HealthPayload struct {
	PregnancyStatus  string   `json:"pregnancy_status" validate:"omitempty,max=50"`
	MedicalHistory   []string `json:"medical_history" validate:"omitempty,dive,max=100"`
	OtherHistory     string   `json:"other_history" validate:"omitempty,max=200"`
	TypesOfSupport   []string `json:"types_of_support" validate:"omitempty,dive,max=100"`
	StageOfPregnancy string   `json:"stage_of_pregnancy" validate:"omitempty,max=50"`
	NumOfPregnancies int      `json:"num_of_pregnancies" validate:"omitempty,gte=0,lte=30"`
}

type SaveCompleteProfileRequest struct {
	Profile ProfilePayload `json:"profile" validate:"required"`
	Partner PartnerPayload `json:"partner"`
	Health  HealthPayload  `json:"health"`
}

func (r *SaveCompleteProfileRequest) Normalize() {
	p := &r.Profile
	p.FirstName = strings.TrimSpace(p.FirstName)
	p.LastName = strings.TrimSpace(p.LastName)
	p.ContactNum = strings.TrimSpace(p.ContactNum)
	p.Region = strings.TrimSpace(p.Region)
	p.Province = strings.TrimSpace(p.Province)
	p.Municipality = strings.TrimSpace(p.Municipality)
	p.Barangay = strings.TrimSpace(p.Barangay)
	p.Zipcode = strings.TrimSpace(p.Zipcode)
	p.Note = strings.TrimSpace(p.Note)

	pa := &r.Partner
	pa.FirstName = strings.TrimSpace(pa.FirstName)
	pa.LastName = strings.TrimSpace(pa.LastName)
	pa.Occupation = strings.TrimSpace(pa.Occupation)
	pa.Income = strings.TrimSpace(pa.Income)

	h := &r.Health
	h.PregnancyStatus = strings.TrimSpace(h.PregnancyStatus)
	h.OtherHistory = strings.TrimSpace(h.OtherHistory)
	h.StageOfPregnancy = strings.TrimSpace(h.StageOfPregnancy)
	for i := range h.MedicalHistory {
		h.MedicalHistory[i] = strings.TrimSpace(h.MedicalHistory[i])
	}
	for i := range h.TypesOfSupport {
		h.TypesOfSupport[i] = strings.TrimSpace(h.TypesOfSupport[i])
	}
}

func parseDate(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid date: "+s)
	}
	return &t, nil
}

func (r SaveCompleteProfileRequest) ToModels() (m.ProfileModel, healthModel.MaternalHealthModel, m.PartnerModel, error) {
	var profile m.ProfileModel
	var health healthModel.MaternalHealthModel
	var partner m.PartnerModel

	birthdate, err := parseDate(r.Profile.Birthdate)
	if err != nil {
		return profile, health, partner, err
	}
	partnerBirthdate, err := parseDate(r.Partner.Birthdate)
	if err != nil {
		return profile, health, partner, err
	}

	profile = m.ProfileModel{
		FirstName:                    r.Profile.FirstName,
		LastName:                     r.Profile.LastName,
		Birthdate:                    birthdate,
		Age:                          r.Profile.Age,
		ContactNum:                   r.Profile.ContactNum,
		Region:                       r.Profile.Region,
		Province:                     r.Profile.Province,
		Municipality:                 r.Profile.Municipality,
		Barangay:                     r.Profile.Barangay,
		Zipcode:                      r.Profile.Zipcode,
		MaritalStatus:                r.Profile.MaritalStatus,
		Religion:                     r.Profile.Religion,
		LivingWith:                   r.Profile.LivingWith,
		FamilyIncome:                 r.Profile.FamilyIncome,
		CurrentYearLevel:             r.Profile.CurrentYearLevel,
		HighestEducationalAttainment: r.Profile.HighestEducationalAttainment,
		FathersOccupation:            r.Profile.FathersOccupation,
		MothersOccupation:            r.Profile.MothersOccupation,
		IndigenousEthnicity:          r.Profile.IndigenousEthnicity,
		Note:                         r.Profile.Note,
	}

	health = healthModel.MaternalHealthModel{
		PregnancyStatus:  r.Health.PregnancyStatus,
		MedicalHistory:   healthModel.EncodeHistoryList(r.Health.MedicalHistory, r.Health.OtherHistory),
		TypesOfSupport:   healthModel.EncodeSupportList(r.Health.TypesOfSupport),
		StageOfPregnancy: r.Health.StageOfPregnancy,
		NumOfPregnancies: r.Health.NumOfPregnancies,
	}

	partner = m.PartnerModel{
		FirstName:  r.Partner.FirstName,
		LastName:   r.Partner.LastName,
		Age:        r.Partner.Age,
		Birthdate:  partnerBirthdate,
		Occupation: r.Partner.Occupation,
		Income:     r.Partner.Income,
	}

	return profile, health, partner, nil
}

/* =========================================================
   RESPONSES
   ========================================================= */

type ProfileResponse struct {
	ProfileID                    int64  `json:"profile_id"`
	FirstName                    string `json:"first_name"`
	LastName                     string `json:"last_name"`
	Birthdate                    string `json:"birthdate,omitempty"`
	Age                          int    `json:"age"`
	ContactNum                   string `json:"contact_num,omitempty"`
	Region                       string `json:"region"`
	Province                     string `json:"province"`
	Municipality                 string `json:"municipality"`
	Barangay                     string `json:"barangay"`
	Zipcode                      string `json:"zipcode,omitempty"`
	MaritalStatus                string `json:"marital_status,omitempty"`
	Religion                     string `json:"religion,omitempty"`
	LivingWith                   string `json:"living_with,omitempty"`
	FamilyIncome                 string `json:"family_income,omitempty"`
	CurrentYearLevel             string `json:"current_year_level,omitempty"`
	HighestEducationalAttainment string `json:"highest_educational_attainment,omitempty"`
	FathersOccupation            string `json:"fathers_occupation,omitempty"`
	MothersOccupation            string `json:"mothers_occupation,omitempty"`
	IndigenousEthnicity          string `json:"indigenous_ethnicity,omitempty"`
	Note                         string `json:"note,omitempty"`
	CreatedAt                    string `json:"created_at,omitempty"`
}

type PartnerResponse struct {
	PartnerID  int64  `json:"partner_id"`
	ProfileID  int64  `json:"profile_id"`
	FirstName  string `json:"first_name,omitempty"`
	LastName   string `json:"last_name,omitempty"`
	Age        int    `json:"age"`
	Birthdate  string `json:"birthdate,omitempty"`
	Occupation string `json:"occupation,omitempty"`
	Income     string `json:"income,omitempty"`
}

type HealthResponse struct {
	HealthID         int64    `json:"health_id"`
	ProfileID        int64    `json:"profile_id"`
	PregnancyStatus  string   `json:"pregnancy_status,omitempty"`
	MedicalHistory   []string `json:"medical_history"`
	OtherHistory     string   `json:"other_history,omitempty"`
	TypesOfSupport   []string `json:"types_of_support"`
	StageOfPregnancy string   `json:"stage_of_pregnancy,omitempty"`
	NumOfPregnancies int      `json:"num_of_pregnancies"`
}

type ProfileDetailResponse struct {
	Profile ProfileResponse `json:"profile"`
	Partner *PartnerResponse `json:"partner,omitempty"`
	Health  *HealthResponse  `json:"health,omitempty"`
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

func FromProfileModel(p m.ProfileModel) ProfileResponse {
	created := ""
	if !p.CreatedAt.IsZero() {
		created = p.CreatedAt.Format(time.RFC3339)
	}
	return ProfileResponse{
		ProfileID:                    p.ProfileID,
		FirstName:                    p.FirstName,
		LastName:                     p.LastName,
		Birthdate:                    formatDate(p.Birthdate),
		Age:                          p.Age,
		ContactNum:                   p.ContactNum,
		Region:                       p.Region,
		Province:                     p.Province,
		Municipality:                 p.Municipality,
		Barangay:                     p.Barangay,
		Zipcode:                      p.Zipcode,
		MaritalStatus:                p.MaritalStatus,
		Religion:                     p.Religion,
		LivingWith:                   p.LivingWith,
		FamilyIncome:                 p.FamilyIncome,
		CurrentYearLevel:             p.CurrentYearLevel,
		HighestEducationalAttainment: p.HighestEducationalAttainment,
		FathersOccupation:            p.FathersOccupation,
		MothersOccupation:            p.MothersOccupation,
		IndigenousEthnicity:          p.IndigenousEthnicity,
		Note:                         p.Note,
		CreatedAt:                    created,
	}
}

func FromProfileModels(rows []m.ProfileModel) []ProfileResponse {
	out := make([]ProfileResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, FromProfileModel(row))
	}
	return out
}

func FromPartnerModel(pa m.PartnerModel) PartnerResponse {
	return PartnerResponse{
		PartnerID:  pa.PartnerID,
		ProfileID:  pa.ProfileID,
		FirstName:  pa.FirstName,
		LastName:   pa.LastName,
		Age:        pa.Age,
		Birthdate:  formatDate(pa.Birthdate),
		Occupation: pa.Occupation,
		Income:     pa.Income,
	}
}

func FromHealthModel(h healthModel.MaternalHealthModel) HealthResponse {
	items, other := healthModel.DecodeHistoryList(h.MedicalHistory)
	return HealthResponse{
		HealthID:         h.HealthID,
		ProfileID:        h.ProfileID,
		PregnancyStatus:  h.PregnancyStatus,
		MedicalHistory:   items,
		OtherHistory:     other,
		TypesOfSupport:   healthModel.DecodeSupportList(h.TypesOfSupport),
		StageOfPregnancy: h.StageOfPregnancy,
		NumOfPregnancies: h.NumOfPregnancies,
	}
}
