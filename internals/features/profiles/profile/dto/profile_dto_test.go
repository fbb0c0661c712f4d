package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	healthModel "tpims_backend/internals/features/health/maternal/model"
)

func TestSaveCompleteProfileRequestToModels(t *testing.T) {
	req := SaveCompleteProfileRequest{
		Profile: ProfilePayload{
			FirstName: "  Maria ",
			LastName:  "Santos",
			Birthdate: "2008-04-12",
			Region:    "Region VIII",
		},
		Partner: PartnerPayload{
			FirstName: "Jose",
			Birthdate: "2006-11-02",
		},
		Health: HealthPayload{
			MedicalHistory:   []string{"Anemia"},
			OtherHistory:     "frequent headaches",
			TypesOfSupport:   []string{"Financial"},
			NumOfPregnancies: 2,
		},
	}
	req.Normalize()
	assert.Equal(t, "Maria", req.Profile.FirstName)

	p, h, pa, err := req.ToModels()
	require.NoError(t, err)

	require.NotNil(t, p.Birthdate)
	assert.Equal(t, time.Date(2008, time.April, 12, 0, 0, 0, 0, time.UTC), *p.Birthdate)
	require.NotNil(t, pa.Birthdate)

	assert.Equal(t, "Anemia, frequent headaches", h.MedicalHistory)
	assert.Equal(t, "Financial", h.TypesOfSupport)
	assert.Equal(t, 2, h.NumOfPregnancies)
}

func TestSaveCompleteProfileRequestInvalidDate(t *testing.T) {
	req := SaveCompleteProfileRequest{
		Profile: ProfilePayload{FirstName: "A", LastName: "B", Birthdate: "12/04/2008"},
	}
	_, _, _, err := req.ToModels()
	require.Error(t, err)
}

func TestFromHealthModelDecodesLists(t *testing.T) {
	h := healthModel.MaternalHealthModel{
		HealthID:       20260001,
		ProfileID:      20260001,
		MedicalHistory: "Anemia,Hypertension, dizziness",
		TypesOfSupport: "Financial,Medical",
	}
	resp := FromHealthModel(h)
	assert.Equal(t, []string{"Anemia", "Hypertension"}, resp.MedicalHistory)
	assert.Equal(t, "dizziness", resp.OtherHistory)
	assert.Equal(t, []string{"Financial", "Medical"}, resp.TypesOfSupport)
}
