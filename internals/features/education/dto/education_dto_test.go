package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEducationRequestStatusIsFreeForm(t *testing.T) {
	v := validator.New()

	// the well-known statuses plus anything a caseworker types in
	for _, status := range []string{"Enrolled", "Dropout", "Graduated", "On Hold", "Transferred Out"} {
		req := CreateEducationRequest{ProfileID: 20260001, Status: status}
		assert.NoError(t, v.Struct(req), status)
	}

	assert.Error(t, v.Struct(CreateEducationRequest{ProfileID: 20260001}), "status is still required")
}

func TestCreateEducationRequestToModelParsesDate(t *testing.T) {
	req := CreateEducationRequest{ProfileID: 20260001, Status: "Dropout", Date: "2026-02-14"}
	m, err := req.ToModel()
	require.NoError(t, err)
	require.NotNil(t, m.Date)
	assert.Equal(t, "2026-02-14", m.Date.Format("2006-01-02"))

	_, err = CreateEducationRequest{ProfileID: 20260001, Status: "Dropout", Date: "14/02/2026"}.ToModel()
	assert.Error(t, err)
}
