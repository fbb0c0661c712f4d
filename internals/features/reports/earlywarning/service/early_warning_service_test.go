package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	profileModel "tpims_backend/internals/features/profiles/profile/model"
	"tpims_backend/internals/features/reports/earlywarning/dto"
	"tpims_backend/internals/features/reports/earlywarning/repository"
)

type fakeRepo struct {
	profiles    []profileModel.ProfileModel
	pregnancies map[int64]int
	dropouts    map[int64]*time.Time

	gotFilter dto.LocationFilter
}

var _ repository.Repository = (*fakeRepo)(nil)

func (f *fakeRepo) ProfilesByLocation(ctx context.Context, filter dto.LocationFilter) ([]profileModel.ProfileModel, error) {
	f.gotFilter = filter
	return f.profiles, nil
}

func (f *fakeRepo) LatestPregnancyCounts(ctx context.Context, ids []int64) (map[int64]int, error) {
	return f.pregnancies, nil
}

func (f *fakeRepo) LatestDropoutDates(ctx context.Context, ids []int64) (map[int64]*time.Time, error) {
	return f.dropouts, nil
}

func profile(id int64, first, last, barangay, municipality string, age int) profileModel.ProfileModel {
	return profileModel.ProfileModel{
		ProfileID:    id,
		FirstName:    first,
		LastName:     last,
		Barangay:     barangay,
		Municipality: municipality,
		Age:          age,
	}
}

func TestDerive_FlagsTiersAndOrder(t *testing.T) {
	date := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	repo := &fakeRepo{
		profiles: []profileModel.ProfileModel{
			profile(20260001, "Ana", "Reyes", "Poblacion", "Baybay", 17),   // repeated pregnancy only
			profile(20260002, "Bea", "Cruz", "San Isidro", "Ormoc", 18),    // dropout only
			profile(20260003, "Cara", "Diaz", "Lonoy", "Baybay", 16),       // neither
			profile(20260004, "Dina", "Lopez", "Cogon", "Tacloban", 19),    // both
		},
		pregnancies: map[int64]int{
			20260001: 2,
			20260002: 1,
			20260003: 1,
			20260004: 3,
		},
		dropouts: map[int64]*time.Time{
			20260002: &date,
			20260004: &date,
		},
	}
	svc := NewEarlyWarningService(repo)

	cases, stats, err := svc.Derive(context.Background(), dto.LocationFilter{})
	require.NoError(t, err)
	require.Len(t, cases, 3, "profiles with no indicator are excluded")

	// high risk first, then mediums in original order
	assert.Equal(t, int64(20260004), cases[0].ProfileID)
	assert.Equal(t, dto.RiskHigh, cases[0].RiskLevel)
	assert.Equal(t, int64(20260001), cases[1].ProfileID)
	assert.Equal(t, dto.RiskMedium, cases[1].RiskLevel)
	assert.Equal(t, int64(20260002), cases[2].ProfileID)
	assert.Equal(t, dto.RiskMedium, cases[2].RiskLevel)

	// the pregnancy count carries over from the latest health record
	// even when only the dropout indicator fired
	assert.False(t, cases[2].RepeatedPregnancy)
	assert.Equal(t, 1, cases[2].PregnancyCount)

	assert.Equal(t, 1, stats.TotalHighRisk)
	assert.Equal(t, 2, stats.TotalRepeatedPregnancy)
	assert.Equal(t, 2, stats.TotalDropouts)
}

func TestDerive_CaseFields(t *testing.T) {
	date := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)
	repo := &fakeRepo{
		profiles: []profileModel.ProfileModel{
			profile(20260004, "Dina", "Lopez", "Cogon", "Tacloban", 19),
		},
		pregnancies: map[int64]int{20260004: 3},
		dropouts:    map[int64]*time.Time{20260004: &date},
	}
	svc := NewEarlyWarningService(repo)

	cases, _, err := svc.Derive(context.Background(), dto.LocationFilter{})
	require.NoError(t, err)
	require.Len(t, cases, 1)

	c := cases[0]
	assert.Equal(t, "Dina Lopez", c.Name)
	assert.Equal(t, "Cogon, Tacloban", c.Location)
	assert.Equal(t, 19, c.Age)
	assert.True(t, c.RepeatedPregnancy)
	assert.Equal(t, 3, c.PregnancyCount)
	assert.True(t, c.SchoolDropout)
	assert.Equal(t, "2026-01-05", c.DropoutDate)
}

func TestDerive_LocationKeepsCommaSkeleton(t *testing.T) {
	date := time.Date(2026, time.April, 2, 0, 0, 0, 0, time.UTC)
	repo := &fakeRepo{
		profiles: []profileModel.ProfileModel{
			profile(20260005, "Elsa", "Go", "", "Ormoc", 18),
		},
		pregnancies: map[int64]int{},
		dropouts:    map[int64]*time.Time{20260005: &date},
	}
	svc := NewEarlyWarningService(repo)

	cases, _, err := svc.Derive(context.Background(), dto.LocationFilter{})
	require.NoError(t, err)
	require.Len(t, cases, 1)
	assert.Equal(t, ", Ormoc", cases[0].Location)
}

func TestDerive_MediumCaseOmitsUnfiredIndicatorDetail(t *testing.T) {
	repo := &fakeRepo{
		profiles: []profileModel.ProfileModel{
			profile(20260001, "Ana", "Reyes", "Poblacion", "Baybay", 17),
		},
		pregnancies: map[int64]int{20260001: 2},
		dropouts:    map[int64]*time.Time{},
	}
	svc := NewEarlyWarningService(repo)

	cases, stats, err := svc.Derive(context.Background(), dto.LocationFilter{})
	require.NoError(t, err)
	require.Len(t, cases, 1)

	assert.False(t, cases[0].SchoolDropout)
	assert.Empty(t, cases[0].DropoutDate)
	assert.Equal(t, 0, stats.TotalDropouts)
	assert.Equal(t, 0, stats.TotalHighRisk)
}

func TestDerive_EmptyPopulation(t *testing.T) {
	svc := NewEarlyWarningService(&fakeRepo{})

	cases, stats, err := svc.Derive(context.Background(), dto.LocationFilter{Region: "all"})
	require.NoError(t, err)
	assert.Empty(t, cases)
	assert.Zero(t, stats.TotalHighRisk)
}
