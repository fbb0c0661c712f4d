package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	healthModel "tpims_backend/internals/features/health/maternal/model"
	"tpims_backend/internals/features/profiles/profile/model"
	"tpims_backend/internals/features/profiles/profile/repository"
)

/* ====================== in-memory fake ====================== */

type fakeRepo struct {
	profiles map[int64]model.ProfileModel
	partners map[int64]model.PartnerModel            // keyed by profile_id
	healths  map[int64]healthModel.MaternalHealthModel // keyed by health_id

	failHealthInsert bool
	// when set, the first profile insert with this id fails as a
	// duplicate, simulating a concurrent creator winning the id race;
	// the competitor's committed row appears after our rollback
	profileInsertRace int64
	raceCommitted     int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		profiles: map[int64]model.ProfileModel{},
		partners: map[int64]model.PartnerModel{},
		healths:  map[int64]healthModel.MaternalHealthModel{},
	}
}

var _ repository.Repository = (*fakeRepo)(nil)

func uniqueViolation() error {
	return &pgconn.PgError{Code: "23505"}
}

func (f *fakeRepo) WithinTx(ctx context.Context, fn func(r repository.Repository) error) error {
	// snapshot so a failed fn rolls everything back
	profiles := make(map[int64]model.ProfileModel, len(f.profiles))
	for k, v := range f.profiles {
		profiles[k] = v
	}
	partners := make(map[int64]model.PartnerModel, len(f.partners))
	for k, v := range f.partners {
		partners[k] = v
	}
	healths := make(map[int64]healthModel.MaternalHealthModel, len(f.healths))
	for k, v := range f.healths {
		healths[k] = v
	}

	if err := fn(f); err != nil {
		f.profiles, f.partners, f.healths = profiles, partners, healths
		if f.raceCommitted != 0 {
			f.profiles[f.raceCommitted] = model.ProfileModel{ProfileID: f.raceCommitted}
			f.raceCommitted = 0
		}
		return err
	}
	return nil
}

func (f *fakeRepo) MaxProfileIDInRange(ctx context.Context, lo, hi int64) (int64, error) {
	var max int64
	for id := range f.profiles {
		if id >= lo && id < hi && id > max {
			max = id
		}
	}
	return max, nil
}

func (f *fakeRepo) InsertProfile(ctx context.Context, p *model.ProfileModel) error {
	if f.profileInsertRace == p.ProfileID {
		f.raceCommitted = p.ProfileID
		f.profileInsertRace = 0
		return uniqueViolation()
	}
	if _, ok := f.profiles[p.ProfileID]; ok {
		return uniqueViolation()
	}
	f.profiles[p.ProfileID] = *p
	return nil
}

func (f *fakeRepo) UpdateProfile(ctx context.Context, p *model.ProfileModel) error {
	if _, ok := f.profiles[p.ProfileID]; !ok {
		return gorm.ErrRecordNotFound
	}
	f.profiles[p.ProfileID] = *p
	return nil
}

func (f *fakeRepo) ProfileExists(ctx context.Context, profileID int64) (bool, error) {
	_, ok := f.profiles[profileID]
	return ok, nil
}

func (f *fakeRepo) InsertPartner(ctx context.Context, p *model.PartnerModel) error {
	if _, ok := f.partners[p.ProfileID]; ok {
		return uniqueViolation()
	}
	f.partners[p.ProfileID] = *p
	return nil
}

func (f *fakeRepo) UpdatePartner(ctx context.Context, p *model.PartnerModel) error {
	f.partners[p.ProfileID] = *p
	return nil
}

func (f *fakeRepo) PartnerExists(ctx context.Context, profileID int64) (bool, error) {
	_, ok := f.partners[profileID]
	return ok, nil
}

func (f *fakeRepo) InsertHealth(ctx context.Context, h *healthModel.MaternalHealthModel) error {
	if f.failHealthInsert {
		return errors.New("insert health failed")
	}
	if _, ok := f.healths[h.HealthID]; ok {
		return uniqueViolation()
	}
	f.healths[h.HealthID] = *h
	return nil
}

func (f *fakeRepo) UpdateHealth(ctx context.Context, h *healthModel.MaternalHealthModel) error {
	for id, existing := range f.healths {
		if existing.ProfileID == h.ProfileID {
			h.HealthID = id
			f.healths[id] = *h
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeRepo) HealthExists(ctx context.Context, profileID int64) (bool, error) {
	for _, h := range f.healths {
		if h.ProfileID == profileID {
			return true, nil
		}
	}
	return false, nil
}

/* ====================== helpers ====================== */

func serviceAtYear(repo repository.Repository, year int) *CompleteProfileService {
	s := NewCompleteProfileService(repo)
	s.now = func() time.Time {
		return time.Date(year, time.June, 15, 12, 0, 0, 0, time.UTC)
	}
	return s
}

/* ====================== tests ====================== */

func TestNextIDInYear(t *testing.T) {
	lo, _ := model.YearRange(2026)
	assert.Equal(t, lo+1, NextIDInYear(0, lo), "empty year starts at sequence 1")
	assert.Equal(t, int64(20260008), NextIDInYear(20260007, lo))
}

func TestNextProfileID_EmptyYear(t *testing.T) {
	repo := newFakeRepo()
	// a previous year's profile must not affect the current range
	repo.profiles[20250003] = model.ProfileModel{ProfileID: 20250003}

	svc := serviceAtYear(repo, 2026)
	id, err := svc.NextProfileID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(20260001), id)
}

func TestCreateComplete_AssignsSharedID(t *testing.T) {
	repo := newFakeRepo()
	repo.profiles[20260004] = model.ProfileModel{ProfileID: 20260004}

	svc := serviceAtYear(repo, 2026)
	p := &model.ProfileModel{FirstName: "Maria", LastName: "Santos"}
	h := &healthModel.MaternalHealthModel{NumOfPregnancies: 1}
	pa := &model.PartnerModel{FirstName: "Jose"}

	id, err := svc.CreateComplete(context.Background(), p, h, pa)
	require.NoError(t, err)
	assert.Equal(t, int64(20260005), id)

	require.Contains(t, repo.profiles, id)
	require.Contains(t, repo.partners, id)
	require.Contains(t, repo.healths, id)
	assert.Equal(t, id, repo.healths[id].ProfileID)
	assert.Equal(t, id, repo.partners[id].PartnerID)
}

func TestCreateComplete_RollsBackOnFailure(t *testing.T) {
	repo := newFakeRepo()
	repo.failHealthInsert = true

	svc := serviceAtYear(repo, 2026)
	_, err := svc.CreateComplete(context.Background(),
		&model.ProfileModel{FirstName: "Ana"},
		&healthModel.MaternalHealthModel{},
		&model.PartnerModel{},
	)
	require.Error(t, err)

	assert.Empty(t, repo.profiles, "failed create must leave no profile row")
	assert.Empty(t, repo.partners)
	assert.Empty(t, repo.healths)
}

func TestCreateComplete_RetriesOnIDRace(t *testing.T) {
	repo := newFakeRepo()
	// a concurrent creator grabs 20260001 between our max query and insert
	repo.profileInsertRace = 20260001

	svc := serviceAtYear(repo, 2026)
	id, err := svc.CreateComplete(context.Background(),
		&model.ProfileModel{FirstName: "Liza"},
		&healthModel.MaternalHealthModel{},
		&model.PartnerModel{},
	)
	require.NoError(t, err)
	assert.Equal(t, int64(20260002), id, "retry recomputes past the competitor's id")
	assert.Len(t, repo.profiles, 2)
}

func TestEditComplete_ProfileNotFound(t *testing.T) {
	repo := newFakeRepo()
	svc := serviceAtYear(repo, 2026)

	err := svc.EditComplete(context.Background(), 20260099,
		&model.ProfileModel{}, &healthModel.MaternalHealthModel{}, &model.PartnerModel{})
	require.Error(t, err)

	var fe *fiber.Error
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
}

func TestEditComplete_UpsertsPartnerAndHealth(t *testing.T) {
	repo := newFakeRepo()
	repo.profiles[20260001] = model.ProfileModel{ProfileID: 20260001, FirstName: "Old"}

	svc := serviceAtYear(repo, 2026)
	err := svc.EditComplete(context.Background(), 20260001,
		&model.ProfileModel{FirstName: "New"},
		&healthModel.MaternalHealthModel{NumOfPregnancies: 2},
		&model.PartnerModel{FirstName: "Partner"},
	)
	require.NoError(t, err)

	assert.Equal(t, "New", repo.profiles[20260001].FirstName)
	// absent rows are inserted, sharing the profile id
	require.Contains(t, repo.partners, int64(20260001))
	require.Contains(t, repo.healths, int64(20260001))
	assert.Equal(t, 2, repo.healths[20260001].NumOfPregnancies)

	// second edit hits the update path instead
	err = svc.EditComplete(context.Background(), 20260001,
		&model.ProfileModel{FirstName: "Newer"},
		&healthModel.MaternalHealthModel{NumOfPregnancies: 3},
		&model.PartnerModel{FirstName: "Partner2"},
	)
	require.NoError(t, err)
	assert.Equal(t, 3, repo.healths[20260001].NumOfPregnancies)
	assert.Equal(t, "Partner2", repo.partners[20260001].FirstName)
	assert.Len(t, repo.healths, 1, "edit must not add a second health row")
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, IsUniqueViolation(gorm.ErrDuplicatedKey))
	assert.False(t, IsUniqueViolation(errors.New("boom")))
	assert.False(t, IsUniqueViolation(nil))
}
