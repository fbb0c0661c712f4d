package service

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	healthModel "tpims_backend/internals/features/health/maternal/model"
	"tpims_backend/internals/features/profiles/profile/model"
	"tpims_backend/internals/features/profiles/profile/repository"
)

// A new profile is saved together with its partner and maternal health
// record in one transaction, so a failure in any of the three inserts
// leaves no partial state behind. The identifier race between
// concurrent creators is settled by the primary-key constraint plus a
// bounded recompute-and-retry loop.
const maxIDRetries = 3

type CompleteProfileService struct {
	repo repository.Repository
	now  func() time.Time
}

func NewCompleteProfileService(repo repository.Repository) *CompleteProfileService {
	return &CompleteProfileService{repo: repo, now: time.Now}
}

// NextIDInYear computes the next identifier given the highest existing
// identifier in the year range (0 = none) and the range floor.
func NextIDInYear(maxExisting, lo int64) int64 {
	if maxExisting > 0 {
		return maxExisting + 1
	}
	return lo + 1
}

// NextProfileID queries the current year's range and returns the next
// free identifier: year*10000 + (max sequence + 1), or sequence 1 when
// the year has no profiles yet.
func (s *CompleteProfileService) NextProfileID(ctx context.Context) (int64, error) {
	lo, hi := model.YearRange(s.now().Year())
	maxID, err := s.repo.MaxProfileIDInRange(ctx, lo, hi)
	if err != nil {
		return 0, err
	}
	return NextIDInYear(maxID, lo), nil
}

// CreateComplete inserts profile + health record + partner and returns
// the assigned profile id. The partner and health rows share the
// profile's identifier.
func (s *CompleteProfileService) CreateComplete(
	ctx context.Context,
	p *model.ProfileModel,
	h *healthModel.MaternalHealthModel,
	pa *model.PartnerModel,
) (int64, error) {
	lo, hi := model.YearRange(s.now().Year())

	var assigned int64
	for attempt := 1; ; attempt++ {
		err := s.repo.WithinTx(ctx, func(r repository.Repository) error {
			maxID, err := r.MaxProfileIDInRange(ctx, lo, hi)
			if err != nil {
				return err
			}
			id := NextIDInYear(maxID, lo)

			p.ProfileID = id
			h.HealthID = id
			h.ProfileID = id
			pa.PartnerID = id
			pa.ProfileID = id

			if err := r.InsertProfile(ctx, p); err != nil {
				return err
			}
			if err := r.InsertHealth(ctx, h); err != nil {
				return err
			}
			if err := r.InsertPartner(ctx, pa); err != nil {
				return err
			}
			assigned = id
			return nil
		})
		if err == nil {
			return assigned, nil
		}
		// A concurrent creator took the same id first; recompute and retry.
		if IsUniqueViolation(err) && attempt < maxIDRetries {
			continue
		}
		return 0, err
	}
}

// EditComplete updates an existing profile by id. The profile update is
// mandatory; partner and health rows are updated when present and
// inserted when absent, all within one transaction.
func (s *CompleteProfileService) EditComplete(
	ctx context.Context,
	profileID int64,
	p *model.ProfileModel,
	h *healthModel.MaternalHealthModel,
	pa *model.PartnerModel,
) error {
	p.ProfileID = profileID
	h.ProfileID = profileID
	pa.ProfileID = profileID
	pa.PartnerID = profileID

	return s.repo.WithinTx(ctx, func(r repository.Repository) error {
		if err := r.UpdateProfile(ctx, p); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Profile not found")
			}
			return err
		}

		partnerExists, err := r.PartnerExists(ctx, profileID)
		if err != nil {
			return err
		}
		if partnerExists {
			if err := r.UpdatePartner(ctx, pa); err != nil {
				return err
			}
		} else {
			if err := r.InsertPartner(ctx, pa); err != nil {
				return err
			}
		}

		healthExists, err := r.HealthExists(ctx, profileID)
		if err != nil {
			return err
		}
		if healthExists {
			if err := r.UpdateHealth(ctx, h); err != nil {
				return err
			}
		} else {
			h.HealthID = profileID
			if err := r.InsertHealth(ctx, h); err != nil {
				return err
			}
		}
		return nil
	})
}

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// violation (raw pgconn error or GORM's translated form).
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
