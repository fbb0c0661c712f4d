package repository

import (
	"context"

	"gorm.io/gorm"

	healthModel "tpims_backend/internals/features/health/maternal/model"
	"tpims_backend/internals/features/profiles/profile/model"
)

// Repository is the store surface the composite profile writer needs.
// Keeping it an interface lets the service run against an in-memory
// fake in tests.
type Repository interface {
	// WithinTx runs fn inside one database transaction; fn gets a
	// Repository bound to that transaction.
	WithinTx(ctx context.Context, fn func(r Repository) error) error

	MaxProfileIDInRange(ctx context.Context, lo, hi int64) (int64, error)

	InsertProfile(ctx context.Context, p *model.ProfileModel) error
	UpdateProfile(ctx context.Context, p *model.ProfileModel) error
	ProfileExists(ctx context.Context, profileID int64) (bool, error)

	InsertPartner(ctx context.Context, p *model.PartnerModel) error
	UpdatePartner(ctx context.Context, p *model.PartnerModel) error
	PartnerExists(ctx context.Context, profileID int64) (bool, error)

	InsertHealth(ctx context.Context, h *healthModel.MaternalHealthModel) error
	UpdateHealth(ctx context.Context, h *healthModel.MaternalHealthModel) error
	HealthExists(ctx context.Context, profileID int64) (bool, error)
}

type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

var _ Repository = (*GormRepository)(nil)

func (r *GormRepository) WithinTx(ctx context.Context, fn func(tr Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormRepository{db: tx})
	})
}

// MaxProfileIDInRange returns the highest profile_id in [lo, hi),
// or 0 when the range is empty.
func (r *GormRepository) MaxProfileIDInRange(ctx context.Context, lo, hi int64) (int64, error) {
	var maxID int64
	err := r.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("profile_id >= ? AND profile_id < ?", lo, hi).
		Select("COALESCE(MAX(profile_id), 0)").
		Scan(&maxID).Error
	return maxID, err
}

/* ====================== PROFILE ====================== */

func (r *GormRepository) InsertProfile(ctx context.Context, p *model.ProfileModel) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *GormRepository) UpdateProfile(ctx context.Context, p *model.ProfileModel) error {
	res := r.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("profile_id = ?", p.ProfileID).
		Select("*").
		Omit("profile_id", "created_at").
		Updates(p)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormRepository) ProfileExists(ctx context.Context, profileID int64) (bool, error) {
	var exists bool
	err := r.db.WithContext(ctx).
		Raw(`SELECT EXISTS(SELECT 1 FROM profiles WHERE profile_id = ?)`, profileID).
		Scan(&exists).Error
	return exists, err
}

/* ====================== PARTNER ====================== */

func (r *GormRepository) InsertPartner(ctx context.Context, p *model.PartnerModel) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *GormRepository) UpdatePartner(ctx context.Context, p *model.PartnerModel) error {
	return r.db.WithContext(ctx).
		Model(&model.PartnerModel{}).
		Where("profile_id = ?", p.ProfileID).
		Select("*").
		Omit("partner_id", "profile_id", "created_at").
		Updates(p).Error
}

func (r *GormRepository) PartnerExists(ctx context.Context, profileID int64) (bool, error) {
	var exists bool
	err := r.db.WithContext(ctx).
		Raw(`SELECT EXISTS(SELECT 1 FROM partners WHERE profile_id = ?)`, profileID).
		Scan(&exists).Error
	return exists, err
}

/* ====================== MATERNAL HEALTH ====================== */

func (r *GormRepository) InsertHealth(ctx context.Context, h *healthModel.MaternalHealthModel) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *GormRepository) UpdateHealth(ctx context.Context, h *healthModel.MaternalHealthModel) error {
	return r.db.WithContext(ctx).
		Model(&healthModel.MaternalHealthModel{}).
		Where("profile_id = ?", h.ProfileID).
		Select("*").
		Omit("health_id", "profile_id", "created_at").
		Updates(h).Error
}

func (r *GormRepository) HealthExists(ctx context.Context, profileID int64) (bool, error) {
	var exists bool
	err := r.db.WithContext(ctx).
		Raw(`SELECT EXISTS(SELECT 1 FROM maternal_health_records WHERE profile_id = ?)`, profileID).
		Scan(&exists).Error
	return exists, err
}
