package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	educationModel "tpims_backend/internals/features/education/model"
	profileModel "tpims_backend/internals/features/profiles/profile/model"
	"tpims_backend/internals/features/reports/earlywarning/dto"
)

// Repository is the read surface of the early-warning deriver. The
// per-profile histories are batch-fetched for the whole population in
// one IN query each instead of one round-trip per profile.
type Repository interface {
	ProfilesByLocation(ctx context.Context, f dto.LocationFilter) ([]profileModel.ProfileModel, error)
	// LatestPregnancyCounts maps profile id → num_of_pregnancies of the
	// health record with the highest health_id. Profiles without health
	// records are absent from the map.
	LatestPregnancyCounts(ctx context.Context, profileIDs []int64) (map[int64]int, error)
	// LatestDropoutDates maps profile id → date of the Dropout education
	// record with the highest education_id. Profiles without a Dropout
	// record are absent from the map.
	LatestDropoutDates(ctx context.Context, profileIDs []int64) (map[int64]*time.Time, error)
}

type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

var _ Repository = (*GormRepository)(nil)

func (r *GormRepository) ProfilesByLocation(ctx context.Context, f dto.LocationFilter) ([]profileModel.ProfileModel, error) {
	f = f.Normalized()

	q := r.db.WithContext(ctx).Model(&profileModel.ProfileModel{})
	if f.Region != "" {
		q = q.Where("region = ?", f.Region)
	}
	if f.Province != "" {
		q = q.Where("province = ?", f.Province)
	}
	if f.Municipality != "" {
		q = q.Where("municipality = ?", f.Municipality)
	}
	if f.Barangay != "" {
		q = q.Where("barangay = ?", f.Barangay)
	}

	var profiles []profileModel.ProfileModel
	if err := q.Order("profile_id ASC").Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *GormRepository) LatestPregnancyCounts(ctx context.Context, profileIDs []int64) (map[int64]int, error) {
	out := make(map[int64]int, len(profileIDs))
	if len(profileIDs) == 0 {
		return out, nil
	}

	var rows []struct {
		ProfileID        int64
		NumOfPregnancies int
	}
	// ascending health_id: the last row per profile wins, i.e. the latest
	if err := r.db.WithContext(ctx).
		Table("maternal_health_records").
		Select("profile_id, num_of_pregnancies").
		Where("profile_id IN ?", profileIDs).
		Order("health_id ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.ProfileID] = row.NumOfPregnancies
	}
	return out, nil
}

func (r *GormRepository) LatestDropoutDates(ctx context.Context, profileIDs []int64) (map[int64]*time.Time, error) {
	out := make(map[int64]*time.Time, len(profileIDs))
	if len(profileIDs) == 0 {
		return out, nil
	}

	var rows []struct {
		ProfileID         int64
		EnrollDropoutDate *time.Time
	}
	if err := r.db.WithContext(ctx).
		Table("education_records").
		Select("profile_id, enroll_dropout_date").
		Where("profile_id IN ? AND status = ?", profileIDs, educationModel.StatusDropout).
		Order("education_id ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.ProfileID] = row.EnrollDropoutDate
	}
	return out, nil
}
