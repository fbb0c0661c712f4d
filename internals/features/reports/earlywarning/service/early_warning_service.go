package service

import (
	"context"
	"fmt"
	"strings"

	profileModel "tpims_backend/internals/features/profiles/profile/model"
	"tpims_backend/internals/features/reports/earlywarning/dto"
	"tpims_backend/internals/features/reports/earlywarning/repository"
)

// EarlyWarningService derives risk indicators for a filtered population.
// A case is listed when at least one indicator fires; both firing makes
// it high risk, one makes it medium.
type EarlyWarningService struct {
	repo repository.Repository
}

func NewEarlyWarningService(repo repository.Repository) *EarlyWarningService {
	return &EarlyWarningService{repo: repo}
}

// Derive builds the early-warning case list for the given location filter.
// High-risk cases come first; within each tier the original profile order
// is preserved.
func (s *EarlyWarningService) Derive(ctx context.Context, filter dto.LocationFilter) ([]dto.EarlyWarningCase, dto.WarningStats, error) {
	stats := dto.WarningStats{}

	profiles, err := s.repo.ProfilesByLocation(ctx, filter)
	if err != nil {
		return nil, stats, fmt.Errorf("load profiles: %w", err)
	}
	if len(profiles) == 0 {
		return []dto.EarlyWarningCase{}, stats, nil
	}

	ids := make([]int64, 0, len(profiles))
	for _, p := range profiles {
		ids = append(ids, p.ProfileID)
	}

	pregnancies, err := s.repo.LatestPregnancyCounts(ctx, ids)
	if err != nil {
		return nil, stats, fmt.Errorf("load pregnancy counts: %w", err)
	}
	dropouts, err := s.repo.LatestDropoutDates(ctx, ids)
	if err != nil {
		return nil, stats, fmt.Errorf("load dropout records: %w", err)
	}

	var high, medium []dto.EarlyWarningCase
	for _, p := range profiles {
		count, hasHealth := pregnancies[p.ProfileID]
		repeated := hasHealth && count >= 2
		dropoutDate, droppedOut := dropouts[p.ProfileID]

		if !repeated && !droppedOut {
			continue
		}

		c := dto.EarlyWarningCase{
			ProfileID:         p.ProfileID,
			Name:              strings.TrimSpace(p.FirstName + " " + p.LastName),
			Age:               p.Age,
			Location:          caseLocation(p),
			RepeatedPregnancy: repeated,
			PregnancyCount:    count,
			SchoolDropout:     droppedOut,
			RiskLevel:         dto.RiskMedium,
		}
		if repeated {
			stats.TotalRepeatedPregnancy++
		}
		if droppedOut {
			if dropoutDate != nil {
				c.DropoutDate = dropoutDate.Format("2006-01-02")
			}
			stats.TotalDropouts++
		}
		if repeated && droppedOut {
			c.RiskLevel = dto.RiskHigh
			stats.TotalHighRisk++
			high = append(high, c)
		} else {
			medium = append(medium, c)
		}
	}

	cases := make([]dto.EarlyWarningCase, 0, len(high)+len(medium))
	cases = append(cases, high...)
	cases = append(cases, medium...)
	return cases, stats, nil
}

// caseLocation keeps the "barangay, municipality" skeleton even when a
// segment is blank.
func caseLocation(p profileModel.ProfileModel) string {
	return p.Barangay + ", " + p.Municipality
}
