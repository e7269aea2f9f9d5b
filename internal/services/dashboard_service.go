package services

import (
	"context"

	"gymdesk/internal/models/response_models"
	"gymdesk/internal/repositories"
	"gymdesk/pkg/utils"
)

type DashboardServiceInterface interface {
	GetMemberProfile(ctx context.Context, memberID int) (*response_models.MemberProfile, error)
}

type DashboardService struct {
	dashboardRepo repositories.DashboardRepository
}

func NewDashboardService(dashboardRepo repositories.DashboardRepository) DashboardServiceInterface {
	return &DashboardService{dashboardRepo: dashboardRepo}
}

// GetMemberProfile recomputes the projection on every call; bookings and
// metrics may have changed since the last read.
func (s *DashboardService) GetMemberProfile(ctx context.Context, memberID int) (*response_models.MemberProfile, error) {
	profile, err := s.dashboardRepo.MemberProfile(ctx, memberID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if profile == nil {
		return nil, utils.ErrMemberNotFound
	}
	return profile, nil
}
