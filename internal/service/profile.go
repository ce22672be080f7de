package service

import (
	"context"

	"storefront-backend/internal/domain"
	"storefront-backend/internal/repository"
)

type profileService struct {
	profileRepo repository.ProfileRepository
}

func NewProfileService(profileRepo repository.ProfileRepository) ProfileService {
	return &profileService{profileRepo: profileRepo}
}

// GetOwnProfile resolves the single profile owned by the caller. A profile
// is expected to pre-exist for every registered user.
func (s *profileService) GetOwnProfile(ctx context.Context, userID int32) (*domain.Profile, error) {
	p, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, notFound(err)
	}
	return p, nil
}

func (s *profileService) GetOwnProfileByUsername(ctx context.Context, userID int32, username string) (*domain.Profile, error) {
	p, err := s.GetOwnProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	// The username key never widens the scope: addressing any profile other
	// than the caller's own is forbidden, whether or not it exists.
	if p.Username != username {
		return nil, domain.ErrForbidden
	}
	return p, nil
}
