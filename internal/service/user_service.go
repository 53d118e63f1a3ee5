package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/photoshare/photoshare-backend/internal/models"
)

type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{
		users: users,
	}
}

// List returns every user as a minimal projection, never credentials.
func (s *UserService) List() ([]models.UserProjection, error) {
	users, err := s.users.GetAll()
	if err != nil {
		return nil, err
	}

	projections := make([]models.UserProjection, 0, len(users))
	for i := range users {
		projections = append(projections, users[i].Projection())
	}
	return projections, nil
}

func (s *UserService) GetByID(id uint) (*models.UserProfile, error) {
	user, err := s.users.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	profile := user.Profile()
	return &profile, nil
}
