package service

import (
	"github.com/photoshare/photoshare-backend/internal/models"
)

// UserStore and PhotoStore are what the services need from the repository
// layer. The GORM repositories satisfy them; tests substitute in-memory
// fakes.
type UserStore interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByLoginName(loginName string) (*models.User, error)
	LoginNameExists(loginName string) (bool, error)
	GetAll() ([]models.User, error)
}

type PhotoStore interface {
	Create(photo *models.Photo) error
	GetByID(id uint) (*models.Photo, error)
	GetByUserID(userID uint) ([]models.Photo, error)
	AppendComment(photoID uint, comment models.Comment) error
}
