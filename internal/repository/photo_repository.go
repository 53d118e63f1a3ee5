package repository

import (
	"encoding/json"

	"gorm.io/gorm"

	"github.com/photoshare/photoshare-backend/internal/models"
)

type PhotoRepository struct {
	db *gorm.DB
}

func NewPhotoRepository(db *gorm.DB) *PhotoRepository {
	return &PhotoRepository{
		db: db,
	}
}

func (r *PhotoRepository) Create(photo *models.Photo) error {
	if photo.Comments == nil {
		photo.Comments = []models.Comment{}
	}
	return r.db.Create(photo).Error
}

func (r *PhotoRepository) GetByID(id uint) (*models.Photo, error) {
	var photo models.Photo
	if err := r.db.First(&photo, id).Error; err != nil {
		return nil, err
	}
	return &photo, nil
}

func (r *PhotoRepository) GetByUserID(userID uint) ([]models.Photo, error) {
	var photos []models.Photo
	err := r.db.Where("user_id = ?", userID).Order("date_time").Find(&photos).Error
	if err != nil {
		return nil, err
	}
	return photos, nil
}

// AppendComment pushes a comment onto the photo's embedded array in a single
// statement, so concurrent appends to the same photo cannot lose each other.
func (r *PhotoRepository) AppendComment(photoID uint, comment models.Comment) error {
	payload, err := json.Marshal([]models.Comment{comment})
	if err != nil {
		return err
	}

	res := r.db.Exec(`
		UPDATE photos
		SET comments = COALESCE(comments, '[]'::jsonb) || ?::jsonb,
		    updated_at = NOW()
		WHERE id = ?`,
		string(payload), photoID,
	)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *PhotoRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Photo{}).Count(&count).Error
	return count, err
}
