package repository

import (
	"gorm.io/gorm"

	"github.com/photoshare/photoshare-backend/internal/models"
)

type SchemaInfoRepository struct {
	db *gorm.DB
}

func NewSchemaInfoRepository(db *gorm.DB) *SchemaInfoRepository {
	return &SchemaInfoRepository{
		db: db,
	}
}

func (r *SchemaInfoRepository) Get() (*models.SchemaInfo, error) {
	var info models.SchemaInfo
	if err := r.db.First(&info).Error; err != nil {
		return nil, err
	}
	return &info, nil
}

func (r *SchemaInfoRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.SchemaInfo{}).Count(&count).Error
	return count, err
}
