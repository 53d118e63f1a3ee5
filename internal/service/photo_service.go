package service

import (
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/photoshare/photoshare-backend/internal/models"
	"github.com/photoshare/photoshare-backend/pkg/storage"
	"github.com/photoshare/photoshare-backend/pkg/utils"
)

type PhotoService struct {
	photos         PhotoStore
	users          UserStore
	blobs          storage.BlobStorage
	maxUploadBytes int64
	logger         *zap.Logger
}

func NewPhotoService(photos PhotoStore, users UserStore, blobs storage.BlobStorage, maxUploadBytes int64, logger *zap.Logger) *PhotoService {
	return &PhotoService{
		photos:         photos,
		users:          users,
		blobs:          blobs,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
}

// PhotosOfUser returns the user's photos with every embedded comment's
// author resolved to a projection. Distinct authors are looked up
// concurrently; a lookup that fails leaves that comment with a null author
// instead of failing the whole response.
func (s *PhotoService) PhotosOfUser(userID uint) ([]models.PhotoView, error) {
	if _, err := s.users.GetByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	photos, err := s.photos.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get photos: %w", err)
	}

	authors := s.resolveAuthors(photos)

	views := make([]models.PhotoView, 0, len(photos))
	for i := range photos {
		photo := &photos[i]
		comments := make([]models.CommentView, 0, len(photo.Comments))
		for _, c := range photo.Comments {
			comments = append(comments, models.CommentView{
				ID:       c.ID,
				Comment:  c.Comment,
				DateTime: c.DateTime,
				User:     authors[c.UserID],
			})
		}
		views = append(views, models.PhotoView{
			ID:       photo.ID,
			UserID:   photo.UserID,
			FileName: photo.FileName,
			DateTime: photo.DateTime,
			Comments: comments,
		})
	}

	return views, nil
}

// resolveAuthors scatter-gathers one lookup per distinct commenter. Missing
// or failed lookups are simply absent from the result map.
func (s *PhotoService) resolveAuthors(photos []models.Photo) map[uint]*models.UserProjection {
	distinct := make(map[uint]struct{})
	for i := range photos {
		for _, c := range photos[i].Comments {
			distinct[c.UserID] = struct{}{}
		}
	}

	authors := make(map[uint]*models.UserProjection, len(distinct))
	var mu sync.Mutex
	var wg sync.WaitGroup

	for id := range distinct {
		wg.Add(1)
		go func(id uint) {
			defer wg.Done()

			user, err := s.users.GetByID(id)
			if err != nil {
				if !errors.Is(err, gorm.ErrRecordNotFound) {
					s.logger.Warn("failed to resolve comment author", zap.Uint("user_id", id), zap.Error(err))
				}
				return
			}

			projection := user.Projection()
			mu.Lock()
			authors[id] = &projection
			mu.Unlock()
		}(id)
	}
	wg.Wait()

	return authors
}

// AddComment appends a comment authored by the session user. The author is
// never taken from the request body.
func (s *PhotoService) AddComment(photoID uint, userID uint, text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyComment
	}

	if _, err := s.photos.GetByID(photoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPhotoNotFound
		}
		return err
	}

	comment := models.Comment{
		ID:       uuid.NewString(),
		UserID:   userID,
		Comment:  text,
		DateTime: time.Now(),
	}

	if err := s.photos.AppendComment(photoID, comment); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPhotoNotFound
		}
		return err
	}
	return nil
}

// Upload writes the file through blob storage, then records the photo. The
// two steps are not transactional; on a record failure the blob delete is
// best effort and an orphaned file is an accepted outcome.
func (s *PhotoService) Upload(userID uint, file *multipart.FileHeader) (*models.Photo, error) {
	if !utils.IsSupportedImageType(file.Header.Get("Content-Type")) {
		return nil, ErrUnsupportedFileType
	}
	if s.maxUploadBytes > 0 && file.Size > s.maxUploadBytes {
		return nil, ErrFileTooLarge
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	fileName := GenerateFileName(file.Filename)

	if err := s.blobs.Save(fileName, src); err != nil {
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	photo := &models.Photo{
		UserID:   userID,
		FileName: fileName,
		DateTime: time.Now(),
		Comments: []models.Comment{},
	}

	if err := s.photos.Create(photo); err != nil {
		if delErr := s.blobs.Delete(fileName); delErr != nil {
			s.logger.Warn("orphaned blob after failed photo record", zap.String("file_name", fileName), zap.Error(delErr))
		}
		return nil, err
	}

	s.logger.Info("photo uploaded", zap.Uint("user_id", userID), zap.String("file_name", fileName))
	return photo, nil
}

// GenerateFileName keeps the upload-timestamp prefix but adds a random
// suffix, so two uploads of the same file in the same millisecond cannot
// collide.
func GenerateFileName(original string) string {
	base := filepath.Base(original)
	base = strings.ReplaceAll(base, " ", "_")
	if base == "." || base == string(filepath.Separator) || base == "" {
		base = "photo"
	}
	return fmt.Sprintf("U%d%s-%s", time.Now().UnixMilli(), utils.GenerateRandomString(6), base)
}
