package service

import (
	"errors"
	"io"
	"sync"

	"gorm.io/gorm"

	"github.com/photoshare/photoshare-backend/internal/models"
)

// In-memory stand-ins for the GORM repositories. They return
// gorm.ErrRecordNotFound for missing rows, like the real ones do.

type fakeUserStore struct {
	mu     sync.Mutex
	nextID uint
	users  map[uint]models.User

	failGetByID bool
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[uint]models.User)}
}

func (f *fakeUserStore) Create(user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, u := range f.users {
		if u.LoginName == user.LoginName {
			return errors.New("duplicate key value violates unique constraint")
		}
	}
	f.nextID++
	user.ID = f.nextID
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUserStore) GetByID(id uint) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failGetByID {
		return nil, errors.New("store down")
	}
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (f *fakeUserStore) GetByLoginName(loginName string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, u := range f.users {
		if u.LoginName == loginName {
			u := u
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserStore) LoginNameExists(loginName string) (bool, error) {
	_, err := f.GetByLoginName(loginName)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (f *fakeUserStore) GetAll() ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	users := make([]models.User, 0, len(f.users))
	for id := uint(1); id <= f.nextID; id++ {
		if u, ok := f.users[id]; ok {
			users = append(users, u)
		}
	}
	return users, nil
}

func (f *fakeUserStore) Count() (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.users)), nil
}

func (f *fakeUserStore) delete(id uint) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.users, id)
}

type fakePhotoStore struct {
	mu     sync.Mutex
	nextID uint
	photos map[uint]models.Photo

	failCreate bool
}

func newFakePhotoStore() *fakePhotoStore {
	return &fakePhotoStore{photos: make(map[uint]models.Photo)}
}

func (f *fakePhotoStore) Create(photo *models.Photo) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failCreate {
		return errors.New("store down")
	}
	f.nextID++
	photo.ID = f.nextID
	if photo.Comments == nil {
		photo.Comments = []models.Comment{}
	}
	f.photos[photo.ID] = *photo
	return nil
}

func (f *fakePhotoStore) GetByID(id uint) (*models.Photo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	p, ok := f.photos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func (f *fakePhotoStore) GetByUserID(userID uint) ([]models.Photo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var photos []models.Photo
	for id := uint(1); id <= f.nextID; id++ {
		if p, ok := f.photos[id]; ok && p.UserID == userID {
			photos = append(photos, p)
		}
	}
	return photos, nil
}

func (f *fakePhotoStore) AppendComment(photoID uint, comment models.Comment) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	p, ok := f.photos[photoID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Comments = append(p.Comments, comment)
	f.photos[photoID] = p
	return nil
}

func (f *fakePhotoStore) Count() (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.photos)), nil
}

type fakeBlobStorage struct {
	mu    sync.Mutex
	blobs map[string][]byte

	failSave bool
}

func newFakeBlobStorage() *fakeBlobStorage {
	return &fakeBlobStorage{blobs: make(map[string][]byte)}
}

func (f *fakeBlobStorage) Save(name string, src io.Reader) error {
	if f.failSave {
		return errors.New("disk full")
	}
	data, err := io.ReadAll(src)
	if err != nil {
		return err
	}
	f.mu.Lock()
	f.blobs[name] = data
	f.mu.Unlock()
	return nil
}

func (f *fakeBlobStorage) Delete(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.blobs[name]; !ok {
		return errors.New("no such blob")
	}
	delete(f.blobs, name)
	return nil
}

func (f *fakeBlobStorage) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.blobs)
}
