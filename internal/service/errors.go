package service

import (
	"errors"
)

var (
	ErrInvalidLogin        = errors.New("invalid login")
	ErrLoginNameTaken      = errors.New("login name already exists")
	ErrUserNotFound        = errors.New("user not found")
	ErrPhotoNotFound       = errors.New("photo not found")
	ErrEmptyComment        = errors.New("comment cannot be empty")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file size too large")
)
