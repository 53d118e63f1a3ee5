package storage

import (
	"io"
)

// BlobStorage writes and removes uploaded photo files by generated name.
// Metadata records reference blobs by name only; the backend decides where
// the bytes actually live.
type BlobStorage interface {
	Save(name string, src io.Reader) error
	Delete(name string) error
}
