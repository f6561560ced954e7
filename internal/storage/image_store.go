package storage

import (
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"

	"github.com/google/uuid"
)

// ImageStore persists uploaded product images and returns the relative path
// recorded on the product row.
type ImageStore interface {
	Save(file *multipart.FileHeader) (string, error)
}

// DiskStore writes images under a public static directory with generated
// filenames so uploads never collide.
type DiskStore struct {
	dir string
}

func NewDiskStore(dir string) *DiskStore {
	return &DiskStore{dir: dir}
}

func (s *DiskStore) Save(file *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}

	name := uuid.NewString() + filepath.Ext(file.Filename)

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return path.Join("/", filepath.Base(s.dir), name), nil
}
