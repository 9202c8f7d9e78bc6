package storage

import (
	"errors"
	"io"
	"io/fs"
	"mime/multipart"
	"os"
	"path/filepath"

	"movieflix/domain"
)

// FileService owns the poster directory. Files are stored flat, named by
// their original upload filename.
type FileService interface {
	// UploadFile writes the upload under dir using its original name and
	// returns that name. The directory is created when absent. Creation
	// is exclusive: when two identical names race, the loser gets
	// domain.ErrFileExists rather than overwriting.
	UploadFile(dir string, fileHeader *multipart.FileHeader) (string, error)
	// RemoveFile deletes the named file. A missing file is not an error.
	RemoveFile(dir, filename string) error
	// GetResourceFile opens the named file for reading.
	GetResourceFile(dir, filename string) (io.ReadCloser, error)
	// Exists reports whether the named file is present.
	Exists(dir, filename string) bool
}

type localFileService struct{}

func NewFileService() FileService {
	return &localFileService{}
}

func (s *localFileService) UploadFile(dir string, fileHeader *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", err
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	filename := filepath.Base(fileHeader.Filename)
	dst, err := os.OpenFile(filepath.Join(dir, filename), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return "", domain.ErrFileExists
		}
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return filename, nil
}

func (s *localFileService) RemoveFile(dir, filename string) error {
	err := os.Remove(filepath.Join(dir, filepath.Base(filename)))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func (s *localFileService) GetResourceFile(dir, filename string) (io.ReadCloser, error) {
	f, err := os.Open(filepath.Join(dir, filepath.Base(filename)))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrFileNotFound
		}
		return nil, err
	}
	return f, nil
}

func (s *localFileService) Exists(dir, filename string) bool {
	_, err := os.Stat(filepath.Join(dir, filepath.Base(filename)))
	return err == nil
}
