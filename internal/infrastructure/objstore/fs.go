package objstore

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// FSStore writes uploaded objects under a local directory and serves them
// back as /assets/ URLs, standing in for a hosted object storage bucket.
type FSStore struct {
	Dir           string
	PublicBaseURL string
}

func NewFSStore(dir, publicBaseURL string) *FSStore {
	return &FSStore{Dir: dir, PublicBaseURL: strings.TrimRight(publicBaseURL, "/")}
}

// Upload stores data at the given object path and returns its public URL.
// Paths follow {collection}/{ownerId}/{timestamp}_{filename}.
func (s *FSStore) Upload(path string, data []byte) (string, error) {
	path = strings.TrimLeft(path, "/")
	if path == "" || strings.Contains(path, "..") {
		return "", errors.New("invalid object path")
	}
	full := filepath.Join(s.Dir, filepath.FromSlash(path))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return "", err
	}
	return s.PublicBaseURL + "/assets/" + path, nil
}

// Delete removes the object behind a URL previously returned by Upload.
// URLs that do not belong to this store are ignored.
func (s *FSStore) Delete(url string) error {
	i := strings.Index(url, "/assets/")
	if i < 0 {
		return nil
	}
	path := strings.TrimLeft(url[i+len("/assets/"):], "/")
	if path == "" || strings.Contains(path, "..") {
		return nil
	}
	err := os.Remove(filepath.Join(s.Dir, filepath.FromSlash(path)))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
