package cart

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/emberhollow/storefront/models"
)

var cartKeyPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// FileStorage keeps one JSON snapshot file per cart key under a base
// directory. Unreadable or malformed files load as empty carts.
type FileStorage struct {
	dir string
}

// NewFileStorage creates the base directory if needed.
func NewFileStorage(dir string) (*FileStorage, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cart storage directory: %v", err)
	}
	return &FileStorage{dir: dir}, nil
}

func (s *FileStorage) path(cartKey string) (string, error) {
	if !cartKeyPattern.MatchString(cartKey) {
		return "", fmt.Errorf("invalid cart key: %q", cartKey)
	}
	return filepath.Join(s.dir, cartKey+".json"), nil
}

func (s *FileStorage) Load(cartKey string) (models.CartSnapshot, error) {
	empty := models.CartSnapshot{Version: models.SnapshotVersion}

	path, err := s.path(cartKey)
	if err != nil {
		return empty, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return empty, nil
		}
		return empty, fmt.Errorf("failed to read cart snapshot: %v", err)
	}

	var snap models.CartSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		// Corrupt file: fall back to an empty cart.
		return empty, fmt.Errorf("corrupt cart snapshot %s: %v", path, err)
	}
	return snap, nil
}

func (s *FileStorage) Save(cartKey string, snapshot models.CartSnapshot) error {
	path, err := s.path(cartKey)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode cart snapshot: %v", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write cart snapshot: %v", err)
	}
	return os.Rename(tmp, path)
}
