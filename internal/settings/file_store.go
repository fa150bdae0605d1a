package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/gofrs/uuid/v5"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// FileStore keeps one settings document per user in a directory.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (s *FileStore) path(userID uuid.UUID) string {
	return filepath.Join(s.dir, userID.String()+".yaml")
}

// Load returns the user's settings, or the defaults when none were saved.
// A legacy document is rewritten in the current shape the first time it is
// read.
func (s *FileStore) Load(userID uuid.UUID) (Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(userID))
	if errors.Is(err, fs.ErrNotExist) {
		return Defaults(), nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read settings: %w", err)
	}

	settings, err := Parse(data)
	if err != nil {
		return Settings{}, err
	}

	if settings.Migrated() {
		log.WithField("userID", userID.String()).Info("Migrating legacy notification settings")
		if err := s.write(userID, settings); err != nil {
			return Settings{}, err
		}
	}
	return settings, nil
}

func (s *FileStore) Save(userID uuid.UUID, settings Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(userID, settings)
}

func (s *FileStore) write(userID uuid.UUID, settings Settings) error {
	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create settings dir: %w", err)
	}

	tmp := s.path(userID) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return os.Rename(tmp, s.path(userID))
}
