package ledger

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/theirongolddev/wtrack/internal/model"
)

// LoadFile reads the ledger at path. A missing file yields an empty store
// and default config.
func LoadFile(path string) (*Store, model.TrackerConfig, error) {
	s := New()

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, model.TrackerConfig{}, nil
		}
		return nil, model.TrackerConfig{}, fmt.Errorf("opening ledger: %w", err)
	}
	defer func() { _ = f.Close() }()

	cfg, err := s.Load(f)
	if err != nil {
		return nil, model.TrackerConfig{}, fmt.Errorf("loading %s: %w", path, err)
	}
	return s, cfg, nil
}

// SaveFile rewrites the ledger at path. The content goes to a temp file in
// the same directory which is then renamed over path.
func SaveFile(path string, s *Store, cfg model.TrackerConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating ledger dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("creating temp ledger: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if err := s.Save(tmp, cfg); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing ledger: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp ledger: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replacing ledger: %w", err)
	}
	return nil
}
