package selection

import (
	"encoding/json"
	"os"
	"path/filepath"

	"stadium-admin/internal/domain"
)

// FSStore keeps one JSON file per session under Dir. A broken or missing file
// reads back as an empty selection, matching how a wiped local-storage entry
// behaves in the portal frontend.
type FSStore struct {
	Dir string
}

func NewFSStore(dir string) *FSStore {
	return &FSStore{Dir: dir}
}

func (s *FSStore) path(sessionID string) string {
	return filepath.Join(s.Dir, "selection_"+sessionID+".json")
}

func (s *FSStore) Load(sessionID string) (domain.Selection, bool) {
	data, err := os.ReadFile(s.path(sessionID))
	if err != nil {
		return domain.Selection{}, false
	}
	var sel domain.Selection
	if err := json.Unmarshal(data, &sel); err != nil {
		return domain.Selection{}, false
	}
	return sel, true
}

func (s *FSStore) Save(sessionID string, sel domain.Selection) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return err
	}
	data, err := json.Marshal(sel)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(sessionID), data, 0o644)
}

func (s *FSStore) Clear(sessionID string) error {
	err := os.Remove(s.path(sessionID))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
