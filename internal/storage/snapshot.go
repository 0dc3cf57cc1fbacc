package storage

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
)

const (
	snapshotObject   = "snapshot"
	snapshotProperty = "jumpboy"
)

// SnapshotStore keeps the serialized game snapshot in the per-user data
// directory managed by gdata.
type SnapshotStore struct {
	manager *gdata.Manager
	prop    string
}

// OpenSnapshots opens the data directory of appName. Each game ID gets its
// own property so the normal and hard variants do not share a save.
func OpenSnapshots(appName, gameID string) (*SnapshotStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open data dir: %w", err)
	}
	prop := snapshotProperty
	if gameID != "" {
		prop = gameID
	}
	return &SnapshotStore{manager: m, prop: prop}, nil
}

// Save replaces the stored snapshot.
func (s *SnapshotStore) Save(data []byte) error {
	if err := s.manager.SaveObjectProp(snapshotObject, s.prop, data); err != nil {
		return fmt.Errorf("storage: cannot save snapshot: %w", err)
	}
	return nil
}

// Load returns the stored snapshot, or nil when nothing was saved yet.
func (s *SnapshotStore) Load() ([]byte, error) {
	if !s.manager.ObjectPropExists(snapshotObject, s.prop) {
		return nil, nil
	}
	data, err := s.manager.LoadObjectProp(snapshotObject, s.prop)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot load snapshot: %w", err)
	}
	return data, nil
}
