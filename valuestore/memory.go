package valuestore

import (
	"encoding/json"
	"fmt"
)

// Memory is an in-memory value store for tests, benchmarks and runs where
// the on-disk store could not be opened. Records go through the same JSON
// encoding as the SQLite store so round-trip behaviour matches.
type Memory struct {
	records map[string][]byte
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{records: make(map[string][]byte)}
}

// Load reads the record stored under app/key into out. It reports false
// with no error when the record does not exist.
func (m *Memory) Load(app, key string, out any) (bool, error) {
	raw, ok := m.records[app+"/"+key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("decode %s/%s: %w", app, key, err)
	}
	return true, nil
}

// Save stores the record under app/key.
func (m *Memory) Save(app, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s/%s: %w", app, key, err)
	}
	m.records[app+"/"+key] = raw
	return nil
}
