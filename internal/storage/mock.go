package storage

import (
	"encoding/json"
	"fmt"
)

// MockStorage keeps the json representation of every stored value in memory.
type MockStorage struct {
	Elements map[Key][]byte
}

// NewMockStorage creates a new in-memory storage.
func NewMockStorage() *MockStorage {
	return &MockStorage{Elements: make(map[Key][]byte)}
}

func (m *MockStorage) Store(k Key, value interface{}) error {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("could not store '%v': %w", k, err)
	}
	m.Elements[k] = b
	return nil
}

func (m *MockStorage) Load(k Key, value interface{}) error {
	b, ok := m.Elements[k]
	if !ok {
		return fmt.Errorf("not found '%v': %w", k, NotFoundErr)
	}
	if err := json.Unmarshal(b, value); err != nil {
		return fmt.Errorf("could not unmarshal '%v': %v: %w", k, err, CouldNotLoadErr)
	}
	return nil
}
