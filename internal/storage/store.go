package storage

import (
	"errors"
	"fmt"
)

var (
	// DefaultDir is the root directory of the file based storage implementations.
	DefaultDir = "file-storage"
)

// Shard creates a new storage implementation for the given shard.
type Shard func(shard string) (Persistence, error)

var (
	NotFoundErr     = errors.New("not found")
	CouldNotLoadErr = errors.New("could not load")
)

// Key is the storage key for a trained network.
type Key struct {
	Hash     int64  `json:"hash"`
	Topology string `json:"topology"`
	Label    string `json:"label"`
}

// Path returns the file name the key is stored under.
func (k Key) Path() string {
	return fmt.Sprintf("%s_%v_%s", k.Topology, k.Hash, k.Label)
}

// Persistence stores and loads values by key.
type Persistence interface {
	Store(k Key, value interface{}) error
	Load(k Key, value interface{}) error
}
