package storage

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// Disabled is the storage directory value that turns persistence off.
const Disabled = "-"

// VoidStorage drops every stored network, nothing can be loaded back from it.
type VoidStorage struct {
	table string
	shard string
}

func (d VoidStorage) Store(k Key, value interface{}) error {
	log.Debug().
		Str("table", d.table).
		Str("shard", d.shard).
		Str("key", k.Path()).
		Msg("persistence disabled, network not stored")
	return nil
}

func (d VoidStorage) Load(k Key, value interface{}) error {
	return fmt.Errorf("persistence disabled for '%s/%s', '%s': %w", d.table, d.shard, k.Path(), NotFoundErr)
}

// VoidShard creates the shards of a table for which persistence is disabled.
func VoidShard(table string) Shard {
	return func(shard string) (Persistence, error) {
		return VoidStorage{table: table, shard: shard}, nil
	}
}
