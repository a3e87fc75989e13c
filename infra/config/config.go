package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

const path = "infra/config"

// MustLoad loads the config for the given key
func MustLoad(key string, v interface{}) []byte {
	b, err := Load(filepath.Join(path, fmt.Sprintf("%s.json", key)), v)
	if err != nil {
		panic(fmt.Sprintf("could not load config for %s: %s", key, err.Error()))
	}
	log.Info().Str("config", key).Msg("loaded default config")
	return b
}

// Load loads the json config file at the given path into v.
func Load(file string, v interface{}) ([]byte, error) {
	b, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("could not read config '%s': %w", file, err)
	}

	err = json.Unmarshal(b, v)
	if err != nil {
		return nil, fmt.Errorf("could not unmarshal config '%s': %w", file, err)
	}

	return b, nil
}
