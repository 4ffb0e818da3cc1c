// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

// LoadWaveSettings reads a JSON file on top of the defaults.
// Fields missing from the file keep their default values.
func LoadWaveSettings(path string) (WaveSettings, error) {
	settings := DefaultWaveSettings()

	file, err := os.ReadFile(path)
	if err != nil {
		return settings, fmt.Errorf("failed to read wave settings file: %w", err)
	}

	if err := json.Unmarshal(file, &settings); err != nil {
		return settings, fmt.Errorf("failed to unmarshal wave settings: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return settings, fmt.Errorf("invalid wave settings in %s: %w", path, err)
	}

	log.Printf("Loaded wave settings from %s (%d waves)", path, settings.WavesToBeat)
	return settings, nil
}
