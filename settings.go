package tempo

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// DefaultSettingsFile matches the filename the desktop viewer used.
const DefaultSettingsFile = "user_settings.json"

// OpacityLevels are the selectable window alpha values, most opaque
// first.
var OpacityLevels = [...]float64{1.0, 0.9, 0.8, 0.7, 0.6, 0.5, 0.4, 0.3, 0.2, 0.1}

// DefaultOpacityIndex selects 50% opacity at startup.
const DefaultOpacityIndex = 5

// Settings is the persisted user state, stored as a flat JSON object.
// Keys missing from the file keep their defaults; unknown keys are
// dropped on the next save.
type Settings struct {
	FontSize     int `json:"font_size"`
	SpeedIndex   int `json:"speed_index"`
	OpacityIndex int `json:"opacity_index"`
	WindowWidth  int `json:"window_width"`
	WindowHeight int `json:"window_height"`
}

// DefaultSettings returns the startup defaults.
func DefaultSettings() Settings {
	return Settings{
		FontSize:     DefaultFontSize,
		SpeedIndex:   DefaultSpeedIndex,
		OpacityIndex: DefaultOpacityIndex,
		WindowWidth:  800,
		WindowHeight: 700,
	}
}

// LoadSettings reads path and merges the file over the defaults, then
// clamps every field to its allowed range. A missing file is not an
// error; an unreadable or malformed one returns the defaults alongside
// the error so callers can keep running.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("load settings: %w", err)
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return DefaultSettings(), fmt.Errorf("load settings: %w", err)
	}
	s.Clamp()
	return s, nil
}

// Save writes the settings as indented JSON.
func (s Settings) Save(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// Clamp forces every field into its allowed range.
func (s *Settings) Clamp() {
	s.FontSize = ClampFontSize(s.FontSize)
	s.SpeedIndex = ClampSpeedIndex(s.SpeedIndex)
	if s.OpacityIndex < 0 {
		s.OpacityIndex = 0
	}
	if s.OpacityIndex >= len(OpacityLevels) {
		s.OpacityIndex = len(OpacityLevels) - 1
	}
	if s.WindowWidth <= 0 {
		s.WindowWidth = DefaultSettings().WindowWidth
	}
	if s.WindowHeight <= 0 {
		s.WindowHeight = DefaultSettings().WindowHeight
	}
}
