package engineconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// DefaultPath is the preferences file, relative to the process working directory.
const DefaultPath = "config/landing.json"

// Environment variables that override the file.
const (
	EnvSocials = "LANDING_SOCIALS"
	EnvSeed    = "LANDING_SEED"
)

// Prefs holds page preferences. Persisted across runs.
type Prefs struct {
	ShowFPS      bool    `json:"show_fps"`
	ShowMemAlloc bool    `json:"show_memalloc"`
	Fullscreen   bool    `json:"fullscreen"`
	TargetFPS    int     `json:"target_fps"`
	StarCount    int     `json:"star_count"`
	StarSpread   float64 `json:"star_spread"`
	Seed         uint64  `json:"seed,omitempty"` // 0 = time-based
	SocialsPath  string  `json:"socials_path,omitempty"`
	LabelFont    string  `json:"label_font,omitempty"` // searched under assets/fonts; empty = Go Bold
}

// Default returns default preferences (overlays off, windowed, 60 FPS, 200 stars over 100 units).
func Default() Prefs {
	return Prefs{
		TargetFPS:   60,
		StarCount:   200,
		StarSpread:  100,
		SocialsPath: "assets/socials.yaml",
	}
}

// Load reads preferences from path. A missing file returns Default() without error; an
// unreadable or invalid file returns Default() and the error. Zero numeric fields take defaults.
func Load(path string) (Prefs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("read prefs %s: %w", path, err)
	}
	p := Default()
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("parse prefs %s: %w", path, err)
	}
	return p.withDefaults(), nil
}

func (p Prefs) withDefaults() Prefs {
	d := Default()
	if p.TargetFPS <= 0 {
		p.TargetFPS = d.TargetFPS
	}
	if p.StarCount <= 0 {
		p.StarCount = d.StarCount
	}
	if p.StarSpread <= 0 {
		p.StarSpread = d.StarSpread
	}
	if p.SocialsPath == "" {
		p.SocialsPath = d.SocialsPath
	}
	return p
}

// ApplyEnv overrides fields from LANDING_SOCIALS and LANDING_SEED. An unparsable seed is
// reported and leaves Seed unchanged.
func (p Prefs) ApplyEnv() (Prefs, error) {
	if v := os.Getenv(EnvSocials); v != "" {
		p.SocialsPath = v
	}
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return p, fmt.Errorf("%s: %w", EnvSeed, err)
		}
		p.Seed = seed
	}
	return p, nil
}

// Save writes preferences to path, creating the directory if needed.
func Save(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
