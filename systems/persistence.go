package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"

	"github.com/bitloam/tinywalker/anim"
)

// SavedSettings represents the editor preferences stored on disk
type SavedSettings struct {
	ShowGrid     bool   `json:"showGrid"`
	SelectedClip string `json:"selectedClip"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for clip table and settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "tinywalker",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadClipTable loads the persisted clip table, or nil when none was saved.
// A corrupt saved table is reported and ignored; the caller keeps the default
// mapping, so a bad save never takes the game down.
func LoadClipTable() (*anim.ClipTable, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("cliptable")
	if err != nil {
		log.Printf("Warning: Could not load clip table: %v", err)
		return nil, nil
	}
	if data == nil {
		// No saved table yet, use the default mapping
		return nil, nil
	}

	var table anim.ClipTable
	if err := json.Unmarshal(data, &table); err != nil {
		log.Printf("Warning: Could not parse saved clip table: %v", err)
		return nil, err
	}

	return &table, nil
}

// SaveClipTable persists the clip table. Failures are logged and returned
// but non-fatal; the in-memory table stays usable.
func SaveClipTable(t *anim.ClipTable) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	if err := t.Validate(); err != nil {
		log.Printf("Warning: Refusing to save invalid clip table: %v", err)
		return err
	}

	data, err := json.Marshal(t)
	if err != nil {
		log.Printf("Warning: Could not serialize clip table: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("cliptable", data); err != nil {
		log.Printf("Warning: Could not save clip table: %v", err)
		return err
	}
	return nil
}

// LoadSettings loads editor settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves editor settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}
