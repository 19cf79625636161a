package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/doomerang-combat/combat"
	cfg "github.com/automoto/doomerang-combat/config"
	"github.com/quasilyte/gdata"
)

const tuningKey = "tuning"

// tuningVersion is bumped when saved tuning can no longer be merged
const tuningVersion = 1

// SavedTuning represents the lab tuning stored on disk
type SavedTuning struct {
	Version  int                    `json:"version"`
	Combat   combat.Settings        `json:"combat"`
	Sparring cfg.SparringDifficulty `json:"sparring"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for tuning storage
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// DefaultTuning returns the tuning built from the current config
func DefaultTuning() *SavedTuning {
	return &SavedTuning{
		Version:  tuningVersion,
		Combat:   cfg.Combat,
		Sparring: cfg.Sparring.Default,
	}
}

// MergeTuning decodes saved data over defaults. Fields missing from data keep
// their default values. Data from another version is ignored.
func MergeTuning(defaults *SavedTuning, data []byte) (*SavedTuning, error) {
	merged := *defaults
	if len(data) == 0 {
		return &merged, nil
	}
	if err := json.Unmarshal(data, &merged); err != nil {
		return defaults, err
	}
	if merged.Version != defaults.Version {
		log.Printf("Warning: Ignoring saved tuning version %d", merged.Version)
		return defaults, nil
	}
	return &merged, nil
}

// LoadTuning loads tuning from disk merged over defaults. Without storage or
// saved data it returns defaults.
func LoadTuning(defaults *SavedTuning) (*SavedTuning, error) {
	if !gdataInitialized || gdataManager == nil {
		return defaults, nil
	}

	data, err := gdataManager.LoadItem(tuningKey)
	if err != nil {
		log.Printf("Warning: Could not load tuning: %v", err)
		return defaults, nil
	}

	merged, err := MergeTuning(defaults, data)
	if err != nil {
		log.Printf("Warning: Could not parse saved tuning: %v", err)
		return defaults, err
	}
	return merged, nil
}

// SaveTuning saves tuning to disk
func SaveTuning(t *SavedTuning) error {
	if !gdataInitialized || gdataManager == nil || t == nil {
		return nil
	}

	data, err := json.Marshal(t)
	if err != nil {
		log.Printf("Warning: Could not serialize tuning: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(tuningKey, data); err != nil {
		log.Printf("Warning: Could not save tuning: %v", err)
		return err
	}
	return nil
}

// ApplyTuningGlobal applies loaded tuning to the config globals. Used during
// startup before the arena is created.
func ApplyTuningGlobal(t *SavedTuning) {
	if t == nil {
		return
	}
	cfg.Combat = t.Combat
	if _, ok := cfg.Sparring.Scripts[t.Sparring]; ok {
		cfg.Sparring.Default = t.Sparring
	}
}

// ClearTuning removes any saved tuning
func ClearTuning() error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	if err := gdataManager.SaveItem(tuningKey, nil); err != nil {
		log.Printf("Warning: Could not clear tuning: %v", err)
		return err
	}
	return nil
}
