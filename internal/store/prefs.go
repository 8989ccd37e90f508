package store

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/loupedev/loupe/internal/prefs"
)

// PrefsKey is the storage slot holding the JSON-serialized preferences record.
const PrefsKey = "display.prefs"

// Prefs adapts the KV store to the prefs.Store interface.
type Prefs struct {
	kv     *KV
	logger *log.Logger
}

// NewPrefs wraps kv as a preferences store.
func NewPrefs(kv *KV, logger *log.Logger) *Prefs {
	if logger == nil {
		logger = log.Default()
	}
	return &Prefs{kv: kv, logger: logger}
}

// Load reads the stored record. A missing slot or malformed JSON reports
// ok=false so the caller falls back to defaults.
func (p *Prefs) Load() (prefs.Record, bool, error) {
	raw, ok, err := p.kv.Get(PrefsKey)
	if err != nil {
		return prefs.Record{}, false, fmt.Errorf("reading stored preferences: %w", err)
	}
	if !ok {
		return prefs.Record{}, false, nil
	}

	var rec prefs.Record
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		p.logger.Warn("stored preferences are malformed, using defaults", "error", err)
		return prefs.Record{}, false, nil
	}
	return rec, true, nil
}

// Save writes the record back to its slot.
func (p *Prefs) Save(rec prefs.Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encoding preferences: %w", err)
	}
	if err := p.kv.Put(PrefsKey, string(data)); err != nil {
		return fmt.Errorf("storing preferences: %w", err)
	}
	return nil
}
