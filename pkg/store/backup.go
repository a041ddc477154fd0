package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"shopcal/pkg/entry"
	"shopcal/pkg/settings"
)

// BackupVersion is the schema version stamped on exported files.
const BackupVersion = 2

// ErrInvalidBackup rejects import files that fail validation. Unlike the
// forgiving clipboard paste path, import overwrites everything, so it is
// strict: an invalid file causes no partial mutation.
var ErrInvalidBackup = errors.New("store: invalid backup file")

// Backup is the user-facing data portability format.
type Backup struct {
	Version          int               `json:"version"`
	ExportedAt       time.Time         `json:"exportedAt"`
	Entries          []entry.Entry     `json:"entries"`
	CalendarComments map[string]string `json:"calendarComments"`
	CalendarThemes   map[string]string `json:"calendarThemes"`
	Settings         settings.Settings `json:"settings"`
}

// Export collects all four key spaces into a Backup.
func Export(ctx context.Context, p Persistence) (*Backup, error) {
	entries, err := p.Entries(ctx)
	if err != nil {
		return nil, err
	}
	comments, err := p.Comments(ctx)
	if err != nil {
		return nil, err
	}
	themes, err := p.Themes(ctx)
	if err != nil {
		return nil, err
	}
	s, err := p.Settings(ctx)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []entry.Entry{}
	}
	return &Backup{
		Version:          BackupVersion,
		ExportedAt:       time.Now().UTC(),
		Entries:          entries,
		CalendarComments: comments,
		CalendarThemes:   themes,
		Settings:         s,
	}, nil
}

// ParseBackup validates a backup payload. Minimal validation: the entries
// list and a settings object must be present.
func ParseBackup(data []byte) (*Backup, error) {
	var probe struct {
		Entries  json.RawMessage `json:"entries"`
		Settings json.RawMessage `json:"settings"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, ErrInvalidBackup
	}
	if len(probe.Entries) == 0 || string(probe.Entries) == "null" ||
		len(probe.Settings) == 0 || string(probe.Settings) == "null" {
		return nil, ErrInvalidBackup
	}

	var b Backup
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, ErrInvalidBackup
	}
	// Settings of any historical shape get the migration treatment.
	b.Settings = settings.Migrate(probe.Settings)
	if b.CalendarComments == nil {
		b.CalendarComments = map[string]string{}
	}
	if b.CalendarThemes == nil {
		b.CalendarThemes = map[string]string{}
	}
	return &b, nil
}

// Import overwrites all stored data with the backup contents.
func Import(ctx context.Context, p Persistence, b *Backup) error {
	if b == nil {
		return ErrInvalidBackup
	}
	if err := p.ReplaceEntries(ctx, b.Entries); err != nil {
		return err
	}
	if err := p.SaveComments(ctx, b.CalendarComments); err != nil {
		return err
	}
	if err := p.SaveThemes(ctx, b.CalendarThemes); err != nil {
		return err
	}
	return p.SaveSettings(ctx, b.Settings)
}
