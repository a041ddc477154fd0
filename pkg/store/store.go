package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"shopcal/pkg/entry"
	"shopcal/pkg/settings"
)

// ErrUnavailable wraps storage failures that should degrade the app rather
// than crash it: the caller flags the error, keeps empty data, and stays up.
var ErrUnavailable = errors.New("store: storage unavailable")

// Persistence is the storage contract. Four independent key spaces: entries
// (one record per date), and the settings/comments/themes singletons. No
// cross-space transactions are provided or needed; each space has a single
// logical writer.
type Persistence interface {
	Entries(ctx context.Context) ([]entry.Entry, error)
	SaveEntry(ctx context.Context, e entry.Entry) error
	ReplaceEntries(ctx context.Context, entries []entry.Entry) error

	Settings(ctx context.Context) (settings.Settings, error)
	SaveSettings(ctx context.Context, s settings.Settings) error

	Comments(ctx context.Context) (map[string]string, error)
	SaveComments(ctx context.Context, comments map[string]string) error

	Themes(ctx context.Context) (map[string]string, error)
	SaveThemes(ctx context.Context, themes map[string]string) error
}

const (
	entriesPrefix = "entries/"
	settingsKey   = "settings"
	commentsKey   = "comments"
	themesKey     = "themes"
)

// Load creates a Persistence backed by diskv using the provided config.
// A nil config falls back to LoadConfig.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

// keyToPathTransform maps "entries/2025-06-15" to entries/2025-06-15.json
// and singleton keys to files at the store root.
func keyToPathTransform(key string) *diskv.PathKey {
	parts := strings.Split(key, "/")
	last := len(parts) - 1
	return &diskv.PathKey{
		Path:     parts[:last],
		FileName: parts[last] + ".json",
	}
}

func pathToKeyTransform(pk *diskv.PathKey) string {
	name := strings.TrimSuffix(pk.FileName, ".json")
	if len(pk.Path) == 0 {
		return name
	}
	return strings.Join(pk.Path, "/") + "/" + name
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) Entries(ctx context.Context) ([]entry.Entry, error) {
	var out []entry.Entry
	for key := range p.d.KeysPrefix(entriesPrefix, ctx.Done()) {
		val, err := p.d.Read(key)
		if err != nil {
			return nil, fmt.Errorf("%w: reading %s: %v", ErrUnavailable, key, err)
		}
		var e entry.Entry
		if err := json.Unmarshal(val, &e); err != nil {
			// A corrupt record is skipped, not fatal; the date key
			// is authoritative so the rest of the data stays usable.
			continue
		}
		if e.Date == "" {
			e.Date = strings.TrimPrefix(key, entriesPrefix)
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (p *persistence) SaveEntry(ctx context.Context, e entry.Entry) error {
	if e.Date == "" {
		return errors.New("store: entry has no date")
	}
	b, err := json.Marshal(e)
	if err != nil {
		return err
	}
	if err := p.d.Write(entriesPrefix+e.Date, b); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

func (p *persistence) ReplaceEntries(ctx context.Context, entries []entry.Entry) error {
	var keys []string
	for key := range p.d.KeysPrefix(entriesPrefix, ctx.Done()) {
		keys = append(keys, key)
	}
	for _, key := range keys {
		if err := p.d.Erase(key); err != nil {
			return fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
	}
	for _, e := range entries {
		if err := p.SaveEntry(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

func (p *persistence) Settings(ctx context.Context) (settings.Settings, error) {
	raw, err := p.readSingleton(settingsKey)
	if err != nil {
		return settings.Defaults(), err
	}
	// Migrate handles every historical shape and default-fills.
	return settings.Migrate(raw), nil
}

func (p *persistence) SaveSettings(ctx context.Context, s settings.Settings) error {
	return p.writeSingleton(settingsKey, s)
}

func (p *persistence) Comments(ctx context.Context) (map[string]string, error) {
	m, err := p.readStringMap(commentsKey)
	if err != nil {
		return nil, err
	}
	if m != nil {
		return m, nil
	}
	// Pre-v3 stores kept comments embedded in the settings record.
	raw, err := p.readSingleton(settingsKey)
	if err != nil {
		return nil, err
	}
	if legacy := settings.ExtractLegacyComments(raw); legacy != nil {
		return legacy, nil
	}
	return map[string]string{}, nil
}

func (p *persistence) SaveComments(ctx context.Context, comments map[string]string) error {
	return p.writeSingleton(commentsKey, comments)
}

func (p *persistence) Themes(ctx context.Context) (map[string]string, error) {
	m, err := p.readStringMap(themesKey)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return map[string]string{}, nil
	}
	return m, nil
}

func (p *persistence) SaveThemes(ctx context.Context, themes map[string]string) error {
	return p.writeSingleton(themesKey, themes)
}

// readSingleton returns the raw payload of a singleton key, or nil when the
// key has never been written.
func (p *persistence) readSingleton(key string) ([]byte, error) {
	if !p.d.Has(key) {
		return nil, nil
	}
	val, err := p.d.Read(key)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrUnavailable, key, err)
	}
	return val, nil
}

func (p *persistence) writeSingleton(key string, v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if err := p.d.Write(key, b); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// readStringMap decodes a map singleton; a missing key yields nil with no
// error so callers can apply their own fallback.
func (p *persistence) readStringMap(key string) (map[string]string, error) {
	raw, err := p.readSingleton(key)
	if err != nil || raw == nil {
		return nil, err
	}
	var m map[string]string
	if err := json.Unmarshal(raw, &m); err != nil {
		// Forgiving read path: a corrupt map is treated as absent.
		return nil, nil
	}
	return m, nil
}
