package repository

import (
	"context"
	"sync"

	"github.com/windoze95/servicehub-api/internal/logger"
	"github.com/windoze95/servicehub-api/internal/util"
	"go.uber.org/zap"
)

const (
	// DefaultHistoryKey is the storage key for recent weather searches.
	DefaultHistoryKey = "weatherRecentSearches"

	// DefaultHistoryLimit caps the recent list.
	DefaultHistoryLimit = 5
)

// HistoryRepository keeps a short most-recent-first list of searched cities.
type HistoryRepository struct {
	KV    KeyValueStore
	Key   string
	Limit int

	// mu serializes Record's read-modify-write within this process.
	mu sync.Mutex
}

// NewHistoryRepository creates a HistoryRepository. Empty key and
// non-positive limit fall back to the defaults.
func NewHistoryRepository(kv KeyValueStore, key string, limit int) *HistoryRepository {
	if key == "" {
		key = DefaultHistoryKey
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &HistoryRepository{KV: kv, Key: key, Limit: limit}
}

// Load returns the stored list. A missing or unreadable value yields an
// empty list; only store errors are returned.
func (r *HistoryRepository) Load(ctx context.Context) ([]string, error) {
	raw, ok, err := r.KV.Get(ctx, r.Key)
	if err != nil {
		return nil, err
	}
	return r.decode(raw, ok), nil
}

func (r *HistoryRepository) decode(raw string, ok bool) []string {
	if !ok || raw == "" {
		return []string{}
	}

	var list []string
	if err := util.DeserializeFromJSONString(raw, &list); err != nil {
		logger.Get().Warn("discarding malformed history", zap.String("key", r.Key), zap.Error(err))
		return []string{}
	}
	if list == nil {
		list = []string{}
	}
	return list
}

// Record moves city to the front of the list, persists it and returns the
// new list. Stores that implement AtomicUpdater apply the change atomically
// across processes.
func (r *HistoryRepository) Record(ctx context.Context, city string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var next []string
	push := func(raw string, ok bool) (string, error) {
		next = PushRecent(r.decode(raw, ok), city, r.Limit)
		return util.SerializeToJSONString(next)
	}

	if updater, ok := r.KV.(AtomicUpdater); ok {
		if err := updater.Update(ctx, r.Key, push); err != nil {
			return nil, err
		}
		return next, nil
	}

	raw, found, err := r.KV.Get(ctx, r.Key)
	if err != nil {
		return nil, err
	}
	value, err := push(raw, found)
	if err != nil {
		return nil, err
	}
	if err := r.KV.Set(ctx, r.Key, value); err != nil {
		return nil, err
	}
	return next, nil
}

// PushRecent returns a new list with item first, any exact duplicate
// removed and the length capped at limit. The input is not modified.
func PushRecent(list []string, item string, limit int) []string {
	next := make([]string, 0, len(list)+1)
	next = append(next, item)
	for _, existing := range list {
		if existing == item {
			continue
		}
		next = append(next, existing)
	}
	if limit > 0 && len(next) > limit {
		next = next[:limit]
	}
	return next
}
