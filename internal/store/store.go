package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/wb-go/wbf/zlog"

	"github.com/ytget/countdown-tracker/internal/model"
)

// StorageKey is the preferences key holding the serialized collection
const StorageKey = "countdowns"

var (
	ErrNotFound    = errors.New("countdown not found")
	ErrDuplicateID = errors.New("countdown id already exists")
)

// Store holds the countdown collection and persists it after every mutation
type Store struct {
	mu         sync.RWMutex
	backend    Backend
	countdowns []model.Countdown
	now        func() time.Time
	onUpdate   func([]model.Countdown)
}

// NewStore creates an empty store on top of backend. Call Load to read the
// persisted collection.
func NewStore(backend Backend) *Store {
	return &Store{
		backend:    backend,
		countdowns: make([]model.Countdown, 0),
		now:        time.Now,
	}
}

// SetClock replaces the time source used for ids, createdAt and expiry
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// SetUpdateCallback sets the function called after each committed mutation
func (s *Store) SetUpdateCallback(callback func([]model.Countdown)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onUpdate = callback
}

// Load reads the persisted collection. Missing or malformed data yields an
// empty collection. Entries without an id, title or target, or with a
// repeated id, are dropped; an unknown priority becomes the default.
func (s *Store) Load() {
	raw := s.backend.String(StorageKey)

	loaded := make([]model.Countdown, 0)
	if raw != "" {
		var decoded []model.Countdown
		if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
			zlog.Logger.Error().Err(err).Msg("stored countdowns are malformed, starting empty")
		} else {
			seen := make(map[int64]bool, len(decoded))
			for _, c := range decoded {
				if c.ID == 0 || seen[c.ID] || strings.TrimSpace(c.Title) == "" || c.TargetDate.IsZero() {
					zlog.Logger.Warn().Int64("id", c.ID).Msg("skipping invalid stored countdown")
					continue
				}
				if !c.Priority.IsValid() {
					zlog.Logger.Warn().Int64("id", c.ID).Str("priority", string(c.Priority)).Msg("resetting unknown priority")
					c.Priority = model.DefaultPriority
				}
				seen[c.ID] = true
				loaded = append(loaded, c)
			}
		}
	}

	s.mu.Lock()
	s.countdowns = loaded
	s.mu.Unlock()

	zlog.Logger.Info().Int("count", len(loaded)).Msg("countdowns loaded")
}

// All returns a copy of the collection in insertion order
func (s *Store) All() []model.Countdown {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneCountdowns(s.countdowns)
}

// Get returns the countdown with the given id
func (s *Store) Get(id int64) (model.Countdown, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := s.indexOf(id)
	if idx < 0 {
		return model.Countdown{}, false
	}
	return s.countdowns[idx], true
}

// Len returns the number of countdowns
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.countdowns)
}

// Add appends a countdown as is
func (s *Store) Add(c model.Countdown) error {
	return s.mutate(func(current []model.Countdown) ([]model.Countdown, error) {
		if indexIn(current, c.ID) >= 0 {
			return nil, fmt.Errorf("add countdown %d: %w", c.ID, ErrDuplicateID)
		}
		return append(current, c), nil
	})
}

// Update replaces the countdown with a matching id. The stored createdAt is
// kept.
func (s *Store) Update(c model.Countdown) error {
	return s.mutate(func(current []model.Countdown) ([]model.Countdown, error) {
		idx := indexIn(current, c.ID)
		if idx < 0 {
			return nil, fmt.Errorf("update countdown %d: %w", c.ID, ErrNotFound)
		}
		c.CreatedAt = current[idx].CreatedAt
		current[idx] = c
		return current, nil
	})
}

// Remove deletes the countdown with the given id
func (s *Store) Remove(id int64) error {
	return s.mutate(func(current []model.Countdown) ([]model.Countdown, error) {
		idx := indexIn(current, id)
		if idx < 0 {
			return nil, fmt.Errorf("remove countdown %d: %w", id, ErrNotFound)
		}
		return append(current[:idx], current[idx+1:]...), nil
	})
}

// RemoveWhere deletes every countdown matching pred and returns how many
// were removed. pred runs on a snapshot without the store lock held, so it
// may call back into the store.
func (s *Store) RemoveWhere(pred func(model.Countdown) bool) (int, error) {
	doomed := make(map[int64]bool)
	for _, c := range s.All() {
		if pred(c) {
			doomed[c.ID] = true
		}
	}
	if len(doomed) == 0 {
		return 0, nil
	}

	removed := 0
	err := s.mutate(func(current []model.Countdown) ([]model.Countdown, error) {
		kept := current[:0]
		for _, c := range current {
			if doomed[c.ID] {
				removed++
				continue
			}
			kept = append(kept, c)
		}
		return kept, nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

// RemoveExpired deletes countdowns whose target is at or before now
func (s *Store) RemoveExpired() (int, error) {
	now := s.clock()
	return s.RemoveWhere(func(c model.Countdown) bool {
		return c.IsExpired(now)
	})
}

// Clear deletes every countdown
func (s *Store) Clear() error {
	return s.mutate(func([]model.Countdown) ([]model.Countdown, error) {
		return make([]model.Countdown, 0), nil
	})
}

// Create validates in and adds a new countdown for it
func (s *Store) Create(in model.CountdownInput) (model.Countdown, error) {
	now := s.clock()
	if err := in.Validate(now); err != nil {
		return model.Countdown{}, err
	}
	in = in.Normalize()

	var created model.Countdown
	err := s.mutate(func(current []model.Countdown) ([]model.Countdown, error) {
		created = model.Countdown{
			ID:         nextID(current, now),
			Title:      in.Title,
			TargetDate: in.Target,
			Priority:   in.Priority,
			CreatedAt:  now,
		}
		return append(current, created), nil
	})
	if err != nil {
		return model.Countdown{}, err
	}

	zlog.Logger.Info().Int64("id", created.ID).Str("title", created.Title).Msg("countdown created")
	return created, nil
}

// Edit validates in and replaces title, target and priority of the countdown
// with the given id
func (s *Store) Edit(id int64, in model.CountdownInput) (model.Countdown, error) {
	if err := in.Validate(s.clock()); err != nil {
		return model.Countdown{}, err
	}
	in = in.Normalize()

	var edited model.Countdown
	err := s.mutate(func(current []model.Countdown) ([]model.Countdown, error) {
		idx := indexIn(current, id)
		if idx < 0 {
			return nil, fmt.Errorf("edit countdown %d: %w", id, ErrNotFound)
		}
		edited = current[idx]
		edited.Title = in.Title
		edited.TargetDate = in.Target
		edited.Priority = in.Priority
		current[idx] = edited
		return current, nil
	})
	if err != nil {
		return model.Countdown{}, err
	}

	zlog.Logger.Info().Int64("id", edited.ID).Msg("countdown updated")
	return edited, nil
}

// mutate applies fn to a copy of the collection, persists the result and
// only then swaps it in.
func (s *Store) mutate(fn func([]model.Countdown) ([]model.Countdown, error)) error {
	s.mu.Lock()

	next, err := fn(cloneCountdowns(s.countdowns))
	if err != nil {
		s.mu.Unlock()
		return err
	}

	data, err := json.Marshal(next)
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("encode countdowns: %w", err)
	}
	s.backend.SetString(StorageKey, string(data))
	s.countdowns = next

	callback := s.onUpdate
	snapshot := cloneCountdowns(next)
	s.mu.Unlock()

	if callback != nil {
		callback(snapshot)
	}
	return nil
}

func (s *Store) clock() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.now()
}

func (s *Store) indexOf(id int64) int {
	return indexIn(s.countdowns, id)
}

func indexIn(countdowns []model.Countdown, id int64) int {
	for i, c := range countdowns {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// nextID derives an id from the creation instant, bumped past any id already
// in use.
func nextID(countdowns []model.Countdown, now time.Time) int64 {
	id := now.UnixMilli()
	for indexIn(countdowns, id) >= 0 {
		id++
	}
	return id
}

func cloneCountdowns(countdowns []model.Countdown) []model.Countdown {
	out := make([]model.Countdown, len(countdowns))
	copy(out, countdowns)
	return out
}
