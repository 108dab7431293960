// Package session keeps login sessions in process memory.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/dtroode/volunteer-server/internal/logger"
	"github.com/dtroode/volunteer-server/internal/model"
)

var _ model.SessionStore = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithTTL sets the maximum age of a record since its last write.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithClock replaces the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithLogger makes the periodic sweep report evictions.
func WithLogger(l *logger.Logger) Option {
	return func(s *Store) {
		s.logger = l
	}
}

// Store is a TTL-governed map from user identifier to session record.
// A single mutex guards the map; no method does I/O while holding it.
type Store struct {
	mu      sync.Mutex
	records map[string]model.SessionRecord
	ttl     time.Duration
	now     func() time.Time
	logger  *logger.Logger
}

// New creates an empty Store.
func New(opts ...Option) *Store {
	s := &Store{
		records: make(map[string]model.SessionRecord),
		ttl:     model.DefaultSessionTTL,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Set replaces the record for key and stamps it with the current time.
func (s *Store) Set(key string, record model.SessionRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record.UpdatedAt = s.now()
	s.records[key] = record
}

// Get returns the live record for key. An expired record is removed and reported absent.
func (s *Store) Get(key string) (model.SessionRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.get(key)
}

// Update merges patch over the live record for key and restamps it.
// It never creates a record.
func (s *Store) Update(key string, patch model.SessionPatch) (model.SessionRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.get(key)
	if !ok {
		return model.SessionRecord{}, false
	}

	if patch.LoggedIn != nil {
		record.LoggedIn = *patch.LoggedIn
	}
	if patch.VolunteerID != nil {
		record.VolunteerID = *patch.VolunteerID
	}
	if patch.AssociationID != nil {
		record.AssociationID = *patch.AssociationID
	}
	if patch.ConfirmationCode != nil {
		record.ConfirmationCode = *patch.ConfirmationCode
	}
	record.UpdatedAt = s.now()
	s.records[key] = record

	return record, true
}

// Delete removes the record for key if there is one.
func (s *Store) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.records, key)
}

// SweepExpired removes every expired record and returns how many were removed.
func (s *Store) SweepExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for key, record := range s.records {
		if s.expired(record, now) {
			delete(s.records, key)
			removed++
		}
	}

	return removed
}

// Len returns the number of stored records, including expired ones not yet evicted.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.records)
}

// Run sweeps expired records every interval until ctx is done.
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed := s.SweepExpired()
			if s.logger != nil && removed > 0 {
				s.logger.Debug("Session store: expired sessions swept",
					"removed", removed)
			}
		}
	}
}

func (s *Store) get(key string) (model.SessionRecord, bool) {
	record, ok := s.records[key]
	if !ok {
		return model.SessionRecord{}, false
	}
	if s.expired(record, s.now()) {
		delete(s.records, key)
		return model.SessionRecord{}, false
	}

	return record, true
}

func (s *Store) expired(record model.SessionRecord, now time.Time) bool {
	return now.Sub(record.UpdatedAt) > s.ttl
}
