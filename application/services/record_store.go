package services

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"sikdan-backend/application/ports"
	domainconfig "sikdan-backend/domain/config"
	"sikdan-backend/domain/core/entities"
	"sikdan-backend/domain/stats"
)

// LoadSource tags which backend served a load
type LoadSource string

const (
	SourceRemote LoadSource = "remote"
	SourceLocal  LoadSource = "local"
)

// LoadResult reports the outcome of a load: the records now held in
// memory, the backend that served them, and the remote error message
// when the local fallback had to serve
type LoadResult struct {
	Records     []entities.MealRecord `json:"records"`
	Source      LoadSource            `json:"source"`
	RemoteError string                `json:"remoteError,omitempty"`
}

// RecordStore owns the canonical in-memory record list for the running
// session and mediates between the local cache and the remote store.
// It is the only writer to either backend. All operations serialize on
// one mutex; request goroutines never observe a partially applied
// mutation.
type RecordStore struct {
	mu      sync.Mutex
	records []entities.MealRecord
	loading bool
	lastErr string

	cache  ports.LocalCache
	remote ports.RemoteMealStore // nil when the remote backend is disabled
	userID string

	calc   *stats.Calculator
	dcfg   *domainconfig.DomainConfig
	logger *zap.Logger
}

// NewRecordStore creates a record store over the given backends. A nil
// remote store means every operation runs purely against the local
// cache.
func NewRecordStore(
	cache ports.LocalCache,
	remote ports.RemoteMealStore,
	userID string,
	dcfg *domainconfig.DomainConfig,
	logger *zap.Logger,
) *RecordStore {
	return &RecordStore{
		cache:  cache,
		remote: remote,
		userID: userID,
		calc:   stats.NewCalculator(dcfg),
		dcfg:   dcfg,
		logger: logger,
	}
}

// Load populates the in-memory list: remote first, filtered to the
// given date, falling back to the local cache on any remote failure.
// The served result is mirrored into the local cache as a backup.
func (s *RecordStore) Load(ctx context.Context, date string) LoadResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loading = true
	defer func() { s.loading = false }()
	s.lastErr = ""

	result := LoadResult{Source: SourceLocal}

	if s.remote != nil {
		remote := s.remote.ListByDate(ctx, s.userID, date)
		if remote.Ok() {
			result.Records = remote.Records
			result.Source = SourceRemote
		} else {
			s.lastErr = remote.Message
			result.RemoteError = remote.Message
			s.logger.Warn("remote load failed, falling back to local cache",
				zap.String("date", date),
				zap.String("reason", remote.Message),
			)
		}
	}

	if result.Source == SourceLocal {
		result.Records = s.cache.ReadAll()
	}

	s.records = result.Records
	s.writeCache()

	return result
}

// Add assigns identity to the draft and appends it. The record is
// durable once written locally; a failing remote create is logged and
// never rolls the local write back. Validation is the caller's
// responsibility.
func (s *RecordStore) Add(ctx context.Context, draft entities.MealDraft) entities.MealRecord {
	s.mu.Lock()
	record := entities.NewMealRecord(draft)
	s.records = append(s.records, record)
	s.writeCache()
	s.mu.Unlock()

	if s.remote != nil {
		remote := s.remote.Create(ctx, s.userID, record)
		if remote.Ok() && remote.Record != nil {
			return *remote.Record
		}
		if !remote.Ok() {
			s.logger.Warn("remote create failed, record kept locally",
				zap.String("id", record.ID),
				zap.String("reason", remote.Message),
			)
		}
	}

	return record
}

// Update merges the patch into the record with the given ID and stamps
// its update time. A nil return means no record carries that ID; this
// is a signal, not an error.
func (s *RecordStore) Update(id string, patch entities.MealPatch) *entities.MealRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].ID == id {
			s.records[i].ApplyPatch(patch)
			s.writeCache()
			updated := s.records[i]
			return &updated
		}
	}
	return nil
}

// Remove deletes the record from memory and the local cache
// unconditionally, then attempts a best-effort remote delete. Removing
// an unknown ID is a no-op. A failed remote delete leaves the backends
// diverged; that divergence is accepted, not reconciled.
func (s *RecordStore) Remove(ctx context.Context, id string) {
	s.mu.Lock()
	kept := s.records[:0]
	for _, r := range s.records {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	s.records = kept
	s.writeCache()
	s.mu.Unlock()

	if s.remote != nil {
		if remote := s.remote.DeleteByID(ctx, id); !remote.Ok() {
			s.logger.Warn("remote delete failed, local removal stands",
				zap.String("id", id),
				zap.String("reason", remote.Message),
			)
		}
	}
}

// QueryByDate filters the in-memory list to one date
func (s *RecordStore) QueryByDate(date string) []entities.MealRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []entities.MealRecord
	for _, r := range s.records {
		if r.Date == date {
			matched = append(matched, r)
		}
	}
	return matched
}

// QueryByDateRange filters the in-memory list to an inclusive date
// range. Date strings compare lexicographically in YYYY-MM-DD form.
func (s *RecordStore) QueryByDateRange(start, end string) []entities.MealRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []entities.MealRecord
	for _, r := range s.records {
		if r.Date >= start && r.Date <= end {
			matched = append(matched, r)
		}
	}
	return matched
}

// QueryByType filters the in-memory list to one meal-time slot
func (s *RecordStore) QueryByType(mealType entities.MealType) []entities.MealRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []entities.MealRecord
	for _, r := range s.records {
		if r.MealType == mealType {
			matched = append(matched, r)
		}
	}
	return matched
}

// DailyStats computes per-slot calorie totals for one date
func (s *RecordStore) DailyStats(date string) stats.DailyStats {
	return s.calc.Daily(s.snapshotRecords(), date)
}

// WeeklyStats computes the seven-day breakdown for the week containing
// the anchor date
func (s *RecordStore) WeeklyStats(anchorDate string) ([]stats.WeekDayStats, error) {
	return s.calc.Weekly(s.snapshotRecords(), anchorDate)
}

// TopFoods ranks the most frequently logged food names
func (s *RecordStore) TopFoods(n int) []stats.FoodCount {
	return s.calc.TopFoods(s.snapshotRecords(), n)
}

// Recent returns the most recently created records, newest first
func (s *RecordStore) Recent(n int) []entities.MealRecord {
	return s.calc.Recent(s.snapshotRecords(), n)
}

// Search filters records whose food name or memo contains the term
func (s *RecordStore) Search(term string) []entities.MealRecord {
	return stats.SearchByFood(s.snapshotRecords(), term)
}

// SortedByRecency orders the in-memory list by date and canonical slot
// time
func (s *RecordStore) SortedByRecency(order stats.SortOrder) []entities.MealRecord {
	return s.calc.SortByRecency(s.snapshotRecords(), order)
}

// GroupedByDate partitions the in-memory list by date
func (s *RecordStore) GroupedByDate() map[string][]entities.MealRecord {
	return stats.GroupByDate(s.snapshotRecords())
}

// Summary rolls up counts and calories for one date
func (s *RecordStore) Summary(date string) stats.MealSummary {
	return s.calc.Summary(s.snapshotRecords(), date)
}

// RemoteFoods lists the remote food catalog. The result keeps the
// uniform remote shape so callers can surface the failure message.
func (s *RecordStore) RemoteFoods(ctx context.Context) ports.RemoteFoodsResult {
	if s.remote == nil {
		return ports.RemoteFoodsResult{
			RemoteResult: ports.RemoteResult{Error: true, Message: "remote backend is disabled"},
		}
	}
	return s.remote.ListAllFoods(ctx)
}

// Clear empties the in-memory list and removes the local cache entry
func (s *RecordStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = nil
	if err := s.cache.Delete(); err != nil {
		s.logger.Warn("failed to delete local cache entry", zap.Error(err))
	}
}

// Count returns the number of records currently held in memory
func (s *RecordStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Loading reports whether a load is in flight
func (s *RecordStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// LastError returns the remote error message of the most recent load,
// empty when it succeeded
func (s *RecordStore) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// snapshotRecords copies the current list so derived computations run
// without holding the lock
func (s *RecordStore) snapshotRecords() []entities.MealRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := make([]entities.MealRecord, len(s.records))
	copy(copied, s.records)
	return copied
}

// writeCache mirrors the in-memory list into the local cache. Failures
// are logged and swallowed; local cache writes are non-critical.
// Callers must hold s.mu.
func (s *RecordStore) writeCache() {
	if err := s.cache.WriteAll(s.records); err != nil {
		s.logger.Warn("failed to write local cache", zap.Error(err))
	}
}
