package gestor

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/gfpro/gestor/date"
	"github.com/gfpro/gestor/logging"
	"github.com/gofrs/flock"
	"github.com/rs/zerolog"
)

// Collection names. Each collection is an independently versioned set of
// records persisted as one JSON file in the data directory.
const (
	ColTransactions = "transactions"
	ColRecurring    = "recurring"
	ColHoldings     = "holdings"
	ColGoals        = "goals"
	ColConfig       = "config"
)

// collections lists every managed collection, in backup order.
var collections = []string{ColTransactions, ColRecurring, ColHoldings, ColGoals, ColConfig}

// readTTL is how long a decoded collection may be served from cache.
// Readers tolerate data stale by up to this much; writers invalidate.
const readTTL = 60 * time.Second

// Store reads and writes the record collections of one data directory.
//
// Reads never fail: a missing or corrupt file degrades to an empty
// collection (first run and disk corruption both look like "no data").
// Writes acquire a per-file cross-process lock, replace the whole file
// atomically, and drop the entire read cache.
type Store struct {
	dir   string
	cache *memCache
	now   func() time.Time
	log   zerolog.Logger
}

// NewStore returns a store over the given data directory. The directory
// is created on first write; a directory with no files is an empty store.
func NewStore(dir string) *Store {
	s := &Store{dir: dir, now: time.Now, log: logging.New()}
	s.cache = newMemCache(readTTL, func() time.Time { return s.now() })
	return s
}

// Dir returns the data directory backing the store.
func (s *Store) Dir() string { return s.dir }

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

func (s *Store) today() date.Date { return date.At(s.now()) }

// record is any persisted entity addressable by id.
type record interface {
	recordID() string
	Validate() error
}

// readList loads a list collection, serving it from cache when fresh.
// Errors are absorbed: the caller always gets a usable (possibly empty)
// list, per the read-side contract.
func readList[T record](s *Store, name string) []T {
	if v, ok := s.cache.get(name); ok {
		return slices.Clone(v.([]T))
	}
	var records []T
	data, err := os.ReadFile(s.path(name))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// first run, nothing to report
	case err != nil:
		s.log.Warn().Err(err).Str("collection", name).Msg("collection unreadable, serving empty")
	default:
		if err := json.Unmarshal(data, &records); err != nil {
			s.log.Warn().Err(err).Str("collection", name).Msg("collection corrupt, serving empty")
			records = nil
		}
	}
	if records == nil {
		records = []T{}
	}
	s.cache.put(name, records)
	return slices.Clone(records)
}

// writeList persists a list collection as a whole.
func writeList[T record](s *Store, name string, records []T) error {
	if records == nil {
		records = []T{}
	}
	return s.writeFile(name, records)
}

// writeFile serializes v and replaces the collection file under an
// exclusive cross-process lock. The new content is written to a
// temporary file and renamed into place, so a concurrent reader either
// sees the old complete file or the new complete one, never a torn
// write. The cache is dropped only after the write durably succeeded.
func (s *Store) writeFile(name string, v any) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("could not create data directory %q: %w", s.dir, err)
	}
	target := s.path(name)

	lock := flock.New(target + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("could not lock collection %q: %w", name, err)
	}
	defer lock.Unlock()

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode collection %q: %w", name, err)
	}

	tmp, err := os.CreateTemp(s.dir, name+"-*.tmp")
	if err != nil {
		return fmt.Errorf("could not stage collection %q: %w", name, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("could not write collection %q: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("could not write collection %q: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("could not replace collection %q: %w", name, err)
	}

	s.cache.invalidateAll()
	return nil
}

// upsertRecord computes the next collection state with r inserted, or
// replacing the record sharing its id. The input list is not mutated.
func upsertRecord[T record](list []T, r T) []T {
	next := make([]T, 0, len(list)+1)
	replaced := false
	for _, it := range list {
		if it.recordID() == r.recordID() {
			next = append(next, r)
			replaced = true
			continue
		}
		next = append(next, it)
	}
	if !replaced {
		next = append(next, r)
	}
	return next
}

// removeRecord computes the next collection state without the record of
// the given id. The input list is not mutated.
func removeRecord[T record](list []T, id string) ([]T, bool) {
	next := make([]T, 0, len(list))
	found := false
	for _, it := range list {
		if it.recordID() == id {
			found = true
			continue
		}
		next = append(next, it)
	}
	return next, found
}

func upsert[T record](s *Store, name string, r T) (T, error) {
	if err := r.Validate(); err != nil {
		return r, err
	}
	return r, writeList(s, name, upsertRecord(readList[T](s, name), r))
}

func remove[T record](s *Store, name, id string) error {
	next, found := removeRecord(readList[T](s, name), id)
	if !found {
		return fmt.Errorf("no record %q in collection %q", id, name)
	}
	return writeList(s, name, next)
}

// Transactions returns the transaction collection.
func (s *Store) Transactions() []Transaction { return readList[Transaction](s, ColTransactions) }

// SaveTransactions replaces the transaction collection as a whole.
func (s *Store) SaveTransactions(list []Transaction) error {
	return writeList(s, ColTransactions, list)
}

// UpsertTransaction validates t and inserts it, or replaces the stored
// transaction with the same id. A missing id is generated.
func (s *Store) UpsertTransaction(t Transaction) (Transaction, error) {
	if t.ID == "" {
		t.ID = NewID()
	}
	return upsert(s, ColTransactions, t)
}

// DeleteTransaction removes the transaction with the given id.
func (s *Store) DeleteTransaction(id string) error {
	return remove[Transaction](s, ColTransactions, id)
}

// Recurring returns the recurring template collection.
func (s *Store) Recurring() []RecurringTemplate {
	return readList[RecurringTemplate](s, ColRecurring)
}

// UpsertRecurring validates t and inserts or replaces it by id.
func (s *Store) UpsertRecurring(t RecurringTemplate) (RecurringTemplate, error) {
	if t.ID == "" {
		t.ID = NewID()
	}
	return upsert(s, ColRecurring, t)
}

// DeleteRecurring removes the recurring template with the given id.
func (s *Store) DeleteRecurring(id string) error {
	return remove[RecurringTemplate](s, ColRecurring, id)
}

// Holdings returns the holding collection.
func (s *Store) Holdings() []Holding { return readList[Holding](s, ColHoldings) }

// UpsertHolding validates h and inserts or replaces it by id.
func (s *Store) UpsertHolding(h Holding) (Holding, error) {
	if h.ID == "" {
		h.ID = NewID()
	}
	return upsert(s, ColHoldings, h)
}

// DeleteHolding removes the holding with the given id.
func (s *Store) DeleteHolding(id string) error {
	return remove[Holding](s, ColHoldings, id)
}

// Goals returns the goal collection.
func (s *Store) Goals() []Goal { return readList[Goal](s, ColGoals) }

// UpsertGoal validates g and inserts or replaces it by id.
func (s *Store) UpsertGoal(g Goal) (Goal, error) {
	if g.ID == "" {
		g.ID = NewID()
	}
	return upsert(s, ColGoals, g)
}

// DeleteGoal removes the goal with the given id.
func (s *Store) DeleteGoal(id string) error {
	return remove[Goal](s, ColGoals, id)
}

// Config returns the configuration record. Like list reads it degrades
// to the zero value when the file is missing or corrupt.
func (s *Store) Config() Config {
	if v, ok := s.cache.get(ColConfig); ok {
		return v.(Config).clone()
	}
	var cfg Config
	data, err := os.ReadFile(s.path(ColConfig))
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		s.log.Warn().Err(err).Str("collection", ColConfig).Msg("collection unreadable, serving empty")
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			s.log.Warn().Err(err).Str("collection", ColConfig).Msg("collection corrupt, serving empty")
			cfg = Config{}
		}
	}
	s.cache.put(ColConfig, cfg.clone())
	return cfg
}

// SaveConfig validates and persists the configuration record.
func (s *Store) SaveConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	return s.writeFile(ColConfig, cfg)
}
