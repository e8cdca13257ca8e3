// ABOUTME: Lead store backed by BadgerDB key-value persistence
// ABOUTME: Handles opening the database and loading/saving the per-user lead blob
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/dgraph-io/badger/v3"

	"github.com/harperreed/leadgen/models"
)

var (
	ErrLeadNotFound = errors.New("lead not found")
	ErrTaskNotFound = errors.New("task not found")
)

const (
	// keyPrefix namespaces the per-user lead blobs inside the KV store.
	keyPrefix = "leads_"

	// DemoUser is seeded with the example dataset on first load.
	// Every other user starts empty.
	DemoUser = "demo"

	// GuestUser is the fallback when no user is configured.
	GuestUser = "guest"
)

// OpenDatabase opens the BadgerDB store at the given directory,
// creating it if needed.
func OpenDatabase(path string) (*badger.DB, error) {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, err
	}

	opts := badger.DefaultOptions(path)
	opts.Logger = nil
	return badger.Open(opts)
}

// Store holds the authoritative in-memory lead list for one user and
// keeps it synchronized with the KV blob. All mutation goes through the
// lifecycle operations; reads recompute derived data on demand.
type Store struct {
	kv   *badger.DB
	user string
	now  func() time.Time

	leads  []models.Lead
	loaded bool
}

// Option configures a Store.
type Option func(*Store)

// WithClock injects the time source used for timestamps. Defaults to
// time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New creates a store for the given user. An empty user falls back to
// the guest account.
func New(kv *badger.DB, userID string, opts ...Option) *Store {
	if userID == "" {
		userID = GuestUser
	}
	s := &Store{
		kv:   kv,
		user: userID,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Now returns the store's current time.
func (s *Store) Now() time.Time {
	return s.now()
}

// UserKey returns the KV key holding this user's leads.
func (s *Store) UserKey() string {
	return keyPrefix + s.user
}

// Leads returns a copy of the current lead list, loading it from the
// KV store on first access.
func (s *Store) Leads() ([]models.Lead, error) {
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	out := make([]models.Lead, len(s.leads))
	copy(out, s.leads)
	return out, nil
}

// Get returns the lead with the given id.
func (s *Store) Get(id string) (*models.Lead, error) {
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	i := s.indexOf(id)
	if i < 0 {
		return nil, ErrLeadNotFound
	}
	lead := s.leads[i]
	return &lead, nil
}

func (s *Store) ensureLoaded() error {
	if s.loaded {
		return nil
	}

	leads, found, err := s.read()
	if err != nil {
		return err
	}

	if !found && s.user == DemoUser {
		leads = demoLeads(s.now())
		if err := s.write(leads); err != nil {
			return err
		}
	}

	s.leads = leads
	s.loaded = true
	return nil
}

// read fetches and decodes the user's blob. A missing key or a corrupt
// blob yields an empty list, never an error; only KV-level failures
// propagate. Timestamps revive from their RFC 3339 string form during
// decoding, nested note/task/activity timestamps included.
func (s *Store) read() ([]models.Lead, bool, error) {
	var raw []byte
	err := s.kv.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(s.UserKey()))
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return []models.Lead{}, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read leads: %w", err)
	}

	var leads []models.Lead
	if err := json.Unmarshal(raw, &leads); err != nil {
		return []models.Lead{}, true, nil
	}

	for i := range leads {
		normalize(&leads[i])
	}
	return leads, true, nil
}

// write serializes the full lead list and replaces the user's blob.
func (s *Store) write(leads []models.Lead) error {
	raw, err := json.Marshal(leads)
	if err != nil {
		return fmt.Errorf("failed to serialize leads: %w", err)
	}

	err = s.kv.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(s.UserKey()), raw)
	})
	if err != nil {
		return fmt.Errorf("failed to persist leads: %w", err)
	}
	return nil
}

// save writes through the current in-memory list. On failure the
// in-memory mutation stands; the caller is expected to warn that a
// reload will lose it.
func (s *Store) save() error {
	return s.write(s.leads)
}

func (s *Store) indexOf(id string) int {
	for i := range s.leads {
		if s.leads[i].ID == id {
			return i
		}
	}
	return -1
}

// normalize ensures the nested collections are non-nil so older or
// hand-edited blobs round-trip as empty arrays.
func normalize(lead *models.Lead) {
	if lead.Notes == nil {
		lead.Notes = []models.LeadNote{}
	}
	if lead.Tasks == nil {
		lead.Tasks = []models.LeadTask{}
	}
	if lead.Activities == nil {
		lead.Activities = []models.LeadActivity{}
	}
}
