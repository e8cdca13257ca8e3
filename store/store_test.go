// ABOUTME: Tests for store loading, persistence, and lifecycle operations
// ABOUTME: Uses in-memory badger and a fixed clock
package store

import (
	"testing"
	"time"

	"github.com/dgraph-io/badger/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/leadgen/models"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestKV(t *testing.T) *badger.DB {
	t.Helper()
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil
	kv, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })
	return kv
}

func newTestStore(t *testing.T, user string) *Store {
	t.Helper()
	return New(newTestKV(t), user, WithClock(func() time.Time { return testNow }))
}

func mustCreate(t *testing.T, s *Store, name, email string) *models.Lead {
	t.Helper()
	lead, err := s.CreateLead(LeadFields{
		Name:   name,
		Email:  email,
		Source: models.SourceWebsite,
		Status: models.StatusNew,
	})
	require.NoError(t, err)
	return lead
}

func TestCreateLead(t *testing.T) {
	s := newTestStore(t, "guest")

	lead := mustCreate(t, s, "Jane Doe", "jane@example.com")

	assert.NotEmpty(t, lead.ID)
	assert.Equal(t, testNow, lead.CreatedAt)
	assert.Equal(t, testNow, lead.UpdatedAt)
	assert.Empty(t, lead.Notes)
	assert.Empty(t, lead.Tasks)

	require.Len(t, lead.Activities, 1)
	assert.Equal(t, models.ActivityLeadCreated, lead.Activities[0].Type)
	assert.Equal(t, "Lead added to system", lead.Activities[0].Description)
}

func TestCreateLeadPrepends(t *testing.T) {
	s := newTestStore(t, "guest")

	mustCreate(t, s, "First", "first@example.com")
	mustCreate(t, s, "Second", "second@example.com")

	leads, err := s.Leads()
	require.NoError(t, err)
	require.Len(t, leads, 2)
	assert.Equal(t, "Second", leads[0].Name)
	assert.Equal(t, "First", leads[1].Name)
}

func TestUpdateLeadIsSilent(t *testing.T) {
	current := testNow
	s := New(newTestKV(t), "guest", WithClock(func() time.Time { return current }))

	lead, err := s.CreateLead(LeadFields{
		Name:   "Jane Doe",
		Email:  "jane@example.com",
		Source: models.SourceWebsite,
		Status: models.StatusNew,
	})
	require.NoError(t, err)

	current = current.Add(time.Hour)
	updated, err := s.UpdateLead(lead.ID, LeadFields{
		Name:    "Jane Smith",
		Email:   "jane@example.com",
		Company: "Acme",
		Source:  models.SourceReferral,
		Status:  models.StatusContacted,
	})
	require.NoError(t, err)

	assert.Equal(t, "Jane Smith", updated.Name)
	assert.Equal(t, models.StatusContacted, updated.Status)
	assert.Equal(t, current, updated.UpdatedAt)
	assert.Equal(t, testNow, updated.CreatedAt)

	// Editing status through update logs nothing
	assert.Len(t, updated.Activities, 1)
}

func TestUpdateLeadNotFound(t *testing.T) {
	s := newTestStore(t, "guest")

	_, err := s.UpdateLead("missing", LeadFields{Name: "x", Email: "x@example.com"})
	assert.ErrorIs(t, err, ErrLeadNotFound)
}

func TestDeleteLead(t *testing.T) {
	s := newTestStore(t, "guest")

	lead := mustCreate(t, s, "Jane Doe", "jane@example.com")
	require.NoError(t, s.DeleteLead(lead.ID))

	leads, err := s.Leads()
	require.NoError(t, err)
	assert.Empty(t, leads)

	assert.ErrorIs(t, s.DeleteLead(lead.ID), ErrLeadNotFound)
}

func TestChangeStatusAppendsActivity(t *testing.T) {
	s := newTestStore(t, "guest")

	lead := mustCreate(t, s, "Jane Doe", "jane@example.com")

	changed, err := s.ChangeStatus(lead.ID, models.StatusContacted)
	require.NoError(t, err)
	assert.Equal(t, models.StatusContacted, changed.Status)
	require.Len(t, changed.Activities, 2)
	assert.Equal(t, models.ActivityStatusChange, changed.Activities[1].Type)
	assert.Equal(t, "Status changed to contacted", changed.Activities[1].Description)
}

func TestChangeStatusSameStatusStillLogs(t *testing.T) {
	s := newTestStore(t, "guest")

	lead := mustCreate(t, s, "Jane Doe", "jane@example.com")

	changed, err := s.ChangeStatus(lead.ID, models.StatusNew)
	require.NoError(t, err)
	assert.Len(t, changed.Activities, 2)
}

func TestBulkChangeStatusSkipsMissing(t *testing.T) {
	s := newTestStore(t, "guest")

	a := mustCreate(t, s, "A", "a@example.com")
	b := mustCreate(t, s, "B", "b@example.com")

	changed, err := s.BulkChangeStatus([]string{a.ID, b.ID, "missing"}, models.StatusLost)
	require.NoError(t, err)
	assert.Equal(t, 2, changed)

	leads, err := s.Leads()
	require.NoError(t, err)
	for _, lead := range leads {
		assert.Equal(t, models.StatusLost, lead.Status)
		assert.Len(t, lead.Activities, 2)
	}
}

func TestBulkDelete(t *testing.T) {
	s := newTestStore(t, "guest")

	a := mustCreate(t, s, "A", "a@example.com")
	mustCreate(t, s, "B", "b@example.com")
	c := mustCreate(t, s, "C", "c@example.com")

	removed, err := s.BulkDelete([]string{a.ID, c.ID, "missing"})
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	leads, err := s.Leads()
	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.Equal(t, "B", leads[0].Name)
}

func TestPersistenceRoundTrip(t *testing.T) {
	kv := newTestKV(t)
	clock := func() time.Time { return testNow }

	s1 := New(kv, "alice", WithClock(clock))
	lead, err := s1.CreateLead(LeadFields{
		Name:   "Jane Doe",
		Email:  "jane@example.com",
		Source: models.SourceReferral,
		Status: models.StatusContacted,
	})
	require.NoError(t, err)
	_, err = s1.AddNote(lead.ID, "called her")
	require.NoError(t, err)

	// Fresh store over the same KV sees the persisted blob
	s2 := New(kv, "alice", WithClock(clock))
	got, err := s2.Get(lead.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", got.Name)
	assert.Equal(t, models.StatusContacted, got.Status)
	require.Len(t, got.Notes, 1)
	assert.Equal(t, "called her", got.Notes[0].Content)
	assert.True(t, got.Notes[0].CreatedAt.Equal(testNow))
}

func TestUsersAreIsolated(t *testing.T) {
	kv := newTestKV(t)
	clock := func() time.Time { return testNow }

	alice := New(kv, "alice", WithClock(clock))
	mustCreate(t, alice, "Jane Doe", "jane@example.com")

	bob := New(kv, "bob", WithClock(clock))
	leads, err := bob.Leads()
	require.NoError(t, err)
	assert.Empty(t, leads)
}

func TestEmptyUserFallsBackToGuest(t *testing.T) {
	s := New(newTestKV(t), "")
	assert.Equal(t, "leads_guest", s.UserKey())
}

func TestCorruptBlobYieldsEmptyList(t *testing.T) {
	kv := newTestKV(t)
	err := kv.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte("leads_guest"), []byte("{not json"))
	})
	require.NoError(t, err)

	s := New(kv, "guest", WithClock(func() time.Time { return testNow }))
	leads, err := s.Leads()
	require.NoError(t, err)
	assert.Empty(t, leads)
}

func TestDemoUserSeededOnce(t *testing.T) {
	kv := newTestKV(t)
	clock := func() time.Time { return testNow }

	s1 := New(kv, DemoUser, WithClock(clock))
	leads, err := s1.Leads()
	require.NoError(t, err)
	require.Len(t, leads, 6)

	// Seed is written through, so a second store reads the same ids
	// instead of generating a new dataset.
	s2 := New(kv, DemoUser, WithClock(clock))
	leads2, err := s2.Leads()
	require.NoError(t, err)
	require.Len(t, leads2, 6)
	assert.Equal(t, leads[0].ID, leads2[0].ID)
}

func TestDemoSeedSurvivesClearing(t *testing.T) {
	kv := newTestKV(t)
	clock := func() time.Time { return testNow }

	s1 := New(kv, DemoUser, WithClock(clock))
	leads, err := s1.Leads()
	require.NoError(t, err)

	ids := make([]string, 0, len(leads))
	for _, lead := range leads {
		ids = append(ids, lead.ID)
	}
	removed, err := s1.BulkDelete(ids)
	require.NoError(t, err)
	assert.Equal(t, 6, removed)

	// The empty blob persists; the demo data is not re-seeded.
	s2 := New(kv, DemoUser, WithClock(clock))
	leads2, err := s2.Leads()
	require.NoError(t, err)
	assert.Empty(t, leads2)
}
