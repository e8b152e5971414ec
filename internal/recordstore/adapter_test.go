package recordstore

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/amarupazila/app-local-info/internal/constants"
	"github.com/amarupazila/app-local-info/internal/models"
)

// fakeStore is an in-memory Store with injectable failures.
type fakeStore struct {
	mu      sync.Mutex
	records map[string][]models.Record
	failure error
	adds    int
	updates int
	deletes int
}

func newFakeStore() *fakeStore {
	return &fakeStore{records: make(map[string][]models.Record)}
}

func (f *fakeStore) setRecords(collection string, records ...models.Record) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records[collection] = records
}

func (f *fakeStore) fail(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failure = err
}

func (f *fakeStore) Snapshot(_ context.Context, collection string) ([]models.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failure != nil {
		return nil, f.failure
	}
	out := make([]models.Record, len(f.records[collection]))
	copy(out, f.records[collection])
	return out, nil
}

func (f *fakeStore) Get(_ context.Context, collection, id string) (models.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, rec := range f.records[collection] {
		if rec.RecordID() == id {
			return rec, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeStore) Add(_ context.Context, collection string, rec models.Record) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.adds++
	if f.failure != nil {
		return "", f.failure
	}
	f.records[collection] = append(f.records[collection], rec)
	return rec.RecordID(), nil
}

func (f *fakeStore) Update(_ context.Context, _, _ string, _ map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates++
	return f.failure
}

func (f *fakeStore) Delete(_ context.Context, _, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes++
	return f.failure
}

// spyReporter counts error reports.
type spyReporter struct {
	mu      sync.Mutex
	reports []string
}

func (s *spyReporter) Report(context string, _ error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports = append(s.reports, context)
}

func (s *spyReporter) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.reports)
}

func seedRecord(id string) models.Record {
	return &models.HealthRecord{
		RecordBase: models.RecordBase{
			ID:       id,
			Category: constants.CategoryHealth,
			District: "Netrokona",
			Upazila:  "Kendua",
		},
		Name: "Upazila Health Complex",
	}
}

func waitForState(t *testing.T, sub *Subscription) State {
	t.Helper()
	select {
	case state, ok := <-sub.Updates():
		if !ok {
			t.Fatal("update stream closed unexpectedly")
		}
		return state
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for subscription notification")
		return State{}
	}
}

func TestSubscribeEmptyRemoteFallsBackToSeed(t *testing.T) {
	store := newFakeStore()
	adapter := NewAdapter(store, nil, zerolog.Nop(), WithPollInterval(time.Hour))
	defer adapter.Close()

	sub, err := adapter.Subscribe(context.Background(), "localInfoItems", []models.Record{seedRecord("seed-a")})
	if err != nil {
		t.Fatalf("Subscribe: %v", err)
	}
	defer sub.Unsubscribe()

	state := waitForState(t, sub)
	if state.Loading {
		t.Error("loading still true after first notification")
	}
	if len(state.Records) != 1 || state.Records[0].RecordID() != "seed-a" {
		t.Fatalf("records = %+v, want the seed record", state.Records)
	}
}

func TestSubscribeRemoteRecordsWinOverSeed(t *testing.T) {
	store := newFakeStore()
	store.setRecords("localInfoItems", seedRecord("remote-1"), seedRecord("remote-2"))
	adapter := NewAdapter(store, nil, zerolog.Nop(), WithPollInterval(time.Hour))
	defer adapter.Close()

	sub, err := adapter.Subscribe(context.Background(), "localInfoItems", []models.Record{seedRecord("seed-a")})
	if err != nil {
		t.Fatalf("Subscribe: %v", err)
	}
	defer sub.Unsubscribe()

	state := waitForState(t, sub)
	if len(state.Records) != 2 {
		t.Fatalf("records = %d, want 2 remote records", len(state.Records))
	}
	for _, rec := range state.Records {
		if rec.RecordID() == "seed-a" {
			t.Error("seed record leaked into a non-empty remote snapshot")
		}
	}
}

func TestSubscribeErrorFreezesAndReportsOnce(t *testing.T) {
	store := newFakeStore()
	store.fail(errors.New("permission denied"))
	reporter := &spyReporter{}
	adapter := NewAdapter(store, reporter, zerolog.Nop(), WithPollInterval(10*time.Millisecond))
	defer adapter.Close()

	sub, err := adapter.Subscribe(context.Background(), "localInfoItems", nil)
	if err != nil {
		t.Fatalf("Subscribe: %v", err)
	}
	defer sub.Unsubscribe()

	state := waitForState(t, sub)
	if state.Loading {
		t.Error("loading still true after subscription error")
	}
	if len(state.Records) != 0 {
		t.Errorf("records = %+v, want empty", state.Records)
	}

	// Even with a short poll interval there is no automatic retry, so the
	// report count stays at one.
	time.Sleep(100 * time.Millisecond)
	if got := reporter.count(); got != 1 {
		t.Errorf("error reported %d times, want exactly 1", got)
	}
}

func TestSubscriptionPicksUpRemoteChanges(t *testing.T) {
	store := newFakeStore()
	store.setRecords("localInfoItems", seedRecord("r1"))
	adapter := NewAdapter(store, nil, zerolog.Nop(), WithPollInterval(20*time.Millisecond))
	defer adapter.Close()

	sub, err := adapter.Subscribe(context.Background(), "localInfoItems", nil)
	if err != nil {
		t.Fatalf("Subscribe: %v", err)
	}
	defer sub.Unsubscribe()

	first := waitForState(t, sub)
	if len(first.Records) != 1 {
		t.Fatalf("first notification: %d records", len(first.Records))
	}

	store.setRecords("localInfoItems", seedRecord("r1"), seedRecord("r2"))

	deadline := time.After(2 * time.Second)
	for {
		select {
		case state := <-sub.Updates():
			if len(state.Records) == 2 {
				return
			}
		case <-deadline:
			t.Fatal("never observed the updated snapshot")
		}
	}
}

func TestRefetchReplacesSnapshot(t *testing.T) {
	store := newFakeStore()
	store.setRecords("localInfoItems", seedRecord("r1"))
	adapter := NewAdapter(store, nil, zerolog.Nop(), WithPollInterval(time.Hour))
	defer adapter.Close()

	sub, err := adapter.Subscribe(context.Background(), "localInfoItems", nil)
	if err != nil {
		t.Fatalf("Subscribe: %v", err)
	}
	defer sub.Unsubscribe()
	waitForState(t, sub)

	store.setRecords("localInfoItems", seedRecord("r1"), seedRecord("r2"), seedRecord("r3"))
	if err := sub.Refetch(context.Background()); err != nil {
		t.Fatalf("Refetch: %v", err)
	}

	state := waitForState(t, sub)
	if len(state.Records) != 3 {
		t.Errorf("records after refetch = %d, want 3", len(state.Records))
	}
	if current := sub.State(); len(current.Records) != 3 {
		t.Errorf("State() after refetch = %d records, want 3", len(current.Records))
	}
}

func TestRefetchErrorKeepsState(t *testing.T) {
	store := newFakeStore()
	store.setRecords("localInfoItems", seedRecord("r1"))
	adapter := NewAdapter(store, nil, zerolog.Nop(), WithPollInterval(time.Hour))
	defer adapter.Close()

	sub, err := adapter.Subscribe(context.Background(), "localInfoItems", nil)
	if err != nil {
		t.Fatalf("Subscribe: %v", err)
	}
	defer sub.Unsubscribe()
	waitForState(t, sub)

	store.fail(errors.New("network down"))
	if err := sub.Refetch(context.Background()); err == nil {
		t.Fatal("Refetch swallowed the fetch error")
	}
	if state := sub.State(); len(state.Records) != 1 {
		t.Errorf("state changed on failed refetch: %d records", len(state.Records))
	}
}

func TestUnsubscribeClosesStream(t *testing.T) {
	store := newFakeStore()
	adapter := NewAdapter(store, nil, zerolog.Nop(), WithPollInterval(time.Hour))
	defer adapter.Close()

	sub, err := adapter.Subscribe(context.Background(), "localInfoItems", nil)
	if err != nil {
		t.Fatalf("Subscribe: %v", err)
	}
	waitForState(t, sub)

	sub.Unsubscribe()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-sub.Updates():
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("update stream not closed after Unsubscribe")
		}
	}
}

func TestWritesAreSingleAttempt(t *testing.T) {
	store := newFakeStore()
	store.fail(errors.New("write refused"))
	adapter := NewAdapter(store, nil, zerolog.Nop())
	defer adapter.Close()

	ctx := context.Background()
	if _, err := adapter.Create(ctx, "localInfoItems", seedRecord("n1")); err == nil {
		t.Error("Create swallowed the failure")
	}
	if err := adapter.Update(ctx, "localInfoItems", "n1", map[string]interface{}{"phone": "x"}); err == nil {
		t.Error("Update swallowed the failure")
	}
	if err := adapter.Delete(ctx, "localInfoItems", "n1"); err == nil {
		t.Error("Delete swallowed the failure")
	}

	if store.adds != 1 || store.updates != 1 || store.deletes != 1 {
		t.Errorf("attempts = %d/%d/%d, want exactly one each", store.adds, store.updates, store.deletes)
	}
}
