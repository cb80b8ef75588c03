package draft

import (
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/goleak"

	"sanad/internal/form"
	"sanad/internal/storage"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// countingKV wraps a memory store and counts writes.
type countingKV struct {
	mu     sync.Mutex
	inner  storage.KV
	sets   int
	failAll bool
}

func (c *countingKV) Get(key string) (string, bool, error) {
	if c.failAll {
		return "", false, errors.New("kv down")
	}
	return c.inner.Get(key)
}

func (c *countingKV) Set(key, value string) error {
	c.mu.Lock()
	c.sets++
	c.mu.Unlock()
	if c.failAll {
		return errors.New("kv down")
	}
	return c.inner.Set(key, value)
}

func (c *countingKV) Delete(key string) error {
	if c.failAll {
		return errors.New("kv down")
	}
	return c.inner.Delete(key)
}

func (c *countingKV) setCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sets
}

func TestPersistDebouncesRapidEdits(t *testing.T) {
	kv := &countingKV{inner: storage.NewMemoryStore()}
	s := NewStoreWithSettle(kv, 20*time.Millisecond)

	var values form.SubmissionForm
	for i := 0; i < 10; i++ {
		values.Name = values.Name + "a"
		s.Persist(Key("new"), values)
	}

	time.Sleep(60 * time.Millisecond)

	if got := kv.setCount(); got != 1 {
		t.Fatalf("10 rapid edits produced %d writes, want 1", got)
	}

	raw, ok, _ := kv.Get(Key("new"))
	if !ok {
		t.Fatal("draft not written")
	}
	var saved form.SubmissionForm
	if err := json.Unmarshal([]byte(raw), &saved); err != nil {
		t.Fatal(err)
	}
	if saved.Name != "aaaaaaaaaa" {
		t.Errorf("saved final state %q, want the last edit", saved.Name)
	}
}

func TestFlushWritesImmediately(t *testing.T) {
	kv := &countingKV{inner: storage.NewMemoryStore()}
	s := NewStoreWithSettle(kv, time.Hour)

	s.Persist(Key("new"), form.SubmissionForm{Name: "Omar"})
	s.Flush()

	if _, ok, _ := kv.Get(Key("new")); !ok {
		t.Fatal("flush did not write the pending draft")
	}
}

func TestHydrateMergesDraftOverInitial(t *testing.T) {
	kv := storage.NewMemoryStore()
	draft := form.SubmissionForm{Name: "Draft Name", City: "Abu Dhabi"}
	data, _ := json.Marshal(draft)
	if err := kv.Set(Key("new"), string(data)); err != nil {
		t.Fatal(err)
	}

	s := NewStore(kv)
	initial := form.SubmissionForm{Name: "Initial", Email: "i@example.com"}
	got := s.Hydrate(Key("new"), initial)

	if got.Name != "Draft Name" {
		t.Errorf("draft should win over initial, got name %q", got.Name)
	}
	if got.City != "Abu Dhabi" {
		t.Errorf("draft-only field lost: %q", got.City)
	}
	if got.Email != "i@example.com" {
		t.Errorf("initial-only field lost: %q", got.Email)
	}
}

func TestHydrateRunsOncePerKey(t *testing.T) {
	kv := storage.NewMemoryStore()
	data, _ := json.Marshal(form.SubmissionForm{Name: "Draft"})
	if err := kv.Set(Key("new"), string(data)); err != nil {
		t.Fatal(err)
	}

	s := NewStore(kv)
	first := s.Hydrate(Key("new"), form.SubmissionForm{})
	if first.Name != "Draft" {
		t.Fatalf("first hydrate missed draft: %q", first.Name)
	}

	// A later hydrate must not clobber live values with the stored draft.
	live := form.SubmissionForm{Name: "Edited Since"}
	second := s.Hydrate(Key("new"), live)
	if second.Name != "Edited Since" {
		t.Errorf("second hydrate overwrote live values: %q", second.Name)
	}
}

func TestHydrateDegradesOnCorruptDraft(t *testing.T) {
	kv := storage.NewMemoryStore()
	if err := kv.Set(Key("new"), "{not json"); err != nil {
		t.Fatal(err)
	}

	s := NewStore(kv)
	initial := form.SubmissionForm{Name: "Initial"}
	if got := s.Hydrate(Key("new"), initial); got != initial {
		t.Errorf("corrupt draft should leave initial untouched, got %+v", got)
	}
}

func TestHydrateDegradesOnReadFailure(t *testing.T) {
	kv := &countingKV{inner: storage.NewMemoryStore(), failAll: true}
	s := NewStore(kv)

	initial := form.SubmissionForm{Name: "Initial"}
	if got := s.Hydrate(Key("new"), initial); got != initial {
		t.Errorf("failing store should degrade to initial, got %+v", got)
	}
}

func TestPersistSwallowsWriteFailure(t *testing.T) {
	kv := &countingKV{inner: storage.NewMemoryStore(), failAll: true}
	s := NewStoreWithSettle(kv, 5*time.Millisecond)

	// Must not panic or surface the error.
	s.Persist(Key("new"), form.SubmissionForm{Name: "x"})
	time.Sleep(30 * time.Millisecond)
}

func TestClearIsIdempotent(t *testing.T) {
	kv := storage.NewMemoryStore()
	if err := kv.Set(Key("new"), "{}"); err != nil {
		t.Fatal(err)
	}

	s := NewStore(kv)
	s.Clear(Key("new"))
	if _, ok, _ := kv.Get(Key("new")); ok {
		t.Error("draft survived clear")
	}
	s.Clear(Key("new")) // second clear is a no-op
}

func TestClearCancelsPendingWrite(t *testing.T) {
	kv := &countingKV{inner: storage.NewMemoryStore()}
	s := NewStoreWithSettle(kv, 20*time.Millisecond)

	s.Persist(Key("new"), form.SubmissionForm{Name: "x"})
	s.Clear(Key("new"))

	time.Sleep(50 * time.Millisecond)
	if _, ok, _ := kv.Get(Key("new")); ok {
		t.Error("pending write landed after clear")
	}
}

func TestDebouncerCancel(t *testing.T) {
	d := NewDebouncer(10 * time.Millisecond)
	ran := make(chan struct{}, 1)
	d.Debounce(func() { ran <- struct{}{} })
	d.Cancel()

	select {
	case <-ran:
		t.Error("cancelled function still ran")
	case <-time.After(40 * time.Millisecond):
	}
}

func TestDebouncerLatestWins(t *testing.T) {
	d := NewDebouncer(15 * time.Millisecond)
	got := make(chan int, 2)
	d.Debounce(func() { got <- 1 })
	d.Debounce(func() { got <- 2 })

	select {
	case v := <-got:
		if v != 2 {
			t.Errorf("ran call %d, want the latest", v)
		}
	case <-time.After(100 * time.Millisecond):
		t.Fatal("debounced call never ran")
	}

	select {
	case v := <-got:
		t.Errorf("extra call %d ran", v)
	case <-time.After(40 * time.Millisecond):
	}
}
