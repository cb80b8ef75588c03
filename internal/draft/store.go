// Package draft persists in-progress form values per application, with
// debounced autosave and hydrate-once merge semantics. Persistence here is
// best-effort only: storage failures never surface to the caller.
package draft

import (
	"encoding/json"
	"time"

	"sanad/internal/form"
	"sanad/internal/logging"
	"sanad/internal/storage"
)

// Prefix namespaces draft keys in the shared key-value store.
const Prefix = "draft:"

// SettleDuration is how long edits must stay quiet before a draft write.
const SettleDuration = 300 * time.Millisecond

// Key builds the storage key for an application id ("new" or an existing
// submission id).
func Key(appID string) string {
	return Prefix + appID
}

// Store autosaves form values under a draft key.
type Store struct {
	kv        storage.KV
	debouncer *Debouncer
	hydrated  map[string]bool
}

// NewStore builds a draft store over the given KV with the default settle
// duration.
func NewStore(kv storage.KV) *Store {
	return NewStoreWithSettle(kv, SettleDuration)
}

// NewStoreWithSettle allows tests to shrink the debounce window.
func NewStoreWithSettle(kv storage.KV, settle time.Duration) *Store {
	return &Store{
		kv:        kv,
		debouncer: NewDebouncer(settle),
		hydrated:  make(map[string]bool),
	}
}

// Hydrate merges any persisted draft for key over the given initial values
// (draft wins) and returns the result. The merge applies only once per key;
// later calls return initial unchanged so a live form is never clobbered.
// Read failures degrade to the initial values.
func (s *Store) Hydrate(key string, initial form.SubmissionForm) form.SubmissionForm {
	if s.hydrated[key] {
		return initial
	}
	s.hydrated[key] = true

	raw, ok, err := s.kv.Get(key)
	if err != nil {
		logging.Get(logging.CategoryDraft).Warn("Draft read failed for %s: %v", key, err)
		return initial
	}
	if !ok {
		return initial
	}

	var draft form.SubmissionForm
	if err := json.Unmarshal([]byte(raw), &draft); err != nil {
		logging.Get(logging.CategoryDraft).Warn("Draft blob corrupt for %s: %v", key, err)
		return initial
	}

	merged := initial
	merged.Merge(&draft)
	logging.DraftDebug("Hydrated draft for %s", key)
	return merged
}

// Persist schedules a debounced write of the complete current value set.
// Rapid successive calls collapse into one write of the final state.
func (s *Store) Persist(key string, values form.SubmissionForm) {
	s.debouncer.Debounce(func() {
		data, err := json.Marshal(values)
		if err != nil {
			logging.Get(logging.CategoryDraft).Warn("Draft marshal failed for %s: %v", key, err)
			return
		}
		if err := s.kv.Set(key, string(data)); err != nil {
			logging.Get(logging.CategoryDraft).Warn("Draft write failed for %s: %v", key, err)
		}
	})
}

// Flush forces any pending write through immediately.
func (s *Store) Flush() {
	s.debouncer.Flush()
}

// Clear cancels any pending write and removes the persisted draft.
// Idempotent; failures are swallowed.
func (s *Store) Clear(key string) {
	s.debouncer.Cancel()
	if err := s.kv.Delete(key); err != nil {
		logging.Get(logging.CategoryDraft).Warn("Draft delete failed for %s: %v", key, err)
	}
	logging.Draft("Cleared draft %s", key)
}
