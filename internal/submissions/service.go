package submissions

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"sanad/internal/form"
	"sanad/internal/storage"
)

// ErrAmbiguousID means an id tail matched more than one submission.
var ErrAmbiguousID = errors.New("id tail matches more than one submission")

// StorageKey is the fixed key holding the JSON array of all submissions.
const StorageKey = "submissions"

// Service implements the submission list over the key-value store. The whole
// list lives as one JSON array under StorageKey, read-then-write per
// operation; last writer wins.
type Service struct {
	kv           storage.KV
	interceptors []Interceptor

	now   func() time.Time
	newID func(t time.Time) string
}

// NewService builds a service over kv with the given interceptors.
func NewService(kv storage.KV, interceptors ...Interceptor) *Service {
	return &Service{
		kv:           kv,
		interceptors: interceptors,
		now:          time.Now,
		newID: func(t time.Time) string {
			return strconv.FormatInt(t.UnixMilli(), 10)
		},
	}
}

func (s *Service) exec(op Operation, payload any, action func() (any, error)) (any, error) {
	ctx := RequestContext{Operation: op, RequestID: newRequestID(), Payload: payload}
	for _, ic := range s.interceptors {
		if ic.OnRequest != nil {
			ic.OnRequest(ctx)
		}
	}
	result, err := action()
	if err != nil {
		for _, ic := range s.interceptors {
			if ic.OnError != nil {
				ic.OnError(ctx, err)
			}
		}
		return nil, err
	}
	for _, ic := range s.interceptors {
		if ic.OnResponse != nil {
			ic.OnResponse(ctx, result)
		}
	}
	return result, nil
}

// read loads the full list. A missing or corrupt blob reads as empty.
func (s *Service) read() []Submission {
	raw, ok, err := s.kv.Get(StorageKey)
	if err != nil || !ok {
		return nil
	}
	var list []Submission
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil
	}
	return list
}

func (s *Service) write(list []Submission) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("failed to marshal submissions: %w", err)
	}
	return s.kv.Set(StorageKey, string(data))
}

// List returns all submissions in insertion order.
func (s *Service) List() ([]Submission, error) {
	result, err := s.exec(OpList, nil, func() (any, error) {
		return s.read(), nil
	})
	if err != nil {
		return nil, err
	}
	list, _ := result.([]Submission)
	return list, nil
}

// Get returns the submission with the given id, or nil when absent.
func (s *Service) Get(id string) (*Submission, error) {
	result, err := s.exec(OpGet, id, func() (any, error) {
		for _, sub := range s.read() {
			if sub.ID == id {
				found := sub
				return &found, nil
			}
		}
		return (*Submission)(nil), nil
	})
	if err != nil {
		return nil, err
	}
	sub, _ := result.(*Submission)
	return sub, nil
}

// Resolve finds a submission by full id or by the id tail the list view
// prints, with or without the leading '#'. Returns nil when nothing matches
// and ErrAmbiguousID when a tail matches more than one record.
func (s *Service) Resolve(ref string) (*Submission, error) {
	ref = strings.TrimPrefix(ref, "#")
	sub, err := s.Get(ref)
	if err != nil || sub != nil {
		return sub, err
	}
	if ref == "" {
		return nil, nil
	}

	list, err := s.List()
	if err != nil {
		return nil, err
	}
	var found *Submission
	for i := range list {
		if strings.HasSuffix(list[i].ID, ref) {
			if found != nil {
				return nil, ErrAmbiguousID
			}
			match := list[i]
			found = &match
		}
	}
	return found, nil
}

// Create appends a new submission. The id derives from the creation
// timestamp, with a suffix when two creations land on the same millisecond.
func (s *Service) Create(payload form.SubmissionForm) (*Submission, error) {
	result, err := s.exec(OpCreate, payload, func() (any, error) {
		list := s.read()
		now := s.now().UTC()
		iso := now.Format(time.RFC3339)

		id := s.newID(now)
		for n := 1; containsID(list, id); n++ {
			id = fmt.Sprintf("%s-%d", s.newID(now), n)
		}

		sub := Submission{
			ID:             id,
			SubmissionForm: payload,
			SubmittedAt:    iso,
			UpdatedAt:      iso,
		}
		list = append(list, sub)
		if err := s.write(list); err != nil {
			return nil, err
		}
		return &sub, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*Submission), nil
}

// Update replaces the form values of an existing submission in place,
// preserving id and submittedAt and refreshing updatedAt. Returns nil when
// the id does not exist.
func (s *Service) Update(id string, payload form.SubmissionForm) (*Submission, error) {
	result, err := s.exec(OpUpdate, id, func() (any, error) {
		list := s.read()
		for i := range list {
			if list[i].ID != id {
				continue
			}
			list[i].SubmissionForm = payload
			list[i].UpdatedAt = s.now().UTC().Format(time.RFC3339)
			if err := s.write(list); err != nil {
				return nil, err
			}
			updated := list[i]
			return &updated, nil
		}
		return (*Submission)(nil), nil
	})
	if err != nil {
		return nil, err
	}
	sub, _ := result.(*Submission)
	return sub, nil
}

// Remove deletes the submission with the given id. Removing a missing id is
// a no-op.
func (s *Service) Remove(id string) error {
	_, err := s.exec(OpRemove, id, func() (any, error) {
		list := s.read()
		kept := list[:0]
		for _, sub := range list {
			if sub.ID != id {
				kept = append(kept, sub)
			}
		}
		return nil, s.write(kept)
	})
	return err
}

func containsID(list []Submission, id string) bool {
	for _, sub := range list {
		if sub.ID == id {
			return true
		}
	}
	return false
}
