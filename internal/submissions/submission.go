// Package submissions owns the persisted submission list: the record model,
// CRUD service, and row projection for list rendering.
package submissions

import (
	"regexp"
	"strings"
	"time"

	"sanad/internal/form"
)

// Submission is a submitted application. ID and SubmittedAt are assigned at
// creation and immutable afterwards; UpdatedAt moves on every edit.
type Submission struct {
	ID string `json:"id"`
	form.SubmissionForm
	SubmittedAt string `json:"submittedAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// Row is the list-view projection of a submission.
type Row struct {
	ID             string
	IDTail         string
	Name           string
	NationalID     string
	Email          string
	ReasonShort    string
	SubmittedAtFmt string
}

// ToRow projects a submission for list display: short id tail, truncated
// reason excerpt, formatted timestamp.
func ToRow(s Submission) Row {
	reason := s.ReasonForApplying
	short := reason
	if len([]rune(reason)) > 50 {
		short = string([]rune(reason)[:50]) + "..."
	}

	tail := s.ID
	if len(tail) > 6 {
		tail = tail[len(tail)-6:]
	}

	return Row{
		ID:             s.ID,
		IDTail:         "#" + tail,
		Name:           s.Name,
		NationalID:     s.NationalID,
		Email:          s.Email,
		ReasonShort:    short,
		SubmittedAtFmt: formatDate(s.SubmittedAt),
	}
}

func formatDate(iso string) string {
	if iso == "" {
		return "-"
	}
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return "-"
	}
	return t.Format("Jan 2, 2006, 03:04 PM")
}

var dateOnlyRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ToDateInput normalizes a stored timestamp or date to YYYY-MM-DD for form
// binding, or empty when it does not parse.
func ToDateInput(v string) string {
	if v == "" {
		return ""
	}
	d := v
	if i := strings.IndexByte(v, 'T'); i >= 0 {
		d = v[:i]
	}
	if dateOnlyRe.MatchString(d) {
		return d
	}
	return ""
}

// NormalizeInitialValues converts a stored submission back into form values
// for edit mode. Timestamps and id are dropped; the date of birth is
// normalized for the date input.
func NormalizeInitialValues(s *Submission) form.SubmissionForm {
	if s == nil {
		return form.SubmissionForm{}
	}
	values := s.SubmissionForm
	values.DateOfBirth = ToDateInput(values.DateOfBirth)
	return values
}
