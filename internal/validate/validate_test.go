package validate

import (
	"strings"
	"testing"

	"sanad/internal/form"
)

// validForm returns values that pass every rule.
func validForm() form.SubmissionForm {
	return form.SubmissionForm{
		Name:        "Layla Hassan",
		NationalID:  "784-1987-1234567",
		DateOfBirth: "1987-04-12",
		Gender:      "female",
		Address:     "12 Oasis Street",
		City:        "Dubai",
		State:       "Dubai",
		Country:     "AE",
		Phone:       "+971 50 123 4567",
		Email:       "layla@example.com",

		MaritalStatus:    "married",
		Dependents:       "3",
		EmploymentStatus: "unemployed",
		MonthlyIncome:    "1200",
		HousingStatus:    "rent",

		FinancialSituation:     "Our savings ran out two months ago and rent is overdue.",
		EmploymentCircumstance: "I was laid off in March and have been applying since.",
		ReasonForApplying:      "We need short-term help with rent and utilities.",
	}
}

func TestFullValidFormHasNoErrors(t *testing.T) {
	values := validForm()
	if errs := Full(&values); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestFieldRules(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*form.SubmissionForm)
		field   form.Field
		wantKey string
	}{
		{
			name:    "name too short",
			mutate:  func(f *form.SubmissionForm) { f.Name = "A" },
			field:   form.FieldName,
			wantKey: "validation.name.min",
		},
		{
			name:    "name of only whitespace",
			mutate:  func(f *form.SubmissionForm) { f.Name = "   " },
			field:   form.FieldName,
			wantKey: "validation.name.min",
		},
		{
			name:    "national id too short",
			mutate:  func(f *form.SubmissionForm) { f.NationalID = "1234" },
			field:   form.FieldNationalID,
			wantKey: "validation.nationalId.min",
		},
		{
			name:    "date of birth empty",
			mutate:  func(f *form.SubmissionForm) { f.DateOfBirth = "" },
			field:   form.FieldDateOfBirth,
			wantKey: "validation.dateOfBirth.required",
		},
		{
			name:    "phone with too few digits",
			mutate:  func(f *form.SubmissionForm) { f.Phone = "+971 50" },
			field:   form.FieldPhone,
			wantKey: "validation.phone.min",
		},
		{
			name:    "email missing domain",
			mutate:  func(f *form.SubmissionForm) { f.Email = "layla@" },
			field:   form.FieldEmail,
			wantKey: "validation.email.invalid",
		},
		{
			name:    "email with spaces",
			mutate:  func(f *form.SubmissionForm) { f.Email = "la yla@example.com" },
			field:   form.FieldEmail,
			wantKey: "validation.email.invalid",
		},
		{
			name:    "dependents not a number",
			mutate:  func(f *form.SubmissionForm) { f.Dependents = "three" },
			field:   form.FieldDependents,
			wantKey: "validation.dependents.number",
		},
		{
			name:    "dependents negative",
			mutate:  func(f *form.SubmissionForm) { f.Dependents = "-1" },
			field:   form.FieldDependents,
			wantKey: "validation.dependents.number",
		},
		{
			name:    "income negative",
			mutate:  func(f *form.SubmissionForm) { f.MonthlyIncome = "-500" },
			field:   form.FieldMonthlyIncome,
			wantKey: "validation.monthlyIncome.number",
		},
		{
			name:    "narrative too short",
			mutate:  func(f *form.SubmissionForm) { f.ReasonForApplying = "help" },
			field:   form.FieldReasonForApplying,
			wantKey: "validation.reasonForApplying.min",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := validForm()
			tt.mutate(&values)

			errs := Full(&values)
			if len(errs) != 1 {
				t.Fatalf("expected exactly 1 error, got %d: %v", len(errs), errs)
			}
			if errs[0].Field != tt.field {
				t.Errorf("error on field %s, want %s", errs[0].Field, tt.field)
			}
			if errs[0].Key != tt.wantKey {
				t.Errorf("error key %s, want %s", errs[0].Key, tt.wantKey)
			}
		})
	}
}

func TestStepScopesValidation(t *testing.T) {
	// Empty form: step 1 should only report step 1 fields.
	var values form.SubmissionForm
	errs := Step(&values, form.StepPersonal)

	step1 := form.FieldsByStep[form.StepPersonal]
	inStep := make(map[form.Field]bool)
	for _, f := range step1 {
		inStep[f] = true
	}
	for _, e := range errs {
		if !inStep[e.Field] {
			t.Errorf("step validation leaked field %s", e.Field)
		}
	}
	if len(errs) != len(step1) {
		t.Errorf("expected %d errors for an empty step 1, got %d", len(step1), len(errs))
	}
}

func TestFieldsFirstFailureWins(t *testing.T) {
	values := validForm()
	values.Email = ""

	errs := Fields(&values, []form.Field{form.FieldEmail})
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d", len(errs))
	}
	if !strings.HasPrefix(errs[0].Key, "validation.email.") {
		t.Errorf("unexpected key %s", errs[0].Key)
	}
}

func TestFieldsIgnoresOutOfSubsetFields(t *testing.T) {
	var values form.SubmissionForm // everything invalid
	errs := Fields(&values, []form.Field{form.FieldCity})
	if len(errs) != 1 || errs[0].Field != form.FieldCity {
		t.Fatalf("expected only the city error, got %v", errs)
	}
}
