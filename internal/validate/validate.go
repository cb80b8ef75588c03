// Package validate holds the per-step and full-form field validation rules.
// Failures carry stable message keys, not display strings; localization
// happens in the resolver.
package validate

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"sanad/internal/form"
)

// FieldError is one validation failure: the offending field and a stable
// message key resolvable through the i18n layer.
type FieldError struct {
	Field form.Field
	Key   string
}

// Rule checks a single value and returns a message key on failure.
type Rule func(value string) (key string, ok bool)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func minLen(n int, key string) Rule {
	return func(v string) (string, bool) {
		if len(strings.TrimSpace(v)) < n {
			return key, false
		}
		return "", true
	}
}

func required(key string) Rule {
	return minLen(1, key)
}

func minDigits(n int, key string) Rule {
	return func(v string) (string, bool) {
		digits := 0
		for _, r := range v {
			if unicode.IsDigit(r) {
				digits++
			}
		}
		if digits < n {
			return key, false
		}
		return "", true
	}
}

func email(key string) Rule {
	return func(v string) (string, bool) {
		if !emailRe.MatchString(strings.TrimSpace(v)) {
			return key, false
		}
		return "", true
	}
}

func nonNegativeNumber(key string) Rule {
	return func(v string) (string, bool) {
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil || n < 0 {
			return key, false
		}
		return "", true
	}
}

// rulesByField is the full-form schema: every field with its ordered rules.
// The per-step schemas are this table filtered through form.FieldsByStep.
var rulesByField = map[form.Field][]Rule{
	form.FieldName:        {minLen(2, "validation.name.min")},
	form.FieldNationalID:  {minLen(5, "validation.nationalId.min")},
	form.FieldDateOfBirth: {required("validation.dateOfBirth.required")},
	form.FieldGender:      {required("validation.gender.required")},
	form.FieldAddress:     {minLen(5, "validation.address.min")},
	form.FieldCity:        {minLen(2, "validation.city.min")},
	form.FieldState:       {minLen(2, "validation.state.min")},
	form.FieldCountry:     {minLen(2, "validation.country.min")},
	form.FieldPhone:       {minDigits(10, "validation.phone.min")},
	form.FieldEmail:       {email("validation.email.invalid")},

	form.FieldMaritalStatus:    {required("validation.maritalStatus.required")},
	form.FieldDependents:       {nonNegativeNumber("validation.dependents.number")},
	form.FieldEmploymentStatus: {required("validation.employmentStatus.required")},
	form.FieldMonthlyIncome:    {nonNegativeNumber("validation.monthlyIncome.number")},
	form.FieldHousingStatus:    {required("validation.housingStatus.required")},

	form.FieldFinancialSituation:     {minLen(10, "validation.financialSituation.min")},
	form.FieldEmploymentCircumstance: {minLen(10, "validation.employmentCircumstance.min")},
	form.FieldReasonForApplying:      {minLen(10, "validation.reasonForApplying.min")},
}

// Fields validates the given field subset against values. Exactly one error
// per field is retained, the first failing rule. Fields outside the subset
// are never inspected.
func Fields(values *form.SubmissionForm, fields []form.Field) []FieldError {
	var errs []FieldError
	for _, field := range fields {
		for _, rule := range rulesByField[field] {
			if key, ok := rule(values.Value(field)); !ok {
				errs = append(errs, FieldError{Field: field, Key: key})
				break
			}
		}
	}
	return errs
}

// Step validates one step's field subset.
func Step(values *form.SubmissionForm, step form.Step) []FieldError {
	return Fields(values, form.FieldsByStep[step])
}

// Full validates the entire form, the union of all three steps.
func Full(values *form.SubmissionForm) []FieldError {
	return Fields(values, form.Fields)
}
