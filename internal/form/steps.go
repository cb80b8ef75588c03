package form

// Step identifies one page of the multi-step form.
type Step string

const (
	StepPersonal  Step = "personal"
	StepFinancial Step = "financial"
	StepSituation Step = "situation"
)

// Steps is the fixed ordered step sequence.
var Steps = []Step{StepPersonal, StepFinancial, StepSituation}

// FieldsByStep maps each step to its ordered field subset. Validation,
// error-clearing, and focus logic all consume this table so no per-step
// conditionals accumulate elsewhere.
var FieldsByStep = map[Step][]Field{
	StepPersonal: {
		FieldName, FieldNationalID, FieldDateOfBirth, FieldGender,
		FieldAddress, FieldCity, FieldState, FieldCountry,
		FieldPhone, FieldEmail,
	},
	StepFinancial: {
		FieldMaritalStatus, FieldDependents, FieldEmploymentStatus,
		FieldMonthlyIncome, FieldHousingStatus,
	},
	StepSituation: {
		FieldFinancialSituation, FieldEmploymentCircumstance,
		FieldReasonForApplying,
	},
}

// TitleKeys maps steps to their i18n title keys.
var TitleKeys = map[Step]string{
	StepPersonal:  "app.step1.title",
	StepFinancial: "app.step2.title",
	StepSituation: "app.step3.title",
}

// IsStep reports whether s names a known step.
func IsStep(s string) bool {
	_, ok := FieldsByStep[Step(s)]
	return ok
}

// StepIndex returns the position of step in the sequence, or -1.
func StepIndex(step Step) int {
	for i, s := range Steps {
		if s == step {
			return i
		}
	}
	return -1
}

// StepAt returns the step at index i, clamped to the valid range.
func StepAt(i int) Step {
	if i < 0 {
		i = 0
	}
	if i >= len(Steps) {
		i = len(Steps) - 1
	}
	return Steps[i]
}

// FirstField returns the first field of a step, used for focus on entry.
func FirstField(step Step) Field {
	fields := FieldsByStep[step]
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// StepOf returns the step a field belongs to.
func StepOf(field Field) Step {
	for _, step := range Steps {
		for _, f := range FieldsByStep[step] {
			if f == field {
				return step
			}
		}
	}
	return ""
}
