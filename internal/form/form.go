// Package form defines the intake form record, its field identifiers, and
// the static step-to-fields table consumed uniformly by validation,
// error-clearing, and focus logic.
package form

// Field identifies one form field. The string value doubles as the JSON key
// used in drafts and persisted submissions.
type Field string

const (
	FieldName                   Field = "name"
	FieldNationalID             Field = "nationalId"
	FieldDateOfBirth            Field = "dateOfBirth"
	FieldGender                 Field = "gender"
	FieldAddress                Field = "address"
	FieldCity                   Field = "city"
	FieldState                  Field = "state"
	FieldCountry                Field = "country"
	FieldPhone                  Field = "phone"
	FieldEmail                  Field = "email"
	FieldMaritalStatus          Field = "maritalStatus"
	FieldDependents             Field = "dependents"
	FieldEmploymentStatus       Field = "employmentStatus"
	FieldMonthlyIncome          Field = "monthlyIncome"
	FieldHousingStatus          Field = "housingStatus"
	FieldFinancialSituation     Field = "financialSituation"
	FieldEmploymentCircumstance Field = "employmentCircumstance"
	FieldReasonForApplying      Field = "reasonForApplying"
)

// SubmissionForm is the flat intake record. All values are strings,
// including the numeric fields, so drafts and UI bindings stay uniform;
// numeric parsing happens at projection time.
type SubmissionForm struct {
	Name                   string `json:"name"`
	NationalID             string `json:"nationalId"`
	DateOfBirth            string `json:"dateOfBirth"`
	Gender                 string `json:"gender"`
	Address                string `json:"address"`
	City                   string `json:"city"`
	State                  string `json:"state"`
	Country                string `json:"country"`
	Phone                  string `json:"phone"`
	Email                  string `json:"email"`
	MaritalStatus          string `json:"maritalStatus"`
	Dependents             string `json:"dependents"`
	EmploymentStatus       string `json:"employmentStatus"`
	MonthlyIncome          string `json:"monthlyIncome"`
	HousingStatus          string `json:"housingStatus"`
	FinancialSituation     string `json:"financialSituation"`
	EmploymentCircumstance string `json:"employmentCircumstance"`
	ReasonForApplying      string `json:"reasonForApplying"`
}

// Fields lists every form field in display order.
var Fields = []Field{
	FieldName, FieldNationalID, FieldDateOfBirth, FieldGender,
	FieldAddress, FieldCity, FieldState, FieldCountry,
	FieldPhone, FieldEmail,
	FieldMaritalStatus, FieldDependents, FieldEmploymentStatus,
	FieldMonthlyIncome, FieldHousingStatus,
	FieldFinancialSituation, FieldEmploymentCircumstance, FieldReasonForApplying,
}

// Value returns the current value of the named field.
func (f *SubmissionForm) Value(field Field) string {
	switch field {
	case FieldName:
		return f.Name
	case FieldNationalID:
		return f.NationalID
	case FieldDateOfBirth:
		return f.DateOfBirth
	case FieldGender:
		return f.Gender
	case FieldAddress:
		return f.Address
	case FieldCity:
		return f.City
	case FieldState:
		return f.State
	case FieldCountry:
		return f.Country
	case FieldPhone:
		return f.Phone
	case FieldEmail:
		return f.Email
	case FieldMaritalStatus:
		return f.MaritalStatus
	case FieldDependents:
		return f.Dependents
	case FieldEmploymentStatus:
		return f.EmploymentStatus
	case FieldMonthlyIncome:
		return f.MonthlyIncome
	case FieldHousingStatus:
		return f.HousingStatus
	case FieldFinancialSituation:
		return f.FinancialSituation
	case FieldEmploymentCircumstance:
		return f.EmploymentCircumstance
	case FieldReasonForApplying:
		return f.ReasonForApplying
	}
	return ""
}

// SetValue assigns the named field. Unknown fields are ignored.
func (f *SubmissionForm) SetValue(field Field, v string) {
	switch field {
	case FieldName:
		f.Name = v
	case FieldNationalID:
		f.NationalID = v
	case FieldDateOfBirth:
		f.DateOfBirth = v
	case FieldGender:
		f.Gender = v
	case FieldAddress:
		f.Address = v
	case FieldCity:
		f.City = v
	case FieldState:
		f.State = v
	case FieldCountry:
		f.Country = v
	case FieldPhone:
		f.Phone = v
	case FieldEmail:
		f.Email = v
	case FieldMaritalStatus:
		f.MaritalStatus = v
	case FieldDependents:
		f.Dependents = v
	case FieldEmploymentStatus:
		f.EmploymentStatus = v
	case FieldMonthlyIncome:
		f.MonthlyIncome = v
	case FieldHousingStatus:
		f.HousingStatus = v
	case FieldFinancialSituation:
		f.FinancialSituation = v
	case FieldEmploymentCircumstance:
		f.EmploymentCircumstance = v
	case FieldReasonForApplying:
		f.ReasonForApplying = v
	}
}

// Merge overlays every non-empty field of other onto f.
func (f *SubmissionForm) Merge(other *SubmissionForm) {
	for _, field := range Fields {
		if v := other.Value(field); v != "" {
			f.SetValue(field, v)
		}
	}
}

// LabelKey returns the i18n key for the field's display label.
func (field Field) LabelKey() string {
	return "field." + string(field)
}
