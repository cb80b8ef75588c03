package form

import "strconv"

// ApplicationState is a normalized nested projection of the flat form,
// grouped the way the assist prompts consume it. Derived only, never
// persisted.
type ApplicationState struct {
	Personal  PersonalState  `json:"personal"`
	Family    FamilyState    `json:"family"`
	Situation SituationState `json:"situation"`
}

type PersonalState struct {
	Name       string `json:"name"`
	NationalID string `json:"nationalId"`
	DOB        string `json:"dob"`
	Gender     string `json:"gender"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	Country    string `json:"country"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
}

type FamilyState struct {
	MaritalStatus    string  `json:"maritalStatus"`
	Dependents       int     `json:"dependents"`
	EmploymentStatus string  `json:"employmentStatus"`
	MonthlyIncome    float64 `json:"monthlyIncome"`
	HousingStatus    string  `json:"housingStatus"`
}

type SituationState struct {
	CurrentFinancialSituation string `json:"currentFinancialSituation"`
	EmploymentCircumstances   string `json:"employmentCircumstances"`
	ReasonForApplying         string `json:"reasonForApplying"`
}

// ApplicationState projects the flat form into the nested shape, parsing
// the numeric fields. Unparseable values project to zero.
func (f *SubmissionForm) ApplicationState() ApplicationState {
	dependents, err := strconv.Atoi(f.Dependents)
	if err != nil || dependents < 0 {
		dependents = 0
	}
	income, err := strconv.ParseFloat(f.MonthlyIncome, 64)
	if err != nil || income < 0 {
		income = 0
	}

	return ApplicationState{
		Personal: PersonalState{
			Name:       f.Name,
			NationalID: f.NationalID,
			DOB:        f.DateOfBirth,
			Gender:     f.Gender,
			Address:    f.Address,
			City:       f.City,
			State:      f.State,
			Country:    f.Country,
			Phone:      f.Phone,
			Email:      f.Email,
		},
		Family: FamilyState{
			MaritalStatus:    f.MaritalStatus,
			Dependents:       dependents,
			EmploymentStatus: f.EmploymentStatus,
			MonthlyIncome:    income,
			HousingStatus:    f.HousingStatus,
		},
		Situation: SituationState{
			CurrentFinancialSituation: f.FinancialSituation,
			EmploymentCircumstances:   f.EmploymentCircumstance,
			ReasonForApplying:         f.ReasonForApplying,
		},
	}
}
