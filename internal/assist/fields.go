// Package assist produces drafted narrative text for the three free-text
// fields of the application, preferring a remote completion model and
// degrading to deterministic offline templates.
package assist

import (
	"sanad/internal/form"
	"sanad/internal/i18n"
)

// FieldKey identifies an assistable narrative field.
type FieldKey string

const (
	KeyCurrentFinancialSituation FieldKey = "currentFinancialSituation"
	KeyEmploymentCircumstances   FieldKey = "employmentCircumstances"
	KeyReasonForApplying         FieldKey = "reasonForApplying"
)

// FieldKeys lists the assistable fields in display order.
var FieldKeys = []FieldKey{
	KeyCurrentFinancialSituation,
	KeyEmploymentCircumstances,
	KeyReasonForApplying,
}

// TargetFields maps each assist key to the form field it fills.
var TargetFields = map[FieldKey]form.Field{
	KeyCurrentFinancialSituation: form.FieldFinancialSituation,
	KeyEmploymentCircumstances:   form.FieldEmploymentCircumstance,
	KeyReasonForApplying:         form.FieldReasonForApplying,
}

// KeyForField is the inverse of TargetFields.
func KeyForField(f form.Field) (FieldKey, bool) {
	for k, target := range TargetFields {
		if target == f {
			return k, true
		}
	}
	return "", false
}

// IsFieldKey reports whether s names an assistable field.
func IsFieldKey(s string) bool {
	for _, k := range FieldKeys {
		if string(k) == s {
			return true
		}
	}
	return false
}

var fieldLabels = map[FieldKey]map[i18n.Lang]string{
	KeyCurrentFinancialSituation: {
		i18n.LangEnglish: "Current Financial Situation",
		i18n.LangArabic:  "الوضع المالي الحالي",
	},
	KeyEmploymentCircumstances: {
		i18n.LangEnglish: "Employment Circumstances",
		i18n.LangArabic:  "الظروف الوظيفية",
	},
	KeyReasonForApplying: {
		i18n.LangEnglish: "Reason for Applying",
		i18n.LangArabic:  "سبب التقديم",
	},
}

// FieldLabel returns the human label used inside prompts.
func FieldLabel(key FieldKey, lang i18n.Lang) string {
	labels, ok := fieldLabels[key]
	if !ok {
		return string(key)
	}
	if label, ok := labels[lang]; ok {
		return label
	}
	return labels[i18n.LangEnglish]
}
