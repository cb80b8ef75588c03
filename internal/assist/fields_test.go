package assist

import (
	"testing"

	"sanad/internal/form"
	"sanad/internal/i18n"
)

func TestTargetFieldsBijection(t *testing.T) {
	if len(TargetFields) != len(FieldKeys) {
		t.Fatalf("map covers %d keys, order lists %d", len(TargetFields), len(FieldKeys))
	}
	seen := make(map[form.Field]bool)
	for _, key := range FieldKeys {
		target, ok := TargetFields[key]
		if !ok {
			t.Errorf("key %s has no target field", key)
			continue
		}
		if seen[target] {
			t.Errorf("target %s mapped twice", target)
		}
		seen[target] = true

		back, ok := KeyForField(target)
		if !ok || back != key {
			t.Errorf("KeyForField(%s) = %s/%v, want %s", target, back, ok, key)
		}
	}
}

func TestTargetsAreSituationFields(t *testing.T) {
	for key, target := range TargetFields {
		if form.StepOf(target) != form.StepSituation {
			t.Errorf("%s targets %s, outside the situation step", key, target)
		}
	}
}

func TestIsFieldKey(t *testing.T) {
	for _, k := range FieldKeys {
		if !IsFieldKey(string(k)) {
			t.Errorf("IsFieldKey(%s) = false", k)
		}
	}
	if IsFieldKey("name") {
		t.Error("non-assist field accepted")
	}
}

func TestFieldLabel(t *testing.T) {
	if got := FieldLabel(KeyReasonForApplying, i18n.LangEnglish); got != "Reason for Applying" {
		t.Errorf("english label = %q", got)
	}
	if got := FieldLabel(KeyReasonForApplying, i18n.LangArabic); got != "سبب التقديم" {
		t.Errorf("arabic label = %q", got)
	}
	if got := FieldLabel(FieldKey("bogus"), i18n.LangEnglish); got != "bogus" {
		t.Errorf("unknown key label = %q", got)
	}
}

func TestEmploymentLabelFallback(t *testing.T) {
	if got := EmploymentLabel(i18n.LangEnglish, "self-employed"); got != "Self-employed" {
		t.Errorf("label = %q", got)
	}
	if got := EmploymentLabel(i18n.LangEnglish, ""); got != "Not specified" {
		t.Errorf("english fallback = %q", got)
	}
	if got := EmploymentLabel(i18n.LangArabic, "unknown"); got != "غير محدد" {
		t.Errorf("arabic fallback = %q", got)
	}
}
