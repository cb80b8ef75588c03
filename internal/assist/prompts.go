package assist

import (
	"fmt"
	"strings"

	"sanad/internal/form"
	"sanad/internal/i18n"
)

// SystemPrompt is the system message for draft and refine calls.
func SystemPrompt(lang i18n.Lang) string {
	if lang == i18n.LangArabic {
		return "أنت مساعد مختصر يعيد الصياغة بوضوح ويحافظ على الحقائق."
	}
	return "You are a concise assistant that rewrites clearly while preserving facts."
}

// SystemTranslatePrompt is the system message for translation calls.
func SystemTranslatePrompt(target i18n.Lang) string {
	if target == i18n.LangArabic {
		return "أنت مترجم دقيق. ترجم النص التالي إلى العربية فقط من دون شروحات."
	}
	return "You are a precise translator. Translate into English only with no explanations."
}

// UserTranslatePrompt wraps the text to translate.
func UserTranslatePrompt(text string, target i18n.Lang) string {
	if target == i18n.LangArabic {
		return "ترجم إلى العربية فقط:\nالنص:\n" + text
	}
	return "Translate to English only:\nText:\n" + text
}

// BuildGeneratePrompt produces the from-scratch drafting prompt.
func BuildGeneratePrompt(key FieldKey, app form.ApplicationState, lang i18n.Lang) string {
	dependents := app.Family.Dependents
	income := app.Family.MonthlyIncome
	name := app.Personal.Name
	label := FieldLabel(key, lang)

	if lang == i18n.LangArabic {
		facts := fmt.Sprintf("عدد المعالين: %d. الدخل الشهري: %s.", dependents, formatIncome(income))
		if name != "" {
			facts += fmt.Sprintf(" الاسم: %s.", name)
		}
		return strings.Join([]string{
			fmt.Sprintf("اكتب فقرة موجزة لحقل \"%s\" بأسلوب محترم وواضح.", label),
			facts,
			"الحد الأقصى 150 كلمة. استخدم نصًا عاديًا فقط.",
			"أجب باللغة العربية فقط.",
		}, "\n")
	}

	facts := fmt.Sprintf("Dependents: %d. Monthly income: %s.", dependents, formatIncome(income))
	if name != "" {
		facts += fmt.Sprintf(" Name: %s.", name)
	}
	return strings.Join([]string{
		fmt.Sprintf("Draft a concise paragraph for %q in a respectful, plain tone.", label),
		facts,
		"Limit to 150 words. Plain text only.",
		"Respond in English only.",
	}, "\n")
}

// BuildRefinePrompt produces the improve-existing-text prompt.
func BuildRefinePrompt(key FieldKey, lang i18n.Lang, sourceText string) string {
	label := FieldLabel(key, lang)

	if lang == i18n.LangArabic {
		return strings.Join([]string{
			fmt.Sprintf("حسّن وصغ النص التالي لحقل \"%s\" مع الحفاظ على الحقائق.", label),
			"استخدم فقرة أو فقرتين قصيرتين (بحد أقصى 150 كلمة). نص عربي واضح فقط.",
			"أعد الإجابة باللغة العربية فقط.",
			"النص:",
			sourceText,
		}, "\n")
	}

	return strings.Join([]string{
		fmt.Sprintf("Improve and tighten the following for %q while preserving facts.", label),
		"Return 1-2 short paragraphs (≤150 words). Plain text only.",
		"Respond in English only.",
		"Text:",
		sourceText,
	}, "\n")
}

// formatIncome renders the numeric income without a trailing decimal when
// it is whole, matching how the form captures it.
func formatIncome(income float64) string {
	if income == float64(int64(income)) {
		return fmt.Sprintf("%d", int64(income))
	}
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", income), "0"), ".")
}
