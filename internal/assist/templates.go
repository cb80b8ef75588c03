package assist

import (
	"fmt"
	"strings"

	"sanad/internal/form"
	"sanad/internal/i18n"
)

var employmentLabelsEN = map[string]string{
	"employed":      "Employed",
	"unemployed":    "Unemployed",
	"self-employed": "Self-employed",
	"student":       "Student",
	"retired":       "Retired",
}

var employmentLabelsAR = map[string]string{
	"employed":      "موظف",
	"unemployed":    "عاطل",
	"self-employed": "عمل حر",
	"student":       "طالب",
	"retired":       "متقاعد",
}

// EmploymentLabel resolves a stored employment status value to a display
// label, falling back to "Not specified" in the requested language.
func EmploymentLabel(lang i18n.Lang, value string) string {
	if lang == i18n.LangArabic {
		if label, ok := employmentLabelsAR[value]; ok {
			return label
		}
		return "غير محدد"
	}
	if label, ok := employmentLabelsEN[value]; ok {
		return label
	}
	return "Not specified"
}

func describeApplicant(name string, dependents int) string {
	plural := "s"
	if dependents == 1 {
		plural = ""
	}
	if name != "" {
		return fmt.Sprintf("I am %s and support %d household member%s.", name, dependents, plural)
	}
	return fmt.Sprintf("I support %d household member%s.", dependents, plural)
}

func describeApplicantArabic(name string, dependents int) string {
	if name != "" {
		return fmt.Sprintf("أنا %s وأعيل %d فردًا من الأسرة.", name, dependents)
	}
	return fmt.Sprintf("أعيل %d فردًا من الأسرة.", dependents)
}

// OfflineTemplate builds the deterministic local draft for a field when no
// remote model is reachable. Sentences join with a single space.
func OfflineTemplate(key FieldKey, app form.ApplicationState, lang i18n.Lang) string {
	var sentences []string

	if lang == i18n.LangArabic {
		switch key {
		case KeyCurrentFinancialSituation:
			income := i18n.FormatCurrency(app.Family.MonthlyIncome, i18n.LangArabic, "USD")
			sentences = []string{
				describeApplicantArabic(app.Personal.Name, app.Family.Dependents),
				fmt.Sprintf("دخلي الشهري هو %s ولا يكفي لتغطية الإيجار والفواتير والمصاريف الأساسية.", income),
				"أحاول تقليل المصروفات قدر الإمكان وأحتاج إلى دعم مؤقت للمحافظة على الالتزامات.",
			}
		case KeyEmploymentCircumstances:
			sentences = []string{
				fmt.Sprintf("الوضع الوظيفي: %s.", EmploymentLabel(i18n.LangArabic, app.Family.EmploymentStatus)),
				"تغيرت ساعات العمل والدخل مؤخرًا مما صعّب سداد الالتزامات في وقتها.",
				"أبحث بنشاط عن فرصة عمل أكثر استقرارًا ومصادر دخل إضافية.",
			}
		case KeyReasonForApplying:
			sentences = []string{
				"أطلب مساعدة مالية مؤقتة لتغطية الاحتياجات الأساسية لأسرتي.",
				"سيساعدني هذا الدعم على سد الفجوة حتى يتحسن الدخل.",
				"سأستخدم المبلغ بمسؤولية وأبقي الجهة الداعمة على اطلاع.",
			}
		}
		return strings.Join(sentences, " ")
	}

	switch key {
	case KeyCurrentFinancialSituation:
		income := i18n.FormatCurrency(app.Family.MonthlyIncome, i18n.LangEnglish, "USD")
		sentences = []string{
			describeApplicant(app.Personal.Name, app.Family.Dependents),
			fmt.Sprintf("My monthly income is %s, which no longer covers rent, utilities, and groceries.", income),
			"I'm cutting expenses where possible but need temporary help to stay current.",
		}
	case KeyEmploymentCircumstances:
		sentences = []string{
			fmt.Sprintf("Employment status: %s.", EmploymentLabel(i18n.LangEnglish, app.Family.EmploymentStatus)),
			"My hours and income recently changed, making on-time payments harder.",
			"I'm actively pursuing more stable work and additional income sources.",
		}
	case KeyReasonForApplying:
		sentences = []string{
			"I'm requesting temporary financial assistance to cover essential living costs.",
			"This support will help bridge the gap until my income stabilizes.",
			"I'll use the funds responsibly and keep the organization updated.",
		}
	}
	return strings.Join(sentences, " ")
}
