package i18n

// String tables for the two supported languages. Keys are stable message
// identifiers; validation copy lives here so schemas carry keys, not prose.
var tables = map[Lang]map[string]string{
	LangEnglish: {
		// Step titles
		"app.step1.title": "Personal Information",
		"app.step2.title": "Family & Financial Information",
		"app.step3.title": "Situation Description",

		// Field labels
		"field.name":                   "Full Name",
		"field.nationalId":             "National ID",
		"field.dateOfBirth":            "Date of Birth",
		"field.gender":                 "Gender",
		"field.address":                "Address",
		"field.city":                   "City",
		"field.state":                  "State",
		"field.country":                "Country",
		"field.phone":                  "Phone Number",
		"field.email":                  "Email Address",
		"field.maritalStatus":          "Marital Status",
		"field.dependents":             "Number of Dependents",
		"field.employmentStatus":       "Employment Status",
		"field.monthlyIncome":          "Monthly Income",
		"field.housingStatus":          "Housing Status",
		"field.financialSituation":     "Current Financial Situation",
		"field.employmentCircumstance": "Employment Circumstances",
		"field.reasonForApplying":      "Reason for Applying",

		// Validation messages
		"validation.name.min":                   "Name must be at least 2 characters long",
		"validation.nationalId.min":             "National ID must be at least 5 characters long",
		"validation.dateOfBirth.required":       "Date of birth is required",
		"validation.gender.required":            "Gender is required",
		"validation.address.min":                "Address must be at least 5 characters long",
		"validation.city.min":                   "City must be at least 2 characters long",
		"validation.state.min":                  "State must be at least 2 characters long",
		"validation.country.min":                "Country must be at least 2 characters long",
		"validation.phone.min":                  "Phone number must be at least 10 digits",
		"validation.email.invalid":              "Please enter a valid email address",
		"validation.maritalStatus.required":     "Marital status is required",
		"validation.dependents.number":          "Number of dependents must be a valid number",
		"validation.employmentStatus.required":  "Employment status is required",
		"validation.monthlyIncome.number":       "Monthly income must be a valid number",
		"validation.housingStatus.required":     "Housing status is required",
		"validation.financialSituation.min":     "Please provide at least 10 characters describing your financial situation",
		"validation.employmentCircumstance.min": "Please provide at least 10 characters describing your employment circumstances",
		"validation.reasonForApplying.min":      "Please provide at least 10 characters explaining your reason for applying",

		// Assist UI
		"assist.help":       "Help me write",
		"assist.generating": "Generating…",
		"assist.insert":     "Insert",
		"assist.discard":    "Discard",
		"assist.regenerate": "Regenerate",
		"assist.suggestion": "Suggestion",
		"assist.error":      "Could not generate a suggestion.",

		// Navigation and status
		"nav.back":       "Back",
		"nav.next":       "Next",
		"nav.nextField":  "Next field",
		"nav.submit":     "Submit",
		"nav.language":   "العربية",
		"ui.translating": "Translating…",

		// Outcomes
		"success.applicationSubmitted":   "Application submitted",
		"success.applicationUpdated":     "Application updated",
		"error.notFound.title":           "Not found",
		"error.notFound.description":     "The submission you tried to edit does not exist.",
	},
	LangArabic: {
		"app.step1.title": "المعلومات الشخصية",
		"app.step2.title": "معلومات الأسرة والوضع المالي",
		"app.step3.title": "وصف الحالة",

		"field.name":                   "الاسم الكامل",
		"field.nationalId":             "رقم الهوية الوطنية",
		"field.dateOfBirth":            "تاريخ الميلاد",
		"field.gender":                 "الجنس",
		"field.address":                "العنوان",
		"field.city":                   "المدينة",
		"field.state":                  "المنطقة",
		"field.country":                "الدولة",
		"field.phone":                  "رقم الهاتف",
		"field.email":                  "البريد الإلكتروني",
		"field.maritalStatus":          "الحالة الاجتماعية",
		"field.dependents":             "عدد المعالين",
		"field.employmentStatus":       "الوضع الوظيفي",
		"field.monthlyIncome":          "الدخل الشهري",
		"field.housingStatus":          "وضع السكن",
		"field.financialSituation":     "الوضع المالي الحالي",
		"field.employmentCircumstance": "الظروف الوظيفية",
		"field.reasonForApplying":      "سبب التقديم",

		"validation.name.min":                   "يجب أن يتكون الاسم من حرفين على الأقل",
		"validation.nationalId.min":             "يجب أن يتكون رقم الهوية من 5 أحرف على الأقل",
		"validation.dateOfBirth.required":       "تاريخ الميلاد مطلوب",
		"validation.gender.required":            "الجنس مطلوب",
		"validation.address.min":                "يجب أن يتكون العنوان من 5 أحرف على الأقل",
		"validation.city.min":                   "يجب أن يتكون اسم المدينة من حرفين على الأقل",
		"validation.state.min":                  "يجب أن يتكون اسم المنطقة من حرفين على الأقل",
		"validation.country.min":                "يجب أن يتكون اسم الدولة من حرفين على الأقل",
		"validation.phone.min":                  "يجب أن يتكون رقم الهاتف من 10 أرقام على الأقل",
		"validation.email.invalid":              "يرجى إدخال بريد إلكتروني صحيح",
		"validation.maritalStatus.required":     "الحالة الاجتماعية مطلوبة",
		"validation.dependents.number":          "يجب أن يكون عدد المعالين رقمًا صحيحًا",
		"validation.employmentStatus.required":  "الوضع الوظيفي مطلوب",
		"validation.monthlyIncome.number":       "يجب أن يكون الدخل الشهري رقمًا صحيحًا",
		"validation.housingStatus.required":     "وضع السكن مطلوب",
		"validation.financialSituation.min":     "يرجى كتابة 10 أحرف على الأقل لوصف وضعك المالي",
		"validation.employmentCircumstance.min": "يرجى كتابة 10 أحرف على الأقل لوصف ظروفك الوظيفية",
		"validation.reasonForApplying.min":      "يرجى كتابة 10 أحرف على الأقل لشرح سبب التقديم",

		"assist.help":       "ساعدني في الكتابة",
		"assist.generating": "جارٍ الإنشاء…",
		"assist.insert":     "إدراج",
		"assist.discard":    "تجاهل",
		"assist.regenerate": "إعادة الإنشاء",
		"assist.suggestion": "اقتراح",
		"assist.error":      "تعذر إنشاء اقتراح.",

		"nav.back":       "رجوع",
		"nav.next":       "التالي",
		"nav.nextField":  "الحقل التالي",
		"nav.submit":     "إرسال",
		"nav.language":   "English",
		"ui.translating": "جارٍ الترجمة…",

		"success.applicationSubmitted":   "تم إرسال الطلب",
		"success.applicationUpdated":     "تم تحديث الطلب",
		"error.notFound.title":           "غير موجود",
		"error.notFound.description":     "الطلب الذي تحاول تعديله غير موجود.",
	},
}
