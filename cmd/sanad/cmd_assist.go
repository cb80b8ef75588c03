package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"sanad/internal/assist"
	"sanad/internal/i18n"
)

var (
	assistLang string
	assistSeed string
	assistDeps int
	assistInc  float64
	assistName string
)

// assistCmd is a one-shot version of the in-form helper, mostly useful for
// inspecting drafts and the offline templates from the shell.
var assistCmd = &cobra.Command{
	Use:   "assist [field]",
	Short: "Draft text for a narrative field",
	Long: `Drafts a paragraph for one of the narrative fields:
  currentFinancialSituation, employmentCircumstances, reasonForApplying

Without an AI credential the fixed offline template is printed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !assist.IsFieldKey(args[0]) {
			return fmt.Errorf("unknown field %q (one of: %s)", args[0], strings.Join(fieldKeyNames(), ", "))
		}

		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		lang := a.locale.Lang()
		if assistLang != "" {
			if !i18n.IsSupported(assistLang) {
				return fmt.Errorf("unsupported language %q (use en or ar)", assistLang)
			}
			lang = i18n.Lang(assistLang)
		}

		req := assist.Request{
			FieldKey:   assist.FieldKey(args[0]),
			Language:   lang,
			SourceText: assistSeed,
		}
		req.Application.Personal.Name = assistName
		req.Application.Family.Dependents = assistDeps
		req.Application.Family.MonthlyIncome = assistInc

		fmt.Println(a.assist.Generate(cmd.Context(), req))
		return nil
	},
}

func fieldKeyNames() []string {
	names := make([]string, len(assist.FieldKeys))
	for i, k := range assist.FieldKeys {
		names[i] = string(k)
	}
	return names
}

func init() {
	assistCmd.Flags().StringVar(&assistLang, "language", "", "draft language (en or ar)")
	assistCmd.Flags().StringVar(&assistSeed, "seed", "", "existing text to refine")
	assistCmd.Flags().IntVar(&assistDeps, "dependents", 0, "household dependents")
	assistCmd.Flags().Float64Var(&assistInc, "income", 0, "monthly income")
	assistCmd.Flags().StringVar(&assistName, "name", "", "applicant name")
}
