package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sanad/internal/i18n"
)

var langCmd = &cobra.Command{
	Use:   "lang [en|ar]",
	Short: "Show or set the saved UI language",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if len(args) == 0 {
			fmt.Println(a.locale.Lang())
			return nil
		}
		if !i18n.IsSupported(args[0]) {
			return fmt.Errorf("unsupported language %q (use en or ar)", args[0])
		}
		lang := i18n.Lang(args[0])
		saveLang(a.store, lang)
		fmt.Printf("Language set to %s\n", lang)
		return nil
	},
}
