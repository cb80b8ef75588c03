package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sanad/internal/form"
)

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show one submission in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		sub, err := a.subs.Resolve(args[0])
		if err != nil {
			return fmt.Errorf("failed to read submission: %w", err)
		}
		if sub == nil {
			return fmt.Errorf("no submission with id %s", args[0])
		}

		fmt.Printf("Submission %s\n", sub.ID)
		fmt.Printf("Submitted: %s\n", sub.SubmittedAt)
		fmt.Printf("Updated:   %s\n\n", sub.UpdatedAt)
		for _, f := range form.Fields {
			label := a.locale.T(f.LabelKey())
			fmt.Printf("%s: %s\n", label, sub.Value(f))
		}
		return nil
	},
}
