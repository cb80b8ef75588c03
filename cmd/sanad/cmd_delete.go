package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sanad/internal/draft"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a submission",
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
		id := sub.ID

		if err := a.subs.Remove(id); err != nil {
			return fmt.Errorf("failed to delete submission: %w", err)
		}
		// Any stale edit draft for this record goes too.
		if err := a.store.Delete(draft.Key(id)); err == nil {
			fmt.Printf("Deleted submission %s\n", id)
		} else {
			fmt.Printf("Deleted submission %s (draft cleanup failed: %v)\n", id, err)
		}
		return nil
	},
}
