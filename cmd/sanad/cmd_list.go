package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"sanad/internal/submissions"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List submitted applications",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		subs, err := a.subs.List()
		if err != nil {
			return fmt.Errorf("failed to list submissions: %w", err)
		}
		if len(subs) == 0 {
			fmt.Println("No submissions yet. Run 'sanad apply' to start one.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tNATIONAL ID\tREASON\tSUBMITTED")
		for _, s := range subs {
			row := submissions.ToRow(s)
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				row.IDTail, row.Name, row.NationalID, row.ReasonShort, row.SubmittedAtFmt)
		}
		return w.Flush()
	},
}
