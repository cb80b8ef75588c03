package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"sanad/internal/draft"
	"sanad/internal/form"
	"sanad/internal/i18n"
	"sanad/internal/stepper"
	"sanad/internal/submissions"
	"sanad/internal/translate"

	"sanad/cmd/sanad/tui"
)

var applyCmd = &cobra.Command{
	Use:   "apply [id]",
	Short: "Start a new application, or edit an existing one by id",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runApply,
}

func runApply(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	mode := stepper.ModeCreate
	draftID := "new"
	var initial form.SubmissionForm
	var editID string

	if len(args) == 1 {
		sub, err := a.subs.Resolve(args[0])
		if err != nil {
			return fmt.Errorf("failed to read submission: %w", err)
		}
		if sub == nil {
			return fmt.Errorf("%s: %s",
				a.locale.T("error.notFound.title"), a.locale.T("error.notFound.description"))
		}
		mode = stepper.ModeEdit
		editID = sub.ID
		draftID = sub.ID
		initial = submissions.NormalizeInitialValues(sub)
	}

	drafts := draft.NewStore(a.store)
	onSubmit := func(values form.SubmissionForm) error {
		if mode == stepper.ModeEdit {
			_, err := a.subs.Update(editID, values)
			return err
		}
		_, err := a.subs.Create(values)
		return err
	}

	model := tui.New(tui.Options{
		Mode:      mode,
		DraftKey:  draft.Key(draftID),
		Initial:   initial,
		Locale:    a.locale,
		Drafts:    drafts,
		Assist:    a.assist,
		Auto:      translate.NewAutoTranslator(a.assist),
		OnSubmit:  onSubmit,
		OnSetLang: func(lang i18n.Lang) { saveLang(a.store, lang) },
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("application flow failed: %w", err)
	}
	drafts.Flush()

	if m, ok := final.(*tui.Model); ok && m.SubmittedOK() {
		if mode == stepper.ModeEdit {
			fmt.Printf("%s (%s).\n", a.locale.T("success.applicationUpdated"), editID)
		} else {
			fmt.Printf("%s. Run 'sanad list' to see it.\n", a.locale.T("success.applicationSubmitted"))
		}
	}
	return nil
}
