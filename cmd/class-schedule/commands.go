package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jh3/class-schedule/internal/state"
	"github.com/jh3/class-schedule/internal/ui"
)

func newListCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the filtered schedule as plain text (for scripting)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view := o.app.pipeline.Build(o.app.store.All(), o.controller().Query())
			return ui.WritePlain(cmd.OutOrStdout(), view)
		},
	}
}

func newPickCmd(o *options) *cobra.Command {
	var copyField string

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Fuzzy-find a class and print its teacher's contact details",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseCopyField(copyField)
			if err != nil {
				return err
			}

			view := o.app.pipeline.Build(o.app.store.All(), o.controller().Query())
			picked, err := ui.PickSession(view.Visible())
			if err != nil {
				return err
			}
			if picked == nil {
				return nil
			}

			ctrl := state.New()
			if !ctrl.OpenContactModal(*picked) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s has no contact details.\n", picked.Course, picked.Title)
				return nil
			}
			modal := ctrl.Snapshot().Modal
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, modal.Session.Teacher)
			if modal.Contact.Phone != "" {
				fmt.Fprintf(out, "Phone: %s\n", modal.Contact.Phone)
			}
			if modal.Contact.Email != "" {
				fmt.Fprintf(out, "Email: %s\n", modal.Contact.Email)
			}

			if kind == state.CopyNone {
				return nil
			}
			req, ok := ctrl.RequestCopy(kind)
			if !ok {
				return fmt.Errorf("no %s to copy", kind)
			}
			clip := o.clipboard()
			if clip == nil {
				return fmt.Errorf("no clipboard available")
			}
			if err := clip.WriteText(req.Text); err != nil {
				return fmt.Errorf("copy %s: %w", kind, err)
			}
			fmt.Fprintf(out, "Copied %s to clipboard.\n", kind)
			return nil
		},
	}
	cmd.Flags().StringVar(&copyField, "copy", "", "Copy the phone or email to the clipboard")
	return cmd
}

func parseCopyField(s string) (state.CopyKind, error) {
	switch s {
	case "":
		return state.CopyNone, nil
	case "phone":
		return state.CopyPhone, nil
	case "email":
		return state.CopyEmail, nil
	default:
		return state.CopyNone, fmt.Errorf("--copy must be phone or email, got %q", s)
	}
}

func newThemesCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List the available color themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			active, _ := o.app.cfg.ThemeValue()
			for _, t := range state.Themes {
				marker := " "
				if t.Name == active {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %-13s %s\n", marker, t.Name, t.Label)
			}
			return nil
		},
	}
}
