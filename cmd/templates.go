package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/adaptutor/internal/prompts"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the prompt templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		ts, err := loadTemplates()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-28s  %-16s  %-14s  %s\n", "ID", "Mode", "Subject", "Description")
		fmt.Fprintln(out, rule(90))
		for _, t := range ts.Templates() {
			fmt.Fprintf(out, "%-28s  %-16s  %-14s  %s\n", t.ID, t.Mode, t.Subject, t.Metadata.Description)
		}
		return nil
	},
}

var templatesShowCmd = &cobra.Command{
	Use:   "show <mode> [subject]",
	Short: "Show the template resolved for a mode and subject",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ts, err := loadTemplates()
		if err != nil {
			return err
		}
		subject := cfg.Engine.DefaultSubject
		if len(args) == 2 {
			subject = args[1]
		}
		t := ts.Resolve(args[0], subject)
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "ID:       %s\n", t.ID)
		fmt.Fprintf(out, "Mode:     %s\n", t.Mode)
		fmt.Fprintf(out, "Subject:  %s\n", t.Subject)
		if len(t.Metadata.Tags) > 0 {
			fmt.Fprintf(out, "Tags:     %s\n", strings.Join(t.Metadata.Tags, ", "))
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, t.BaseTemplate)
		return nil
	},
}

func loadTemplates() (*prompts.Store, error) {
	if cfg.Templates == "" {
		return prompts.Load(), nil
	}
	return prompts.LoadFile(cfg.Templates)
}

func init() {
	templatesCmd.AddCommand(templatesShowCmd)
}
