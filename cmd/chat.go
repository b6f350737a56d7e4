package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/adaptutor/internal/ui/chat"
	"github.com/abhisek/adaptutor/internal/ui/report"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive tutoring session",
	RunE: func(cmd *cobra.Command, args []string) error {
		id, _ := cmd.Flags().GetString("session")
		return runChat(cmd, id)
	},
}

// runChat opens the store, wires the engine with a language model and
// launches the chat TUI. A summary is printed when the learner leaves.
func runChat(cmd *cobra.Command, sessionID string) error {
	ctx := cmd.Context()
	d, err := buildEngine(ctx, cmd, llmRequired)
	if err != nil {
		return err
	}
	defer d.Close()

	final, err := chat.Run(ctx, d.engine, sessionID)
	if err != nil {
		return err
	}

	if skip, _ := cmd.Flags().GetBool("no-summary"); skip {
		return nil
	}
	history, err := d.engine.History(final.SessionID())
	if err != nil || len(history) == 0 {
		return nil
	}

	summary := final.Summary()
	if summary == nil {
		summary, err = d.engine.Summarize(ctx, final.SessionID())
		if err != nil {
			logger.Warn("session summary failed", zap.String("session_id", final.SessionID()), zap.Error(err))
			return nil
		}
	}
	fmt.Fprintln(cmd.OutOrStdout(), report.Summary(summary, 80))
	return nil
}

func init() {
	chatCmd.Flags().StringP("session", "s", "", "Session ID (generated when empty)")
	for _, c := range []*cobra.Command{rootCmd, chatCmd} {
		c.Flags().Bool("no-summary", false, "Skip the session summary on exit")
	}
}
