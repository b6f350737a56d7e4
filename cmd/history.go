package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/adaptutor/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history [session-id]",
	Short: "List stored analyses, optionally for one session",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		since, _ := cmd.Flags().GetDuration("since")
		id, _ := cmd.Flags().GetInt("id")
		if id > 0 {
			limit = 0
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		opts := store.QueryOpts{Limit: limit}
		if len(args) == 1 {
			opts.SessionID = args[0]
		}
		if since > 0 {
			opts.From = time.Now().Add(-since)
		}

		records, err := s.EventRepo().QueryAnalyses(cmd.Context(), opts)
		if err != nil {
			return fmt.Errorf("query analyses: %w", err)
		}

		out := cmd.OutOrStdout()
		if id > 0 {
			for _, r := range records {
				if r.ID == id {
					return printAnalysis(cmd, r)
				}
			}
			return fmt.Errorf("analysis %d not found", id)
		}

		if len(records) == 0 {
			fmt.Fprintln(out, "No analyses found.")
			return nil
		}

		fmt.Fprintf(out, "%-5s  %-19s  %-20s  %-8s  %-10s  %5s  %-15s  %-13s  %s\n",
			"ID", "Timestamp", "Session", "Load", "State", "Score", "Style", "Mode", "Subject")
		fmt.Fprintln(out, rule(120))
		for _, r := range records {
			fmt.Fprintf(out, "%-5d  %-19s  %-20s  %-8s  %-10s  %5d  %-15s  %-13s  %s\n",
				r.ID,
				r.Timestamp.Local().Format(timeLayout),
				truncate(r.SessionID, 20),
				r.LoadLevel,
				r.LearningState,
				r.LoadScore,
				r.DetectedStyle,
				r.Mode,
				r.Subject,
			)
		}
		return nil
	},
}

func printAnalysis(cmd *cobra.Command, r store.AnalysisRecord) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "ID:        %d\n", r.ID)
	fmt.Fprintf(out, "Time:      %s\n", r.Timestamp.Local().Format(timeLayout))
	fmt.Fprintf(out, "Session:   %s\n", r.SessionID)
	fmt.Fprintf(out, "Load:      %s (score %d, confidence %d%%)\n", r.LoadLevel, r.LoadScore, r.LoadConfidence)
	fmt.Fprintf(out, "State:     %s\n", r.LearningState)
	fmt.Fprintf(out, "Style:     %s (%.0f%%)\n", r.DetectedStyle, r.StyleConfidence)
	fmt.Fprintf(out, "Template:  %s / %s\n", r.Mode, r.Subject)

	section(out, "PROMPT", r.Prompt)
	if r.Payload == "" {
		return nil
	}
	var v any
	if err := json.Unmarshal([]byte(r.Payload), &v); err != nil {
		section(out, "ANALYSIS", r.Payload)
		return nil
	}
	pretty, _ := json.MarshalIndent(v, "", "  ")
	section(out, "ANALYSIS", string(pretty))
	return nil
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of analyses to show")
	historyCmd.Flags().Duration("since", 0, "Only show analyses newer than this (e.g. 24h)")
	historyCmd.Flags().Int("id", 0, "Show one analysis in full")
}
