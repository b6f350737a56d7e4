package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/adaptutor/internal/llm"
	"github.com/abhisek/adaptutor/internal/store"
)

const timeLayout = "2006-01-02 15:04:05"

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect recorded language-model calls",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent tutor and summary calls",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := store.QueryOpts{}
		opts.Limit, _ = cmd.Flags().GetInt("limit")
		opts.Purpose, _ = cmd.Flags().GetString("purpose")
		opts.SessionID, _ = cmd.Flags().GetString("session")
		if since, _ := cmd.Flags().GetDuration("since"); since > 0 {
			opts.From = time.Now().Add(-since)
		}
		asJSON, _ := cmd.Flags().GetBool("json")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		events, err := s.EventRepo().QueryLLMEvents(cmd.Context(), opts)
		if err != nil {
			return fmt.Errorf("query llm events: %w", err)
		}

		out := cmd.OutOrStdout()
		if asJSON {
			return writeJSON(out, events)
		}
		if len(events) == 0 {
			fmt.Fprintln(out, "No LLM calls recorded.")
			return nil
		}
		printLLMEvents(out, events)
		return nil
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show the full prompt and reply of one call",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil || id <= 0 {
			return fmt.Errorf("invalid event id %q", args[0])
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		e, err := s.EventRepo().GetLLMEvent(cmd.Context(), id)
		if err != nil {
			return err
		}
		if e == nil {
			return fmt.Errorf("llm event %d not found", id)
		}
		printLLMEvent(cmd.OutOrStdout(), e)
		return nil
	},
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize token usage and estimated cost",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		byPurpose, err := s.EventRepo().LLMUsageByPurpose(ctx)
		if err != nil {
			return fmt.Errorf("usage by purpose: %w", err)
		}
		byModel, err := s.EventRepo().LLMUsageByModel(ctx)
		if err != nil {
			return fmt.Errorf("usage by model: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(byPurpose) == 0 {
			fmt.Fprintln(out, "No LLM usage recorded yet.")
			return nil
		}
		printPurposeUsage(out, byPurpose)
		fmt.Fprintln(out)
		printModelCost(out, byModel)
		return nil
	},
}

func printLLMEvents(out io.Writer, events []store.LLMEventRecord) {
	fmt.Fprintf(out, "%-5s  %-19s  %-15s  %-16s  %-10s  %-26s  %6s  %6s  %6s  %s\n",
		"ID", "Timestamp", "Purpose", "Session", "Provider", "Model", "In", "Out", "Ms", "OK")
	fmt.Fprintln(out, rule(128))
	for _, e := range events {
		fmt.Fprintf(out, "%-5d  %-19s  %-15s  %-16s  %-10s  %-26s  %6d  %6d  %6d  %s\n",
			e.ID,
			e.Timestamp.Local().Format(timeLayout),
			e.Purpose,
			truncate(orDash(e.SessionID), 16),
			e.Provider,
			truncate(e.Model, 26),
			e.InputTokens,
			e.OutputTokens,
			e.LatencyMs,
			mark(e.Success),
		)
	}
}

func printLLMEvent(out io.Writer, e *store.LLMEventRecord) {
	fmt.Fprintf(out, "ID:        %d\n", e.ID)
	fmt.Fprintf(out, "Time:      %s\n", e.Timestamp.Local().Format(timeLayout))
	fmt.Fprintf(out, "Session:   %s\n", orDash(e.SessionID))
	fmt.Fprintf(out, "Purpose:   %s\n", e.Purpose)
	fmt.Fprintf(out, "Model:     %s (%s)\n", e.Model, e.Provider)
	fmt.Fprintf(out, "Tokens:    %d in / %d out", e.InputTokens, e.OutputTokens)
	if c := llm.LookupCost(e.Model); c != nil {
		fmt.Fprintf(out, "  ~%s", formatCost(c.Cost(e.InputTokens, e.OutputTokens)))
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Latency:   %dms\n", e.LatencyMs)
	if e.ErrorMessage != "" {
		fmt.Fprintf(out, "Error:     %s\n", e.ErrorMessage)
	}

	section(out, "REQUEST", e.RequestBody)
	section(out, "RESPONSE", e.ResponseBody)
}

func printPurposeUsage(out io.Writer, stats []store.LLMPurposeUsage) {
	fmt.Fprintln(out, "Usage by purpose")
	fmt.Fprintln(out, rule(72))
	fmt.Fprintf(out, "%-16s  %6s  %10s  %10s  %10s  %8s\n", "Purpose", "Calls", "Input", "Output", "Total", "Avg ms")
	fmt.Fprintln(out, rule(72))

	var calls, in, outTok int
	for _, st := range stats {
		fmt.Fprintf(out, "%-16s  %6d  %10d  %10d  %10d  %8d\n",
			st.Purpose, st.Calls, st.InputTokens, st.OutputTokens, st.InputTokens+st.OutputTokens, st.AvgLatencyMs)
		calls += st.Calls
		in += st.InputTokens
		outTok += st.OutputTokens
	}
	fmt.Fprintln(out, rule(72))
	fmt.Fprintf(out, "%-16s  %6d  %10d  %10d  %10d\n", "TOTAL", calls, in, outTok, in+outTok)
}

func printModelCost(out io.Writer, usage []store.LLMModelUsage) {
	fmt.Fprintln(out, "Estimated cost (USD)")
	fmt.Fprintln(out, rule(72))
	fmt.Fprintf(out, "%-32s  %6s  %10s  %10s  %9s\n", "Model", "Calls", "Input", "Output", "Cost")
	fmt.Fprintln(out, rule(72))

	var total float64
	var unpriced []string
	for _, mu := range usage {
		cost := "?"
		if c := llm.LookupCost(mu.Model); c != nil {
			usd := c.Cost(mu.InputTokens, mu.OutputTokens)
			total += usd
			cost = formatCost(usd)
		} else {
			unpriced = append(unpriced, mu.Model)
		}
		fmt.Fprintf(out, "%-32s  %6d  %10d  %10d  %9s\n",
			truncate(mu.Model, 32), mu.Calls, mu.InputTokens, mu.OutputTokens, cost)
	}
	fmt.Fprintln(out, rule(72))

	label := "TOTAL"
	if len(unpriced) > 0 {
		label = "TOTAL (partial)"
	}
	fmt.Fprintf(out, "%-32s  %6s  %10s  %10s  %9s\n", label, "", "", "", formatCost(total))
	if len(unpriced) > 0 {
		fmt.Fprintf(out, "\nNo pricing for: %s\n", strings.Join(unpriced, ", "))
	}
}

func section(out io.Writer, title, body string) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, rule(60))
	fmt.Fprintln(out, title)
	fmt.Fprintln(out, rule(60))
	if body == "" {
		body = "(not captured)"
	}
	fmt.Fprintln(out, body)
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func rule(n int) string { return strings.Repeat("─", n) }

func mark(ok bool) string {
	if ok {
		return "✓"
	}
	return "✗"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	f := llmListCmd.Flags()
	f.IntP("limit", "n", 20, "Number of calls to show (0 for all)")
	f.StringP("purpose", "p", "", "Only calls with this purpose ("+llm.PurposeTutorReply+", "+llm.PurposeSessionSummary+")")
	f.StringP("session", "s", "", "Only calls made for this session")
	f.Duration("since", 0, "Only calls newer than this (e.g. 2h)")
	f.Bool("json", false, "Print records as JSON")

	llmCmd.AddCommand(llmListCmd, llmViewCmd, llmStatsCmd)
}
