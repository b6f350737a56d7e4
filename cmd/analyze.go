package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/adaptutor/internal/engine"
	"github.com/abhisek/adaptutor/internal/ui/report"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <turn-file|->",
	Short: "Analyze a learner turn and show load, style and the composed instruction",
	Long: "Reads a turn description (messages, events, behavior, config, context) from a " +
		"JSON or YAML file, or from stdin with \"-\", and reports the cognitive load and " +
		"learning-style analyses together with the composed tutoring instruction.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := processTurnFile(cmd, args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return writeJSON(out, res)
		}

		showPrompt, _ := cmd.Flags().GetBool("prompt")
		width, _ := cmd.Flags().GetInt("width")
		fmt.Fprint(out, report.Render(res, report.Options{
			Width:      width,
			ShowPrompt: showPrompt,
		}))
		return nil
	},
}

var promptCmd = &cobra.Command{
	Use:   "prompt <turn-file|->",
	Short: "Print only the composed tutoring instruction for a turn",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := processTurnFile(cmd, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), res.Prompt)
		return nil
	},
}

// processTurnFile loads a turn and runs it through a freshly wired engine.
func processTurnFile(cmd *cobra.Command, path string) (*engine.Result, error) {
	turn, err := readTurn(cmd.InOrStdin(), path)
	if err != nil {
		return nil, err
	}
	if id, _ := cmd.Flags().GetString("session"); id != "" {
		turn.SessionID = id
	}

	d, err := buildEngine(cmd.Context(), cmd, llmNone)
	if err != nil {
		return nil, err
	}
	defer d.Close()

	turn.SessionID = d.engine.Open(turn.SessionID)
	res, err := d.engine.Process(cmd.Context(), *turn)
	if err != nil {
		return nil, fmt.Errorf("process turn: %w", err)
	}
	return res, nil
}

func readTurn(stdin io.Reader, path string) (*engine.Turn, error) {
	if path != "-" {
		return engine.LoadTurn(path)
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("reading turn from stdin: %w", err)
	}
	return engine.ParseTurn(data, ".yaml")
}

func init() {
	for _, c := range []*cobra.Command{analyzeCmd, promptCmd} {
		c.Flags().StringP("session", "s", "", "Session ID (overrides the turn file)")
	}
	analyzeCmd.Flags().Bool("json", false, "Print the full result as JSON")
	analyzeCmd.Flags().BoolP("prompt", "p", false, "Include the composed instruction")
	analyzeCmd.Flags().IntP("width", "w", 80, "Report width in columns")
}
