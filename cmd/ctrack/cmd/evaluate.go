package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func evaluateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "evaluate",
		Short: "Trigger a catalog evaluation run",
		Long: "Ask the server to evaluate every tracked product now instead of\n" +
			"waiting for the next scheduled run.",
		Example: `  ctrack evaluate`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			sent, err := c.Evaluate(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(map[string]int{"alerts_sent": sent})
			}
			fmt.Printf("Evaluation complete: %d alert(s) sent.\n", sent)
			return nil
		},
	}
}

func stateCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "state",
		Short:   "Show catalog state",
		Example: `  ctrack state`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			state, err := c.State(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(state)
			}
			fmt.Printf("Tracked items: %d\n", state.ItemsTotal)
			return nil
		},
	}
}
