package cli

import (
	"github.com/spf13/cobra"
)

func newSubmitCmd() *cobra.Command {
	var score float64

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a score for the logged-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]float64{"score": score}
			var result MessageResult

			if err := client.Post("/submit-score", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().Float64VarP(&score, "score", "s", 0, "Score to submit (required)")
	_ = cmd.MarkFlagRequired("score")

	return cmd
}

func newTopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "top",
		Short: "Show the leaderboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Leaderboard

			if err := client.Get("/leaderboard", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
