package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmynk/secretsanta/internal/assignment"
	"github.com/mmynk/secretsanta/internal/models"
	"github.com/mmynk/secretsanta/internal/roster"
)

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <roster>",
		Short: "Check that a roster can be drawn at all",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			people, err := roster.Load(args[0])
			if err != nil {
				return err
			}
			if err := assignment.CheckFeasibility(people); err != nil {
				return err
			}

			families := models.Families(people)
			largest := 0
			for _, members := range families {
				largest = max(largest, len(members))
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "ok: %d people in %d families (largest family: %d)\n",
				len(people), len(families), largest)
			return err
		},
	}
}
