package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-nxn/internal/entity"
)

func newStandingsCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "standings [player]",
		Short: "Show the scoreboard",
		Long:  "Show every player's wins, losses and draws, or a single player's when one is named.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			matches := st.app.Matches()

			var standings []*entity.Standing

			if len(args) == 1 {
				standing, err := matches.Standing(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				standings = []*entity.Standing{standing}
			} else {
				all, err := matches.Standings(cmd.Context())
				if err != nil {
					return err
				}
				standings = all
			}

			return printStandings(cmd.OutOrStdout(), st.opts.output, standings)
		},
	}
}

func printStandings(w io.Writer, format string, standings []*entity.Standing) error {
	switch format {
	case "json":
		if standings == nil {
			standings = []*entity.Standing{}
		}

		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(standings)
	case "text":
		if len(standings) == 0 {
			_, err := fmt.Fprintln(w, "No matches recorded yet.")
			return err
		}

		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "PLAYER\tPLAYED\tWINS\tLOSSES\tDRAWS")
		for _, standing := range standings {
			fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\n",
				standing.Player, standing.Played(), standing.Wins, standing.Losses, standing.Draws)
		}
		return tw.Flush()
	default:
		return unsupportedOutput(format)
	}
}
