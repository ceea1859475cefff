package cli

import (
	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-nxn/transport/console"
)

func newPlayCmd(st *state) *cobra.Command {
	var setup console.Setup

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a match in the terminal",
		Long: `Play one match on stdin/stdout. Flags left unset fall back to the config;
whatever is still missing is asked for interactively.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := st.app.RunConsole(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), setup)
			return err
		},
	}

	cmd.Flags().IntVar(&setup.BoardSize, "size", 0, "Board dimension N (at least 3)")
	cmd.Flags().StringVar(&setup.PlayerOne, "player-one", "", "Name of the player placing 'x'")
	cmd.Flags().StringVar(&setup.PlayerTwo, "player-two", "", "Name of the player placing 'o'")

	return cmd
}
