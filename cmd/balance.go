package cmd

import (
	"github.com/spf13/cobra"

	"github.com/larahenke/giro/internal/ui/views"
)

func NewBalanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show the session account",
		Long: `Show the session account: total balance and the remaining
single-transaction limit. The balance is drawn at random when the session
opens.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return views.RenderAccountPanel(application.State.BalanceCents(), application.State.LimitCents())
		},
	}
}
