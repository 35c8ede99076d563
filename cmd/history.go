package cmd

import (
	"github.com/spf13/cobra"

	"github.com/larahenke/giro/internal/ui/views"
)

func NewHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List this session's submissions",
		Long: `List the submissions decided in this session, newest first,
with their outcome: executed, rejected (field errors), or blocked
(reference mismatch).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderHistory(limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Show at most this many entries (0 = all)")

	return cmd
}

func renderHistory(limit int) error {
	entries, err := application.Service.Payment.History(limit)
	if err != nil {
		return err
	}
	return views.RenderHistory(entries)
}
