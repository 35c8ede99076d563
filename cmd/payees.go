package cmd

import (
	"github.com/spf13/cobra"

	"github.com/larahenke/giro/internal/ui/views"
)

func NewPayeesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "payees",
		Short: "List the loaded reference dataset",
		Long: `List the expected-transaction records loaded at startup.
Transfers to a listed payee are only executed when name, IBAN and amount all
match the record; unknown payees pass without a check.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderPayees()
		},
	}
}

func renderPayees() error {
	rows, err := application.Service.Payment.Payees()
	if err != nil {
		return err
	}
	return views.RenderPayees(rows)
}
