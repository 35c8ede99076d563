package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/larahenke/giro/internal/model"
	"github.com/larahenke/giro/internal/ui/prompts"
	"github.com/larahenke/giro/internal/validation"
)

type orderFlags struct {
	To        string
	IBAN      string
	Amount    string
	Start     string
	End       string
	Unlimited bool
}

func NewOrderCmd() *cobra.Command {
	flags := &orderFlags{}

	cmd := &cobra.Command{
		Use:   "order",
		Short: "Set up a standing order",
		Long: `Set up a recurring standing order.

Standing orders are scheduled, not settled: they are not checked against the
session balance or limit and leave the account untouched.

Examples:
  # Interactive form
  giro order

  # Quick mode with flags
  giro order --to "Stadtwerke" --iban DE02500105170137075030 --amount 89,99 --start 2026-09-01 --unlimited

  # With an end date (must lie after the first execution)
  giro order --to "Stadtwerke" --iban DE02500105170137075030 --amount 89,99 --start 2026-09-01 --end 2027-09-01`,
		RunE: func(cmd *cobra.Command, args []string) error {
			hasFlags := cmd.Flags().Changed("to") || cmd.Flags().Changed("iban") ||
				cmd.Flags().Changed("amount")

			if !hasFlags {
				return submitInteractive(prompts.PromptStandingOrder)
			}

			if flags.To == "" || flags.IBAN == "" || flags.Amount == "" {
				return fmt.Errorf("when using flags, --to, --iban, and --amount are all required")
			}

			return submitAndRender(model.Submission{
				Kind:          model.KindStandingOrder,
				Recipient:     flags.To,
				IBAN:          validation.CleanIBANInput(flags.IBAN),
				Amount:        flags.Amount,
				ExecutionDate: flags.Start,
				EndDate:       flags.End,
				Unlimited:     flags.Unlimited,
			})
		},
	}

	cmd.Flags().StringVarP(&flags.To, "to", "t", "", "Recipient name")
	cmd.Flags().StringVarP(&flags.IBAN, "iban", "i", "", "Recipient IBAN (DE + 20 digits, spaces allowed)")
	cmd.Flags().StringVarP(&flags.Amount, "amount", "a", "", "Amount in EUR (e.g., 150 or 150,50)")
	cmd.Flags().StringVar(&flags.Start, "start", "", "First execution date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&flags.End, "end", "", "End date (YYYY-MM-DD), must be after the first execution")
	cmd.Flags().BoolVar(&flags.Unlimited, "unlimited", false, "Run without an end date")

	return cmd
}
