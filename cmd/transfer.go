package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/larahenke/giro/internal/model"
	"github.com/larahenke/giro/internal/ui/prompts"
	"github.com/larahenke/giro/internal/ui/views"
	"github.com/larahenke/giro/internal/validation"
)

type transferFlags struct {
	To       string
	IBAN     string
	Amount   string
	Date     string
	Realtime bool
}

func NewTransferCmd() *cobra.Command {
	flags := &transferFlags{}

	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Submit a one-time transfer",
		Long: `Submit a one-time transfer against the session account.

Examples:
  # Interactive form
  giro transfer

  # Quick mode with flags
  giro transfer --to "Max Mustermann" --iban "DE89 3704 0044 0532 0130 00" --amount 1200 --realtime

  # Scheduled for a future date
  giro transfer --to "Max Mustermann" --iban DE89370400440532013000 --amount 50 --date 2026-09-15`,
		RunE: func(cmd *cobra.Command, args []string) error {
			hasFlags := cmd.Flags().Changed("to") || cmd.Flags().Changed("iban") ||
				cmd.Flags().Changed("amount")

			if !hasFlags {
				if err := views.RenderAccountPanel(application.State.BalanceCents(), application.State.LimitCents()); err != nil {
					return err
				}
				return submitInteractive(prompts.PromptTransfer)
			}

			if flags.To == "" || flags.IBAN == "" || flags.Amount == "" {
				return fmt.Errorf("when using flags, --to, --iban, and --amount are all required")
			}

			return submitAndRender(model.Submission{
				Kind:          model.KindTransfer,
				Recipient:     flags.To,
				IBAN:          validation.CleanIBANInput(flags.IBAN),
				Amount:        flags.Amount,
				ExecutionDate: flags.Date,
				Realtime:      flags.Realtime,
			})
		},
	}

	cmd.Flags().StringVarP(&flags.To, "to", "t", "", "Recipient name")
	cmd.Flags().StringVarP(&flags.IBAN, "iban", "i", "", "Recipient IBAN (DE + 20 digits, spaces allowed)")
	cmd.Flags().StringVarP(&flags.Amount, "amount", "a", "", "Amount in EUR (e.g., 150 or 150,50)")
	cmd.Flags().StringVar(&flags.Date, "date", "", "Execution date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&flags.Realtime, "realtime", false, "Execute immediately; the date is ignored")

	return cmd
}
