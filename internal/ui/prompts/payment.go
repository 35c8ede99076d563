package prompts

import (
	"time"

	"github.com/larahenke/giro/internal/constants"
	"github.com/larahenke/giro/internal/model"
	"github.com/larahenke/giro/internal/validation"
)

// PromptTransfer walks through the one-time transfer form. Values are
// collected raw; the payment service validates everything afterwards so the
// user sees all field problems at once, like on the original page.
func PromptTransfer() (model.Submission, error) {
	sub := model.Submission{Kind: model.KindTransfer}

	var err error
	if sub.Recipient, err = PromptInput("Empfänger", "", ""); err != nil {
		return sub, err
	}

	iban, err := PromptInput("IBAN", "z.B. DE89 3704 0044 0532 0130 00", "")
	if err != nil {
		return sub, err
	}
	sub.IBAN = validation.CleanIBANInput(iban)

	if sub.Amount, err = PromptInput("Betrag (EUR)", "z.B. 150,00", ""); err != nil {
		return sub, err
	}

	if sub.Realtime, err = PromptConfirm("Echtzeitüberweisung?", false); err != nil {
		return sub, err
	}

	if !sub.Realtime {
		today := time.Now().Format(constants.DateFormat)
		if sub.ExecutionDate, err = PromptDate("Ausführungsdatum (YYYY-MM-DD)", today, "Enter für heute"); err != nil {
			return sub, err
		}
	}

	return sub, nil
}

// PromptStandingOrder walks through the standing-order form.
func PromptStandingOrder() (model.Submission, error) {
	sub := model.Submission{Kind: model.KindStandingOrder}

	var err error
	if sub.Recipient, err = PromptInput("Empfänger", "", ""); err != nil {
		return sub, err
	}

	iban, err := PromptInput("IBAN", "z.B. DE89 3704 0044 0532 0130 00", "")
	if err != nil {
		return sub, err
	}
	sub.IBAN = validation.CleanIBANInput(iban)

	if sub.Amount, err = PromptInput("Betrag (EUR)", "Daueraufträge werden nicht gegen das Guthaben geprüft", ""); err != nil {
		return sub, err
	}

	today := time.Now().Format(constants.DateFormat)
	if sub.ExecutionDate, err = PromptDate("Erste Ausführung (YYYY-MM-DD)", today, "Enter für heute"); err != nil {
		return sub, err
	}

	if sub.Unlimited, err = PromptConfirm("Unbefristet?", true); err != nil {
		return sub, err
	}

	if !sub.Unlimited {
		if sub.EndDate, err = PromptDate("Enddatum (YYYY-MM-DD)", "", "Leer lassen für kein Enddatum"); err != nil {
			return sub, err
		}
	}

	return sub, nil
}
