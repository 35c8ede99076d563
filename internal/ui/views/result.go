package views

import (
	"github.com/pterm/pterm"

	"github.com/larahenke/giro/internal/model"
	"github.com/larahenke/giro/internal/service"
	"github.com/larahenke/giro/internal/utils"
)

var fieldLabels = map[string]string{
	service.FieldRecipient: "Empfänger",
	service.FieldIBAN:      "IBAN",
	service.FieldAmount:    "Betrag",
	service.FieldDate:      "Ausführungsdatum",
	service.FieldEndDate:   "Enddatum",
}

// Display order for field errors; maps iterate randomly.
var fieldOrder = []string{
	service.FieldRecipient,
	service.FieldIBAN,
	service.FieldAmount,
	service.FieldDate,
	service.FieldEndDate,
}

// RenderDecision is the terminal version of the page's feedback: a success
// overlay, inline field errors, or the fraud-style warning.
func RenderDecision(kind model.FormKind, decision service.Decision) error {
	switch decision.Status {
	case service.StatusApproved:
		return renderApproved(kind, decision)
	case service.StatusBlocked:
		return renderBlocked(decision)
	default:
		return renderRejected(decision)
	}
}

func renderApproved(kind model.FormKind, decision service.Decision) error {
	if kind == model.KindStandingOrder {
		pterm.Success.Println("Dauerauftrag eingerichtet!")
		return nil
	}

	pterm.Success.Println("Überweisung erfolgreich!")

	tableData := pterm.TableData{
		{"Neuer Kontostand", utils.FormatCents(decision.NewBalanceCents)},
		{"Verfügbar", utils.FormatCents(decision.NewLimitCents)},
	}
	return pterm.DefaultTable.WithData(tableData).Render()
}

func renderBlocked(decision service.Decision) error {
	pterm.Error.Println("Überweisung abgelehnt")
	pterm.Println(decision.Reason.Message)
	pterm.Println("Bitte prüfen Sie Empfänger, IBAN und Betrag.")
	return nil
}

func renderRejected(decision service.Decision) error {
	pterm.Error.Println("Bitte korrigieren Sie Ihre Eingaben")

	tableData := pterm.TableData{
		{"Feld", "Fehler"},
	}
	for _, field := range fieldOrder {
		res, found := decision.FieldErrors[field]
		if !found {
			continue
		}
		tableData = append(tableData, []string{fieldLabels[field], res.Message})
	}

	return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}
