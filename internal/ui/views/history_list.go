package views

import (
	"time"

	"github.com/pterm/pterm"

	"github.com/larahenke/giro/internal/store"
	"github.com/larahenke/giro/internal/utils"
)

var outcomeLabels = map[string]string{
	"approved": pterm.Green("Ausgeführt"),
	"rejected": pterm.Yellow("Abgewiesen"),
	"blocked":  pterm.Red("Blockiert"),
}

var kindLabels = map[string]string{
	"transfer":       "Überweisung",
	"standing_order": "Dauerauftrag",
}

// RenderHistory lists the decided submissions of this session, newest first.
func RenderHistory(entries []*store.JournalEntry) error {
	if len(entries) == 0 {
		pterm.Info.Println("Noch keine Transaktionen in dieser Sitzung.")
		return nil
	}

	tableData := pterm.TableData{
		{"Zeit", "Art", "Empfänger", "IBAN", "Betrag", "Ergebnis"},
	}
	for _, e := range entries {
		outcome, found := outcomeLabels[e.Outcome]
		if !found {
			outcome = e.Outcome
		}
		kind, found := kindLabels[e.Kind]
		if !found {
			kind = e.Kind
		}
		tableData = append(tableData, []string{
			time.Unix(e.Timestamp, 0).Format("15:04:05"),
			kind,
			e.Recipient,
			e.IBAN,
			utils.FormatCents(e.AmountCents),
			outcome,
		})
	}

	return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}
