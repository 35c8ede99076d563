package views

import (
	"github.com/pterm/pterm"

	"github.com/larahenke/giro/internal/store"
	"github.com/larahenke/giro/internal/utils"
)

// RenderPayees lists the loaded reference dataset: the payees whose expected
// transactions the matcher checks transfers against.
func RenderPayees(rows []*store.ReferenceRow) error {
	if len(rows) == 0 {
		pterm.Info.Println("Keine Referenzdaten geladen – alle Überweisungen gelten als neu.")
		return nil
	}

	tableData := pterm.TableData{
		{"Name", "IBAN", "Erwarteter Betrag"},
	}
	for _, r := range rows {
		tableData = append(tableData, []string{r.Name, r.IBAN, utils.FormatCents(r.AmountCents)})
	}

	return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}
