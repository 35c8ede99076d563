package views

import (
	"github.com/pterm/pterm"

	"github.com/larahenke/giro/internal/utils"
)

// RenderAccountPanel shows the session account the way the page header did:
// total balance plus the remaining single-transaction limit.
func RenderAccountPanel(balanceCents, limitCents int64) error {
	tableData := pterm.TableData{
		{"Kontostand", utils.FormatCents(balanceCents)},
		{"Verfügbar", utils.FormatCents(limitCents)},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}
